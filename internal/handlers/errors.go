package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/buyer-leads/internal/domain/buyer"
	"github.com/BruksfildServices01/buyer-leads/internal/httperr"
	"github.com/BruksfildServices01/buyer-leads/internal/infra/repository"
	"github.com/BruksfildServices01/buyer-leads/internal/middleware"
	"github.com/BruksfildServices01/buyer-leads/internal/usecase/session"
)

var errBadUpload = httperr.ErrBusiness("invalid_upload")

// writeError maps domain errors to responses. Anything unrecognised is
// logged and answered with a generic 500 under fallbackCode.
func writeError(c *gin.Context, err error, fallbackCode string) {
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		httperr.Validation(c, "Validation failed.", verr.Violations)

	case httperr.IsBusiness(err, domain.CodeNotFound):
		httperr.NotFound(c, domain.CodeNotFound, "Buyer not found.")

	case httperr.IsBusiness(err, domain.CodeNotOwner):
		httperr.BadRequest(c, domain.CodeNotOwner, "You can only edit your own buyers.")

	case errors.Is(err, domain.ErrTooManyRows):
		httperr.BadRequest(c, domain.CodeTooManyRows, "Too many buyers. Maximum 200 allowed.")

	case errors.Is(err, domain.ErrEmptyCSV):
		httperr.BadRequest(c, "empty_csv", "File is empty.")

	case errors.Is(err, domain.ErrInvalidCSV):
		httperr.BadRequest(c, "invalid_csv_header", "Invalid CSV format. Please download the template for the correct format.")

	case errors.Is(err, errBadUpload):
		httperr.BadRequest(c, "invalid_upload", "Send a CSV file (max 1 MB) or a JSON body with a buyers array.")

	case errors.Is(err, session.ErrInvalidEmail):
		httperr.BadRequest(c, "invalid_email", "Invalid email address.")

	case errors.Is(err, repository.ErrUserNotFound):
		httperr.Write(c, http.StatusUnauthorized, "user_not_found", "Please log in again.")

	default:
		httperr.Unexpected(c, middleware.Logger(c), fallbackCode, err)
	}
}
