package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrBusiness("not_owner"))

	if !IsBusiness(err, "not_owner") {
		t.Error("wrapped business error not detected")
	}
	if IsBusiness(err, "other") {
		t.Error("code mismatch should be false")
	}
	if IsBusiness(errors.New("not_owner"), "not_owner") {
		t.Error("plain error should be false")
	}
}

func TestPostgresClassification(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) || IsUniqueViolation(fk) {
		t.Error("unique violation misclassified")
	}
	if !IsForeignKeyViolation(fk) || IsForeignKeyViolation(errors.New("x")) {
		t.Error("fk violation misclassified")
	}
}

func TestUnexpectedHidesCause(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	Unexpected(c, zap.NewNop(), "list_failed", errors.New("dial tcp: connection refused"))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
	var body HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Code != "list_failed" || body.Message == "" || body.Details != nil {
		t.Errorf("body = %+v", body)
	}
}
