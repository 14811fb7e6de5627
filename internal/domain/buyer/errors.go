package buyer

import "github.com/BruksfildServices01/buyer-leads/internal/httperr"

const (
	CodeNotFound    = "buyer_not_found"
	CodeNotOwner    = "not_owner"
	CodeTooManyRows = "too_many_rows"
)

var (
	ErrNotFound    = httperr.ErrBusiness(CodeNotFound)
	ErrNotOwner    = httperr.ErrBusiness(CodeNotOwner)
	ErrTooManyRows = httperr.ErrBusiness(CodeTooManyRows)
)
