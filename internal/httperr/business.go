package httperr

import "errors"

// BusinessError is an expected failure identified by a stable code, such
// as "buyer_not_found". Handlers translate it to a 4xx response; anything
// that is not a BusinessError is treated as unexpected.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// ErrBusiness declares a sentinel for a code. Compare with errors.Is or
// IsBusiness.
func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// IsBusiness reports whether err wraps a BusinessError carrying code.
func IsBusiness(err error, code string) bool {
	var be BusinessError
	return errors.As(err, &be) && be.Code == code
}
