package httperr

import "errors"

// BusinessError is raised by domain and usecase code and mapped to an
// HTTP status by the handler layer.
type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
