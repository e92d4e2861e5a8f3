package httperr

import "errors"

// BusinessError is a rule violation the user can fix. Code is the stable
// key handlers translate into an HTTP status and a message.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

// Is matches any BusinessError with the same code, so
// errors.Is(err, ErrBusiness("missing_name")) works through wrapping.
func (e BusinessError) Is(target error) bool {
	var other BusinessError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// CodeOf returns the business code carried by err, if any.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if !errors.As(err, &be) {
		return "", false
	}
	return be.Code, true
}

func IsBusiness(err error, code string) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
