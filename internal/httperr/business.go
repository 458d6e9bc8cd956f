package httperr

import "errors"

// Business error codes shared across use cases and handlers.
const (
	CodeDuplicateID   = "duplicate_id"
	CodeNotFound      = "not_found"
	CodeSlotConflict  = "slot_conflict"
	CodeInvalidStatus = "invalid_status"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
