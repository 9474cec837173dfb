package grid

import "errors"

// Validation failure taxonomy for savings submissions. Each maps to an
// HTTP 400 at the transport boundary; anything else is a 500.
var (
	ErrMissingField   = errors.New("missing required fields: deviceAddress and savings")
	ErrInvalidAddress = errors.New("invalid device address format")
	ErrInvalidAmount  = errors.New("savings must be a positive number between 1 and 10000 watts")
)

// IsValidationError reports whether err belongs to the client-correctable
// taxonomy.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingField) ||
		errors.Is(err, ErrInvalidAddress) ||
		errors.Is(err, ErrInvalidAmount)
}
