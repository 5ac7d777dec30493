package standby

import "errors"

var (
	// ErrInvalidWatts indicates the wattage is missing, not a number or not positive.
	ErrInvalidWatts = errors.New("standby wattage must be a positive number.")

	// ErrInvalidTariff indicates the tariff is missing, not a number or not positive.
	ErrInvalidTariff = errors.New("electricity tariff must be a positive number.")

	// ErrInvalidStandbyHours indicates the daily standby time is outside (0, 24].
	ErrInvalidStandbyHours = errors.New("standby time must be a positive number between 0 and 24 hours.")
)

// Field names a form field.
type Field string

const (
	FieldWatts        Field = "watts"
	FieldTariff       Field = "tariff"
	FieldStandbyHours Field = "standby_hours"
)

// ValidationError reports the first field that failed validation.
// Error returns the user-facing message unchanged.
type ValidationError struct {
	Field Field
	Value string
	Err   error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }
