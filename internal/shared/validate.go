package shared

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FieldErrors converts an ozzo validation error into a field-to-message map
// suitable for form redisplay. ok is false when err is not a validation
// outcome (i.e. it is an infrastructure error and must propagate).
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	fields := make(map[string]string, len(verrs))
	for field, ferr := range verrs {
		fields[field] = ferr.Error()
	}
	return fields, true
}
