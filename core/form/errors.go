package form

import (
	"errors"
	"strings"
)

// ValidationError describes a single failed check on a named field.
// TranslationKey and TranslationValues allow a future locale catalog to
// re-render the message; Message is always usable as-is.
type ValidationError struct {
	Field             string         `json:"field"`
	Message           string         `json:"message"`
	TranslationKey    string         `json:"-"`
	TranslationValues map[string]any `json:"-"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// ValidationErrors collects per-field validation failures.
type ValidationErrors []ValidationError

// Error implements the error interface.
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}

// IsEmpty reports whether no failures were collected.
func (e ValidationErrors) IsEmpty() bool {
	return len(e) == 0
}

// Add appends a failure to the collection.
func (e *ValidationErrors) Add(err ValidationError) {
	*e = append(*e, err)
}

// Fields returns a field-name to message mapping. Only the first failure
// per field is kept, matching the first-failing-rule semantics of
// ValidateField.
func (e ValidationErrors) Fields() map[string]string {
	if len(e) == 0 {
		return nil
	}
	fields := make(map[string]string, len(e))
	for _, err := range e {
		if _, ok := fields[err.Field]; !ok {
			fields[err.Field] = err.Message
		}
	}
	return fields
}

// First returns the first collected failure, in registration order of the
// originating rule set. The first invalid field receives input focus on
// re-render.
func (e ValidationErrors) First() (ValidationError, bool) {
	if len(e) == 0 {
		return ValidationError{}, false
	}
	return e[0], true
}

// ExtractValidationErrors unwraps err into ValidationErrors.
// Returns nil when err carries no validation failures.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var verrs ValidationErrors
	if errors.As(err, &verrs) {
		return verrs
	}

	var verr ValidationError
	if errors.As(err, &verr) {
		return ValidationErrors{verr}
	}

	return nil
}
