// Package form provides field-level validation for HTML forms: static
// per-field rule descriptors, a rule-set validator for value snapshots, and
// a struct-tag walker for request structs. Both paths share the same rule
// constructors, so tag-driven and programmatic validation agree on
// semantics and messages.
package form

import (
	"regexp"
	"strings"
)

// FieldRule is the static validation descriptor for one named input.
// A zero MinLen/MaxLen disables the corresponding length check; a nil
// Pattern disables the pattern check. Message, when set, replaces the
// default message of whichever check fails first. FieldRule values are
// immutable once registered in a RuleSet.
type FieldRule struct {
	Required bool
	MinLen   int
	MaxLen   int
	Pattern  *regexp.Regexp
	Message  string
}

// RuleSet maps field names to their rules, preserving registration order
// for first-invalid-field focus semantics.
type RuleSet struct {
	names []string
	rules map[string]FieldRule
}

// Values is a transient snapshot of raw field values keyed by field name.
// It is constructed fresh per submission attempt and discarded after
// validation.
type Values map[string]string

// NewRuleSet creates an empty rule set.
func NewRuleSet() *RuleSet {
	return &RuleSet{rules: make(map[string]FieldRule)}
}

// Field registers a rule for the named field, replacing any previous rule.
// Returns the set for chaining.
func (rs *RuleSet) Field(name string, rule FieldRule) *RuleSet {
	if _, exists := rs.rules[name]; !exists {
		rs.names = append(rs.names, name)
	}
	rs.rules[name] = rule
	return rs
}

// Names returns the registered field names in registration order.
func (rs *RuleSet) Names() []string {
	names := make([]string, len(rs.names))
	copy(names, rs.names)
	return names
}

// ValidateField validates a single value against the named field's rule.
// Checks apply in order: required, min length, max length, pattern; the
// first failing check's error is returned. Values are trimmed before
// checking and lengths are counted in runes. Fields with no registered
// rule are always valid.
func (rs *RuleSet) ValidateField(name, value string) error {
	fr, ok := rs.rules[name]
	if !ok {
		return nil // permissive default for unknown fields
	}

	trimmed := strings.TrimSpace(value)

	checks := make([]Rule, 0, 4)
	if fr.Required {
		checks = append(checks, RequiredRule(name, trimmed))
	}
	if fr.MinLen > 0 {
		checks = append(checks, MinLenRule(name, trimmed, fr.MinLen))
	}
	if fr.MaxLen > 0 {
		checks = append(checks, MaxLenRule(name, trimmed, fr.MaxLen))
	}
	if fr.Pattern != nil {
		checks = append(checks, PatternRule(name, trimmed, fr.Pattern))
	}

	for _, rule := range checks {
		if !rule.Check() {
			if fr.Message != "" {
				rule.Error.Message = fr.Message
			}
			return rule.Error
		}
	}

	return nil
}

// ValidateForm validates every registered field against the snapshot.
// Fields with no error are omitted from the result; a nil/empty result
// means the whole form is valid. Iteration follows registration order so
// that First() points at the first invalid field on the page.
func (rs *RuleSet) ValidateForm(values Values) ValidationErrors {
	var errs ValidationErrors
	for _, name := range rs.names {
		if err := rs.ValidateField(name, values[name]); err != nil {
			var verr ValidationError
			if !asValidationError(err, &verr) {
				verr = ValidationError{Field: name, Message: err.Error()}
			}
			errs.Add(verr)
		}
	}
	return errs
}

func asValidationError(err error, target *ValidationError) bool {
	verr, ok := err.(ValidationError)
	if ok {
		*target = verr
	}
	return ok
}
