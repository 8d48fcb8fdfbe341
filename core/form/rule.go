package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule is a single validation check paired with the error reported when the
// check fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// EmailPattern accepts anything of the shape local@domain.tld without
// whitespace. Deliberately loose: real address verification happens by
// sending mail, not by regex.
var EmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// RequiredRule fails when the trimmed value is empty.
func RequiredRule(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLenRule fails when the value is shorter than min runes.
func MinLenRule(field, value string, min int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %d characters long", min),
			TranslationKey: "validation.min_length",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxLenRule fails when the value is longer than max runes.
func MaxLenRule(field, value string, max int) Rule {
	return Rule{
		Check: func() bool {
			return utf8.RuneCountInString(value) <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %d characters long", max),
			TranslationKey: "validation.max_length",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// PatternRule fails when the value does not match the pattern.
func PatternRule(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "has an invalid format",
			TranslationKey: "validation.pattern",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// ValidEmail fails when the value is not a plausible email address.
func ValidEmail(field, value string) Rule {
	rule := PatternRule(field, value, EmailPattern)
	rule.Error.Message = "must be a valid email address"
	rule.Error.TranslationKey = "validation.email"
	return rule
}
