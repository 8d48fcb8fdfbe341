package form

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// ValidatorFunc is a function that validates a value and returns a Rule.
type ValidatorFunc func(field string, value reflect.Value, params []string) Rule

var (
	registryMu sync.RWMutex
	registry   = map[string]ValidatorFunc{
		"required": requiredValidator,
		"min":      minValidator,
		"max":      maxValidator,
		"email":    emailValidator,
		"regex":    regexValidator,
	}
)

// RegisterValidator adds a custom validator function to the registry.
func RegisterValidator(name string, fn ValidatorFunc) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// ValidateStruct validates a struct based on its `validate` field tags.
// Rules are separated by semicolon, parameters by colon, e.g.
// `validate:"required;min:2;max:100"`. Returns ValidationErrors on failure.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return fmt.Errorf("form: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("form: must pass a pointer to struct")
	}

	var errs ValidationErrors
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		structField := rt.Field(i)
		tag := structField.Tag.Get("validate")
		if tag == "" || tag == "-" {
			continue
		}

		fieldName := fieldDisplayName(structField)
		validateField(fieldName, field, tag, &errs)
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// fieldDisplayName prefers the form tag name so error fields match the
// names used in markup and JSON payloads.
func fieldDisplayName(field reflect.StructField) string {
	for _, tagName := range []string{"form", "json"} {
		if tag := field.Tag.Get(tagName); tag != "" && tag != "-" {
			return strings.Split(tag, ",")[0]
		}
	}
	return field.Name
}

func validateField(fieldName string, field reflect.Value, tag string, errs *ValidationErrors) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, ruleStr := range strings.Split(tag, ";") {
		ruleStr = strings.TrimSpace(ruleStr)
		if ruleStr == "" {
			continue
		}

		parts := strings.SplitN(ruleStr, ":", 2)
		ruleName := strings.TrimSpace(parts[0])

		var params []string
		if len(parts) > 1 {
			for _, p := range strings.Split(parts[1], ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}

		if validatorFn, ok := registry[ruleName]; ok {
			rule := validatorFn(fieldName, field, params)
			if !rule.Check() {
				errs.Add(rule.Error)
				return // first failing rule wins per field
			}
		}
	}
}

// Built-in validators

func requiredValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{
			Check: func() bool { return !value.IsZero() },
			Error: RequiredRule(field, "").Error,
		}
	}
	return RequiredRule(field, value.String())
}

func minValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String || len(params) < 1 {
		return Rule{Check: func() bool { return true }}
	}
	min, _ := strconv.Atoi(params[0])
	return MinLenRule(field, strings.TrimSpace(value.String()), min)
}

func maxValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String || len(params) < 1 {
		return Rule{Check: func() bool { return true }}
	}
	max, _ := strconv.Atoi(params[0])
	return MaxLenRule(field, strings.TrimSpace(value.String()), max)
}

func emailValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String {
		return Rule{Check: func() bool { return true }}
	}
	return ValidEmail(field, value.String())
}

func regexValidator(field string, value reflect.Value, params []string) Rule {
	if value.Kind() != reflect.String || len(params) < 1 {
		return Rule{Check: func() bool { return true }}
	}
	pattern, err := regexp.Compile(params[0])
	if err != nil {
		return Rule{Check: func() bool { return true }}
	}
	return PatternRule(field, value.String(), pattern)
}
