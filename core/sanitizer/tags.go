package sanitizer

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]func(string) string{
		"trim":        Trim,
		"lower":       ToLower,
		"trim_lower":  TrimToLower,
		"single_line": SingleLine,
		"email":       NormalizeEmail,
		"escape_html": EscapeHTML,

		// Composite sanitizers for common use cases
		"text": func(s string) string {
			return RemoveExtraWhitespace(Trim(s))
		},
		"safe_text": func(s string) string {
			return EscapeHTML(RemoveExtraWhitespace(Trim(s)))
		},
	}
)

// RegisterSanitizer adds a custom sanitizer function to the registry.
func RegisterSanitizer(name string, fn func(string) string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = fn
}

// SanitizeStruct applies sanitization to struct fields based on their
// `sanitize` tags. Sanitizers in a tag run left to right, e.g.
// `sanitize:"trim,lower"`.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return errors.New("sanitizer: must pass a pointer to struct")
	}

	rt := rv.Type()
	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "" || tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			sanitized, err := applySanitizers(field.String(), tag)
			if err != nil {
				return fmt.Errorf("sanitizer: field %s: %w", rt.Field(i).Name, err)
			}
			field.SetString(sanitized)

		case reflect.Pointer:
			if field.IsNil() || field.Elem().Kind() != reflect.String {
				continue
			}
			sanitized, err := applySanitizers(field.Elem().String(), tag)
			if err != nil {
				return fmt.Errorf("sanitizer: field %s: %w", rt.Field(i).Name, err)
			}
			field.Elem().SetString(sanitized)
		}
	}

	return nil
}

func applySanitizers(value string, tag string) (string, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range strings.Split(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		fn, ok := registry[name]
		if !ok {
			return "", fmt.Errorf("unknown sanitizer %q", name)
		}
		value = fn(value)
	}

	return value, nil
}
