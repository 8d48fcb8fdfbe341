package theme

import (
	"net/http"

	"github.com/dmitrymomot/landing/core/cookie"
)

// Theme is the visitor's color scheme preference.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// CookieName stores the theme preference on the visitor's browser.
const CookieName = "theme"

// cookieMaxAge keeps the preference for a year.
const cookieMaxAge = 365 * 24 * 60 * 60

// Parse maps a raw string to a known theme. Anything unrecognized falls
// back to light, so a tampered cookie can never break rendering.
func Parse(s string) Theme {
	if Theme(s) == Dark {
		return Dark
	}
	return Light
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// IsDark reports whether the theme is dark, for template conditionals.
func (t Theme) IsDark() bool {
	return t == Dark
}

func (t Theme) String() string {
	return string(t)
}

// Store reads and writes the preference cookie.
type Store struct {
	cookies *cookie.Manager
}

// NewStore creates a theme store backed by the cookie manager.
func NewStore(cookies *cookie.Manager) *Store {
	return &Store{cookies: cookies}
}

// Resolve returns the visitor's theme, defaulting to light when the cookie
// is absent or unreadable.
func (s *Store) Resolve(r *http.Request) Theme {
	value, err := s.cookies.Get(r, CookieName)
	if err != nil {
		return Light
	}
	return Parse(value)
}

// Save persists the preference. The cookie is plain, not signed: the worst
// a forged value can do is pick the fallback theme.
func (s *Store) Save(w http.ResponseWriter, t Theme) error {
	return s.cookies.Set(w, CookieName, t.String(), cookie.WithMaxAge(cookieMaxAge))
}

// Flip toggles the current preference and persists the result.
func (s *Store) Flip(w http.ResponseWriter, r *http.Request) (Theme, error) {
	next := s.Resolve(r).Toggle()
	if err := s.Save(w, next); err != nil {
		return Light, err
	}
	return next, nil
}
