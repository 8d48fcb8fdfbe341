package theme_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/core/cookie"
	"github.com/dmitrymomot/landing/theme"
)

func newStore(t *testing.T) *theme.Store {
	t.Helper()
	m, err := cookie.New([]string{"test-secret-key-32-characters-ok"})
	require.NoError(t, err)
	return theme.NewStore(m)
}

func requestWithTheme(value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	if value != "" {
		r.AddCookie(&http.Cookie{Name: theme.CookieName, Value: value})
	}
	return r
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  theme.Theme
	}{
		{input: "dark", want: theme.Dark},
		{input: "light", want: theme.Light},
		{input: "", want: theme.Light},
		{input: "DARK", want: theme.Light},
		{input: "solarized", want: theme.Light},
	}

	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, theme.Parse(tt.input))
		})
	}
}

func TestTheme_Toggle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, theme.Dark, theme.Light.Toggle())
	assert.Equal(t, theme.Light, theme.Dark.Toggle())
	assert.True(t, theme.Dark.IsDark())
	assert.False(t, theme.Light.IsDark())
}

func TestStore_Resolve(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	assert.Equal(t, theme.Light, store.Resolve(requestWithTheme("")))
	assert.Equal(t, theme.Dark, store.Resolve(requestWithTheme("dark")))
	assert.Equal(t, theme.Light, store.Resolve(requestWithTheme("garbage")))
}

func TestStore_Flip(t *testing.T) {
	t.Parallel()

	store := newStore(t)

	t.Run("light to dark", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		next, err := store.Flip(w, requestWithTheme(""))
		require.NoError(t, err)
		assert.Equal(t, theme.Dark, next)

		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, theme.CookieName, cookies[0].Name)
		assert.Equal(t, "dark", cookies[0].Value)
		assert.Positive(t, cookies[0].MaxAge)
	})

	t.Run("dark to light", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		next, err := store.Flip(w, requestWithTheme("dark"))
		require.NoError(t, err)
		assert.Equal(t, theme.Light, next)
	})
}
