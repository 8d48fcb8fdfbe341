package binder_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/core/binder"
)

type contactPayload struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Message string `form:"message" json:"message"`
	Copies  int    `form:"copies" json:"copies"`
	Urgent  bool   `form:"urgent" json:"urgent"`
	Skipped string `form:"-" json:"-"`
}

func formRequest(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func jsonRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func TestFormBinder(t *testing.T) {
	t.Parallel()

	t.Run("binds tagged fields", func(t *testing.T) {
		t.Parallel()

		var p contactPayload
		err := binder.Form()(formRequest(url.Values{
			"name":    {"Jane"},
			"email":   {"jane@example.com"},
			"message": {"hello there"},
			"copies":  {"2"},
			"urgent":  {"true"},
		}), &p)

		require.NoError(t, err)
		assert.Equal(t, "Jane", p.Name)
		assert.Equal(t, "jane@example.com", p.Email)
		assert.Equal(t, "hello there", p.Message)
		assert.Equal(t, 2, p.Copies)
		assert.True(t, p.Urgent)
	})

	t.Run("ignores skipped and absent fields", func(t *testing.T) {
		t.Parallel()

		var p contactPayload
		err := binder.Form()(formRequest(url.Values{
			"name": {"Jane"},
		}), &p)

		require.NoError(t, err)
		assert.Empty(t, p.Skipped)
		assert.Empty(t, p.Email)
	})

	t.Run("rejects missing content type", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Jane"))
		var p contactPayload
		err := binder.Form()(r, &p)
		assert.ErrorIs(t, err, binder.ErrMissingContentType)
	})

	t.Run("rejects json content type", func(t *testing.T) {
		t.Parallel()

		var p contactPayload
		err := binder.Form()(jsonRequest(`{}`), &p)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("accepts charset parameter", func(t *testing.T) {
		t.Parallel()

		r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("name=Jane"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=utf-8")
		var p contactPayload
		require.NoError(t, binder.Form()(r, &p))
		assert.Equal(t, "Jane", p.Name)
	})
}

func TestJSONBinder(t *testing.T) {
	t.Parallel()

	t.Run("binds json body", func(t *testing.T) {
		t.Parallel()

		var p contactPayload
		err := binder.JSON()(jsonRequest(`{"name":"Jane","email":"jane@example.com","copies":3}`), &p)

		require.NoError(t, err)
		assert.Equal(t, "Jane", p.Name)
		assert.Equal(t, 3, p.Copies)
	})

	t.Run("rejects unknown fields", func(t *testing.T) {
		t.Parallel()

		var p contactPayload
		err := binder.JSON()(jsonRequest(`{"name":"Jane","nmae":"typo"}`), &p)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("rejects empty body", func(t *testing.T) {
		t.Parallel()

		var p contactPayload
		err := binder.JSON()(jsonRequest(``), &p)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("rejects form content type", func(t *testing.T) {
		t.Parallel()

		var p contactPayload
		err := binder.JSON()(formRequest(url.Values{"name": {"Jane"}}), &p)
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("rejects malformed json", func(t *testing.T) {
		t.Parallel()

		var p contactPayload
		err := binder.JSON()(jsonRequest(`{"name":`), &p)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}
