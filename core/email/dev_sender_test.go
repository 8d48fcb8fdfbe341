package email_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/core/email"
)

func TestSendParams_Validate(t *testing.T) {
	t.Parallel()

	valid := email.SendParams{
		SendTo:   "user@example.com",
		Subject:  "Hello",
		BodyHTML: "<p>Hi</p>",
	}

	tests := []struct {
		name   string
		mutate func(*email.SendParams)
		valid  bool
	}{
		{name: "valid", mutate: func(p *email.SendParams) {}, valid: true},
		{name: "missing recipient", mutate: func(p *email.SendParams) { p.SendTo = "" }},
		{name: "malformed recipient", mutate: func(p *email.SendParams) { p.SendTo = "not-an-email" }},
		{name: "missing subject", mutate: func(p *email.SendParams) { p.Subject = "" }},
		{name: "missing body", mutate: func(p *email.SendParams) { p.BodyHTML = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := valid
			tt.mutate(&params)

			err := params.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, email.ErrInvalidParams)
			}
		})
	}
}

func TestDevSender_SendEmail(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendParams{
		SendTo:   "owner@example.com",
		Subject:  "New contact request",
		BodyHTML: "<h1>Contact</h1>",
		Tag:      "contact_notification",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var htmlFile, jsonFile string
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".html":
			htmlFile = e.Name()
		case ".json":
			jsonFile = e.Name()
		}
	}
	require.NotEmpty(t, htmlFile)
	require.NotEmpty(t, jsonFile)
	assert.Contains(t, htmlFile, "contact_notification")

	htmlBody, err := os.ReadFile(filepath.Join(dir, htmlFile))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Contact</h1>", string(htmlBody))

	jsonBody, err := os.ReadFile(filepath.Join(dir, jsonFile))
	require.NoError(t, err)

	var meta struct {
		SendTo  string `json:"send_to"`
		Subject string `json:"subject"`
		Tag     string `json:"tag"`
	}
	require.NoError(t, json.Unmarshal(jsonBody, &meta))
	assert.Equal(t, "owner@example.com", meta.SendTo)
	assert.Equal(t, "New contact request", meta.Subject)
	assert.Equal(t, "contact_notification", meta.Tag)
}

func TestDevSender_InvalidParams(t *testing.T) {
	t.Parallel()

	sender := email.NewDevSender(t.TempDir())
	err := sender.SendEmail(context.Background(), email.SendParams{})
	assert.ErrorIs(t, err, email.ErrInvalidParams)
}

func TestDevSender_FilenameFromSubject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	sender := email.NewDevSender(dir)

	err := sender.SendEmail(context.Background(), email.SendParams{
		SendTo:   "user@example.com",
		Subject:  "Hello World / Special?",
		BodyHTML: "<p>body</p>",
	})
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), filepath.Ext(e.Name()))
		assert.Contains(t, name, "hello_world")
		assert.NotContains(t, name, "/")
		assert.NotContains(t, name, "?")
	}
}
