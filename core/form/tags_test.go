package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/landing/core/form"
)

type contactForm struct {
	Name    string `form:"name" validate:"required;min:2;max:100"`
	Email   string `form:"email" validate:"required;email;max:254"`
	Message string `form:"message" validate:"required;min:10;max:1000"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	t.Run("valid struct", func(t *testing.T) {
		t.Parallel()

		err := form.ValidateStruct(&contactForm{
			Name:    "Alice",
			Email:   "alice@example.com",
			Message: "I would like to know more about the product.",
		})
		assert.NoError(t, err)
	})

	t.Run("one error per invalid field", func(t *testing.T) {
		t.Parallel()

		err := form.ValidateStruct(&contactForm{
			Name:    "A",
			Email:   "not-an-email",
			Message: "short",
		})
		require.Error(t, err)

		verrs := form.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)

		fields := verrs.Fields()
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "email")
		assert.Contains(t, fields, "message")
	})

	t.Run("required reported before length", func(t *testing.T) {
		t.Parallel()

		err := form.ValidateStruct(&contactForm{Email: "a@b.com", Message: "long enough message"})
		require.Error(t, err)

		verrs := form.ExtractValidationErrors(err)
		require.Len(t, verrs, 1)
		assert.Equal(t, "name", verrs[0].Field)
		assert.Contains(t, verrs[0].Message, "required")
	})

	t.Run("non-pointer input", func(t *testing.T) {
		t.Parallel()

		err := form.ValidateStruct(contactForm{})
		require.Error(t, err)
		assert.Nil(t, form.ExtractValidationErrors(err))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, form.ExtractValidationErrors(nil))
	assert.Nil(t, form.ExtractValidationErrors(assert.AnError))
}
