package contact

import "github.com/dmitrymomot/landing/core/form"

// Field length bounds for contact submissions.
const (
	NameMinLen    = 2
	NameMaxLen    = 100
	EmailMaxLen   = 254
	MessageMinLen = 10
	MessageMaxLen = 1000
)

// Submission is a transient snapshot of the contact form. It is constructed
// fresh on each attempt and discarded after delivery; nothing outlives the
// request.
type Submission struct {
	Name    string `form:"name" json:"name" sanitize:"trim" validate:"required;min:2;max:100"`
	Email   string `form:"email" json:"email" sanitize:"trim,email" validate:"required;email;max:254"`
	Message string `form:"message" json:"message" sanitize:"trim" validate:"required;min:10;max:1000"`
}

// Values returns the submission as a field snapshot for rule validation.
func (s Submission) Values() form.Values {
	return form.Values{
		"name":    s.Name,
		"email":   s.Email,
		"message": s.Message,
	}
}

// Rules returns the static field rule set for the contact form.
// Fields absent from the set are always considered valid.
func Rules() *form.RuleSet {
	return form.NewRuleSet().
		Field("name", form.FieldRule{
			Required: true,
			MinLen:   NameMinLen,
			MaxLen:   NameMaxLen,
		}).
		Field("email", form.FieldRule{
			Required: true,
			MaxLen:   EmailMaxLen,
			Pattern:  form.EmailPattern,
			Message:  "Please enter a valid email address",
		}).
		Field("message", form.FieldRule{
			Required: true,
			MinLen:   MessageMinLen,
			MaxLen:   MessageMaxLen,
		})
}
