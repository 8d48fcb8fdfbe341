package contact

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/dmitrymomot/landing/core/form"
)

// User-facing banner messages.
const (
	successMessage = "Thanks for reaching out! We'll get back to you shortly."
	failureMessage = "Something went wrong while sending your message. Please try again."
)

// Receipt is the outcome of a submission attempt: either the delivery
// succeeded or it failed in a way the visitor can retry. Validation
// failures never produce a receipt.
type Receipt struct {
	ID      uuid.UUID `json:"id"`
	Success bool      `json:"success"`
	Message string    `json:"message"`
}

// Service gates contact submissions on field-level rules and hands valid
// ones to a deliverer. A generation counter tracks the newest submission so
// a slow in-flight delivery cannot report over a later attempt.
type Service struct {
	rules      *form.RuleSet
	deliverer  Deliverer
	generation atomic.Uint64
}

// NewService creates a contact service backed by the given deliverer.
func NewService(deliverer Deliverer) *Service {
	return &Service{
		rules:     Rules(),
		deliverer: deliverer,
	}
}

// ValidateField checks a single field against the static rule set.
// Unknown fields are always valid.
func (s *Service) ValidateField(name, value string) error {
	return s.rules.ValidateField(name, value)
}

// ValidateForm checks a full field snapshot. Fields with no error are
// omitted from the result.
func (s *Service) ValidateForm(values form.Values) form.ValidationErrors {
	return s.rules.ValidateForm(values)
}

// Submit validates the submission and, if it passes, delivers it.
// Validation failures return the field errors and never reach the
// deliverer. A delivery failure is a normal outcome reported in the
// receipt; ErrSuperseded is returned when a newer submission started
// while this one was in flight.
func (s *Service) Submit(ctx context.Context, sub Submission) (Receipt, error) {
	if verrs := s.ValidateForm(sub.Values()); !verrs.IsEmpty() {
		return Receipt{}, verrs
	}

	generation := s.generation.Add(1)

	err := s.deliverer.Deliver(ctx, sub)

	// A newer submission owns the UI outcome now; drop this result.
	if s.generation.Load() != generation {
		return Receipt{}, ErrSuperseded
	}

	switch {
	case err == nil:
		return Receipt{ID: uuid.New(), Success: true, Message: successMessage}, nil
	case errors.Is(err, ErrDeliveryFailed):
		return Receipt{ID: uuid.New(), Success: false, Message: failureMessage}, nil
	default:
		return Receipt{}, err
	}
}
