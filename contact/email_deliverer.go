package contact

import (
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/dmitrymomot/landing/core/email"
)

// EmailDeliverer forwards contact submissions to a notification inbox
// through an email.Sender implementation.
type EmailDeliverer struct {
	sender email.Sender
	sendTo string
}

// NewEmailDeliverer creates a deliverer that emails each submission to the
// given address.
func NewEmailDeliverer(sender email.Sender, sendTo string) (*EmailDeliverer, error) {
	if sender == nil {
		return nil, fmt.Errorf("%w: sender is required", email.ErrInvalidConfig)
	}
	if sendTo == "" {
		return nil, fmt.Errorf("%w: notification address is required", email.ErrInvalidConfig)
	}

	return &EmailDeliverer{sender: sender, sendTo: sendTo}, nil
}

// Deliver sends the submission as a notification email.
func (d *EmailDeliverer) Deliver(ctx context.Context, sub Submission) error {
	if err := d.sender.SendEmail(ctx, email.SendParams{
		SendTo:   d.sendTo,
		Subject:  fmt.Sprintf("New contact request from %s", sub.Name),
		BodyHTML: renderNotification(sub),
		Tag:      "contact_notification",
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	return nil
}

// renderNotification builds a minimal HTML body; submission values are
// user input and must be escaped.
func renderNotification(sub Submission) string {
	var b strings.Builder
	b.WriteString("<h2>New contact request</h2>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", html.EscapeString(sub.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", html.EscapeString(sub.Email))
	fmt.Fprintf(&b, "<p><strong>Message:</strong></p><p>%s</p>", html.EscapeString(sub.Message))
	return b.String()
}
