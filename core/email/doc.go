// Package email provides transactional email delivery behind a small Sender
// interface, with a development implementation that saves emails to disk.
//
// For development:
//
//	sender := email.NewDevSender("./dev_emails")
//
// For production, wire a provider implementation such as the Postmark client
// from integration/email/postmark. Sending:
//
//	err := sender.SendEmail(ctx, email.SendParams{
//		SendTo:   "owner@example.com",
//		Subject:  "New contact request",
//		BodyHTML: body,
//		Tag:      "contact_notification",
//	})
package email
