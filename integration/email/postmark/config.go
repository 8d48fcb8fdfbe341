package postmark

// Config holds Postmark credentials and sender identity.
// Tokens are optional so development environments can run without them,
// but New rejects an empty token to prevent silent production failures.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}
