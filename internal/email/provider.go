package email

// Provider sends outbound mail. The SMTP implementation is used in
// production; tests swap in the mock.
type Provider interface {
	// Send delivers a plain-text message to a single recipient.
	Send(to, subject, body string) error

	// SendVerification sends the registration confirmation link.
	SendVerification(to string) error

	// SendResetCode sends a password-reset code.
	SendResetCode(to string, code int) error
}
