package email

import (
	"fmt"

	"niddle_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail through the configured SMTP relay.
type SMTPProvider struct {
	cfg *config.Config
}

func NewSMTPProvider(cfg *config.Config) *SMTPProvider {
	return &SMTPProvider{cfg: cfg}
}

func (p *SMTPProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}

func (p *SMTPProvider) SendVerification(to string) error {
	return p.Send(to, verificationSubject, verificationBody(p.cfg.PublicBaseURL, to))
}

func (p *SMTPProvider) SendResetCode(to string, code int) error {
	return p.Send(to, resetSubject, resetBody(code))
}
