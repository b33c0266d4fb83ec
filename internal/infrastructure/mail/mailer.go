package mail

import (
	"fmt"

	gomail "github.com/wneessen/go-mail"
	"github.com/nownpp/wonder-science-hub/internal/config"
)

// Mailer sends HTML emails.
type Mailer interface {
	SendHTML(to, subject, htmlBody string) error
}

type mailer struct {
	client   *gomail.Client
	from     string
	fromName string
}

// NewMailer builds a go-mail client from config. Encryption defaults to
// STARTTLS unless explicitly disabled (local MailHog/Mailpit setups).
func NewMailer(cfg *config.Config) (Mailer, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.MailPort),
	}

	switch cfg.MailEncryption {
	case "ssl":
		opts = append(opts, gomail.WithSSL())
	case "none":
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.NoTLS))
	default:
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}

	if cfg.MailUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.MailUsername),
			gomail.WithPassword(cfg.MailPassword),
		)
	}

	client, err := gomail.NewClient(cfg.MailHost, opts...)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}
	return &mailer{client: client, from: cfg.MailFrom, fromName: cfg.MailFromName}, nil
}

func (m *mailer) SendHTML(to, subject, htmlBody string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.from); err != nil {
		return fmt.Errorf("set from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlBody)
	return m.client.DialAndSend(msg)
}
