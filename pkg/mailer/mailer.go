package mailer

import (
	"fmt"

	"hire-nest/pkg/utils"

	"gopkg.in/gomail.v2"
)

// Email is the message handed to the notification gateway. The sender
// address always comes from configuration.
type Email struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

// Mailer delivers email over SMTP. Callers treat any failure as recoverable;
// a failed delivery must never abort the surrounding operation.
type Mailer struct {
	config utils.EmailConfig
	dialer *gomail.Dialer
}

func NewMailer(config utils.EmailConfig) *Mailer {
	dialer := gomail.NewDialer(
		config.Host,
		config.Port,
		config.User,
		config.Password,
	)

	return &Mailer{
		config: config,
		dialer: dialer,
	}
}

// Send delivers a single email.
func (m *Mailer) Send(email Email) error {
	if email.To == "" {
		return fmt.Errorf("no recipient specified")
	}

	msg := gomail.NewMessage()
	m.setEmailMessage(msg, email)

	return m.dialer.DialAndSend(msg)
}

// SendBulk delivers multiple emails over one SMTP connection. It stops at
// the first dial failure but reports per-message failures individually.
func (m *Mailer) SendBulk(emails []Email) []error {
	sender, err := m.dialer.Dial()
	if err != nil {
		errs := make([]error, len(emails))
		for i := range errs {
			errs[i] = err
		}
		return errs
	}
	defer sender.Close()

	errs := make([]error, len(emails))
	msg := gomail.NewMessage()
	for i, email := range emails {
		m.setEmailMessage(msg, email)
		errs[i] = gomail.Send(sender, msg)
		msg.Reset()
	}

	return errs
}

func (m *Mailer) setEmailMessage(msg *gomail.Message, email Email) {
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		msg.SetBody("text/html", email.HTMLBody)
		if email.TextBody != "" {
			msg.AddAlternative("text/plain", email.TextBody)
		}
	} else {
		msg.SetBody("text/plain", email.TextBody)
	}
}
