package mailer

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

var ErrNotConfigured = errors.New("smtp credentials are not configured")

// Attachment is an optional file forwarded with a contact message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is a contact-form email addressed to the site owner.
type Message struct {
	FromName   string
	ReplyTo    string
	Subject    string
	Body       string
	Attachment *Attachment
}

// Mailer dispatches contact messages. The interface exists so handlers can
// be tested without an SMTP server.
type Mailer interface {
	Send(msg Message) error
}

// SMTPMailer sends mail through a single SMTP account configured via
// EMAIL_USER / EMAIL_PASS / EMAIL_TO.
type SMTPMailer struct {
	host string
	port int
	user string
	pass string
	to   string
}

func NewSMTPMailer(host string, port int, user, pass, to string) *SMTPMailer {
	return &SMTPMailer{host: host, port: port, user: user, pass: pass, to: to}
}

func (m *SMTPMailer) Send(msg Message) error {
	if m.user == "" || m.pass == "" || m.to == "" {
		return ErrNotConfigured
	}

	mail := gomail.NewMessage()
	mail.SetAddressHeader("From", m.user, msg.FromName)
	mail.SetHeader("To", m.to)
	if msg.ReplyTo != "" {
		mail.SetHeader("Reply-To", msg.ReplyTo)
	}
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Body)

	if msg.Attachment != nil {
		content := msg.Attachment.Content
		mail.Attach(msg.Attachment.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(mail); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
