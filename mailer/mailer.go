package mailer

import (
	"fmt"
	"log/slog"
	"net/smtp"
)

// Mailer delivers outbound platform mail (verification links, reset tokens).
// Sends are fire-and-forget from the caller's perspective: a failed send is
// logged, never rolled back into the triggering operation.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends through a plain SMTP relay.
type SMTPMailer struct {
	Addr string // host:port
	From string
	Auth smtp.Auth
}

func NewSMTPMailer(host string, port int, from, username, password string) *SMTPMailer {
	m := &SMTPMailer{
		Addr: fmt.Sprintf("%s:%d", host, port),
		From: from,
	}
	if username != "" {
		m.Auth = smtp.PlainAuth("", username, password, host)
	}
	return m
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	msg := []byte("From: " + m.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"\r\n" +
		body + "\r\n")
	if err := smtp.SendMail(m.Addr, m.Auth, m.From, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send to %s failed: %w", to, err)
	}
	return nil
}

// LogMailer is used when no SMTP relay is configured: mail is recorded in the
// structured log instead of delivered.
type LogMailer struct{}

func (LogMailer) Send(to, subject, body string) error {
	slog.Info("mail not delivered (no SMTP relay configured)",
		"to", to, "subject", subject)
	return nil
}
