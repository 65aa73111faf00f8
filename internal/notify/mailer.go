package notify

import (
	"context"
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Mailer sends a single message. Delivery and retry are the provider's
// problem; callers treat every send as best effort.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ConsoleMailer logs outbound mail instead of sending it. Used in dev and
// whenever SMTP_ADDR is not configured.
type ConsoleMailer struct {
	enabled bool
}

func NewConsoleMailer(enabled bool) *ConsoleMailer {
	return &ConsoleMailer{enabled: enabled}
}

func (m *ConsoleMailer) Send(_ context.Context, to, subject, body string) error {
	if m.enabled {
		log.Printf("[DEV-EMAIL] to=%s subject=%q body=%q", to, subject, body)
	}
	return nil
}

// SMTPMailer sends plain-text mail over a single SMTP endpoint.
type SMTPMailer struct {
	addr     string // host:port
	username string
	password string
	from     string
}

func NewSMTPMailer(addr, username, password, from string) *SMTPMailer {
	return &SMTPMailer{addr: addr, username: username, password: password, from: from}
}

func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if m.username != "" {
		host := m.addr
		if i := strings.IndexByte(host, ':'); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", m.username, m.password, host)
	}

	if err := smtp.SendMail(m.addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("smtp send to %s: %w", to, err)
	}
	return nil
}
