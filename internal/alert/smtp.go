package alert

import (
	"context"
	"fmt"
	"net/smtp"
)

// SMTPNotifier sends alert mail through an SMTP relay with STARTTLS
// (smtp.SendMail negotiates it when the server offers it).
type SMTPNotifier struct {
	host     string
	port     string
	user     string
	password string
}

// NewSMTPNotifier creates an SMTP-backed notifier
func NewSMTPNotifier(host, port, user, password string) *SMTPNotifier {
	return &SMTPNotifier{
		host:     host,
		port:     port,
		user:     user,
		password: password,
	}
}

// Send delivers one message. net/smtp has no context support, so the send
// runs in a goroutine and the context deadline abandons the wait; the
// dispatcher's timeout bounds how long a caller can be stalled.
func (n *SMTPNotifier) Send(ctx context.Context, recipient, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", n.user, recipient, subject, body)

	done := make(chan error, 1)
	go func() {
		auth := smtp.PlainAuth("", n.user, n.password, n.host)
		done <- smtp.SendMail(n.host+":"+n.port, auth, n.user, []string{recipient}, []byte(msg))
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp send: %w", ctx.Err())
	}
}

var _ Notifier = (*SMTPNotifier)(nil)
