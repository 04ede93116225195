package email

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"

	"go-email-backend/config"
)

// Message is a single outbound email. It is constructed fresh per send
// and never mutated or retained after transmission. The sender address
// itself comes from the active SMTP settings; FromName is the display
// name placed in front of it.
type Message struct {
	FromName string
	To       string
	Subject  string
	HTML     string
}

// Transport delivers a composed message. Implementations are blocking
// and stateless per call; every Send owns its own connection.
type Transport interface {
	Send(msg *Message) error
}

// SMTPTransport sends through a plain SMTP relay. Each send dials a new
// connection, upgrades it with STARTTLS before any credentials are
// exchanged, and closes it once the message is accepted. Connections are
// never reused across operations. Settings are read per send so runtime
// configuration updates apply to the next message.
type SMTPTransport struct {
	store *config.SMTPStore
}

func NewSMTPTransport(store *config.SMTPStore) *SMTPTransport {
	return &SMTPTransport{store: store}
}

func (t *SMTPTransport) Send(msg *Message) error {
	settings := t.store.Current()
	addr := net.JoinHostPort(settings.Server, settings.Port)

	client, err := smtp.Dial(addr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer client.Close()

	if err := client.StartTLS(&tls.Config{ServerName: settings.Server}); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	// Unauthenticated send is attempted when credentials are absent.
	if settings.Username != "" && settings.Password != "" {
		auth := smtp.PlainAuth("", settings.Username, settings.Password, settings.Server)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err := client.Mail(settings.SenderEmail); err != nil {
		return fmt.Errorf("failed to set sender %s: %w", settings.SenderEmail, err)
	}
	if err := client.Rcpt(msg.To); err != nil {
		return fmt.Errorf("failed to set recipient %s: %w", msg.To, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data stream: %w", err)
	}
	if _, err := w.Write(buildMIME(msg, settings.SenderEmail)); err != nil {
		w.Close()
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to finish message: %w", err)
	}

	return client.Quit()
}

// buildMIME constructs the HTML MIME message with its headers.
func buildMIME(msg *Message, sender string) []byte {
	return []byte(fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		msg.FromName,
		sender,
		msg.To,
		msg.Subject,
		msg.HTML,
	))
}
