package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strings"

	"github.com/ternarybob/arbor"

	"github.com/hospitek/vitrine/internal/common"
)

// Service sends plain-text email through the configured SMTP relay
type Service struct {
	config *common.MailerConfig
	logger arbor.ILogger
}

// NewService creates a new mailer service
func NewService(cfg *common.MailerConfig, logger arbor.ILogger) *Service {
	return &Service{
		config: cfg,
		logger: logger,
	}
}

// IsConfigured reports whether enough settings are present to send mail
func (s *Service) IsConfigured() bool {
	return s.config.Host != "" && s.config.From != ""
}

// SendEmail delivers a plain-text message to a single recipient
func (s *Service) SendEmail(ctx context.Context, to, subject, body string) error {
	if !s.IsConfigured() {
		return fmt.Errorf("mailer is not configured")
	}

	msg := s.buildMessage(to, subject, body)
	addr := net.JoinHostPort(s.config.Host, fmt.Sprintf("%d", s.config.Port))

	var auth smtp.Auth
	if s.config.Username != "" {
		auth = smtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
	}

	s.logger.Debug().Str("to", to).Str("subject", subject).Msg("Sending email")

	var err error
	if s.config.UseTLS {
		err = s.sendWithTLS(ctx, addr, auth, to, msg)
	} else {
		err = smtp.SendMail(addr, auth, s.config.From, []string{to}, msg)
	}
	if err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// sendWithTLS connects over STARTTLS before authenticating. Most relays
// on port 587 require this.
func (s *Service) sendWithTLS(ctx context.Context, addr string, auth smtp.Auth, to string, msg []byte) error {
	dialer := &net.Dialer{}
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}

	client, err := smtp.NewClient(conn, s.config.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok {
		tlsConfig := &tls.Config{ServerName: s.config.Host}
		if err := client.StartTLS(tlsConfig); err != nil {
			return fmt.Errorf("STARTTLS failed: %w", err)
		}
	}

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP authentication failed: %w", err)
		}
	}

	if err := client.Mail(s.config.From); err != nil {
		return fmt.Errorf("MAIL FROM failed: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("RCPT TO failed: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("DATA failed: %w", err)
	}
	if _, err := writer.Write(msg); err != nil {
		writer.Close()
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finish message body: %w", err)
	}

	return client.Quit()
}

func (s *Service) buildMessage(to, subject, body string) []byte {
	from := s.config.From
	if s.config.FromName != "" {
		from = fmt.Sprintf("%s <%s>", s.config.FromName, s.config.From)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	b.WriteString("\r\n")
	return []byte(b.String())
}
