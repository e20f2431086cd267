package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"tourist-registry-api/config"
)

const confirmationSubject = "Email confirmation code"

var confirmationTmpl = template.Must(template.New("confirmation").Parse(
	`<p>Your confirmation code is: <b>{{.Code}}</b></p>
<p>The code expires in {{.TTL}}.</p>`,
))

type Mailer struct {
	cfg config.SMTP
	log *zap.Logger
	ttl time.Duration
}

func New(cfg config.SMTP, logger *zap.Logger, codeTTL time.Duration) *Mailer {
	return &Mailer{
		cfg: cfg,
		log: logger,
		ttl: codeTTL,
	}
}

func (m *Mailer) SendConfirmationCode(ctx context.Context, to, code string) error {
	var body strings.Builder
	if err := confirmationTmpl.Execute(&body, struct {
		Code string
		TTL  time.Duration
	}{Code: code, TTL: m.ttl}); err != nil {
		return fmt.Errorf("render confirmation mail: %w", err)
	}

	msg := buildMessage(m.cfg, to, confirmationSubject, body.String())

	if err := m.send(ctx, to, msg); err != nil {
		// the stored code stays valid, a resend can still succeed
		return fmt.Errorf("send confirmation mail: %w", err)
	}

	return nil
}

// buildMessage assembles an RFC 5322 message with HTML body.
func buildMessage(cfg config.SMTP, to, subject, body string) string {
	from := cfg.From
	if cfg.FromName != "" {
		from = fmt.Sprintf("%s <%s>", cfg.FromName, cfg.From)
	}

	var msg strings.Builder
	msg.WriteString("From: " + from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	return msg.String()
}

// send submits via STARTTLS with a bounded dial and I/O deadline so a
// stuck SMTP server cannot hang the request.
func (m *Mailer) send(ctx context.Context, to, message string) error {
	timeout := m.cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	dialer := &net.Dialer{Timeout: timeout}
	netConn, err := dialer.DialContext(ctx, "tcp", m.cfg.Addr())
	if err != nil {
		return fmt.Errorf("dial smtp %s: %w", m.cfg.Addr(), err)
	}
	_ = netConn.SetDeadline(time.Now().Add(timeout))

	conn, err := smtp.NewClient(netConn, m.cfg.Host)
	if err != nil {
		_ = netConn.Close()
		return fmt.Errorf("smtp client: %w", err)
	}
	defer conn.Close()

	if err = conn.Hello("localhost"); err != nil {
		return fmt.Errorf("smtp hello: %w", err)
	}
	if err = conn.StartTLS(&tls.Config{ServerName: m.cfg.Host}); err != nil {
		return fmt.Errorf("smtp starttls: %w", err)
	}

	if m.cfg.Username != "" && m.cfg.Password != "" {
		auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
		if err = conn.Auth(auth); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err = conn.Mail(m.cfg.From); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err = conn.Rcpt(to); err != nil {
		return fmt.Errorf("smtp rcpt to: %w", err)
	}

	w, err := conn.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err = w.Write([]byte(message)); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp write: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}

	m.log.Info("confirmation mail submitted", zap.String("to", to))

	return conn.Quit()
}
