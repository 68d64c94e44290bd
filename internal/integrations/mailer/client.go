package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"time"
)

// TLSMode способ шифрования соединения с SMTP-сервером
type TLSMode string

const (
	// TLSModeStartTLS обычное соединение (порт 587), STARTTLS, если сервер его предлагает
	TLSModeStartTLS TLSMode = "starttls"
	// TLSModeImplicit TLS с первого байта (SMTPS, порт 465)
	TLSModeImplicit TLSMode = "implicit"
)

// ParseTLSMode пустое значение означает STARTTLS
func ParseTLSMode(s string) (TLSMode, error) {
	switch TLSMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", TLSModeStartTLS:
		return TLSModeStartTLS, nil
	case TLSModeImplicit:
		return TLSModeImplicit, nil
	default:
		return "", fmt.Errorf("%w: unknown tls mode %q", ErrInvalidConfig, s)
	}
}

// Config параметры SMTP-сервера
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	TLSMode  TLSMode
	Timeout  time.Duration
}

// Client отправляет письма через SMTP
type Client struct {
	cfg       Config
	tlsConfig *tls.Config
	log       Logger
}

// NewClient создает новый экземпляр SMTP клиента
func NewClient(cfg Config, log Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.TLSMode == "" {
		cfg.TLSMode = TLSModeStartTLS
	}
	return &Client{
		cfg:       cfg,
		tlsConfig: &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12},
		log:       log,
	}
}

// Send отправляет письмо. Таймаут берётся из контекста или из конфигурации.
func (c *Client) Send(ctx context.Context, msg Message) error {
	to, err := mail.ParseAddress(strings.TrimSpace(msg.To))
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrInvalidRecipient, msg.To, err)
	}
	from, err := mail.ParseAddress(c.cfg.From)
	if err != nil {
		return fmt.Errorf("%w: sender %q: %v", ErrSendFailed, c.cfg.From, err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	conn, err := c.dial(ctx)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	client, err := smtp.NewClient(conn, c.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("%w: handshake: %v", ErrSendFailed, err)
	}
	defer client.Close()

	if ok, _ := client.Extension("STARTTLS"); ok && c.cfg.TLSMode == TLSModeStartTLS {
		if err := client.StartTLS(c.tlsConfig); err != nil {
			return fmt.Errorf("%w: starttls: %v", ErrSendFailed, err)
		}
	}

	if c.cfg.Username != "" {
		auth := smtp.PlainAuth("", c.cfg.Username, c.cfg.Password, c.cfg.Host)
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("%w: auth: %v", ErrSendFailed, err)
		}
	}

	if err := client.Mail(from.Address); err != nil {
		return fmt.Errorf("%w: MAIL FROM: %v", ErrSendFailed, err)
	}
	if err := client.Rcpt(to.Address); err != nil {
		return fmt.Errorf("%w: RCPT TO: %v", ErrSendFailed, err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("%w: DATA: %v", ErrSendFailed, err)
	}
	if _, err := w.Write(buildMessage(from, to, msg)); err != nil {
		w.Close()
		return fmt.Errorf("%w: write body: %v", ErrSendFailed, err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("%w: close body: %v", ErrSendFailed, err)
	}

	if err := client.Quit(); err != nil {
		c.log.Warn("Mailer: QUIT failed after delivery to %s: %v", to.Address, err)
	}

	c.log.Info("Mailer: email sent to %s", to.Address)
	return nil
}

// dial открывает соединение; в режиме implicit TLS-рукопожатие выполняется сразу
func (c *Client) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(c.cfg.Host, strconv.Itoa(c.cfg.Port))

	var (
		conn net.Conn
		err  error
	)
	if c.cfg.TLSMode == TLSModeImplicit {
		dialer := &tls.Dialer{NetDialer: &net.Dialer{}, Config: c.tlsConfig}
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	} else {
		dialer := &net.Dialer{}
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: dial %s (%s): %v", ErrSendFailed, addr, c.cfg.TLSMode, err)
	}
	return conn, nil
}

func buildMessage(from, to *mail.Address, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from.String() + "\r\n")
	b.WriteString("To: " + to.String() + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", msg.Subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("Content-Transfer-Encoding: 8bit\r\n")
	b.WriteString("Date: " + time.Now().Format(time.RFC1123Z) + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(strings.ReplaceAll(msg.Body, "\n", "\r\n"))
	return []byte(b.String())
}
