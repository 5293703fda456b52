package mailer

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/m04kA/SMC-HotelBooking/internal/domain"
)

// Client отправляет письма с подтверждением бронирования через SMTP
type Client struct {
	cfg  Config
	log  Logger
	send func(ctx context.Context, msg *mail.Msg) error
}

// NewClient создает новый экземпляр SMTP клиента
func NewClient(cfg Config, log Logger) *Client {
	c := &Client{cfg: cfg, log: log}
	c.send = c.dialAndSend
	return c
}

// SendConfirmation отправляет гостю письмо с подтверждением
func (c *Client) SendConfirmation(ctx context.Context, rec domain.ConfirmationRecord) error {
	msg, err := c.buildMessage(rec)
	if err != nil {
		return err
	}

	if err := c.send(ctx, msg); err != nil {
		return fmt.Errorf("%w: SendConfirmation - %s (host=%s port=%d): %v", ErrSend, rec.Number(), c.cfg.Host, c.cfg.Port, err)
	}

	c.log.Info("Mailer: confirmation %s sent to %s", rec.Number(), rec.Draft().Guest().Email)
	return nil
}

func (c *Client) buildMessage(rec domain.ConfirmationRecord) (*mail.Msg, error) {
	guest := rec.Draft().Guest()

	m := mail.NewMsg()

	if err := m.From(fmt.Sprintf("%s <%s>", c.cfg.FromName, c.cfg.FromEmail)); err != nil {
		return nil, fmt.Errorf("%w: from: %v", ErrBuildMessage, err)
	}

	if err := m.To(guest.Email); err != nil {
		return nil, fmt.Errorf("%w: to: %v", ErrBuildMessage, err)
	}

	m.Subject(fmt.Sprintf("Booking Confirmation %s - %s", rec.Number(), c.cfg.FromName))
	m.SetDate()
	m.SetMessageID()

	body, err := renderConfirmation(c.cfg.FromName, rec)
	if err != nil {
		return nil, fmt.Errorf("%w: render: %v", ErrBuildMessage, err)
	}
	m.SetBodyString(mail.TypeTextHTML, body)

	return m, nil
}

func (c *Client) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	opts := []mail.Option{
		mail.WithPort(c.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTLSConfig(&tls.Config{ServerName: c.cfg.Host}),
	}
	if c.cfg.User != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(c.cfg.User),
			mail.WithPassword(c.cfg.Password),
		)
	}
	if c.cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(c.cfg.Timeout))
	}

	client, err := mail.NewClient(c.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}

	return client.DialAndSendWithContext(ctx, msg)
}

// Disabled получатель подтверждений, когда отправка писем выключена
type Disabled struct {
	log Logger
}

func NewDisabled(log Logger) *Disabled {
	return &Disabled{log: log}
}

// SendConfirmation только логирует выпущенное подтверждение
func (d *Disabled) SendConfirmation(ctx context.Context, rec domain.ConfirmationRecord) error {
	d.log.Info("Mailer: disabled, confirmation %s not sent", rec.Number())
	return nil
}
