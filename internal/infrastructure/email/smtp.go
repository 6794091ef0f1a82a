package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "github.com/techile/fieldportal/internal/shared/config"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/services/markdown"
)

// SMTPEmailSender delivers transactional mail. Bodies are written in
// markdown and rendered to sanitized HTML before sending; the raw markdown
// doubles as the plain-text alternative.
type SMTPEmailSender struct {
	config   sharedConfig.EmailConfig
	dialer   *gomail.Dialer
	renderer markdown.Service
	logger   logger.Interface
}

func NewSMTPEmailSender(cfg sharedConfig.EmailConfig, renderer markdown.Service, logger logger.Interface) *SMTPEmailSender {
	dialer := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)

	return &SMTPEmailSender{
		config:   cfg,
		dialer:   dialer,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *SMTPEmailSender) Send(ctx context.Context, to, subject, body string) error {
	htmlBody, err := s.renderer.ToHTMLSanitized(body)
	if err != nil {
		return fmt.Errorf("failed to render email body: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.config.FromAddress, s.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.AddAlternative("text/html", htmlBody)

	// gomail has no context support; honor cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Debugw("email sent", "to", to, "subject", subject)
	return nil
}
