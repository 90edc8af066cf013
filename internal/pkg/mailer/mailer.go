package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"github.com/transportconnect/transportconnect/internal/pkg/logger"
	"github.com/transportconnect/transportconnect/internal/pkg/models"
	"github.com/transportconnect/transportconnect/internal/pkg/retry"
)

// Mailer sends transactional emails over SMTP. Delivery is strictly
// best-effort: a failed send is retried with backoff, then logged and
// swallowed so it never blocks the operation that triggered it.
type Mailer struct {
	cfg     models.SMTPConfig
	retrier *retry.Retrier
}

// NewMailer creates a mailer from SMTP configuration
func NewMailer(cfg models.SMTPConfig) *Mailer {
	retryCfg := retry.DefaultConfig()
	retryCfg.MaxRetries = 2
	retryCfg.BaseDelay = 200 * time.Millisecond
	retryCfg.MaxDelay = 2 * time.Second

	return &Mailer{
		cfg:     cfg,
		retrier: retry.New(retryCfg),
	}
}

// Send delivers a plain-text email to one recipient
func (m *Mailer) Send(to, subject, body string) {
	if m.cfg.Host == "" {
		logger.Debug("SMTP not configured, skipping email",
			logger.String("subject", subject))
		return
	}

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)

	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	msg := strings.Join([]string{
		"From: " + m.cfg.From,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := m.retrier.Execute(ctx, func(ctx context.Context) error {
		return smtp.SendMail(addr, auth, m.cfg.From, []string{to}, []byte(msg))
	})
	if err != nil {
		logger.Warn("Failed to send email",
			logger.String("to", to),
			logger.String("subject", subject),
			logger.Err(err))
		return
	}

	logger.Info("Email sent",
		logger.String("to", to),
		logger.String("subject", subject))
}
