// Package factory selects the email sender configured for the deployment.
package factory

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"authapi/internal/config"
	"authapi/internal/email/mailgun"
	"authapi/internal/email/noop"
	"authapi/internal/email/ses"
	"authapi/internal/port"
)

// NewEmailSender returns the sender named by cfg.Provider: "ses", "mailgun" or "noop".
func NewEmailSender(ctx context.Context, cfg config.EmailConfig, log logrus.FieldLogger) (port.EmailSender, error) {
	switch cfg.Provider {
	case "ses":
		return ses.NewSESSender(ctx, cfg.Region, cfg.FromAddress, cfg.FromName, cfg.VerifyBaseURL)
	case "mailgun":
		return mailgun.NewMailgunSender(cfg.MailgunDomain, cfg.MailgunAPIKey, cfg.FromAddress, cfg.FromName, cfg.VerifyBaseURL)
	case "noop", "":
		return noop.NewNoopSender(cfg.VerifyBaseURL, log), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}
