package noop

import (
	"context"

	"github.com/sirupsen/logrus"

	"authapi/internal/email"
	"authapi/internal/port"
)

type noopSender struct {
	baseURL string
	log     logrus.FieldLogger
}

// NewNoopSender creates an EmailSender that only logs the verification link.
func NewNoopSender(baseURL string, log logrus.FieldLogger) port.EmailSender {
	return &noopSender{baseURL: baseURL, log: log}
}

func (s *noopSender) SendVerificationEmail(_ context.Context, toEmail, toName, verificationToken string) error {
	s.log.WithFields(logrus.Fields{
		"to":         toEmail,
		"name":       toName,
		"verify_url": email.VerificationURL(s.baseURL, verificationToken),
	}).Info("verification email (noop)")
	return nil
}
