package mailgun

import (
	"context"
	"fmt"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"

	"authapi/internal/email"
	"authapi/internal/port"
)

const sendTimeout = 10 * time.Second

type mailgunSender struct {
	client      *mg.MailgunImpl
	fromAddress string
	fromName    string
	baseURL     string
}

// NewMailgunSender creates a Mailgun-backed EmailSender.
func NewMailgunSender(domain, apiKey, fromAddress, fromName, baseURL string) (port.EmailSender, error) {
	if domain == "" || apiKey == "" {
		return nil, fmt.Errorf("mailgun domain and api key are required")
	}
	return &mailgunSender{
		client:      mg.NewMailgun(domain, apiKey),
		fromAddress: fromAddress,
		fromName:    fromName,
		baseURL:     baseURL,
	}, nil
}

func (s *mailgunSender) SendVerificationEmail(ctx context.Context, toEmail, toName, verificationToken string) error {
	verifyURL := email.VerificationURL(s.baseURL, verificationToken)
	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	msg := s.client.NewMessage(from, email.VerificationSubject, email.VerificationText(toName, verifyURL), toEmail)
	msg.SetHtml(email.VerificationHTML(toName, verifyURL))

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if _, _, err := s.client.Send(ctx, msg); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}
