package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendVerificationEmail(ctx context.Context, toEmail, toName, verificationToken string) error
}
