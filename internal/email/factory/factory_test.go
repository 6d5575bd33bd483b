package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authapi/internal/config"
	"authapi/internal/logging"
)

func TestNewEmailSender_Noop(t *testing.T) {
	sender, err := NewEmailSender(context.Background(), config.EmailConfig{Provider: "noop"}, logging.Discard())
	require.NoError(t, err)
	assert.NotNil(t, sender)
}

func TestNewEmailSender_Mailgun(t *testing.T) {
	cfg := config.EmailConfig{
		Provider:      "mailgun",
		MailgunDomain: "mg.example.com",
		MailgunAPIKey: "key-test",
		FromAddress:   "noreply@example.com",
	}
	sender, err := NewEmailSender(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.NotNil(t, sender)
}

func TestNewEmailSender_MailgunMissingKey(t *testing.T) {
	_, err := NewEmailSender(context.Background(), config.EmailConfig{Provider: "mailgun"}, logging.Discard())
	assert.Error(t, err)
}

func TestNewEmailSender_Unknown(t *testing.T) {
	_, err := NewEmailSender(context.Background(), config.EmailConfig{Provider: "pigeon"}, logging.Discard())
	assert.ErrorContains(t, err, "pigeon")
}
