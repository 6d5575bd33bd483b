package google

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/idtoken"
	"google.golang.org/api/option"

	"authapi/internal/domain"
	"authapi/internal/port"
)

// payloadValidator is the subset of *idtoken.Validator the verifier needs.
type payloadValidator interface {
	Validate(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)
}

// Verifier validates Google ID tokens against the configured client ID.
type Verifier struct {
	clientID  string
	validator payloadValidator
	log       logrus.FieldLogger
}

// NewVerifier creates a Google ID token verifier. clientID is the OAuth
// client the tokens must be issued for.
func NewVerifier(ctx context.Context, clientID string, log logrus.FieldLogger) (*Verifier, error) {
	if clientID == "" {
		return nil, fmt.Errorf("google client id is required")
	}
	v, err := idtoken.NewValidator(ctx, option.WithHTTPClient(&http.Client{
		Timeout: 10 * time.Second,
	}))
	if err != nil {
		return nil, fmt.Errorf("creating google id token validator: %w", err)
	}
	return &Verifier{clientID: clientID, validator: v, log: log}, nil
}

// VerifyIDToken returns the subject, email and name claims of a valid token.
// Every failure is reported as domain.ErrSocialAuthTokenInvalid.
func (v *Verifier) VerifyIDToken(ctx context.Context, idToken string) (*port.SocialAuthClaims, error) {
	payload, err := v.validator.Validate(ctx, idToken, v.clientID)
	if err != nil {
		v.log.WithError(err).Debug("google id token rejected")
		return nil, domain.ErrSocialAuthTokenInvalid
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		v.log.WithField("iss", payload.Issuer).Debug("google id token has unexpected issuer")
		return nil, domain.ErrSocialAuthTokenInvalid
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	if payload.Subject == "" || email == "" {
		return nil, domain.ErrSocialAuthTokenInvalid
	}

	return &port.SocialAuthClaims{
		Subject:       payload.Subject,
		Email:         email,
		EmailVerified: emailVerified(payload.Claims["email_verified"]),
		FullName:      name,
	}, nil
}

func (v *Verifier) Provider() string {
	return string(domain.AuthProviderGoogle)
}

// email_verified arrives as a bool in ID tokens but as a string from tokeninfo.
func emailVerified(raw interface{}) bool {
	switch val := raw.(type) {
	case bool:
		return val
	case string:
		return val == "true"
	default:
		return false
	}
}

// Compile-time check.
var _ port.SocialTokenVerifier = (*Verifier)(nil)
