package google

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"

	"authapi/internal/domain"
	"authapi/internal/logging"
)

type stubValidator struct {
	payload  *idtoken.Payload
	err      error
	audience string
}

func (s *stubValidator) Validate(_ context.Context, _ string, audience string) (*idtoken.Payload, error) {
	s.audience = audience
	return s.payload, s.err
}

func newTestVerifier(stub *stubValidator) *Verifier {
	return &Verifier{clientID: "client-123", validator: stub, log: logging.Discard()}
}

func validPayload() *idtoken.Payload {
	return &idtoken.Payload{
		Issuer:   "https://accounts.google.com",
		Audience: "client-123",
		Subject:  "google-uid-1",
		Claims: map[string]interface{}{
			"email":          "alice@gmail.com",
			"email_verified": true,
			"name":           "Alice Example",
		},
	}
}

func TestVerifyIDToken_Success(t *testing.T) {
	stub := &stubValidator{payload: validPayload()}
	v := newTestVerifier(stub)

	claims, err := v.VerifyIDToken(context.Background(), "token")

	require.NoError(t, err)
	assert.Equal(t, "client-123", stub.audience)
	assert.Equal(t, "google-uid-1", claims.Subject)
	assert.Equal(t, "alice@gmail.com", claims.Email)
	assert.Equal(t, "Alice Example", claims.FullName)
	assert.True(t, claims.EmailVerified)
}

func TestVerifyIDToken_ValidatorFailureIsMasked(t *testing.T) {
	for _, cause := range []string{"idtoken: token expired", "idtoken: audience provided does not match", "invalid signature"} {
		t.Run(cause, func(t *testing.T) {
			v := newTestVerifier(&stubValidator{err: errors.New(cause)})

			claims, err := v.VerifyIDToken(context.Background(), "token")

			assert.Nil(t, claims)
			assert.Same(t, domain.ErrSocialAuthTokenInvalid, err)
			assert.Equal(t, "Invalid Token. Try again", err.Error())
		})
	}
}

func TestVerifyIDToken_WrongIssuer(t *testing.T) {
	p := validPayload()
	p.Issuer = "https://evil.example.com"
	v := newTestVerifier(&stubValidator{payload: p})

	_, err := v.VerifyIDToken(context.Background(), "token")

	assert.ErrorIs(t, err, domain.ErrSocialAuthTokenInvalid)
}

func TestVerifyIDToken_MissingEmail(t *testing.T) {
	p := validPayload()
	delete(p.Claims, "email")
	v := newTestVerifier(&stubValidator{payload: p})

	_, err := v.VerifyIDToken(context.Background(), "token")

	assert.ErrorIs(t, err, domain.ErrSocialAuthTokenInvalid)
}

func TestVerifyIDToken_BareIssuerAccepted(t *testing.T) {
	p := validPayload()
	p.Issuer = "accounts.google.com"
	p.Claims["email_verified"] = "true"
	v := newTestVerifier(&stubValidator{payload: p})

	claims, err := v.VerifyIDToken(context.Background(), "token")

	require.NoError(t, err)
	assert.True(t, claims.EmailVerified)
}

func TestNewVerifier_RequiresClientID(t *testing.T) {
	_, err := NewVerifier(context.Background(), "", logging.Discard())
	assert.Error(t, err)
}

func TestVerifier_Provider(t *testing.T) {
	assert.Equal(t, "google", newTestVerifier(&stubValidator{}).Provider())
}
