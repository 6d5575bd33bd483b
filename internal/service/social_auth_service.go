package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"authapi/internal/domain"
	"authapi/internal/port"
	"authapi/internal/validation"
)

const (
	maxUsernameBaseLength = 30
	maxUsernameCandidates = 50
)

// GoogleLoginInput is the DTO for POST /google-auth/.
type GoogleLoginInput struct {
	Token       string  `json:"token" validate:"required"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
	Profession  *string `json:"profession" validate:"omitempty,max=100"`
}

// ValidateGoogleLoginInput normalizes and validates a Google login request.
func ValidateGoogleLoginInput(input GoogleLoginInput) (GoogleLoginInput, error) {
	input.Token = strings.TrimSpace(input.Token)
	input.PhoneNumber = trimOptional(input.PhoneNumber)
	input.Profession = trimOptional(input.Profession)
	if err := validation.Struct(input); err != nil {
		return GoogleLoginInput{}, err
	}
	return input, nil
}

// ResolveInput carries verified identity claims into the resolver.
type ResolveInput struct {
	Provider    domain.AuthProvider
	SubjectID   string
	Email       string
	Name        string
	PhoneNumber *string
	Profession  *string
}

// SocialLoginOutput is the login-ready payload for a social sign-in.
type SocialLoginOutput struct {
	Email     string     `json:"email"`
	Username  string     `json:"username"`
	Tokens    *TokenPair `json:"tokens"`
	IsNewUser bool       `json:"is_new_user"`
}

// SocialAuthService defines the social authentication contract.
type SocialAuthService interface {
	GoogleLogin(ctx context.Context, input GoogleLoginInput) (*SocialLoginOutput, error)
	Resolve(ctx context.Context, input ResolveInput) (*SocialLoginOutput, error)
}

type socialAuthService struct {
	verifiers map[string]port.SocialTokenVerifier
	userRepo  port.UserRepository
	authSvc   AuthService
	log       logrus.FieldLogger
}

// NewSocialAuthService creates a new SocialAuthService.
func NewSocialAuthService(
	verifiers map[string]port.SocialTokenVerifier,
	userRepo port.UserRepository,
	authSvc AuthService,
	log logrus.FieldLogger,
) SocialAuthService {
	return &socialAuthService{
		verifiers: verifiers,
		userRepo:  userRepo,
		authSvc:   authSvc,
		log:       log,
	}
}

func (s *socialAuthService) GoogleLogin(ctx context.Context, input GoogleLoginInput) (*SocialLoginOutput, error) {
	input, err := ValidateGoogleLoginInput(input)
	if err != nil {
		return nil, err
	}

	verifier, ok := s.verifiers[string(domain.AuthProviderGoogle)]
	if !ok {
		return nil, fmt.Errorf("unsupported social auth provider: %s", domain.AuthProviderGoogle)
	}

	claims, err := verifier.VerifyIDToken(ctx, input.Token)
	if err != nil {
		return nil, domain.ErrSocialAuthTokenInvalid
	}

	return s.Resolve(ctx, ResolveInput{
		Provider:    domain.AuthProviderGoogle,
		SubjectID:   claims.Subject,
		Email:       claims.Email,
		Name:        claims.FullName,
		PhoneNumber: input.PhoneNumber,
		Profession:  input.Profession,
	})
}

// Resolve looks up or creates the local account for a verified social
// identity and issues session tokens for it.
func (s *socialAuthService) Resolve(ctx context.Context, input ResolveInput) (*SocialLoginOutput, error) {
	if !input.Provider.Valid() || input.Provider == domain.AuthProviderEmail {
		return nil, fmt.Errorf("unsupported social auth provider: %s", input.Provider)
	}
	email := normalizeEmail(input.Email)
	if email == "" || input.SubjectID == "" {
		return nil, domain.ErrSocialAuthTokenInvalid
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return s.loginExisting(existing, input.Provider)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("looking up social user: %w", err)
	}

	user, err := s.createUser(ctx, email, input)
	if errors.Is(err, domain.ErrDuplicateEmail) {
		// A concurrent first login for the same email won the insert.
		existing, getErr := s.userRepo.GetByEmail(ctx, email)
		if getErr != nil {
			return nil, fmt.Errorf("re-fetching social user: %w", getErr)
		}
		return s.loginExisting(existing, input.Provider)
	}
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  user.ID,
		"provider": input.Provider,
	}).Info("social user registered")

	tokens, err := s.authSvc.GenerateTokenPairForUser(user)
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}
	return &SocialLoginOutput{
		Email:     user.Email,
		Username:  user.Username,
		Tokens:    tokens,
		IsNewUser: true,
	}, nil
}

func (s *socialAuthService) loginExisting(user *domain.User, provider domain.AuthProvider) (*SocialLoginOutput, error) {
	if user.AuthProvider != provider {
		return nil, &domain.ProviderMismatchError{Provider: user.AuthProvider}
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	tokens, err := s.authSvc.GenerateTokenPairForUser(user)
	if err != nil {
		return nil, fmt.Errorf("generating tokens: %w", err)
	}
	return &SocialLoginOutput{
		Email:     user.Email,
		Username:  user.Username,
		Tokens:    tokens,
		IsNewUser: false,
	}, nil
}

// createUser inserts a verified account, walking the username candidates
// until one is free. ErrDuplicateEmail is returned unchanged.
func (s *socialAuthService) createUser(ctx context.Context, email string, input ResolveInput) (*domain.User, error) {
	passwordHash, err := placeholderPasswordHash(input.Provider)
	if err != nil {
		return nil, err
	}

	subject := input.SubjectID
	user := &domain.User{
		Email:          email,
		PasswordHash:   passwordHash,
		AuthProvider:   input.Provider,
		ProviderUserID: &subject,
		IsVerified:     true,
		IsActive:       true,
		PhoneNumber:    input.PhoneNumber,
		Profession:     input.Profession,
	}

	base := usernameBase(email, input.Name)
	for n := 1; n <= maxUsernameCandidates; n++ {
		candidate := usernameCandidate(base, n)
		taken, err := s.userRepo.UsernameExists(ctx, candidate)
		if err != nil {
			return nil, fmt.Errorf("checking username: %w", err)
		}
		if taken {
			continue
		}
		user.Username = candidate
		err = s.userRepo.Create(ctx, user)
		if errors.Is(err, domain.ErrDuplicateUsername) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return user, nil
	}

	user.Username = base + subjectSuffix(input.Provider, input.SubjectID)
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// usernameBase keeps the alphanumeric runes of the email local part,
// falling back to the display name and then to "user".
func usernameBase(email, name string) string {
	local, _, _ := strings.Cut(email, "@")
	for _, src := range []string{local, name} {
		if base := alphanumeric(src, maxUsernameBaseLength); base != "" {
			return base
		}
	}
	return "user"
}

func alphanumeric(s string, limit int) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == limit {
			break
		}
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func usernameCandidate(base string, n int) string {
	if n <= 1 {
		return base
	}
	return base + strconv.Itoa(n)
}

func subjectSuffix(provider domain.AuthProvider, subject string) string {
	sum := sha256.Sum256([]byte(string(provider) + ":" + subject))
	return hex.EncodeToString(sum[:])[:10]
}

// placeholderPasswordHash hashes a random secret that is discarded, so the
// password column is populated but no password can ever match it.
func placeholderPasswordHash(provider domain.AuthProvider) (string, error) {
	secret := make([]byte, 24)
	if _, err := rand.Read(secret); err != nil {
		return "", fmt.Errorf("generating placeholder password: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(string(provider)+":"+hex.EncodeToString(secret)), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hashing placeholder password: %w", err)
	}
	return string(hash), nil
}
