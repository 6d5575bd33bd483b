package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"authapi/internal/config"
	"authapi/internal/domain"
	"authapi/internal/port"
	"authapi/internal/validation"
)

const bcryptCost = 12

// RegisterInput is the DTO for direct email/password registration.
type RegisterInput struct {
	Email       string  `json:"email" validate:"required,email,max=255"`
	Username    string  `json:"username" validate:"required,username,max=255"`
	Password    string  `json:"password" validate:"required,password,bcryptbytes"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
	Profession  *string `json:"profession" validate:"omitempty,max=100"`
}

// RegisterOutput is the public view of a newly registered user.
type RegisterOutput struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	Username    string    `json:"username"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	Profession  *string   `json:"profession,omitempty"`
}

// ValidateRegisterInput normalizes and validates a registration request.
func ValidateRegisterInput(input RegisterInput) (RegisterInput, error) {
	input.Email = normalizeEmail(input.Email)
	input.Username = strings.TrimSpace(input.Username)
	input.PhoneNumber = trimOptional(input.PhoneNumber)
	input.Profession = trimOptional(input.Profession)
	if err := validation.Struct(input); err != nil {
		return RegisterInput{}, err
	}
	return input, nil
}

// RegistrationService defines the direct registration and email verification contract.
type RegistrationService interface {
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)
	VerifyEmail(ctx context.Context, token string) error
}

type registrationService struct {
	userRepo    port.UserRepository
	emailSender port.EmailSender
	jwtCfg      config.JWTConfig
	log         logrus.FieldLogger
}

// NewRegistrationService creates a new RegistrationService.
func NewRegistrationService(
	userRepo port.UserRepository,
	emailSender port.EmailSender,
	jwtCfg config.JWTConfig,
	log logrus.FieldLogger,
) RegistrationService {
	return &registrationService{
		userRepo:    userRepo,
		emailSender: emailSender,
		jwtCfg:      jwtCfg,
		log:         log,
	}
}

func (s *registrationService) Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error) {
	input, err := ValidateRegisterInput(input)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: string(hash),
		AuthProvider: domain.AuthProviderEmail,
		IsVerified:   false,
		IsActive:     true,
		PhoneNumber:  input.PhoneNumber,
		Profession:   input.Profession,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err // ErrDuplicateEmail / ErrDuplicateUsername propagate naturally
	}

	s.sendVerification(ctx, user)

	return &RegisterOutput{
		ID:          user.ID,
		Email:       user.Email,
		Username:    user.Username,
		PhoneNumber: user.PhoneNumber,
		Profession:  user.Profession,
	}, nil
}

// sendVerification is best effort: the account exists either way.
func (s *registrationService) sendVerification(ctx context.Context, user *domain.User) {
	token, err := s.verificationToken(user)
	if err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Error("generating verification token")
		return
	}
	if err := s.emailSender.SendVerificationEmail(ctx, user.Email, user.Username, token); err != nil {
		s.log.WithError(err).WithField("user_id", user.ID).Warn("sending verification email")
	}
}

func (s *registrationService) verificationToken(user *domain.User) (string, error) {
	now := time.Now()
	return signToken(s.jwtCfg, user, audienceVerification, now, now.Add(s.jwtCfg.VerificationTokenExpiry))
}

func (s *registrationService) VerifyEmail(ctx context.Context, token string) error {
	claims, err := parseToken(s.jwtCfg, token, audienceVerification)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.ErrVerificationTokenExpired
		}
		return domain.ErrVerificationTokenInvalid
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrVerificationTokenInvalid
		}
		return fmt.Errorf("registration.VerifyEmail: %w", err)
	}
	if user.IsVerified {
		return nil
	}
	if err := s.userRepo.SetVerified(ctx, user.ID); err != nil {
		return fmt.Errorf("registration.VerifyEmail: %w", err)
	}
	s.log.WithField("user_id", user.ID).Info("email verified")
	return nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
