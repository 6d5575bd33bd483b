package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"authapi/internal/domain"
	"authapi/internal/logging"
	"authapi/internal/port"
	"authapi/internal/service"
	"authapi/mocks"
)

func setupSocialAuth() (
	*mocks.MockSocialTokenVerifier,
	*mocks.MockUserRepo,
	*mocks.MockAuthService,
	service.SocialAuthService,
) {
	verifier := new(mocks.MockSocialTokenVerifier)
	userRepo := new(mocks.MockUserRepo)
	authSvc := new(mocks.MockAuthService)

	verifiers := map[string]port.SocialTokenVerifier{
		"google": verifier,
	}
	svc := service.NewSocialAuthService(verifiers, userRepo, authSvc, logging.Discard())
	return verifier, userRepo, authSvc, svc
}

func testTokens() *service.TokenPair {
	return &service.TokenPair{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(15 * time.Minute),
	}
}

func googleClaims() *port.SocialAuthClaims {
	return &port.SocialAuthClaims{
		Subject:       "google-uid-123",
		Email:         "NewUser@gmail.com",
		EmailVerified: true,
		FullName:      "New User",
	}
}

func TestGoogleLogin_NewUser(t *testing.T) {
	verifier, userRepo, authSvc, svc := setupSocialAuth()

	var created *domain.User
	verifier.On("VerifyIDToken", mock.Anything, "valid-google-token").Return(googleClaims(), nil)
	userRepo.On("GetByEmail", mock.Anything, "newuser@gmail.com").Return(nil, domain.ErrNotFound)
	userRepo.On("UsernameExists", mock.Anything, "newuser").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*domain.User) }).
		Return(nil)
	authSvc.On("GenerateTokenPairForUser", mock.AnythingOfType("*domain.User")).Return(testTokens(), nil)

	result, err := svc.GoogleLogin(context.Background(), service.GoogleLoginInput{
		Token:      "valid-google-token",
		Profession: strPtr("designer"),
	})

	require.NoError(t, err)
	assert.True(t, result.IsNewUser)
	assert.Equal(t, "newuser@gmail.com", result.Email)
	assert.Equal(t, "newuser", result.Username)
	assert.Equal(t, "access-token", result.Tokens.AccessToken)

	require.NotNil(t, created)
	assert.Equal(t, domain.AuthProviderGoogle, created.AuthProvider)
	assert.True(t, created.IsVerified)
	assert.True(t, created.IsActive)
	assert.NotEmpty(t, created.PasswordHash)
	require.NotNil(t, created.ProviderUserID)
	assert.Equal(t, "google-uid-123", *created.ProviderUserID)
	assert.Equal(t, "designer", *created.Profession)

	verifier.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	authSvc.AssertExpectations(t)
}

func TestGoogleLogin_ExistingGoogleUser(t *testing.T) {
	verifier, userRepo, authSvc, svc := setupSocialAuth()

	existing := &domain.User{
		ID:           uuid.New(),
		Email:        "newuser@gmail.com",
		Username:     "newuser",
		AuthProvider: domain.AuthProviderGoogle,
		IsVerified:   true,
		IsActive:     true,
	}
	verifier.On("VerifyIDToken", mock.Anything, "valid-google-token").Return(googleClaims(), nil)
	userRepo.On("GetByEmail", mock.Anything, "newuser@gmail.com").Return(existing, nil)
	authSvc.On("GenerateTokenPairForUser", existing).Return(testTokens(), nil)

	result, err := svc.GoogleLogin(context.Background(), service.GoogleLoginInput{Token: "valid-google-token"})

	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, "newuser", result.Username)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGoogleLogin_InvalidToken(t *testing.T) {
	verifier, userRepo, _, svc := setupSocialAuth()

	verifier.On("VerifyIDToken", mock.Anything, "bad-token").Return(nil, errors.New("signature mismatch"))

	result, err := svc.GoogleLogin(context.Background(), service.GoogleLoginInput{Token: "bad-token"})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSocialAuthTokenInvalid)
	assert.Equal(t, "Invalid Token. Try again", err.Error())
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestGoogleLogin_MissingToken(t *testing.T) {
	verifier, _, _, svc := setupSocialAuth()

	_, err := svc.GoogleLogin(context.Background(), service.GoogleLoginInput{Token: "   "})

	assert.ErrorIs(t, err, domain.ErrValidation)
	verifier.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything)
}

func TestGoogleLogin_VerifierNotConfigured(t *testing.T) {
	svc := service.NewSocialAuthService(map[string]port.SocialTokenVerifier{}, new(mocks.MockUserRepo), new(mocks.MockAuthService), logging.Discard())

	_, err := svc.GoogleLogin(context.Background(), service.GoogleLoginInput{Token: "t"})

	assert.Error(t, err)
}

func TestResolve_ProviderMismatch(t *testing.T) {
	_, userRepo, authSvc, svc := setupSocialAuth()

	existing := &domain.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		AuthProvider: domain.AuthProviderGoogle,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	result, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderFacebook,
		SubjectID: "fb-1",
		Email:     "alice@example.com",
	})

	assert.Nil(t, result)
	var mismatch *domain.ProviderMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, domain.AuthProviderGoogle, mismatch.Provider)
	assert.Equal(t, "You previously signed up with google. Please continue with that.", err.Error())
	assert.True(t, domain.IsAuthenticationFailure(err))
	authSvc.AssertNotCalled(t, "GenerateTokenPairForUser", mock.Anything)
}

func TestResolve_EmailAccountRejectsSocialLogin(t *testing.T) {
	_, userRepo, _, svc := setupSocialAuth()

	existing := &domain.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		AuthProvider: domain.AuthProviderEmail,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	_, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderGoogle,
		SubjectID: "g-1",
		Email:     "alice@example.com",
	})

	assert.EqualError(t, err, "You previously signed up with email. Please continue with that.")
}

func TestResolve_InactiveUser(t *testing.T) {
	_, userRepo, _, svc := setupSocialAuth()

	existing := &domain.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		AuthProvider: domain.AuthProviderGoogle,
		IsActive:     false,
	}
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(existing, nil)

	_, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderGoogle,
		SubjectID: "g-1",
		Email:     "alice@example.com",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestResolve_UsernameSuffixedWhenTaken(t *testing.T) {
	_, userRepo, authSvc, svc := setupSocialAuth()

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
	userRepo.On("UsernameExists", mock.Anything, "alice").Return(true, nil)
	userRepo.On("UsernameExists", mock.Anything, "alice2").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Username == "alice2"
	})).Return(nil)
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(testTokens(), nil)

	result, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderGoogle,
		SubjectID: "g-1",
		Email:     "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice2", result.Username)
	userRepo.AssertExpectations(t)
}

func TestResolve_UsernameRaceRetriesNextCandidate(t *testing.T) {
	_, userRepo, authSvc, svc := setupSocialAuth()

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
	userRepo.On("UsernameExists", mock.Anything, mock.Anything).Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateUsername).Once()
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(testTokens(), nil)

	result, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderGoogle,
		SubjectID: "g-1",
		Email:     "alice@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice2", result.Username)
}

func TestResolve_CandidatesExhaustedUsesSubjectSuffix(t *testing.T) {
	_, userRepo, authSvc, svc := setupSocialAuth()

	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound)
	userRepo.On("UsernameExists", mock.Anything, mock.Anything).Return(true, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	authSvc.On("GenerateTokenPairForUser", mock.Anything).Return(testTokens(), nil)

	result, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderGoogle,
		SubjectID: "g-1",
		Email:     "alice@example.com",
	})

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(result.Username, "alice"))
	assert.Len(t, result.Username, len("alice")+10)
	userRepo.AssertNumberOfCalls(t, "UsernameExists", 50)
}

func TestResolve_ConcurrentFirstLoginRefetches(t *testing.T) {
	_, userRepo, authSvc, svc := setupSocialAuth()

	winner := &domain.User{
		ID:           uuid.New(),
		Email:        "alice@example.com",
		Username:     "alice",
		AuthProvider: domain.AuthProviderGoogle,
		IsVerified:   true,
		IsActive:     true,
	}
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, domain.ErrNotFound).Once()
	userRepo.On("UsernameExists", mock.Anything, "alice").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEmail)
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(winner, nil).Once()
	authSvc.On("GenerateTokenPairForUser", winner).Return(testTokens(), nil)

	result, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderGoogle,
		SubjectID: "g-1",
		Email:     "alice@example.com",
	})

	require.NoError(t, err)
	assert.False(t, result.IsNewUser)
	assert.Equal(t, "alice", result.Username)
	userRepo.AssertNumberOfCalls(t, "GetByEmail", 2)
}

func TestResolve_MissingEmail(t *testing.T) {
	_, userRepo, _, svc := setupSocialAuth()

	_, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderGoogle,
		SubjectID: "g-1",
	})

	assert.ErrorIs(t, err, domain.ErrSocialAuthTokenInvalid)
	userRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
}

func TestResolve_RejectsEmailProvider(t *testing.T) {
	_, _, _, svc := setupSocialAuth()

	_, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderEmail,
		SubjectID: "x",
		Email:     "alice@example.com",
	})

	assert.Error(t, err)
}

func TestResolve_RepositoryError(t *testing.T) {
	_, userRepo, _, svc := setupSocialAuth()
	userRepo.On("GetByEmail", mock.Anything, "alice@example.com").Return(nil, errors.New("connection reset"))

	_, err := svc.Resolve(context.Background(), service.ResolveInput{
		Provider:  domain.AuthProviderGoogle,
		SubjectID: "g-1",
		Email:     "alice@example.com",
	})

	assert.ErrorContains(t, err, "connection reset")
	assert.False(t, domain.IsAuthenticationFailure(err))
}
