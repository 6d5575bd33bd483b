package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authapi/internal/service"
)

// AuthHandler handles registration, login and token endpoints.
type AuthHandler struct {
	authService         service.AuthService
	registrationService service.RegistrationService
	socialAuthService   service.SocialAuthService
}

// NewAuthHandler creates a new AuthHandler. socialAuthService may be nil
// when Google sign-in is not configured.
func NewAuthHandler(authService service.AuthService, registrationService service.RegistrationService, socialAuthService service.SocialAuthService) *AuthHandler {
	return &AuthHandler{
		authService:         authService,
		registrationService: registrationService,
		socialAuthService:   socialAuthService,
	}
}

// Register handles POST /register/
// @Summary Register with email and password
// @Description Creates an unverified account and sends an activation email
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Account details"
// @Success 201 {object} Response{data=RegisterResponse} "Account created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 409 {object} ErrorResponseBody "Email or username taken"
// @Router /register/ [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, bindError(err))
		return
	}

	output, err := h.registrationService.Register(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, output)
}

// Login handles POST /login/
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} Response{data=LoginResponse}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Invalid credentials, disabled or unverified account"
// @Router /login/ [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, bindError(err))
		return
	}

	output, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, output)
}

// VerifyEmail handles GET /email-verify/?token=...
// @Summary Activate an account
// @Tags auth
// @Produce json
// @Param token query string true "Verification token from the activation email"
// @Success 200 {object} Response{data=ActivationResponse}
// @Failure 400 {object} ErrorResponseBody "Missing token"
// @Failure 401 {object} ErrorResponseBody "Expired or invalid token"
// @Router /email-verify/ [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "token query parameter is required")
		return
	}

	if err := h.registrationService.VerifyEmail(c.Request.Context(), token); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"email": "Successfully activated"})
}

// GoogleLogin handles POST /google-auth/
// @Summary Sign in with a Google ID token
// @Description Creates a verified account on first sign-in, otherwise logs the existing account in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GoogleLoginRequest true "Google ID token"
// @Success 200 {object} Response{data=SocialLoginResponse}
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Invalid token, provider mismatch or disabled account"
// @Failure 404 {object} ErrorResponseBody "Google sign-in not configured"
// @Router /google-auth/ [post]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	if h.socialAuthService == nil {
		RespondError(c, http.StatusNotFound, "NOT_FOUND", "google sign-in is not enabled")
		return
	}

	var input service.GoogleLoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondValidationError(c, bindError(err))
		return
	}

	output, err := h.socialAuthService.GoogleLogin(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, output)
}

// RefreshToken handles GET and POST /token/refresh/
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest false "Refresh token (POST)"
// @Param refresh_token query string false "Refresh token (GET)"
// @Success 200 {object} Response{data=TokenResponse}
// @Failure 400 {object} ErrorResponseBody "Missing refresh token"
// @Failure 401 {object} ErrorResponseBody "Invalid refresh token"
// @Router /token/refresh/ [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input service.RefreshInput
	if err := c.ShouldBind(&input); err != nil {
		RespondValidationError(c, bindError(err))
		return
	}
	if input.RefreshToken == "" {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", "refresh_token is required")
		return
	}

	tokenPair, err := h.authService.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, tokenPair)
}
