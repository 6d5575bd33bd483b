package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"authapi/internal/domain"
	"authapi/internal/middleware"
)

// APIResponse is the standard envelope for all API responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
}

// APIError holds error details in the response.
type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// RespondOK sends a 200 success response.
func RespondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, APIResponse{Success: true, Data: data})
}

// RespondCreated sends a 201 success response.
func RespondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, APIResponse{Success: true, Data: data})
}

// RespondError sends an error response with the given status code.
func RespondError(c *gin.Context, status int, code, msg string) {
	c.JSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: msg},
	})
}

// RespondValidationError sends a 400 with per-field details.
func RespondValidationError(c *gin.Context, verr *domain.ValidationError) {
	c.JSON(http.StatusBadRequest, APIResponse{
		Success: false,
		Error: &APIError{
			Code:    "VALIDATION_ERROR",
			Message: verr.Error(),
			Details: verr.Fields,
		},
	})
}

// MapDomainError translates domain errors to HTTP status codes and error codes.
func MapDomainError(err error) (status int, code, msg string) {
	var authErr *domain.AuthError
	var mismatch *domain.ProviderMismatchError
	var verr *domain.ValidationError

	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, "VALIDATION_ERROR", verr.Error()
	case errors.As(err, &authErr):
		return http.StatusUnauthorized, authErr.Code, authErr.Message
	case errors.As(err, &mismatch):
		return http.StatusUnauthorized, "PROVIDER_MISMATCH", mismatch.Error()
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND", "resource not found"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusConflict, "DUPLICATE_EMAIL", "user with this email already exists."
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict, "DUPLICATE_USERNAME", "user with this username already exists."
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR", "an internal error occurred"
	}
}

// HandleError maps a domain error and sends the appropriate error response.
func HandleError(c *gin.Context, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		RespondValidationError(c, verr)
		return
	}

	status, code, msg := MapDomainError(err)
	if status >= 500 {
		middleware.RequestLogger(c).WithError(err).Error("internal error")
	}
	RespondError(c, status, code, msg)
}

// bindError turns a request decoding failure into a ValidationError.
func bindError(err error) *domain.ValidationError {
	return domain.NewValidationError("payload", err.Error())
}
