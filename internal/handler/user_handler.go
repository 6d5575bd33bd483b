package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"authapi/internal/middleware"
	"authapi/internal/service"
)

// UserHandler handles the caller's own account endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Profile handles GET /profile
// @Summary Get the caller's account
// @Tags users
// @Produce json
// @Success 200 {object} Response{data=domain.User}
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Account no longer exists"
// @Security BearerAuth
// @Router /profile [get]
func (h *UserHandler) Profile(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, user)
}
