package handlers

import (
	"net/http"

	"taskboard-backend/internal/auth"
	apperrors "taskboard-backend/internal/errors"
	"taskboard-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for users
type UserHandler struct {
	service service.UserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(service service.UserServiceInterface) *UserHandler {
	return &UserHandler{service: service}
}

// GetMe handles GET /api/v1/users/me
// @Summary Get the authenticated user
// @Description Get the profile of the user identified by the bearer token
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} service.UserResponse "Successfully retrieved user"
// @Failure 401 {object} map[string]interface{} "Missing or invalid token"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrMissingUserContext.Error()})
		return
	}

	user, err := h.service.GetByID(userID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
