package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/velamar/pesca-api/internal/models"
	"github.com/velamar/pesca-api/internal/repository"
	"github.com/velamar/pesca-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest is the payload for creating a user account
type CreateUserRequest struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
}

// @Summary Create User
// @Description Registers a new ERP user and sends the welcome email
// @Tags Users
// @Accept json
// @Produce json
// @Param user body CreateUserRequest true "User data"
// @Success 201 {object} models.UserResponse
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     req.Role,
		Phone:    req.Phone,
	}

	if err := h.userService.Create(c.Request.Context(), user, req.Password); err != nil {
		switch {
		case errors.Is(err, services.ErrPasswordCorta), errors.Is(err, services.ErrRolInvalido):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, repository.ErrEmailDuplicado):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el usuario"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": user.ToResponse()})
}
