package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/stayloop/stayloop/internal/facade"
	"github.com/stayloop/stayloop/internal/models"
	"github.com/stayloop/stayloop/internal/utils"
	"github.com/stayloop/stayloop/pkg/logger"
	"go.uber.org/zap"
)

type UserHandler struct {
	facade *facade.Facade
}

func NewUserHandler(f *facade.Facade) *UserHandler {
	return &UserHandler{facade: f}
}

type UserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
}

// userResponse masks the password in every user payload.
func userResponse(user *models.User) gin.H {
	return gin.H{
		"id":         user.ID,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"email":      user.Email,
		"password":   "****",
	}
}

// Home greets the authenticated user by name.
// GET /api/v1/users/home (token required)
func (h *UserHandler) Home(c *gin.Context) {
	user, err := h.facade.GetUser(c.GetString("user_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Hello %s %s", user.FirstName, user.LastName),
	})
}

// Create registers a new user. Admin only.
// POST /api/v1/users/ (admin token required)
func (h *UserHandler) Create(c *gin.Context) {
	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	user, err := h.facade.CreateUser(facade.UserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		if facade.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Log.Error("Failed to create user",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, userResponse(user))
}

// List returns all users with passwords masked.
// GET /api/v1/users/
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.facade.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}

	userList := make([]gin.H, 0, len(users))
	for _, user := range users {
		userList = append(userList, userResponse(user))
	}
	c.JSON(http.StatusOK, userList)
}

// Get returns one user by ID.
// GET /api/v1/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.facade.GetUser(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, userResponse(user))
}

// Update modifies a user. Callers may only modify themselves unless they
// are admins, and non-admins cannot change their email or password here:
// those fields are forcibly kept at their current values.
// PUT /api/v1/users/:id (token required)
func (h *UserHandler) Update(c *gin.Context) {
	userID := c.Param("id")
	callerID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")

	user, err := h.facade.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !isAdmin && user.ID != callerID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Unauthorized action, you can only modify your own data",
		})
		return
	}

	var req UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	email := req.Email
	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if !isAdmin {
		email = user.Email
		passwordHash = user.PasswordHash
	}

	existing, err := h.facade.GetUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}
	if existing != nil && existing.ID != user.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}

	updated, err := h.facade.UpdateUser(userID, map[string]any{
		"first_name":    req.FirstName,
		"last_name":     req.LastName,
		"email":         email,
		"password_hash": passwordHash,
	})
	if err != nil {
		logger.Log.Error("Failed to update user",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user"})
		return
	}

	c.JSON(http.StatusOK, userResponse(updated))
}

// Delete removes a user and everything the user owns. Self or admin.
// DELETE /api/v1/users/:id (token required)
func (h *UserHandler) Delete(c *gin.Context) {
	userID := c.Param("id")
	callerID := c.GetString("user_id")
	isAdmin := c.GetBool("is_admin")

	user, err := h.facade.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch user"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !isAdmin && user.ID != callerID {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Unauthorized action, you can only modify your own data",
		})
		return
	}

	if err := h.facade.DeleteUser(userID); err != nil {
		logger.Log.Error("Failed to delete user",
			zap.String("user_id", userID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User %s deleted successfully", userID),
	})
}
