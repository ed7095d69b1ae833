package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stayloop/stayloop/internal/facade"
	"github.com/stayloop/stayloop/internal/tokenstore"
	"github.com/stayloop/stayloop/internal/utils"
	"github.com/stayloop/stayloop/pkg/logger"
	"go.uber.org/zap"
)

type AuthHandler struct {
	facade       *facade.Facade
	jwtSecret    string
	jwtExpiry    time.Duration
	revoked      *tokenstore.RevocationStore
	isProduction bool
}

func NewAuthHandler(f *facade.Facade, jwtSecret string, jwtExpiry time.Duration, revoked *tokenstore.RevocationStore, isProduction bool) *AuthHandler {
	return &AuthHandler{
		facade:       f,
		jwtSecret:    jwtSecret,
		jwtExpiry:    jwtExpiry,
		revoked:      revoked,
		isProduction: isProduction,
	}
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates by email and password and returns a signed token.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Log.Warn("Login request parsing failed",
			zap.String("ip", c.ClientIP()),
			zap.Error(err),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}
	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing password"})
		return
	}

	user, err := h.facade.GetUserByEmail(req.Email)
	if err != nil {
		logger.Log.Error("Failed to look up user by email",
			zap.String("email", req.Email),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("email", req.Email),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	valid, err := utils.VerifyPassword(req.Password, user.PasswordHash)
	if err != nil || !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("email", req.Email),
			zap.String("user_id", user.ID),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := utils.GenerateToken(user, h.jwtSecret, h.jwtExpiry)
	if err != nil {
		logger.Log.Error("Failed to generate token",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		"token",
		token,
		int(h.jwtExpiry.Seconds()),
		"/",
		"",
		h.isProduction, // secure (HTTPS-only in production)
		true,           // httpOnly
	)

	logger.Log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("ip", c.ClientIP()),
	)

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"user_id":      user.ID,
	})
}

// Logout clears the token cookie and, when a revocation store is wired,
// denies the presented token for the rest of its lifetime.
// POST /api/v1/auth/logout (token required)
func (h *AuthHandler) Logout(c *gin.Context) {
	if h.revoked != nil {
		token := c.GetString("token")
		if claims, exists := c.Get("claims"); exists {
			if tokenClaims, ok := claims.(*utils.Claims); ok && tokenClaims.ExpiresAt != nil {
				ttl := time.Until(tokenClaims.ExpiresAt.Time)
				if err := h.revoked.Revoke(c.Request.Context(), token, ttl); err != nil {
					logger.Log.Error("Failed to revoke token",
						zap.String("user_id", tokenClaims.UserID),
						zap.Error(err),
					)
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
					return
				}
			}
		}
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("token", "", -1, "/", "", h.isProduction, true)

	logger.Log.Info("User logged out",
		zap.String("user_id", c.GetString("user_id")),
	)
	c.JSON(http.StatusOK, gin.H{"message": "Logout successful"})
}
