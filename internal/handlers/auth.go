package handlers

import (
	"errors"
	"net/http"
	"strings"

	"recipebox/internal/auth"
	"recipebox/internal/models"
	"recipebox/pkg/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Username, email, and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	username := strings.TrimSpace(req.Username)

	var existing models.User
	if err := h.db.Where("email = ? OR username = ?", email, username).First(&existing).Error; err == nil {
		fail(c, http.StatusConflict, "Username or email is already in use")
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("password hashing failed", "error", err)
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashedPassword,
	}
	if err := h.db.Create(&user).Error; err != nil {
		// The unique indexes catch registrations racing past the
		// pre-check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, http.StatusConflict, "Username or email is already in use")
			return
		}
		h.logger.Error("user creation failed", "error", err)
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := h.tokens.Issue(auth.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
	if err != nil {
		h.logger.Error("token issuance failed", "error", err)
		fail(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   token,
		"user":    buildUserResponse(user),
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "Email and password are required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := h.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Same message as a wrong password so account existence
			// is not revealed.
			fail(c, http.StatusUnauthorized, "Invalid credentials")
		} else {
			h.logger.Error("login lookup failed", "error", err)
			fail(c, http.StatusInternalServerError, "Login failed")
		}
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(auth.Identity{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
	})
	if err != nil {
		h.logger.Error("token issuance failed", "error", err)
		fail(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged in successfully",
		"token":   token,
		"user":    buildUserResponse(user),
	})
}

// GetMe re-fetches the full user record; the token only carries the
// identity fields, not display data like the avatar.
func (h *Handler) GetMe(c *gin.Context) {
	identity, ok := CurrentIdentity(c)
	if !ok {
		fail(c, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var user models.User
	if err := h.db.First(&user, "id = ?", identity.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, http.StatusNotFound, "User not found")
		} else {
			h.logger.Error("user lookup failed", "error", err)
			fail(c, http.StatusInternalServerError, "Failed to fetch user")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    buildUserResponse(user),
	})
}
