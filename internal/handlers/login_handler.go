package handlers

import (
	"net/http"

	"go-dealer-agent/internal/auth"
	"go-dealer-agent/internal/database"
	"go-dealer-agent/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginRequest
	// 1. Validate Input JSON
	if err := c.ShouldBindJSON(&input); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid input")
		return
	}

	// 2. Find User in DB
	var user models.User
	if err := database.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// 3. Verify Password (Bcrypt)
	err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password))
	if err != nil {
		Fail(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	// 4. Generate JWT carrying the role claim
	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	// 5. Success! Return Token and Role
	OK(c, http.StatusOK, gin.H{
		"token":       token,
		"role":        user.Role,
		"email":       user.Email,
		"displayName": user.DisplayName,
	})
}

// Register bootstraps the very first admin account. Only reachable when
// ALLOW_REGISTRATION=true; day-to-day staff creation goes through the
// admin-only /api/users endpoint instead.
func Register(c *gin.Context) {
	var req CreateUserRequest

	// 1. Parse JSON (same shape as the admin create path)
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// 2. Hash the Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	// 3. Create User Model
	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
		DisplayName:  req.DisplayName,
	}

	// 4. Save to DB
	if err := database.DB.Create(&user).Error; err != nil {
		Fail(c, http.StatusBadRequest, "User likely already exists")
		return
	}

	OK(c, http.StatusCreated, user)
}
