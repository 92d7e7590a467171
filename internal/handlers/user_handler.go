package handlers

import (
	"net/http"

	"go-dealer-agent/internal/database"
	"go-dealer-agent/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// CreateUserRequest defines what an admin sends when provisioning staff
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	Role        string `json:"role" binding:"required,oneof=admin worker"`
	DisplayName string `json:"displayName" binding:"required"`
}

// UpdateUserRequest - all fields optional; password is never updated here
type UpdateUserRequest struct {
	Role        string `json:"role" binding:"omitempty,oneof=admin worker"`
	DisplayName string `json:"displayName"`
}

// --- GET: /api/users (admin only) ---
func GetUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to fetch users")
		return
	}
	OK(c, http.StatusOK, users)
}

// --- POST: /api/users (admin only) ---
// Creates a staff account and fixes its role claim. Tokens issued at login
// will carry this role for every later request.
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to hash password")
		return
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         req.Role,
		DisplayName:  req.DisplayName,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		Fail(c, http.StatusBadRequest, "A user with this email already exists")
		return
	}

	OK(c, http.StatusCreated, user)
}

// --- PUT: /api/users/:id (admin only) ---
func UpdateUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		Fail(c, http.StatusNotFound, "User not found")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Fail(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	// Demoting the only admin would lock everyone out of user management,
	// same as deleting them.
	if req.Role == models.RoleWorker && user.Role == models.RoleAdmin && adminCount() <= 1 {
		Fail(c, http.StatusConflict, "Cannot demote the last admin account")
		return
	}

	if req.Role != "" {
		user.Role = req.Role
	}
	if req.DisplayName != "" {
		user.DisplayName = req.DisplayName
	}

	if err := database.DB.Save(&user).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to update user")
		return
	}

	OK(c, http.StatusOK, user)
}

// --- DELETE: /api/users/:id (admin only) ---
func DeleteUser(c *gin.Context) {
	var user models.User
	if err := database.DB.First(&user, c.Param("id")).Error; err != nil {
		Fail(c, http.StatusNotFound, "User not found")
		return
	}

	if user.Role == models.RoleAdmin && adminCount() <= 1 {
		Fail(c, http.StatusConflict, "Cannot delete the last admin account")
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		Fail(c, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	OK(c, http.StatusOK, gin.H{"message": "User deleted successfully"})
}

func adminCount() int64 {
	var count int64
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	return count
}
