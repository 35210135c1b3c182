package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"food-ordering-api/auth"
	"food-ordering-api/middleware"
	"food-ordering-api/models"
)

// UserHandler covers self-service profile operations for the authenticated
// user.
type UserHandler struct {
	db *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{db: db}
}

// GetUser returns the authenticated user's profile
func (h *UserHandler) GetUser(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, middleware.GetPrincipalID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User found successfully",
		"user":    user,
	})
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Address  string `json:"address"`
	Phone    string `json:"phone"`
}

// UpdateUser performs a partial merge: only provided fields overwrite.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, middleware.GetPrincipalID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}

	update := map[string]interface{}{}
	if req.Username != "" {
		update["username"] = req.Username
	}
	if req.Address != "" {
		update["address"] = req.Address
	}
	if req.Phone != "" {
		update["phone"] = req.Phone
	}
	if len(update) > 0 {
		if err := h.db.Model(&user).Updates(update).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating user"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User Updated Successfully"})
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// UpdatePassword re-hashes after checking the current password
func (h *UserHandler) UpdatePassword(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, middleware.GetPrincipalID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	var req UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide both old and new passwords"})
		return
	}

	if !auth.CheckPassword(req.OldPassword, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Incorrect old password"})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in password update"})
		return
	}
	if err := h.db.Model(&user).Update("password_hash", hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in password update"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password updated successfully"})
}

type ResetByAnswerRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Answer      string `json:"answer" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ResetPasswordByAnswer resets a password against the stored security answer.
// The answer is a weak secondary factor kept for interface compatibility.
func (h *UserHandler) ResetPasswordByAnswer(c *gin.Context) {
	var req ResetByAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide all fields"})
		return
	}

	var user models.User
	if err := h.db.Where("email = ? AND security_answer = ?", req.Email, req.Answer).First(&user).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "User Not Found or Invalid answer"})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in Resetting Password"})
		return
	}
	if err := h.db.Model(&user).Update("password_hash", hash).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in Resetting Password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password Reset Successfully"})
}

// DeleteUser removes the authenticated account irreversibly
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var user models.User
	if err := h.db.First(&user, middleware.GetPrincipalID(c)).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}
	if err := h.db.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in Deleting Api"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User Deleted Successfully"})
}
