package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"food-ordering-api/auth"
	"food-ordering-api/mailer"
	"food-ordering-api/models"
)

// AuthHandler covers user registration, login, email verification and the
// mail-token password reset flow.
type AuthHandler struct {
	db      *gorm.DB
	tokens  *auth.TokenService
	mail    mailer.Mailer
	baseURL string
}

func NewAuthHandler(db *gorm.DB, tokens *auth.TokenService, mail mailer.Mailer, baseURL string) *AuthHandler {
	return &AuthHandler{db: db, tokens: tokens, mail: mail, baseURL: baseURL}
}

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Address  string `json:"address" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new user account and sends a verification mail.
// The mail send is fire-and-forget: a delivery failure never rolls back the
// registration.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide all fields"})
		return
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "User already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user"})
		return
	}

	verifyToken := uuid.NewString()
	user := models.User{
		Username:       req.Username,
		Email:          req.Email,
		PasswordHash:   hash,
		Address:        req.Address,
		Phone:          req.Phone,
		SecurityAnswer: req.Answer,
		IsVerified:     false,
		VerifyToken:    &verifyToken,
	}
	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create user"})
		return
	}

	body := "Please click on the link below to verify your email\n\n" +
		h.baseURL + "/api/v1/auth/verifyEmail?token=" + verifyToken + "\n\nThank you,"
	if err := h.mail.Send(user.Email, "Verify your email", body); err != nil {
		slog.Error("verification mail send failed", "email", user.Email, "error", err)
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Successfully Registered",
		"user":    user,
	})
}

// Login authenticates a user and issues a bearer token. Unknown email and
// wrong password share one response so the endpoint never reveals whether an
// account exists.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide email and password"})
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}
	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid email or password"})
		return
	}

	token, err := h.tokens.Issue(user.ID, auth.RoleUser)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successfully",
		"token":   token,
		"user":    user,
	})
}

// VerifyEmail resolves a verification token, marks the account verified and
// consumes the token.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Token is required"})
		return
	}

	var user models.User
	if err := h.db.Where("verify_token = ?", token).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid or expired token"})
		return
	}

	if err := h.db.Model(&user).Updates(map[string]interface{}{
		"is_verified":  true,
		"verify_token": nil,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to verify user"})
		return
	}
	user.IsVerified = true
	user.VerifyToken = nil

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User verified successfully",
		"user":    user,
	})
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ForgotPassword generates a fresh reset token, persists it and mails it.
// Nothing is sent when no account matches the email.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email is required"})
		return
	}

	var user models.User
	if err := h.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	resetToken := uuid.NewString()
	if err := h.db.Model(&user).Update("verify_token", resetToken).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Something went wrong"})
		return
	}

	body := "Use the token below to reset your password\n\n" + resetToken + "\n\n" +
		h.baseURL + "/api/v1/auth/updatepassword"
	if err := h.mail.Send(user.Email, "Reset your password", body); err != nil {
		slog.Error("reset mail send failed", "email", user.Email, "error", err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Reset mail sent"})
}

type ResetByTokenRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newpassword" binding:"required,min=6"`
}

// ResetPasswordByToken consumes a mailed reset token and sets a new password.
func (h *AuthHandler) ResetPasswordByToken(c *gin.Context) {
	var req ResetByTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide token and new password"})
		return
	}

	var user models.User
	if err := h.db.Where("verify_token = ?", req.Token).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating user"})
		return
	}
	if err := h.db.Model(&user).Updates(map[string]interface{}{
		"password_hash": hash,
		"verify_token":  nil,
	}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error in updating user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User Updated Successfully"})
}
