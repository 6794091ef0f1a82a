package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authusecases "github.com/techile/fieldportal/internal/application/auth/usecases"
	clientusecases "github.com/techile/fieldportal/internal/application/client/usecases"
	sharedConfig "github.com/techile/fieldportal/internal/shared/config"
	"github.com/techile/fieldportal/internal/shared/logger"
	"github.com/techile/fieldportal/internal/shared/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"company_name" validate:"max=200"`
	FirstName   string `json:"first_name" validate:"max=100"`
	LastName    string `json:"last_name" validate:"max=100"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type AuthHandler struct {
	login          authusecases.LoginExecutor
	changePassword authusecases.ChangePasswordExecutor
	register       clientusecases.RegisterClientExecutor
	cookieConfig   sharedConfig.CookieConfig
	logger         logger.Interface
}

func NewAuthHandler(
	login authusecases.LoginExecutor,
	changePassword authusecases.ChangePasswordExecutor,
	register clientusecases.RegisterClientExecutor,
	cookieConfig sharedConfig.CookieConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		login:          login,
		changePassword: changePassword,
		register:       register,
		cookieConfig:   cookieConfig,
		logger:         logger,
	}
}

// Login authenticates a user and sets the access token cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.login.Execute(c.Request.Context(), authusecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	utils.SetAccessTokenCookie(c, h.cookieConfig, result.Token, maxAge)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", result)
}

// Logout clears the access token cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearAccessTokenCookie(c, h.cookieConfig)
	utils.SuccessResponse(c, http.StatusOK, "Logout successful", nil)
}

// Register creates a client account with its default subscription.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for register", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.register.Execute(c.Request.Context(), clientusecases.RegisterClientCommand{
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

// ChangePassword updates the authenticated user's password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for change password", "user_id", userID, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	err = h.changePassword.Execute(c.Request.Context(), authusecases.ChangePasswordCommand{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Password changed successfully", nil)
}
