package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rainaarpit12/Sih-2025/internal/apperr"
	"github.com/rainaarpit12/Sih-2025/internal/logger"
	"github.com/rainaarpit12/Sih-2025/internal/services"
	"github.com/rainaarpit12/Sih-2025/internal/types"
)

type AuthHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
}

type authHandler struct {
	log     *logger.Logger
	authSvc services.AuthService
}

func NewAuthHandler(baseLog *logger.Logger, authSvc services.AuthService) AuthHandler {
	return &authHandler{
		log:     baseLog.With("handler", "auth"),
		authSvc: authSvc,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (h *authHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperr.Validation("invalid request body"), nil)
		return
	}
	user := &types.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     req.Role,
	}
	if err := h.authSvc.RegisterUser(c.Request.Context(), user); err != nil {
		RespondError(c, err, nil)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"success": true,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *authHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperr.Validation("invalid request body"), nil)
		return
	}
	accessToken, refreshToken, err := h.authSvc.LoginUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"success":      true,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

func (h *authHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, apperr.Validation("invalid request body"), nil)
		return
	}
	accessToken, refreshToken, err := h.authSvc.RefreshUser(c.Request.Context(), req.RefreshToken)
	if err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"accessToken":  accessToken,
		"refreshToken": refreshToken,
		"success":      true,
	})
}

func (h *authHandler) Logout(c *gin.Context) {
	if err := h.authSvc.LogoutUser(c.Request.Context()); err != nil {
		RespondError(c, err, nil)
		return
	}
	RespondOK(c, gin.H{
		"message": "Logged out",
		"success": true,
	})
}
