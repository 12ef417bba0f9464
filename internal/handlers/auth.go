package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/middleware"
	"healthcare-portal/internal/models"
	"healthcare-portal/internal/service"
	"healthcare-portal/internal/utils"
)

// AuthHandler handles login, logout, sign-up and password reset.
type AuthHandler struct {
	Services   *service.Services
	Log        *logrus.Logger
	JWTSecret  string
	SessionTTL time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *service.Services, log *logrus.Logger, jwtSecret string, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{Services: services, Log: log, JWTSecret: jwtSecret, SessionTTL: sessionTTL}
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	AccessToken string      `json:"accessToken"`
	Identity    string      `json:"identity"`
	Role        models.Role `json:"role"`
}

// Login returns a handler authenticating against role's accounts.
func (h *AuthHandler) Login(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req service.Credentials
		if !utils.BindJSON(c, &req) {
			return
		}

		identity, err := h.Services.Session.Login(c.Request.Context(), role, req)
		if err != nil {
			respondError(c, h.Log, "Login", err)
			return
		}

		token, err := utils.GenerateToken(identity, role, h.JWTSecret, h.SessionTTL)
		if err != nil {
			respondError(c, h.Log, "Login", err)
			return
		}

		utils.Success(c, "Login successful", LoginResponse{
			AccessToken: token,
			Identity:    identity,
			Role:        role,
		})
	}
}

// Register handles patient sign-up.
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.PatientRegistration
	if !utils.BindJSON(c, &req) {
		return
	}

	patient, err := h.Services.Patients.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Log, "Register", err)
		return
	}

	utils.Created(c, "Registration successful! Please login.", patient.Public())
}

// Logout clears the caller's role session.
func (h *AuthHandler) Logout(c *gin.Context) {
	role, ok := middleware.GetUserRoleFromContext(c)
	if !ok {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := h.Services.Session.Logout(c.Request.Context(), role); err != nil {
		respondError(c, h.Log, "Logout", err)
		return
	}

	utils.Success(c, "Logout successful", nil)
}

// SessionResponse describes the caller's token and the role's recorded session.
type SessionResponse struct {
	Identity string      `json:"identity"`
	Role     models.Role `json:"role"`
	Current  string      `json:"current"`
}

// Session reports who the token belongs to and who is recorded as logged in for that role.
func (h *AuthHandler) Session(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}
	role, _ := middleware.GetUserRoleFromContext(c)

	current, err := h.Services.Session.Current(c.Request.Context(), role)
	if err != nil {
		respondError(c, h.Log, "Session", err)
		return
	}

	utils.Success(c, "Session fetched successfully", SessionResponse{
		Identity: identity,
		Role:     role,
		Current:  current,
	})
}

// OTPRequest asks for a password reset code.
type OTPRequest struct {
	Email string `json:"email"`
}

// RequestPasswordReset e-mails a reset code. The code itself is never returned.
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req OTPRequest
	if !utils.BindJSON(c, &req) {
		return
	}

	if _, err := h.Services.Patients.RequestPasswordResetOTP(c.Request.Context(), req.Email); err != nil {
		respondError(c, h.Log, "RequestPasswordReset", err)
		return
	}

	utils.Success(c, "OTP sent to your email", nil)
}

// ConfirmPasswordReset sets a new password once the code matches.
func (h *AuthHandler) ConfirmPasswordReset(c *gin.Context) {
	var req service.PasswordReset
	if !utils.BindJSON(c, &req) {
		return
	}

	if err := h.Services.Patients.ConfirmPasswordReset(c.Request.Context(), req); err != nil {
		respondError(c, h.Log, "ConfirmPasswordReset", err)
		return
	}

	utils.Success(c, "Password reset successful! Please login with your new password.", nil)
}
