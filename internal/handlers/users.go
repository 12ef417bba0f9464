package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/middleware"
	"healthcare-portal/internal/models"
	"healthcare-portal/internal/service"
	"healthcare-portal/internal/utils"
)

// PatientHandler serves the logged-in patient's own profile.
type PatientHandler struct {
	Services *service.Services
	Log      *logrus.Logger
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(services *service.Services, log *logrus.Logger) *PatientHandler {
	return &PatientHandler{Services: services, Log: log}
}

// GetProfile returns the patient with documents, appointments and profile history.
func (h *PatientHandler) GetProfile(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	patient, err := h.Services.Patients.Get(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.Log, "GetProfile", err)
		return
	}

	utils.Success(c, "Profile fetched successfully", patient.Public())
}

// ProfileResponse carries the updated patient and, when the email changed, a token
// for the new identity.
type ProfileResponse struct {
	Patient     models.Patient `json:"patient"`
	AccessToken string         `json:"accessToken,omitempty"`
}

// UpdateProfile replaces the editable profile, archiving the previous one.
func (h *PatientHandler) UpdateProfile(tokens *AuthHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
		if !ok {
			return
		}

		var req service.ProfileUpdate
		if !utils.BindJSON(c, &req) {
			return
		}

		patient, err := h.Services.Patients.UpdateProfile(c.Request.Context(), identity, req)
		if err != nil {
			respondError(c, h.Log, "UpdateProfile", err)
			return
		}

		resp := ProfileResponse{Patient: patient.Public()}
		if patient.Identity() != identity {
			role, _ := middleware.GetUserRoleFromContext(c)
			token, err := utils.GenerateToken(patient.Identity(), role, tokens.JWTSecret, tokens.SessionTTL)
			if err != nil {
				respondError(c, h.Log, "UpdateProfile", err)
				return
			}
			resp.AccessToken = token
		}

		utils.Success(c, "Profile updated successfully!", resp)
	}
}
