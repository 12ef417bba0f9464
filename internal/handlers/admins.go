package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/middleware"
	"healthcare-portal/internal/service"
	"healthcare-portal/internal/utils"
)

// AdminHandler handles hospital administration.
type AdminHandler struct {
	Services *service.Services
	Log      *logrus.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(services *service.Services, log *logrus.Logger) *AdminHandler {
	return &AdminHandler{Services: services, Log: log}
}

// GetDashboard returns the admin's hospital with department statistics.
func (h *AdminHandler) GetDashboard(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	dashboard, err := h.Services.Admins.Dashboard(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.Log, "GetDashboard", err)
		return
	}

	dashboard.Admin = dashboard.Admin.Public()
	utils.Success(c, "Dashboard fetched successfully", dashboard)
}

// CreateDoctor registers a doctor at the calling admin's hospital.
func (h *AdminHandler) CreateDoctor(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	var req service.DoctorRegistration
	if !utils.BindJSON(c, &req) {
		return
	}

	doctor, err := h.Services.Admins.RegisterDoctor(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, h.Log, "CreateDoctor", err)
		return
	}

	utils.Created(c, "Doctor registered successfully!", doctor.Public())
}

// SetAvailability adds a weekly time slot to a registered doctor.
func (h *AdminHandler) SetAvailability(c *gin.Context) {
	var req service.AvailabilityForm
	if !utils.BindJSON(c, &req) {
		return
	}

	doctor, err := h.Services.Admins.SetAvailability(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Log, "SetAvailability", err)
		return
	}

	utils.Success(c, "Availability updated successfully!", doctor.Public())
}
