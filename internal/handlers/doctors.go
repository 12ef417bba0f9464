package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/middleware"
	"healthcare-portal/internal/service"
	"healthcare-portal/internal/utils"
)

// DoctorHandler serves the doctor dashboard.
type DoctorHandler struct {
	Services *service.Services
	Log      *logrus.Logger
}

// NewDoctorHandler creates a new DoctorHandler.
func NewDoctorHandler(services *service.Services, log *logrus.Logger) *DoctorHandler {
	return &DoctorHandler{Services: services, Log: log}
}

// GetDashboard returns the doctor, incoming appointments and counters.
func (h *DoctorHandler) GetDashboard(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	dashboard, err := h.Services.Doctors.Dashboard(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.Log, "GetDashboard", err)
		return
	}

	dashboard.Doctor = dashboard.Doctor.Public()
	dashboard.Appointments = publicIncoming(dashboard.Appointments)
	utils.Success(c, "Dashboard fetched successfully", dashboard)
}
