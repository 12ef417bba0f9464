package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/middleware"
	"healthcare-portal/internal/models"
	"healthcare-portal/internal/service"
	"healthcare-portal/internal/utils"
)

// AppointmentHandler handles booking by patients and decisions by doctors.
type AppointmentHandler struct {
	Services *service.Services
	Log      *logrus.Logger
}

// NewAppointmentHandler creates a new AppointmentHandler.
func NewAppointmentHandler(services *service.Services, log *logrus.Logger) *AppointmentHandler {
	return &AppointmentHandler{Services: services, Log: log}
}

// CreateAppointment books a pending appointment for the calling patient.
func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	var req service.AppointmentForm
	if !utils.BindJSON(c, &req) {
		return
	}

	patient, err := h.Services.Patients.BookAppointment(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, h.Log, "CreateAppointment", err)
		return
	}

	utils.Created(c, "Appointment booked successfully!", patient.Appointments[len(patient.Appointments)-1])
}

// GetAppointmentsForPatient lists the calling patient's appointments in booking order.
func (h *AppointmentHandler) GetAppointmentsForPatient(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	patient, err := h.Services.Patients.Get(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.Log, "GetAppointmentsForPatient", err)
		return
	}

	appointments := patient.Appointments
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// GetIncomingAppointments lists the appointments shown on the doctor dashboard.
func (h *AppointmentHandler) GetIncomingAppointments(c *gin.Context) {
	incoming, err := h.Services.Doctors.IncomingAppointments(c.Request.Context())
	if err != nil {
		respondError(c, h.Log, "GetIncomingAppointments", err)
		return
	}

	utils.Success(c, "Appointments fetched successfully", publicIncoming(incoming))
}

// UpdateAppointmentStatus accepts or rejects a pending appointment.
func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	var req service.AppointmentDecision
	if !utils.BindJSON(c, &req) {
		return
	}
	if id := c.Param("id"); id != "" {
		req.AppointmentID = id
	}

	appt, err := h.Services.Doctors.RespondToAppointment(c.Request.Context(), identity, req)
	if err != nil {
		respondError(c, h.Log, "UpdateAppointmentStatus", err)
		return
	}

	utils.Success(c, "Appointment "+string(appt.Status)+" successfully", appt)
}

func publicIncoming(in []service.IncomingAppointment) []service.IncomingAppointment {
	out := make([]service.IncomingAppointment, len(in))
	for i, a := range in {
		a.PatientData = a.PatientData.Public()
		out[i] = a
	}
	return out
}
