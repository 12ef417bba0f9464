package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/service"
	"healthcare-portal/internal/utils"
)

// DeveloperHandler provisions hospitals and their admin accounts.
type DeveloperHandler struct {
	Services *service.Services
	Log      *logrus.Logger
}

// NewDeveloperHandler creates a new DeveloperHandler.
func NewDeveloperHandler(services *service.Services, log *logrus.Logger) *DeveloperHandler {
	return &DeveloperHandler{Services: services, Log: log}
}

// CreateAdmin registers a hospital admin.
func (h *DeveloperHandler) CreateAdmin(c *gin.Context) {
	var req service.AdminRegistration
	if !utils.BindJSON(c, &req) {
		return
	}

	admin, err := h.Services.Developer.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.Log, "CreateAdmin", err)
		return
	}

	utils.Created(c, "Admin registered successfully!", admin.Public())
}
