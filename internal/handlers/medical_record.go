package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/middleware"
	"healthcare-portal/internal/models"
	"healthcare-portal/internal/service"
	"healthcare-portal/internal/utils"
)

// MedicalRecordHandler handles a patient's uploaded documents.
type MedicalRecordHandler struct {
	Services       *service.Services
	Log            *logrus.Logger
	MaxUploadBytes int64
}

// NewMedicalRecordHandler creates a new MedicalRecordHandler.
func NewMedicalRecordHandler(services *service.Services, log *logrus.Logger, maxUploadBytes int64) *MedicalRecordHandler {
	return &MedicalRecordHandler{Services: services, Log: log, MaxUploadBytes: maxUploadBytes}
}

// ListDocuments returns the caller's documents in upload order.
func (h *MedicalRecordHandler) ListDocuments(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	patient, err := h.Services.Patients.Get(c.Request.Context(), identity)
	if err != nil {
		respondError(c, h.Log, "ListDocuments", err)
		return
	}

	documents := patient.Documents
	if documents == nil {
		documents = []models.Document{}
	}
	utils.Success(c, "Documents fetched successfully", documents)
}

// UploadDocument accepts a multipart form with "file", "type" and "description".
func (h *MedicalRecordHandler) UploadDocument(c *gin.Context) {
	identity, ok := callerIdentity(c, middleware.GetIdentityFromContext)
	if !ok {
		return
	}

	if h.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	}

	upload := service.DocumentUpload{
		Type:        models.DocumentType(c.PostForm("type")),
		Description: c.PostForm("description"),
	}

	file, header, err := c.Request.FormFile("file")
	if err == nil {
		defer file.Close()
		upload.FileName = header.Filename
		upload.ContentType = header.Header.Get("Content-Type")
		upload.Content = file
	} else if !errors.Is(err, http.ErrMissingFile) {
		utils.BadRequest(c, "Error retrieving file from form: "+err.Error())
		return
	}

	patient, err := h.Services.Patients.UploadDocument(c.Request.Context(), identity, upload)
	if err != nil {
		respondError(c, h.Log, "UploadDocument", err)
		return
	}

	utils.Created(c, "Document uploaded successfully!", patient.Documents[len(patient.Documents)-1])
}
