package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"healthcare-portal/internal/catalog"
	"healthcare-portal/internal/models"
	"healthcare-portal/internal/utils"
)

// CatalogHandler serves the static hospital and doctor reference data.
type CatalogHandler struct {
	Now func() time.Time
}

// NewCatalogHandler creates a new CatalogHandler; a nil now means time.Now.
func NewCatalogHandler(now func() time.Time) *CatalogHandler {
	if now == nil {
		now = time.Now
	}
	return &CatalogHandler{Now: now}
}

// Options lists the closed value sets the forms offer.
type Options struct {
	Departments   []string              `json:"departments"`
	Religions     []string              `json:"religions"`
	Genders       []models.Gender       `json:"genders"`
	BloodGroups   []models.BloodGroup   `json:"bloodGroups"`
	DocumentTypes []models.DocumentType `json:"documentTypes"`
}

// GetOptions returns the form option lists.
func (h *CatalogHandler) GetOptions(c *gin.Context) {
	utils.Success(c, "Options fetched successfully", Options{
		Departments:   catalog.Departments(),
		Religions:     catalog.Religions(),
		Genders:       models.Genders,
		BloodGroups:   models.BloodGroups,
		DocumentTypes: models.DocumentTypes,
	})
}

// SearchHospitals filters hospitals by the "q" query parameter.
func (h *CatalogHandler) SearchHospitals(c *gin.Context) {
	utils.Success(c, "Hospitals fetched successfully", catalog.SearchHospitals(c.Query("q")))
}

// GetHospital returns one hospital by id.
func (h *CatalogHandler) GetHospital(c *gin.Context) {
	hospital, ok := catalog.HospitalByID(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Hospital not found")
		return
	}
	utils.Success(c, "Hospital fetched successfully", hospital)
}

// GetDoctors filters doctors by "hospitalId" and "department".
func (h *CatalogHandler) GetDoctors(c *gin.Context) {
	utils.Success(c, "Doctors fetched successfully", catalog.DoctorsFor(c.Query("hospitalId"), c.Query("department")))
}

// GetDoctorAvailability reports a doctor's slots for a weekday name in "day", or for
// "date" (YYYY-MM-DD), today when neither is given.
func (h *CatalogHandler) GetDoctorAvailability(c *gin.Context) {
	doctor, ok := catalog.DoctorByID(c.Param("id"))
	if !ok {
		utils.NotFound(c, "Doctor not found")
		return
	}

	if name := c.Query("day"); name != "" {
		if !utils.ValidateWeekday(name) {
			utils.BadRequest(c, "day must be a weekday such as Monday")
			return
		}
		day := catalog.DayAvailability{Day: name, Message: catalog.NotAvailableMessage}
		if slots := catalog.SlotsOn(doctor.Availability, name); slots != nil {
			day = catalog.DayAvailability{Day: name, Available: true, Slots: slots}
		}
		utils.Success(c, "Availability fetched successfully", day)
		return
	}

	day := h.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			utils.BadRequest(c, "date must be formatted as YYYY-MM-DD")
			return
		}
		day = parsed
	}

	utils.Success(c, "Availability fetched successfully", catalog.AvailabilityOn(doctor.Availability, day))
}
