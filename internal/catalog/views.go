package catalog

import (
	"strings"
	"time"

	"healthcare-portal/internal/models"
)

// NotAvailableMessage is reported for a weekday with no schedule entry.
const NotAvailableMessage = "Not available today"

// DayAvailability answers "can this doctor be booked on a given day".
type DayAvailability struct {
	Day       string   `json:"day"`
	Available bool     `json:"available"`
	Message   string   `json:"message,omitempty"`
	Slots     []string `json:"slots,omitempty"`
}

// SearchHospitals matches query against name, location and full address, ignoring case.
// An empty query returns every hospital.
func SearchHospitals(query string) []Hospital {
	q := strings.ToLower(strings.TrimSpace(query))
	out := []Hospital{}
	for _, h := range hospitals {
		if q == "" ||
			strings.Contains(strings.ToLower(h.Name), q) ||
			strings.Contains(strings.ToLower(h.Location), q) ||
			strings.Contains(strings.ToLower(h.FullAddress), q) {
			out = append(out, h.clone())
		}
	}
	return out
}

// DoctorsFor filters catalog doctors by hospital id and then department.
// Empty arguments do not filter; an unknown hospital id matches nobody.
func DoctorsFor(hospitalID, department string) []Doctor {
	hospitalName := ""
	if hospitalID != "" {
		h, ok := HospitalByID(hospitalID)
		if !ok {
			return []Doctor{}
		}
		hospitalName = h.Name
	}

	out := []Doctor{}
	for _, d := range doctors {
		if hospitalName != "" && d.Hospital != hospitalName {
			continue
		}
		if department != "" && d.Department != department {
			continue
		}
		out = append(out, d.clone())
	}
	return out
}

// SlotsOn returns the slots listed for day, or nil.
func SlotsOn(availability []models.Availability, day string) []string {
	for _, a := range availability {
		if a.Day == day {
			return append([]string(nil), a.Slots...)
		}
	}
	return nil
}

// AvailabilityOn maps t to its weekday name and looks that day up in availability.
func AvailabilityOn(availability []models.Availability, t time.Time) DayAvailability {
	day := t.Weekday().String()
	for _, a := range availability {
		if a.Day == day {
			return DayAvailability{Day: day, Available: true, Slots: append([]string(nil), a.Slots...)}
		}
	}
	return DayAvailability{Day: day, Available: false, Message: NotAvailableMessage}
}
