// Package catalog holds the static reference data the portal books and filters against,
// plus the demo accounts used to seed an empty store.
package catalog

import (
	"strings"

	"healthcare-portal/internal/models"
)

// Hospital is a bookable hospital and the departments it runs.
type Hospital struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	FullAddress    string   `json:"fullAddress"`
	GoogleMapsLink string   `json:"googleMapsLink"`
	Departments    []string `json:"departments"`
}

// Doctor is a catalog doctor with a fixed weekly schedule.
type Doctor struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Department   string                `json:"department"`
	Hospital     string                `json:"hospital"`
	Availability []models.Availability `json:"availability"`
}

// Credential is a demo login that works before any registration.
type Credential struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
}

var departments = []string{
	"Cardiology",
	"Orthopedics",
	"Neurology",
	"Pediatrics",
	"General Medicine",
	"Oncology",
	"Dermatology",
	"ENT",
}

var religions = []string{
	"Christianity",
	"Islam",
	"Hinduism",
	"Buddhism",
	"Judaism",
	"Sikhism",
	"Other",
	"Prefer not to say",
}

var hospitals = []Hospital{
	newHospital("1", "City General Hospital", "Downtown, Main Street",
		"123 Main Street, Downtown, City, State 12345, Country", "City+General+Hospital+Downtown"),
	newHospital("2", "Medicare Center", "North Avenue, Block A",
		"456 North Avenue, Block A, City, State 12346, Country", "Medicare+Center+North+Avenue"),
	newHospital("3", "Healthcare Plus", "East Side, Medical District",
		"789 Medical District Road, East Side, City, State 12347, Country", "Healthcare+Plus+East+Side"),
	newHospital("4", "Royal Medical Institute", "West End, Hospital Road",
		"321 Hospital Road, West End, City, State 12348, Country", "Royal+Medical+Institute+West+End"),
}

const (
	morning   = "09:00 AM - 12:00 PM"
	afternoon = "02:00 PM - 05:00 PM"
)

var doctors = []Doctor{
	{
		ID: "1", Name: "Dr. John Smith", Department: "Cardiology", Hospital: "City General Hospital",
		Availability: []models.Availability{
			{Day: "Monday", Slots: []string{morning, afternoon}},
			{Day: "Wednesday", Slots: []string{morning, afternoon}},
			{Day: "Friday", Slots: []string{morning}},
		},
	},
	{
		ID: "2", Name: "Dr. Sarah Wilson", Department: "Cardiology", Hospital: "City General Hospital",
		Availability: []models.Availability{
			{Day: "Tuesday", Slots: []string{"10:00 AM - 01:00 PM", "03:00 PM - 06:00 PM"}},
			{Day: "Thursday", Slots: []string{"10:00 AM - 01:00 PM", "03:00 PM - 06:00 PM"}},
		},
	},
	{
		ID: "3", Name: "Dr. Michael Brown", Department: "Orthopedics", Hospital: "Medicare Center",
		Availability: []models.Availability{
			{Day: "Monday", Slots: []string{"08:00 AM - 11:00 AM", "01:00 PM - 04:00 PM"}},
			{Day: "Tuesday", Slots: []string{"08:00 AM - 11:00 AM", "01:00 PM - 04:00 PM"}},
			{Day: "Thursday", Slots: []string{"08:00 AM - 11:00 AM"}},
		},
	},
	{
		ID: "4", Name: "Dr. Emily Davis", Department: "Neurology", Hospital: "Healthcare Plus",
		Availability: []models.Availability{
			{Day: "Wednesday", Slots: []string{morning, afternoon}},
			{Day: "Friday", Slots: []string{morning, afternoon}},
		},
	},
	{
		ID: "5", Name: "Dr. James Taylor", Department: "Pediatrics", Hospital: "Royal Medical Institute",
		Availability: weekdays("10:00 AM - 01:00 PM"),
	},
	{
		ID: "6", Name: "Dr. Lisa Anderson", Department: "General Medicine", Hospital: "City General Hospital",
		Availability: weekdays("09:00 AM - 05:00 PM"),
	},
}

var (
	demoPatients = []Credential{
		{Username: "patient1", Email: "patient1@example.com", Password: "Patient@123"},
		{Username: "john.doe", Email: "john.doe@example.com", Password: "John@2024"},
	}
	demoDoctors = []Credential{
		{Username: "dr.smith", Password: "Doctor@123"},
		{Username: "dr.wilson", Password: "Wilson@2024"},
	}
	demoAdmins = []Credential{
		{Username: "admin1", Password: "Admin@123"},
		{Username: "hospital.admin", Password: "HospitalAdmin@2024"},
	}
)

func newHospital(id, name, location, fullAddress, mapsQuery string) Hospital {
	return Hospital{
		ID:             id,
		Name:           name,
		Location:       location,
		FullAddress:    fullAddress,
		GoogleMapsLink: "https://www.google.com/maps/search/?api=1&query=" + mapsQuery,
		Departments:    departments,
	}
}

func weekdays(slot string) []models.Availability {
	days := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}
	out := make([]models.Availability, 0, len(days))
	for _, d := range days {
		out = append(out, models.Availability{Day: d, Slots: []string{slot}})
	}
	return out
}

// Departments returns every department name in display order.
func Departments() []string {
	return append([]string(nil), departments...)
}

// IsDepartment reports whether name is a catalog department.
func IsDepartment(name string) bool {
	for _, d := range departments {
		if d == name {
			return true
		}
	}
	return false
}

// Religions returns the religion options offered at registration.
func Religions() []string {
	return append([]string(nil), religions...)
}

// Hospitals returns a copy of the hospital table.
func Hospitals() []Hospital {
	out := make([]Hospital, len(hospitals))
	for i, h := range hospitals {
		out[i] = h.clone()
	}
	return out
}

// HospitalByID looks up a hospital by its catalog id.
func HospitalByID(id string) (Hospital, bool) {
	for _, h := range hospitals {
		if h.ID == id {
			return h.clone(), true
		}
	}
	return Hospital{}, false
}

// Doctors returns a copy of the catalog doctor table.
func Doctors() []Doctor {
	out := make([]Doctor, len(doctors))
	for i, d := range doctors {
		out[i] = d.clone()
	}
	return out
}

// DoctorByID looks up a catalog doctor by id.
func DoctorByID(id string) (Doctor, bool) {
	for _, d := range doctors {
		if d.ID == id {
			return d.clone(), true
		}
	}
	return Doctor{}, false
}

// DemoPatients returns the demo patient logins.
func DemoPatients() []Credential { return append([]Credential(nil), demoPatients...) }

// DemoDoctors returns the demo doctor logins.
func DemoDoctors() []Credential { return append([]Credential(nil), demoDoctors...) }

// DemoAdmins returns the demo admin logins.
func DemoAdmins() []Credential { return append([]Credential(nil), demoAdmins...) }

// MatchDemoPatient finds the demo patient whose email or username equals identifier
// (ignoring case) and whose password matches exactly.
func MatchDemoPatient(identifier, password string) (Credential, bool) {
	for _, c := range demoPatients {
		if (strings.EqualFold(c.Email, identifier) || strings.EqualFold(c.Username, identifier)) &&
			c.Password == password {
			return c, true
		}
	}
	return Credential{}, false
}

func (h Hospital) clone() Hospital {
	h.Departments = append([]string(nil), h.Departments...)
	return h
}

func (d Doctor) clone() Doctor {
	d.Availability = CloneAvailability(d.Availability)
	return d
}

// CloneAvailability deep-copies a weekly schedule.
func CloneAvailability(in []models.Availability) []models.Availability {
	if in == nil {
		return nil
	}
	out := make([]models.Availability, len(in))
	for i, a := range in {
		out[i] = models.Availability{Day: a.Day, Slots: append([]string(nil), a.Slots...)}
	}
	return out
}
