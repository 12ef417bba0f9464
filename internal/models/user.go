package models

import (
	"encoding/json"
	"strings"
	"time"
)

// Role enum
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

// Valid reports whether r is one of the portal roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleDoctor || r == RolePatient
}

// Patient is a registered patient and everything they own.
// Passwords are stored and compared as plain strings.
type Patient struct {
	Email string `json:"email"`
	// Username is the legacy login handle; registered patients use their email.
	Username        string            `json:"username,omitempty"`
	Password        string            `json:"password"`
	Name            string            `json:"name"`
	Gender          Gender            `json:"gender"`
	Age             int               `json:"age"`
	BMI             float64           `json:"bmi"`
	Address         string            `json:"address"`
	BloodGroup      BloodGroup        `json:"bloodGroup"`
	Income          float64           `json:"income"`
	Religion        string            `json:"religion"`
	Occupation      string            `json:"occupation"`
	FamilyDiseases  string            `json:"familyBackgroundDiseases"`
	Documents       []Document        `json:"documents"`
	Appointments    []Appointment     `json:"appointments"`
	PreviousDetails []ProfileSnapshot `json:"previousDetails"`
}

// patientRecord has Patient's fields without its JSON methods.
type patientRecord Patient

// patientWire is the persisted shape, which still carries the familyDiseases alias
// written by older clients.
type patientWire struct {
	*patientRecord
	FamilyDiseasesAlias string `json:"familyDiseases,omitempty"`
}

// MarshalJSON writes both spellings of the family disease field and
// never emits null collections.
func (p Patient) MarshalJSON() ([]byte, error) {
	rec := patientRecord(p)
	if rec.Username == "" {
		rec.Username = rec.Email
	}
	if rec.Documents == nil {
		rec.Documents = []Document{}
	}
	if rec.Appointments == nil {
		rec.Appointments = []Appointment{}
	}
	if rec.PreviousDetails == nil {
		rec.PreviousDetails = []ProfileSnapshot{}
	}
	return json.Marshal(patientWire{patientRecord: &rec, FamilyDiseasesAlias: p.FamilyDiseases})
}

// UnmarshalJSON accepts either spelling of the family disease field.
func (p *Patient) UnmarshalJSON(data []byte) error {
	wire := patientWire{patientRecord: (*patientRecord)(p)}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if p.FamilyDiseases == "" {
		p.FamilyDiseases = wire.FamilyDiseasesAlias
	}
	return nil
}

// Identity is the session key for the patient: email, else the legacy username.
func (p *Patient) Identity() string {
	if p.Email != "" {
		return p.Email
	}
	return p.Username
}

// Identifies reports whether id names this patient, ignoring case.
func (p *Patient) Identifies(id string) bool {
	if id == "" {
		return false
	}
	return strings.EqualFold(p.Email, id) || strings.EqualFold(p.Username, id)
}

// Snapshot captures the fields that profile history tracks.
func (p *Patient) Snapshot(at time.Time) ProfileSnapshot {
	return ProfileSnapshot{
		Gender:     p.Gender,
		BMI:        p.BMI,
		Address:    p.Address,
		Income:     p.Income,
		Occupation: p.Occupation,
		CapturedAt: at,
	}
}

// Availability is one weekday and the slots offered on it.
type Availability struct {
	Day   string   `json:"day"`
	Slots []string `json:"slots"`
}

// TreatmentRecord counts patients seen on a date. Histories are kept most recent first.
type TreatmentRecord struct {
	Date          string `json:"date"`
	PatientsCount int    `json:"patientsCount"`
}

// Doctor represents a doctor account registered by a hospital admin
type Doctor struct {
	Username         string            `json:"username"`
	Password         string            `json:"password"`
	Name             string            `json:"name"`
	Department       string            `json:"department"`
	Hospital         string            `json:"hospital"`
	Appointments     []Appointment     `json:"appointments"`
	TreatmentHistory []TreatmentRecord `json:"treatmentHistory"`
	Availability     []Availability    `json:"availability,omitempty"`
}

// PeriodCount is one bar of a department chart.
type PeriodCount struct {
	Label    string `json:"label"`
	Patients int    `json:"patients"`
}

// DepartmentStats holds placeholder statistics for one hospital department.
type DepartmentStats struct {
	Name          string        `json:"name"`
	TotalPatients int           `json:"totalPatients"`
	MonthlyData   []PeriodCount `json:"monthlyData"`
	WeeklyData    []PeriodCount `json:"weeklyData"`
}

// Admin represents a hospital administrator
type Admin struct {
	Username         string            `json:"username"`
	Password         string            `json:"password"`
	HospitalName     string            `json:"hospitalName"`
	HospitalLocation string            `json:"hospitalLocation"`
	HospitalLogo     string            `json:"hospitalLogo"`
	Departments      []DepartmentStats `json:"departments"`
}

// TotalPatients sums the department totals.
func (a *Admin) TotalPatients() int {
	total := 0
	for _, d := range a.Departments {
		total += d.TotalPatients
	}
	return total
}

// Public returns a copy safe to hand to clients, without the password.
func (p Patient) Public() Patient {
	p.Password = ""
	return p
}

// Public returns a copy safe to hand to clients, without the password.
func (d Doctor) Public() Doctor {
	d.Password = ""
	return d
}

// Public returns a copy safe to hand to clients, without the password.
func (a Admin) Public() Admin {
	a.Password = ""
	return a
}
