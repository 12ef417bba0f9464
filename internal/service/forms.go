package service

import (
	"io"

	"healthcare-portal/internal/models"
)

// Credentials is a login attempt. Patients identify by email or legacy username,
// doctors and admins by username.
type Credentials struct {
	Identifier string `json:"identifier" validate:"notblank"`
	Password   string `json:"password" validate:"notblank"`
}

func (Credentials) FieldMessages() map[string]string {
	return map[string]string{
		"identifier": "Email or username is required",
		"password":   "Password is required",
	}
}

// PatientRegistration is the sign-up form.
type PatientRegistration struct {
	Name            string            `json:"name" validate:"personname"`
	Email           string            `json:"email" validate:"appemail"`
	Password        string            `json:"password" validate:"strongpassword"`
	ConfirmPassword string            `json:"confirmPassword" validate:"eqfield=Password"`
	Gender          models.Gender     `json:"gender" validate:"gender"`
	Age             int               `json:"age" validate:"age"`
	BMI             float64           `json:"bmi" validate:"bmi"`
	Address         string            `json:"address" validate:"notblank"`
	BloodGroup      models.BloodGroup `json:"bloodGroup" validate:"bloodgroup"`
	Income          float64           `json:"income" validate:"gte=0"`
	Religion        string            `json:"religion" validate:"notblank"`
	Occupation      string            `json:"occupation" validate:"notblank"`
	FamilyDiseases  string            `json:"familyBackgroundDiseases"`
}

func (PatientRegistration) FieldMessages() map[string]string {
	return map[string]string{
		"name":       "Name must be between 2 and 100 characters",
		"email":      "Please enter a valid email address",
		"gender":     "Gender is required",
		"age":        "Please enter a valid age (1-150)",
		"bmi":        "BMI must be between 10.0 and 60.0",
		"address":    "Address is required",
		"bloodGroup": "Blood group is required",
		"income":     "Income must be 0 or greater",
		"religion":   "Religion is required",
		"occupation": "Occupation is required",
	}
}

// ProfileUpdate replaces a patient's whole editable profile.
type ProfileUpdate struct {
	Name           string            `json:"name" validate:"personname"`
	Email          string            `json:"email" validate:"appemail"`
	Gender         models.Gender     `json:"gender" validate:"gender"`
	Age            int               `json:"age" validate:"age"`
	BMI            float64           `json:"bmi" validate:"bmi"`
	Address        string            `json:"address" validate:"notblank"`
	BloodGroup     models.BloodGroup `json:"bloodGroup" validate:"bloodgroup"`
	Income         float64           `json:"income" validate:"gte=0"`
	Religion       string            `json:"religion" validate:"notblank"`
	Occupation     string            `json:"occupation" validate:"notblank"`
	FamilyDiseases string            `json:"familyBackgroundDiseases"`
}

func (ProfileUpdate) FieldMessages() map[string]string {
	return map[string]string{
		"name":       "Name must be between 2 and 100 characters",
		"email":      "Valid email is required",
		"gender":     "Gender is required",
		"age":        "Age must be 1-150",
		"bmi":        "BMI must be 10-60",
		"address":    "Address is required",
		"bloodGroup": "Blood group is required",
		"income":     "Income must be 0 or more",
		"religion":   "Religion is required",
		"occupation": "Occupation is required",
	}
}

// DocumentUpload carries one file from the picker. Content is read to the end.
type DocumentUpload struct {
	FileName    string              `json:"fileName" validate:"notblank"`
	ContentType string              `json:"contentType"`
	Content     io.Reader           `json:"-"`
	Type        models.DocumentType `json:"type" validate:"doctype"`
	Description string              `json:"description"`
}

func (DocumentUpload) FieldMessages() map[string]string {
	return map[string]string{
		"fileName": "Please select a file",
		"type":     "Please select document type",
	}
}

// AppointmentForm books a catalog doctor at a catalog hospital.
type AppointmentForm struct {
	HospitalID string `json:"hospitalId" validate:"notblank"`
	DoctorID   string `json:"doctorId" validate:"notblank"`
	Date       string `json:"date" validate:"notblank"`
	Time       string `json:"time" validate:"notblank"`
	Symptoms   string `json:"symptoms" validate:"notblank"`
}

func (AppointmentForm) FieldMessages() map[string]string {
	return map[string]string{
		"hospitalId": "Please select a hospital",
		"doctorId":   "Please select a doctor",
		"date":       "Please select a date",
		"time":       "Please select a time slot",
		"symptoms":   "Please describe your symptoms",
	}
}

// PasswordReset confirms a reset with the code that was e-mailed.
type PasswordReset struct {
	Email           string `json:"email" validate:"appemail"`
	OTP             string `json:"otp"`
	NewPassword     string `json:"newPassword" validate:"strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=NewPassword"`
}

func (PasswordReset) FieldMessages() map[string]string {
	return map[string]string{
		"email": "Please enter a valid email",
	}
}

// AppointmentDecision is a doctor accepting or rejecting a pending booking.
type AppointmentDecision struct {
	PatientEmail  string                   `json:"patientEmail" validate:"notblank"`
	AppointmentID string                   `json:"appointmentId" validate:"notblank"`
	Status        models.AppointmentStatus `json:"status" validate:"oneof=accepted rejected"`
	Message       string                   `json:"message"`
}

func (AppointmentDecision) FieldMessages() map[string]string {
	return map[string]string{
		"patientEmail":  "Patient is required",
		"appointmentId": "Appointment is required",
		"status":        "Status must be accepted or rejected",
	}
}

// DoctorRegistration is an admin adding a doctor to their hospital.
type DoctorRegistration struct {
	Username        string `json:"username" validate:"username"`
	Name            string `json:"name" validate:"notblank"`
	Department      string `json:"department" validate:"notblank,department"`
	Password        string `json:"password" validate:"strongpassword"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
}

func (DoctorRegistration) FieldMessages() map[string]string {
	return map[string]string{
		"name":                  "Doctor name is required",
		"department":            "Department is required",
		"department.department": "Please select a valid department",
	}
}

// AvailabilityForm adds a weekly slot to a registered doctor.
type AvailabilityForm struct {
	DoctorUsername string `json:"doctorUsername" validate:"notblank"`
	Day            string `json:"day" validate:"notblank,weekday"`
	TimeSlot       string `json:"timeSlot" validate:"notblank"`
}

func (AvailabilityForm) FieldMessages() map[string]string {
	return map[string]string{
		"doctorUsername": "Please fill all fields",
		"day":            "Please fill all fields",
		"day.weekday":    "Day must be a weekday such as Monday",
		"timeSlot":       "Please fill all fields",
	}
}

// AdminRegistration provisions a hospital and its admin account.
type AdminRegistration struct {
	HospitalName     string `json:"hospitalName" validate:"notblank"`
	HospitalLocation string `json:"hospitalLocation" validate:"notblank"`
	HospitalLogo     string `json:"hospitalLogo" validate:"omitempty,url"`
	AdminUsername    string `json:"adminUsername" validate:"username"`
	AdminPassword    string `json:"adminPassword" validate:"strongpassword"`
	ConfirmPassword  string `json:"confirmPassword" validate:"eqfield=AdminPassword"`
}

func (AdminRegistration) FieldMessages() map[string]string {
	return map[string]string{
		"hospitalName":     "Hospital name is required",
		"hospitalLocation": "Hospital location is required",
		"hospitalLogo":     "Hospital logo must be a valid URL",
	}
}
