package models

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending  AppointmentStatus = "pending"
	StatusAccepted AppointmentStatus = "accepted"
	StatusRejected AppointmentStatus = "rejected"
)

// Valid reports whether s is one of the known statuses.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// CanTransition reports whether an appointment may move from s to next.
// Only pending appointments can be decided, and nothing returns to pending.
func (s AppointmentStatus) CanTransition(next AppointmentStatus) bool {
	switch s {
	case StatusPending:
		return next == StatusAccepted || next == StatusRejected
	case StatusAccepted, StatusRejected:
		return false
	}
	return false
}

// Appointment is a booking request owned by a patient record.
type Appointment struct {
	ID           string            `json:"id"`
	HospitalID   string            `json:"hospitalId"`
	HospitalName string            `json:"hospitalName"`
	Department   string            `json:"department"`
	DoctorID     string            `json:"doctorId"`
	DoctorName   string            `json:"doctorName"`
	Date         string            `json:"date"`
	Time         string            `json:"time"`
	Symptoms     string            `json:"symptoms"`
	Status       AppointmentStatus `json:"status"`
	Message      string            `json:"message"`
}

// Decide moves a pending appointment to accepted or rejected.
func (a *Appointment) Decide(next AppointmentStatus, message string) error {
	if !a.Status.CanTransition(next) {
		return ErrInvalidTransition
	}
	a.Status = next
	a.Message = message
	return nil
}
