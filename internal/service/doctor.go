package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/catalog"
	"healthcare-portal/internal/models"
)

const (
	// IncomingAppointmentLimit caps the dashboard's appointment list.
	IncomingAppointmentLimit = 5
	// weekWindow is how many treatment history entries count as "this week".
	weekWindow = 7
)

// IncomingAppointment is an appointment joined with the patient who booked it.
type IncomingAppointment struct {
	models.Appointment
	PatientData models.Patient `json:"patientData"`
}

// DoctorStats are the dashboard counters.
type DoctorStats struct {
	Today        int `json:"today"`
	ThisWeek     int `json:"thisWeek"`
	TotalTreated int `json:"totalTreated"`
}

// DoctorDashboard is everything a doctor sees after logging in.
type DoctorDashboard struct {
	Doctor       models.Doctor         `json:"doctor"`
	Appointments []IncomingAppointment `json:"appointments"`
	Stats        DoctorStats           `json:"stats"`
}

// DoctorService serves the doctor dashboard and appointment decisions.
type DoctorService struct {
	deps
}

// LoadDoctor returns the stored doctor, or a default demo record when none is stored.
// The default is never persisted.
func (s *DoctorService) LoadDoctor(ctx context.Context, username string) (models.Doctor, error) {
	doctors, err := s.store.Doctors(ctx)
	if err != nil {
		return models.Doctor{}, err
	}
	if i := findDoctor(doctors, username); i >= 0 {
		return doctors[i], nil
	}
	return catalog.DefaultDoctor(username), nil
}

// IncomingAppointments lists every patient's appointments in patient order, then
// booking order, keeping the first IncomingAppointmentLimit.
func (s *DoctorService) IncomingAppointments(ctx context.Context) ([]IncomingAppointment, error) {
	patients, err := s.store.Patients(ctx)
	if err != nil {
		return nil, err
	}
	return incomingAppointments(patients, IncomingAppointmentLimit), nil
}

func incomingAppointments(patients []models.Patient, limit int) []IncomingAppointment {
	out := []IncomingAppointment{}
	for _, p := range patients {
		for _, a := range p.Appointments {
			if len(out) == limit {
				return out
			}
			out = append(out, IncomingAppointment{Appointment: a, PatientData: p})
		}
	}
	return out
}

// DashboardStats derives the dashboard counters. This week is a fixed window over the most
// recent history entries, not a calendar week.
func DashboardStats(doctor models.Doctor, incoming []IncomingAppointment) DoctorStats {
	stats := DoctorStats{Today: len(incoming)}
	for i, rec := range doctor.TreatmentHistory {
		if i < weekWindow {
			stats.ThisWeek += rec.PatientsCount
		}
		stats.TotalTreated += rec.PatientsCount
	}
	return stats
}

// Dashboard assembles the doctor's record, incoming appointments and counters.
func (s *DoctorService) Dashboard(ctx context.Context, username string) (DoctorDashboard, error) {
	doctor, err := s.LoadDoctor(ctx, username)
	if err != nil {
		return DoctorDashboard{}, err
	}
	incoming, err := s.IncomingAppointments(ctx)
	if err != nil {
		return DoctorDashboard{}, err
	}
	return DoctorDashboard{
		Doctor:       doctor,
		Appointments: incoming,
		Stats:        DashboardStats(doctor, incoming),
	}, nil
}

// RespondToAppointment accepts or rejects a pending appointment. Decided
// appointments cannot be changed again.
func (s *DoctorService) RespondToAppointment(ctx context.Context, doctorUsername string, form AppointmentDecision) (models.Appointment, error) {
	if err := s.check(form); err != nil {
		return models.Appointment{}, err
	}

	var decided models.Appointment
	_, err := s.mutatePatient(ctx, form.PatientEmail, func(p *models.Patient, _ []models.Patient) error {
		for i := range p.Appointments {
			appt := &p.Appointments[i]
			if appt.ID != form.AppointmentID {
				continue
			}
			if err := appt.Decide(form.Status, form.Message); err != nil {
				return models.FieldError("status", "Only pending appointments can be accepted or rejected", err)
			}
			decided = *appt
			return nil
		}
		return models.FieldError("appointmentId", "Appointment not found", models.ErrNotFound)
	})
	if errors.Is(err, models.ErrNotFound) && models.FieldsOf(err) == nil {
		return models.Appointment{}, models.FieldError("patientEmail", "No patient found for this email", models.ErrNotFound)
	}
	if err != nil {
		return models.Appointment{}, err
	}

	s.metrics.ObserveAppointment(string(decided.Status))
	s.log.WithFields(logrus.Fields{
		"Function":      "RespondToAppointment",
		"Doctor":        doctorUsername,
		"AppointmentId": decided.ID,
		"Status":        decided.Status,
	}).Info("Appointment decided")
	return decided, nil
}
