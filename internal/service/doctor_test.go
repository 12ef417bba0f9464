package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-portal/internal/models"
)

func bookedPatient(email string, n int) models.Patient {
	p := models.Patient{Email: email, Name: email}
	for i := 0; i < n; i++ {
		p.Appointments = append(p.Appointments, models.Appointment{
			ID:     email + "#" + string(rune('a'+i)),
			Status: models.StatusPending,
		})
	}
	return p
}

func TestLoadDoctor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.Seed(ctx))

	d, err := f.svc.Doctors.LoadDoctor(ctx, "dr.wilson")
	require.NoError(t, err)
	assert.Equal(t, "Dr. Sarah Wilson", d.Name)
	assert.Len(t, d.TreatmentHistory, 3)

	d, err = f.svc.Doctors.LoadDoctor(ctx, "dr.unknown")
	require.NoError(t, err)
	assert.Equal(t, "dr.unknown", d.Username)
	assert.Equal(t, "Dr. John Smith", d.Name)
	assert.Len(t, d.TreatmentHistory, 5)

	doctors, err := f.store.Doctors(ctx)
	require.NoError(t, err)
	assert.Len(t, doctors, 2)
}

func TestIncomingAppointmentsOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.PutPatients(ctx, []models.Patient{
		bookedPatient("p1@x.com", 2),
		bookedPatient("p2@x.com", 0),
		bookedPatient("p3@x.com", 4),
	}))

	got, err := f.svc.Doctors.IncomingAppointments(ctx)
	require.NoError(t, err)
	require.Len(t, got, IncomingAppointmentLimit)

	var ids []string
	for _, a := range got {
		ids = append(ids, a.ID)
	}
	assert.Equal(t, []string{"p1@x.com#a", "p1@x.com#b", "p3@x.com#a", "p3@x.com#b", "p3@x.com#c"}, ids)
	assert.Equal(t, "p3@x.com", got[4].PatientData.Email)
}

func TestIncomingAppointmentsEmpty(t *testing.T) {
	f := newFixture(t, nil)
	got, err := f.svc.Doctors.IncomingAppointments(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDashboardStats(t *testing.T) {
	doctor := models.Doctor{}
	for i := 1; i <= 9; i++ {
		doctor.TreatmentHistory = append(doctor.TreatmentHistory, models.TreatmentRecord{PatientsCount: i})
	}
	stats := DashboardStats(doctor, make([]IncomingAppointment, 3))
	assert.Equal(t, DoctorStats{Today: 3, ThisWeek: 28, TotalTreated: 45}, stats)

	assert.Equal(t, DoctorStats{}, DashboardStats(models.Doctor{}, nil))
}

func TestDoctorDashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.PutPatients(ctx, []models.Patient{bookedPatient("p1@x.com", 2)}))

	dash, err := f.svc.Doctors.Dashboard(ctx, "dr.someone")
	require.NoError(t, err)
	assert.Equal(t, DoctorStats{Today: 2, ThisWeek: 62, TotalTreated: 62}, dash.Stats)
	assert.Len(t, dash.Appointments, 2)
}

func TestRespondToAppointment(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.PutPatients(ctx, []models.Patient{bookedPatient("p1@x.com", 2)}))

	appt, err := f.svc.Doctors.RespondToAppointment(ctx, "dr.smith", AppointmentDecision{
		PatientEmail:  "P1@x.com",
		AppointmentID: "p1@x.com#b",
		Status:        models.StatusRejected,
		Message:       "Fully booked that day",
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, appt.Status)

	stored := f.patients(t)[0].Appointments
	assert.Equal(t, models.StatusPending, stored[0].Status)
	assert.Equal(t, models.StatusRejected, stored[1].Status)
	assert.Equal(t, "Fully booked that day", stored[1].Message)

	_, err = f.svc.Doctors.RespondToAppointment(ctx, "dr.smith", AppointmentDecision{
		PatientEmail: "p1@x.com", AppointmentID: "p1@x.com#b", Status: models.StatusAccepted,
	})
	requireFields(t, err, models.ErrInvalidTransition, "status")
	assert.Equal(t, models.StatusRejected, f.patients(t)[0].Appointments[1].Status)
}

func TestRespondToAppointmentErrors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.PutPatients(ctx, []models.Patient{bookedPatient("p1@x.com", 1)}))

	_, err := f.svc.Doctors.RespondToAppointment(ctx, "dr.smith", AppointmentDecision{
		PatientEmail: "p1@x.com", AppointmentID: "p1@x.com#a", Status: models.StatusPending,
	})
	requireFields(t, err, models.ErrInvalidInput, "status")

	_, err = f.svc.Doctors.RespondToAppointment(ctx, "dr.smith", AppointmentDecision{
		PatientEmail: "p1@x.com", AppointmentID: "missing", Status: models.StatusAccepted,
	})
	requireFields(t, err, models.ErrNotFound, "appointmentId")

	_, err = f.svc.Doctors.RespondToAppointment(ctx, "dr.smith", AppointmentDecision{
		PatientEmail: "nobody@x.com", AppointmentID: "p1@x.com#a", Status: models.StatusAccepted,
	})
	requireFields(t, err, models.ErrNotFound, "patientEmail")
}
