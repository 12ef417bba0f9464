package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthcare-portal/internal/catalog"
	"healthcare-portal/internal/models"
)

func doctorForm(username string) DoctorRegistration {
	return DoctorRegistration{
		Username:        username,
		Name:            "Dr. New",
		Department:      "Cardiology",
		Password:        "Doctor@456",
		ConfirmPassword: "Doctor@456",
	}
}

func TestLoadAdminSynthesizesDepartmentsWithinBounds(t *testing.T) {
	ctx := context.Background()

	for _, rnd := range []RandSource{fixedRand{v: 0}, fixedRand{v: 1 << 30}} {
		f := newFixture(t, rnd)
		admin, err := f.svc.Admins.LoadAdmin(ctx, "ghost")
		require.NoError(t, err)
		assert.Equal(t, "City General Hospital", admin.HospitalName)
		require.Len(t, admin.Departments, len(catalog.Departments()))

		for _, d := range admin.Departments {
			assert.GreaterOrEqual(t, d.TotalPatients, 100)
			assert.LessOrEqual(t, d.TotalPatients, 599)
			require.Len(t, d.MonthlyData, 6)
			require.Len(t, d.WeeklyData, 4)
			assert.Equal(t, "January", d.MonthlyData[0].Label)
			assert.Equal(t, "Week 4", d.WeeklyData[3].Label)
			for _, m := range d.MonthlyData {
				assert.GreaterOrEqual(t, m.Patients, 50)
				assert.LessOrEqual(t, m.Patients, 149)
			}
			for _, w := range d.WeeklyData {
				assert.GreaterOrEqual(t, w.Patients, 10)
				assert.LessOrEqual(t, w.Patients, 59)
			}
		}

		admins, err := f.store.Admins(ctx)
		require.NoError(t, err)
		assert.Empty(t, admins)
	}
}

func TestLoadAdminStoredRecord(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, fixedRand{v: 0})
	require.NoError(t, f.store.Seed(ctx))

	admin, err := f.svc.Admins.LoadAdmin(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, "Admin@123", admin.Password)
	assert.Len(t, admin.Departments, 8)

	admins, err := f.store.Admins(ctx)
	require.NoError(t, err)
	assert.Empty(t, admins[0].Departments)

	kept := []models.DepartmentStats{{Name: "Cardiology", TotalPatients: 7}}
	admins[0].Departments = kept
	require.NoError(t, f.store.PutAdmins(ctx, admins))

	dash, err := f.svc.Admins.Dashboard(ctx, "admin1")
	require.NoError(t, err)
	assert.Equal(t, kept, dash.Admin.Departments)
	assert.Equal(t, 7, dash.TotalPatients)
	assert.Equal(t, 2, dash.DoctorCount)
}

func TestAdminDashboardTotals(t *testing.T) {
	f := newFixture(t, fixedRand{v: 0})
	dash, err := f.svc.Admins.Dashboard(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, 8*100, dash.TotalPatients)
}

func TestRegisterDoctor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.Seed(ctx))

	d, err := f.svc.Admins.RegisterDoctor(ctx, "admin1", doctorForm("dr.new"))
	require.NoError(t, err)
	assert.Equal(t, "City General Hospital", d.Hospital)
	assert.Equal(t, []models.Appointment{}, d.Appointments)
	assert.Equal(t, []models.TreatmentRecord{}, d.TreatmentHistory)

	doctors, err := f.store.Doctors(ctx)
	require.NoError(t, err)
	require.Len(t, doctors, 3)
	assert.Equal(t, "dr.new", doctors[2].Username)
	assert.Equal(t, "Cardiology", doctors[2].Department)

	_, err = f.svc.Session.Login(ctx, models.RoleDoctor, Credentials{Identifier: "dr.new", Password: "Doctor@456"})
	require.NoError(t, err)
}

func TestRegisterDoctorDuplicateUsername(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.Seed(ctx))

	_, err := f.svc.Admins.RegisterDoctor(ctx, "admin1", doctorForm("dr.smith"))
	fields := requireFields(t, err, models.ErrDuplicateKey, "username")
	assert.Equal(t, "Username already exists", fields["username"])

	_, err = f.svc.Admins.RegisterDoctor(ctx, "admin1", doctorForm("Dr.Smith"))
	require.NoError(t, err)
}

func TestRegisterDoctorValidation(t *testing.T) {
	f := newFixture(t, nil)

	_, err := f.svc.Admins.RegisterDoctor(context.Background(), "admin1", DoctorRegistration{
		Username:        "d!",
		Password:        "Doctor@456",
		ConfirmPassword: "Doctor@457",
	})
	fields := requireFields(t, err, models.ErrInvalidInput, "username", "name", "department", "confirmPassword")
	assert.Equal(t, "Username must be at least 3 characters long", fields["username"])
	assert.Equal(t, "Doctor name is required", fields["name"])
	assert.Equal(t, "Department is required", fields["department"])

	form := doctorForm("dr.x")
	form.Department = "Astrology"
	_, err = f.svc.Admins.RegisterDoctor(context.Background(), "admin1", form)
	fields = requireFields(t, err, models.ErrInvalidInput, "department")
	assert.Equal(t, "Please select a valid department", fields["department"])
}

func TestRegisterDoctorHospitalFallback(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.PutAdmins(ctx, []models.Admin{{Username: "blank.admin", Password: "Admin@123"}}))

	d, err := f.svc.Admins.RegisterDoctor(ctx, "blank.admin", doctorForm("dr.a"))
	require.NoError(t, err)
	assert.Equal(t, UnknownHospital, d.Hospital)

	d, err = f.svc.Admins.RegisterDoctor(ctx, "not.stored", doctorForm("dr.b"))
	require.NoError(t, err)
	assert.Equal(t, "City General Hospital", d.Hospital)
}

func TestSetAvailability(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.Seed(ctx))

	d, err := f.svc.Admins.SetAvailability(ctx, AvailabilityForm{DoctorUsername: "dr.smith", Day: "Monday", TimeSlot: "09:00 AM - 12:00 PM"})
	require.NoError(t, err)
	assert.Equal(t, []models.Availability{{Day: "Monday", Slots: []string{"09:00 AM - 12:00 PM"}}}, d.Availability)

	_, err = f.svc.Admins.SetAvailability(ctx, AvailabilityForm{DoctorUsername: "dr.smith", Day: "Monday", TimeSlot: "02:00 PM - 05:00 PM"})
	require.NoError(t, err)
	d, err = f.svc.Admins.SetAvailability(ctx, AvailabilityForm{DoctorUsername: "dr.smith", Day: "Monday", TimeSlot: "09:00 AM - 12:00 PM"})
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00 AM - 12:00 PM", "02:00 PM - 05:00 PM"}, d.Availability[0].Slots)

	stored, err := f.svc.Doctors.LoadDoctor(ctx, "dr.smith")
	require.NoError(t, err)
	assert.Equal(t, d.Availability, stored.Availability)
	assert.True(t, catalog.AvailabilityOn(stored.Availability, testNow.AddDate(0, 0, 4)).Available)
	assert.False(t, catalog.AvailabilityOn(stored.Availability, testNow).Available)
}

func TestSetAvailabilityValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)
	require.NoError(t, f.store.Seed(ctx))

	_, err := f.svc.Admins.SetAvailability(ctx, AvailabilityForm{})
	fields := requireFields(t, err, models.ErrInvalidInput, "doctorUsername", "day", "timeSlot")
	assert.Equal(t, "Please fill all fields", fields["day"])

	_, err = f.svc.Admins.SetAvailability(ctx, AvailabilityForm{DoctorUsername: "dr.smith", Day: "Funday", TimeSlot: "x"})
	fields = requireFields(t, err, models.ErrInvalidInput, "day")
	assert.Equal(t, "Day must be a weekday such as Monday", fields["day"])

	_, err = f.svc.Admins.SetAvailability(ctx, AvailabilityForm{DoctorUsername: "dr.nobody", Day: "Monday", TimeSlot: "x"})
	requireFields(t, err, models.ErrNotFound, "doctorUsername")
}
