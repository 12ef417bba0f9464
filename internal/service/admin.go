package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/catalog"
	"healthcare-portal/internal/models"
)

// UnknownHospital is recorded for doctors registered by an admin with no hospital name.
const UnknownHospital = "Unknown Hospital"

var (
	statMonths = []string{"January", "February", "March", "April", "May", "June"}
	statWeeks  = []string{"Week 1", "Week 2", "Week 3", "Week 4"}
)

// AdminDashboard is the admin's hospital overview.
type AdminDashboard struct {
	Admin         models.Admin `json:"admin"`
	TotalPatients int          `json:"totalPatients"`
	DoctorCount   int          `json:"doctorCount"`
}

// AdminService manages a hospital's doctors and department statistics.
type AdminService struct {
	deps
}

// LoadAdmin returns the stored admin, or a default one for an unknown username.
// Department statistics are placeholder numbers filled in whenever the record has
// none; they are never written back.
func (s *AdminService) LoadAdmin(ctx context.Context, username string) (models.Admin, error) {
	admins, err := s.store.Admins(ctx)
	if err != nil {
		return models.Admin{}, err
	}

	admin := catalog.DefaultAdmin(username)
	if i := findAdmin(admins, username); i >= 0 {
		admin = admins[i]
	}
	if len(admin.Departments) == 0 {
		admin.Departments = synthesizeDepartments(s.rand)
	}
	return admin, nil
}

func synthesizeDepartments(rnd RandSource) []models.DepartmentStats {
	names := catalog.Departments()
	out := make([]models.DepartmentStats, 0, len(names))
	for _, name := range names {
		stats := models.DepartmentStats{
			Name:          name,
			TotalPatients: 100 + rnd.IntN(500),
			MonthlyData:   make([]models.PeriodCount, 0, len(statMonths)),
			WeeklyData:    make([]models.PeriodCount, 0, len(statWeeks)),
		}
		for _, m := range statMonths {
			stats.MonthlyData = append(stats.MonthlyData, models.PeriodCount{Label: m, Patients: 50 + rnd.IntN(100)})
		}
		for _, w := range statWeeks {
			stats.WeeklyData = append(stats.WeeklyData, models.PeriodCount{Label: w, Patients: 10 + rnd.IntN(50)})
		}
		out = append(out, stats)
	}
	return out
}

// Dashboard returns the admin with the hospital-wide patient total and doctor count.
func (s *AdminService) Dashboard(ctx context.Context, username string) (AdminDashboard, error) {
	admin, err := s.LoadAdmin(ctx, username)
	if err != nil {
		return AdminDashboard{}, err
	}
	doctors, err := s.store.Doctors(ctx)
	if err != nil {
		return AdminDashboard{}, err
	}
	return AdminDashboard{
		Admin:         admin,
		TotalPatients: admin.TotalPatients(),
		DoctorCount:   len(doctors),
	}, nil
}

// RegisterDoctor adds a doctor to the admin's hospital.
func (s *AdminService) RegisterDoctor(ctx context.Context, adminUsername string, form DoctorRegistration) (models.Doctor, error) {
	if err := s.check(form); err != nil {
		return models.Doctor{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doctors, err := s.store.Doctors(ctx)
	if err != nil {
		return models.Doctor{}, err
	}
	if findDoctor(doctors, form.Username) >= 0 {
		return models.Doctor{}, models.FieldError("username", "Username already exists", models.ErrDuplicateKey)
	}

	hospital, err := s.hospitalOf(ctx, adminUsername)
	if err != nil {
		return models.Doctor{}, err
	}

	doctor := models.Doctor{
		Username:         form.Username,
		Password:         form.Password,
		Name:             form.Name,
		Department:       form.Department,
		Hospital:         hospital,
		Appointments:     []models.Appointment{},
		TreatmentHistory: []models.TreatmentRecord{},
	}
	if err := s.store.PutDoctors(ctx, append(doctors, doctor)); err != nil {
		return models.Doctor{}, err
	}

	s.metrics.ObserveRegistration("doctor")
	s.log.WithFields(logrus.Fields{
		"Function":   "RegisterDoctor",
		"Admin":      adminUsername,
		"Doctor":     doctor.Username,
		"Department": doctor.Department,
		"Hospital":   doctor.Hospital,
	}).Info("Doctor registered")
	return doctor, nil
}

func (s *AdminService) hospitalOf(ctx context.Context, adminUsername string) (string, error) {
	admins, err := s.store.Admins(ctx)
	if err != nil {
		return "", err
	}
	admin := catalog.DefaultAdmin(adminUsername)
	if i := findAdmin(admins, adminUsername); i >= 0 {
		admin = admins[i]
	}
	if admin.HospitalName == "" {
		return UnknownHospital, nil
	}
	return admin.HospitalName, nil
}

// SetAvailability adds a weekly slot to a registered doctor's schedule. Adding a slot
// that is already listed changes nothing.
func (s *AdminService) SetAvailability(ctx context.Context, form AvailabilityForm) (models.Doctor, error) {
	if err := s.check(form); err != nil {
		return models.Doctor{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doctors, err := s.store.Doctors(ctx)
	if err != nil {
		return models.Doctor{}, err
	}
	i := findDoctor(doctors, form.DoctorUsername)
	if i < 0 {
		return models.Doctor{}, models.FieldError("doctorUsername", "No doctor registered with this username", models.ErrNotFound)
	}

	doctor := &doctors[i]
	if !addSlot(doctor, form.Day, form.TimeSlot) {
		return *doctor, nil
	}
	if err := s.store.PutDoctors(ctx, doctors); err != nil {
		return models.Doctor{}, err
	}

	s.log.WithFields(logrus.Fields{
		"Function": "SetAvailability",
		"Doctor":   doctor.Username,
		"Day":      form.Day,
		"Slot":     form.TimeSlot,
	}).Info("Availability set")
	return *doctor, nil
}

// addSlot reports whether slot was new for day.
func addSlot(doctor *models.Doctor, day, slot string) bool {
	for i := range doctor.Availability {
		entry := &doctor.Availability[i]
		if entry.Day != day {
			continue
		}
		for _, existing := range entry.Slots {
			if existing == slot {
				return false
			}
		}
		entry.Slots = append(entry.Slots, slot)
		return true
	}
	doctor.Availability = append(doctor.Availability, models.Availability{Day: day, Slots: []string{slot}})
	return true
}
