package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/models"
)

// DeveloperService provisions hospital admin accounts.
type DeveloperService struct {
	deps
}

// RegisterAdmin creates an admin for a new hospital. The admin starts without
// department statistics.
func (s *DeveloperService) RegisterAdmin(ctx context.Context, form AdminRegistration) (models.Admin, error) {
	if err := s.check(form); err != nil {
		return models.Admin{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	admins, err := s.store.Admins(ctx)
	if err != nil {
		return models.Admin{}, err
	}
	if findAdmin(admins, form.AdminUsername) >= 0 {
		return models.Admin{}, models.FieldError("adminUsername", "Username already exists", models.ErrDuplicateKey)
	}

	admin := models.Admin{
		Username:         form.AdminUsername,
		Password:         form.AdminPassword,
		HospitalName:     form.HospitalName,
		HospitalLocation: form.HospitalLocation,
		HospitalLogo:     form.HospitalLogo,
		Departments:      []models.DepartmentStats{},
	}
	if err := s.store.PutAdmins(ctx, append(admins, admin)); err != nil {
		return models.Admin{}, err
	}

	s.metrics.ObserveRegistration("admin")
	s.log.WithFields(logrus.Fields{
		"Function": "RegisterAdmin",
		"Admin":    admin.Username,
		"Hospital": admin.HospitalName,
	}).Info("Admin provisioned")
	return admin, nil
}
