package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/catalog"
	"healthcare-portal/internal/models"
)

// SessionService resolves logins against the role's collection and tracks the
// active identity per role.
type SessionService struct {
	deps
}

// Login checks creds against role's accounts and records the session on success.
// It returns the session identity: a patient's email (else legacy username), or the
// doctor/admin username.
func (s *SessionService) Login(ctx context.Context, role models.Role, creds Credentials) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("login: unknown role %q", role)
	}
	if err := s.check(creds); err != nil {
		if role != models.RolePatient {
			if fields := models.FieldsOf(err); fields["identifier"] != "" {
				fields["identifier"] = "Username is required"
			}
		}
		return "", err
	}

	var (
		identity string
		err      error
	)
	switch role {
	case models.RolePatient:
		identity, err = s.loginPatient(ctx, creds)
	case models.RoleDoctor:
		identity, err = s.loginDoctor(ctx, creds)
	case models.RoleAdmin:
		identity, err = s.loginAdmin(ctx, creds)
	}
	if err != nil {
		s.metrics.ObserveLogin(string(role), false)
		s.log.WithFields(logrus.Fields{
			"Function": "Login",
			"Role":     role,
		}).Info("Login rejected")
		return "", err
	}

	if err := s.store.SetSessionKey(ctx, role, identity); err != nil {
		return "", err
	}
	s.metrics.ObserveLogin(string(role), true)
	s.log.WithFields(logrus.Fields{
		"Function": "Login",
		"Role":     role,
		"Identity": identity,
	}).Info("Session established")
	return identity, nil
}

func (s *SessionService) loginPatient(ctx context.Context, creds Credentials) (string, error) {
	patients, err := s.store.Patients(ctx)
	if err != nil {
		return "", err
	}
	if i := findPatient(patients, creds.Identifier); i >= 0 && patients[i].Password == creds.Password {
		return patients[i].Identity(), nil
	}

	demo, ok := catalog.MatchDemoPatient(creds.Identifier, creds.Password)
	if !ok {
		return "", models.ErrInvalidCredentials
	}
	return s.materializeDemoPatient(ctx, demo)
}

// materializeDemoPatient stores the default profile for a demo login, replacing any
// stored record that answers to the same email or username so repeat logins reuse one entry.
func (s *SessionService) materializeDemoPatient(ctx context.Context, demo catalog.Credential) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	patients, err := s.store.Patients(ctx)
	if err != nil {
		return "", err
	}
	kept := make([]models.Patient, 0, len(patients)+1)
	for _, p := range patients {
		if p.Identifies(demo.Email) || p.Identifies(demo.Username) {
			continue
		}
		kept = append(kept, p)
	}
	profile := catalog.DemoPatient(demo)
	kept = append(kept, profile)
	if err := s.store.PutPatients(ctx, kept); err != nil {
		return "", err
	}

	s.log.WithFields(logrus.Fields{
		"Function": "materializeDemoPatient",
		"Identity": profile.Identity(),
	}).Info("Stored demo patient profile")
	return profile.Identity(), nil
}

func (s *SessionService) loginDoctor(ctx context.Context, creds Credentials) (string, error) {
	doctors, err := s.store.Doctors(ctx)
	if err != nil {
		return "", err
	}
	for _, d := range doctors {
		if d.Username == creds.Identifier && d.Password == creds.Password {
			return d.Username, nil
		}
	}
	return "", models.ErrInvalidCredentials
}

func (s *SessionService) loginAdmin(ctx context.Context, creds Credentials) (string, error) {
	admins, err := s.store.Admins(ctx)
	if err != nil {
		return "", err
	}
	for _, a := range admins {
		if a.Username == creds.Identifier && a.Password == creds.Password {
			return a.Username, nil
		}
	}
	return "", models.ErrInvalidCredentials
}

// Logout clears the session slot for role.
func (s *SessionService) Logout(ctx context.Context, role models.Role) error {
	if err := s.store.ClearSessionKey(ctx, role); err != nil {
		return err
	}
	s.log.WithFields(logrus.Fields{"Function": "Logout", "Role": role}).Info("Session cleared")
	return nil
}

// Current returns the active identity for role, or "" when nobody is logged in.
func (s *SessionService) Current(ctx context.Context, role models.Role) (string, error) {
	return s.store.SessionKey(ctx, role)
}
