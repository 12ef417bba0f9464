// Package store persists the portal's three record collections and the per-role
// session slots as JSON values in a key-value backend.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/catalog"
	"healthcare-portal/internal/models"
)

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("store: key not found")

// Backend is the durable key-value layer under Store.
type Backend interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Collection and session slot keys.
const (
	KeyPatients = "patients"
	KeyDoctors  = "doctors"
	KeyAdmins   = "admins"
)

var sessionKeys = map[models.Role]string{
	models.RolePatient: "currentPatient",
	models.RoleDoctor:  "currentDoctor",
	models.RoleAdmin:   "currentAdmin",
}

// SessionSlot returns the key holding the active identity for role.
func SessionSlot(role models.Role) (string, error) {
	key, ok := sessionKeys[role]
	if !ok {
		return "", fmt.Errorf("store: unknown role %q", role)
	}
	return key, nil
}

// Store reads and replaces whole collections. A missing collection is empty, and so
// is one whose stored JSON cannot be decoded.
type Store struct {
	backend Backend
	log     *logrus.Logger
}

// New creates a Store over backend.
func New(backend Backend, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{backend: backend, log: log}
}

// Patients returns every patient in registration order.
func (s *Store) Patients(ctx context.Context) ([]models.Patient, error) {
	return load[models.Patient](ctx, s, KeyPatients)
}

// PutPatients replaces the patient collection.
func (s *Store) PutPatients(ctx context.Context, patients []models.Patient) error {
	return s.save(ctx, KeyPatients, orEmpty(patients))
}

// Doctors returns every registered doctor.
func (s *Store) Doctors(ctx context.Context) ([]models.Doctor, error) {
	return load[models.Doctor](ctx, s, KeyDoctors)
}

// PutDoctors replaces the doctor collection.
func (s *Store) PutDoctors(ctx context.Context, doctors []models.Doctor) error {
	return s.save(ctx, KeyDoctors, orEmpty(doctors))
}

// Admins returns every hospital admin.
func (s *Store) Admins(ctx context.Context) ([]models.Admin, error) {
	return load[models.Admin](ctx, s, KeyAdmins)
}

// PutAdmins replaces the admin collection.
func (s *Store) PutAdmins(ctx context.Context, admins []models.Admin) error {
	return s.save(ctx, KeyAdmins, orEmpty(admins))
}

// SessionKey returns the active identity for role, or "" when nobody is logged in.
func (s *Store) SessionKey(ctx context.Context, role models.Role) (string, error) {
	key, err := SessionSlot(role)
	if err != nil {
		return "", err
	}
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store: get %s: %w", key, err)
	}
	return string(data), nil
}

// SetSessionKey records identity as the active session for role.
func (s *Store) SetSessionKey(ctx context.Context, role models.Role, identity string) error {
	key, err := SessionSlot(role)
	if err != nil {
		return err
	}
	if err := s.backend.Set(ctx, key, []byte(identity)); err != nil {
		return fmt.Errorf("store: set %s: %w", key, err)
	}
	return nil
}

// ClearSessionKey ends the session for role.
func (s *Store) ClearSessionKey(ctx context.Context, role models.Role) error {
	key, err := SessionSlot(role)
	if err != nil {
		return err
	}
	if err := s.backend.Delete(ctx, key); err != nil {
		return fmt.Errorf("store: clear %s: %w", key, err)
	}
	return nil
}

// Seed writes the demo accounts into every collection that has never been written.
// Collections are checked independently, so an existing patient list does not stop
// doctors from being seeded.
func (s *Store) Seed(ctx context.Context) error {
	seeds := []struct {
		key  string
		data func() any
	}{
		{KeyPatients, func() any {
			out := []models.Patient{}
			for _, c := range catalog.DemoPatients() {
				out = append(out, catalog.DemoPatient(c))
			}
			return out
		}},
		{KeyDoctors, func() any {
			out := []models.Doctor{}
			for _, c := range catalog.DemoDoctors() {
				out = append(out, catalog.DemoDoctor(c))
			}
			return out
		}},
		{KeyAdmins, func() any {
			out := []models.Admin{}
			for _, c := range catalog.DemoAdmins() {
				out = append(out, catalog.DemoAdmin(c))
			}
			return out
		}},
	}

	for _, seed := range seeds {
		_, err := s.backend.Get(ctx, seed.key)
		if err == nil {
			continue
		}
		if !errors.Is(err, ErrNotFound) {
			return fmt.Errorf("store: seed check %s: %w", seed.key, err)
		}
		if err := s.save(ctx, seed.key, seed.data()); err != nil {
			return err
		}
		s.log.WithFields(logrus.Fields{"Function": "Seed", "collection": seed.key}).Info("Seeded demo records")
	}
	return nil
}

func load[T any](ctx context.Context, s *Store, key string) ([]T, error) {
	data, err := s.backend.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: get %s: %w", key, err)
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		s.log.WithFields(logrus.Fields{
			"Function":   "load",
			"collection": key,
		}).WithError(err).Warn("Discarding unreadable collection")
		return []T{}, nil
	}
	return orEmpty(out), nil
}

func (s *Store) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("store: marshal %s: %w", key, err)
	}
	if err := s.backend.Set(ctx, key, data); err != nil {
		return fmt.Errorf("store: set %s: %w", key, err)
	}
	return nil
}

func orEmpty[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
