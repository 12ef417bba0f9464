package service

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"healthcare-portal/internal/models"
	"healthcare-portal/internal/notify"
	"healthcare-portal/internal/store"
)

var testNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

// fixedRand always answers v, clamped into [0, n).
type fixedRand struct{ v int }

func (r fixedRand) IntN(n int) int {
	if r.v >= n {
		return n - 1
	}
	return r.v
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []notify.EmailMessage
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg notify.EmailMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

type fixture struct {
	svc    *Services
	store  *store.Store
	mailer *recordingMailer
}

func newFixture(t *testing.T, rnd RandSource) *fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	st := store.New(store.NewMemoryBackend(), log)
	mailer := &recordingMailer{}
	if rnd == nil {
		rnd = fixedRand{v: 23456}
	}
	svc := New(Options{
		Store:  st,
		Logger: log,
		Mailer: mailer,
		Now:    func() time.Time { return testNow },
		Rand:   rnd,
	})
	return &fixture{svc: svc, store: st, mailer: mailer}
}

func validRegistration(email string) PatientRegistration {
	return PatientRegistration{
		Name:            "Ada Lovelace",
		Email:           email,
		Password:        "Abcdef1@",
		ConfirmPassword: "Abcdef1@",
		Gender:          models.GenderFemale,
		Age:             36,
		BMI:             22,
		Address:         "12 St James's Square, London",
		BloodGroup:      models.BloodABNegative,
		Income:          0,
		Religion:        "Other",
		Occupation:      "Mathematician",
	}
}

func profileFrom(p models.Patient) ProfileUpdate {
	return ProfileUpdate{
		Name:           p.Name,
		Email:          p.Email,
		Gender:         p.Gender,
		Age:            p.Age,
		BMI:            p.BMI,
		Address:        p.Address,
		BloodGroup:     p.BloodGroup,
		Income:         p.Income,
		Religion:       p.Religion,
		Occupation:     p.Occupation,
		FamilyDiseases: p.FamilyDiseases,
	}
}

func (f *fixture) register(t *testing.T, email string) models.Patient {
	t.Helper()
	p, err := f.svc.Patients.Register(context.Background(), validRegistration(email))
	require.NoError(t, err)
	return p
}

func (f *fixture) patients(t *testing.T) []models.Patient {
	t.Helper()
	out, err := f.store.Patients(context.Background())
	require.NoError(t, err)
	return out
}

func requireFields(t *testing.T, err error, cause error, fields ...string) map[string]string {
	t.Helper()
	require.Error(t, err)
	require.True(t, errors.Is(err, cause), "expected %v, got %v", cause, err)
	got := models.FieldsOf(err)
	require.NotNil(t, got, "expected a validation error, got %v", err)
	for _, f := range fields {
		require.Contains(t, got, f)
	}
	return got
}
