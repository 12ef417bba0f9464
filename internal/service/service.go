// Package service holds the portal's domain operations. Every form-accepting
// operation returns a *models.ValidationError for user mistakes and a plain wrapped
// error only when the store itself fails.
package service

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/metrics"
	"healthcare-portal/internal/models"
	"healthcare-portal/internal/notify"
	"healthcare-portal/internal/store"
	"healthcare-portal/internal/utils"
)

// RandSource supplies random integers in [0, n). *rand.Rand from math/rand/v2 satisfies it.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Options are the collaborators shared by every service.
type Options struct {
	Store     *store.Store
	Logger    *logrus.Logger
	Metrics   *metrics.PortalMetrics
	Mailer    notify.EmailSender
	Validator *utils.FormValidator
	Now       func() time.Time
	Rand      RandSource
}

// Services groups the domain services over one store.
type Services struct {
	Session   *SessionService
	Patients  *PatientService
	Doctors   *DoctorService
	Admins    *AdminService
	Developer *DeveloperService
}

// deps is embedded by every service. mu serializes read-modify-write cycles on the
// store's collections within this process; writers in other processes still race.
type deps struct {
	store    *store.Store
	log      *logrus.Logger
	metrics  *metrics.PortalMetrics
	mailer   notify.EmailSender
	validate *utils.FormValidator
	now      func() time.Time
	rand     RandSource
	mu       *sync.Mutex
}

// New wires every service to opts, filling in defaults for anything left nil.
func New(opts Options) *Services {
	d := newDeps(opts)
	return &Services{
		Session:   &SessionService{deps: d},
		Patients:  &PatientService{deps: d, otps: make(map[string]string)},
		Doctors:   &DoctorService{deps: d},
		Admins:    &AdminService{deps: d},
		Developer: &DeveloperService{deps: d},
	}
}

func newDeps(opts Options) deps {
	d := deps{
		store:    opts.Store,
		log:      opts.Logger,
		metrics:  opts.Metrics,
		mailer:   opts.Mailer,
		validate: opts.Validator,
		now:      opts.Now,
		rand:     opts.Rand,
		mu:       &sync.Mutex{},
	}
	if d.log == nil {
		d.log = logrus.StandardLogger()
	}
	if d.mailer == nil {
		d.mailer = notify.NewStubEmailSender(d.log)
	}
	if d.validate == nil {
		d.validate = utils.DefaultFormValidator()
	}
	if d.now == nil {
		d.now = time.Now
	}
	if d.rand == nil {
		d.rand = globalRand{}
	}
	return d
}

// check runs form validation and wraps any failures.
func (d deps) check(form any) error {
	if fields := d.validate.Validate(form); len(fields) > 0 {
		return models.NewValidationError(fields, nil)
	}
	return nil
}

// findPatient returns the index of the first patient identified by id, or -1.
func findPatient(patients []models.Patient, id string) int {
	for i := range patients {
		if patients[i].Identifies(id) {
			return i
		}
	}
	return -1
}

func findDoctor(doctors []models.Doctor, username string) int {
	for i := range doctors {
		if doctors[i].Username == username {
			return i
		}
	}
	return -1
}

func findAdmin(admins []models.Admin, username string) int {
	for i := range admins {
		if admins[i].Username == username {
			return i
		}
	}
	return -1
}

// loadPatient fetches the patient identified by id.
func (d deps) loadPatient(ctx context.Context, id string) (models.Patient, error) {
	patients, err := d.store.Patients(ctx)
	if err != nil {
		return models.Patient{}, err
	}
	i := findPatient(patients, id)
	if i < 0 {
		return models.Patient{}, models.ErrNotFound
	}
	return patients[i], nil
}

// mutatePatient applies fn to the patient identified by id and persists the collection.
// fn may return a ValidationError to abort without writing.
func (d deps) mutatePatient(ctx context.Context, id string, fn func(p *models.Patient, all []models.Patient) error) (models.Patient, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	patients, err := d.store.Patients(ctx)
	if err != nil {
		return models.Patient{}, err
	}
	i := findPatient(patients, id)
	if i < 0 {
		return models.Patient{}, models.ErrNotFound
	}
	if err := fn(&patients[i], patients); err != nil {
		return models.Patient{}, err
	}
	if err := d.store.PutPatients(ctx, patients); err != nil {
		return models.Patient{}, err
	}
	return patients[i], nil
}
