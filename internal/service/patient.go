package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/catalog"
	"healthcare-portal/internal/models"
	"healthcare-portal/internal/notify"
)

// PatientService implements registration, profile upkeep, documents, bookings and
// password resets for patients.
type PatientService struct {
	deps

	otpMu sync.Mutex
	otps  map[string]string // lowercased email -> pending reset code
}

// Register creates a patient account and logs it in.
func (s *PatientService) Register(ctx context.Context, form PatientRegistration) (models.Patient, error) {
	if err := s.check(form); err != nil {
		return models.Patient{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	patients, err := s.store.Patients(ctx)
	if err != nil {
		return models.Patient{}, err
	}
	if findPatient(patients, form.Email) >= 0 {
		return models.Patient{}, models.FieldError("email", "Email already exists", models.ErrDuplicateKey)
	}

	patient := models.Patient{
		Email:           form.Email,
		Username:        form.Email,
		Password:        form.Password,
		Name:            form.Name,
		Gender:          form.Gender,
		Age:             form.Age,
		BMI:             form.BMI,
		Address:         form.Address,
		BloodGroup:      form.BloodGroup,
		Income:          form.Income,
		Religion:        form.Religion,
		Occupation:      form.Occupation,
		FamilyDiseases:  form.FamilyDiseases,
		Documents:       []models.Document{},
		Appointments:    []models.Appointment{},
		PreviousDetails: []models.ProfileSnapshot{},
	}
	if err := s.store.PutPatients(ctx, append(patients, patient)); err != nil {
		return models.Patient{}, err
	}
	if err := s.store.SetSessionKey(ctx, models.RolePatient, patient.Email); err != nil {
		return models.Patient{}, err
	}

	s.metrics.ObserveRegistration("patient")
	s.log.WithFields(logrus.Fields{
		"Function": "Register",
		"Email":    patient.Email,
	}).Info("Patient registered")
	return patient, nil
}

// Get returns the patient identified by email or legacy username.
func (s *PatientService) Get(ctx context.Context, identifier string) (models.Patient, error) {
	return s.loadPatient(ctx, identifier)
}

// UpdateProfile validates the full profile, keeps a snapshot of the values being
// replaced and saves the new ones. The email may change if no other patient uses it.
func (s *PatientService) UpdateProfile(ctx context.Context, identifier string, form ProfileUpdate) (models.Patient, error) {
	if err := s.check(form); err != nil {
		return models.Patient{}, err
	}

	var oldIdentity string
	updated, err := s.mutatePatient(ctx, identifier, func(p *models.Patient, all []models.Patient) error {
		oldIdentity = p.Identity()
		if !strings.EqualFold(p.Email, form.Email) {
			for i := range all {
				if &all[i] != p && all[i].Identifies(form.Email) {
					return models.FieldError("email", "Email already exists", models.ErrDuplicateKey)
				}
			}
			if p.Username == "" || strings.EqualFold(p.Username, p.Email) {
				p.Username = form.Email
			}
		}

		p.PreviousDetails = models.PushSnapshot(p.PreviousDetails, p.Snapshot(s.now()))
		p.Name = form.Name
		p.Email = form.Email
		p.Gender = form.Gender
		p.Age = form.Age
		p.BMI = form.BMI
		p.Address = form.Address
		p.BloodGroup = form.BloodGroup
		p.Income = form.Income
		p.Religion = form.Religion
		p.Occupation = form.Occupation
		p.FamilyDiseases = form.FamilyDiseases
		return nil
	})
	if err != nil {
		return models.Patient{}, err
	}

	if updated.Identity() != oldIdentity {
		if err := s.followIdentityChange(ctx, oldIdentity, updated.Identity()); err != nil {
			return models.Patient{}, err
		}
	}

	s.log.WithFields(logrus.Fields{
		"Function": "UpdateProfile",
		"Identity": updated.Identity(),
		"History":  len(updated.PreviousDetails),
	}).Info("Patient profile updated")
	return updated, nil
}

// followIdentityChange moves the patient session slot to the new email when it
// pointed at the old one.
func (s *PatientService) followIdentityChange(ctx context.Context, from, to string) error {
	current, err := s.store.SessionKey(ctx, models.RolePatient)
	if err != nil {
		return err
	}
	if !strings.EqualFold(current, from) {
		return nil
	}
	return s.store.SetSessionKey(ctx, models.RolePatient, to)
}

// UploadDocument reads the whole upload, encodes it as a data URL and appends it to
// the patient's documents.
func (s *PatientService) UploadDocument(ctx context.Context, identifier string, upload DocumentUpload) (models.Patient, error) {
	fields := s.validate.Validate(upload)
	if upload.Content == nil {
		if fields == nil {
			fields = map[string]string{}
		}
		fields["fileName"] = upload.FieldMessages()["fileName"]
	}
	if len(fields) > 0 {
		return models.Patient{}, models.NewValidationError(fields, nil)
	}

	content, err := io.ReadAll(upload.Content)
	if err != nil {
		return models.Patient{}, fmt.Errorf("read upload %q: %w", upload.FileName, err)
	}

	description := strings.TrimSpace(upload.Description)
	if description == "" {
		description = models.DefaultDocumentDescription
	}
	doc := models.Document{
		ID:          models.NewID(),
		Name:        upload.FileName,
		UploadDate:  models.DisplayDate(s.now()),
		Type:        upload.Type,
		Description: description,
		DataURL:     dataURL(upload.ContentType, content),
	}

	updated, err := s.mutatePatient(ctx, identifier, func(p *models.Patient, _ []models.Patient) error {
		p.Documents = append(p.Documents, doc)
		return nil
	})
	if err != nil {
		return models.Patient{}, err
	}

	s.metrics.ObserveDocument()
	s.log.WithFields(logrus.Fields{
		"Function":   "UploadDocument",
		"Identity":   updated.Identity(),
		"DocumentId": doc.ID,
		"Type":       doc.Type,
		"Bytes":      len(content),
	}).Info("Document uploaded")
	return updated, nil
}

// dataURL encodes content, sniffing the media type when the uploader gave none.
func dataURL(contentType string, content []byte) string {
	mediaType := strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0])
	if mediaType == "" || mediaType == "application/octet-stream" {
		mediaType = strings.SplitN(mimetype.Detect(content).String(), ";", 2)[0]
	}
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(content)
}

// BookAppointment records a pending appointment with a catalog doctor. Unknown
// catalog ids are kept as given with empty display names.
func (s *PatientService) BookAppointment(ctx context.Context, identifier string, form AppointmentForm) (models.Patient, error) {
	if err := s.check(form); err != nil {
		return models.Patient{}, err
	}

	appt := models.Appointment{
		ID:         models.NewID(),
		HospitalID: form.HospitalID,
		DoctorID:   form.DoctorID,
		Date:       form.Date,
		Time:       form.Time,
		Symptoms:   form.Symptoms,
		Status:     models.StatusPending,
	}
	if h, ok := catalog.HospitalByID(form.HospitalID); ok {
		appt.HospitalName = h.Name
	}
	if d, ok := catalog.DoctorByID(form.DoctorID); ok {
		appt.DoctorName = d.Name
		appt.Department = d.Department
	}

	updated, err := s.mutatePatient(ctx, identifier, func(p *models.Patient, _ []models.Patient) error {
		p.Appointments = append(p.Appointments, appt)
		return nil
	})
	if err != nil {
		return models.Patient{}, err
	}

	s.metrics.ObserveAppointment(string(models.StatusPending))
	s.log.WithFields(logrus.Fields{
		"Function":      "BookAppointment",
		"Identity":      updated.Identity(),
		"AppointmentId": appt.ID,
		"DoctorId":      appt.DoctorID,
	}).Info("Appointment booked")
	return updated, nil
}

// RequestPasswordResetOTP issues a six digit code for the patient and e-mails it.
// The code lives only in this process and is replaced by any later request.
func (s *PatientService) RequestPasswordResetOTP(ctx context.Context, email string) (string, error) {
	patient, err := s.loadPatient(ctx, strings.TrimSpace(email))
	if errors.Is(err, models.ErrNotFound) {
		s.metrics.ObserveOTPRequest("unknown_account")
		return "", models.FieldError("email", "No account found for this email", models.ErrNotFound)
	}
	if err != nil {
		return "", err
	}

	code := fmt.Sprintf("%06d", 100000+s.rand.IntN(900000))
	key := otpKey(email)

	s.otpMu.Lock()
	s.otps[key] = code
	s.otpMu.Unlock()

	to := patient.Email
	if to == "" {
		to = strings.TrimSpace(email)
	}
	if err := s.mailer.Send(ctx, notify.OTPMessage(to, patient.Name, code)); err != nil {
		s.otpMu.Lock()
		delete(s.otps, key)
		s.otpMu.Unlock()
		s.metrics.ObserveOTPRequest("delivery_failed")
		return "", fmt.Errorf("deliver reset code: %w", err)
	}

	s.metrics.ObserveOTPRequest("sent")
	s.log.WithFields(logrus.Fields{
		"Function": "RequestPasswordResetOTP",
		"Identity": patient.Identity(),
	}).Info("Password reset code sent")
	return code, nil
}

// ConfirmPasswordReset replaces the password once the e-mailed code matches.
func (s *PatientService) ConfirmPasswordReset(ctx context.Context, form PasswordReset) error {
	key := otpKey(form.Email)
	s.otpMu.Lock()
	expected, requested := s.otps[key]
	s.otpMu.Unlock()

	fields := s.validate.Validate(form)
	if fields == nil {
		fields = map[string]string{}
	}
	var cause error
	switch {
	case !requested:
		fields["otp"] = "Please request OTP first"
		cause = models.ErrOTPNotRequested
	case strings.TrimSpace(form.OTP) == "":
		fields["otp"] = "Enter the OTP sent to your email"
	}
	if len(fields) > 0 {
		return models.NewValidationError(fields, cause)
	}

	if form.OTP != expected {
		s.log.WithFields(logrus.Fields{"Function": "ConfirmPasswordReset"}).Info("Reset code mismatch")
		return models.FieldError("otp", "Invalid OTP. Please check your email.", models.ErrOTPMismatch)
	}

	updated, err := s.mutatePatient(ctx, form.Email, func(p *models.Patient, _ []models.Patient) error {
		p.Password = form.NewPassword
		return nil
	})
	if errors.Is(err, models.ErrNotFound) {
		return models.FieldError("email", "No account found for this email", models.ErrNotFound)
	}
	if err != nil {
		return err
	}

	s.otpMu.Lock()
	delete(s.otps, key)
	s.otpMu.Unlock()

	s.log.WithFields(logrus.Fields{
		"Function": "ConfirmPasswordReset",
		"Identity": updated.Identity(),
	}).Info("Password reset")
	return nil
}

func otpKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
