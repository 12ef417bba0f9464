package utils

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"healthcare-portal/internal/catalog"
	"healthcare-portal/internal/models"
)

var (
	emailPattern    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._]+$`)
	phonePattern    = regexp.MustCompile(`^[0-9]{10}$`)
	upperPattern    = regexp.MustCompile(`[A-Z]`)
	lowerPattern    = regexp.MustCompile(`[a-z]`)
	digitPattern    = regexp.MustCompile(`[0-9]`)
	specialPattern  = regexp.MustCompile(`[@$!%*?&]`)
)

// Result is the outcome of a rule that explains its first failure.
type Result struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message"`
}

func ok() Result { return Result{Valid: true} }

func fail(message string) Result { return Result{Valid: false, Message: message} }

// ValidateEmail checks the loose something@domain.tld shape used across the portal.
func ValidateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// ValidatePassword reports the first strength rule that password breaks, in a fixed order.
func ValidatePassword(password string) Result {
	switch {
	case len(password) < 8:
		return fail("Password must be at least 8 characters long")
	case !upperPattern.MatchString(password):
		return fail("Password must contain at least one uppercase letter")
	case !lowerPattern.MatchString(password):
		return fail("Password must contain at least one lowercase letter")
	case !digitPattern.MatchString(password):
		return fail("Password must contain at least one number")
	case !specialPattern.MatchString(password):
		return fail("Password must contain at least one special character (@$!%*?&)")
	}
	return ok()
}

// ValidateUsername checks doctor and admin handles.
func ValidateUsername(username string) Result {
	if len(username) < 3 {
		return fail("Username must be at least 3 characters long")
	}
	if !usernamePattern.MatchString(username) {
		return fail("Username can only contain letters, numbers, dots, and underscores")
	}
	return ok()
}

// ValidateRequired reports whether value has any non-whitespace content.
func ValidateRequired(value string) bool {
	return len(strings.TrimSpace(value)) > 0
}

// ValidateAge accepts finite ages from 1 to 150 inclusive.
func ValidateAge(age float64) bool {
	return isFinite(age) && age >= 1 && age <= 150
}

// ValidateBMI accepts finite values from 10 to 60 inclusive.
func ValidateBMI(bmi float64) bool {
	return isFinite(bmi) && bmi >= 10 && bmi <= 60
}

// ValidatePhone accepts exactly ten digits.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(phone)
}

// ValidateName accepts trimmed names of 2 to 100 characters.
func ValidateName(name string) bool {
	n := len([]rune(strings.TrimSpace(name)))
	return n >= 2 && n <= 100
}

// ValidateWeekday accepts full English weekday names such as "Monday".
func ValidateWeekday(day string) bool {
	for d := time.Sunday; d <= time.Saturday; d++ {
		if d.String() == day {
			return true
		}
	}
	return false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// FieldMessenger is implemented by forms that know how to explain their failing fields.
// Keys are JSON field names, or "field.tag" to word one rule differently.
type FieldMessenger interface {
	FieldMessages() map[string]string
}

// FormValidator validates form structs through struct tags and reports every failing
// field at once, keyed by JSON name.
type FormValidator struct {
	validate *validator.Validate
}

var (
	defaultValidator     *FormValidator
	defaultValidatorOnce sync.Once
)

// DefaultFormValidator returns a shared validator; validator.Validate is safe for concurrent use.
func DefaultFormValidator() *FormValidator {
	defaultValidatorOnce.Do(func() {
		defaultValidator = NewFormValidator()
	})
	return defaultValidator
}

// NewFormValidator creates a validator with the portal's custom tags registered.
func NewFormValidator() *FormValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	stringRules := map[string]func(string) bool{
		"notblank":       ValidateRequired,
		"appemail":       ValidateEmail,
		"personname":     ValidateName,
		"weekday":        ValidateWeekday,
		"strongpassword": func(s string) bool { return ValidatePassword(s).Valid },
		"username":       func(s string) bool { return ValidateUsername(s).Valid },
		"gender":         func(s string) bool { return models.Gender(s).Valid() },
		"bloodgroup":     func(s string) bool { return models.BloodGroup(s).Valid() },
		"doctype":        func(s string) bool { return models.DocumentType(s).Valid() },
		"department":     catalog.IsDepartment,
	}
	for tag, rule := range stringRules {
		rule := rule
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String())
		})
	}

	numberRules := map[string]func(float64) bool{
		"age": ValidateAge,
		"bmi": ValidateBMI,
	}
	for tag, rule := range numberRules {
		rule := rule
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			n, ok := numeric(fl.Field())
			return ok && rule(n)
		})
	}

	return &FormValidator{validate: v}
}

func numeric(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

// Validate runs the struct tags on form and returns the failing fields, or nil.
// Only the first failing rule of each field is reported.
func (f *FormValidator) Validate(form any) map[string]string {
	err := f.validate.Struct(form)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"form": err.Error()}
	}

	var messages map[string]string
	if m, ok := form.(FieldMessenger); ok {
		messages = m.FieldMessages()
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		key := fe.Field()
		if _, seen := fields[key]; seen {
			continue
		}
		fields[key] = messageFor(fe, messages)
	}
	return fields
}

func messageFor(fe validator.FieldError, messages map[string]string) string {
	value, _ := fe.Value().(string)
	switch fe.Tag() {
	case "strongpassword":
		return ValidatePassword(value).Message
	case "username":
		return ValidateUsername(value).Message
	case "eqfield":
		return "Passwords do not match"
	}
	if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := messages[fe.Field()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}
