package models

import "time"

// Gender enum
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
	GenderOther  Gender = "OTHER"
)

// Genders lists the accepted genders in display order.
var Genders = []Gender{GenderMale, GenderFemale, GenderOther}

// Valid reports whether g is a known gender.
func (g Gender) Valid() bool {
	for _, known := range Genders {
		if g == known {
			return true
		}
	}
	return false
}

// BloodGroup enum
type BloodGroup string

const (
	BloodAPositive  BloodGroup = "A_POSITIVE"
	BloodANegative  BloodGroup = "A_NEGATIVE"
	BloodBPositive  BloodGroup = "B_POSITIVE"
	BloodBNegative  BloodGroup = "B_NEGATIVE"
	BloodABPositive BloodGroup = "AB_POSITIVE"
	BloodABNegative BloodGroup = "AB_NEGATIVE"
	BloodOPositive  BloodGroup = "O_POSITIVE"
	BloodONegative  BloodGroup = "O_NEGATIVE"
)

// BloodGroups lists the accepted blood groups in display order.
var BloodGroups = []BloodGroup{
	BloodAPositive, BloodANegative,
	BloodBPositive, BloodBNegative,
	BloodABPositive, BloodABNegative,
	BloodOPositive, BloodONegative,
}

// Valid reports whether b is a known blood group.
func (b BloodGroup) Valid() bool {
	for _, known := range BloodGroups {
		if b == known {
			return true
		}
	}
	return false
}

// MaxProfileHistory is how many pre-update snapshots a patient keeps.
const MaxProfileHistory = 5

// ProfileSnapshot is a copy of the mutable profile fields taken just before an update.
type ProfileSnapshot struct {
	Gender     Gender    `json:"gender"`
	BMI        float64   `json:"bmi"`
	Address    string    `json:"address"`
	Income     float64   `json:"income"`
	Occupation string    `json:"occupation"`
	CapturedAt time.Time `json:"capturedAt"`
}

// PushSnapshot puts s at the front of history and keeps at most MaxProfileHistory entries.
func PushSnapshot(history []ProfileSnapshot, s ProfileSnapshot) []ProfileSnapshot {
	out := make([]ProfileSnapshot, 0, MaxProfileHistory)
	out = append(out, s)
	for _, prev := range history {
		if len(out) == MaxProfileHistory {
			break
		}
		out = append(out, prev)
	}
	return out
}
