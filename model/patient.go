package model

import (
	"strings"
	"time"
)

// Accepted age bounds for a patient record.
const (
	MinAge = 0
	MaxAge = 120
)

// Genders and Conditions are the closed sets of accepted values. They drive
// both input validation and the report chart axes, so every condition and
// gender always appears in the report even with a zero count.
var (
	Genders    = []string{"Male", "Female"}
	Conditions = []string{"Diabetes", "Thyroid", "High Blood Pressure"}
)

// PatientRecord represents one accepted intake form submission
// @Description Patient record information
type PatientRecord struct {
	Name      string    `json:"name" example:"Ana"`
	Gender    string    `json:"gender" example:"Female"`
	Age       int       `json:"age" example:"34"`
	Condition string    `json:"condition" example:"Diabetes"`
	CreatedAt time.Time `json:"created_at"`
}

// CanonicalGender matches the input against the gender enumeration,
// ignoring case, and returns the canonical value.
func CanonicalGender(s string) (string, bool) {
	return canonical(s, Genders)
}

// CanonicalCondition matches the input against the condition enumeration,
// ignoring case, and returns the canonical value.
func CanonicalCondition(s string) (string, bool) {
	return canonical(s, Conditions)
}

func canonical(s string, values []string) (string, bool) {
	s = strings.TrimSpace(s)
	for _, v := range values {
		if strings.EqualFold(s, v) {
			return v, true
		}
	}
	return "", false
}
