package model

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	// DefaultScoringAge is used by the engine when a profile has no usable age.
	DefaultScoringAge = 25

	DefaultAge    = 24
	DefaultGender = "Male"
	DefaultHeight = 175
	DefaultWeight = 70
)

// UserProfile is a registered user. Email is the primary key.
type UserProfile struct {
	Email    string  `json:"email"`
	Name     string  `json:"name"`
	Age      int     `json:"age"`
	Gender   string  `json:"gender"`
	Height   float64 `json:"height"`
	Weight   float64 `json:"weight"`
	Password string  `json:"-"`
}

// ScoringAge returns the age used by contextual multipliers.
func (p *UserProfile) ScoringAge() int {
	if p.Age == 0 {
		return DefaultScoringAge
	}
	return p.Age
}

// ScoringGender returns the lowercased gender, "male" when unset.
func (p *UserProfile) ScoringGender() string {
	if p.Gender == "" {
		return strings.ToLower(DefaultGender)
	}
	return strings.ToLower(p.Gender)
}

// Session identifies the session-scoped state a store operation acts on.
type Session struct {
	Name string
}

// DefaultSession is used when no session name is configured.
var DefaultSession = Session{Name: "default"}

// Key returns the storage key of the session.
func (s Session) Key() string {
	if s.Name == "" {
		return DefaultSession.Name
	}
	return s.Name
}

// Vitals holds the optional vital sign readings. Nil means not reported.
type Vitals struct {
	Temperature *float64 `json:"temperature"`
	Systolic    *float64 `json:"systolic"`
	Diastolic   *float64 `json:"diastolic"`
	HeartRate   *float64 `json:"heart_rate"`
}

// Float returns a pointer to v, for building Vitals literals.
func Float(v float64) *float64 { return &v }

// BMI returns weight / height² rounded to one decimal, 0 when either is missing.
func BMI(heightCM, weightKG float64) float64 {
	if heightCM <= 0 || weightKG <= 0 {
		return 0
	}
	m := heightCM / 100
	return math.Round(weightKG/(m*m)*10) / 10
}

// BMICategory buckets a BMI value.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

var (
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)`)
)

// ParseInt reads the leading integer of s ("42kg" -> 42).
// ok is false when s has no leading digits.
func ParseInt(s string) (int, bool) {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ParseFloat reads the leading decimal number of s ("38.5C" -> 38.5).
func ParseFloat(s string) (float64, bool) {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
