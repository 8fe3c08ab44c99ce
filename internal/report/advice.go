// Package report renders a published assessment for the terminal.
package report

import (
	"fmt"
	"strings"

	"github.com/rcliao/healthpredict/internal/model"
)

// UrgencyAdvice is the call to action for the top result's urgency.
func UrgencyAdvice(u model.Urgency) string {
	switch u {
	case model.UrgencyHigh:
		return "Seek medical attention immediately"
	case model.UrgencyModerate:
		return "Schedule a doctor visit within 1-3 days"
	default:
		return "See a doctor within a few days for follow-up"
	}
}

// GeneralAdvice names up to the first three reported symptoms.
func GeneralAdvice(symptoms []string) string {
	if len(symptoms) > 3 {
		symptoms = symptoms[:3]
	}
	list := strings.ToLower(strings.Join(symptoms, " and "))
	return fmt.Sprintf("Given the combination of your reported symptoms including %s, it is important to look for a systemic cause such as a nutritional deficiency or inflammatory process. Keep a symptom diary noting the time of day and specific flare-ups to help your doctor narrow down the cause.", list)
}

// Disclaimer is printed at the end of every report.
const Disclaimer = "This is an automated assessment for educational purposes and is NOT a medical diagnosis. Please present this report to a licensed physician for clinical verification and next steps."
