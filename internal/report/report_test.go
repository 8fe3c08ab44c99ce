package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rcliao/healthpredict/internal/model"
)

func sampleAssessment() *model.Assessment {
	return &model.Assessment{
		ID:       "01HZX",
		Symptoms: []string{"Fever", "Cough", "Chest pain", "Chills"},
		Results: []model.NormalizedResult{
			{ScoredMatch: model.ScoredMatch{
				Name: "Pneumonia", Urgency: model.UrgencyHigh,
				Explanation:     "Pneumonia is an infection.",
				Recommendations: []string{"Seek medical attention immediately", "Chest X-ray may be required"},
			}, Confidence: 82.3},
			{ScoredMatch: model.ScoredMatch{Name: "Influenza", Urgency: model.UrgencyModerate}, Confidence: 59.1},
			{ScoredMatch: model.ScoredMatch{Name: "COVID-19", Urgency: model.UrgencyModerate}, Confidence: 44},
		},
	}
}

func TestUrgencyAdvice(t *testing.T) {
	cases := map[model.Urgency]string{
		model.UrgencyHigh:     "Seek medical attention immediately",
		model.UrgencyModerate: "Schedule a doctor visit within 1-3 days",
		model.UrgencyLow:      "See a doctor within a few days for follow-up",
	}
	for u, want := range cases {
		if got := UrgencyAdvice(u); got != want {
			t.Errorf("%s: got %q, want %q", u, got, want)
		}
	}
}

func TestGeneralAdviceUsesFirstThree(t *testing.T) {
	got := GeneralAdvice([]string{"Fever", "Cough", "Chest Pain", "Chills"})
	if !strings.Contains(got, "including fever and cough and chest pain,") {
		t.Errorf("unexpected advice: %q", got)
	}
	if strings.Contains(got, "chills") {
		t.Errorf("only the first three symptoms belong in the advice: %q", got)
	}
}

func TestRenderNoResults(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, Data{}, Options{}); !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults, got %v", err)
	}
	if err := Render(&buf, Data{Assessment: &model.Assessment{}}, Options{}); !errors.Is(err, ErrNoResults) {
		t.Errorf("expected ErrNoResults for empty results, got %v", err)
	}
}

func TestRenderPlain(t *testing.T) {
	var buf bytes.Buffer
	err := Render(&buf, Data{
		Profile:    &model.UserProfile{Name: "Jane", Age: 41, Gender: "Female", Height: 170, Weight: 65},
		Assessment: sampleAssessment(),
		Specialists: []model.Specialist{
			{Name: "Dr. Sarah Johnson", Specialty: "General Physician", Location: "Central Care Hospital", Contact: "+1-555-0101", Rating: 4.8},
		},
	}, Options{Now: time.Date(2025, 1, 2, 3, 4, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Report ID: 01HZX  Generated: 2025-01-02 03:04",
		"Jane",
		"41 / Female",
		"22.5 (Normal)",
		"Fever, Cough, Chest pain, Chills",
		"Pneumonia",
		"82.3%",
		"Seek medical attention immediately",
		"• Chest X-ray may be required",
		"Influenza",
		"44.0%",
		"Dr. Sarah Johnson",
		"DISCLAIMER",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q\n%s", want, out)
		}
	}
}

func TestRenderAnonymousDefaults(t *testing.T) {
	var buf bytes.Buffer
	a := sampleAssessment()
	a.Results = a.Results[:1]
	if err := Render(&buf, Data{Assessment: a}, Options{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "N/A") || !strings.Contains(out, "25 / Male") {
		t.Errorf("expected anonymous defaults:\n%s", out)
	}
	if strings.Contains(out, "Secondary") {
		t.Error("single result should not print secondary matches")
	}
}

func TestFormatTableAligns(t *testing.T) {
	lines := formatTable([]string{"Name", "Pct"}, [][]string{{"Influenza", "9.5%"}, {"Flu", "88.0%"}}, map[int]bool{1: true})
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[1] != "Influenza   9.5%" || lines[2] != "Flu        88.0%" {
		t.Errorf("unexpected alignment:\n%q\n%q", lines[1], lines[2])
	}
}
