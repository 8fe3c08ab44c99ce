package engine

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/rcliao/healthpredict/internal/kb"
	"github.com/rcliao/healthpredict/internal/model"
)

type fakeCatalog []model.ConditionRule

func (f fakeCatalog) ListRules() []model.ConditionRule { return f }

func find(matches []model.ScoredMatch, name string) (model.ScoredMatch, bool) {
	for _, m := range matches {
		if m.Name == name {
			return m, true
		}
	}
	return model.ScoredMatch{}, false
}

// baseScore mirrors the ratio * weight step with runtime values.
func baseScore(matched, total int, weight float64) float64 {
	return float64(matched) / float64(total) * weight
}

func TestScoreEmptyInput(t *testing.T) {
	e := New(kb.Default())
	for _, p := range []*model.UserProfile{nil, {Email: "a@b.c", Age: 60, Gender: "female"}} {
		got := e.Score(Inputs{Profile: p})
		if got == nil || len(got) != 0 {
			t.Errorf("expected empty non-nil result, got %#v", got)
		}
	}
}

func TestScoreNoMatch(t *testing.T) {
	e := New(kb.Default())
	got := e.Score(Inputs{Symptoms: []string{"Hiccups"}})
	if len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestScoreFluLikeScenario(t *testing.T) {
	e := New(kb.Default())
	got := e.Score(Inputs{Symptoms: []string{"Fever", "Cough", "Fatigue"}})

	for _, name := range []string{"Influenza", "COVID-19", "Pneumonia"} {
		if _, ok := find(got, name); !ok {
			t.Errorf("expected %s in results", name)
		}
	}
	if _, ok := find(got, "Arthritis"); ok {
		t.Error("Arthritis has no symptom overlap and must be excluded")
	}

	// COVID-19: 3/6 * 1.0, Pneumonia: 3/6 * 0.95, Influenza: 3/6 * 0.9
	if got[0].Name != "COVID-19" {
		t.Errorf("expected COVID-19 first, got %s", got[0].Name)
	}
	covid, _ := find(got, "COVID-19")
	if want := baseScore(3, 6, 1.0); covid.RawScore != want {
		t.Errorf("COVID-19 score %v, want %v", covid.RawScore, want)
	}
	if len(covid.Matched) != 3 {
		t.Errorf("expected 3 matched symptoms, got %v", covid.Matched)
	}
}

func TestScoreSortedAndPositive(t *testing.T) {
	catalog := kb.Default()
	e := New(catalog)

	var pool []string
	for _, r := range catalog.ListRules() {
		pool = append(pool, r.Symptoms...)
	}
	rng := rand.New(rand.NewSource(7))
	profile := &model.UserProfile{Email: "p@x.io", Age: 55, Gender: "Female"}
	vitals := model.Vitals{Temperature: model.Float(39), Systolic: model.Float(150), HeartRate: model.Float(110)}

	for i := 0; i < 200; i++ {
		var symptoms []string
		for n := rng.Intn(6); n >= 0; n-- {
			symptoms = append(symptoms, pool[rng.Intn(len(pool))])
		}
		in := Inputs{Symptoms: symptoms}
		if i%2 == 0 {
			in.Profile = profile
			in.Vitals = vitals
			in.History = []string{"Obesity", "Current smoker"}
		}
		got := e.Score(in)
		for _, m := range got {
			if m.RawScore <= 0 {
				t.Fatalf("non-positive score %v for %s", m.RawScore, m.Name)
			}
		}
		if !sort.SliceIsSorted(got, func(a, b int) bool { return got[a].RawScore > got[b].RawScore }) {
			t.Fatalf("results not sorted descending for %v", symptoms)
		}
	}
}

func TestScoreTiesKeepCatalogOrder(t *testing.T) {
	catalog := fakeCatalog{
		{Name: "First", Symptoms: []string{"Ache"}, BaseWeight: 0.5, Urgency: model.UrgencyLow},
		{Name: "Second", Symptoms: []string{"Ache"}, BaseWeight: 0.5, Urgency: model.UrgencyLow},
		{Name: "Third", Symptoms: []string{"Ache"}, BaseWeight: 0.5, Urgency: model.UrgencyLow},
	}
	got := New(catalog).Score(Inputs{Symptoms: []string{"ache"}})
	if len(got) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(got))
	}
	for i, name := range []string{"First", "Second", "Third"} {
		if got[i].Name != name {
			t.Errorf("position %d: got %s, want %s", i, got[i].Name, name)
		}
	}
}

func TestMatchingIsCaseInsensitiveSubstring(t *testing.T) {
	catalog := fakeCatalog{
		{Name: "Flu", Symptoms: []string{"Fever", "Cough"}, BaseWeight: 1, Urgency: model.UrgencyLow},
	}
	e := New(catalog)

	got := e.Score(Inputs{Symptoms: []string{"HIGH FEVER at night"}})
	if len(got) != 1 || got[0].RawScore != 0.5 {
		t.Fatalf("expected Flu at 0.5, got %+v", got)
	}

	// Containment is rule-symptom-in-user-symptom only.
	got = e.Score(Inputs{Symptoms: []string{"Fev"}})
	if len(got) != 0 {
		t.Errorf("partial user text must not match a longer rule symptom, got %+v", got)
	}
}

// Known quirk: substring containment matches negated free text.
func TestMatchingQuirkNegatedSymptom(t *testing.T) {
	e := New(kb.Default())
	got := e.Score(Inputs{Symptoms: []string{"Headache-free"}})
	if _, ok := find(got, "Migraine"); !ok {
		t.Error("expected \"Headache-free\" to match rule symptom Headache")
	}
}

func TestFeverMultiplier(t *testing.T) {
	e := New(kb.Default())
	profile := &model.UserProfile{Email: "x@y.z"}
	got := e.Score(Inputs{
		Symptoms: []string{"Chills"},
		Profile:  profile,
		Vitals:   model.Vitals{Temperature: model.Float(39)},
	})
	flu, ok := find(got, "Influenza")
	if !ok {
		t.Fatal("expected Influenza")
	}
	if want := baseScore(1, 6, 0.9) * 1.5; flu.RawScore != want {
		t.Errorf("Influenza score %v, want %v", flu.RawScore, want)
	}
}

func TestMultipliersRequireProfile(t *testing.T) {
	e := New(kb.Default())
	in := Inputs{
		Symptoms: []string{"Chills"},
		Vitals:   model.Vitals{Temperature: model.Float(39)},
	}
	flu, _ := find(e.Score(in), "Influenza")
	if want := baseScore(1, 6, 0.9); flu.RawScore != want {
		t.Errorf("without profile expected %v, got %v", want, flu.RawScore)
	}
}

func TestGenderMultiplier(t *testing.T) {
	e := New(kb.Default())
	symptoms := []string{"Abdominal pain", "Fever"}

	female := e.Score(Inputs{Symptoms: symptoms, Profile: &model.UserProfile{Gender: "FeMale"}})
	male := e.Score(Inputs{Symptoms: symptoms, Profile: &model.UserProfile{Gender: "male"}})

	f, _ := find(female, "Urinary Tract Infection")
	m, _ := find(male, "Urinary Tract Infection")
	if f.RawScore != m.RawScore*1.3 {
		t.Errorf("female score %v, want 1.3 x %v", f.RawScore, m.RawScore)
	}
}

func TestBloodPressureMultiplier(t *testing.T) {
	e := New(kb.Default())
	profile := &model.UserProfile{Email: "bp@x.io"}

	with := e.Score(Inputs{Symptoms: []string{"Headache"}, Profile: profile, Vitals: model.Vitals{Systolic: model.Float(150)}})
	without := e.Score(Inputs{Symptoms: []string{"Headache"}, Profile: profile})

	w, _ := find(with, "Hypertension")
	wo, _ := find(without, "Hypertension")
	if w.RawScore != wo.RawScore*2 {
		t.Errorf("hypertension with bp %v, want double %v", w.RawScore, wo.RawScore)
	}

	diastolic := e.Score(Inputs{Symptoms: []string{"Headache"}, Profile: profile, Vitals: model.Vitals{Diastolic: model.Float(95)}})
	d, _ := find(diastolic, "Hypertension")
	if d.RawScore != wo.RawScore*2 {
		t.Errorf("diastolic alone should double hypertension: %v vs %v", d.RawScore, wo.RawScore)
	}
}

func TestHistoryAndAgeMultipliersCompose(t *testing.T) {
	e := New(kb.Default())
	profile := &model.UserProfile{Age: 52}
	got := e.Score(Inputs{
		Symptoms: []string{"Dizziness"},
		Profile:  profile,
		History:  []string{"Obesity", "Current smoker"},
	})
	h, ok := find(got, "Hypertension")
	if !ok {
		t.Fatal("expected Hypertension")
	}
	want := baseScore(1, 4, 0.7)
	want *= 1.4
	want *= 1.3
	want *= 1.25
	if h.RawScore != want {
		t.Errorf("hypertension %v, want %v", h.RawScore, want)
	}
}

func TestDefaultAgeIsNotOverFortyFive(t *testing.T) {
	e := New(kb.Default())
	// Age 0 is scored as 25, so no age multiplier applies to Diabetes.
	got := e.Score(Inputs{Symptoms: []string{"Tingling"}, Profile: &model.UserProfile{}})
	d, _ := find(got, "Diabetes")
	if want := baseScore(1, 5, 0.7); d.RawScore != want {
		t.Errorf("diabetes %v, want %v", d.RawScore, want)
	}

	old := e.Score(Inputs{Symptoms: []string{"Tingling"}, Profile: &model.UserProfile{Age: 46}})
	o, _ := find(old, "Diabetes")
	if o.RawScore != d.RawScore*1.2 {
		t.Errorf("diabetes over 45 %v, want %v", o.RawScore, d.RawScore*1.2)
	}
}

func TestHeartRateThresholdIsExclusive(t *testing.T) {
	e := New(kb.Default())
	profile := &model.UserProfile{}
	at := e.Score(Inputs{Symptoms: []string{"Anxiety"}, Profile: profile, Vitals: model.Vitals{HeartRate: model.Float(100)}})
	over := e.Score(Inputs{Symptoms: []string{"Anxiety"}, Profile: profile, Vitals: model.Vitals{HeartRate: model.Float(101)}})

	a, _ := find(at, "Anxiety Disorder")
	o, _ := find(over, "Anxiety Disorder")
	if o.RawScore != a.RawScore*1.3 {
		t.Errorf("heart rate 101 should multiply by 1.3: %v vs %v", o.RawScore, a.RawScore)
	}
}
