package store

import (
	"context"
	"sort"
	"testing"

	"github.com/rcliao/healthpredict/internal/model"
)

func sorted(s []string) []string {
	out := append([]string(nil), s...)
	sort.Strings(out)
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMergeSelectedSymptomsAccumulates(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess := model.DefaultSession

	s.MergeSelectedSymptoms(ctx, sess, []string{"Fever", "Cough"})
	merged, err := s.MergeSelectedSymptoms(ctx, sess, []string{"Cough", "Chills"})
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	want := []string{"Fever", "Cough", "Chills"}
	if !equal(merged, want) {
		t.Errorf("got %v, want %v", merged, want)
	}
	got, _ := s.SelectedSymptoms(ctx, sess)
	if !equal(got, want) {
		t.Errorf("persisted %v, want %v", got, want)
	}
}

func TestMergeIsOrderIndependent(t *testing.T) {
	ctx := context.Background()
	a := []string{"Fever", "Cough", "Headache"}
	b := []string{"Cough", "Nausea"}

	s1 := newTestStore(t)
	s1.MergeSelectedSymptoms(ctx, model.DefaultSession, a)
	ab, _ := s1.MergeSelectedSymptoms(ctx, model.DefaultSession, b)

	s2 := newTestStore(t)
	s2.MergeSelectedSymptoms(ctx, model.DefaultSession, b)
	ba, _ := s2.MergeSelectedSymptoms(ctx, model.DefaultSession, a)

	if !equal(sorted(ab), sorted(ba)) {
		t.Errorf("A then B = %v, B then A = %v", ab, ba)
	}
	if want := []string{"Cough", "Fever", "Headache", "Nausea"}; !equal(sorted(ab), want) {
		t.Errorf("union %v, want %v", sorted(ab), want)
	}
}

func TestClearSelectedSymptoms(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.MergeSelectedSymptoms(ctx, model.DefaultSession, []string{"Fever"})

	if err := s.ClearSelectedSymptoms(ctx, model.DefaultSession); err != nil {
		t.Fatalf("clear: %v", err)
	}
	got, err := s.SelectedSymptoms(ctx, model.DefaultSession)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil set, got %#v", got)
	}
}

func TestVitalsLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess := model.DefaultSession

	v, err := s.Vitals(ctx, sess)
	if err != nil {
		t.Fatal(err)
	}
	if v.Temperature != nil || v.Systolic != nil || v.Diastolic != nil || v.HeartRate != nil {
		t.Errorf("expected empty vitals, got %+v", v)
	}

	s.SetVitals(ctx, sess, model.Vitals{Temperature: model.Float(39.2), Systolic: model.Float(150)})
	s.SetVitals(ctx, sess, model.Vitals{HeartRate: model.Float(110)})

	v, _ = s.Vitals(ctx, sess)
	if v.Temperature != nil || v.Systolic != nil {
		t.Errorf("expected replace, not merge: %+v", v)
	}
	if v.HeartRate == nil || *v.HeartRate != 110 {
		t.Errorf("expected heart rate 110, got %+v", v.HeartRate)
	}
}

func TestHistoryLastWriteWins(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess := model.DefaultSession

	s.SetHistory(ctx, sess, []string{"Obesity", "Current smoker"})
	s.SetHistory(ctx, sess, []string{"Diabetes in family"})

	got, _ := s.History(ctx, sess)
	if !equal(got, []string{"Diabetes in family"}) {
		t.Errorf("got %v", got)
	}

	s.SetHistory(ctx, sess, nil)
	got, _ = s.History(ctx, sess)
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty history, got %#v", got)
	}
}
