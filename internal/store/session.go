package store

import (
	"context"

	"github.com/rcliao/healthpredict/internal/model"
)

// MergeSelectedSymptoms is a plain read followed by a write. Two callers
// merging into the same session at once can lose one side's symptoms.
func (s *SQLiteStore) MergeSelectedSymptoms(ctx context.Context, sess model.Session, symptoms []string) ([]string, error) {
	existing, err := s.SelectedSymptoms(ctx, sess)
	if err != nil {
		return nil, err
	}
	merged := model.Union(existing, symptoms)
	if err := s.putState(ctx, sess, keySelectedSymptoms, merged); err != nil {
		return nil, err
	}
	return merged, nil
}

func (s *SQLiteStore) SelectedSymptoms(ctx context.Context, sess model.Session) ([]string, error) {
	symptoms := []string{}
	if _, err := s.getState(ctx, sess, keySelectedSymptoms, &symptoms); err != nil {
		return nil, err
	}
	return symptoms, nil
}

func (s *SQLiteStore) ClearSelectedSymptoms(ctx context.Context, sess model.Session) error {
	return s.deleteState(ctx, sess, keySelectedSymptoms)
}

func (s *SQLiteStore) SetVitals(ctx context.Context, sess model.Session, v model.Vitals) error {
	return s.putState(ctx, sess, keyVitals, v)
}

func (s *SQLiteStore) Vitals(ctx context.Context, sess model.Session) (model.Vitals, error) {
	var v model.Vitals
	if _, err := s.getState(ctx, sess, keyVitals, &v); err != nil {
		return model.Vitals{}, err
	}
	return v, nil
}

func (s *SQLiteStore) SetHistory(ctx context.Context, sess model.Session, history []string) error {
	if history == nil {
		history = []string{}
	}
	return s.putState(ctx, sess, keyHistory, history)
}

func (s *SQLiteStore) History(ctx context.Context, sess model.Session) ([]string, error) {
	history := []string{}
	if _, err := s.getState(ctx, sess, keyHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}
