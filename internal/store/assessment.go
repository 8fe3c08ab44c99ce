package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rcliao/healthpredict/internal/model"
)

// SaveAssessment assigns an ID and timestamp when missing.
func (s *SQLiteStore) SaveAssessment(ctx context.Context, a *model.Assessment) error {
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	if a.Session == "" {
		a.Session = model.DefaultSession.Key()
	}
	if a.ID == "" {
		a.ID = s.newID(a.CreatedAt)
	}
	if a.Symptoms == nil {
		a.Symptoms = []string{}
	}
	if a.Results == nil {
		a.Results = []model.NormalizedResult{}
	}

	symptoms, err := json.Marshal(a.Symptoms)
	if err != nil {
		return fmt.Errorf("encode symptoms: %w", err)
	}
	results, err := json.Marshal(a.Results)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessments (id, session, email, symptoms, results, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		a.ID, a.Session, a.Email, string(symptoms), string(results),
		a.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("insert assessment: %w", err)
	}
	return nil
}

func (s *SQLiteStore) LastAssessment(ctx context.Context, sess model.Session) (*model.Assessment, error) {
	list, err := s.ListAssessments(ctx, sess, 1)
	if err != nil || len(list) == 0 {
		return nil, err
	}
	return &list[0], nil
}

func (s *SQLiteStore) ListAssessments(ctx context.Context, sess model.Session, limit int) ([]model.Assessment, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, session, email, symptoms, results, created_at
		 FROM assessments WHERE session = ?
		 ORDER BY id DESC LIMIT ?`, sess.Key(), limit)
	if err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	defer rows.Close()

	var out []model.Assessment
	for rows.Next() {
		a, err := scanAssessment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAssessment(row scanner) (model.Assessment, error) {
	var a model.Assessment
	var symptoms, results, createdAt string
	if err := row.Scan(&a.ID, &a.Session, &a.Email, &symptoms, &results, &createdAt); err != nil {
		return a, err
	}
	a.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	if err := json.Unmarshal([]byte(symptoms), &a.Symptoms); err != nil {
		return a, fmt.Errorf("decode symptoms: %w", err)
	}
	if err := json.Unmarshal([]byte(results), &a.Results); err != nil {
		return a, fmt.Errorf("decode results: %w", err)
	}
	return a, nil
}
