package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rcliao/healthpredict/internal/model"
)

func (s *SQLiteStore) GetUser(ctx context.Context, email string) (*model.UserProfile, error) {
	var p model.UserProfile
	err := s.db.QueryRowContext(ctx,
		`SELECT email, name, age, gender, height, weight, password
		 FROM profiles WHERE email = ?`, email).Scan(
		&p.Email, &p.Name, &p.Age, &p.Gender, &p.Height, &p.Weight, &p.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &p, nil
}

func (s *SQLiteStore) SaveProfile(ctx context.Context, p model.UserProfile) error {
	if p.Email == "" {
		return fmt.Errorf("save profile: email is required")
	}
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (email, name, age, gender, height, weight, password, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(email) DO UPDATE SET
			name = excluded.name,
			age = excluded.age,
			gender = excluded.gender,
			height = excluded.height,
			weight = excluded.weight,
			password = excluded.password,
			updated_at = excluded.updated_at`,
		p.Email, p.Name, p.Age, p.Gender, p.Height, p.Weight, p.Password, now, now)
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SetCurrentUser(ctx context.Context, sess model.Session, email string) error {
	return s.putState(ctx, sess, keyCurrentUser, email)
}

func (s *SQLiteStore) CurrentUser(ctx context.Context, sess model.Session) (string, error) {
	var email string
	if _, err := s.getState(ctx, sess, keyCurrentUser, &email); err != nil {
		return "", err
	}
	return email, nil
}

func (s *SQLiteStore) ClearCurrentUser(ctx context.Context, sess model.Session) error {
	return s.deleteState(ctx, sess, keyCurrentUser)
}

func (s *SQLiteStore) GetCurrentProfile(ctx context.Context, sess model.Session) (*model.UserProfile, error) {
	email, err := s.CurrentUser(ctx, sess)
	if err != nil || email == "" {
		return nil, err
	}
	return s.GetUser(ctx, email)
}
