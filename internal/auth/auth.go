// Package auth implements registration, login and profile edits over the store.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/rcliao/healthpredict/internal/model"
)

var (
	ErrPasswordMismatch      = errors.New("passwords do not match")
	ErrDuplicateRegistration = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrNotLoggedIn           = errors.New("not logged in")
	ErrEmailRequired         = errors.New("email is required")
)

// UserStore is the part of the store authentication needs.
type UserStore interface {
	GetUser(ctx context.Context, email string) (*model.UserProfile, error)
	SaveProfile(ctx context.Context, p model.UserProfile) error
	SetCurrentUser(ctx context.Context, sess model.Session, email string) error
	ClearCurrentUser(ctx context.Context, sess model.Session) error
	GetCurrentProfile(ctx context.Context, sess model.Session) (*model.UserProfile, error)
}

// Service handles the authentication boundary.
type Service struct {
	store UserStore
}

// New creates an auth service.
func New(s UserStore) *Service {
	return &Service{store: s}
}

// Registration is the input of Register.
type Registration struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register creates a profile with default body measurements and logs the
// session in. The duplicate check and the save are separate operations:
// two registrations racing on one email both succeed and the later save wins.
func (s *Service) Register(ctx context.Context, sess model.Session, r Registration) (*model.UserProfile, error) {
	if r.Email == "" {
		return nil, ErrEmailRequired
	}
	if r.Password != r.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	existing, err := s.store.GetUser(ctx, r.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateRegistration
	}

	p := model.UserProfile{
		Email:    r.Email,
		Name:     r.Name,
		Password: r.Password,
		Age:      model.DefaultAge,
		Gender:   model.DefaultGender,
		Height:   model.DefaultHeight,
		Weight:   model.DefaultWeight,
	}
	if err := s.store.SaveProfile(ctx, p); err != nil {
		return nil, err
	}
	if err := s.store.SetCurrentUser(ctx, sess, p.Email); err != nil {
		return nil, err
	}
	return &p, nil
}

// Login points the session at the profile when the password matches.
func (s *Service) Login(ctx context.Context, sess model.Session, email, password string) (*model.UserProfile, error) {
	p, err := s.store.GetUser(ctx, email)
	if err != nil {
		return nil, err
	}
	if p == nil || subtle.ConstantTimeCompare([]byte(p.Password), []byte(password)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if err := s.store.SetCurrentUser(ctx, sess, email); err != nil {
		return nil, err
	}
	return p, nil
}

// Logout clears the session's current user.
func (s *Service) Logout(ctx context.Context, sess model.Session) error {
	return s.store.ClearCurrentUser(ctx, sess)
}

// Edit holds optional profile changes; nil fields are left as they are.
type Edit struct {
	Name   *string
	Email  *string
	Age    *int
	Gender *string
	Height *float64
	Weight *float64
}

// UpdateProfile applies an edit to the current profile. Changing the email
// saves a new record under the new key and repoints the session; the old
// record is left in place.
func (s *Service) UpdateProfile(ctx context.Context, sess model.Session, e Edit) (*model.UserProfile, error) {
	p, err := s.store.GetCurrentProfile(ctx, sess)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotLoggedIn
	}

	if e.Name != nil {
		p.Name = *e.Name
	}
	if e.Email != nil {
		if *e.Email == "" {
			return nil, ErrEmailRequired
		}
		p.Email = *e.Email
	}
	if e.Age != nil {
		p.Age = *e.Age
	}
	if e.Gender != nil {
		p.Gender = *e.Gender
	}
	if e.Height != nil {
		p.Height = *e.Height
	}
	if e.Weight != nil {
		p.Weight = *e.Weight
	}

	if err := s.store.SaveProfile(ctx, *p); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	if err := s.store.SetCurrentUser(ctx, sess, p.Email); err != nil {
		return nil, err
	}
	return p, nil
}
