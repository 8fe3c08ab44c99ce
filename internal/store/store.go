// Package store provides the profile/session storage interface and SQLite implementation.
package store

import (
	"context"

	"github.com/rcliao/healthpredict/internal/model"
)

// Store defines profile and session persistence. Lookups that miss return
// a nil value and a nil error; errors are reserved for storage failures.
type Store interface {
	// GetUser loads a profile by email.
	GetUser(ctx context.Context, email string) (*model.UserProfile, error)

	// SaveProfile inserts or replaces the profile keyed by its email.
	SaveProfile(ctx context.Context, p model.UserProfile) error

	// SetCurrentUser points the session at a profile email.
	SetCurrentUser(ctx context.Context, sess model.Session, email string) error

	// CurrentUser returns the session's current email, "" when logged out.
	CurrentUser(ctx context.Context, sess model.Session) (string, error)

	// ClearCurrentUser logs the session out.
	ClearCurrentUser(ctx context.Context, sess model.Session) error

	// GetCurrentProfile resolves the current user pointer and loads the profile.
	GetCurrentProfile(ctx context.Context, sess model.Session) (*model.UserProfile, error)

	// MergeSelectedSymptoms adds symptoms to the accumulated set and returns the union.
	MergeSelectedSymptoms(ctx context.Context, sess model.Session, symptoms []string) ([]string, error)

	// SelectedSymptoms returns the accumulated set, pending scoring.
	SelectedSymptoms(ctx context.Context, sess model.Session) ([]string, error)

	// ClearSelectedSymptoms empties the accumulated set.
	ClearSelectedSymptoms(ctx context.Context, sess model.Session) error

	// SetVitals replaces the session's vitals.
	SetVitals(ctx context.Context, sess model.Session, v model.Vitals) error

	// Vitals returns the session's vitals; fields never set are nil.
	Vitals(ctx context.Context, sess model.Session) (model.Vitals, error)

	// SetHistory replaces the session's history tags.
	SetHistory(ctx context.Context, sess model.Session, history []string) error

	// History returns the session's history tags.
	History(ctx context.Context, sess model.Session) ([]string, error)

	// SaveAssessment records published results. It becomes the session's
	// last assessment.
	SaveAssessment(ctx context.Context, a *model.Assessment) error

	// LastAssessment returns the most recent assessment of the session.
	LastAssessment(ctx context.Context, sess model.Session) (*model.Assessment, error)

	// ListAssessments returns the session's assessments, newest first.
	ListAssessments(ctx context.Context, sess model.Session, limit int) ([]model.Assessment, error)

	// Close closes the store.
	Close() error
}
