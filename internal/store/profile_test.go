package store

import (
	"context"
	"testing"

	"github.com/rcliao/healthpredict/internal/model"
)

func TestSaveProfileAndGetUser(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	p := model.UserProfile{
		Email: "jane@example.com", Name: "Jane", Age: 41, Gender: "Female",
		Height: 168.5, Weight: 61.2, Password: "s3cret",
	}
	if err := s.SaveProfile(ctx, p); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.GetUser(ctx, p.Email)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || *got != p {
		t.Errorf("round trip mismatch: got %+v want %+v", got, p)
	}
}

func TestGetUserMissing(t *testing.T) {
	s := newTestStore(t)
	got, err := s.GetUser(context.Background(), "nobody@example.com")
	if err != nil {
		t.Fatalf("expected no error for missing user, got %v", err)
	}
	if got != nil {
		t.Errorf("expected nil profile, got %+v", got)
	}
}

func TestSaveProfileUpserts(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	s.SaveProfile(ctx, model.UserProfile{Email: "a@x.io", Name: "First", Age: 30})
	s.SaveProfile(ctx, model.UserProfile{Email: "a@x.io", Name: "Second", Age: 31})

	got, _ := s.GetUser(ctx, "a@x.io")
	if got.Name != "Second" || got.Age != 31 {
		t.Errorf("expected last write to win, got %+v", got)
	}
}

func TestSaveProfileRequiresEmail(t *testing.T) {
	s := newTestStore(t)
	if err := s.SaveProfile(context.Background(), model.UserProfile{Name: "x"}); err == nil {
		t.Error("expected error for empty email")
	}
}

func TestCurrentUserLifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	sess := model.Session{Name: "browser"}

	if p, err := s.GetCurrentProfile(ctx, sess); err != nil || p != nil {
		t.Fatalf("expected no current profile, got %+v (%v)", p, err)
	}

	s.SaveProfile(ctx, model.UserProfile{Email: "a@x.io", Name: "A"})
	if err := s.SetCurrentUser(ctx, sess, "a@x.io"); err != nil {
		t.Fatalf("set current: %v", err)
	}
	p, err := s.GetCurrentProfile(ctx, sess)
	if err != nil || p == nil || p.Name != "A" {
		t.Fatalf("expected profile A, got %+v (%v)", p, err)
	}

	// Sessions are independent.
	if email, _ := s.CurrentUser(ctx, model.Session{Name: "other"}); email != "" {
		t.Errorf("expected other session logged out, got %q", email)
	}

	if err := s.ClearCurrentUser(ctx, sess); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if email, _ := s.CurrentUser(ctx, sess); email != "" {
		t.Errorf("expected logged out, got %q", email)
	}
}

func TestCurrentUserPointingAtMissingProfile(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	s.SetCurrentUser(ctx, model.DefaultSession, "ghost@x.io")

	p, err := s.GetCurrentProfile(ctx, model.DefaultSession)
	if err != nil || p != nil {
		t.Errorf("expected absent profile, got %+v (%v)", p, err)
	}
}
