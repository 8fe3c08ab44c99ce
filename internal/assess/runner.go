package assess

import (
	"context"
	"io"
	"log/slog"

	"github.com/rcliao/healthpredict/internal/engine"
	"github.com/rcliao/healthpredict/internal/model"
	"github.com/rcliao/healthpredict/internal/store"
)

// Status describes how an assessment run ended.
type Status string

const (
	StatusOK         Status = "ok"
	StatusNoSymptoms Status = "no_symptoms"
	StatusNoMatches  Status = "no_matches"
)

// Referrals is the specialist side of the knowledge base.
type Referrals interface {
	SpecialistsFor(condition string) []model.Specialist
}

// Outcome is the caller-facing result of Run.
type Outcome struct {
	Status      Status                   `json:"status"`
	Assessment  *model.Assessment        `json:"assessment,omitempty"`
	Symptoms    []string                 `json:"symptoms"`
	Results     []model.NormalizedResult `json:"results"`
	Specialists []model.Specialist       `json:"specialists"`
}

// Runner wires the store, engine, normalizer and publisher.
type Runner struct {
	Store      store.Store
	Engine     *engine.Engine
	Normalizer *engine.Normalizer
	Publisher  *Publisher
	Referrals  Referrals
	Logger     *slog.Logger
}

// Run scores the session's accumulated symptoms. Nothing is published
// when there are no symptoms or no rule matches, so the accumulated set
// survives for the next run.
func (r *Runner) Run(ctx context.Context, sess model.Session) (*Outcome, error) {
	log := r.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	symptoms, err := r.Store.SelectedSymptoms(ctx, sess)
	if err != nil {
		return nil, err
	}
	out := &Outcome{
		Symptoms:    symptoms,
		Results:     []model.NormalizedResult{},
		Specialists: []model.Specialist{},
	}
	if len(symptoms) == 0 {
		out.Status = StatusNoSymptoms
		return out, nil
	}

	profile, err := r.Store.GetCurrentProfile(ctx, sess)
	if err != nil {
		return nil, err
	}
	vitals, err := r.Store.Vitals(ctx, sess)
	if err != nil {
		return nil, err
	}
	history, err := r.Store.History(ctx, sess)
	if err != nil {
		return nil, err
	}

	matches := r.Engine.Score(engine.Inputs{
		Symptoms: symptoms,
		Profile:  profile,
		Vitals:   vitals,
		History:  history,
	})
	log.Debug("scored", "session", sess.Key(), "symptoms", len(symptoms), "matches", len(matches), "profile", profile != nil)
	if len(matches) == 0 {
		out.Status = StatusNoMatches
		return out, nil
	}

	results := r.Normalizer.Normalize(matches)
	email := ""
	if profile != nil {
		email = profile.Email
	}
	a, err := r.Publisher.Publish(ctx, sess, email, symptoms, results)
	if err != nil {
		return nil, err
	}
	log.Debug("published", "assessment", a.ID, "top", results[0].Name)

	out.Status = StatusOK
	out.Assessment = a
	out.Results = results
	if r.Referrals != nil {
		out.Specialists = r.Referrals.SpecialistsFor(results[0].Name)
	}
	return out, nil
}
