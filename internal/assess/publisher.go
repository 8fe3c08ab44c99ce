// Package assess runs an assessment end to end and publishes its results.
package assess

import (
	"context"
	"fmt"

	"github.com/rcliao/healthpredict/internal/model"
)

// ResultStore is the part of the store the publisher writes to.
type ResultStore interface {
	SaveAssessment(ctx context.Context, a *model.Assessment) error
	ClearSelectedSymptoms(ctx context.Context, sess model.Session) error
}

// Publisher is the only writer of results into the store.
type Publisher struct {
	store ResultStore
}

// NewPublisher creates a publisher over the given store.
func NewPublisher(s ResultStore) *Publisher {
	return &Publisher{store: s}
}

// Publish records the results with the symptoms that produced them, then
// clears the accumulated symptoms. The two writes are independent: if the
// clear fails the assessment stays saved.
func (p *Publisher) Publish(ctx context.Context, sess model.Session, email string, symptoms []string, results []model.NormalizedResult) (*model.Assessment, error) {
	a := &model.Assessment{
		Session:  sess.Key(),
		Email:    email,
		Symptoms: append([]string(nil), symptoms...),
		Results:  results,
	}
	if err := p.store.SaveAssessment(ctx, a); err != nil {
		return nil, fmt.Errorf("publish results: %w", err)
	}
	if err := p.store.ClearSelectedSymptoms(ctx, sess); err != nil {
		return a, fmt.Errorf("clear symptoms: %w", err)
	}
	return a, nil
}
