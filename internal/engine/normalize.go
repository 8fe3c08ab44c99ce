package engine

import (
	"math"
	"math/rand"
	"time"

	"github.com/rcliao/healthpredict/internal/model"
)

const (
	// MaxResults is the number of matches kept by Normalize.
	MaxResults = 5
	// MaxConfidence caps every published confidence.
	MaxConfidence = 99.4

	confidenceScale = 85
	jitterSpan      = 5
)

// Normalizer turns raw scores into presentation confidences. It is not
// safe for concurrent use.
type Normalizer struct {
	jitter func() float64
}

// NewNormalizer draws jitter uniformly from [0, 5) using a time-seeded source.
func NewNormalizer() *Normalizer {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	return NewNormalizerWithJitter(func() float64 { return r.Float64() * jitterSpan })
}

// NewNormalizerWithJitter uses fn as the per-result jitter source.
func NewNormalizerWithJitter(fn func() float64) *Normalizer {
	return &Normalizer{jitter: fn}
}

// Normalize keeps the first MaxResults matches and attaches a confidence
// of min(99.4, raw*85 + jitter) rounded to one decimal. Input order is
// preserved, so confidences are not necessarily descending.
func (n *Normalizer) Normalize(matches []model.ScoredMatch) []model.NormalizedResult {
	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	out := make([]model.NormalizedResult, 0, len(matches))
	for _, m := range matches {
		c := math.Min(MaxConfidence, m.RawScore*confidenceScale+n.jitter())
		out = append(out, model.NormalizedResult{
			ScoredMatch: m,
			Confidence:  math.Round(c*10) / 10,
		})
	}
	return out
}
