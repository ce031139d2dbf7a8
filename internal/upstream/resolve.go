package upstream

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bilgisen/uknews/internal/metrics"
)

// Candidate is one named way of obtaining a T.
type Candidate[T any] struct {
	Name  string
	Fetch func(ctx context.Context) (T, error)
}

// FirstSuccess tries the candidates in order and returns the first usable
// value with the name of the candidate that produced it. Later candidates
// are never invoked once one succeeds. When all fail the error is a
// *NotFoundError if every failure was a definitive absence and a
// *TransportError otherwise.
func FirstSuccess[T any](ctx context.Context, resource string, cands []Candidate[T]) (T, string, error) {
	var zero T
	failures := make([]*CandidateError, 0, len(cands))

	for _, c := range cands {
		if err := ctx.Err(); err != nil {
			return zero, "", fmt.Errorf("%s: %w", resource, err)
		}

		start := time.Now()
		v, err := c.Fetch(ctx)
		elapsed := time.Since(start).Seconds()

		if err == nil {
			metrics.RecordUpstream(resource, "ok", elapsed)
			log.Debug().
				Str("resource", resource).
				Str("candidate", c.Name).
				Float64("seconds", elapsed).
				Msg("candidate succeeded")
			return v, c.Name, nil
		}

		var ce *CandidateError
		if !errors.As(err, &ce) {
			ce = failed(0, err)
		}
		ce.Candidate = c.Name
		failures = append(failures, ce)

		outcome := "failed"
		if ce.Absent {
			outcome = "absent"
		}
		metrics.RecordUpstream(resource, outcome, elapsed)
		log.Warn().
			Str("resource", resource).
			Str("candidate", c.Name).
			Str("outcome", outcome).
			Int("status", ce.Status).
			Err(ce.Err).
			Msg("candidate failed")
	}

	return zero, "", exhausted(resource, failures)
}
