package winner

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/addemup/internal/card"
	"github.com/lox/addemup/internal/hand"
	"github.com/lox/addemup/internal/score"
)

// ErrResolve wraps any failure met while scoring or comparing hands.
var ErrResolve = errors.New("resolve failed")

// Resolver runs the two-phase cascade: rank scores first, then suit scores
// over the players still tied.
type Resolver struct {
	logger  *log.Logger
	workers int
}

// NewResolver creates a resolver. workers bounds scoring concurrency; zero
// scores every hand in its own goroutine.
func NewResolver(logger *log.Logger, workers int) *Resolver {
	return &Resolver{
		logger:  logger.WithPrefix("resolver"),
		workers: workers,
	}
}

// Resolve judges hands. It never panics: any failure comes back as an
// Invalid outcome together with an error wrapping ErrResolve.
func (r *Resolver) Resolve(ctx context.Context, hands hand.Hands) (outcome Outcome, err error) {
	defer func() {
		if p := recover(); p != nil {
			outcome, err = InvalidOutcome(), fmt.Errorf("%w: panic: %v", ErrResolve, p)
		}
	}()

	if len(hands) == 0 {
		return InvalidOutcome(), fmt.Errorf("%w: no hands", ErrResolve)
	}

	rankScores, err := score.ScoreAll(ctx, hands, card.RankValuation, r.workers)
	if err != nil {
		return InvalidOutcome(), fmt.Errorf("%w: %w", ErrResolve, err)
	}
	leaders := FindMaximal(rankScores)
	r.logger.Debug("Rank phase complete", "scores", rankScores, "leaders", len(leaders))
	if len(leaders) == 1 {
		return outcomeFor(leaders), nil
	}

	keep := make(map[string]bool, len(leaders))
	for _, e := range leaders {
		keep[e.Player] = true
	}
	suitScores, err := score.ScoreAll(ctx, hands.Only(keep), card.SuitValuation, r.workers)
	if err != nil {
		return InvalidOutcome(), fmt.Errorf("%w: %w", ErrResolve, err)
	}
	finalists := FindMaximal(suitScores)
	r.logger.Debug("Suit phase complete", "scores", suitScores, "finalists", len(finalists))

	return outcomeFor(finalists), nil
}
