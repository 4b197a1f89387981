// Package score reduces hands to integer scores under a card valuation.
package score

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lox/addemup/internal/card"
	"github.com/lox/addemup/internal/hand"
)

// Entry is one player's score in a single valuation pass.
type Entry struct {
	Player string
	Score  int
}

// PlayerScores holds one entry per player in hand order. Each pass builds a
// fresh value and nothing mutates it afterwards.
type PlayerScores []Entry

// Get returns the score recorded for player.
func (ps PlayerScores) Get(player string) (int, bool) {
	for _, e := range ps {
		if e.Player == player {
			return e.Score, true
		}
	}
	return 0, false
}

// Score sums the value of every card in h under v.
func Score(h hand.Hand, v card.Valuation) int {
	total := 0
	for _, c := range h.Cards {
		total += c.Value(v)
	}
	return total
}

// ScoreAll scores every hand concurrently. workers bounds the number of
// goroutines; zero or less runs one per hand. Each worker writes only its
// own slot so the result needs no locking.
func ScoreAll(ctx context.Context, hands hand.Hands, v card.Valuation, workers int) (PlayerScores, error) {
	scores := make(PlayerScores, len(hands))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, h := range hands {
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("scoring %s for %q: %v", v, h.Player, r)
				}
			}()
			if err := ctx.Err(); err != nil {
				return err
			}
			scores[i] = Entry{Player: h.Player, Score: Score(h, v)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}
