// Package winner decides who wins a validated Add 'Em Up table and renders
// the verdict in the output file format.
package winner

import "github.com/lox/addemup/internal/score"

// Kind tags the shape of an Outcome.
type Kind int

const (
	Invalid Kind = iota
	SingleWinner
	TiedWinners
)

func (k Kind) String() string {
	switch k {
	case SingleWinner:
		return "single"
	case TiedWinners:
		return "tied"
	default:
		return "invalid"
	}
}

// Outcome is the result of one run. Winners is empty for Invalid, holds one
// entry for SingleWinner, and holds every tied player in discovery order
// (all sharing one score) for TiedWinners.
type Outcome struct {
	Kind    Kind
	Winners []score.Entry
}

// InvalidOutcome reports that the input could not be judged.
func InvalidOutcome() Outcome {
	return Outcome{Kind: Invalid}
}

func outcomeFor(finalists score.PlayerScores) Outcome {
	switch len(finalists) {
	case 0:
		return InvalidOutcome()
	case 1:
		return Outcome{Kind: SingleWinner, Winners: []score.Entry{finalists[0]}}
	default:
		return Outcome{Kind: TiedWinners, Winners: append([]score.Entry(nil), finalists...)}
	}
}
