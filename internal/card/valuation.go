package card

import "fmt"

// Valuation selects which of a card's two numeric values is scored.
type Valuation int

const (
	// RankValuation scores face value and decides the first phase.
	RankValuation Valuation = iota
	// SuitValuation scores suit weight and only breaks ties.
	SuitValuation
)

func (v Valuation) String() string {
	switch v {
	case RankValuation:
		return "rank"
	case SuitValuation:
		return "suit"
	default:
		return fmt.Sprintf("Valuation(%d)", int(v))
	}
}

// Value returns the card's value under v. It panics on an unknown valuation.
func (c Card) Value(v Valuation) int {
	switch v {
	case RankValuation:
		return c.Rank.Value()
	case SuitValuation:
		return c.Suit.Value()
	default:
		panic(fmt.Sprintf("card: unknown valuation %d", int(v)))
	}
}
