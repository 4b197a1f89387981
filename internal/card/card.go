// Package card models the playing cards found in an Add 'Em Up hand file.
package card

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is returned when a token does not name a legal card.
var ErrInvalidCard = errors.New("invalid card")

// Rank represents a card rank
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the rank as it appears in a hand file
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "10"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Nine {
			return string(rune('0' + int(r)))
		}
		return "?"
	}
}

// Value returns the rank's face value: A=1, numerals at face, J=11, Q=12, K=13.
func (r Rank) Value() int {
	return int(r)
}

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota + 1
	Diamonds
	Hearts
	Spades
)

// String returns the suit letter
func (s Suit) String() string {
	switch s {
	case Spades:
		return "S"
	case Hearts:
		return "H"
	case Diamonds:
		return "D"
	case Clubs:
		return "C"
	default:
		return "?"
	}
}

// Value returns the tie-break weight of the suit: S=4, H=3, D=2, C=1.
func (s Suit) Value() int {
	return int(s)
}

// Card is an immutable rank and suit pair.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns the card in hand-file notation (e.g. "10S", "AH")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Parse parses a 2 or 3 character token. The last character is the suit
// (case-insensitive) and the rest is the rank (case-sensitive).
func Parse(token string) (Card, error) {
	if len(token) < 2 || len(token) > 3 {
		return Card{}, fmt.Errorf("%w: %q must be 2 or 3 characters", ErrInvalidCard, token)
	}

	split := len(token) - 1
	rank, err := parseRank(token[:split])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, token, err)
	}
	suit, err := parseSuit(token[split:])
	if err != nil {
		return Card{}, fmt.Errorf("%w: %q: %v", ErrInvalidCard, token, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

func parseRank(s string) (Rank, error) {
	switch s {
	case "A":
		return Ace, nil
	case "10":
		return Ten, nil
	case "J":
		return Jack, nil
	case "Q":
		return Queen, nil
	case "K":
		return King, nil
	}
	if len(s) == 1 && s[0] >= '2' && s[0] <= '9' {
		return Rank(s[0] - '0'), nil
	}
	return 0, fmt.Errorf("unknown rank %q", s)
}

func parseSuit(s string) (Suit, error) {
	switch strings.ToUpper(s) {
	case "S":
		return Spades, nil
	case "H":
		return Hearts, nil
	case "D":
		return Diamonds, nil
	case "C":
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", s)
	}
}
