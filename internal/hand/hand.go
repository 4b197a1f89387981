// Package hand validates an Add 'Em Up input file and turns it into the
// read-only set of player hands every later phase works from.
package hand

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/addemup/internal/card"
)

const (
	// Players is the number of lines (and hands) a valid file holds.
	Players = 5
	// Size is the number of cards in every hand.
	Size = 5
)

// ErrInvalidInput is returned for any violation of the file format.
var ErrInvalidInput = errors.New("invalid input")

// Hand is one player's ordered five cards.
type Hand struct {
	Player string
	Cards  [Size]card.Card
}

// String renders the hand back in file notation
func (h Hand) String() string {
	tokens := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		tokens[i] = c.String()
	}
	return h.Player + ":" + strings.Join(tokens, ",")
}

// Hands is the validated hand set in input order.
type Hands []Hand

// Players returns the player names in input order
func (hs Hands) Players() []string {
	names := make([]string, len(hs))
	for i, h := range hs {
		names[i] = h.Player
	}
	return names
}

// Only returns the hands whose player is in keep, preserving input order.
func (hs Hands) Only(keep map[string]bool) Hands {
	out := make(Hands, 0, len(keep))
	for _, h := range hs {
		if keep[h.Player] {
			out = append(out, h)
		}
	}
	return out
}

// Validate checks the whole file and returns its hands. Validity is all or
// nothing: any bad line fails the file and no hands are returned.
func Validate(lines []string) (Hands, error) {
	if len(lines) != Players {
		return nil, fmt.Errorf("%w: want %d lines, got %d", ErrInvalidInput, Players, len(lines))
	}

	seenLines := make(map[string]int, len(lines))
	for i, line := range lines {
		if prev, ok := seenLines[line]; ok {
			return nil, fmt.Errorf("%w: line %d duplicates line %d", ErrInvalidInput, i+1, prev+1)
		}
		seenLines[line] = i
	}

	hands := make(Hands, 0, len(lines))
	seenPlayers := make(map[string]bool, len(lines))
	seenCards := make(map[[Size]card.Card]string, len(lines))

	for i, line := range lines {
		h, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		if seenPlayers[h.Player] {
			return nil, fmt.Errorf("%w: line %d: player %q appears twice", ErrInvalidInput, i+1, h.Player)
		}
		if other, ok := seenCards[h.Cards]; ok {
			return nil, fmt.Errorf("%w: line %d: hand of %q repeats the hand of %q", ErrInvalidInput, i+1, h.Player, other)
		}
		seenPlayers[h.Player] = true
		seenCards[h.Cards] = h.Player
		hands = append(hands, h)
	}

	return hands, nil
}

func parseLine(line string) (Hand, error) {
	parts := strings.Split(line, ":")
	if len(parts) != 2 {
		return Hand{}, fmt.Errorf("%w: want name:cards, got %q", ErrInvalidInput, line)
	}
	name := parts[0]
	if name == "" {
		return Hand{}, fmt.Errorf("%w: missing player name", ErrInvalidInput)
	}

	tokens := strings.Split(parts[1], ",")
	if len(tokens) != Size {
		return Hand{}, fmt.Errorf("%w: player %q has %d cards, want %d", ErrInvalidInput, name, len(tokens), Size)
	}

	h := Hand{Player: name}
	for i, token := range tokens {
		c, err := card.Parse(token)
		if err != nil {
			return Hand{}, fmt.Errorf("%w: player %q: %w", ErrInvalidInput, name, err)
		}
		h.Cards[i] = c
	}
	return h, nil
}
