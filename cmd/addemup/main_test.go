package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/addemup/internal/game"
)

func TestSummaryShowsResult(t *testing.T) {
	assert.Contains(t, summary(game.Report{Result: "Alice: 20"}), "Alice: 20")
	assert.Contains(t, summary(game.Report{Result: "ERROR", Err: errors.New("boom")}), "ERROR")
}
