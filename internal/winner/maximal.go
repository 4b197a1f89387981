package winner

import "github.com/lox/addemup/internal/score"

// FindMaximal returns every entry sharing the highest score, in the order
// they were met. A higher score restarts the set; an equal one joins it.
func FindMaximal(scores score.PlayerScores) score.PlayerScores {
	var best score.PlayerScores
	for _, e := range scores {
		if len(best) == 0 {
			best = score.PlayerScores{e}
			continue
		}
		// every member holds the same score, so the first is representative
		switch {
		case e.Score > best[0].Score:
			best = score.PlayerScores{e}
		case e.Score == best[0].Score:
			best = append(best, e)
		}
	}
	return best
}
