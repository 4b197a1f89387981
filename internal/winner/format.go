package winner

import (
	"strconv"
	"strings"
)

// ErrorMarker is written in place of a result when the run is invalid.
const ErrorMarker = "ERROR"

// Format renders an outcome exactly as the output file expects:
//
//	ERROR
//	Alice: 20
//	Alice,Bob,Carol:20
//
// A tie has no space before the score, which is taken from the first entry.
func Format(o Outcome) string {
	switch {
	case o.Kind == SingleWinner && len(o.Winners) == 1:
		w := o.Winners[0]
		return w.Player + ": " + strconv.Itoa(w.Score)
	case o.Kind == TiedWinners && len(o.Winners) > 0:
		var b strings.Builder
		for i, w := range o.Winners {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(w.Player)
		}
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(o.Winners[0].Score))
		return b.String()
	default:
		return ErrorMarker
	}
}
