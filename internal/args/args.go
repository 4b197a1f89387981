// Package args parses the addemup command line. The only accepted shape is
// exactly `--in <path> --out <path>`, in either order.
package args

import (
	"errors"
	"fmt"
	"io"

	"github.com/alecthomas/kong"
)

// ErrUsage is returned for any command line other than --in X --out Y.
var ErrUsage = errors.New("usage: addemup --in <input> --out <output>")

const (
	inFlag  = "--in"
	outFlag = "--out"
)

// Args holds the parsed command line.
type Args struct {
	In     string `name:"in" required:"" help:"Path to the hand file"`
	Out    string `name:"out" required:"" help:"Path to an existing result file"`
	Config string `name:"config" env:"ADDEMUP_CONFIG" hidden:"" help:"Optional HCL settings file"`
}

// Parse parses argv (without the program name).
func Parse(argv []string) (Args, error) {
	var a Args
	if len(argv) != 4 {
		return a, fmt.Errorf("%w: got %d arguments, want 4", ErrUsage, len(argv))
	}

	parser, err := kong.New(&a,
		kong.Name("addemup"),
		kong.Description("Score five hands of Add 'Em Up and write the winner"),
		kong.NoDefaultHelp(),
		kong.Writers(io.Discard, io.Discard),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return Args{}, fmt.Errorf("failed to build parser: %w", err)
	}
	if _, err := parser.Parse(argv); err != nil {
		return Args{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	if a.In == "" || a.Out == "" {
		return Args{}, fmt.Errorf("%w: empty path", ErrUsage)
	}
	return a, nil
}

// OutputPath returns the value following --out even when argv as a whole is
// invalid, so a failed run can still report ERROR. ok is false when no
// usable value is present.
func OutputPath(argv []string) (path string, ok bool) {
	for i, arg := range argv {
		if arg == outFlag && i+1 < len(argv) {
			next := argv[i+1]
			if next == "" || next == inFlag || next == outFlag {
				return "", false
			}
			return next, true
		}
	}
	return "", false
}
