package game

import "errors"

// Failure kinds. Every one of them is reported to the result file as the
// same ERROR marker; they only differ in the logs.
var (
	ErrArgument   = errors.New("argument error")
	ErrPath       = errors.New("path error")
	ErrFormat     = errors.New("format error")
	ErrUnexpected = errors.New("unexpected error")
)

// KindOf names the failure kind of err for logging.
func KindOf(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrArgument):
		return "argument"
	case errors.Is(err, ErrPath):
		return "path"
	case errors.Is(err, ErrFormat):
		return "format"
	default:
		return "unexpected"
	}
}
