// Package game runs one round of Add 'Em Up from the command line through
// to the result file.
//
// Five players each hold five cards. The highest total face value wins
// (A=1, numerals at face, J=11, Q=12, K=13). Players tied on face value are
// separated by suit value (S=4, H=3, D=2, C=1), and players still tied
// share the win.
//
// # Basic Usage
//
//	r := game.NewRunner(logger)
//	report := r.Run(ctx, []string{"--in", "hands.txt", "--out", "result.txt"})
//	if report.Err != nil {
//	    // the result file already holds ERROR
//	}
//
// # Result File
//
// The output file must exist before the run; it is overwritten with one of:
//
//	Alice: 20
//	Alice,Bob:14
//	ERROR
//
// # Deterministic Testing
//
// Inject a quartz mock clock and a working directory:
//
//	r := game.NewRunner(logger, game.WithClock(quartz.NewMock(t)), game.WithWorkdir(t.TempDir()))
package game
