package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/addemup/internal/game"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "addemup",
	})

	fmt.Println(bannerStyle.Render("Starting ♠♥♣♦ Add 'Em Up..."))

	report := game.NewRunner(logger).Run(ctx, os.Args[1:])
	fmt.Println(summary(report))

	fmt.Println(bannerStyle.Render("Game Completed."))
}

func summary(report game.Report) string {
	if report.Err != nil {
		return errorStyle.Render(report.Result)
	}
	return winStyle.Render(report.Result)
}
