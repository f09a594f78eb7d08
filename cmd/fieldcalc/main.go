package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Davincible/fieldcalc/internal/cli"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	rootCmd := cli.NewRootCommand(fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit))

	if err := rootCmd.Execute(); err != nil {
		slog.Debug("Command execution failed", "error", err)
		cli.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
