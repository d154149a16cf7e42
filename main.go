package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/rocketscienceinc/tictactoe-oracle/internal/cli"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/config"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/oracle"
	"github.com/rocketscienceinc/tictactoe-oracle/internal/usecase"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the CLI.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := run(logger, conf); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, conf *config.Config) error {
	orc := oracle.New()
	manager := usecase.NewSessionManager(logger, orc)

	root := cli.Root(conf, manager, orc)
	root.SetArgs(os.Args[1:])

	return root.Execute()
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	conf, err := config.Load(filepath.Join(baseDir, "config.yml"))
	if err != nil {
		panic(fmt.Errorf("failed to load config: %w", err))
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
