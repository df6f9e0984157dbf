package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/advent-of-code/internal/config"
	"github.com/povarna/advent-of-code/internal/setup"
	"github.com/povarna/advent-of-code/internal/setup/logger"
	"github.com/spf13/cobra"
)

func main() {
	envErr := godotenv.Load()
	settings := setup.LoadSettings()

	if envErr != nil {
		l := logger.New(settings.LogLevel, os.Stderr)
		l.Debug().Msg("No .env file found, using environment variables")
	}

	if err := execute(settings, os.Stdin, os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// reportedError is an error that run has already logged.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// execute runs the root command with args. Errors raised by cobra before the
// command runs (bad flag values, unknown flags, extra args) are logged here.
func execute(settings *setup.Settings, stdin io.Reader, stdout, stderr io.Writer, args []string) error {
	cmd := newRootCmd(settings, stdin, stdout, stderr)
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	var reported *reportedError
	if err != nil && !errors.As(err, &reported) {
		l := logger.New(settings.LogLevel, stderr)
		l.Error().Err(err).Msg("Invalid command line, see 'aoc --help'")
	}
	return err
}

type options struct {
	day        int
	input      string
	configPath string
	logLevel   string
}

func newRootCmd(settings *setup.Settings, stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{
		configPath: settings.ConfigPath,
		logLevel:   settings.LogLevel,
	}

	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Solve Advent of Code puzzles",
		Long: `Reads each puzzle input, solves both parts and prints the answers.
Without --day every solved day of the configured year is run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts, stdin, stdout, stderr)
		},
	}

	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().IntVarP(&opts.day, "day", "d", 0, "Day to solve, 0 solves every day")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input file path, '-' reads stdin (requires --day)")
	cmd.Flags().StringVar(&opts.configPath, "config", opts.configPath, "Puzzle configuration file")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "Log level: debug, info, warn, error")

	return cmd
}

func run(opts *options, stdin io.Reader, stdout, stderr io.Writer) error {
	startTime := time.Now()
	log := logger.New(opts.logLevel, stderr)

	err := func() error {
		if opts.day < 0 || opts.day > 25 {
			return fmt.Errorf("day must be between 1 and 25, got %d", opts.day)
		}
		if opts.input != "" && opts.day == 0 {
			return errors.New("--input requires --day")
		}

		cfg, err := config.Load(opts.configPath)
		if err != nil {
			return err
		}

		deps, err := setup.Wire(cfg, stdin, stdout, &log)
		if err != nil {
			return fmt.Errorf("wire dependencies: %w", err)
		}

		puzzles, err := deps.Select(opts.day)
		if err != nil {
			return err
		}
		if opts.input != "" {
			puzzles[0].Input = opts.input
		}

		answers, err := deps.Runner.RunAll(puzzles)
		if err != nil {
			return err
		}

		log.Info().
			Int("answers", len(answers)).
			Dur("duration", time.Since(startTime)).
			Msg("Processing complete")
		return nil
	}()

	if err != nil {
		log.Error().Err(err).Msg("Run failed")
		return &reportedError{err: err}
	}
	return nil
}
