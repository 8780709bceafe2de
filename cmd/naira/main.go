package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/nairakit/naira"
	"github.com/nairakit/naira/internal/config"
	"github.com/nairakit/naira/internal/logger"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "loading config: %v\n", err)
		return 1
	}

	app := &app{cfg: cfg, log: zerolog.Nop()}
	rootCmd := app.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// cfg holds the parsed flag values at this point.
		log := logger.New(app.loggerConfig(stderr))
		log.Error().Err(err).Strs("args", args).Msg("command failed")
		return 1
	}
	return 0
}

type app struct {
	cfg *config.Config
	log zerolog.Logger
}

func (a *app) loggerConfig(out io.Writer) logger.Config {
	return logger.Config{
		Level:  a.cfg.LogLevel,
		Format: a.cfg.LogFormat,
		Out:    out,
	}
}

func (a *app) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "naira",
		Short: "Format and parse Nigerian Naira amounts",
		Long: `A command line interface for rendering amounts as Naira strings
and reading them back. Every amount argument accepts the same input as
the parser, so "₦1,500.50", "1500.5" and "1,500.50" are equivalent.
Use "--" before negative amounts: naira format -- -75.50`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log = logger.New(a.loggerConfig(cmd.ErrOrStderr()))
			a.log.Debug().Str("command", cmd.Name()).Strs("args", args).Msg("running command")
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "Log format (json, console)")

	rootCmd.AddCommand(
		a.amountCmd("format <amount>", "Render an amount in full form, e.g. ₦1,500.50", naira.Format),
		a.amountCmd("compact <amount>", "Render an amount in compact form, e.g. ₦1.5K", naira.FormatCompact),
		a.amountCmd("kobo <amount>", "Convert an amount in naira to kobo", naira.FormatAsKobo),
		a.amountCmd("from-kobo <kobo>", "Render a number of kobo in full form", naira.FormatKobo),
		a.amountCmd("parse <text>", "Parse a currency string to a plain number", func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}),
		a.wordsCmd(),
	)

	return rootCmd
}

// amountCmd returns a command that parses its single argument and prints
// the result of render.
func (a *app) amountCmd(use, short string, render func(float64) string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.parse(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), render(f))
			return nil
		},
	}
}

func (a *app) wordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words <amount>",
		Short: "Spell an amount in English words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.parse(args[0])
			if err != nil {
				return err
			}
			s, err := naira.Words(f)
			if err != nil {
				return fmt.Errorf("spelling %q: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func (a *app) parse(input string) (float64, error) {
	f, err := naira.Parse(input)
	if err != nil {
		return 0, fmt.Errorf("parsing %q: %w", input, err)
	}
	a.log.Debug().Str("input", input).Float64("amount", f).Msg("parsed amount")
	return f, nil
}
