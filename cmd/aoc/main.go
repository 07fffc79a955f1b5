// Command aoc runs the Advent of Code 2023 solvers.
//
//	aoc run 1 5 20          solve days 1, 5 and 20
//	aoc run 7 --input -     solve day 7 on standard input
//	aoc run --all           solve every registered day
//	aoc list                list registered days
//	aoc verify              check answers against aoc.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/aoc2023/config"
	_ "github.com/katalvlaran/aoc2023/days/all"
	"github.com/katalvlaran/aoc2023/trace"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// app carries the state shared by every subcommand.
type app struct {
	out, errOut io.Writer
	in          io.Reader

	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger

	// newLogger builds the logger; tests replace it.
	newLogger func(verbose bool) (*zap.Logger, error)
}

func productionLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	return cfg.Build()
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "aoc",
		Short:         "Advent of Code 2023 solvers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if a.logger, err = a.newLogger(a.verbose); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			trace.SetLogger(a.logger)

			if a.cfg, err = config.Load(a.configPath); err != nil {
				return err
			}
			a.logger.Debug("config loaded",
				zap.String("path", a.configPath),
				zap.String("inputs", a.cfg.Inputs),
				zap.Int("answers", len(a.cfg.Answers)))

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetIn(a.in)

	root.PersistentFlags().StringVar(&a.configPath, "config", config.DefaultPath, "path to the yaml config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRunCmd(a), newListCmd(a), newVerifyCmd(a), newVersionCmd(a))

	return root
}

// run executes the CLI with args, writing answers to out.
func run(out, errOut io.Writer, in io.Reader, args []string) error {
	a := &app{out: out, errOut: errOut, in: in, newLogger: productionLogger}
	root := newRootCmd(a)
	root.SetArgs(args)

	return root.Execute()
}

func main() {
	if err := run(os.Stdout, os.Stderr, os.Stdin, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
