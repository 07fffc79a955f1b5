package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/inputs"
	"github.com/katalvlaran/aoc2023/puzzle"
)

var (
	errNoDays   = errors.New("no days given; pass day numbers or --all")
	errMismatch = errors.New("answers do not match")
)

func parseDays(args []string) ([]int, error) {
	days := make([]int, 0, len(args))
	for _, s := range args {
		d, err := strconv.Atoi(s)
		if err != nil {
			return nil, fmt.Errorf("bad day %q: %w", s, err)
		}
		if _, err := puzzle.Lookup(d); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, nil
}

func registeredDays() []int {
	var days []int
	for _, p := range puzzle.All() {
		days = append(days, p.Day)
	}

	return days
}

// solve loads the input for day and runs its solver.
func (a *app) solve(day int, path string) (puzzle.Puzzle, puzzle.Answer, error) {
	p, err := puzzle.Lookup(day)
	if err != nil {
		return p, puzzle.Answer{}, err
	}
	loc := inputs.New(a.cfg.Inputs)
	loc.In = a.in
	text, origin, err := loc.Load(day, path)
	if err != nil {
		return p, puzzle.Answer{}, err
	}

	start := time.Now()
	ans, err := p.Solve(text)
	if err != nil {
		return p, ans, fmt.Errorf("day %02d: %w", day, err)
	}
	a.logger.Debug("solved",
		zap.Int("day", day),
		zap.String("input", origin),
		zap.Duration("elapsed", time.Since(start)))

	return p, ans, nil
}

func newRunCmd(a *app) *cobra.Command {
	var (
		all   bool
		input string
	)
	cmd := &cobra.Command{
		Use:   "run <day>... | --all",
		Short: "Solve one or more days and print both parts",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if all {
				days = registeredDays()
			}
			if len(days) == 0 {
				return errNoDays
			}
			if input != "" && len(days) != 1 {
				return fmt.Errorf("--input needs exactly one day, got %d", len(days))
			}

			out := cmd.OutOrStdout()
			for _, d := range days {
				p, ans, err := a.solve(d, input)
				if err != nil && !errors.Is(err, puzzle.ErrPart2) {
					return err
				}
				if len(days) > 1 {
					fmt.Fprintf(out, "day %02d: %s\n", p.Day, p.Title)
				}
				if err != nil {
					// Part 1 stands even when part 2 cannot be solved.
					fmt.Fprintf(out, "part1: %d\n", ans.Part1)
					return err
				}
				fmt.Fprintln(out, ans)
			}

			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "solve every registered day")
	cmd.Flags().StringVarP(&input, "input", "i", "", `input file ("-" for stdin)`)

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, p := range puzzle.All() {
				fmt.Fprintf(cmd.OutOrStdout(), "%02d  %s\n", p.Day, p.Title)
			}
		},
	}
}

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify [day...]",
		Short: "Compare answers with the ones recorded in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := parseDays(args)
			if err != nil {
				return err
			}
			if len(days) == 0 {
				for _, d := range registeredDays() {
					if _, ok := a.cfg.Answers[d]; ok {
						days = append(days, d)
					}
				}
			}
			if len(days) == 0 {
				return fmt.Errorf("%w: no answers recorded in %s", errNoDays, a.configPath)
			}

			out := cmd.OutOrStdout()
			failed := 0
			for _, d := range days {
				want, ok := a.cfg.Answers[d]
				if !ok {
					return fmt.Errorf("day %02d: no recorded answer", d)
				}
				_, got, err := a.solve(d, "")
				if err != nil {
					return err
				}
				bad := mismatches(want.Part1, got.Part1, "part1") + mismatches(want.Part2, got.Part2, "part2")
				if bad == "" {
					fmt.Fprintf(out, "day %02d: ok\n", d)
					continue
				}
				failed++
				fmt.Fprintf(out, "day %02d: FAIL%s\n", d, bad)
				a.logger.Warn("answer mismatch", zap.Int("day", d))
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d days", errMismatch, failed, len(days))
			}

			return nil
		},
	}
}

func mismatches(want *int64, got int64, part string) string {
	if want == nil || *want == got {
		return ""
	}

	return fmt.Sprintf(" %s got %d want %d", part, got, *want)
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "aoc", version)
		},
	}
}
