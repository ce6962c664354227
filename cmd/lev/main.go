// Command lev is a thin CLI front end over the levenshtein library:
// distance, edit scripts, ratios, and median synthesis over argv
// strings, plus a batch mode reading string pairs from stdin. It holds
// no state between invocations and touches no files, sockets, or
// environment beyond its own flags and standard streams.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	levenshtein "github.com/cristaloleg/levdist"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:  "lev",
		Usage: "Levenshtein distance, edit scripts, and median synthesis",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"v"},
				Usage:   "log debug details (input sizes, result counts)",
			},
		},
		Commands: []*cli.Command{
			distanceCommand(),
			ratioCommand(),
			editopsCommand(),
			greedyMedianCommand(),
			medianImproveCommand(),
			setMedianCommand(),
			seqDistanceCommand(),
			setDistanceCommand(),
			batchCommand(),
		},
	}
}

func newLogger(cmd *cli.Command) *zap.Logger {
	if !cmd.Bool("debug") {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func distanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "distance",
		Usage:     "Edit distance between two strings",
		ArgsUsage: "S1 S2",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "xcost", Usage: "substitution costs 2 instead of 1"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("distance requires exactly two arguments")
			}
			logger := newLogger(cmd)
			defer logger.Sync()
			xcost := cmd.Bool("xcost")
			logger.Debug("computing edit distance", zap.Int("len1", len(args[0])), zap.Int("len2", len(args[1])), zap.Bool("xcost", xcost))
			fmt.Println(levenshtein.Distance(args[0], args[1], xcost))
			return nil
		},
	}
}

func ratioCommand() *cli.Command {
	return &cli.Command{
		Name:      "ratio",
		Usage:     "Similarity ratio in [0,1] between two strings",
		ArgsUsage: "S1 S2",
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("ratio requires exactly two arguments")
			}
			fmt.Println(levenshtein.Ratio(args[0], args[1]))
			return nil
		},
	}
}

func editopsCommand() *cli.Command {
	return &cli.Command{
		Name:      "editops",
		Usage:     "Minimal edit script transforming S1 into S2",
		ArgsUsage: "S1 S2",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "opcodes", Usage: "print grouped opcode blocks instead of per-symbol ops"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 2 {
				return fmt.Errorf("editops requires exactly two arguments")
			}
			logger := newLogger(cmd)
			defer logger.Sync()
			if cmd.Bool("opcodes") {
				bops := levenshtein.FindOpCodes(args[0], args[1])
				logger.Debug("grouped into opcodes", zap.Int("count", len(bops)))
				for _, b := range bops {
					fmt.Println(b)
				}
				return nil
			}
			ops := levenshtein.FindEditOps(args[0], args[1])
			logger.Debug("found edit script", zap.Int("count", len(ops)))
			for _, op := range ops {
				fmt.Println(op)
			}
			return nil
		},
	}
}

func parseWeights(n int, raw string) ([]float64, error) {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = 1
	}
	if raw == "" {
		return weights, nil
	}
	parts := splitComma(raw)
	if len(parts) != n {
		return nil, fmt.Errorf("expected %d weights, got %d", n, len(parts))
	}
	for i, p := range parts {
		var w float64
		if _, err := fmt.Sscanf(p, "%g", &w); err != nil {
			return nil, fmt.Errorf("invalid weight %q: %w", p, err)
		}
		weights[i] = w
	}
	return weights, nil
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ',' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	out = append(out, s[start:])
	return out
}

func greedyMedianCommand() *cli.Command {
	return &cli.Command{
		Name:      "median",
		Usage:     "Approximate generalized median of the given strings",
		ArgsUsage: "S...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "weights", Usage: "comma-separated weights, one per string (default: all 1)"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("median requires at least one string")
			}
			weights, err := parseWeights(len(args), cmd.String("weights"))
			if err != nil {
				return err
			}
			logger := newLogger(cmd)
			defer logger.Sync()
			logger.Debug("running greedy median", zap.Int("inputs", len(args)))
			fmt.Println(levenshtein.GreedyMedian(args, weights))
			return nil
		},
	}
}

func medianImproveCommand() *cli.Command {
	return &cli.Command{
		Name:      "median-improve",
		Usage:     "Perturb a candidate median toward lower total distance",
		ArgsUsage: "CANDIDATE S...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "weights", Usage: "comma-separated weights, one per string (default: all 1)"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) < 2 {
				return fmt.Errorf("median-improve requires a candidate plus at least one string")
			}
			candidate, strs := args[0], args[1:]
			weights, err := parseWeights(len(strs), cmd.String("weights"))
			if err != nil {
				return err
			}
			logger := newLogger(cmd)
			defer logger.Sync()
			logger.Debug("running median improve", zap.Int("inputs", len(strs)))
			fmt.Println(levenshtein.MedianImprove(candidate, strs, weights))
			return nil
		},
	}
}

func setMedianCommand() *cli.Command {
	return &cli.Command{
		Name:      "set-median",
		Usage:     "Input string minimizing total distance to all others",
		ArgsUsage: "S...",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "weights", Usage: "comma-separated weights, one per string (default: all 1)"},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) == 0 {
				return fmt.Errorf("set-median requires at least one string")
			}
			weights, err := parseWeights(len(args), cmd.String("weights"))
			if err != nil {
				return err
			}
			fmt.Println(levenshtein.SetMedian(args, weights))
			return nil
		},
	}
}

func seqDistanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "seq-distance",
		Usage:     "Double-Levenshtein distance between two sequences of strings, separated by --",
		ArgsUsage: "A... -- B...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s1, s2, err := splitArgsOnSeparator(cmd.Args().Slice())
			if err != nil {
				return err
			}
			fmt.Println(levenshtein.SeqDistance(s1, s2))
			return nil
		},
	}
}

func setDistanceCommand() *cli.Command {
	return &cli.Command{
		Name:      "set-distance",
		Usage:     "Assignment-based distance between two sets of strings, separated by --",
		ArgsUsage: "A... -- B...",
		Action: func(_ context.Context, cmd *cli.Command) error {
			s1, s2, err := splitArgsOnSeparator(cmd.Args().Slice())
			if err != nil {
				return err
			}
			fmt.Println(levenshtein.SetDistance(s1, s2))
			return nil
		},
	}
}

func splitArgsOnSeparator(args []string) (a, b []string, err error) {
	for i, s := range args {
		if s == "--" {
			return args[:i], args[i+1:], nil
		}
	}
	return nil, nil, fmt.Errorf("expected a -- separator between the two groups of strings")
}
