package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	levenshtein "github.com/cristaloleg/levdist"
)

// batchResult is one line of batch mode's JSON output. RunID is the
// same for every line of a single invocation, so output from several
// concurrent `lev batch` processes piped into a shared log can be
// told apart downstream.
type batchResult struct {
	RunID    string  `json:"run_id"`
	Line     int     `json:"line"`
	S1       string  `json:"s1"`
	S2       string  `json:"s2"`
	Distance int     `json:"distance"`
	Ratio    float64 `json:"ratio"`
}

func batchCommand() *cli.Command {
	return &cli.Command{
		Name:  "batch",
		Usage: "Read tab-separated string pairs from stdin, emit one JSON result line per pair",
		Action: func(_ context.Context, cmd *cli.Command) error {
			logger := newLogger(cmd)
			defer logger.Sync()
			runID := uuid.NewString()
			logger.Debug("starting batch run", zap.String("run_id", runID))
			return runBatch(os.Stdin, os.Stdout, runID)
		},
	}
}

func runBatch(in io.Reader, out io.Writer, runID string) error {
	scanner := bufio.NewScanner(in)
	enc := json.NewEncoder(out)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			return fmt.Errorf("line %d: expected two tab-separated fields", lineNo)
		}
		s1, s2 := fields[0], fields[1]
		if err := enc.Encode(batchResult{
			RunID:    runID,
			Line:     lineNo,
			S1:       s1,
			S2:       s2,
			Distance: levenshtein.Distance(s1, s2, false),
			Ratio:    levenshtein.Ratio(s1, s2),
		}); err != nil {
			return err
		}
	}
	return scanner.Err()
}
