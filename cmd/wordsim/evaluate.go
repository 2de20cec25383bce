package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsim/internal/app"
	"github.com/heartmarshall/wordsim/internal/dataset"
	"github.com/heartmarshall/wordsim/internal/report"
)

func newEvaluateCmd(c *cli) *cobra.Command {
	var (
		pairsPath string
		measure   string
		format    string
		outDir    string
	)

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Correlate similarity measures with a human-rated pair dataset",
		Long: `evaluate scores every pair of a CSV dataset (word1, word2, score) with each
measure, drops pairs whose similarity is undefined, computes the rank
correlation with the human scores and writes one plot description per measure.`,
		Example: `  wordsim evaluate --pairs wordsim353.csv --measure all --out reports/`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			measures, err := parseMeasures(measure, c.cfg.Analysis.Measure())
			if err != nil {
				return err
			}
			if format == "" {
				format = c.cfg.Analysis.ReportFormat
			}
			format = strings.ToLower(format)
			if format != report.FormatJSON && format != report.FormatYAML {
				return fmt.Errorf("--format must be json or yaml (got %q)", format)
			}

			pairs, err := dataset.LoadPairs(pairsPath)
			if err != nil {
				return err
			}

			engine, err := app.NewEngine(cmd.Context(), c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer engine.Close()

			reports, err := app.NewEvaluator(c.logger, engine.Similarity).Evaluate(pairs, measures)
			if err != nil {
				return err
			}

			printEvaluation(c, reports)
			return writeReports(c, reports, outDir, format)
		},
	}

	cmd.Flags().StringVar(&pairsPath, "pairs", "", "CSV file with word1, word2, score columns (required)")
	cmd.Flags().StringVar(&measure, "measure", "all", "path, resnik, lin, a comma-separated list or all")
	cmd.Flags().StringVar(&format, "format", "", "render request encoding: json or yaml (default from config)")
	cmd.Flags().StringVar(&outDir, "out", ".", "directory for the render requests")
	_ = cmd.MarkFlagRequired("pairs")
	return cmd
}

func printEvaluation(c *cli, reports []app.MeasureReport) {
	table := tablewriter.NewWriter(c.out)
	table.SetHeader([]string{"Measure", "Pairs", "Undefined", "Rank corr", "P-value", "Slope", "Intercept", "R", "Note"})
	table.SetAutoFormatHeaders(false)

	for _, rep := range reports {
		row := []string{rep.Measure.String(), strconv.Itoa(rep.Total), strconv.Itoa(rep.Undefined)}
		if rep.Err != nil {
			row = append(row, "-", "-", "-", "-", "-", rep.Err.Error())
		} else {
			res := rep.Result
			row = append(row,
				formatStat(res.RankCorrelation),
				strconv.FormatFloat(res.PValue, 'g', 4, 64),
				formatStat(res.Regression.Slope),
				formatStat(res.Regression.Intercept),
				formatStat(res.Regression.RValue),
				"",
			)
		}
		table.Append(row)
	}

	table.Render()
}

func formatStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// writeReports writes the render request of every analyzed measure to
// <dir>/<measure>_similarity.<ext>.
func writeReports(c *cli, reports []app.MeasureReport, dir, format string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	for _, rep := range reports {
		if rep.Err != nil {
			continue
		}
		path := filepath.Join(dir, rep.Measure.String()+"_similarity"+report.Extension(format))
		if err := writeReport(path, rep, format); err != nil {
			return err
		}
		c.logger.Info("render request written",
			slog.String("measure", rep.Measure.String()),
			slog.String("path", path),
		)
	}
	return nil
}

func writeReport(path string, rep app.MeasureReport, format string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	if err := report.Encode(f, rep.Render, format); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
