package main

import (
	"errors"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsim/internal/app"
	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/similarity"
)

func newSimilarityCmd(c *cli) *cobra.Command {
	var (
		measure string
		explain bool
	)

	cmd := &cobra.Command{
		Use:   "similarity <word-a> <word-b>",
		Short: "Score the similarity of two nouns",
		Example: `  wordsim similarity dog cat
  wordsim similarity car automobile --measure all --explain`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			measures, err := parseMeasures(measure, c.cfg.Analysis.Measure())
			if err != nil {
				return err
			}

			engine, err := app.NewEngine(cmd.Context(), c.cfg, c.logger)
			if err != nil {
				return err
			}
			defer engine.Close()

			return printSimilarity(c, engine.Similarity, args[0], args[1], measures, explain)
		},
	}

	cmd.Flags().StringVar(&measure, "measure", "", "path, resnik, lin or all (default from config)")
	cmd.Flags().BoolVar(&explain, "explain", false, "show the sense pair that produced each score")
	return cmd
}

func printSimilarity(c *cli, svc *similarity.Service, wordA, wordB string, measures []domain.Measure, explain bool) error {
	table := tablewriter.NewWriter(c.out)
	header := []string{"Measure", "Score"}
	if explain {
		header = append(header, "Sense A", "Sense B")
	}
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)

	for _, m := range measures {
		row := []string{m.String()}
		match, err := svc.BestMatch(wordA, wordB, m)
		switch {
		case errors.Is(err, domain.ErrUnknownWord):
			return err
		case errors.Is(err, domain.ErrUndefinedSimilarity):
			row = append(row, "undefined")
			if explain {
				row = append(row, "-", "-")
			}
		case err != nil:
			return err
		default:
			row = append(row, strconv.FormatFloat(similarity.RoundScore(match.Score), 'f', -1, 64))
			if explain {
				row = append(row, match.SenseA.ID, match.SenseB.ID)
			}
		}
		table.Append(row)
	}

	table.Render()
	return nil
}
