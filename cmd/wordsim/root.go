package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordsim/internal/app"
	"github.com/heartmarshall/wordsim/internal/config"
	"github.com/heartmarshall/wordsim/internal/domain"
)

// cli holds state shared by the subcommands once the root has loaded the
// configuration.
type cli struct {
	out     io.Writer
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &cli{out: out}

	root := &cobra.Command{
		Use:   "wordsim",
		Short: "WordNet noun similarity and correlation with human judgements",
		Long: `wordsim scores the semantic similarity of English nouns over the WordNet
hypernym taxonomy (path, Resnik and Lin measures), correlates the scores of a
word-pair dataset with human ratings and serves both over HTTP.`,
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" {
				return nil
			}
			return c.loadConfig()
		},
	}
	root.SetOut(out)
	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default is $CONFIG_PATH or ./config.yaml)")

	root.AddCommand(
		newSimilarityCmd(c),
		newEvaluateCmd(c),
		newServeCmd(c),
	)
	return root
}

func (c *cli) loadConfig() error {
	var (
		cfg *config.Config
		err error
	)
	if c.cfgFile != "" {
		cfg, err = config.LoadFile(c.cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	c.cfg = cfg
	c.logger = app.NewLogger(cfg.Log)
	return nil
}

// parseMeasures accepts "all", a single measure or a comma-separated list.
// An empty value selects fallback.
func parseMeasures(s string, fallback domain.Measure) ([]domain.Measure, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "":
		return []domain.Measure{fallback}, nil
	case "all":
		return domain.AllMeasures, nil
	}

	var out []domain.Measure
	for _, part := range strings.Split(s, ",") {
		m, err := domain.ParseMeasure(part)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}
