package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordsim/internal/adapter/postgres"
	"github.com/heartmarshall/wordsim/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/wordsim/internal/config"
	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/seeder/icfile"
	"github.com/heartmarshall/wordsim/internal/seeder/wordnet"
	"github.com/heartmarshall/wordsim/internal/similarity"
	"github.com/heartmarshall/wordsim/internal/taxonomy"
)

// LexiconStore is the read side of the taxonomy store.
// Implemented by lexicon.Repo.
type LexiconStore interface {
	LoadLexicon(ctx context.Context) (domain.Lexicon, error)
	LoadICCounts(ctx context.Context) (domain.ICCounts, error)
}

var _ LexiconStore = (*lexicon.Repo)(nil)

// Engine bundles the loaded graph and the services built on it.
type Engine struct {
	Graph      *taxonomy.Graph
	Similarity *similarity.Service
	// Pool is nil for the file taxonomy source.
	Pool *pgxpool.Pool
}

// NewEngine loads the taxonomy from the configured source and builds the
// similarity service over it.
func NewEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Engine, error) {
	start := time.Now()

	var (
		g    *taxonomy.Graph
		pool *pgxpool.Pool
		err  error
	)
	switch cfg.Taxonomy.Source {
	case config.SourcePostgres:
		pool, err = postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		g, err = LoadGraphFromStore(ctx, logger, lexicon.New(pool))
		if err != nil {
			pool.Close()
			return nil, err
		}
	default:
		g, err = LoadGraphFromFiles(logger, cfg.Taxonomy.WordNetPath, cfg.Taxonomy.ICPath)
		if err != nil {
			return nil, err
		}
	}

	st := g.Stats()
	logger.Info("taxonomy loaded",
		slog.String("source", cfg.Taxonomy.Source),
		slog.Int("synsets", st.Synsets),
		slog.Int("lemmas", st.Lemmas),
		slog.Int("hypernyms", st.Hypernyms),
		slog.Int("ic_entries", st.ICEntries),
		slog.Duration("duration", time.Since(start)),
	)

	return &Engine{
		Graph:      g,
		Similarity: similarity.NewService(logger, g),
		Pool:       pool,
	}, nil
}

// Close releases the database pool, if any.
func (e *Engine) Close() {
	if e.Pool != nil {
		e.Pool.Close()
	}
}

// LoadGraphFromFiles builds the graph from a GWN-LMF JSON file and an
// optional WordNet IC file. Without an IC file only path similarity is
// defined.
func LoadGraphFromFiles(logger *slog.Logger, wordnetPath, icPath string) (*taxonomy.Graph, error) {
	parsed, err := wordnet.Parse(wordnetPath)
	if err != nil {
		return nil, fmt.Errorf("parse wordnet: %w", err)
	}
	if st := parsed.Stats; st.DanglingSenses > 0 || st.DanglingEdges > 0 || st.SkippedSynsets > 0 {
		logger.Warn("wordnet file has unusable records",
			slog.Int("skipped_synsets", st.SkippedSynsets),
			slog.Int("dangling_senses", st.DanglingSenses),
			slog.Int("dangling_edges", st.DanglingEdges),
		)
	}

	var counts *domain.ICCounts
	if icPath != "" {
		ic, err := icfile.Parse(icPath)
		if err != nil {
			return nil, fmt.Errorf("parse ic file: %w", err)
		}
		counts = &ic.Counts
	}

	return buildGraph(logger, parsed.Lexicon, counts)
}

// LoadGraphFromStore builds the graph from the taxonomy store. Empty IC
// tables leave information content undefined.
func LoadGraphFromStore(ctx context.Context, logger *slog.Logger, store LexiconStore) (*taxonomy.Graph, error) {
	lex, err := store.LoadLexicon(ctx)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}
	if len(lex.Synsets) == 0 {
		return nil, fmt.Errorf("taxonomy store is empty, run the seeder first: %w", domain.ErrNotFound)
	}

	counts, err := store.LoadICCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ic counts: %w", err)
	}
	if len(counts.Counts) == 0 {
		return buildGraph(logger, lex, nil)
	}
	return buildGraph(logger, lex, &counts)
}

func buildGraph(logger *slog.Logger, lex domain.Lexicon, counts *domain.ICCounts) (*taxonomy.Graph, error) {
	var ic *taxonomy.ICTable
	if counts != nil {
		t, err := taxonomy.ICTableFromCounts(*counts)
		if err != nil {
			return nil, fmt.Errorf("information content: %w", err)
		}
		ic = t
		for _, pos := range rootlessPOS(*counts) {
			logger.Info("ic counts without root total left unknown", slog.String("pos", string(pos)))
		}
	} else {
		logger.Warn("no information content loaded, resnik and lin similarity are undefined")
	}

	g, err := taxonomy.Build(lex, ic)
	if err != nil {
		return nil, fmt.Errorf("build taxonomy: %w", err)
	}
	return g, nil
}

// rootlessPOS lists the parts of speech that have counts but no root total.
func rootlessPOS(c domain.ICCounts) []domain.PartOfSpeech {
	var out []domain.PartOfSpeech
	for _, pos := range domain.AllPartsOfSpeech {
		if c.Roots[pos] > 0 {
			continue
		}
		for k := range c.Counts {
			if k.POS == pos {
				out = append(out, pos)
				break
			}
		}
	}
	return out
}
