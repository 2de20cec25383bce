package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/heartmarshall/wordsim/internal/domain"
	"github.com/heartmarshall/wordsim/internal/seeder/icfile"
	"github.com/heartmarshall/wordsim/internal/seeder/wordnet"
)

// Phase names, in canonical execution order. IC counts reference synset
// offsets only, so "ic" does not depend on "wordnet" having run.
const (
	PhaseWordNet = "wordnet"
	PhaseIC      = "ic"
)

var allPhases = []string{PhaseWordNet, PhaseIC}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding process. Each phase writes inside one
// transaction, so a failed phase leaves the store as it was.
type Pipeline struct {
	log     *slog.Logger
	repo    TaxonomyBulkRepo
	tx      TxRunner
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo TaxonomyBulkRepo, tx TxRunner, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log.With("service", "seeder"),
		repo:    repo,
		tx:      tx,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run; unknown phase names are an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			if !slices.Contains(allPhases, ph) {
				return fmt.Errorf("unknown phase %q (known: %v)", ph, allPhases)
			}
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("pipeline interrupted before %s: %w", phase, err)
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseWordNet:
			result = p.runWordNet(ctx)
		case PhaseIC:
			result = p.runIC(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

// runWordNet parses a GWN-LMF file and inserts synsets, then lemmas, then
// hypernym edges.
func (p *Pipeline) runWordNet(ctx context.Context) PhaseResult {
	if p.cfg.WordNetPath == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("wordnet path not configured")}
	}

	parsed, err := wordnet.Parse(p.cfg.WordNetPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse wordnet: %w", err)}
	}
	st := parsed.Stats
	p.log.Info("wordnet parsed",
		slog.Int("synsets", st.TotalSynsets),
		slog.Int("lemmas", st.Lemmas),
		slog.Int("hypernyms", st.Hypernyms),
		slog.Int("skipped_synsets", st.SkippedSynsets),
		slog.Int("dangling_senses", st.DanglingSenses),
		slog.Int("dangling_edges", st.DanglingEdges),
	)

	lex := parsed.Lexicon
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(lex.Synsets) + len(lex.Lemmas) + len(lex.Hypernyms)}
	}

	var result PhaseResult
	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		// Parent rows first: lemmas and edges reference synsets.
		inserted, err := batchProcess(lex.Synsets, p.cfg.BatchSize, func(batch []domain.Synset) (int, error) {
			return p.repo.InsertSynsets(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert synsets: %w", err)
		}
		result.Inserted += inserted

		inserted, err = batchProcess(lex.Lemmas, p.cfg.BatchSize, func(batch []domain.Lemma) (int, error) {
			return p.repo.InsertLemmas(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert lemmas: %w", err)
		}
		result.Inserted += inserted

		inserted, err = batchProcess(lex.Hypernyms, p.cfg.BatchSize, func(batch []domain.Hypernym) (int, error) {
			return p.repo.InsertHypernyms(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert hypernyms: %w", err)
		}
		result.Inserted += inserted
		return nil
	})
	if err != nil {
		return PhaseResult{Err: err}
	}

	total := len(lex.Synsets) + len(lex.Lemmas) + len(lex.Hypernyms)
	result.Skipped = total - result.Inserted
	return result
}

// runIC parses an information-content file and stores its counts and root
// totals.
func (p *Pipeline) runIC(ctx context.Context) PhaseResult {
	if p.cfg.ICPath == "" {
		return PhaseResult{Skipped: 1, Err: fmt.Errorf("ic path not configured")}
	}

	parsed, err := icfile.Parse(p.cfg.ICPath)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("parse ic file: %w", err)}
	}
	p.log.Info("ic file parsed",
		slog.String("version", parsed.Version),
		slog.Int("entries", parsed.Stats.Entries),
		slog.Int("roots", parsed.Stats.Roots),
	)

	entries := parsed.Counts.Entries()
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(entries)}
	}

	var result PhaseResult
	err = p.tx.RunInTx(ctx, func(ctx context.Context) error {
		inserted, err := batchProcess(entries, p.cfg.BatchSize, func(batch []domain.ICCount) (int, error) {
			return p.repo.InsertICCounts(ctx, batch)
		})
		if err != nil {
			return fmt.Errorf("insert ic counts: %w", err)
		}
		result.Inserted = inserted

		if _, err := p.repo.UpsertICRoots(ctx, parsed.Counts.Roots); err != nil {
			return fmt.Errorf("upsert ic roots: %w", err)
		}
		return nil
	})
	if err != nil {
		return PhaseResult{Err: err}
	}

	result.Skipped = len(entries) - result.Inserted
	return result
}

// batchProcess splits items into batches and processes each via fn.
func batchProcess[T any](items []T, batchSize int, fn func([]T) (int, error)) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}
	if batchSize <= 0 {
		batchSize = 500
	}

	total := 0
	for i := 0; i < len(items); i += batchSize {
		end := min(i+batchSize, len(items))
		n, err := fn(items[i:end])
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
