// Package seeder defines interfaces and orchestration for the taxonomy seeding pipeline.
package seeder

import (
	"context"

	"github.com/heartmarshall/wordsim/internal/domain"
)

// TaxonomyBulkRepo defines the batch repository contract consumed by the seeder pipeline.
// All methods use only domain types, no adapter imports.
// Implemented by lexicon.Repo.
type TaxonomyBulkRepo interface {
	// Batch inserts: ON CONFLICT DO NOTHING, return rows actually inserted.
	InsertSynsets(ctx context.Context, synsets []domain.Synset) (int, error)
	InsertLemmas(ctx context.Context, lemmas []domain.Lemma) (int, error)
	InsertHypernyms(ctx context.Context, edges []domain.Hypernym) (int, error)
	InsertICCounts(ctx context.Context, counts []domain.ICCount) (int, error)

	// UpsertICRoots replaces the per-POS root totals.
	UpsertICRoots(ctx context.Context, roots map[domain.PartOfSpeech]float64) (int, error)
}

// TxRunner runs fn in a single transaction. Implemented by postgres.TxManager.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
