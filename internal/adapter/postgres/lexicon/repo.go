// Package lexicon stores the lexical taxonomy and its information-content
// counts in PostgreSQL. Inserts are idempotent (ON CONFLICT DO NOTHING), so
// re-running the seeder over the same files changes nothing.
package lexicon

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/wordsim/internal/adapter/postgres"
	"github.com/heartmarshall/wordsim/internal/domain"
)

// Table names.
const (
	tableSynsets   = "synsets"
	tableLemmas    = "lemmas"
	tableHypernyms = "hypernyms"
	tableICCounts  = "ic_counts"
	tableICRoots   = "ic_roots"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides taxonomy persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new lexicon repository. q is usually a *pgxpool.Pool; a
// transaction in the context takes precedence.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Bulk inserts
// ---------------------------------------------------------------------------

// InsertSynsets inserts synsets, skipping existing (pos, id) pairs.
// Returns the number of actually inserted rows.
func (r *Repo) InsertSynsets(ctx context.Context, synsets []domain.Synset) (int, error) {
	if len(synsets) == 0 {
		return 0, nil
	}
	b := psql.Insert(tableSynsets).Columns("id", "pos", "wn_offset")
	for _, s := range synsets {
		b = b.Values(s.ID, s.POS, s.Offset)
	}
	return r.exec(ctx, tableSynsets, b.Suffix("ON CONFLICT (pos, id) DO NOTHING"))
}

// InsertLemmas inserts word-to-synset links. Words are stored normalized.
func (r *Repo) InsertLemmas(ctx context.Context, lemmas []domain.Lemma) (int, error) {
	if len(lemmas) == 0 {
		return 0, nil
	}
	b := psql.Insert(tableLemmas).Columns("word", "pos", "synset_id")
	for _, l := range lemmas {
		b = b.Values(domain.NormalizeLemma(l.Word), l.POS, l.SynsetID)
	}
	return r.exec(ctx, tableLemmas, b.Suffix("ON CONFLICT (word, pos, synset_id) DO NOTHING"))
}

// InsertHypernyms inserts hypernym edges.
func (r *Repo) InsertHypernyms(ctx context.Context, edges []domain.Hypernym) (int, error) {
	if len(edges) == 0 {
		return 0, nil
	}
	b := psql.Insert(tableHypernyms).Columns("pos", "synset_id", "hypernym_id")
	for _, h := range edges {
		b = b.Values(h.POS, h.SynsetID, h.HypernymID)
	}
	return r.exec(ctx, tableHypernyms, b.Suffix("ON CONFLICT (pos, synset_id, hypernym_id) DO NOTHING"))
}

// InsertICCounts inserts corpus counts, skipping offsets already present.
func (r *Repo) InsertICCounts(ctx context.Context, counts []domain.ICCount) (int, error) {
	if len(counts) == 0 {
		return 0, nil
	}
	b := psql.Insert(tableICCounts).Columns("pos", "wn_offset", "count")
	for _, c := range counts {
		b = b.Values(c.POS, c.Offset, c.Count)
	}
	return r.exec(ctx, tableICCounts, b.Suffix("ON CONFLICT (pos, wn_offset) DO NOTHING"))
}

// UpsertICRoots stores the per-POS root totals. Unlike counts, totals are
// replaced: they belong to the IC file as a whole.
func (r *Repo) UpsertICRoots(ctx context.Context, roots map[domain.PartOfSpeech]float64) (int, error) {
	if len(roots) == 0 {
		return 0, nil
	}
	b := psql.Insert(tableICRoots).Columns("pos", "total")
	for _, pos := range domain.AllPartsOfSpeech {
		if total, ok := roots[pos]; ok {
			b = b.Values(pos, total)
		}
	}
	return r.exec(ctx, tableICRoots, b.Suffix("ON CONFLICT (pos) DO UPDATE SET total = EXCLUDED.total"))
}

func (r *Repo) exec(ctx context.Context, table string, b sq.InsertBuilder) (int, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert into %s: %w", table, err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.q).Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, "insert into", table)
	}
	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// LoadLexicon reads the whole taxonomy. The slices are ordered so that the
// graph built from them is reproducible.
func (r *Repo) LoadLexicon(ctx context.Context) (domain.Lexicon, error) {
	var lex domain.Lexicon

	if err := r.selectAll(ctx, &lex.Synsets, tableSynsets,
		psql.Select("id", "pos", "wn_offset").From(tableSynsets).OrderBy("pos", "id")); err != nil {
		return domain.Lexicon{}, err
	}
	if err := r.selectAll(ctx, &lex.Lemmas, tableLemmas,
		psql.Select("word", "pos", "synset_id").From(tableLemmas).OrderBy("pos", "synset_id", "word")); err != nil {
		return domain.Lexicon{}, err
	}
	if err := r.selectAll(ctx, &lex.Hypernyms, tableHypernyms,
		psql.Select("pos", "synset_id", "hypernym_id").From(tableHypernyms).OrderBy("pos", "synset_id", "hypernym_id")); err != nil {
		return domain.Lexicon{}, err
	}

	return lex, nil
}

type rootRow struct {
	POS   domain.PartOfSpeech `db:"pos"`
	Total float64             `db:"total"`
}

// LoadICCounts reads the stored corpus counts and root totals. Empty tables
// yield empty counts, not an error.
func (r *Repo) LoadICCounts(ctx context.Context) (domain.ICCounts, error) {
	var rows []domain.ICCount
	if err := r.selectAll(ctx, &rows, tableICCounts,
		psql.Select("pos", "wn_offset", "count").From(tableICCounts)); err != nil {
		return domain.ICCounts{}, err
	}
	var roots []rootRow
	if err := r.selectAll(ctx, &roots, tableICRoots,
		psql.Select("pos", "total").From(tableICRoots)); err != nil {
		return domain.ICCounts{}, err
	}

	out := domain.NewICCounts()
	for _, c := range rows {
		out.Counts[domain.ICKey{POS: c.POS, Offset: c.Offset}] = c.Count
	}
	for _, root := range roots {
		out.Roots[root.POS] = root.Total
	}
	return out, nil
}

// CountSynsets returns the number of stored synsets.
func (r *Repo) CountSynsets(ctx context.Context) (int, error) {
	query, args, err := psql.Select("count(*)").From(tableSynsets).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.q).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "count", tableSynsets)
	}
	return int(n), nil
}

func (r *Repo) selectAll(ctx context.Context, dst any, table string, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build select from %s: %w", table, err)
	}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.q), dst, query, args...); err != nil {
		return postgres.MapError(err, "select from", table)
	}
	return nil
}
