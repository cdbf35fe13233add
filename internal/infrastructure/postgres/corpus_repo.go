package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// CorpusRepo is the PostgreSQL corpus.Store implementation.  Laws live in
// the laws table, court cases in court_cases; candidate retrieval is OR'd
// ILIKE matching over title and content with an optional category filter,
// newest rows first.
type CorpusRepo struct {
	pool *pgxpool.Pool
}

var _ corpus.Store = (*CorpusRepo)(nil)

// NewCorpusRepo wires a CorpusRepo over an established pool.
func NewCorpusRepo(pool *pgxpool.Pool) *CorpusRepo {
	return &CorpusRepo{pool: pool}
}

// buildSearchQuery assembles the OR'd keyword match with an optional
// equality filter.  filterCol names the category column of the table.
func buildSearchQuery(table, columns, filterCol string, keywords []string, filter string, limit int) (string, []interface{}) {
	var sb strings.Builder
	args := make([]interface{}, 0, len(keywords)+2)

	sb.WriteString("SELECT " + columns + " FROM " + table + " WHERE (")
	for i, kw := range keywords {
		if i > 0 {
			sb.WriteString(" OR ")
		}
		args = append(args, "%"+kw+"%")
		n := len(args)
		fmt.Fprintf(&sb, "title ILIKE $%d OR content ILIKE $%d", n, n)
	}
	sb.WriteString(")")

	if filter != "" {
		args = append(args, filter)
		fmt.Fprintf(&sb, " AND %s = $%d", filterCol, len(args))
	}

	args = append(args, limit)
	fmt.Fprintf(&sb, " ORDER BY id DESC LIMIT $%d", len(args))
	return sb.String(), args
}

// SearchLaws implements corpus.Store.
func (r *CorpusRepo) SearchLaws(ctx context.Context, keywords []string, category string, limit int) ([]corpus.Document, error) {
	if len(keywords) == 0 {
		return nil, nil
	}
	query, args := buildSearchQuery("laws",
		"id, title, content, category, created_at", "category",
		keywords, category, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "searching laws")
	}
	defer rows.Close()
	return scanLaws(rows)
}

// SearchCases implements corpus.Store.
func (r *CorpusRepo) SearchCases(ctx context.Context, keywords []string, caseType string, limit int) ([]corpus.Document, error) {
	if len(keywords) == 0 {
		return nil, nil
	}
	query, args := buildSearchQuery("court_cases",
		"id, title, content, case_type, case_number, court_name, created_at", "case_type",
		keywords, caseType, limit)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "searching cases")
	}
	defer rows.Close()
	return scanCases(rows)
}

// GetLaw implements corpus.Store.
func (r *CorpusRepo) GetLaw(ctx context.Context, id int64) (*corpus.Document, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT id, title, content, category, created_at FROM laws WHERE id = $1", id)
	doc := corpus.Document{Type: corpus.DocTypeLaw}
	err := row.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Category, &doc.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, errors.Newf(errors.ErrCodeLawNotFound, "law %d not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "loading law")
	}
	return &doc, nil
}

// GetCase implements corpus.Store.
func (r *CorpusRepo) GetCase(ctx context.Context, id int64) (*corpus.Document, error) {
	row := r.pool.QueryRow(ctx,
		"SELECT id, title, content, case_type, case_number, court_name, created_at FROM court_cases WHERE id = $1", id)
	doc := corpus.Document{Type: corpus.DocTypeCase}
	err := row.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Category, &doc.CaseNumber, &doc.CourtName, &doc.CreatedAt)
	if err == pgx.ErrNoRows {
		return nil, errors.Newf(errors.ErrCodeCaseNotFound, "case %d not found", id)
	}
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "loading case")
	}
	return &doc, nil
}

// InsertLaw implements corpus.Store; duplicate titles are skipped.
func (r *CorpusRepo) InsertLaw(ctx context.Context, doc corpus.Document) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO laws (title, content, category) VALUES ($1, $2, $3)
		 ON CONFLICT (title) DO NOTHING`,
		doc.Title, doc.Content, doc.Category)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "inserting law")
	}
	return nil
}

// InsertCase implements corpus.Store; duplicate titles are skipped.
func (r *CorpusRepo) InsertCase(ctx context.Context, doc corpus.Document) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO court_cases (title, content, case_type, case_number, court_name)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (title) DO NOTHING`,
		doc.Title, doc.Content, doc.Category, doc.CaseNumber, doc.CourtName)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeDatabaseError, "inserting case")
	}
	return nil
}

// ListLaws implements corpus.Store.
func (r *CorpusRepo) ListLaws(ctx context.Context) ([]corpus.Document, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, title, content, category, created_at FROM laws ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "listing laws")
	}
	defer rows.Close()
	return scanLaws(rows)
}

// ListCases implements corpus.Store.
func (r *CorpusRepo) ListCases(ctx context.Context) ([]corpus.Document, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT id, title, content, case_type, case_number, court_name, created_at FROM court_cases ORDER BY id")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "listing cases")
	}
	defer rows.Close()
	return scanCases(rows)
}

func scanLaws(rows pgx.Rows) ([]corpus.Document, error) {
	var docs []corpus.Document
	for rows.Next() {
		doc := corpus.Document{Type: corpus.DocTypeLaw}
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Category, &doc.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "scanning law row")
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "iterating law rows")
	}
	return docs, nil
}

func scanCases(rows pgx.Rows) ([]corpus.Document, error) {
	var docs []corpus.Document
	for rows.Next() {
		doc := corpus.Document{Type: corpus.DocTypeCase}
		if err := rows.Scan(&doc.ID, &doc.Title, &doc.Content, &doc.Category, &doc.CaseNumber, &doc.CourtName, &doc.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "scanning case row")
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "iterating case rows")
	}
	return docs, nil
}
