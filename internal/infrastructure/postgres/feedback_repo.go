package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// FeedbackRepo persists answer ratings and question history.
type FeedbackRepo struct {
	pool *pgxpool.Pool
}

var _ corpus.FeedbackStore = (*FeedbackRepo)(nil)

// NewFeedbackRepo wires a FeedbackRepo over an established pool.
func NewFeedbackRepo(pool *pgxpool.Pool) *FeedbackRepo {
	return &FeedbackRepo{pool: pool}
}

// SaveFeedback implements corpus.FeedbackStore.
func (r *FeedbackRepo) SaveFeedback(ctx context.Context, fb corpus.Feedback) (int64, error) {
	if fb.Rating < 1 || fb.Rating > 5 {
		return 0, errors.InvalidParam("rating must be between 1 and 5")
	}
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO feedback (question, answer, rating, comment)
		 VALUES ($1, $2, $3, $4) RETURNING id`,
		fb.Question, fb.Answer, fb.Rating, fb.Comment).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "saving feedback")
	}
	return id, nil
}

// SaveHistory implements corpus.FeedbackStore.
func (r *FeedbackRepo) SaveHistory(ctx context.Context, entry corpus.HistoryEntry) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx,
		`INSERT INTO history (question, answer, category)
		 VALUES ($1, $2, $3) RETURNING id`,
		entry.Question, entry.Answer, entry.Category).Scan(&id)
	if err != nil {
		return 0, errors.Wrap(err, errors.ErrCodeDatabaseError, "saving history")
	}
	return id, nil
}

// ListHistory implements corpus.FeedbackStore, newest first.
func (r *FeedbackRepo) ListHistory(ctx context.Context, limit int) ([]corpus.HistoryEntry, error) {
	if limit < 1 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, question, answer, category, created_at
		 FROM history ORDER BY id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "listing history")
	}
	defer rows.Close()

	var entries []corpus.HistoryEntry
	for rows.Next() {
		var e corpus.HistoryEntry
		if err := rows.Scan(&e.ID, &e.Question, &e.Answer, &e.Category, &e.CreatedAt); err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "scanning history row")
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeDatabaseError, "iterating history rows")
	}
	return entries, nil
}
