package corpus

import "context"

// Retriever is the candidate retrieval contract.  The full Store satisfies
// it, as does the OpenSearch backend, which supports retrieval only.
type Retriever interface {
	// SearchLaws returns laws whose title or content matches any of the
	// keywords, optionally restricted to a category, newest first.
	SearchLaws(ctx context.Context, keywords []string, category string, limit int) ([]Document, error)

	// SearchCases returns court cases whose title or content matches any of
	// the keywords, optionally restricted to a case type, newest first.
	SearchCases(ctx context.Context, keywords []string, caseType string, limit int) ([]Document, error)
}

// Store is the persistence contract for the legal corpus.  Implementations
// live under internal/infrastructure; the application layer depends only on
// this interface.
type Store interface {
	Retriever

	GetLaw(ctx context.Context, id int64) (*Document, error)
	GetCase(ctx context.Context, id int64) (*Document, error)

	// InsertLaw and InsertCase are insert-or-ignore: a document whose title
	// already exists is silently skipped.
	InsertLaw(ctx context.Context, doc Document) error
	InsertCase(ctx context.Context, doc Document) error

	// ListLaws and ListCases stream the full corpus for offline index builds.
	ListLaws(ctx context.Context) ([]Document, error)
	ListCases(ctx context.Context) ([]Document, error)
}

// FeedbackStore persists answer ratings and question history.
type FeedbackStore interface {
	SaveFeedback(ctx context.Context, fb Feedback) (int64, error)
	SaveHistory(ctx context.Context, entry HistoryEntry) (int64, error)
	ListHistory(ctx context.Context, limit int) ([]HistoryEntry, error)
}
