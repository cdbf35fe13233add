// Package corpus defines the legal corpus domain model: laws and court
// cases, and the storage contract the retrieval layer depends on.
package corpus

import "time"

// DocType distinguishes the two document kinds in the corpus.
type DocType string

const (
	DocTypeLaw  DocType = "law"
	DocTypeCase DocType = "case"
)

// Document is a single retrievable unit: one law article or one court case.
type Document struct {
	ID       int64   `json:"id"`
	Type     DocType `json:"type"`
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Category string  `json:"category"` // law category or case type, e.g. "刑事", "民事"

	// Case-only fields; empty for laws.
	CaseNumber string `json:"case_number,omitempty"`
	CourtName  string `json:"court_name,omitempty"`

	Date      time.Time `json:"date,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// IsLaw reports whether the document is a law article.
func (d Document) IsLaw() bool { return d.Type == DocTypeLaw }

// Feedback is a user's rating of a generated answer.
type Feedback struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryEntry is one stored question/answer exchange.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Category  string    `json:"category,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
