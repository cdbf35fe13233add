package opensearch

import (
	"bytes"
	"context"
	"encoding/json"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

var _ corpus.Retriever = (*Client)(nil)

// SearchLaws implements corpus.Retriever over the laws index.
func (c *Client) SearchLaws(ctx context.Context, keywords []string, category string, limit int) ([]corpus.Document, error) {
	docs, err := c.search(ctx, c.lawsIndex(), keywords, "category", category, limit)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].Type = corpus.DocTypeLaw
	}
	return docs, nil
}

// SearchCases implements corpus.Retriever over the cases index.
func (c *Client) SearchCases(ctx context.Context, keywords []string, caseType string, limit int) ([]corpus.Document, error) {
	docs, err := c.search(ctx, c.casesIndex(), keywords, "case_type", caseType, limit)
	if err != nil {
		return nil, err
	}
	for i := range docs {
		docs[i].Type = corpus.DocTypeCase
	}
	return docs, nil
}

// search runs a bool query: any keyword matching title or content, with an
// optional term filter, newest documents first.
func (c *Client) search(ctx context.Context, index string, keywords []string, filterField, filterValue string, limit int) ([]corpus.Document, error) {
	if len(keywords) == 0 {
		return nil, nil
	}

	should := make([]map[string]interface{}, 0, len(keywords))
	for _, kw := range keywords {
		should = append(should, map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  kw,
				"fields": []string{"title", "content"},
			},
		})
	}

	boolQuery := map[string]interface{}{
		"should":               should,
		"minimum_should_match": 1,
	}
	if filterValue != "" {
		boolQuery["filter"] = []map[string]interface{}{
			{"term": map[string]interface{}{filterField: filterValue}},
		}
	}

	dsl := map[string]interface{}{
		"query": map[string]interface{}{"bool": boolQuery},
		"sort":  []map[string]interface{}{{"id": map[string]interface{}{"order": "desc"}}},
		"size":  limit,
	}

	body, err := json.Marshal(dsl)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "marshaling search query")
	}

	req := opensearchapi.SearchRequest{
		Index: []string{index},
		Body:  bytes.NewReader(body),
	}
	resp, err := req.Do(ctx, c.client)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeServiceUnavailable, "search request failed")
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, errors.Newf(errors.ErrCodeInternal, "search returned status %d", resp.StatusCode)
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source sourceDoc `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeSerialization, "decoding search response")
	}

	docs := make([]corpus.Document, 0, len(parsed.Hits.Hits))
	for _, hit := range parsed.Hits.Hits {
		docs = append(docs, hit.Source.toDocument())
	}
	return docs, nil
}

// sourceDoc mirrors the indexed document shape; laws carry category, cases
// carry case_type.
type sourceDoc struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Category   string `json:"category"`
	CaseType   string `json:"case_type"`
	CaseNumber string `json:"case_number"`
	CourtName  string `json:"court_name"`
}

func (s sourceDoc) toDocument() corpus.Document {
	category := s.Category
	if category == "" {
		category = s.CaseType
	}
	return corpus.Document{
		ID:         s.ID,
		Title:      s.Title,
		Content:    s.Content,
		Category:   category,
		CaseNumber: s.CaseNumber,
		CourtName:  s.CourtName,
	}
}
