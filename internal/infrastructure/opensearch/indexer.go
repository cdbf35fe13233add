package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"

	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/domain/corpus"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// IndexCorpus writes every law and case into its index, keyed by document
// ID so re-indexing is an upsert.
func (c *Client) IndexCorpus(ctx context.Context, laws, cases []corpus.Document) error {
	for _, doc := range laws {
		if err := c.indexDocument(ctx, c.lawsIndex(), doc, "category"); err != nil {
			return err
		}
	}
	for _, doc := range cases {
		if err := c.indexDocument(ctx, c.casesIndex(), doc, "case_type"); err != nil {
			return err
		}
	}
	c.log.Info("corpus indexed",
		logging.Int("laws", len(laws)),
		logging.Int("cases", len(cases)),
	)
	return nil
}

func (c *Client) indexDocument(ctx context.Context, index string, doc corpus.Document, categoryField string) error {
	source := map[string]interface{}{
		"id":      doc.ID,
		"title":   doc.Title,
		"content": doc.Content,
	}
	source[categoryField] = doc.Category
	if doc.CaseNumber != "" {
		source["case_number"] = doc.CaseNumber
	}
	if doc.CourtName != "" {
		source["court_name"] = doc.CourtName
	}

	body, err := json.Marshal(source)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeSerialization, "marshaling document")
	}

	req := opensearchapi.IndexRequest{
		Index:      index,
		DocumentID: strconv.FormatInt(doc.ID, 10),
		Body:       bytes.NewReader(body),
	}
	resp, err := req.Do(ctx, c.client)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeServiceUnavailable, "indexing document")
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return errors.Newf(errors.ErrCodeInternal, "indexing %s/%d returned status %d", index, doc.ID, resp.StatusCode)
	}
	return nil
}
