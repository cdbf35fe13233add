// Package opensearch is the optional full-text retrieval backend.  It
// satisfies the corpus.Retriever contract, so the pipeline can swap it in
// for the PostgreSQL ILIKE search via configuration.
package opensearch

import (
	"context"
	"crypto/tls"
	"net/http"

	opensearchgo "github.com/opensearch-project/opensearch-go/v2"

	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/config"
	"github.com/Larryveryhandsome/taiwan-legal-ai/internal/infrastructure/logging"
	"github.com/Larryveryhandsome/taiwan-legal-ai/pkg/errors"
)

// Client wraps the OpenSearch connection.
type Client struct {
	client      *opensearchgo.Client
	indexPrefix string
	log         logging.Logger
}

// NewClient connects to the cluster and verifies it with a ping.
func NewClient(ctx context.Context, cfg config.OpenSearchConfig, log logging.Logger) (*Client, error) {
	if len(cfg.Addresses) == 0 {
		return nil, errors.New(errors.ErrCodeValidation, "opensearch addresses are required")
	}

	transport := &http.Transport{}
	if cfg.InsecureSkipVerify {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	osClient, err := opensearchgo.NewClient(opensearchgo.Config{
		Addresses:     cfg.Addresses,
		Username:      cfg.User,
		Password:      cfg.Password,
		Transport:     transport,
		RetryOnStatus: []int{502, 503, 504, 429},
	})
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "creating opensearch client")
	}

	c := &Client{
		client:      osClient,
		indexPrefix: cfg.IndexPrefix,
		log:         log.Named("opensearch"),
	}
	if err := c.Ping(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// Ping checks cluster reachability.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.client.Ping(c.client.Ping.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeServiceUnavailable, "opensearch ping failed")
	}
	defer resp.Body.Close()
	if resp.IsError() {
		return errors.Newf(errors.ErrCodeServiceUnavailable, "opensearch ping returned status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) lawsIndex() string  { return c.indexPrefix + "-laws" }
func (c *Client) casesIndex() string { return c.indexPrefix + "-cases" }
