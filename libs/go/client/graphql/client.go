// Package graphql queries the XION smart-account indexer.
package graphql

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"

	"github.com/cenkalti/backoff/v4"
	"github.com/machinebox/graphql"
	"go.uber.org/zap"
)

// ErrAccountNotFound is returned when no smart account has the authenticator.
var ErrAccountNotFound = errors.New("smart account not found")

const accountByAuthenticatorQuery = `
query AccountByAuthenticator($authenticator: String!) {
  smartAccounts(
    filter: { authenticators: { some: { authenticator: { equalTo: $authenticator } } } }
  ) {
    nodes {
      id
      authenticators {
        nodes {
          id
          type
          authenticator
          authenticatorIndex
        }
      }
    }
  }
}`

type accountsResponse struct {
	SmartAccounts struct {
		Nodes []struct {
			ID             string `json:"id"`
			Authenticators struct {
				Nodes []struct {
					ID                 string `json:"id"`
					Type               string `json:"type"`
					Authenticator      string `json:"authenticator"`
					AuthenticatorIndex int    `json:"authenticatorIndex"`
				} `json:"nodes"`
			} `json:"authenticators"`
		} `json:"nodes"`
	} `json:"smartAccounts"`
}

// Config configures the indexer client.
type Config struct {
	Endpoint        string
	APIKey          string
	Timeout         time.Duration
	MaxRetries      uint64
	InitialInterval time.Duration
}

// IndexerClient looks up smart accounts through the indexer GraphQL API.
type IndexerClient struct {
	client *graphql.Client
	config Config
	log    *zap.Logger
}

func NewIndexerClient(config Config) *IndexerClient {
	if config.Timeout <= 0 {
		config.Timeout = 10 * time.Second
	}
	if config.MaxRetries == 0 {
		config.MaxRetries = 3
	}
	if config.InitialInterval <= 0 {
		config.InitialInterval = 200 * time.Millisecond
	}

	httpClient := &http.Client{Timeout: config.Timeout}
	return &IndexerClient{
		client: graphql.NewClient(config.Endpoint, graphql.WithHTTPClient(httpClient)),
		config: config,
		log:    logger.ForComponent(logger.ComponentIndexer),
	}
}

// GetAccountByAuthenticator returns the first smart account that lists
// authenticator. Transport failures are retried with exponential backoff.
func (c *IndexerClient) GetAccountByAuthenticator(ctx context.Context, authenticator string) (*business.Account, error) {
	req := graphql.NewRequest(accountByAuthenticatorQuery)
	req.Var("authenticator", authenticator)
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	var resp accountsResponse
	attempt := 0
	operation := func() error {
		attempt++
		resp = accountsResponse{}
		err := c.client.Run(ctx, req, &resp)
		if err != nil && ctx.Err() != nil {
			return backoff.Permanent(ctx.Err())
		}
		if err != nil {
			c.log.Debug("Indexer query failed",
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
		}
		return err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.config.InitialInterval
	if err := backoff.Retry(operation, backoff.WithContext(backoff.WithMaxRetries(policy, c.config.MaxRetries), ctx)); err != nil {
		return nil, fmt.Errorf("failed to query smart accounts: %w", err)
	}

	if len(resp.SmartAccounts.Nodes) == 0 {
		return nil, ErrAccountNotFound
	}

	node := resp.SmartAccounts.Nodes[0]
	account := &business.Account{ID: node.ID}
	for _, a := range node.Authenticators.Nodes {
		account.Authenticators = append(account.Authenticators, business.Authenticator{
			ID:            a.ID,
			Type:          a.Type,
			Authenticator: a.Authenticator,
			Index:         a.AuthenticatorIndex,
		})
	}
	return account, nil
}
