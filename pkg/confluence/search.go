package confluence

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

// Query is a CQL expression; *cql.Clause implements it.
type Query interface {
	Render() (string, error)
}

// RawQuery is hand-written CQL passed through unchanged.
type RawQuery string

func (q RawQuery) Render() (string, error) {
	if q == "" {
		return "", errors.New("empty cql query")
	}
	return string(q), nil
}

type SearchOptions struct {
	Start int
	Limit int
	// Expand overrides the client's content expansions.
	Expand []string
}

// Search runs a CQL query against the content search endpoint and returns
// a single page of results.
func (c *Client) Search(ctx context.Context, query Query, opts SearchOptions) (*ResultPage[Content], error) {
	if query == nil {
		return nil, errors.New("search requires a query")
	}
	text, err := query.Render()
	if err != nil {
		return nil, fmt.Errorf("invalid cql query: %w", err)
	}

	expand := opts.Expand
	if expand == nil {
		expand = c.expand.Content
	}

	q := url.Values{}
	q.Set("cql", text)
	q = pagingParams(expandParam(q, expand), opts.Start, opts.Limit)

	if c.logger != nil {
		c.logger.Debug("Searching with cql: %s", text)
	}

	var result ResultPage[Content]
	if err := c.do(ctx, request{method: http.MethodGet, path: "/content/search", query: q}, &result); err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}
	return &result, nil
}
