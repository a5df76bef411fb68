package confluence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type ListSpacesOptions struct {
	Start int
	Limit int
	// Type filters by "global" or "personal".
	Type string
	// Keys restricts the listing to the given space keys.
	Keys []string
}

func (c *Client) GetSpace(ctx context.Context, key string) (*Space, error) {
	var result Space
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/space/" + url.PathEscape(key),
		query:  expandParam(nil, c.expand.Space),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get space '%s': %w", key, err)
	}
	return &result, nil
}

func (c *Client) ListSpaces(ctx context.Context, opts ListSpacesOptions) (*ResultPage[Space], error) {
	q := url.Values{}
	if opts.Type != "" {
		q.Set("type", opts.Type)
	}
	for _, k := range opts.Keys {
		q.Add("spaceKey", k)
	}
	q = pagingParams(expandParam(q, c.expand.Space), opts.Start, opts.Limit)

	var result ResultPage[Space]
	if err := c.do(ctx, request{method: http.MethodGet, path: "/space", query: q}, &result); err != nil {
		return nil, fmt.Errorf("failed to list spaces: %w", err)
	}
	return &result, nil
}
