package confluence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetCurrentUser returns the user the client authenticates as.
func (c *Client) GetCurrentUser(ctx context.Context) (*User, error) {
	var result User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/user/current",
		query:  expandParam(nil, c.expand.User),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}
	return &result, nil
}

// GetUserByAccountID looks a user up on Confluence Cloud.
func (c *Client) GetUserByAccountID(ctx context.Context, accountID string) (*User, error) {
	return c.getUser(ctx, "accountId", accountID)
}

// GetUserByUsername looks a user up on Confluence Server and Data Center.
func (c *Client) GetUserByUsername(ctx context.Context, username string) (*User, error) {
	return c.getUser(ctx, "username", username)
}

func (c *Client) getUser(ctx context.Context, param, value string) (*User, error) {
	q := url.Values{}
	q.Set(param, value)

	var result User
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/user",
		query:  expandParam(q, c.expand.User),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get user %s=%s: %w", param, value, err)
	}
	return &result, nil
}
