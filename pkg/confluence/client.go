package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"confql/pkg/logger"
	"confql/pkg/version"
)

// ExpandConfig lists the properties expanded by default for each entity
// group. It replaces per-process expand defaults: every client carries its
// own copy.
type ExpandConfig struct {
	Content    []string `yaml:"content"`
	Space      []string `yaml:"space"`
	User       []string `yaml:"user"`
	Attachment []string `yaml:"attachment"`
}

// DefaultExpandConfig returns the expansions the client needs to populate
// its entities.
func DefaultExpandConfig() ExpandConfig {
	return ExpandConfig{
		Content:    []string{"space", "version"},
		Space:      []string{"description.plain"},
		User:       nil,
		Attachment: []string{"version"},
	}
}

type Client struct {
	baseURL  string
	username string
	apiToken string
	client   *http.Client
	logger   *logger.Logger
	expand   ExpandConfig
}

// Option customizes a Client.
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.client = hc }
}

func WithExpand(expand ExpandConfig) Option {
	return func(c *Client) { c.expand = expand }
}

// New returns a client that logs nothing.
func New(baseURL, username, apiToken string, opts ...Option) *Client {
	return NewClient(baseURL, username, apiToken, nil, opts...)
}

func NewClient(baseURL, username, apiToken string, log *logger.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		apiToken: apiToken,
		client:   &http.Client{},
		logger:   log,
		expand:   DefaultExpandConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Expand returns the client's expand configuration.
func (c *Client) Expand() ExpandConfig {
	return c.expand
}

// request describes one REST call relative to /rest/api.
type request struct {
	method string
	path   string
	// url, when set, is used instead of baseURL + /rest/api + path.
	url   string
	query url.Values
	body  interface{}
	// raw, when set, is sent as is with contentType.
	raw         io.Reader
	contentType string
	header      http.Header
}

func (c *Client) newRequest(ctx context.Context, r request) (*http.Request, error) {
	endpoint := c.baseURL + "/rest/api" + r.path
	if r.url != "" {
		endpoint = r.url
	}
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	contentType := r.contentType
	switch {
	case r.raw != nil:
		body = r.raw
	case r.body != nil:
		data, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.apiToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", version.Get().UserAgent())
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	return req, nil
}

// do executes r and decodes a JSON response into out when out is non-nil.
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	req, err := c.newRequest(ctx, r)
	if err != nil {
		return err
	}

	requestID := uuid.NewString()
	if c.logger != nil {
		c.logger.With("request_id", requestID).Debug("%s %s", req.Method, req.URL.Path)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		if c.logger != nil {
			c.logger.With("request_id", requestID).Debug("%s %s -> %d", req.Method, req.URL.Path, resp.StatusCode)
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Method:     req.Method,
			Path:       req.URL.Path,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if w, ok := out.(io.Writer); ok {
		if _, err := io.Copy(w, resp.Body); err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func expandParam(q url.Values, expand []string) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if len(expand) > 0 {
		q.Set("expand", strings.Join(expand, ","))
	}
	return q
}

func pagingParams(q url.Values, start, limit int) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if start > 0 {
		q.Set("start", fmt.Sprintf("%d", start))
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", limit))
	}
	return q
}
