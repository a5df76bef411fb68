package confluence

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"confql/pkg/cql"
)

// NewContent describes content to create.
type NewContent struct {
	Type     string
	SpaceKey string
	Title    string
	// Body is storage-format markup.
	Body     string
	ParentID string
}

// GetContent fetches a piece of content. Without expand the client's
// configured content expansions are used.
func (c *Client) GetContent(ctx context.Context, contentID string, expand ...string) (*Content, error) {
	if len(expand) == 0 {
		expand = c.expand.Content
	}
	var result Content
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/content/" + url.PathEscape(contentID),
		query:  expandParam(nil, expand),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get content %s: %w", contentID, err)
	}
	return &result, nil
}

// FindContentByTitle returns the page with the exact title in the space,
// or nil when there is none.
func (c *Client) FindContentByTitle(ctx context.Context, spaceKey, title string) (*Content, error) {
	q := url.Values{}
	q.Set("spaceKey", spaceKey)
	q.Set("title", title)

	var result ResultPage[Content]
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/content",
		query:  expandParam(q, append([]string{"body.storage"}, c.expand.Content...)),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to find '%s' in space '%s': %w", title, spaceKey, err)
	}
	if len(result.Results) == 0 {
		return nil, nil
	}
	return &result.Results[0], nil
}

func (c *Client) CreateContent(ctx context.Context, nc NewContent) (*Content, error) {
	contentType := nc.Type
	if contentType == "" {
		contentType = string(cql.ContentTypePage)
	}

	payload := map[string]interface{}{
		"type":  contentType,
		"title": nc.Title,
		"space": map[string]string{"key": nc.SpaceKey},
		"body": map[string]interface{}{
			"storage": map[string]interface{}{
				"value":          nc.Body,
				"representation": "storage",
			},
		},
	}
	if nc.ParentID != "" {
		payload["ancestors"] = []map[string]string{{"id": nc.ParentID}}
	}

	if c.logger != nil {
		c.logger.Debug("Creating %s '%s' in space '%s'", contentType, nc.Title, nc.SpaceKey)
	}

	var result Content
	if err := c.do(ctx, request{method: http.MethodPost, path: "/content", body: payload}, &result); err != nil {
		return nil, fmt.Errorf("failed to create '%s': %w", nc.Title, err)
	}
	return &result, nil
}

// UpdateContent replaces the title and body of existing content, bumping
// its version number.
func (c *Client) UpdateContent(ctx context.Context, contentID, title, body string) (*Content, error) {
	current, err := c.GetContent(ctx, contentID, "version")
	if err != nil {
		return nil, fmt.Errorf("failed to get current content version: %w", err)
	}

	contentType := current.Type
	if contentType == "" {
		contentType = string(cql.ContentTypePage)
	}

	payload := map[string]interface{}{
		"id":    contentID,
		"type":  contentType,
		"title": title,
		"body": map[string]interface{}{
			"storage": map[string]interface{}{
				"value":          body,
				"representation": "storage",
			},
		},
		"version": map[string]interface{}{
			"number": current.Version.Number + 1,
		},
	}

	var result Content
	err = c.do(ctx, request{method: http.MethodPut, path: "/content/" + url.PathEscape(contentID), body: payload}, &result)
	if hasStatus(err, http.StatusForbidden) {
		return nil, &ContentUpdateForbiddenError{
			ContentID: contentID,
			Title:     title,
			Msg:       fmt.Sprintf("no permission to update '%s' (ID: %s)", title, contentID),
			Err:       err,
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update '%s': %w", title, err)
	}
	return &result, nil
}

func (c *Client) DeleteContent(ctx context.Context, contentID string) error {
	if err := c.do(ctx, request{method: http.MethodDelete, path: "/content/" + url.PathEscape(contentID)}, nil); err != nil {
		return fmt.Errorf("failed to delete content %s: %w", contentID, err)
	}
	return nil
}

// GetAncestors returns the chain from the space root down to the direct
// parent of the content.
func (c *Client) GetAncestors(ctx context.Context, contentID string) ([]PageInfo, error) {
	content, err := c.GetContent(ctx, contentID, "ancestors")
	if err != nil {
		return nil, err
	}
	ancestors := make([]PageInfo, 0, len(content.Ancestors))
	for _, a := range content.Ancestors {
		ancestors = append(ancestors, PageInfo{ID: a.ID, Title: a.Title})
	}
	return ancestors, nil
}

// GetChildPages returns the page subtree below contentID.
func (c *Client) GetChildPages(ctx context.Context, contentID string) ([]PageInfo, error) {
	var result ResultPage[PageInfo]
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/content/" + url.PathEscape(contentID) + "/child/page",
		query:  pagingParams(nil, 0, 200),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get child pages of %s: %w", contentID, err)
	}
	if result.HasNext() && c.logger != nil {
		c.logger.Warn("page %s has more than %d children; the rest are not listed", contentID, len(result.Results))
	}

	for i := range result.Results {
		children, err := c.GetChildPages(ctx, result.Results[i].ID)
		if err != nil {
			if c.logger != nil {
				c.logger.Warn("failed to get children for page '%s': %v", result.Results[i].Title, err)
			}
			continue
		}
		result.Results[i].Children = children
	}
	return result.Results, nil
}

// GetPageHierarchy returns the page tree of a space, or the subtree below
// the page titled parentTitle when it is set.
func (c *Client) GetPageHierarchy(ctx context.Context, spaceKey, parentTitle string) ([]PageInfo, error) {
	if parentTitle != "" {
		parent, err := c.FindContentByTitle(ctx, spaceKey, parentTitle)
		if err != nil {
			return nil, fmt.Errorf("failed to find parent page '%s': %w", parentTitle, err)
		}
		if parent == nil {
			return nil, fmt.Errorf("parent page '%s' not found in space '%s'", parentTitle, spaceKey)
		}
		return c.GetChildPages(ctx, parent.ID)
	}

	query := cql.And(cql.Where.Space().Is(spaceKey), cql.Where.Type().IsPage())
	result, err := c.Search(ctx, query, SearchOptions{Limit: 1000, Expand: []string{"ancestors"}})
	if err != nil {
		return nil, fmt.Errorf("failed to get pages in space: %w", err)
	}
	if result.HasNext() && c.logger != nil {
		c.logger.Warn("space %s has more than %d pages; the tree is incomplete", spaceKey, len(result.Results))
	}
	return buildPageTree(result.Results), nil
}

// buildPageTree links pages to their direct parent (the last ancestor) and
// returns the roots in the order the pages were listed.
func buildPageTree(pages []Content) []PageInfo {
	index := make(map[string]int, len(pages))
	for i, p := range pages {
		index[p.ID] = i
	}

	children := make(map[string][]string)
	var roots []string
	for _, p := range pages {
		parentID := ""
		if n := len(p.Ancestors); n > 0 {
			parentID = p.Ancestors[n-1].ID
		}
		if _, ok := index[parentID]; ok {
			children[parentID] = append(children[parentID], p.ID)
		} else {
			roots = append(roots, p.ID)
		}
	}

	var build func(id string) PageInfo
	build = func(id string) PageInfo {
		info := PageInfo{ID: id, Title: pages[index[id]].Title}
		for _, child := range children[id] {
			info.Children = append(info.Children, build(child))
		}
		return info
	}

	tree := make([]PageInfo, 0, len(roots))
	for _, id := range roots {
		tree = append(tree, build(id))
	}
	return tree
}
