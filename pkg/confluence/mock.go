package confluence

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// MockClient is an in-memory implementation of API for tests.
type MockClient struct {
	mu sync.Mutex

	Contents         map[string]*Content     // contentID -> Content
	ContentsByTitle  map[string]*Content     // spaceKey:title -> Content
	Children         map[string][]PageInfo   // contentID -> children
	Ancestors        map[string][]PageInfo   // contentID -> ancestors chain
	SpaceHierarchies map[string][]PageInfo   // spaceKey -> root pages (fully nested)
	Spaces           map[string]*Space       // key -> Space
	Users            map[string]*User        // username or account id -> User
	CurrentUser      *User
	Attachments      map[string][]Attachment // contentID -> attachments
	AttachmentData   map[string]string       // attachmentID -> data

	// SearchResults is returned by Search regardless of the query.
	SearchResults []Content
	// SearchQueries records each rendered CQL query.
	SearchQueries []string
	// LastSearchOptions holds the options of the latest Search call.
	LastSearchOptions SearchOptions

	CreateCalls      []string // titles created
	UpdateCalls      []string // titles updated
	DeleteCalls      []string // ids deleted
	LastUploadedFile string

	// Err, when set, is returned by every call.
	Err error
}

func NewMockClient() *MockClient {
	return &MockClient{
		Contents:         make(map[string]*Content),
		ContentsByTitle:  make(map[string]*Content),
		Children:         make(map[string][]PageInfo),
		Ancestors:        make(map[string][]PageInfo),
		SpaceHierarchies: make(map[string][]PageInfo),
		Spaces:           make(map[string]*Space),
		Users:            make(map[string]*User),
		Attachments:      make(map[string][]Attachment),
		AttachmentData:   make(map[string]string),
	}
}

func (m *MockClient) key(spaceKey, title string) string { return spaceKey + ":" + title }

// AddContent registers content so it can be fetched by id and by title.
func (m *MockClient) AddContent(spaceKey string, c Content) *Content {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := c
	if stored.Space == nil {
		stored.Space = &Space{Key: spaceKey}
	}
	m.Contents[stored.ID] = &stored
	m.ContentsByTitle[m.key(spaceKey, stored.Title)] = &stored
	return &stored
}

func (m *MockClient) notFound(what string) error {
	return &APIError{StatusCode: 404, Body: what + " not found"}
}

func (m *MockClient) GetContent(_ context.Context, contentID string, _ ...string) (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Contents[contentID]
	if !ok {
		return nil, m.notFound("content " + contentID)
	}
	return c, nil
}

func (m *MockClient) FindContentByTitle(_ context.Context, spaceKey, title string) (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	return m.ContentsByTitle[m.key(spaceKey, title)], nil
}

func (m *MockClient) CreateContent(_ context.Context, nc NewContent) (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	contentType := nc.Type
	if contentType == "" {
		contentType = "page"
	}
	c := &Content{ID: nc.Title + "-id", Type: contentType, Title: nc.Title, Space: &Space{Key: nc.SpaceKey}}
	c.Body.Storage.Value = nc.Body
	c.Version.Number = 1
	m.Contents[c.ID] = c
	m.ContentsByTitle[m.key(nc.SpaceKey, nc.Title)] = c
	m.CreateCalls = append(m.CreateCalls, nc.Title)
	return c, nil
}

func (m *MockClient) UpdateContent(_ context.Context, contentID, title, body string) (*Content, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	c, ok := m.Contents[contentID]
	if !ok {
		return nil, m.notFound("content " + contentID)
	}
	c.Title = title
	c.Body.Storage.Value = body
	c.Version.Number++
	m.UpdateCalls = append(m.UpdateCalls, title)
	return c, nil
}

func (m *MockClient) DeleteContent(_ context.Context, contentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	c, ok := m.Contents[contentID]
	if !ok {
		return m.notFound("content " + contentID)
	}
	delete(m.Contents, contentID)
	if c.Space != nil {
		delete(m.ContentsByTitle, m.key(c.Space.Key, c.Title))
	}
	m.DeleteCalls = append(m.DeleteCalls, contentID)
	return nil
}

func (m *MockClient) GetAncestors(_ context.Context, contentID string) ([]PageInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Ancestors[contentID], m.Err
}

func (m *MockClient) GetChildPages(_ context.Context, contentID string) ([]PageInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Children[contentID], m.Err
}

func (m *MockClient) GetPageHierarchy(_ context.Context, spaceKey, parentTitle string) ([]PageInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if parentTitle == "" {
		return m.SpaceHierarchies[spaceKey], nil
	}
	stack := append([]PageInfo(nil), m.SpaceHierarchies[spaceKey]...)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.Title == parentTitle {
			return cur.Children, nil
		}
		stack = append(stack, cur.Children...)
	}
	return nil, fmt.Errorf("parent page '%s' not found in space '%s'", parentTitle, spaceKey)
}

func (m *MockClient) Search(_ context.Context, query Query, opts SearchOptions) (*ResultPage[Content], error) {
	if query == nil {
		return nil, fmt.Errorf("search requires a query")
	}
	text, err := query.Render()
	if err != nil {
		return nil, fmt.Errorf("invalid cql query: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.SearchQueries = append(m.SearchQueries, text)
	m.LastSearchOptions = opts
	if m.Err != nil {
		return nil, m.Err
	}

	results := m.SearchResults
	if opts.Start > 0 {
		if opts.Start >= len(results) {
			results = nil
		} else {
			results = results[opts.Start:]
		}
	}
	if opts.Limit > 0 && len(results) > opts.Limit {
		results = results[:opts.Limit]
	}
	return &ResultPage[Content]{
		Results: results,
		Start:   opts.Start,
		Limit:   opts.Limit,
		Size:    len(results),
	}, nil
}

func (m *MockClient) GetSpace(_ context.Context, key string) (*Space, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	s, ok := m.Spaces[key]
	if !ok {
		return nil, m.notFound("space " + key)
	}
	return s, nil
}

func (m *MockClient) ListSpaces(_ context.Context, opts ListSpacesOptions) (*ResultPage[Space], error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	keys := make([]string, 0, len(m.Spaces))
	for k := range m.Spaces {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var spaces []Space
	for _, k := range keys {
		s := m.Spaces[k]
		if opts.Type != "" && s.Type != opts.Type {
			continue
		}
		spaces = append(spaces, *s)
	}
	return &ResultPage[Space]{Results: spaces, Size: len(spaces), Limit: opts.Limit}, nil
}

func (m *MockClient) GetCurrentUser(_ context.Context) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	if m.CurrentUser == nil {
		return nil, &APIError{StatusCode: 401, Body: "not authenticated"}
	}
	return m.CurrentUser, nil
}

func (m *MockClient) GetUserByAccountID(_ context.Context, accountID string) (*User, error) {
	return m.lookupUser(accountID)
}

func (m *MockClient) GetUserByUsername(_ context.Context, username string) (*User, error) {
	return m.lookupUser(username)
}

func (m *MockClient) lookupUser(id string) (*User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, m.notFound("user " + id)
	}
	return u, nil
}

func (m *MockClient) ListAttachments(_ context.Context, contentID string) ([]Attachment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.Attachments[contentID], m.Err
}

func (m *MockClient) UploadAttachment(_ context.Context, contentID, filePath string) (*Attachment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	name := filepath.Base(filePath)
	m.LastUploadedFile = filePath
	for i, a := range m.Attachments[contentID] {
		if a.Title == name {
			m.Attachments[contentID][i].Version.Number++
			return &m.Attachments[contentID][i], nil
		}
	}
	att := Attachment{ID: "att-" + name, Type: "attachment", Title: name, Version: Version{Number: 1}}
	att.Links.Download = "/download/attachments/" + contentID + "/" + name
	m.Attachments[contentID] = append(m.Attachments[contentID], att)
	return &att, nil
}

func (m *MockClient) GetAttachmentDownloadURL(_ context.Context, contentID, attachmentID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return "", m.Err
	}
	for _, a := range m.Attachments[contentID] {
		if a.ID == attachmentID {
			return "attachments/" + attachmentID, nil
		}
	}
	return "", fmt.Errorf("attachment %s not found on %s", attachmentID, contentID)
}

func (m *MockClient) DownloadAttachment(ctx context.Context, contentID, attachmentID string, w io.Writer) error {
	if _, err := m.GetAttachmentDownloadURL(ctx, contentID, attachmentID); err != nil {
		return err
	}
	m.mu.Lock()
	data := m.AttachmentData[attachmentID]
	m.mu.Unlock()
	_, err := io.Copy(w, strings.NewReader(data))
	return err
}

var _ API = (*MockClient)(nil)
