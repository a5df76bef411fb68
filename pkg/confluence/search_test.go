package confluence

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confql/pkg/cql"
)

func TestSearchSendsRenderedClause(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/content/search", func(w http.ResponseWriter, req *http.Request) {
			query = req.URL.Query()
			writeJSON(t, w, http.StatusOK, ResultPage[Content]{
				Results: []Content{{ID: "1", Type: "page", Title: "Runbook"}},
				Size:    1,
				Limit:   10,
				Links:   Links{Next: "/rest/api/content/search?cursor=abc"},
			})
		})
	})

	me := User{AccountID: "5b10"}
	dev := Space{Key: "DEV"}
	clause := cql.And(
		cql.Where.Space().IsSpace(dev),
		cql.Where.Contributor().InCurrentUserAndUsers(me),
	).OrderByDescending(cql.FieldLastModified)

	page, err := c.Search(context.Background(), clause, SearchOptions{Start: 10, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{`(space = "DEV" and contributor in (currentUser(), "5b10")) order by lastModified desc`},
		query["cql"])
	assert.Equal(t, []string{"10"}, query["start"])
	assert.Equal(t, []string{"10"}, query["limit"])
	assert.Equal(t, []string{"space,version"}, query["expand"])

	require.Len(t, page.Results, 1)
	assert.Equal(t, "Runbook", page.Results[0].Title)
	assert.True(t, page.HasNext())
}

func TestSearchWithParentContent(t *testing.T) {
	var got string
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/content/search", func(w http.ResponseWriter, req *http.Request) {
			got = req.URL.Query().Get("cql")
			writeJSON(t, w, http.StatusOK, ResultPage[Content]{})
		})
	})

	parent := Content{ID: "98765"}
	_, err := c.Search(context.Background(), cql.Where.Parent().IsContent(parent), SearchOptions{Expand: []string{}})
	require.NoError(t, err)
	assert.Equal(t, `parent = 98765`, got)
}

func TestSearchRawQuery(t *testing.T) {
	var got string
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/content/search", func(w http.ResponseWriter, req *http.Request) {
			got = req.URL.Query().Get("cql")
			writeJSON(t, w, http.StatusOK, ResultPage[Content]{})
		})
	})

	_, err := c.Search(context.Background(), RawQuery(`label = "runbook"`), SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, `label = "runbook"`, got)
}

func TestSearchRejectsInvalidQueries(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(r chi.Router) {
		r.Get("/content/search", func(w http.ResponseWriter, req *http.Request) {
			calls++
			writeJSON(t, w, http.StatusOK, ResultPage[Content]{})
		})
	})
	ctx := context.Background()

	_, err := c.Search(ctx, cql.Where.Label().Is("x").OrderBy(cql.FieldLabel), SearchOptions{})
	require.Error(t, err)
	assert.True(t, cql.IsInvalidField(err))

	_, err = c.Search(ctx, cql.And(cql.Where.Type().IsPage()), SearchOptions{})
	assert.ErrorIs(t, err, cql.ErrTooFewClauses)

	_, err = c.Search(ctx, RawQuery(""), SearchOptions{})
	assert.Error(t, err)

	_, err = c.Search(ctx, nil, SearchOptions{})
	assert.Error(t, err)

	assert.Zero(t, calls)
}

func TestMockClientRecordsQueries(t *testing.T) {
	m := NewMockClient()
	m.SearchResults = []Content{{ID: "1"}, {ID: "2"}, {ID: "3"}}

	page, err := m.Search(context.Background(), cql.Where.Creator().IsCurrentUser(), SearchOptions{Start: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, page.Results, 1)
	assert.Equal(t, "2", page.Results[0].ID)
	assert.Equal(t, []string{`creator = currentUser()`}, m.SearchQueries)
}
