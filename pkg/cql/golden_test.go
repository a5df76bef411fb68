package cql

import (
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// Queries the CLI and the hierarchy lookup send to the search endpoint.
func TestSearchQueriesGolden(t *testing.T) {
	queries := []*Clause{
		And(Where.Space().Is("DEV"), Where.Type().IsPage()),
		And(
			Where.Space().InFavouriteSpacesAnd("OPS"),
			Where.LastModified().AfterOrOn().StartOfWeek(-14*24*time.Hour),
			Where.Label().Not().In("draft", "archived"),
		).OrderByDescending(FieldLastModified),
		Or(
			Where.Mention().IsCurrentUser(),
			And(Where.Watcher().IsCurrentUser(), Where.Type().In(ContentTypePage, ContentTypeBlogPost)),
		),
		Where.Ancestor().Is(123456).OrderBy(FieldTitle).OrderByAscending(FieldCreated),
		And(Where.Text().Contains("incident"), Where.Created().Before().DateTime(time.Date(2024, 1, 31, 9, 15, 0, 0, time.UTC))),
	}

	lines := make([]string, len(queries))
	for i, q := range queries {
		s, err := q.Render()
		require.NoError(t, err)
		lines[i] = s
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "search_queries", []byte(strings.Join(lines, "\n")+"\n"))
}
