package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confql/pkg/confluence"
)

func TestSearchPrint(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "space type title",
			args: []string{"--space", "DOCS", "--type", "page", "--title", "runbook"},
			want: `(space = "DOCS" and type = page and title ~ "runbook")`,
		},
		{
			name: "current user",
			args: []string{"--creator", "me"},
			want: `creator = currentUser()`,
		},
		{
			name: "favourite spaces and ordering",
			args: []string{"--favourite-spaces", "--space", "OPS", "--label", "release", "--order-by", "lastModified:desc"},
			want: `(space in (favouriteSpaces(), "OPS") and label in ("release")) order by lastModified desc`,
		},
		{
			name: "several spaces excluding a label",
			args: []string{"--space", "A", "--space", "B", "--exclude-label", "draft"},
			want: `(space in ("A", "B") and label not in ("draft"))`,
		},
		{
			name: "recent and watched",
			args: []string{"--modified-within", "168h", "--watching"},
			want: `(watcher = currentUser() and lastModified >= startOfDay("-7d"))`,
		},
		{
			name: "types under ancestor",
			args: []string{"--type", "page", "--type", "blogpost", "--ancestor", "42", "--order-by", "title"},
			want: `(type in (page, blogpost) and ancestor = 42) order by title`,
		},
		{
			name: "created after date",
			args: []string{"--created-after", "2024-03-05", "--contributor", "alice"},
			want: `(contributor = "alice" and created >= "2024-03-05")`,
		},
		{
			name: "raw cql",
			args: []string{"--cql", `label = "adr" order by created desc`},
			want: `label = "adr" order by created desc`,
		},
		{
			name: "terms are NFC normalized",
			args: []string{"--text", "Cafe\u0301", "--mentions-me"},
			want: "(text ~ \"Caf\u00e9\" and mention = currentUser())",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := runCmdForTest(t, append([]string{"search", "--print"}, tt.args...))
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestSearchRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		err  string
	}{
		{"no criteria", nil, "no search criteria"},
		{"unknown type", []string{"--type", "wiki"}, "unknown content type 'wiki'"},
		{"unknown order field", []string{"--space", "A", "--order-by", "size"}, "invalid --order-by 'size'"},
		{"bad direction", []string{"--space", "A", "--order-by", "title:up"}, "invalid --order-by direction 'up'"},
		{"label ordering", []string{"--space", "A", "--order-by", "label"}, "cannot be used for order by"},
		{"cql with filters", []string{"--cql", "type = page", "--space", "A"}, "--cql cannot be combined"},
		{"bad date", []string{"--created-after", "05/03/2024"}, "invalid date '05/03/2024'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCmdForTest(t, append([]string{"search", "--print"}, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestSearchRunsAgainstClient(t *testing.T) {
	mock := confluence.NewMockClient()
	mock.SearchResults = []confluence.Content{
		{ID: "1", Type: "page", Title: "Runbook", Space: &confluence.Space{Key: "OPS"}},
		{ID: "2", Type: "blogpost", Title: "Release 1.2"},
	}
	withMockClient(t, mock)
	cfgPath := writeConfig(t, testConfigYAML)

	out, _, err := runCmdForTest(t, []string{"search", "--config", cfgPath, "--project", "ops", "--title", "run"})
	require.NoError(t, err)

	assert.Equal(t, []string{`(space = "OPS" and title ~ "run")`}, mock.SearchQueries)
	assert.Equal(t, 10, mock.LastSearchOptions.Limit, "limit comes from search.limit")
	assert.Contains(t, out, "📄 Runbook (ID: 1) [OPS]")
	assert.Contains(t, out, "📰 Release 1.2 (ID: 2)")
	assert.Contains(t, out, "Showing 2 result(s) from 0")
}

func TestSearchProjectPrint(t *testing.T) {
	cfgPath := writeConfig(t, testConfigYAML)

	out, _, err := runCmdForTest(t, []string{"search", "--config", cfgPath, "--project", "ops", "--space", "DOCS", "--print"})
	require.NoError(t, err)
	assert.Equal(t, `space in ("DOCS", "OPS")`+"\n", out)
}

func TestSearchNoResultsAndLimitFlag(t *testing.T) {
	mock := confluence.NewMockClient()
	withMockClient(t, mock)
	cfgPath := writeConfig(t, testConfigYAML)

	out, _, err := runCmdForTest(t, []string{"search", "--config", cfgPath, "--label", "nothing", "--limit", "3", "--start", "6"})
	require.NoError(t, err)
	assert.Equal(t, "No results.\n", out)
	assert.Equal(t, confluence.SearchOptions{Start: 6, Limit: 3}, mock.LastSearchOptions)
}

func TestPrintSearchResultsSuggestsNextPage(t *testing.T) {
	var b strings.Builder
	printSearchResults(&b, &confluence.ResultPage[confluence.Content]{
		Results: []confluence.Content{{ID: "1", Title: "A", Type: "comment"}},
		Start:   20,
		Links:   confluence.Links{Next: "/rest/api/content/search?start=21"},
	})
	assert.Contains(t, b.String(), "💬 A (ID: 1)")
	assert.Contains(t, b.String(), "More results available: use --start 21")
}
