package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confql/pkg/confluence"
)

func sampleHierarchy() []confluence.PageInfo {
	return []confluence.PageInfo{
		{ID: "1", Title: "Home", Children: []confluence.PageInfo{
			{ID: "2", Title: "Guide", Children: []confluence.PageInfo{{ID: "4", Title: "Install"}}},
			{ID: "3", Title: "FAQ"},
		}},
		{ID: "5", Title: "Archive"},
	}
}

func TestPrintPageTree(t *testing.T) {
	var buf bytes.Buffer
	printPageTree(&buf, sampleHierarchy(), 0, true)

	want := "📁 Home (ID: 1)\n" +
		"  ├── 📁 Guide (ID: 2)\n" +
		"    └── 📄 Install (ID: 4)\n" +
		"  └── 📄 FAQ (ID: 3)\n" +
		"📄 Archive (ID: 5)\n"
	assert.Equal(t, want, buf.String())
}

func TestListPages(t *testing.T) {
	mock := confluence.NewMockClient()
	mock.SpaceHierarchies["DOCS"] = sampleHierarchy()
	withMockClient(t, mock)
	cfgPath := writeConfig(t, testConfigYAML)

	out, _, err := runCmdForTest(t, []string{"list-pages", "--config", cfgPath})
	require.NoError(t, err)
	assert.Contains(t, out, "🏢 Space 'DOCS':")
	assert.Contains(t, out, "📁 Home (ID: 1)")

	out, _, err = runCmdForTest(t, []string{"list-pages", "--config", cfgPath, "--space", "DOCS", "--parent", "Guide"})
	require.NoError(t, err)
	assert.Contains(t, out, "🏢 Space 'DOCS' → 📁 'Guide':")
	assert.Contains(t, out, "📄 Install (ID: 4)")
	assert.NotContains(t, out, "Archive")
}

func TestListPagesMissingSpace(t *testing.T) {
	withMockClient(t, confluence.NewMockClient())
	cfgPath := writeConfig(t, `confluence:
  base_url: http://example
  username: u
  api_token: t
`)

	_, _, err := runCmdForTest(t, []string{"list-pages", "--config", cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "space flag or --project required")
}
