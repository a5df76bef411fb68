package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confql/pkg/confluence"
)

func writeStorageFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))
	return p
}

func TestPutPageCreatesNewPage(t *testing.T) {
	mock := confluence.NewMockClient()
	withMockClient(t, mock)
	file := writeStorageFile(t, "Release Notes.xhtml", "<p>hello</p>")

	out, _, err := runCmdForTest(t, []string{"put-page", "--config", writeConfig(t, testConfigYAML), "--file", file})
	require.NoError(t, err)

	require.Equal(t, []string{"Release Notes"}, mock.CreateCalls)
	created := mock.ContentsByTitle["DOCS:Release Notes"]
	require.NotNil(t, created)
	assert.Equal(t, "<p>hello</p>", created.Body.Storage.Value)
	assert.Equal(t, "page", created.Type)
	assert.Contains(t, out, "Created page 'Release Notes' (ID: Release Notes-id) in space 'DOCS'")
}

func TestPutPageUpdatesExistingPage(t *testing.T) {
	mock := confluence.NewMockClient()
	existing := mock.AddContent("OPS", confluence.Content{ID: "42", Title: "Runbook", Version: confluence.Version{Number: 3}})
	withMockClient(t, mock)
	file := writeStorageFile(t, "runbook.html", "<p>v4</p>")

	out, _, err := runCmdForTest(t, []string{"put-page", "--config", writeConfig(t, testConfigYAML), "--project", "ops", "--file", file, "--title", "Runbook"})
	require.NoError(t, err)

	assert.Empty(t, mock.CreateCalls)
	assert.Equal(t, []string{"Runbook"}, mock.UpdateCalls)
	assert.Equal(t, 4, existing.Version.Number)
	assert.Equal(t, "<p>v4</p>", existing.Body.Storage.Value)
	assert.Contains(t, out, "Updated page 'Runbook' (ID: 42) in space 'OPS'")
}

func TestPutPageBlogPost(t *testing.T) {
	mock := confluence.NewMockClient()
	withMockClient(t, mock)
	file := writeStorageFile(t, "news.html", "<p>news</p>")

	_, _, err := runCmdForTest(t, []string{"put-page", "--config", writeConfig(t, testConfigYAML), "--file", file, "--blog"})
	require.NoError(t, err)
	assert.Equal(t, "blogpost", mock.ContentsByTitle["DOCS:news"].Type)
}

func TestPutPageParentResolution(t *testing.T) {
	mock := confluence.NewMockClient()
	mock.AddContent("DOCS", confluence.Content{ID: "10", Title: "Reference"})
	withMockClient(t, mock)
	cfgPath := writeConfig(t, testConfigYAML)
	file := writeStorageFile(t, "api.html", "<p>api</p>")

	_, _, err := runCmdForTest(t, []string{"put-page", "--config", cfgPath, "--file", file, "--parent", "Reference"})
	require.NoError(t, err)

	_, _, err = runCmdForTest(t, []string{"put-page", "--config", cfgPath, "--file", file, "--title", "Other", "--parent", "Nowhere"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parent page 'Nowhere' not found in space 'DOCS'")
}

func TestPutPageFileErrors(t *testing.T) {
	withMockClient(t, confluence.NewMockClient())
	cfgPath := writeConfig(t, testConfigYAML)

	_, _, err := runCmdForTest(t, []string{"put-page", "--config", cfgPath, "--file", filepath.Join(t.TempDir(), "missing.html")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to access file")

	_, _, err = runCmdForTest(t, []string{"put-page", "--config", cfgPath, "--file", t.TempDir()})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
