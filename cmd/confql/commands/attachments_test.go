package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"confql/pkg/confluence"
)

func attachmentsMock() *confluence.MockClient {
	mock := confluence.NewMockClient()
	mock.AddContent("DOCS", confluence.Content{ID: "123", Title: "Architecture"})
	return mock
}

func TestAttachmentsUploadAndList(t *testing.T) {
	mock := attachmentsMock()
	withMockClient(t, mock)
	cfgPath := writeConfig(t, testConfigYAML)

	dir := t.TempDir()
	diagram := filepath.Join(dir, "diagram.png")
	notes := filepath.Join(dir, "notes.pdf")
	require.NoError(t, os.WriteFile(diagram, []byte("png"), 0644))
	require.NoError(t, os.WriteFile(notes, []byte("pdf"), 0644))

	out, _, err := runCmdForTest(t, []string{"attachments", "upload", "--config", cfgPath, "--page", "Architecture", "--file", diagram, notes})
	require.NoError(t, err)
	assert.Contains(t, out, "Uploaded 'diagram.png' (ID: att-diagram.png) to 'Architecture'")
	assert.Contains(t, out, "Uploaded 'notes.pdf' (ID: att-notes.pdf) to 'Architecture'")
	require.Len(t, mock.Attachments["123"], 2)

	// Same name again becomes a new version
	_, _, err = runCmdForTest(t, []string{"attachments", "upload", "--config", cfgPath, "--page", "123", "--file", diagram})
	require.NoError(t, err)
	require.Len(t, mock.Attachments["123"], 2)

	out, _, err = runCmdForTest(t, []string{"attachments", "list", "--config", cfgPath, "--page", "123"})
	require.NoError(t, err)
	assert.Contains(t, out, "Attachments on 'Architecture' (ID: 123):")
	assert.Contains(t, out, "📎 diagram.png (ID: att-diagram.png, v2)")
	assert.Contains(t, out, "📎 notes.pdf (ID: att-notes.pdf, v1)")
}

func TestAttachmentsListEmpty(t *testing.T) {
	withMockClient(t, attachmentsMock())

	out, _, err := runCmdForTest(t, []string{"attachments", "list", "--config", writeConfig(t, testConfigYAML), "--page", "Architecture"})
	require.NoError(t, err)
	assert.Equal(t, "No attachments on 'Architecture'.\n", out)
}

func TestAttachmentsDownload(t *testing.T) {
	mock := attachmentsMock()
	mock.Attachments["123"] = []confluence.Attachment{{ID: "att1", Title: "runbook.pdf"}}
	mock.AttachmentData["att1"] = "%PDF-1.7"
	withMockClient(t, mock)
	cfgPath := writeConfig(t, testConfigYAML)

	out, _, err := runCmdForTest(t, []string{"attachments", "download", "--config", cfgPath, "--page", "123", "--id", "att1"})
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", out)

	target := filepath.Join(t.TempDir(), "runbook.pdf")
	_, stderr, err := runCmdForTest(t, []string{"attachments", "download", "--config", cfgPath, "--page", "123", "--id", "att1", "--output", target})
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(data))
	assert.Contains(t, stderr, "Saved attachment att1")

	_, _, err = runCmdForTest(t, []string{"attachments", "download", "--config", cfgPath, "--page", "123", "--id", "nope"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "attachment nope not found on 123")
}

func TestAttachmentsRequireFlags(t *testing.T) {
	withMockClient(t, attachmentsMock())
	cfgPath := writeConfig(t, testConfigYAML)

	_, _, err := runCmdForTest(t, []string{"attachments", "list", "--config", cfgPath})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page flag is required")

	_, _, err = runCmdForTest(t, []string{"attachments", "upload", "--config", cfgPath, "--page", "123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file flag is required")

	_, _, err = runCmdForTest(t, []string{"attachments", "download", "--config", cfgPath, "--page", "123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id flag is required")
}
