package confluence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

const duplicateAttachmentMessage = "same file name as an existing attachment"

func (c *Client) ListAttachments(ctx context.Context, contentID string) ([]Attachment, error) {
	return c.listAttachments(ctx, contentID, nil)
}

func (c *Client) listAttachments(ctx context.Context, contentID string, q url.Values) ([]Attachment, error) {
	var result ResultPage[Attachment]
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/content/" + url.PathEscape(contentID) + "/child/attachment",
		query:  expandParam(q, c.expand.Attachment),
	}, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list attachments of %s: %w", contentID, err)
	}
	return result.Results, nil
}

func (c *Client) findAttachmentByFilename(ctx context.Context, contentID, filename string) (*Attachment, error) {
	q := url.Values{}
	q.Set("filename", filename)
	attachments, err := c.listAttachments(ctx, contentID, q)
	if err != nil {
		return nil, err
	}
	for i := range attachments {
		if attachments[i].Title == filename {
			return &attachments[i], nil
		}
	}
	return nil, fmt.Errorf("attachment with filename '%s' not found on %s", filename, contentID)
}

// UploadAttachment attaches the file to content. When an attachment with
// the same file name exists, its data is replaced with a new version.
func (c *Client) UploadAttachment(ctx context.Context, contentID, filePath string) (*Attachment, error) {
	filename := filepath.Base(filePath)
	path := "/content/" + url.PathEscape(contentID) + "/child/attachment"

	attachment, err := c.postAttachment(ctx, path, filePath)
	if err == nil {
		return attachment, nil
	}
	if !hasStatus(err, http.StatusBadRequest) || !strings.Contains(err.Error(), duplicateAttachmentMessage) {
		return nil, err
	}

	if c.logger != nil {
		c.logger.Debug("Attachment '%s' already exists on %s, uploading a new version", filename, contentID)
	}
	existing, findErr := c.findAttachmentByFilename(ctx, contentID, filename)
	if findErr != nil {
		return nil, fmt.Errorf("failed to resolve existing attachment: %w", findErr)
	}
	return c.postAttachment(ctx, path+"/"+url.PathEscape(existing.ID)+"/data", filePath)
}

func (c *Client) postAttachment(ctx context.Context, path, filePath string) (*Attachment, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open attachment: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to read attachment: %w", err)
	}
	if err := mw.WriteField("minorEdit", "true"); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart body: %w", err)
	}

	header := http.Header{}
	header.Set("X-Atlassian-Token", "no-check")

	// Creating returns a result list; updating data returns the attachment.
	var created ResultPage[Attachment]
	var raw bytes.Buffer
	err = c.do(ctx, request{
		method:      http.MethodPost,
		path:        path,
		raw:         &buf,
		contentType: mw.FormDataContentType(),
		header:      header,
	}, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}

	if err := json.Unmarshal(raw.Bytes(), &created); err == nil && len(created.Results) > 0 {
		return &created.Results[0], nil
	}
	var single Attachment
	if err := json.Unmarshal(raw.Bytes(), &single); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &single, nil
}

// GetAttachmentDownloadURL returns the absolute download URL of an attachment.
func (c *Client) GetAttachmentDownloadURL(ctx context.Context, contentID, attachmentID string) (string, error) {
	attachments, err := c.ListAttachments(ctx, contentID)
	if err != nil {
		return "", err
	}
	for _, a := range attachments {
		if a.ID == attachmentID {
			if a.Links.Download == "" {
				return "", fmt.Errorf("attachment %s has no download link", attachmentID)
			}
			return c.baseURL + a.Links.Download, nil
		}
	}
	return "", fmt.Errorf("attachment %s not found on %s", attachmentID, contentID)
}

// DownloadAttachment streams the attachment's data to w.
func (c *Client) DownloadAttachment(ctx context.Context, contentID, attachmentID string, w io.Writer) error {
	link, err := c.GetAttachmentDownloadURL(ctx, contentID, attachmentID)
	if err != nil {
		return err
	}
	if err := c.do(ctx, request{method: http.MethodGet, url: link}, w); err != nil {
		return fmt.Errorf("failed to download attachment %s: %w", attachmentID, err)
	}
	return nil
}
