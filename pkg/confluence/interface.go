package confluence

import (
	"context"
	"io"
)

// ContentAPI covers pages, blog posts and the page tree.
type ContentAPI interface {
	GetContent(ctx context.Context, contentID string, expand ...string) (*Content, error)
	FindContentByTitle(ctx context.Context, spaceKey, title string) (*Content, error)
	CreateContent(ctx context.Context, nc NewContent) (*Content, error)
	UpdateContent(ctx context.Context, contentID, title, body string) (*Content, error)
	DeleteContent(ctx context.Context, contentID string) error
	GetAncestors(ctx context.Context, contentID string) ([]PageInfo, error)
	GetChildPages(ctx context.Context, contentID string) ([]PageInfo, error)
	GetPageHierarchy(ctx context.Context, spaceKey, parentTitle string) ([]PageInfo, error)
	Search(ctx context.Context, query Query, opts SearchOptions) (*ResultPage[Content], error)
}

type SpaceAPI interface {
	GetSpace(ctx context.Context, key string) (*Space, error)
	ListSpaces(ctx context.Context, opts ListSpacesOptions) (*ResultPage[Space], error)
}

type UserAPI interface {
	GetCurrentUser(ctx context.Context) (*User, error)
	GetUserByAccountID(ctx context.Context, accountID string) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
}

type AttachmentAPI interface {
	ListAttachments(ctx context.Context, contentID string) ([]Attachment, error)
	UploadAttachment(ctx context.Context, contentID, filePath string) (*Attachment, error)
	GetAttachmentDownloadURL(ctx context.Context, contentID, attachmentID string) (string, error)
	DownloadAttachment(ctx context.Context, contentID, attachmentID string, w io.Writer) error
}

// API is the full set of operations the command line uses.
type API interface {
	ContentAPI
	SpaceAPI
	UserAPI
	AttachmentAPI
}

var _ API = (*Client)(nil)
