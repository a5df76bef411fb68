package confluence

// Content is a page, blog post, comment or attachment.
type Content struct {
	ID        string    `json:"id,omitempty"`
	Type      string    `json:"type,omitempty"`
	Status    string    `json:"status,omitempty"`
	Title     string    `json:"title"`
	Space     *Space    `json:"space,omitempty"`
	Body      Body      `json:"body,omitempty"`
	Version   Version   `json:"version,omitempty"`
	Ancestors []Content `json:"ancestors,omitempty"`
	Links     Links     `json:"_links,omitempty"`
}

// Identifier returns the content id.
func (c Content) Identifier() string { return c.ID }

type Body struct {
	Storage Storage `json:"storage,omitempty"`
	View    Storage `json:"view,omitempty"`
}

type Storage struct {
	Value          string `json:"value"`
	Representation string `json:"representation,omitempty"`
}

type Version struct {
	Number    int    `json:"number"`
	When      string `json:"when,omitempty"`
	Message   string `json:"message,omitempty"`
	MinorEdit bool   `json:"minorEdit,omitempty"`
	By        *User  `json:"by,omitempty"`
}

type Links struct {
	Base     string `json:"base,omitempty"`
	WebUI    string `json:"webui,omitempty"`
	Self     string `json:"self,omitempty"`
	Download string `json:"download,omitempty"`
	Next     string `json:"next,omitempty"`
}

// Space is a Confluence space.
type Space struct {
	ID     int64  `json:"id,omitempty"`
	Key    string `json:"key"`
	Name   string `json:"name,omitempty"`
	Type   string `json:"type,omitempty"`
	Status string `json:"status,omitempty"`
	Links  Links  `json:"_links,omitempty"`
}

// Identifier returns the space key.
func (s Space) Identifier() string { return s.Key }

// User is a Confluence user. Cloud instances identify users by AccountID;
// Server instances by Username and UserKey.
type User struct {
	Type        string `json:"type,omitempty"`
	Username    string `json:"username,omitempty"`
	UserKey     string `json:"userKey,omitempty"`
	AccountID   string `json:"accountId,omitempty"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
}

// Identifier returns the value CQL user predicates match against.
func (u User) Identifier() string {
	if u.Username != "" {
		return u.Username
	}
	return u.AccountID
}

// Attachment is a file attached to a piece of content.
type Attachment struct {
	ID         string               `json:"id"`
	Type       string               `json:"type,omitempty"`
	Title      string               `json:"title"`
	Metadata   AttachmentMetadata   `json:"metadata,omitempty"`
	Extensions AttachmentExtensions `json:"extensions,omitempty"`
	Version    Version              `json:"version,omitempty"`
	Links      Links                `json:"_links,omitempty"`
}

type AttachmentExtensions struct {
	MediaType string `json:"mediaType,omitempty"`
	FileSize  int64  `json:"fileSize,omitempty"`
}

type AttachmentMetadata struct {
	MediaType string `json:"mediaType,omitempty"`
	Comment   string `json:"comment,omitempty"`
}

// ResultPage is one page of a paginated listing.
type ResultPage[T any] struct {
	Results   []T   `json:"results"`
	Start     int   `json:"start"`
	Limit     int   `json:"limit"`
	Size      int   `json:"size"`
	TotalSize int   `json:"totalSize,omitempty"`
	Links     Links `json:"_links,omitempty"`
}

// HasNext reports whether the server advertised a further page.
func (p ResultPage[T]) HasNext() bool {
	return p.Links.Next != ""
}

// PageInfo is a node of a page tree.
type PageInfo struct {
	ID       string     `json:"id"`
	Title    string     `json:"title"`
	Children []PageInfo `json:"children,omitempty"`
}
