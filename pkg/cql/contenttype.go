package cql

// ContentType is a value of the type field.
type ContentType string

const (
	ContentTypePage       ContentType = "page"
	ContentTypeBlogPost   ContentType = "blogpost"
	ContentTypeComment    ContentType = "comment"
	ContentTypeAttachment ContentType = "attachment"
)

func (t ContentType) String() string { return string(t) }

var typeFields = fieldSet{FieldType}

// TypeBuilder builds predicates over the content type field.
type TypeBuilder struct {
	predicate
}

func NewTypeBuilder(field Field) (*TypeBuilder, error) {
	p, err := newPredicate(field, typeFields, "content type predicates")
	if err != nil {
		return nil, err
	}
	return &TypeBuilder{predicate: p}, nil
}

func (b *TypeBuilder) Not() *TypeBuilder {
	b.toggle()
	return b
}

func (b *TypeBuilder) Is(t ContentType) *Clause { return b.is(string(t)) }

func (b *TypeBuilder) IsPage() *Clause { return b.Is(ContentTypePage) }

func (b *TypeBuilder) IsBlogPost() *Clause { return b.Is(ContentTypeBlogPost) }

func (b *TypeBuilder) IsComment() *Clause { return b.Is(ContentTypeComment) }

func (b *TypeBuilder) IsAttachment() *Clause { return b.Is(ContentTypeAttachment) }

// In matches any of the given content types.
func (b *TypeBuilder) In(types ...ContentType) *Clause {
	tokens := make([]string, len(types))
	for i, t := range types {
		tokens[i] = string(t)
	}
	return b.in(tokens)
}
