package cql

import (
	"fmt"
	"strconv"
)

var contentFields = fieldSet{FieldAncestor, FieldContent, FieldID, FieldParent}

// ContentBuilder builds predicates that reference content by id.
type ContentBuilder struct {
	predicate
}

// NewContentBuilder returns a builder for ancestor, content, id or parent.
func NewContentBuilder(field Field) (*ContentBuilder, error) {
	p, err := newPredicate(field, contentFields, "content predicates")
	if err != nil {
		return nil, err
	}
	return &ContentBuilder{predicate: p}, nil
}

func (b *ContentBuilder) Not() *ContentBuilder {
	b.toggle()
	return b
}

func (b *ContentBuilder) Is(id int64) *Clause {
	return b.is(strconv.FormatInt(id, 10))
}

// IsContent matches the id of an existing piece of content. The id is
// rendered unquoted.
func (b *ContentBuilder) IsContent(content Entity) *Clause {
	if content == nil || content.Identifier() == "" {
		return errClause(fmt.Errorf("%w: %s content has no id", ErrEmptyValue, b.field))
	}
	return b.is(content.Identifier())
}

func (b *ContentBuilder) In(ids ...int64) *Clause {
	return b.in(formatIDs(ids))
}

// InRecentlyViewedContent matches recently viewed content. A zero offset
// is omitted from the rendered call.
func (b *ContentBuilder) InRecentlyViewedContent(limit, offset int) *Clause {
	args := []string{strconv.Itoa(limit)}
	if offset != 0 {
		args = append(args, strconv.Itoa(offset))
	}
	return b.finish(In, call("recentlyViewedContent", args...))
}
