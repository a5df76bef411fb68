package cql

import "fmt"

// Field identifies a queryable content attribute.
type Field int

const (
	FieldAncestor Field = iota + 1
	FieldContainer
	FieldContent
	FieldContributor
	FieldCreated
	FieldCreator
	FieldFavourite
	FieldID
	FieldLabel
	FieldLastModified
	FieldMacro
	FieldMention
	FieldParent
	FieldSpace
	FieldText
	FieldTitle
	FieldType
	FieldWatcher
)

var fieldTokens = map[Field]string{
	FieldAncestor:     "ancestor",
	FieldContainer:    "container",
	FieldContent:      "content",
	FieldContributor:  "contributor",
	FieldCreated:      "created",
	FieldCreator:      "creator",
	FieldFavourite:    "favourite",
	FieldID:           "id",
	FieldLabel:        "label",
	FieldLastModified: "lastModified",
	FieldMacro:        "macro",
	FieldMention:      "mention",
	FieldParent:       "parent",
	FieldSpace:        "space",
	FieldText:         "text",
	FieldTitle:        "title",
	FieldType:         "type",
	FieldWatcher:      "watcher",
}

// Fields returns every known field in declaration order.
func Fields() []Field {
	out := make([]Field, 0, len(fieldTokens))
	for f := FieldAncestor; f <= FieldWatcher; f++ {
		out = append(out, f)
	}
	return out
}

// String returns the CQL token for the field.
func (f Field) String() string {
	if tok, ok := fieldTokens[f]; ok {
		return tok
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// ParseField resolves a CQL token such as "lastModified" to its Field.
func ParseField(token string) (Field, error) {
	for f, tok := range fieldTokens {
		if tok == token {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown cql field %q", token)
}

// fieldSet is the allowed-field table a builder validates against.
type fieldSet []Field

func (s fieldSet) contains(f Field) bool {
	for _, allowed := range s {
		if allowed == f {
			return true
		}
	}
	return false
}
