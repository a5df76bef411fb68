package cql

var (
	textFields  = fieldSet{FieldText, FieldTitle}
	titleFields = fieldSet{FieldTitle}
)

// TextBuilder builds full-text predicates over text or title.
type TextBuilder struct {
	predicate
}

func NewTextBuilder(field Field) (*TextBuilder, error) {
	p, err := newPredicate(field, textFields, "text predicates")
	if err != nil {
		return nil, err
	}
	return &TextBuilder{predicate: p}, nil
}

func (b *TextBuilder) Not() *TextBuilder {
	b.toggle()
	return b
}

// Contains matches content whose field contains the search term.
func (b *TextBuilder) Contains(term string) *Clause {
	return b.finish(Contains, quote(term))
}

// TitleBuilder extends text predicates with exact title matches.
type TitleBuilder struct {
	predicate
}

func NewTitleBuilder(field Field) (*TitleBuilder, error) {
	p, err := newPredicate(field, titleFields, "title predicates")
	if err != nil {
		return nil, err
	}
	return &TitleBuilder{predicate: p}, nil
}

func (b *TitleBuilder) Not() *TitleBuilder {
	b.toggle()
	return b
}

func (b *TitleBuilder) Contains(term string) *Clause {
	return b.finish(Contains, quote(term))
}

func (b *TitleBuilder) Is(title string) *Clause {
	return b.is(quote(title))
}

func (b *TitleBuilder) In(titles ...string) *Clause {
	return b.in(quoteAll(titles))
}
