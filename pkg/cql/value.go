package cql

var valueFields = fieldSet{FieldContainer, FieldMacro, FieldLabel}

// ValueBuilder builds equality and membership predicates over container,
// macro and label.
type ValueBuilder struct {
	predicate
}

func NewValueBuilder(field Field) (*ValueBuilder, error) {
	p, err := newPredicate(field, valueFields, "value predicates")
	if err != nil {
		return nil, err
	}
	return &ValueBuilder{predicate: p}, nil
}

func (b *ValueBuilder) Not() *ValueBuilder {
	b.toggle()
	return b
}

func (b *ValueBuilder) Is(value string) *Clause {
	return b.is(quote(value))
}

func (b *ValueBuilder) In(values ...string) *Clause {
	return b.in(quoteAll(values))
}
