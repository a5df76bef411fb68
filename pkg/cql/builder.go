package cql

import "fmt"

// Entity is a Confluence object referenced by its identifier: a user's
// username or account id, a space key or a content id.
type Entity interface {
	Identifier() string
}

// predicate carries the state shared by every field-typed builder.
type predicate struct {
	field  Field
	negate bool
}

func newPredicate(field Field, allowed fieldSet, operation string) (predicate, error) {
	if !allowed.contains(field) {
		return predicate{}, &FieldError{Field: field, Operation: operation}
	}
	return predicate{field: field}, nil
}

func (p *predicate) toggle() { p.negate = !p.negate }

// finish applies pending negation and produces the finalized clause.
func (p predicate) finish(op Operator, value string) *Clause {
	if p.negate {
		neg, err := op.Negate()
		if err != nil {
			return errClause(err)
		}
		op = neg
	}
	return newClause(p.field, op, value)
}

func (p predicate) is(value string) *Clause {
	return p.finish(Equal, value)
}

func (p predicate) in(values []string) *Clause {
	if len(values) == 0 {
		return errClause(fmt.Errorf("%w: %s in () needs at least one value", ErrEmptyValue, p.field))
	}
	return p.finish(In, list(values))
}
