package cql

import (
	"fmt"
	"strings"
)

// Direction is the sort direction of an ordering directive.
type Direction int

const (
	// DirectionDefault leaves the direction to the server.
	DirectionDefault Direction = iota
	Ascending
	Descending
)

func (d Direction) suffix() string {
	switch d {
	case Ascending:
		return " asc"
	case Descending:
		return " desc"
	default:
		return ""
	}
}

type orderDirective struct {
	field     Field
	direction Direction
}

// Clause is a finalized CQL predicate, optionally followed by ordering
// directives. Clauses are immutable: OrderBy and friends return a copy.
type Clause struct {
	field    Field
	operator Operator
	value    string
	literal  string
	orders   []orderDirective
	err      error
}

func newClause(field Field, op Operator, value string) *Clause {
	return &Clause{field: field, operator: op, value: value}
}

func literalClause(s string) *Clause {
	return &Clause{literal: s}
}

func errClause(err error) *Clause {
	return &Clause{err: err}
}

// Field returns the field the predicate applies to. It is zero for
// composed clauses.
func (c *Clause) Field() Field { return c.field }

// Operator returns the predicate operator. It is zero for composed clauses.
func (c *Clause) Operator() Operator { return c.operator }

// Err returns the first error recorded while building the clause.
func (c *Clause) Err() error { return c.err }

// Negate returns a copy of c with its operator replaced by the operator's
// negation. Composed clauses cannot be negated.
func (c *Clause) Negate() *Clause {
	next := *c
	if next.err != nil {
		return &next
	}
	if c.literal != "" {
		next.err = fmt.Errorf("%w: composed clause %s", ErrUnsupportedNegation, c.literal)
		return &next
	}
	op, err := c.operator.Negate()
	if err != nil {
		next.err = err
		return &next
	}
	next.operator = op
	return &next
}

// OrderBy appends an ordering directive using the server's default direction.
func (c *Clause) OrderBy(field Field) *Clause {
	return c.orderBy(field, DirectionDefault)
}

// OrderByAscending appends an ascending ordering directive.
func (c *Clause) OrderByAscending(field Field) *Clause {
	return c.orderBy(field, Ascending)
}

// OrderByDescending appends a descending ordering directive.
func (c *Clause) OrderByDescending(field Field) *Clause {
	return c.orderBy(field, Descending)
}

// Label is multi-valued and cannot be sorted on.
func (c *Clause) orderBy(field Field, dir Direction) *Clause {
	next := *c
	next.orders = make([]orderDirective, len(c.orders), len(c.orders)+1)
	copy(next.orders, c.orders)
	if next.err != nil {
		return &next
	}
	if field == FieldLabel {
		next.err = &FieldError{Field: field, Operation: "order by"}
		return &next
	}
	next.orders = append(next.orders, orderDirective{field: field, direction: dir})
	return &next
}

// Render returns the CQL text of the clause.
func (c *Clause) Render() (string, error) {
	if c.err != nil {
		return "", c.err
	}

	var b strings.Builder
	if c.literal != "" {
		b.WriteString(c.literal)
	} else {
		b.WriteString(c.field.String())
		b.WriteByte(' ')
		b.WriteString(c.operator.String())
		b.WriteByte(' ')
		b.WriteString(c.value)
	}

	if len(c.orders) > 0 {
		b.WriteString(" order by ")
		for i, o := range c.orders {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(o.field.String())
			b.WriteString(o.direction.suffix())
		}
	}
	return b.String(), nil
}

// String returns the rendered clause, or an empty string when the clause
// carries an error.
func (c *Clause) String() string {
	s, err := c.Render()
	if err != nil {
		return ""
	}
	return s
}
