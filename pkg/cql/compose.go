package cql

import (
	"fmt"
	"strings"
)

// And joins clauses with "and" inside parentheses.
func And(clauses ...*Clause) *Clause {
	return compose("and", clauses)
}

// Or joins clauses with "or" inside parentheses.
func Or(clauses ...*Clause) *Clause {
	return compose("or", clauses)
}

func compose(conj string, clauses []*Clause) *Clause {
	if len(clauses) < 2 {
		return errClause(fmt.Errorf("%w: %s got %d", ErrTooFewClauses, conj, len(clauses)))
	}
	parts := make([]string, len(clauses))
	for i, c := range clauses {
		if c == nil {
			return errClause(fmt.Errorf("%w: %s operand %d is nil", ErrTooFewClauses, conj, i))
		}
		s, err := c.Render()
		if err != nil {
			return errClause(err)
		}
		parts[i] = s
	}
	return literalClause("(" + strings.Join(parts, " "+conj+" ") + ")")
}
