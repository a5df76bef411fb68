package cql

import "fmt"

// Operator is a CQL comparison operator.
type Operator int

const (
	Equal Operator = iota + 1
	NotEqual
	Contains
	DoesNotContain
	In
	NotIn
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
)

var operatorTokens = map[Operator]string{
	Equal:          "=",
	NotEqual:       "!=",
	Contains:       "~",
	DoesNotContain: "!~",
	In:             "in",
	NotIn:          "not in",
	Less:           "<",
	LessOrEqual:    "<=",
	Greater:        ">",
	GreaterOrEqual: ">=",
}

// NotIn negates to itself rather than In. Search behaviour for the
// round trip has not been confirmed against a live instance, so the
// mapping is kept as is.
var operatorNegations = map[Operator]Operator{
	Equal:          NotEqual,
	NotEqual:       Equal,
	Contains:       DoesNotContain,
	DoesNotContain: Contains,
	In:             NotIn,
	NotIn:          NotIn,
	Less:           GreaterOrEqual,
	GreaterOrEqual: Less,
	LessOrEqual:    Greater,
	Greater:        LessOrEqual,
}

// Operators returns every known operator in declaration order.
func Operators() []Operator {
	out := make([]Operator, 0, len(operatorTokens))
	for op := Equal; op <= GreaterOrEqual; op++ {
		out = append(out, op)
	}
	return out
}

func (o Operator) String() string {
	if tok, ok := operatorTokens[o]; ok {
		return tok
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// Negate returns the logical opposite of o.
func (o Operator) Negate() (Operator, error) {
	neg, ok := operatorNegations[o]
	if !ok {
		return o, &OperatorError{Operator: o}
	}
	return neg, nil
}
