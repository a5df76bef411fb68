package cql

import "time"

var dateTimeFields = fieldSet{FieldCreated, FieldLastModified}

// DateTimeBuilder builds predicates over created and lastModified. A
// relational selector picks the operator, then a value function on the
// returned DateTimeValue finalizes the clause.
type DateTimeBuilder struct {
	predicate
}

func NewDateTimeBuilder(field Field) (*DateTimeBuilder, error) {
	p, err := newPredicate(field, dateTimeFields, "date predicates")
	if err != nil {
		return nil, err
	}
	return &DateTimeBuilder{predicate: p}, nil
}

func (b *DateTimeBuilder) Not() *DateTimeBuilder {
	b.toggle()
	return b
}

func (b *DateTimeBuilder) On() *DateTimeValue         { return b.compare(Equal) }
func (b *DateTimeBuilder) Before() *DateTimeValue     { return b.compare(Less) }
func (b *DateTimeBuilder) BeforeOrOn() *DateTimeValue { return b.compare(LessOrEqual) }
func (b *DateTimeBuilder) After() *DateTimeValue      { return b.compare(Greater) }
func (b *DateTimeBuilder) AfterOrOn() *DateTimeValue  { return b.compare(GreaterOrEqual) }

func (b *DateTimeBuilder) compare(op Operator) *DateTimeValue {
	return &DateTimeValue{predicate: b.predicate, operator: op}
}

// DateTimeValue is the second half of a date predicate.
//
// The relative functions take an increment: StartOfDay(-7*24*time.Hour)
// renders startOfDay("-7d"). A zero increment renders startOfDay().
type DateTimeValue struct {
	predicate
	operator Operator
}

// DateTime compares against an absolute date, or date and time when t is
// not at midnight.
func (v *DateTimeValue) DateTime(t time.Time) *Clause {
	return v.finish(v.operator, formatDateTime(t))
}

func (v *DateTimeValue) StartOfDay(increment time.Duration) *Clause {
	return v.function("startOfDay", increment)
}

func (v *DateTimeValue) StartOfWeek(increment time.Duration) *Clause {
	return v.function("startOfWeek", increment)
}

func (v *DateTimeValue) StartOfMonth(increment time.Duration) *Clause {
	return v.function("startOfMonth", increment)
}

func (v *DateTimeValue) StartOfYear(increment time.Duration) *Clause {
	return v.function("startOfYear", increment)
}

func (v *DateTimeValue) EndOfDay(increment time.Duration) *Clause {
	return v.function("endOfDay", increment)
}

func (v *DateTimeValue) EndOfWeek(increment time.Duration) *Clause {
	return v.function("endOfWeek", increment)
}

func (v *DateTimeValue) EndOfMonth(increment time.Duration) *Clause {
	return v.function("endOfMonth", increment)
}

func (v *DateTimeValue) EndOfYear(increment time.Duration) *Clause {
	return v.function("endOfYear", increment)
}

func (v *DateTimeValue) function(name string, increment time.Duration) *Clause {
	return v.finish(v.operator, dateFunction(name, increment))
}
