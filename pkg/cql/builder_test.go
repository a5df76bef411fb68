package cql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderConstructorsValidateFields(t *testing.T) {
	constructors := []struct {
		name    string
		allowed []Field
		build   func(Field) error
	}{
		{"user", []Field{FieldCreator, FieldContributor, FieldMention, FieldWatcher, FieldFavourite}, func(f Field) error {
			_, err := NewUserBuilder(f)
			return err
		}},
		{"space", []Field{FieldSpace}, func(f Field) error {
			_, err := NewSpaceBuilder(f)
			return err
		}},
		{"type", []Field{FieldType}, func(f Field) error {
			_, err := NewTypeBuilder(f)
			return err
		}},
		{"text", []Field{FieldText, FieldTitle}, func(f Field) error {
			_, err := NewTextBuilder(f)
			return err
		}},
		{"title", []Field{FieldTitle}, func(f Field) error {
			_, err := NewTitleBuilder(f)
			return err
		}},
		{"content", []Field{FieldAncestor, FieldContent, FieldID, FieldParent}, func(f Field) error {
			_, err := NewContentBuilder(f)
			return err
		}},
		{"date", []Field{FieldCreated, FieldLastModified}, func(f Field) error {
			_, err := NewDateTimeBuilder(f)
			return err
		}},
		{"value", []Field{FieldContainer, FieldMacro, FieldLabel}, func(f Field) error {
			_, err := NewValueBuilder(f)
			return err
		}},
	}

	for _, c := range constructors {
		allowed := make(map[Field]bool, len(c.allowed))
		for _, f := range c.allowed {
			allowed[f] = true
		}
		for _, f := range Fields() {
			err := c.build(f)
			if allowed[f] {
				assert.NoError(t, err, "%s builder should accept %s", c.name, f)
				continue
			}
			require.Error(t, err, "%s builder should reject %s", c.name, f)
			assert.True(t, IsInvalidField(err))
			assert.ErrorIs(t, err, ErrInvalidField)

			var fe *FieldError
			require.True(t, errors.As(err, &fe))
			assert.Equal(t, f, fe.Field)
			assert.Contains(t, err.Error(), f.String())
		}
	}
}

func TestValidatedBuilderProducesClause(t *testing.T) {
	b, err := NewUserBuilder(FieldWatcher)
	require.NoError(t, err)
	assert.Equal(t, `watcher != currentUser()`, b.Not().IsCurrentUser().String())

	d, err := NewDateTimeBuilder(FieldLastModified)
	require.NoError(t, err)
	assert.Equal(t, `lastModified > startOfDay()`, d.After().StartOfDay(0).String())
}

func TestFieldTokens(t *testing.T) {
	assert.Len(t, Fields(), 18)
	assert.Equal(t, "lastModified", FieldLastModified.String())
	assert.Equal(t, "favourite", FieldFavourite.String())
	assert.Equal(t, "Field(0)", Field(0).String())

	for _, f := range Fields() {
		parsed, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, parsed)
	}

	_, err := ParseField("lastmodified")
	assert.Error(t, err)
}

func TestOperatorTokens(t *testing.T) {
	want := []string{"=", "!=", "~", "!~", "in", "not in", "<", "<=", ">", ">="}
	ops := Operators()
	require.Len(t, ops, len(want))
	for i, op := range ops {
		assert.Equal(t, want[i], op.String())
	}
}

func TestOperatorNegationIsInvolution(t *testing.T) {
	for _, op := range Operators() {
		if op == In || op == NotIn {
			continue
		}
		neg, err := op.Negate()
		require.NoError(t, err)
		assert.NotEqual(t, op, neg)
		back, err := neg.Negate()
		require.NoError(t, err)
		assert.Equal(t, op, back, "negating %s twice", op)
	}
}

func TestOperatorNegationOfNotIn(t *testing.T) {
	neg, err := In.Negate()
	require.NoError(t, err)
	assert.Equal(t, NotIn, neg)

	neg, err = NotIn.Negate()
	require.NoError(t, err)
	assert.Equal(t, NotIn, neg)
}

func TestOperatorNegationUnknown(t *testing.T) {
	_, err := Operator(42).Negate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedNegation)
	assert.Contains(t, err.Error(), "Operator(42)")
}

func TestRelationalNegations(t *testing.T) {
	pairs := map[Operator]Operator{
		Less:        GreaterOrEqual,
		LessOrEqual: Greater,
		Contains:    DoesNotContain,
		Equal:       NotEqual,
	}
	for op, want := range pairs {
		got, err := op.Negate()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}
