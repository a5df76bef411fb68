package cql

import (
	"fmt"
	"strconv"
)

var spaceFields = fieldSet{FieldSpace}

// SpaceBuilder builds predicates over the space field.
type SpaceBuilder struct {
	predicate
}

func NewSpaceBuilder(field Field) (*SpaceBuilder, error) {
	p, err := newPredicate(field, spaceFields, "space predicates")
	if err != nil {
		return nil, err
	}
	return &SpaceBuilder{predicate: p}, nil
}

func (b *SpaceBuilder) Not() *SpaceBuilder {
	b.toggle()
	return b
}

// Is matches a space key.
func (b *SpaceBuilder) Is(key string) *Clause {
	return b.is(quote(key))
}

// IsSpace matches the key of space.
func (b *SpaceBuilder) IsSpace(space Entity) *Clause {
	if space == nil || space.Identifier() == "" {
		return errClause(fmt.Errorf("%w: space has no key", ErrEmptyValue))
	}
	return b.Is(space.Identifier())
}

// In matches any of the given space keys.
func (b *SpaceBuilder) In(keys ...string) *Clause {
	return b.in(quoteAll(keys))
}

// InFavouriteSpaces matches the current user's favourite spaces.
func (b *SpaceBuilder) InFavouriteSpaces() *Clause {
	return b.finish(In, fnFavouriteSpaces)
}

// InFavouriteSpacesAnd matches favourite spaces plus the given keys.
func (b *SpaceBuilder) InFavouriteSpacesAnd(keys ...string) *Clause {
	return b.in(append([]string{fnFavouriteSpaces}, quoteAll(keys)...))
}

// InRecentlyViewedSpaces matches the last limit spaces the user viewed.
func (b *SpaceBuilder) InRecentlyViewedSpaces(limit int) *Clause {
	return b.finish(In, call("recentlyViewedSpaces", strconv.Itoa(limit)))
}
