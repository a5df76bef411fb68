package cql

import "fmt"

var userFields = fieldSet{FieldCreator, FieldContributor, FieldMention, FieldWatcher, FieldFavourite}

// UserBuilder builds predicates over user-identity fields.
type UserBuilder struct {
	predicate
}

// NewUserBuilder returns a builder for creator, contributor, mention,
// watcher or favourite.
func NewUserBuilder(field Field) (*UserBuilder, error) {
	p, err := newPredicate(field, userFields, "user predicates")
	if err != nil {
		return nil, err
	}
	return &UserBuilder{predicate: p}, nil
}

// Not negates the predicate that follows.
func (b *UserBuilder) Not() *UserBuilder {
	b.toggle()
	return b
}

// IsCurrentUser matches the authenticated user.
func (b *UserBuilder) IsCurrentUser() *Clause {
	return b.is(fnCurrentUser)
}

// Is matches a single user name.
func (b *UserBuilder) Is(name string) *Clause {
	return b.is(quote(name))
}

// IsUser matches a user by its identifier.
func (b *UserBuilder) IsUser(user Entity) *Clause {
	ids, err := b.identifiers([]Entity{user})
	if err != nil {
		return errClause(err)
	}
	return b.Is(ids[0])
}

// In matches any of the given user names.
func (b *UserBuilder) In(names ...string) *Clause {
	return b.in(quoteAll(names))
}

// InUsers matches any of the given users.
func (b *UserBuilder) InUsers(users ...Entity) *Clause {
	ids, err := b.identifiers(users)
	if err != nil {
		return errClause(err)
	}
	return b.In(ids...)
}

// InCurrentUserAnd matches the authenticated user or any of names.
func (b *UserBuilder) InCurrentUserAnd(names ...string) *Clause {
	return b.in(append([]string{fnCurrentUser}, quoteAll(names)...))
}

// InCurrentUserAndUsers matches the authenticated user or any of users.
func (b *UserBuilder) InCurrentUserAndUsers(users ...Entity) *Clause {
	ids, err := b.identifiers(users)
	if err != nil {
		return errClause(err)
	}
	return b.InCurrentUserAnd(ids...)
}

func (b *UserBuilder) identifiers(users []Entity) ([]string, error) {
	ids := make([]string, len(users))
	for i, u := range users {
		if u == nil || u.Identifier() == "" {
			return nil, fmt.Errorf("%w: %s user %d has no identifier", ErrEmptyValue, b.field, i)
		}
		ids[i] = u.Identifier()
	}
	return ids, nil
}
