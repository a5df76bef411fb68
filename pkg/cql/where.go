package cql

// Factory starts clauses. Use the package-level Where value.
type Factory struct{}

// Where is the entry point for building clauses, e.g.
// cql.Where.Creator().IsCurrentUser().
var Where Factory

func (Factory) Creator() *UserBuilder     { return &UserBuilder{predicate{field: FieldCreator}} }
func (Factory) Contributor() *UserBuilder { return &UserBuilder{predicate{field: FieldContributor}} }
func (Factory) Mention() *UserBuilder     { return &UserBuilder{predicate{field: FieldMention}} }
func (Factory) Watcher() *UserBuilder     { return &UserBuilder{predicate{field: FieldWatcher}} }
func (Factory) Favourite() *UserBuilder   { return &UserBuilder{predicate{field: FieldFavourite}} }

func (Factory) Space() *SpaceBuilder { return &SpaceBuilder{predicate{field: FieldSpace}} }
func (Factory) Type() *TypeBuilder   { return &TypeBuilder{predicate{field: FieldType}} }
func (Factory) Text() *TextBuilder   { return &TextBuilder{predicate{field: FieldText}} }
func (Factory) Title() *TitleBuilder { return &TitleBuilder{predicate{field: FieldTitle}} }

func (Factory) Ancestor() *ContentBuilder { return &ContentBuilder{predicate{field: FieldAncestor}} }
func (Factory) Content() *ContentBuilder  { return &ContentBuilder{predicate{field: FieldContent}} }
func (Factory) ID() *ContentBuilder       { return &ContentBuilder{predicate{field: FieldID}} }
func (Factory) Parent() *ContentBuilder   { return &ContentBuilder{predicate{field: FieldParent}} }

func (Factory) Created() *DateTimeBuilder { return &DateTimeBuilder{predicate{field: FieldCreated}} }
func (Factory) LastModified() *DateTimeBuilder {
	return &DateTimeBuilder{predicate{field: FieldLastModified}}
}

func (Factory) Container() *ValueBuilder { return &ValueBuilder{predicate{field: FieldContainer}} }
func (Factory) Macro() *ValueBuilder     { return &ValueBuilder{predicate{field: FieldMacro}} }
func (Factory) Label() *ValueBuilder     { return &ValueBuilder{predicate{field: FieldLabel}} }
