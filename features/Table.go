package features

import (
	"fmt"
)

// Table is an ordered, immutable collection of Features indexed by
// channel id. The i-th Feature of a Table describes channel i of an
// observation layer stack.
type Table struct {
	name     string
	features []Feature
	byName   map[string]int
}

// NewTable creates and returns a new Table. Features must be listed
// in channel order, so that features[i].Index == i, and each feature
// must have a unique, non-empty name and a scale of at least 1.
func NewTable(name string, features []Feature) (Table, error) {
	if len(features) == 0 {
		return Table{}, fmt.Errorf("newtable: table %q has no features", name)
	}

	fs := make([]Feature, len(features))
	byName := make(map[string]int, len(features))
	for i, f := range features {
		if f.Index != i {
			return Table{}, fmt.Errorf("newtable: feature %q out of order"+
				"\n\twant(%v)\n\thave(%v)", f.Name, i, f.Index)
		}
		if f.Name == "" {
			return Table{}, fmt.Errorf("newtable: feature %d has no name", i)
		}
		if _, ok := byName[f.Name]; ok {
			return Table{}, fmt.Errorf("newtable: duplicate feature %q", f.Name)
		}
		if f.Scale < 1 {
			return Table{}, fmt.Errorf("newtable: feature %q must have "+
				"scale >= 1, have(%v)", f.Name, f.Scale)
		}
		if f.Type != Scalar && f.Type != Categorical {
			return Table{}, fmt.Errorf("newtable: feature %q has invalid "+
				"type %v", f.Name, f.Type)
		}

		fs[i] = f
		byName[f.Name] = i
	}

	return Table{name: name, features: fs, byName: byName}, nil
}

// mustTable is like NewTable but panics if the table is invalid. It is
// used only for the built-in tables.
func mustTable(name string, features []Feature) Table {
	t, err := NewTable(name, features)
	if err != nil {
		panic(err)
	}
	return t
}

// Name returns the name of the Table
func (t Table) Name() string {
	return t.name
}

// Len returns the number of channels described by the Table
func (t Table) Len() int {
	return len(t.features)
}

// At returns the Feature describing channel i. At panics if i is out
// of range.
func (t Table) At(i int) Feature {
	return t.features[i]
}

// Index returns the channel index of the feature with the given name
// and whether such a feature exists
func (t Table) Index(name string) (int, bool) {
	i, ok := t.byName[name]
	return i, ok
}

// Features returns a copy of the Features in the Table in channel
// order
func (t Table) Features() []Feature {
	fs := make([]Feature, len(t.features))
	copy(fs, t.features)
	return fs
}

// String returns a string representation of the Table
func (t Table) String() string {
	return fmt.Sprintf("Table | %v: %d channels", t.name, t.Len())
}
