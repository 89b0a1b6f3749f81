package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-playground/validator/v10"

	rmerrors "github.com/mathroadmap/mathroadmap/pkg/errors"
)

// ErrDuplicateSubject is returned by [New] when two subjects share an id.
var ErrDuplicateSubject = errors.New("duplicate subject id")

// Category is the importance tier of a subject or book.
type Category string

const (
	Essential   Category = "essential"
	Recommended Category = "recommended"
	Optional    Category = "optional"
)

// Categories returns the known categories in draw and tab order.
func Categories() []Category {
	return []Category{Essential, Recommended, Optional}
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	return slices.Contains(Categories(), c)
}

// Book is a single reading recommendation.
type Book struct {
	Title    string   `json:"title" yaml:"title" validate:"required"`
	Author   string   `json:"author" yaml:"author" validate:"required"`
	Category Category `json:"category" yaml:"category" validate:"required"`
}

// String returns the flattened "<title> by <author>" description.
func (b Book) String() string {
	return b.Title + " by " + b.Author
}

// Subject is a node of the roadmap together with its reading list.
// Books keep their declaration order.
type Subject struct {
	ID       string   `json:"id" yaml:"id" validate:"required"`
	Name     string   `json:"name" yaml:"name" validate:"required"`
	Category Category `json:"category" yaml:"category" validate:"required"`
	Books    []Book   `json:"books,omitempty" yaml:"books,omitempty" validate:"dive"`
}

// Connection is a directed prerequisite: From should be studied before To.
type Connection struct {
	From string `json:"from" yaml:"from"`
	To   string `json:"to" yaml:"to"`
}

// Catalog is the immutable registry of subjects and their connections.
// All accessors return copies, so a Catalog can be shared freely.
//
// The zero value is an empty catalog.
type Catalog struct {
	subjects    map[string]Subject
	connections []Connection
}

// Stats summarises a catalog.
type Stats struct {
	Subjects    int
	Books       int
	Connections int
	ByCategory  map[Category]int
}

var validate = validator.New()

// New validates the given records and returns a catalog holding copies of
// them. Subjects must have a non-empty id and a name; books need a
// title and an author. Duplicate ids fail with [ErrDuplicateSubject].
//
// Connections are stored as given. Whether their endpoints exist is checked
// when a graph is built from the catalog.
func New(subjects []Subject, connections []Connection) (*Catalog, error) {
	c := &Catalog{
		subjects:    make(map[string]Subject, len(subjects)),
		connections: slices.Clone(connections),
	}
	for i, s := range subjects {
		if err := validate.Struct(s); err != nil {
			return nil, rmerrors.FromValidation(rmerrors.ErrCodeInvalidInput, err, "subject %d (%q)", i, s.ID)
		}
		if _, dup := c.subjects[s.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSubject, s.ID)
		}
		s.Books = slices.Clone(s.Books)
		c.subjects[s.ID] = s
	}
	return c, nil
}

// MustNew is like [New] but panics on error. It is meant for compiled-in
// tables such as [Default].
func MustNew(subjects []Subject, connections []Connection) *Catalog {
	c, err := New(subjects, connections)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the built-in mathematics roadmap. Every call constructs a
// fresh catalog.
func Default() *Catalog {
	return MustNew(defaultSubjects(), defaultConnections())
}

// Len returns the number of subjects.
func (c *Catalog) Len() int { return len(c.subjects) }

// Subject returns the subject with the given id, or an
// [rmerrors.UnknownSubjectError] when there is none.
func (c *Catalog) Subject(id string) (Subject, error) {
	s, ok := c.subjects[id]
	if !ok {
		return Subject{}, &rmerrors.UnknownSubjectError{ID: id}
	}
	s.Books = slices.Clone(s.Books)
	return s, nil
}

// Has reports whether a subject with the given id exists.
func (c *Catalog) Has(id string) bool {
	_, ok := c.subjects[id]
	return ok
}

// Subjects returns a copy of the subject map keyed by id.
func (c *Catalog) Subjects() map[string]Subject {
	out := make(map[string]Subject, len(c.subjects))
	for id, s := range c.subjects {
		s.Books = slices.Clone(s.Books)
		out[id] = s
	}
	return out
}

// SubjectIDs returns all subject ids in ascending order.
func (c *Catalog) SubjectIDs() []string {
	return slices.Sorted(maps.Keys(c.subjects))
}

// Connections returns the connections in declaration order.
func (c *Catalog) Connections() []Connection {
	return slices.Clone(c.connections)
}

// Stats counts subjects per category, books and connections.
func (c *Catalog) Stats() Stats {
	st := Stats{
		Subjects:    len(c.subjects),
		Connections: len(c.connections),
		ByCategory:  make(map[Category]int, 3),
	}
	for _, s := range c.subjects {
		st.ByCategory[s.Category]++
		st.Books += len(s.Books)
	}
	return st
}
