// Package catalog holds the subjects, books and prerequisite connections of
// the mathematics roadmap.
//
// # Overview
//
// A [Catalog] is built once with [New] (or [Default] for the compiled-in
// roadmap) and is read-only afterwards. Subjects are keyed by a unique
// string id ("RealAnalysis"), carry a display name, a [Category]
// and an ordered reading list:
//
//	cat, err := catalog.New([]catalog.Subject{
//	    {ID: "A", Name: "Algebra", Category: catalog.Essential,
//	        Books: []catalog.Book{{Title: "T", Author: "Au", Category: catalog.Essential}}},
//	    {ID: "B", Name: "Beyond", Category: catalog.Optional},
//	}, []catalog.Connection{{From: "A", To: "B"}})
//
// Looking up an id the catalog does not define returns an
// [errors.UnknownSubjectError]. Connections are kept verbatim; the graph
// package reports endpoints that do not resolve.
//
// # Categories
//
// Three categories exist: [Essential], [Recommended] and [Optional].
// [Categories] returns them in the order the renderer draws them and the
// book shelf lists them.
package catalog
