package errors

import "fmt"

// UnknownSubjectError is returned when a subject id is looked up that the
// catalog does not define. The catalog is a closed, compiled-in table, so
// this always points at a programming or data error.
type UnknownSubjectError struct {
	ID string
}

// Error implements the error interface.
func (e *UnknownSubjectError) Error() string {
	return fmt.Sprintf("unknown subject %q", e.ID)
}

// Code returns the error code for this error type.
func (e *UnknownSubjectError) Code() Code {
	return ErrCodeUnknownSubject
}

// DanglingEdgeError is returned when a connection references a subject id
// that is not in the catalog. Missing names the absent endpoint; when both
// endpoints are absent it holds the source.
type DanglingEdgeError struct {
	From    string
	To      string
	Missing string
}

// Error implements the error interface.
func (e *DanglingEdgeError) Error() string {
	return fmt.Sprintf("connection %s -> %s references unknown subject %q", e.From, e.To, e.Missing)
}

// Code returns the error code for this error type.
func (e *DanglingEdgeError) Code() Code {
	return ErrCodeDanglingEdge
}

// UnknownCategoryError is returned by style lookups for a category that
// has no entry in the style table.
type UnknownCategoryError struct {
	Category string
}

// Error implements the error interface.
func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Category)
}

// Code returns the error code for this error type.
func (e *UnknownCategoryError) Code() Code {
	return ErrCodeUnknownCategory
}
