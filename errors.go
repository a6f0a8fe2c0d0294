package config

import "fmt"

// ParseError is returned by Parse for any lexical, syntactic or semantic
// problem found while reading source text. Line is 1-based.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// InvalidNameError is returned when a non-comment item's name violates the
// group naming rule, or when a named item is added to a List, or an
// anonymous item is added to a Group.
type InvalidNameError struct {
	Name          string
	ContainerKind ContainerKind
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q for %s item", e.Name, e.ContainerKind)
}

// InvalidPathError is returned when a path string does not match the path
// grammar (§6.2).
type InvalidPathError struct {
	Path string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid path %q", e.Path)
}

// ItemNotFoundError is returned when path resolution cannot find a named or
// indexed child.
type ItemNotFoundError struct {
	Segment string
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("item not found: %q", e.Segment)
}

// ItemAlreadyExistsError is returned by List.Add under PolicyThrowException
// when the candidate child is structurally equal to an existing child.
type ItemAlreadyExistsError struct{}

func (e *ItemAlreadyExistsError) Error() string {
	return "item already exists"
}

// ItemNameAlreadyExistsError is returned by Group.Add under
// PolicyThrowException when the candidate child's name is already in use.
type ItemNameAlreadyExistsError struct {
	Name string
}

func (e *ItemNameAlreadyExistsError) Error() string {
	return fmt.Sprintf("item name already exists: %q", e.Name)
}

// OutOfBoundsError is returned when an index is not a valid child position.
type OutOfBoundsError struct {
	Index int
	Size  int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds for size %d", e.Index, e.Size)
}

// WrongValueTypeConversionError is returned by a typed scalar accessor when
// the node's kind does not match the requested type.
type WrongValueTypeConversionError struct {
	SrcKind Kind
	DstKind Kind
}

func (e *WrongValueTypeConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s to %s", e.SrcKind, e.DstKind)
}

// GenericError covers the handful of failures the spec describes without a
// dedicated kind, such as applying a lookup path to a non-container node.
type GenericError struct {
	Reason string
}

func (e *GenericError) Error() string {
	return e.Reason
}
