// Package config implements the StormByte configuration language: a
// textual, typed, hierarchical format with groups, lists, scalars and
// comments, plus the parser and serializer that move between text and the
// in-memory tree.
package config

import "regexp"

// Kind identifies a Node's variant.
type Kind int

const (
	KindBool Kind = iota
	KindInteger
	KindDouble
	KindString
	KindContainer
	KindComment
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "Bool"
	case KindInteger:
		return "Integer"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindContainer:
		return "Container"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// ContainerKind distinguishes named groups from anonymous lists.
type ContainerKind int

const (
	Group ContainerKind = iota
	List
)

func (k ContainerKind) String() string {
	switch k {
	case Group:
		return "Group"
	case List:
		return "List"
	default:
		return "Unknown"
	}
}

// CommentFlavor identifies which comment syntax produced a Comment node.
type CommentFlavor int

const (
	SingleLineBash CommentFlavor = iota
	SingleLineC
	MultiLineC
)

func (f CommentFlavor) String() string {
	switch f {
	case SingleLineBash:
		return "SingleLineBash"
	case SingleLineC:
		return "SingleLineC"
	case MultiLineC:
		return "MultiLineC"
	default:
		return "Unknown"
	}
}

var nameRegexp = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// ValidName reports whether name satisfies the group item naming rule.
func ValidName(name string) bool {
	return nameRegexp.MatchString(name)
}

// Node is a tagged union over the six value kinds the language supports.
// Every non-comment node may carry a name; comments never do. A Container
// node owns its children exclusively.
type Node struct {
	name *string
	kind Kind

	boolValue   bool
	intValue    int32
	doubleValue float64
	stringValue string

	containerKind ContainerKind
	children      []*Node

	commentFlavor CommentFlavor
	commentText   string
}

// NewBool creates an anonymous Bool node. Use Named to attach a name.
func NewBool(v bool) *Node { return &Node{kind: KindBool, boolValue: v} }

// NewInteger creates an anonymous Integer node.
func NewInteger(v int32) *Node { return &Node{kind: KindInteger, intValue: v} }

// NewDouble creates an anonymous Double node.
func NewDouble(v float64) *Node { return &Node{kind: KindDouble, doubleValue: v} }

// NewString creates an anonymous String node.
func NewString(v string) *Node { return &Node{kind: KindString, stringValue: v} }

// NewGroup creates an anonymous, empty Group container.
func NewGroup() *Node { return &Node{kind: KindContainer, containerKind: Group} }

// NewList creates an anonymous, empty List container.
func NewList() *Node { return &Node{kind: KindContainer, containerKind: List} }

// NewComment creates a Comment node. Comments never carry a name.
func NewComment(flavor CommentFlavor, text string) *Node {
	return &Node{kind: KindComment, commentFlavor: flavor, commentText: text}
}

// Named attaches name to the node and returns it for chaining. It panics if
// called on a Comment node; validity against the owning container's rules
// is checked by Add, not here.
func (n *Node) Named(name string) *Node {
	if n.kind == KindComment {
		panic("config: comments cannot be named")
	}
	n.name = &name
	return n
}

// Name returns the node's name and whether it has one.
func (n *Node) Name() (string, bool) {
	if n.name == nil {
		return "", false
	}
	return *n.name, true
}

// Kind returns the node's variant tag.
func (n *Node) Kind() Kind { return n.kind }

// ContainerKind returns the container variant; only meaningful when
// Kind() == KindContainer.
func (n *Node) ContainerKind() ContainerKind { return n.containerKind }

// BoolValue returns the node's boolean payload.
func (n *Node) BoolValue() (bool, error) {
	if n.kind != KindBool {
		return false, &WrongValueTypeConversionError{SrcKind: n.kind, DstKind: KindBool}
	}
	return n.boolValue, nil
}

// IntegerValue returns the node's integer payload.
func (n *Node) IntegerValue() (int32, error) {
	if n.kind != KindInteger {
		return 0, &WrongValueTypeConversionError{SrcKind: n.kind, DstKind: KindInteger}
	}
	return n.intValue, nil
}

// DoubleValue returns the node's double payload.
func (n *Node) DoubleValue() (float64, error) {
	if n.kind != KindDouble {
		return 0, &WrongValueTypeConversionError{SrcKind: n.kind, DstKind: KindDouble}
	}
	return n.doubleValue, nil
}

// StringValue returns the node's string payload.
func (n *Node) StringValue() (string, error) {
	if n.kind != KindString {
		return "", &WrongValueTypeConversionError{SrcKind: n.kind, DstKind: KindString}
	}
	return n.stringValue, nil
}

// CommentFlavor returns the comment's flavor and whether n is a comment.
func (n *Node) CommentFlavor() (CommentFlavor, bool) {
	if n.kind != KindComment {
		return 0, false
	}
	return n.commentFlavor, true
}

// CommentText returns the comment's stored text and whether n is a comment.
func (n *Node) CommentText() (string, bool) {
	if n.kind != KindComment {
		return "", false
	}
	return n.commentText, true
}

// Children returns the container's immediate children in insertion order.
// The returned slice must not be mutated by the caller; use Add/Remove.
func (n *Node) Children() []*Node {
	if n.kind != KindContainer {
		return nil
	}
	return n.children
}

// Size returns the number of immediate children. It is 0 for non-container
// nodes.
func (n *Node) Size() int {
	if n.kind != KindContainer {
		return 0
	}
	return len(n.children)
}

// Count returns the recursive number of nodes below n: each comment or
// scalar child contributes 1, each container child contributes 1 plus its
// own Count. It is 0 for non-container nodes.
func (n *Node) Count() int {
	total := 0
	for _, c := range n.Children() {
		if c.kind == KindContainer {
			total += 1 + c.Count()
		} else {
			total++
		}
	}
	return total
}

// Equal reports whether n and other have the same name, variant and
// payload; container equality is element-wise and order-sensitive.
func (n *Node) Equal(other *Node) bool {
	if other == nil {
		return false
	}
	if !nameEqual(n.name, other.name) {
		return false
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindBool:
		return n.boolValue == other.boolValue
	case KindInteger:
		return n.intValue == other.intValue
	case KindDouble:
		return n.doubleValue == other.doubleValue
	case KindString:
		return n.stringValue == other.stringValue
	case KindComment:
		return n.commentFlavor == other.commentFlavor && n.commentText == other.commentText
	case KindContainer:
		if n.containerKind != other.containerKind {
			return false
		}
		if len(n.children) != len(other.children) {
			return false
		}
		for i, c := range n.children {
			if !c.Equal(other.children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func nameEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Clone returns a deep copy of n and, if n is a container, of its entire
// subtree.
func (n *Node) Clone() *Node {
	clone := &Node{
		kind:          n.kind,
		boolValue:     n.boolValue,
		intValue:      n.intValue,
		doubleValue:   n.doubleValue,
		stringValue:   n.stringValue,
		containerKind: n.containerKind,
		commentFlavor: n.commentFlavor,
		commentText:   n.commentText,
	}
	if n.name != nil {
		name := *n.name
		clone.name = &name
	}
	if n.kind == KindContainer {
		clone.children = make([]*Node, len(n.children))
		for i, c := range n.children {
			clone.children[i] = c.Clone()
		}
	}
	return clone
}
