package config

// Policy is the duplicate-name (or, for Lists, duplicate-value) strategy
// applied by Add at insertion time.
type Policy int

const (
	// PolicyThrowException fails Add when the candidate collides with an
	// existing child.
	PolicyThrowException Policy = iota
	// PolicyKeep leaves the existing child untouched and returns it.
	PolicyKeep
	// PolicyOverwrite removes the existing child and appends the
	// candidate, so it loses its original position.
	PolicyOverwrite
)

// ParsePolicy maps a CLI/config policy name to its Policy value. Accepted
// names are "keep", "overwrite" and "throw".
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "keep":
		return PolicyKeep, nil
	case "overwrite":
		return PolicyOverwrite, nil
	case "throw", "":
		return PolicyThrowException, nil
	default:
		return 0, &GenericError{Reason: "unknown policy: " + name}
	}
}

// Add inserts child into the container n, which must have Kind() ==
// KindContainer. Comments are always appended without a uniqueness check.
// For a Group, a non-comment child must carry a valid name; duplicates are
// resolved per policy by name. For a List, a non-comment child must be
// anonymous; duplicates are resolved per policy by structural equality.
// Add returns a reference to the resulting in-tree child.
func (n *Node) Add(child *Node, policy Policy) (*Node, error) {
	if n.kind != KindContainer {
		return nil, &GenericError{Reason: "Add called on non-container node"}
	}
	if child.kind == KindComment {
		n.children = append(n.children, child)
		return child, nil
	}

	if n.containerKind == Group {
		name, hasName := child.Name()
		if !hasName || !ValidName(name) {
			return nil, &InvalidNameError{Name: name, ContainerKind: Group}
		}
		if idx := n.indexByName(name); idx >= 0 {
			switch policy {
			case PolicyKeep:
				return n.children[idx], nil
			case PolicyOverwrite:
				n.children = append(n.children[:idx], n.children[idx+1:]...)
				n.children = append(n.children, child)
				return child, nil
			default:
				return nil, &ItemNameAlreadyExistsError{Name: name}
			}
		}
		n.children = append(n.children, child)
		return child, nil
	}

	// List
	if _, hasName := child.Name(); hasName {
		name, _ := child.Name()
		return nil, &InvalidNameError{Name: name, ContainerKind: List}
	}
	if idx := n.indexByEqual(child); idx >= 0 {
		switch policy {
		case PolicyKeep:
			return n.children[idx], nil
		case PolicyOverwrite:
			n.children = append(n.children[:idx], n.children[idx+1:]...)
			n.children = append(n.children, child)
			return child, nil
		default:
			return nil, &ItemAlreadyExistsError{}
		}
	}
	n.children = append(n.children, child)
	return child, nil
}

func (n *Node) indexByName(name string) int {
	for i, c := range n.children {
		if c.kind == KindComment {
			continue
		}
		if cname, ok := c.Name(); ok && cname == name {
			return i
		}
	}
	return -1
}

func (n *Node) indexByEqual(candidate *Node) int {
	for i, c := range n.children {
		if c.kind == KindComment {
			continue
		}
		if c.Equal(candidate) {
			return i
		}
	}
	return -1
}

// ChildByName returns the first non-comment child named name, or
// ItemNotFoundError if there is none.
func (n *Node) ChildByName(name string) (*Node, error) {
	if n.kind != KindContainer {
		return nil, &GenericError{Reason: "ChildByName called on non-container node"}
	}
	if idx := n.indexByName(name); idx >= 0 {
		return n.children[idx], nil
	}
	return nil, &ItemNotFoundError{Segment: name}
}

// RemoveIndex removes the child at the given position.
func (n *Node) RemoveIndex(index int) error {
	if n.kind != KindContainer {
		return &GenericError{Reason: "RemoveIndex called on non-container node"}
	}
	if index < 0 || index >= len(n.children) {
		return &OutOfBoundsError{Index: index, Size: len(n.children)}
	}
	n.children = append(n.children[:index], n.children[index+1:]...)
	return nil
}

// RemovePath resolves path from n and removes the terminal child from its
// immediate parent container.
func (n *Node) RemovePath(path string) error {
	segments, err := parsePath(path)
	if err != nil {
		return &InvalidPathError{Path: path}
	}
	parent, index, err := resolveParent(n, segments)
	if err != nil {
		return err
	}
	return parent.RemoveIndex(index)
}

// Clear removes every child from n.
func (n *Node) Clear() {
	if n.kind == KindContainer {
		n.children = nil
	}
}
