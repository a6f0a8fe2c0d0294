package config

import (
	"regexp"
	"strconv"
	"strings"
)

var indexRegexp = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)

type pathSegment struct {
	name  string
	index int
	isIdx bool
}

// parsePath splits path into segments, validating the grammar in §6.2: a
// segment is a name or a non-negative integer, and the first segment must
// begin with a letter.
func parsePath(path string) ([]pathSegment, error) {
	if path == "" {
		return nil, &GenericError{Reason: "empty path"}
	}
	parts := strings.Split(path, "/")
	segments := make([]pathSegment, len(parts))
	for i, p := range parts {
		switch {
		case ValidName(p):
			segments[i] = pathSegment{name: p}
		case i > 0 && indexRegexp.MatchString(p):
			idx, err := strconv.Atoi(p)
			if err != nil {
				return nil, &GenericError{Reason: "malformed index segment " + p}
			}
			segments[i] = pathSegment{index: idx, isIdx: true}
		default:
			return nil, &GenericError{Reason: "malformed path segment " + p}
		}
	}
	return segments, nil
}

// ValidPath reports whether path matches the path grammar in §6.2,
// independent of whether it resolves against any particular tree.
func ValidPath(path string) bool {
	_, err := parsePath(path)
	return err == nil
}

// Lookup resolves path starting from n and returns the node it names.
func (n *Node) Lookup(path string) (*Node, error) {
	segments, err := parsePath(path)
	if err != nil {
		return nil, &InvalidPathError{Path: path}
	}
	cur := n
	for _, seg := range segments {
		if cur.kind != KindContainer {
			return nil, &GenericError{Reason: "lookup path applied to non-container"}
		}
		if seg.isIdx {
			if seg.index < 0 || seg.index >= len(cur.children) {
				return nil, &ItemNotFoundError{Segment: strconv.Itoa(seg.index)}
			}
			cur = cur.children[seg.index]
			continue
		}
		child, err := cur.ChildByName(seg.name)
		if err != nil {
			return nil, err
		}
		cur = child
	}
	return cur, nil
}

// Exists reports whether path resolves from n without error.
func (n *Node) Exists(path string) bool {
	_, err := n.Lookup(path)
	return err == nil
}

// resolveParent walks all but the last segment, then returns the parent
// container and the positional index of the terminal child within it.
func resolveParent(root *Node, segments []pathSegment) (*Node, int, error) {
	if len(segments) == 0 {
		return nil, 0, &GenericError{Reason: "empty path"}
	}
	cur := root
	for _, seg := range segments[:len(segments)-1] {
		if cur.kind != KindContainer {
			return nil, 0, &GenericError{Reason: "lookup path applied to non-container"}
		}
		if seg.isIdx {
			if seg.index < 0 || seg.index >= len(cur.children) {
				return nil, 0, &ItemNotFoundError{Segment: strconv.Itoa(seg.index)}
			}
			cur = cur.children[seg.index]
			continue
		}
		child, err := cur.ChildByName(seg.name)
		if err != nil {
			return nil, 0, err
		}
		cur = child
	}
	if cur.kind != KindContainer {
		return nil, 0, &GenericError{Reason: "lookup path applied to non-container"}
	}
	last := segments[len(segments)-1]
	if last.isIdx {
		if last.index < 0 || last.index >= len(cur.children) {
			return nil, 0, &ItemNotFoundError{Segment: strconv.Itoa(last.index)}
		}
		return cur, last.index, nil
	}
	idx := cur.indexByName(last.name)
	if idx < 0 {
		return nil, 0, &ItemNotFoundError{Segment: last.name}
	}
	return cur, idx, nil
}
