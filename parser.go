package config

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode"
)

// Mode tells parseContainer whether items inside the container it is
// reading carry a "name =" prefix (Group) or are bare values (List).
type Mode int

const (
	ModeNamed Mode = iota
	ModeUnnamed
)

var (
	intRegexp    = regexp.MustCompile(`^[+-]?\d+$`)
	doubleRegexp = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)
)

// Parse runs the full parse pipeline of §4.5/§4.6 against source, filling
// root (which must be an empty Group) under the given collision policy.
// before runs, in order, prior to parsing and fails fast. After a
// successful parse, after runs and its failures are aggregated. If parsing
// fails, onFailure (when non-nil) decides whether the error propagates:
// true propagates, false swallows it and Parse returns nil.
func Parse(source string, root *Node, policy Policy, before, after []Hook, onFailure OnFailureHook) error {
	if err := runHooksFailFast(before, root); err != nil {
		return err
	}

	c := newCursor(source)
	parseErr := parseContainer(c, root, ModeNamed, policy, 0)
	if parseErr != nil {
		if onFailure != nil {
			if onFailure(root) {
				return parseErr
			}
			return nil
		}
		return parseErr
	}

	return runHooksAggregate(after, root)
}

// parseContainer implements the BetweenItems/ExpectName/ExpectEquals/
// ExpectValue state machine of §4.8, driving container until its matching
// closer is consumed (or, at depth 0, EOF is reached).
func parseContainer(c *cursor, container *Node, mode Mode, policy Policy, depth int) error {
	for {
		if err := harvestComments(c, container); err != nil {
			return err
		}
		if c.eof() {
			if depth > 0 {
				return &ParseError{Line: c.line, Reason: "Unexpected EOF"}
			}
			return nil
		}

		r, _ := c.peekChar()
		closer := closerFor(container.containerKind)
		if r == closer {
			c.advance()
			if depth == 0 {
				return &ParseError{Line: c.line, Reason: "Unexpected container end symbol"}
			}
			return nil
		}

		var name string
		if mode == ModeNamed {
			tok := c.readToken()
			if !ValidName(tok) {
				return &ParseError{Line: c.line, Reason: "Invalid item name: " + tok}
			}
			name = tok
			eq := c.readToken()
			if eq != "=" {
				return &ParseError{Line: c.line, Reason: "Expected '=' after item name " + name + " but got " + eq}
			}
		}

		kind, err := guessType(c)
		if err != nil {
			return err
		}
		child, err := parseItem(c, kind, policy, depth)
		if err != nil {
			return err
		}
		if mode == ModeNamed {
			child.Named(name)
		}
		if _, err := container.Add(child, policy); err != nil {
			return err
		}

		if err := harvestComments(c, container); err != nil {
			return err
		}
	}
}

func closerFor(kind ContainerKind) rune {
	if kind == List {
		return ']'
	}
	return '}'
}

// parseItem dispatches on the inferred kind and returns the resulting,
// still-anonymous node.
func parseItem(c *cursor, kind Kind, policy Policy, depth int) (*Node, error) {
	switch kind {
	case KindString:
		s, err := c.readQuotedString()
		if err != nil {
			return nil, err
		}
		return NewString(s), nil
	case KindInteger:
		v, err := parseIntegerToken(c)
		if err != nil {
			return nil, err
		}
		return NewInteger(v), nil
	case KindDouble:
		v, err := parseDoubleToken(c)
		if err != nil {
			return nil, err
		}
		return NewDouble(v), nil
	case KindBool:
		v, err := parseBoolToken(c)
		if err != nil {
			return nil, err
		}
		return NewBool(v), nil
	case KindContainer:
		containerKind, err := parseContainerOpener(c)
		if err != nil {
			return nil, err
		}
		node := &Node{kind: KindContainer, containerKind: containerKind}
		mode := ModeNamed
		if containerKind == List {
			mode = ModeUnnamed
		}
		if err := parseContainer(c, node, mode, policy, depth+1); err != nil {
			return nil, err
		}
		return node, nil
	default:
		return nil, &ParseError{Line: c.line, Reason: "Unknown item type"}
	}
}

// guessType performs the single-lookahead type inference of §4.5: the
// scanner peeks the next significant character, and for a leading digit or
// sign scans ahead (without consuming) to the end of the line to decide
// Integer vs Double by the presence of '.'.
func guessType(c *cursor) (Kind, error) {
	c.skipWS()
	first, ok := c.peekChar()
	if !ok {
		return 0, &ParseError{Line: c.line, Reason: "Unexpected EOF when parsing item type"}
	}
	switch {
	case first == '"':
		return KindString, nil
	case first == '{' || first == '[':
		return KindContainer, nil
	case first == '-' || first == '+' || unicode.IsDigit(first):
		line := c.peekLineRest()
		for _, r := range line {
			if r == '.' {
				return KindDouble, nil
			}
		}
		return KindInteger, nil
	case first == 't' || first == 'f':
		return KindBool, nil
	default:
		return 0, &ParseError{Line: c.line, Reason: fmt.Sprintf("Unexpected %c when parsing item type", first)}
	}
}

func parseContainerOpener(c *cursor) (ContainerKind, error) {
	c.skipWS()
	r, ok := c.advance()
	if !ok {
		return 0, &ParseError{Line: c.line, Reason: "Unexpected EOF when parsing container"}
	}
	switch r {
	case '{':
		return Group, nil
	case '[':
		return List, nil
	default:
		return 0, &ParseError{Line: c.line, Reason: fmt.Sprintf("Unknown start character %c for container", r)}
	}
}

func parseIntegerToken(c *cursor) (int32, error) {
	tok := c.readToken()
	if !intRegexp.MatchString(tok) {
		return 0, &ParseError{Line: c.line, Reason: "Failed to parse integer value '" + tok + "'"}
	}
	v, err := strconv.ParseInt(tok, 10, 32)
	if err != nil {
		return 0, &ParseError{Line: c.line, Reason: "Integer value " + tok + " out of range"}
	}
	return int32(v), nil
}

func parseDoubleToken(c *cursor) (float64, error) {
	tok := c.readToken()
	if !doubleRegexp.MatchString(tok) {
		return 0, &ParseError{Line: c.line, Reason: "Failed to parse double value '" + tok + "'"}
	}
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{Line: c.line, Reason: "Double value " + tok + " out of range"}
	}
	return v, nil
}

func parseBoolToken(c *cursor) (bool, error) {
	tok := c.readToken()
	switch tok {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, &ParseError{Line: c.line, Reason: "Failed to parse boolean value '" + tok + "'"}
	}
}

// harvestComments repeatedly consumes a run of comments at the cursor,
// appending each as a Comment child of container in order.
func harvestComments(c *cursor, container *Node) error {
	for {
		c.skipWS()
		r, ok := c.peekChar()
		if !ok {
			return nil
		}
		switch r {
		case '#':
			c.advance()
			text := c.readLineRest()
			if _, err := container.Add(NewComment(SingleLineBash, text), PolicyKeep); err != nil {
				return err
			}
		case '/':
			next, ok := c.peekAt(1)
			if !ok {
				return nil
			}
			switch next {
			case '/':
				c.advance()
				c.advance()
				text := c.readLineRest()
				if _, err := container.Add(NewComment(SingleLineC, text), PolicyKeep); err != nil {
					return err
				}
			case '*':
				c.advance()
				c.advance()
				text, err := readMultiLineComment(c)
				if err != nil {
					return err
				}
				if _, err := container.Add(NewComment(MultiLineC, text), PolicyKeep); err != nil {
					return err
				}
			default:
				return nil
			}
		default:
			return nil
		}
	}
}

func readMultiLineComment(c *cursor) (string, error) {
	var buf []rune
	for {
		r, ok := c.advance()
		if !ok {
			return "", &ParseError{Line: c.line, Reason: "Unclosed MultiLineC comment"}
		}
		if r == '*' {
			if next, ok := c.peekChar(); ok && next == '/' {
				c.advance()
				return string(buf), nil
			}
		}
		buf = append(buf, r)
	}
}
