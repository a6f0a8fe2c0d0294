package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	config "github.com/StormBytePP/StormByteConfig"
)

// printParseError writes a diagnostic for err to stderr, colorized when
// stderr is a terminal. Non-ParseError causes fall back to a plain
// message.
func printParseError(path string, err error) {
	var pe *config.ParseError
	if !errors.As(err, &pe) {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return
	}

	if isatty.IsTerminal(os.Stderr.Fd()) {
		bold := color.New(color.Bold).SprintFunc()
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %s:%s %s\n", red("error:"), bold(path), bold(pe.Line), pe.Reason)
		return
	}
	fmt.Fprintf(os.Stderr, "%s:%d: %s\n", path, pe.Line, pe.Reason)
}

// readConfig parses path with policy into a fresh *config.Config.
func readConfig(path string, policy config.Policy) (*config.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := config.New(policy)
	if err := cfg.ParseFrom(string(data)); err != nil {
		return nil, err
	}
	return cfg, nil
}

// literalNode infers a scalar Node kind from a command-line value the
// same way the parser infers item types from source text: a leading
// digit or sign is numeric (Double if it contains '.', Integer
// otherwise), "true"/"false" is Bool, anything else is a String.
func literalNode(value string) *config.Node {
	switch value {
	case "true":
		return config.NewBool(true)
	case "false":
		return config.NewBool(false)
	}

	hasDot := false
	numeric := len(value) > 0
	for i, r := range value {
		switch {
		case r == '.' && !hasDot:
			hasDot = true
		case (r == '-' || r == '+') && i == 0:
		case r >= '0' && r <= '9':
		default:
			numeric = false
		}
	}
	if numeric {
		if hasDot {
			var f float64
			if _, err := fmt.Sscanf(value, "%g", &f); err == nil {
				return config.NewDouble(f)
			}
		} else {
			var n int64
			if _, err := fmt.Sscanf(value, "%d", &n); err == nil {
				return config.NewInteger(int32(n))
			}
		}
	}
	return config.NewString(value)
}
