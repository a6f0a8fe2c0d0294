// Package hookexpr builds config.OnFailureHook and config.Hook values
// from a user-supplied expression string, evaluated against the root
// node being parsed. It lets the CLI's parse subcommand configure
// on-failure behavior without recompiling Go code.
package hookexpr

import (
	"fmt"

	"github.com/expr-lang/expr"

	config "github.com/StormBytePP/StormByteConfig"
)

// CompileOnFailureHook compiles source into a config.OnFailureHook. The
// expression runs against the partial root built so far and must
// evaluate to a bool: true propagates the original ParseError, false
// swallows it.
func CompileOnFailureHook(source string) (config.OnFailureHook, error) {
	program, err := expr.Compile(source, expr.Env(&config.Node{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling on-failure expression %q: %w", source, err)
	}
	return func(root *config.Node) bool {
		out, err := expr.Run(program, root)
		if err != nil {
			return true
		}
		propagate, _ := out.(bool)
		return propagate
	}, nil
}

// CompileAfterHook compiles source into a config.Hook that fails, with an
// error naming the expression, when source evaluates to false against
// the fully parsed root.
func CompileAfterHook(source string) (config.Hook, error) {
	program, err := expr.Compile(source, expr.Env(&config.Node{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compiling after-hook expression %q: %w", source, err)
	}
	return func(root *config.Node) error {
		out, err := expr.Run(program, root)
		if err != nil {
			return fmt.Errorf("running after-hook expression %q: %w", source, err)
		}
		if ok, _ := out.(bool); !ok {
			return fmt.Errorf("after-hook expression %q evaluated false", source)
		}
		return nil
	}, nil
}
