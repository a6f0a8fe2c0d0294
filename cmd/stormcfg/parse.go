package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	config "github.com/StormBytePP/StormByteConfig"
	"github.com/StormBytePP/StormByteConfig/internal/hookexpr"
)

// cmdParse reads a configuration file and re-emits it in canonical
// form, exercising the full parse -> serialize round trip. An optional
// on-failure expression lets the caller decide, without touching Go
// code, whether a parse error should be swallowed.
func cmdParse(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	policyName := fs.String("policy", "throw", "collision policy: keep|overwrite|throw")
	onFailureExpr := fs.String("on-failure", "", "expr-lang expression deciding whether a parse error propagates")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: stormcfg parse [-policy keep|overwrite|throw] [-on-failure expr] <file>")
	}
	path := fs.Arg(0)

	policy, err := config.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	var onFailure config.OnFailureHook
	if *onFailureExpr != "" {
		onFailure, err = hookexpr.CompileOnFailureHook(*onFailureExpr)
		if err != nil {
			return err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	cfg := config.New(policy)
	if onFailure != nil {
		cfg.UseOnFailureHook(onFailure)
	}
	if err := cfg.ParseFrom(string(data)); err != nil {
		logParseFailure(logger, path, err)
		printParseError(path, err)
		return err
	}

	fmt.Print(cfg.Emit())
	return nil
}
