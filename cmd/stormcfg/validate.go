package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	config "github.com/StormBytePP/StormByteConfig"
)

// cmdValidate parses a file and reports success or the ParseError,
// without emitting anything on success.
func cmdValidate(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("validate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: stormcfg validate <file>")
	}
	path := fs.Arg(0)

	if _, err := readConfig(path, config.PolicyThrowException); err != nil {
		logParseFailure(logger, path, err)
		printParseError(path, err)
		return err
	}

	fmt.Printf("%s: ok\n", path)
	return nil
}
