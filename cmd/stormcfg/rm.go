package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	config "github.com/StormBytePP/StormByteConfig"
)

// cmdRm removes the item at a path and writes the re-serialized result
// back to the file.
func cmdRm(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: stormcfg rm <file> <path>")
	}
	path, itemPath := fs.Arg(0), fs.Arg(1)

	if !config.ValidPath(itemPath) {
		return fmt.Errorf("invalid path: %q", itemPath)
	}

	cfg, err := readConfig(path, config.PolicyThrowException)
	if err != nil {
		logParseFailure(logger, path, err)
		printParseError(path, err)
		return err
	}

	if err := cfg.RemovePath(itemPath); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(cfg.Emit()), 0o644)
}
