// Command stormcfg is a command-line front end for the StormByteConfig
// language: parse, validate, inspect, edit and diff configuration files
// from the shell.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/StormBytePP/StormByteConfig/internal/obslog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	logger, err := obslog.New(os.Getenv("STORMCFG_DEBUG") != "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error building logger: %v\n", err)
		os.Exit(1)
	}
	defer obslog.Sync(logger)

	cmd := os.Args[1]
	args := os.Args[2:]

	var runErr error
	switch cmd {
	case "parse":
		runErr = cmdParse(args, logger)
	case "validate":
		runErr = cmdValidate(args, logger)
	case "get":
		runErr = cmdGet(args, logger)
	case "set":
		runErr = cmdSet(args, logger)
	case "rm":
		runErr = cmdRm(args, logger)
	case "diff":
		runErr = cmdDiff(args, logger)
	case "serve":
		runErr = cmdServe(args, logger)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "stormcfg %s: %v\n", cmd, runErr)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: stormcfg <parse|validate|get|set|rm|diff|serve> [args...]\n")
}

func logParseFailure(logger *zap.Logger, path string, err error) {
	logger.Warn("parse failed", zap.String("path", path), zap.Error(err))
}
