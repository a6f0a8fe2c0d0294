package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	config "github.com/StormBytePP/StormByteConfig"
)

// cmdSet parses a file, inserts or overwrites the value at a path, and
// writes the re-serialized result back to the file.
func cmdSet(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	policyName := fs.String("policy", "overwrite", "collision policy: keep|overwrite|throw")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("usage: stormcfg set [-policy keep|overwrite|throw] <file> <path> <value>")
	}
	path, itemPath, value := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	if !config.ValidPath(itemPath) {
		return fmt.Errorf("invalid path: %q", itemPath)
	}

	policy, err := config.ParsePolicy(*policyName)
	if err != nil {
		return err
	}

	cfg, err := readConfig(path, policy)
	if err != nil {
		logParseFailure(logger, path, err)
		printParseError(path, err)
		return err
	}

	parent, name, err := splitForInsert(cfg.Root(), itemPath)
	if err != nil {
		return err
	}

	if _, err := parent.Add(literalNode(value).Named(name), policy); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(cfg.Emit()), 0o644)
}

// splitForInsert resolves every path segment but the last (which must
// already exist as a Group) and returns that group plus the terminal
// name to insert under.
func splitForInsert(root *config.Node, itemPath string) (*config.Node, string, error) {
	idx := strings.LastIndex(itemPath, "/")
	if idx < 0 {
		return root, itemPath, nil
	}
	parentPath, name := itemPath[:idx], itemPath[idx+1:]
	parent, err := root.Lookup(parentPath)
	if err != nil {
		return nil, "", err
	}
	if parent.Kind() != config.KindContainer || parent.ContainerKind() != config.Group {
		return nil, "", fmt.Errorf("%s is not a group", parentPath)
	}
	return parent, name, nil
}
