package main

import (
	"flag"
	"fmt"

	"go.uber.org/zap"

	config "github.com/StormBytePP/StormByteConfig"
)

// cmdGet resolves a path within a file and prints its value.
func cmdGet(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: stormcfg get <file> <path>")
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

	node, err := cfg.Lookup(itemPath)
	if err != nil {
		return err
	}

	fmt.Println(describeValue(node))
	return nil
}

func describeValue(n *config.Node) string {
	switch n.Kind() {
	case config.KindBool:
		v, _ := n.BoolValue()
		return fmt.Sprintf("%t", v)
	case config.KindInteger:
		v, _ := n.IntegerValue()
		return fmt.Sprintf("%d", v)
	case config.KindDouble:
		v, _ := n.DoubleValue()
		return fmt.Sprintf("%g", v)
	case config.KindString:
		v, _ := n.StringValue()
		return v
	case config.KindContainer:
		return config.Emit(n)
	default:
		return ""
	}
}
