package main

import (
	"flag"
	"fmt"

	diffmatchpatch "github.com/sergi/go-diff/diffmatchpatch"
	"go.uber.org/zap"

	config "github.com/StormBytePP/StormByteConfig"
)

// cmdDiff parses two files and prints a line-oriented diff between
// their canonical emissions, so formatting-only differences (spacing,
// comment placement) don't show up as noise.
func cmdDiff(args []string, logger *zap.Logger) error {
	fs := flag.NewFlagSet("diff", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: stormcfg diff <file1> <file2>")
	}
	pathA, pathB := fs.Arg(0), fs.Arg(1)

	cfgA, err := readConfig(pathA, config.PolicyThrowException)
	if err != nil {
		logParseFailure(logger, pathA, err)
		printParseError(pathA, err)
		return err
	}
	cfgB, err := readConfig(pathB, config.PolicyThrowException)
	if err != nil {
		logParseFailure(logger, pathB, err)
		printParseError(pathB, err)
		return err
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(cfgA.Emit(), cfgB.Emit())
	diffs := dmp.DiffMainRunes([]rune(a), []rune(b), false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	fmt.Print(dmp.DiffPrettyText(diffs))
	return nil
}
