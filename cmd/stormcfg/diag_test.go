package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/StormBytePP/StormByteConfig"
)

func TestLiteralNodeInfersKind(t *testing.T) {
	cases := map[string]config.Kind{
		"true":    config.KindBool,
		"false":   config.KindBool,
		"42":      config.KindInteger,
		"-7":      config.KindInteger,
		"3.14":    config.KindDouble,
		"hello":   config.KindString,
		"1.2.3":   config.KindString,
	}
	for input, want := range cases {
		got := literalNode(input).Kind()
		assert.Equal(t, want, got, "literalNode(%q)", input)
	}
}

func TestSplitForInsertTopLevel(t *testing.T) {
	root := config.NewGroup()
	parent, name, err := splitForInsert(root, "answer")
	require.NoError(t, err)
	assert.Same(t, root, parent)
	assert.Equal(t, "answer", name)
}

func TestSplitForInsertNested(t *testing.T) {
	root := config.NewGroup()
	group := config.NewGroup()
	_, err := root.Add(group.Named("nested"), config.PolicyThrowException)
	require.NoError(t, err)

	parent, name, err := splitForInsert(root, "nested/answer")
	require.NoError(t, err)
	assert.Same(t, group, parent)
	assert.Equal(t, "answer", name)
}

func TestSplitForInsertRejectsNonGroupParent(t *testing.T) {
	root := config.NewGroup()
	_, err := root.Add(config.NewInteger(1).Named("scalar"), config.PolicyThrowException)
	require.NoError(t, err)

	_, _, err = splitForInsert(root, "scalar/child")
	assert.Error(t, err)
}
