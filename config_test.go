package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigParseFromAndEmit(t *testing.T) {
	cfg := New(PolicyThrowException)
	input := "Name = \"test\"\nCount = 3\n"
	require.NoError(t, cfg.ParseFrom(input))
	assert.Equal(t, input, cfg.Emit())
	assert.Equal(t, 2, cfg.Size())
}

func TestConfigInsertAndLookup(t *testing.T) {
	cfg := New(PolicyThrowException)
	_, err := cfg.Insert(NewInteger(7).Named("answer"))
	require.NoError(t, err)

	n, err := cfg.Lookup("answer")
	require.NoError(t, err)
	v, err := n.IntegerValue()
	require.NoError(t, err)
	assert.EqualValues(t, 7, v)
	assert.True(t, cfg.Exists("answer"))
}

func TestConfigRemoveAndClear(t *testing.T) {
	cfg := New(PolicyThrowException)
	_, err := cfg.Insert(NewInteger(1).Named("a"))
	require.NoError(t, err)
	_, err = cfg.Insert(NewInteger(2).Named("b"))
	require.NoError(t, err)

	require.NoError(t, cfg.RemovePath("a"))
	assert.False(t, cfg.Exists("a"))
	assert.True(t, cfg.Exists("b"))

	cfg.Clear()
	assert.Equal(t, 0, cfg.Size())
}

func TestConfigRemoveIndex(t *testing.T) {
	cfg := New(PolicyThrowException)
	_, err := cfg.Insert(NewInteger(1).Named("a"))
	require.NoError(t, err)
	require.NoError(t, cfg.RemoveIndex(0))
	assert.Equal(t, 0, cfg.Size())
}

func TestConfigMergeKeepsSourceUntouched(t *testing.T) {
	dst := New(PolicyThrowException)
	_, err := dst.Insert(NewInteger(1).Named("a"))
	require.NoError(t, err)

	src := New(PolicyThrowException)
	_, err = src.Insert(NewInteger(2).Named("b"))
	require.NoError(t, err)

	require.NoError(t, dst.Merge(src))
	assert.True(t, dst.Exists("a"))
	assert.True(t, dst.Exists("b"))
	assert.Equal(t, 1, src.Size(), "merge must not mutate the source configuration")
}

func TestConfigMergeHonorsPolicy(t *testing.T) {
	dst := New(PolicyOverwrite)
	_, err := dst.Insert(NewInteger(1).Named("a"))
	require.NoError(t, err)

	src := New(PolicyOverwrite)
	_, err = src.Insert(NewInteger(99).Named("a"))
	require.NoError(t, err)

	require.NoError(t, dst.Merge(src))
	n, err := dst.Lookup("a")
	require.NoError(t, err)
	v, _ := n.IntegerValue()
	assert.EqualValues(t, 99, v)
}

func TestConfigSizeAndCount(t *testing.T) {
	cfg := New(PolicyThrowException)
	group := NewGroup()
	_, err := group.Add(NewInteger(1).Named("x"), PolicyThrowException)
	require.NoError(t, err)
	_, err = cfg.Insert(group.Named("g"))
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Size())
	assert.Equal(t, 2, cfg.Count())
}

func TestConfigHooksWiredThroughParseFrom(t *testing.T) {
	cfg := New(PolicyThrowException)
	var fired []string
	cfg.UseBeforeHook(func(r *Node) error {
		fired = append(fired, "before")
		return nil
	})
	cfg.UseAfterHook(func(r *Node) error {
		fired = append(fired, "after")
		return nil
	})

	require.NoError(t, cfg.ParseFrom("X = 1\n"))
	assert.Equal(t, []string{"before", "after"}, fired)
}

func TestConfigOnFailureHookSwallowsParseError(t *testing.T) {
	cfg := New(PolicyThrowException)
	cfg.UseOnFailureHook(func(r *Node) bool { return false })

	err := cfg.ParseFrom("Invalid = { Unclosed }")
	assert.NoError(t, err)
}
