package hookexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/StormBytePP/StormByteConfig"
)

func TestCompileOnFailureHookPropagatesOnTrue(t *testing.T) {
	hook, err := CompileOnFailureHook(`Size() > 0`)
	require.NoError(t, err)

	root := config.NewGroup()
	_, err = root.Add(config.NewInteger(1).Named("a"), config.PolicyThrowException)
	require.NoError(t, err)

	assert.True(t, hook(root))
}

func TestCompileOnFailureHookSwallowsOnFalse(t *testing.T) {
	hook, err := CompileOnFailureHook(`Size() > 0`)
	require.NoError(t, err)

	assert.False(t, hook(config.NewGroup()))
}

func TestCompileAfterHookFailsOnFalse(t *testing.T) {
	hook, err := CompileAfterHook(`Exists("required")`)
	require.NoError(t, err)

	err = hook(config.NewGroup())
	assert.Error(t, err)
}

func TestCompileAfterHookSucceedsOnTrue(t *testing.T) {
	hook, err := CompileAfterHook(`Exists("required")`)
	require.NoError(t, err)

	root := config.NewGroup()
	_, err = root.Add(config.NewBool(true).Named("required"), config.PolicyThrowException)
	require.NoError(t, err)

	assert.NoError(t, hook(root))
}

func TestCompileOnFailureHookRejectsBadExpression(t *testing.T) {
	_, err := CompileOnFailureHook(`NotAMethod()`)
	assert.Error(t, err)
}
