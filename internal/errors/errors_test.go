package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/roll-bonuses/internal/errors"
)

func TestWrapPreservesCodeAndMeta(t *testing.T) {
	base := errors.AlreadyExistsf("kind %q already registered", "bonus_attack").
		WithMeta("key", "bonus_attack")

	wrapped := errors.Wrap(base, "registering bonuses")

	require.NotNil(t, wrapped)
	assert.Equal(t, errors.CodeAlreadyExists, wrapped.Code)
	assert.True(t, errors.IsAlreadyExists(wrapped))
	assert.Equal(t, "bonus_attack", errors.GetMeta(wrapped)["key"])
	assert.Equal(t, `registering bonuses: kind "bonus_attack" already registered`, wrapped.Error())

	// meta is copied, not shared
	wrapped.WithMeta("extra", true)
	_, leaked := base.Meta["extra"]
	assert.False(t, leaked)
}

func TestWrapForeignError(t *testing.T) {
	wrapped := errors.Wrapf(stderrors.New("boom"), "evaluating %s", "1d6")

	assert.Equal(t, errors.CodeUnknown, errors.GetCode(wrapped))
	assert.Equal(t, "evaluating 1d6: boom", wrapped.Error())
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
	assert.Nil(t, errors.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func TestWrapWithCodeOverrides(t *testing.T) {
	err := errors.WrapWithCode(errors.InvalidArgument("bad"), errors.CodeValidation, "configure")

	assert.True(t, errors.IsValidation(err))
	assert.False(t, errors.IsInvalidArgument(errors.New(errors.CodeValidation, "x")))
}

func TestGetCodeOnPlainError(t *testing.T) {
	assert.Equal(t, errors.CodeUnknown, errors.GetCode(stderrors.New("plain")))
	assert.Nil(t, errors.GetMeta(stderrors.New("plain")))
	assert.False(t, errors.IsNotFound(nil))
}
