package errors

import (
	goerrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrBadPath, "path rejected")
	assert.Equal(t, "[BAD_PATH] path rejected", err.Error())
	assert.Equal(t, ErrBadPath, GetErrorCode(err))
}

func TestWrap(t *testing.T) {
	inner := goerrors.New("disk full")
	err := Wrapf(inner, ErrFileWrite, "write %s", "/tmp/out.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
	assert.Contains(t, err.Error(), "FILE_WRITE")
	assert.Equal(t, inner, goerrors.Unwrap(err))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrFileWrite, "nothing"))
	assert.Nil(t, Wrapf(nil, ErrFileWrite, "nothing %d", 1))
}

func TestIsErrorCode(t *testing.T) {
	err := New(ErrNoValues, "no values supplied")
	assert.True(t, IsErrorCode(err, ErrNoValues))
	assert.False(t, IsErrorCode(err, ErrBadPath))
	assert.False(t, IsErrorCode(goerrors.New("plain"), ErrNoValues))
}

func TestIsMatchesByCode(t *testing.T) {
	err := Wrap(goerrors.New("boom"), ErrChainBroken, "chain broken")
	assert.True(t, goerrors.Is(err, New(ErrChainBroken, "anything")))
	assert.False(t, goerrors.Is(err, New(ErrChainRead, "anything")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrBadPath, "path rejected").WithDetail("path", "x")
	assert.Equal(t, "x", err.Details["path"])
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, ErrUnknown, GetErrorCode(goerrors.New("plain")))
}
