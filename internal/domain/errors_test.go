package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpErrorWrapUnwrap(t *testing.T) {
	err := &OpError{
		Op:   "library.add_book",
		Kind: KindDuplicate,
		Err:  fmt.Errorf("book id 1: %w", ErrDuplicate),
	}

	assert.True(t, errors.Is(err, ErrDuplicate))

	var got *OpError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, KindDuplicate, got.Kind)
}

func TestIsKind(t *testing.T) {
	err := &OpError{Op: "librarystore.load", Kind: KindCorruptData, Err: ErrCorruptData}

	assert.True(t, IsKind(err, KindCorruptData))
	assert.False(t, IsKind(err, KindNotFound))
	assert.False(t, IsKind(errors.New("plain"), KindCorruptData))
	assert.False(t, IsKind(nil, KindCorruptData))
}

func TestOpErrorMessageIncludesPath(t *testing.T) {
	err := &OpError{
		Op:   "librarystore.load",
		Kind: KindNotFound,
		Path: "/tmp/biblioteca.json",
		Err:  ErrNotFound,
	}

	msg := err.Error()
	assert.Contains(t, msg, "librarystore.load")
	assert.Contains(t, msg, "not_found")
	assert.Contains(t, msg, "/tmp/biblioteca.json")
}
