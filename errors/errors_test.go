package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapErrorKeepsSentinel(t *testing.T) {
	err := WrapErrorf(ErrNotFound, "paper %s", "abc")
	assert.True(t, IsNotFound(err))
	assert.Equal(t, "paper abc: resource not found", err.Error())
	assert.Nil(t, WrapError(nil, "ignored"))
}

func TestValidationError(t *testing.T) {
	err := InvalidInputf("paper_id must be a valid UUID")
	assert.True(t, IsInvalidInput(err))
	assert.False(t, IsNotFound(err))
	assert.Equal(t, "paper_id must be a valid UUID", ClientMessage(err))

	wrapped := fmt.Errorf("chat: %w", err)
	assert.True(t, IsInvalidInput(wrapped))
	assert.Equal(t, "paper_id must be a valid UUID", ClientMessage(wrapped))

	assert.Equal(t, "boom", ClientMessage(errors.New("boom")))
}
