package track

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpError_MessageCarriesOffendingValue(t *testing.T) {
	err := NewNotFoundError("abc-123")
	assert.Equal(t, "NOT_FOUND: no session with this id (session=abc-123)", err.Error())

	err = &OpError{Code: ErrCodeValidation, Message: "unknown labels", Labels: []string{"a", "b"}}
	assert.Equal(t, "VALIDATION: unknown labels (labels=a,b)", err.Error())
}

func TestCodeOf_UnwrapsChains(t *testing.T) {
	inner := NewAlreadyEndedError("abc")
	wrapped := fmt.Errorf("ending session: %w", inner)

	assert.Equal(t, ErrCodeConflict, CodeOf(wrapped))
	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, OpErrorCode(""), CodeOf(fmt.Errorf("boom")))
}
