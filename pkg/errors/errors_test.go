package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrapping(t *testing.T) {
	cause := fmt.Errorf("sql: no rows in result set")
	err := NewNotFound("doctor", cause)

	assert.Equal(t, "doctor not found: sql: no rows in result set", err.Error())
	assert.Equal(t, cause, err.Unwrap())
}

func TestCodeExtraction(t *testing.T) {
	assert.Equal(t, ErrNotFound, Code(NewNotFound("location", nil)))
	assert.Equal(t, ErrConflict, Code(NewConflict("duplicate name", nil)))
	assert.Equal(t, ErrInternal, Code(fmt.Errorf("connection refused")))
}

func TestCodeExtractionThroughWrapping(t *testing.T) {
	inner := NewReferential("location", nil)
	wrapped := fmt.Errorf("failed to create doctor: %w", inner)

	assert.True(t, IsReferential(wrapped))
	assert.False(t, IsNotFound(wrapped))
}

func TestPredicates(t *testing.T) {
	assert.True(t, IsValidation(NewValidation("name is required", nil)))
	assert.True(t, IsMissingToken(NewMissingToken()))
	assert.True(t, IsInvalidToken(NewInvalidToken(nil)))
	assert.True(t, IsUnauthorized(NewUnauthorized("invalid email or password", nil)))
	assert.False(t, IsConflict(NewNotFound("banner", nil)))
}
