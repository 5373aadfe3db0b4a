package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorsIsMatchesByKind(t *testing.T) {
	err := New(KindConflict, "BET_ALREADY_RESOLVED")

	assert.True(t, errors.Is(err, ErrConflict))
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("row locked")
	err := Wrap(KindConflict, "LOCK_TIMEOUT", cause)

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Contains(t, err.Error(), "LOCK_TIMEOUT")
}

func TestKindOfThroughWrapping(t *testing.T) {
	err := fmt.Errorf("placing bet: %w", New(KindInsufficientFunds, "INSUFFICIENT_BALANCE"))

	assert.Equal(t, KindInsufficientFunds, KindOf(err))
	assert.Equal(t, "INSUFFICIENT_BALANCE", CodeOf(err))
}

func TestKindOfPlainError(t *testing.T) {
	assert.Equal(t, KindUnknown, KindOf(errors.New("boom")))
	assert.Equal(t, "INTERNAL_ERROR", CodeOf(errors.New("boom")))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "NOT_FOUND", KindNotFound.String())
	assert.Equal(t, "INSUFFICIENT_FUNDS", KindInsufficientFunds.String())
	assert.Equal(t, "FORBIDDEN", KindForbidden.String())
	assert.Equal(t, "CONFLICT", KindConflict.String())
	assert.Equal(t, "VALIDATION_ERROR", KindValidation.String())
	assert.Equal(t, "UNAUTHORIZED", KindUnauthorized.String())
}
