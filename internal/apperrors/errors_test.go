package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/erp_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_UnwrapsCause(t *testing.T) {
	cause := fmt.Errorf("account acc-1: %w", apperrors.ErrNotFound)
	err := apperrors.NewAppError(500, "failed to append transaction", cause)

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Equal(t, "failed to append transaction: account acc-1: resource not found", err.Error())
}

func TestAppError_WithoutCause(t *testing.T) {
	err := apperrors.NewAppError(400, "bad input", nil)

	assert.Equal(t, "bad input", err.Error())
	assert.Nil(t, errors.Unwrap(err))
}
