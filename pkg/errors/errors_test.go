package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("preferences.yaml", 3, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "preferences.yaml", parseErr.Path)
	require.Equal(t, 3, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: preferences.yaml:3: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("config.yaml", 0, stdErrors.New("boom"))
	require.Equal(t, "parse error: config.yaml: boom", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("faq[1].answer", "answer is required", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "faq[1].answer", validationErr.Field)
	require.Equal(t, "validation error: faq[1].answer: answer is required", err.Error())

	bare := NewValidationError("", "settings are invalid", nil)
	require.Equal(t, "validation error: settings are invalid", bare.Error())
}

func TestStoreErrorIncludesKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("disk full")
	err := NewStoreError("write", "theme", underlying)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "write", storeErr.Op)
	require.Equal(t, "theme", storeErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, `preference write failed for "theme": disk full`, err.Error())
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var storeErr *StoreError

	require.Empty(t, parseErr.Error())
	require.Empty(t, validationErr.Error())
	require.Empty(t, storeErr.Error())
	require.Nil(t, storeErr.Unwrap())
}
