package errors_test

import (
	"errors"
	"fmt"
	"testing"

	pkgerrors "github.com/autoatlas/autoatlas/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestNotFoundError(t *testing.T) {
	t.Run("basic error", func(t *testing.T) {
		err := &pkgerrors.NotFoundError{
			Resource: "brand",
			ID:       "bmw",
		}
		assert.Equal(t, "brand with ID bmw not found", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrNotFound))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewNotFoundError("model", "bmw:z3")
		assert.Equal(t, "model with ID bmw:z3 not found", err.Error())
		assert.True(t, pkgerrors.IsNotFound(err))
	})

	t.Run("wrapped error", func(t *testing.T) {
		base := pkgerrors.NewNotFoundError("logo", "tesla")
		wrapped := fmt.Errorf("lookup: %w", base)
		assert.True(t, pkgerrors.IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "sort",
			Message: "unknown order",
		}
		assert.Equal(t, "validation failed for field sort: unknown order", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})
}

func TestPathError(t *testing.T) {
	err := pkgerrors.NewPathError("../etc/passwd", "parent traversal")
	assert.Contains(t, err.Error(), "parent traversal")
	assert.True(t, errors.Is(err, pkgerrors.ErrForbiddenPath))
	assert.True(t, pkgerrors.IsNotFound(err))
}

func TestWrappedErrors(t *testing.T) {
	base := errors.New("boom")

	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"io", pkgerrors.WrapIO("read", "db.jsonl", base), "IO error during read of db.jsonl: boom"},
		{"parse", pkgerrors.WrapParse("json", "data.json", base), "parse error in json file data.json: boom"},
		{"resource", pkgerrors.WrapResource("build", "index", "", base), "failed to build index: boom"},
		{"validation", pkgerrors.WrapValidation("tier", base), "validation failed for field tier: boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Error(t, tt.err)
			assert.Equal(t, tt.wantMsg, tt.err.Error())
			if tt.name != "validation" {
				assert.ErrorIs(t, tt.err, base)
			}
		})
	}

	t.Run("nil passthrough", func(t *testing.T) {
		assert.NoError(t, pkgerrors.WrapIO("read", "x", nil))
		assert.NoError(t, pkgerrors.WrapParse("json", "x", nil))
		assert.NoError(t, pkgerrors.WrapResource("load", "logos", "", nil))
		assert.NoError(t, pkgerrors.WrapValidation("x", nil))
	})
}

func TestConfigError(t *testing.T) {
	base := errors.New("missing")
	err := pkgerrors.NewConfigError("assets", "base url required in cdn mode", base)
	assert.Equal(t, "configuration error in assets: base url required in cdn mode", err.Error())
	assert.ErrorIs(t, err, base)

	var cfgErr *pkgerrors.ConfigError
	require.True(t, pkgerrors.As(err, &cfgErr))
	assert.Equal(t, "assets", cfgErr.Component)
}

func TestParseErrorWithLine(t *testing.T) {
	err := &pkgerrors.ParseError{Format: "jsonl", File: "db.jsonl", Line: 7, Message: "unexpected EOF"}
	assert.Equal(t, "parse error in jsonl at db.jsonl:7: unexpected EOF", err.Error())
}
