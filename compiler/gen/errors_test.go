package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("MaxArity", 0, "must be positive")

		assert.Contains(t, err.Error(), "tuplegen: config error")
		assert.Contains(t, err.Error(), "MaxArity")
		assert.Contains(t, err.Error(), "value: 0")
		assert.Contains(t, err.Error(), "must be positive")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Package", nil, "cannot be empty")

		assert.Contains(t, err.Error(), "Package")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "missing")
		assert.True(t, errors.Is(err, ErrMissingConfig))
		assert.True(t, IsConfigError(fmt.Errorf("wrapped: %w", err)))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestRangeError(t *testing.T) {
	t.Run("arity and position", func(t *testing.T) {
		err := NewRangeError(3, 5, 8, "position must be in [0, arity)")
		assert.Equal(t, "tuplegen: arity 3 position 5 (max arity 8): position must be in [0, arity)", err.Error())
	})

	t.Run("arity only", func(t *testing.T) {
		err := NewRangeError(9, -1, 8, "")
		assert.Equal(t, "tuplegen: arity 9 (max arity 8)", err.Error())
	})

	t.Run("Is matches ErrOutOfRange", func(t *testing.T) {
		err := NewRangeError(1, 1, 0, "")
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.True(t, IsRangeError(err))
		assert.False(t, IsRangeError(ErrOutOfRange))
	})
}

func TestAmbiguityError(t *testing.T) {
	err := NewAmbiguityError("Pair", "int", []int{0, 1})

	assert.Contains(t, err.Error(), "record Pair")
	assert.Contains(t, err.Error(), "element type int")
	assert.Contains(t, err.Error(), "positions 0, 1")
	assert.ErrorIs(t, err, ErrAmbiguous)
	assert.True(t, IsAmbiguityError(err))
	assert.False(t, IsRecordError(err))
}

func TestRecordError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("expected operand")
		err := NewRecordError("Contact", 2, "invalid type expression", cause)

		assert.Contains(t, err.Error(), "tuplegen: record error on Contact")
		assert.Contains(t, err.Error(), "field 2")
		assert.Contains(t, err.Error(), "invalid type expression")
		assert.Contains(t, err.Error(), "expected operand")
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := NewRecordError("Contact", -1, "declared more than once", nil)
		assert.NotContains(t, err.Error(), "field")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewRecordError("Contact", 0, "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, ErrInvalidRecord))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("write failed")
		err := NewGenerationError("tuple", "tuple3.go", "cannot write file", cause)

		assert.Contains(t, err.Error(), "tuplegen: generation error")
		assert.Contains(t, err.Error(), "phase tuple")
		assert.Contains(t, err.Error(), "file: tuple3.go")
		assert.Contains(t, err.Error(), "cannot write file")
		assert.Contains(t, err.Error(), "write failed")
	})

	t.Run("Unwrap and Is", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewGenerationError("index", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.True(t, IsGenerationError(err))
	})
}

func TestDriftError(t *testing.T) {
	err := &DriftError{
		Changed: []string{"tuple2.go"},
		Missing: []string{"tuple3.go"},
		Stale:   []string{"tuple9.go"},
	}

	assert.Contains(t, err.Error(), "changed: tuple2.go")
	assert.Contains(t, err.Error(), "missing: tuple3.go")
	assert.Contains(t, err.Error(), "stale: tuple9.go")
	assert.ErrorIs(t, err, ErrDrift)
	assert.True(t, IsDriftError(err))
}
