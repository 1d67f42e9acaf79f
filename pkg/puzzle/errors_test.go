package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *InputError
		want string
	}{
		{
			name: "token only",
			err:  NewInputError("unknown opponent move", "Q"),
			want: `unknown opponent move "Q"`,
		},
		{
			name: "with position",
			err:  &InputError{Source: "day2", LineNum: 4, Reason: "unknown outcome", Token: "W"},
			want: `day2:4: unknown outcome "W"`,
		},
		{
			name: "with cause",
			err:  &InputError{Source: "missing.txt", Reason: "opening input", Err: fs.ErrNotExist},
			want: "missing.txt: opening input: file does not exist",
		},
		{
			name: "empty reason",
			err:  &InputError{LineNum: 2},
			want: "line 2: unreadable input",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorKinds(t *testing.T) {
	inErr := NewInputError("invalid calorie count", "12a")
	valErr := NewValidationError("line must have an even number of items, got %d", 3)

	assert.ErrorIs(t, inErr, ErrInput)
	assert.NotErrorIs(t, inErr, ErrValidation)
	assert.ErrorIs(t, valErr, ErrValidation)
	assert.NotErrorIs(t, valErr, ErrInput)

	wrapped := fmt.Errorf("part 1: %w", inErr)
	assert.ErrorIs(t, wrapped, ErrInput)

	cause := &InputError{Reason: "opening input", Err: fs.ErrNotExist}
	assert.ErrorIs(t, cause, fs.ErrNotExist)
}

func TestAtLine(t *testing.T) {
	t.Run("input error gets position", func(t *testing.T) {
		err := AtLine(NewInputError("unknown response move", "Q"), "guide.txt", 7)

		var inErr *InputError
		require.ErrorAs(t, err, &inErr)
		assert.Equal(t, "guide.txt", inErr.Source)
		assert.Equal(t, 7, inErr.LineNum)
		assert.Equal(t, `guide.txt:7: unknown response move "Q"`, err.Error())
	})

	t.Run("validation error gets position", func(t *testing.T) {
		err := AtLine(NewValidationError("no item shared by all compartments"), "", 3)

		var valErr *ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, 3, valErr.LineNum)
		assert.Equal(t, "line 3: no item shared by all compartments", err.Error())
	})

	t.Run("existing position is kept", func(t *testing.T) {
		orig := &InputError{Source: "a", LineNum: 1, Reason: "bad"}
		err := AtLine(orig, "b", 9)

		var inErr *InputError
		require.ErrorAs(t, err, &inErr)
		assert.Equal(t, "a", inErr.Source)
		assert.Equal(t, 1, inErr.LineNum)
	})

	t.Run("other errors are wrapped", func(t *testing.T) {
		base := errors.New("boom")
		err := AtLine(base, "in.txt", 2)

		assert.ErrorIs(t, err, base)
		assert.Equal(t, "in.txt:2: boom", err.Error())
	})
}
