package guard_test

import (
	"errors"
	"testing"

	"warehouse/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("command not constructed")

	tests := []struct {
		name      string
		guard     guard.ConstructorGuard
		passedErr error
		wantErr   error
	}{
		{
			name:      "constructed guard with custom error",
			guard:     guard.NewConstructorGuard(),
			passedErr: errNotConstructed,
		},
		{
			name:  "constructed guard with nil error",
			guard: guard.NewConstructorGuard(),
		},
		{
			name:      "zero value guard returns custom error",
			passedErr: errNotConstructed,
			wantErr:   errNotConstructed,
		},
		{
			name:    "zero value guard falls back to default error",
			wantErr: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.guard.Validate(tt.passedErr)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConstructorGuard_EmbeddedInStruct(t *testing.T) {
	type command struct {
		id    string
		guard guard.ConstructorGuard
	}
	newCommand := func(id string) command {
		return command{id: id, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newCommand("42").guard.Validate(nil))

	var literal command
	assert.Equal(t, guard.ErrDefaultConstructorGuard, literal.guard.Validate(nil))
}
