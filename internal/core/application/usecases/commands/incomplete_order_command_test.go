package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIncompleteOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewIncompleteOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	require.NoError(t, cmd.Validate())
}

func TestNewIncompleteOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewIncompleteOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestIncompleteOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	err := commands.IncompleteOrderCommand{}.Validate()
	assert.ErrorIs(t, err, commands.ErrIncompleteOrderCommandIsNotConstructed)
}
