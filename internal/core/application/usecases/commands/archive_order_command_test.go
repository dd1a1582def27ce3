package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArchiveOrderCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewArchiveOrderCommand(id)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	require.NoError(t, cmd.Validate())
}

func TestNewArchiveOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewArchiveOrderCommand(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestArchiveOrderCommand_NotConstructedViaConstructor(t *testing.T) {
	err := commands.ArchiveOrderCommand{}.Validate()
	assert.ErrorIs(t, err, commands.ErrArchiveOrderCommandIsNotConstructed)
}
