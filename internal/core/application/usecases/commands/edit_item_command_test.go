package commands_test

import (
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEditItemCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewEditItemCommand(id, "Pallet jack", "Handling", kernel.MustMoney("289.99"))
	require.NoError(t, err)
	assert.Equal(t, id, cmd.ItemID())
	assert.Equal(t, "Pallet jack", cmd.Name())
	assert.Equal(t, "Handling", cmd.Category())
	assert.Equal(t, "289.99", cmd.Price().String())
}

func TestNewEditItemCommand_InvalidInput(t *testing.T) {
	_, err := commands.NewEditItemCommand(kernel.NewUUID(), "", " ", kernel.ZeroMoney())
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "price")
}

func TestNewEditItemCommand_InvalidItemID(t *testing.T) {
	_, err := commands.NewEditItemCommand(kernel.UUID{}, "Pallet jack", "Handling", kernel.MustMoney("10"))
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestEditItemCommand_NotConstructedViaConstructor(t *testing.T) {
	err := commands.EditItemCommand{}.Validate()
	assert.ErrorIs(t, err, commands.ErrEditItemCommandIsNotConstructed)
}
