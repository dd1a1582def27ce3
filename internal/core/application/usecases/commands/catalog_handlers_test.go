package commands_test

import (
	"errors"
	"testing"

	"warehouse/internal/core/application/usecases/commands"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func catalogUoW(t *testing.T) (*MockUoW, *MockCatalogUoWFactory) {
	t.Helper()
	uow := new(MockUoW)
	uow.On("Begin", t.Context()).Return(nil).Once()
	uow.On("Rollback", t.Context()).Return(nil).Once()
	factory := new(MockCatalogUoWFactory)
	factory.On("Create").Return(uow).Once()
	return uow, factory
}

func TestCreateSupplierCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateSupplierCommand(gofakeit.Company(), "Orders@Supplier.example")
	require.NoError(t, err)

	repo := new(MockSupplierRepository)
	var stored *catalog.Supplier
	repo.On("Add", ctx, mock.AnythingOfType("*catalog.Supplier")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*catalog.Supplier) }).
		Return(nil).Once()
	uow, factory := catalogUoW(t)
	uow.On("SupplierRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCreateSupplierCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.NotNil(t, stored)
	assert.True(t, stored.ID().IsEqual(cmd.SupplierID()))
	assert.Equal(t, "orders@supplier.example", stored.Email())
	uow.AssertExpectations(t)
}

func TestCreateSupplierCommandHandler_Handle_InvalidEmail(t *testing.T) {
	cmd, err := commands.NewCreateSupplierCommand("Acme", "not an email")
	require.NoError(t, err)

	h := commands.NewCreateSupplierCommandHandler(new(MockCatalogUoWFactory))
	err = h.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCreateCustomerCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCustomerCommand(gofakeit.Company(), gofakeit.Name(), gofakeit.Email())
	require.NoError(t, err)

	repo := new(MockCustomerRepository)
	repo.On("Add", ctx, mock.MatchedBy(func(c *catalog.Customer) bool {
		return c.ID().IsEqual(cmd.CustomerID()) && c.CompanyName() == cmd.CompanyName()
	})).Return(nil).Once()
	uow, factory := catalogUoW(t)
	uow.On("CustomerRepository").Return(repo).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCreateCustomerCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	repo.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	supplier, err := catalog.NewSupplier(kernel.NewUUID(), "Acme", "acme@example.com")
	require.NoError(t, err)
	cmd, err := commands.NewCreateItemCommand("Stretch film", "Packaging", kernel.MustMoney("7.40"), 500, supplier.ID())
	require.NoError(t, err)

	suppliers := new(MockSupplierRepository)
	suppliers.On("Get", ctx, supplier.ID()).Return(supplier, nil).Once()
	items := new(MockItemRepository)
	items.On("Add", ctx, mock.MatchedBy(func(i *catalog.Item) bool {
		return i.ID().IsEqual(cmd.ItemID()) && i.Stock() == 500 && i.Price().String() == "7.40"
	})).Return(nil).Once()
	uow, factory := catalogUoW(t)
	uow.On("SupplierRepository").Return(suppliers).Once()
	uow.On("ItemRepository").Return(items).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	items.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateItemCommandHandler_Handle_UnknownSupplier(t *testing.T) {
	ctx := t.Context()
	supplierID := kernel.NewUUID()
	cmd, _ := commands.NewCreateItemCommand("Pallet", "Logistics", kernel.MustMoney("12"), 1, supplierID)

	suppliers := new(MockSupplierRepository)
	suppliers.On("Get", ctx, supplierID).
		Return(nil, errs.NewObjectNotFoundError("supplier", supplierID.String())).Once()
	uow, factory := catalogUoW(t)
	uow.On("SupplierRepository").Return(suppliers).Once()

	h := commands.NewCreateItemCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "ItemRepository")
}

func TestCreateItemCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	supplier, _ := catalog.NewSupplier(kernel.NewUUID(), "Acme", "acme@example.com")
	cmd, _ := commands.NewCreateItemCommand("Pallet", "Logistics", kernel.MustMoney("12"), 1, supplier.ID())

	suppliers := new(MockSupplierRepository)
	suppliers.On("Get", ctx, supplier.ID()).Return(supplier, nil).Once()
	items := new(MockItemRepository)
	items.On("Add", ctx, mock.Anything).Return(errors.New("duplicate name")).Once()
	uow, factory := catalogUoW(t)
	uow.On("SupplierRepository").Return(suppliers).Once()
	uow.On("ItemRepository").Return(items).Once()

	h := commands.NewCreateItemCommandHandler(factory)

	require.EqualError(t, h.Handle(ctx, cmd), "duplicate name")
}
