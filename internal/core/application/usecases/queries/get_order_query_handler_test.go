package queries_test

import (
	"testing"
	"time"

	"warehouse/internal/core/application/usecases/queries"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, placed time.Time, quantity int, price string) *order.Order {
	t.Helper()
	line, err := order.NewLine(kernel.NewUUID(), quantity, kernel.MustMoney(price))
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []order.Line{line}, placed)
	require.NoError(t, err)
	return o
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, testNow, 3, "2.50")
	require.NoError(t, o.Complete(testNow.Add(time.Hour)))

	reader := new(MockOrderReader)
	reader.On("GetOrder", ctx, o.ID()).Return(o, nil).Once()
	query, err := queries.NewGetOrderQuery(o.ID())
	require.NoError(t, err)

	got, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, o.ID().String(), got.ID)
	assert.Equal(t, "Closed", got.Stage)
	assert.Empty(t, got.DeletedFrom)
	assert.Equal(t, "7.50", got.Total)
	assert.Equal(t, testNow, got.CreatedOn)
	assert.Equal(t, testNow.Add(time.Hour), got.UpdatedOn)
	require.Len(t, got.Lines, 1)
	assert.Equal(t, 3, got.Lines[0].Quantity)
	assert.Equal(t, "2.50", got.Lines[0].UnitPrice)
	assert.Equal(t, "7.50", got.Lines[0].Subtotal)
	reader.AssertExpectations(t)
}

func TestGetOrderQueryHandler_Handle_DeletedOrderShowsOrigin(t *testing.T) {
	ctx := t.Context()
	o := newOrder(t, testNow, 1, "1.00")
	_, err := o.MarkDeleted(testNow)
	require.NoError(t, err)

	reader := new(MockOrderReader)
	reader.On("GetOrder", ctx, o.ID()).Return(o, nil).Once()
	query, _ := queries.NewGetOrderQuery(o.ID())

	got, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, "Deleted", got.Stage)
	assert.Equal(t, "Open", got.DeletedFrom)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	reader := new(MockOrderReader)
	reader.On("GetOrder", ctx, orderID).Return(nil, errs.NewObjectNotFoundError("order", orderID.String())).Once()
	query, _ := queries.NewGetOrderQuery(orderID)

	_, err := queries.NewGetOrderQueryHandler(reader).Handle(ctx, query)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_ValidationError(t *testing.T) {
	reader := new(MockOrderReader)

	_, err := queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), queries.GetOrderQuery{})

	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
	reader.AssertNotCalled(t, "GetOrder", mock.Anything, mock.Anything)
}
