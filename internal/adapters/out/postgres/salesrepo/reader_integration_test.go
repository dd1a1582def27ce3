package salesrepo_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "warehouse/internal/adapters/out/postgres"
	"warehouse/internal/adapters/out/postgres/catalogrepo"
	"warehouse/internal/adapters/out/postgres/orderrepo"
	"warehouse/internal/adapters/out/postgres/pgtest"
	"warehouse/internal/adapters/out/postgres/salesrepo"
	"warehouse/internal/core/domain/model/catalog"
	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func day(d int, month time.Month) time.Time {
	return time.Date(2023, month, d, 10, 0, 0, 0, time.UTC)
}

var january = services.TimeBorders{
	From: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	To:   time.Date(2023, 1, 31, 23, 59, 59, int(999*time.Millisecond), time.UTC),
}

// SalesReaderIntegrationTestSuite seeds one month of orders in every stage
// and checks that only archived ones count as sales.
type SalesReaderIntegrationTestSuite struct {
	suite.Suite
	pg     *pgtest.Database
	reader *salesrepo.GormSalesReader

	film, jack         *catalog.Item
	northwind, contoso *catalog.Customer
}

func (suite *SalesReaderIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	pg, err := pgtest.Start(ctx)
	suite.Require().NoError(err)
	suite.pg = pg
	suite.Require().NoError(postgresadapter.Migrate(ctx, pg.DB))

	suite.reader = salesrepo.NewGormSalesReader(pg.DB)
	suite.seed(ctx)
}

func (suite *SalesReaderIntegrationTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.pg.Stop(context.Background()))
}

func (suite *SalesReaderIntegrationTestSuite) seed(ctx context.Context) {
	suppliers := catalogrepo.NewGormSupplierRepository(suite.pg.DB)
	customers := catalogrepo.NewGormCustomerRepository(suite.pg.DB)
	items := catalogrepo.NewGormItemRepository(suite.pg.DB)
	orders := orderrepo.NewGormOrderRepository(suite.pg.DB)

	acme := suite.must(catalog.NewSupplier(kernel.NewUUID(), "Acme", "acme@example.com"))
	globex := suite.must(catalog.NewSupplier(kernel.NewUUID(), "Globex", "globex@example.com"))
	suite.Require().NoError(suppliers.Add(ctx, acme))
	suite.Require().NoError(suppliers.Add(ctx, globex))

	suite.film = suite.mustItem(catalog.NewItem(kernel.NewUUID(), "Stretch film", "Packaging", kernel.MustMoney("7.40"), 500, acme.ID()))
	suite.jack = suite.mustItem(catalog.NewItem(kernel.NewUUID(), "Pallet jack", "Tools", kernel.MustMoney("299.00"), 5, globex.ID()))
	suite.Require().NoError(items.Add(ctx, suite.film))
	suite.Require().NoError(items.Add(ctx, suite.jack))

	suite.northwind = suite.mustCustomer(catalog.NewCustomer(kernel.NewUUID(), "Northwind", "Anne", "anne@northwind.example"))
	suite.contoso = suite.mustCustomer(catalog.NewCustomer(kernel.NewUUID(), "Contoso", "Ben", "ben@contoso.example"))
	suite.Require().NoError(customers.Add(ctx, suite.northwind))
	suite.Require().NoError(customers.Add(ctx, suite.contoso))

	for _, o := range []*order.Order{
		// archived in January
		suite.place(suite.northwind, day(8, time.January), order.Archived, day(10, time.January),
			suite.line(suite.film, 4), suite.line(suite.jack, 1)),
		suite.place(suite.contoso, day(18, time.January), order.Archived, day(20, time.January),
			suite.line(suite.film, 3)),
		// never archived
		suite.place(suite.contoso, day(14, time.January), order.Closed, day(15, time.January),
			suite.line(suite.film, 100)),
		suite.place(suite.northwind, day(5, time.January), order.Open, day(5, time.January),
			suite.line(suite.jack, 2)),
		// archived, then deleted
		suite.place(suite.northwind, day(2, time.January), order.Deleted, day(3, time.January),
			suite.line(suite.film, 50)),
		// archived after the window
		suite.place(suite.contoso, day(1, time.February), order.Archived, day(5, time.February),
			suite.line(suite.jack, 1)),
	} {
		suite.Require().NoError(orders.Add(ctx, o))
	}
}

func (suite *SalesReaderIntegrationTestSuite) TestEarliest() {
	ctx := suite.T().Context()

	archived, err := suite.reader.EarliestArchivedAt(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(archived)
	suite.True(archived.Equal(day(10, time.January)))

	created, err := suite.reader.EarliestCreatedAt(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.True(created.Equal(day(5, time.January)), "deleted orders are ignored")
}

func (suite *SalesReaderIntegrationTestSuite) TestItemSales() {
	rows, err := suite.reader.ItemSales(suite.T().Context(), january)

	suite.Require().NoError(err)
	quantities, turnovers := totals(rows)
	suite.Equal(map[string]int64{"Stretch film": 7, "Pallet jack": 1}, quantities)
	suite.Equal("51.8", turnovers["Stretch film"].String())
	suite.Equal("299", turnovers["Pallet jack"].String())
}

func (suite *SalesReaderIntegrationTestSuite) TestSupplierSales() {
	rows, err := suite.reader.SupplierSales(suite.T().Context(), january)

	suite.Require().NoError(err)
	quantities, _ := totals(rows)
	suite.Equal(map[string]int64{"Acme": 7, "Globex": 1}, quantities)
}

func (suite *SalesReaderIntegrationTestSuite) TestCustomerSales() {
	rows, err := suite.reader.CustomerSales(suite.T().Context(), january)

	suite.Require().NoError(err)
	quantities, _ := totals(rows)
	suite.Equal(map[string]int64{"Northwind": 5, "Contoso": 3}, quantities)
}

func (suite *SalesReaderIntegrationTestSuite) TestArchivedTotals() {
	got, err := suite.reader.ArchivedTotals(suite.T().Context(), january)

	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.True(got[0].UpdatedOn.Equal(day(10, time.January)))
	suite.Equal("328.6", got[0].Total.String())
	suite.Equal("22.2", got[1].Total.String())
}

func (suite *SalesReaderIntegrationTestSuite) TestStageCounts() {
	counts, err := suite.reader.StageCounts(suite.T().Context(), january)

	suite.Require().NoError(err)
	suite.Equal(ports.StageCounts{Open: 1, Closed: 1, Archived: 2}, counts)
}

func (suite *SalesReaderIntegrationTestSuite) TestEmptyWindow() {
	empty := services.TimeBorders{From: day(1, time.March), To: day(2, time.March)}

	rows, err := suite.reader.ItemSales(suite.T().Context(), empty)
	suite.Require().NoError(err)
	suite.NotNil(rows)
	suite.Empty(rows)
}

func totals(rows []services.SaleRow) (map[string]int64, map[string]decimal.Decimal) {
	quantities := make(map[string]int64)
	turnovers := make(map[string]decimal.Decimal)
	for _, r := range rows {
		quantities[r.Name] += r.Quantity
		turnovers[r.Name] = turnovers[r.Name].Add(r.Subtotal)
	}
	return quantities, turnovers
}

// place builds an order placed at placedAt and moved to stage at movedAt.
// Deleted orders are archived first.
func (suite *SalesReaderIntegrationTestSuite) place(
	customer *catalog.Customer,
	placedAt time.Time,
	stage order.Stage,
	movedAt time.Time,
	lines ...order.Line,
) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), customer.ID(), lines, placedAt)
	suite.Require().NoError(err)

	if stage == order.Open {
		return o
	}
	suite.Require().NoError(o.Complete(movedAt))
	if stage == order.Closed {
		return o
	}
	suite.Require().NoError(o.Archive(movedAt))
	if stage == order.Deleted {
		_, err = o.MarkDeleted(movedAt)
		suite.Require().NoError(err)
	}
	return o
}

func (suite *SalesReaderIntegrationTestSuite) line(item *catalog.Item, quantity int) order.Line {
	l, err := order.NewLine(item.ID(), quantity, item.Price())
	suite.Require().NoError(err)
	return l
}

func (suite *SalesReaderIntegrationTestSuite) must(s *catalog.Supplier, err error) *catalog.Supplier {
	suite.Require().NoError(err)
	return s
}

func (suite *SalesReaderIntegrationTestSuite) mustItem(i *catalog.Item, err error) *catalog.Item {
	suite.Require().NoError(err)
	return i
}

func (suite *SalesReaderIntegrationTestSuite) mustCustomer(c *catalog.Customer, err error) *catalog.Customer {
	suite.Require().NoError(err)
	return c
}

func TestSalesReaderIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SalesReaderIntegrationTestSuite))
}
