// Package salesrepo is the SQL read side behind the turnover reports. It
// reads the tables written by orderrepo and catalogrepo directly, without
// loading aggregates.
package salesrepo

import (
	"context"
	"time"

	"warehouse/internal/core/domain/model/order"
	"warehouse/internal/core/domain/services"
	"warehouse/internal/core/ports"

	"gorm.io/gorm"
)

// Per-line sales of archived orders. The name column is what the ranking
// groups by.
const (
	itemSalesSQL = `
		SELECT i.name, l.quantity, l.quantity * l.unit_price
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		JOIN items i ON i.id = l.item_id
		WHERE o.stage = ? AND o.updated_on BETWEEN ? AND ?`

	supplierSalesSQL = `
		SELECT s.name, l.quantity, l.quantity * l.unit_price
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		JOIN items i ON i.id = l.item_id
		JOIN suppliers s ON s.id = i.supplier_id
		WHERE o.stage = ? AND o.updated_on BETWEEN ? AND ?`

	customerSalesSQL = `
		SELECT c.company_name, l.quantity, l.quantity * l.unit_price
		FROM order_lines l
		JOIN orders o ON o.id = l.order_id
		JOIN customers c ON c.id = o.customer_id
		WHERE o.stage = ? AND o.updated_on BETWEEN ? AND ?`
)

// GormSalesReader implements ports.SalesReader on PostgreSQL.
type GormSalesReader struct {
	db *gorm.DB
}

func NewGormSalesReader(db *gorm.DB) *GormSalesReader {
	return &GormSalesReader{db: db}
}

func (r *GormSalesReader) EarliestArchivedAt(ctx context.Context) (*time.Time, error) {
	return r.earliest(ctx, `SELECT MIN(updated_on) AS earliest FROM orders WHERE stage = ?`, int(order.Archived))
}

func (r *GormSalesReader) EarliestCreatedAt(ctx context.Context) (*time.Time, error) {
	return r.earliest(ctx, `SELECT MIN(created_on) AS earliest FROM orders WHERE stage <> ?`, int(order.Deleted))
}

func (r *GormSalesReader) ItemSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error) {
	return r.sales(ctx, itemSalesSQL, borders)
}

func (r *GormSalesReader) SupplierSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error) {
	return r.sales(ctx, supplierSalesSQL, borders)
}

func (r *GormSalesReader) CustomerSales(ctx context.Context, borders services.TimeBorders) ([]services.SaleRow, error) {
	return r.sales(ctx, customerSalesSQL, borders)
}

func (r *GormSalesReader) ArchivedTotals(
	ctx context.Context,
	borders services.TimeBorders,
) ([]services.ArchivedTotal, error) {
	totals := make([]services.ArchivedTotal, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT updated_on, total
		FROM orders
		WHERE stage = ? AND updated_on BETWEEN ? AND ?
		ORDER BY updated_on`,
		int(order.Archived), borders.From, borders.To,
	).Scan(&totals).Error
	if err != nil {
		return nil, err
	}
	return totals, nil
}

func (r *GormSalesReader) StageCounts(ctx context.Context, borders services.TimeBorders) (ports.StageCounts, error) {
	var counts ports.StageCounts
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) FILTER (WHERE stage = @open AND created_on BETWEEN @from AND @to) AS open,
			COUNT(*) FILTER (WHERE stage = @closed AND updated_on BETWEEN @from AND @to) AS closed,
			COUNT(*) FILTER (WHERE stage = @archived AND updated_on BETWEEN @from AND @to) AS archived
		FROM orders`,
		map[string]any{
			"open":     int(order.Open),
			"closed":   int(order.Closed),
			"archived": int(order.Archived),
			"from":     borders.From,
			"to":       borders.To,
		},
	).Scan(&counts).Error
	return counts, err
}

func (r *GormSalesReader) earliest(ctx context.Context, query string, stage int) (*time.Time, error) {
	var row struct {
		Earliest *time.Time
	}
	if err := r.db.WithContext(ctx).Raw(query, stage).Scan(&row).Error; err != nil {
		return nil, err
	}
	return row.Earliest, nil
}

func (r *GormSalesReader) sales(
	ctx context.Context,
	query string,
	borders services.TimeBorders,
) ([]services.SaleRow, error) {
	rows, err := r.db.WithContext(ctx).Raw(query, int(order.Archived), borders.From, borders.To).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sales := make([]services.SaleRow, 0)
	for rows.Next() {
		var row services.SaleRow
		if err = rows.Scan(&row.Name, &row.Quantity, &row.Subtotal); err != nil {
			return nil, err
		}
		sales = append(sales, row)
	}

	return sales, rows.Err()
}
