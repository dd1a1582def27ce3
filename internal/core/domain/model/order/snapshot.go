package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// Snapshot is the serializable view of an order handed to archival exporters
// and stored in the export outbox. It keeps the legacy flag view so existing
// consumers of exported files keep working.
type Snapshot struct {
	ID         string          `json:"id"`
	CustomerID string          `json:"customerId"`
	Lines      []LineSnapshot  `json:"lines"`
	Total      decimal.Decimal `json:"total"`
	CreatedOn  time.Time       `json:"createdOn"`
	UpdatedOn  time.Time       `json:"updatedOn"`
	Stage      string          `json:"stage"`
	Closed     bool            `json:"closed"`
	Archived   bool            `json:"archived"`
	Deleted    bool            `json:"deleted"`
}

type LineSnapshot struct {
	ItemID    string          `json:"itemId"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Snapshot captures the current state of the order.
func (o *Order) Snapshot() Snapshot {
	lines := make([]LineSnapshot, 0, len(o.lines))
	for _, l := range o.lines {
		lines = append(lines, LineSnapshot{
			ItemID:    l.ItemID().String(),
			Quantity:  l.Quantity(),
			UnitPrice: l.UnitPrice().Decimal(),
			Subtotal:  l.Subtotal().Decimal(),
		})
	}

	return Snapshot{
		ID:         o.id.String(),
		CustomerID: o.customerID.String(),
		Lines:      lines,
		Total:      o.total.Decimal(),
		CreatedOn:  o.createdOn,
		UpdatedOn:  o.updatedOn,
		Stage:      o.stage.String(),
		Closed:     o.Closed(),
		Archived:   o.Archived(),
		Deleted:    o.Deleted(),
	}
}
