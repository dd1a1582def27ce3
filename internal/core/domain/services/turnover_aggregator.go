package services

import (
	"cmp"
	"math/big"
	"slices"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the size of a ranking when none is configured.
const DefaultTopN = 5

// SaleRow is the quantity and turnover one order line, or an already grouped
// set of lines, contributed to a ranked name.
type SaleRow struct {
	Name     string
	Quantity int64
	Subtotal decimal.Decimal
}

// Ranking holds the top entries of a report keyed by rank, starting at 1.
// The three maps always share the same keys.
type Ranking struct {
	Names      map[int]string          `json:"names"`
	Quantities map[int]*big.Int        `json:"quantities"`
	Turnovers  map[int]decimal.Decimal `json:"turnovers"`
}

// Len returns the number of ranked entries.
func (r Ranking) Len() int {
	return len(r.Names)
}

// TurnoverAggregator ranks archived sales by quantity.
//
// Example:
//
//	agg := services.NewTurnoverAggregator(5)
//	ranking := agg.Rank(rows)
//	fmt.Println(ranking.Names[1], ranking.Quantities[1], ranking.Turnovers[1])
type TurnoverAggregator struct {
	topN int
}

// NewTurnoverAggregator returns an aggregator keeping topN entries.
// A non-positive topN falls back to DefaultTopN.
func NewTurnoverAggregator(topN int) TurnoverAggregator {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return TurnoverAggregator{topN: topN}
}

// TopN returns the ranking size.
func (a TurnoverAggregator) TopN() int {
	if a.topN <= 0 {
		return DefaultTopN
	}
	return a.topN
}

type bucket struct {
	name     string
	quantity *big.Int
	turnover decimal.Decimal
}

// Rank sums quantity and turnover per name and keeps the TopN names ordered
// by quantity descending, ties broken by name ascending. Quantities are
// summed without overflow.
func (a TurnoverAggregator) Rank(rows []SaleRow) Ranking {
	byName := make(map[string]*bucket, len(rows))
	for _, row := range rows {
		b, ok := byName[row.Name]
		if !ok {
			b = &bucket{name: row.Name, quantity: new(big.Int), turnover: decimal.Zero}
			byName[row.Name] = b
		}
		b.quantity.Add(b.quantity, big.NewInt(row.Quantity))
		b.turnover = b.turnover.Add(row.Subtotal)
	}

	buckets := make([]*bucket, 0, len(byName))
	for _, b := range byName {
		buckets = append(buckets, b)
	}
	slices.SortFunc(buckets, func(x, y *bucket) int {
		if c := y.quantity.Cmp(x.quantity); c != 0 {
			return c
		}
		return cmp.Compare(x.name, y.name)
	})

	if len(buckets) > a.TopN() {
		buckets = buckets[:a.TopN()]
	}

	ranking := Ranking{
		Names:      make(map[int]string, len(buckets)),
		Quantities: make(map[int]*big.Int, len(buckets)),
		Turnovers:  make(map[int]decimal.Decimal, len(buckets)),
	}
	for i, b := range buckets {
		rank := i + 1
		ranking.Names[rank] = b.name
		ranking.Quantities[rank] = b.quantity
		ranking.Turnovers[rank] = b.turnover
	}
	return ranking
}
