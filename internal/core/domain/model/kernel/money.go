package kernel

import (
	"fmt"

	"warehouse/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative monetary amount with exact decimal arithmetic.
// Prices, line subtotals, order totals and turnover are all Money, so no
// amount ever goes through float64.
//
// The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney is the additive identity, used as the starting point of sums.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// MoneyScale is the number of fractional digits an amount may carry. It
// matches the numeric(_, 2) columns amounts are stored in.
const MoneyScale = 2

// NewMoney validates that amount is not negative and has no more than
// MoneyScale significant fractional digits, so 1.500 is accepted and 0.005
// is not.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	if !amount.Equal(amount.Truncate(MoneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%s has more than %d decimal places", amount.String(), MoneyScale),
		)
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "19.99".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

// MustMoney is MoneyFromString for literals known to be valid.
func MustMoney(s string) Money {
	m, err := MoneyFromString(s)
	if err != nil {
		panic(err)
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsZero reports whether the amount equals 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is greater than 0.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Equal compares amounts numerically, so 1.5 equals 1.50.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal exposes the amount for persistence and serialization.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount with two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
