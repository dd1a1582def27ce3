package order

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for a customer order. It owns its lines and
// enforces the lifecycle rules of Stage.
//
// Order follows these invariants:
//   - Has a valid identifier and customer reference
//   - Has at least one line, at most one line per item
//   - Total always equals the sum of line subtotals
//   - UpdatedOn is never before CreatedOn
//   - Nothing changes once the order is Deleted
//
// Version is the optimistic concurrency token the order was loaded with.
// Repositories write only if the stored version still matches it.
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	lines      []Line
	total      kernel.Money
	createdOn  time.Time
	updatedOn  time.Time
	stage      Stage

	// deletedFrom is the stage the order left when it was deleted; it keeps the
	// closed/archived flag view truthful for deleted orders.
	deletedFrom Stage

	version int

	guard guard.ConstructorGuard
}

// NewOrder creates an Open order placed at now. Lines for the same item are
// merged into a single line.
//
// Example:
//
//	line, _ := order.NewLine(itemID, 3, kernel.MustMoney("12.50"))
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, []order.Line{line}, clock.Now())
//	if err != nil {
//	    return err
//	}
//	fmt.Println(o.Total()) // 37.50
func NewOrder(id, customerID kernel.UUID, lines []Line, now time.Time) (*Order, error) {
	o := &Order{
		stage:     Open,
		createdOn: now,
		updatedOn: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setCreatedOn(now),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state. Used by repositories only.
func RestoreOrder(
	id, customerID kernel.UUID,
	lines []Line,
	createdOn, updatedOn time.Time,
	stage, deletedFrom Stage,
	version int,
) (*Order, error) {
	o := &Order{
		createdOn:   createdOn,
		updatedOn:   updatedOn,
		stage:       stage,
		deletedFrom: deletedFrom,
		version:     version,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setLines(lines),
		o.setCreatedOn(createdOn),
		stage.Validate(),
	); err != nil {
		return nil, err
	}

	if updatedOn.Before(createdOn) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"updated on",
			fmt.Errorf("%s is before created on %s", updatedOn, createdOn),
		)
	}

	if stage == Deleted {
		if err := deletedFrom.Validate(); err != nil || deletedFrom == Deleted {
			return nil, errs.NewValueIsInvalidError("deleted from")
		}
	}

	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Lines returns a copy of the order lines.
func (o *Order) Lines() []Line {
	return slices.Clone(o.lines)
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) CreatedOn() time.Time {
	return o.createdOn
}

func (o *Order) UpdatedOn() time.Time {
	return o.updatedOn
}

func (o *Order) Stage() Stage {
	return o.stage
}

// DeletedFrom returns the stage the order was deleted from, Unknown if not deleted.
func (o *Order) DeletedFrom() Stage {
	return o.deletedFrom
}

func (o *Order) Version() int {
	return o.version
}

// Closed reports the legacy "closed" flag. Archived orders are closed too.
func (o *Order) Closed() bool {
	if o.stage == Deleted {
		return o.deletedFrom.IsClosed()
	}
	return o.stage.IsClosed()
}

// Archived reports the legacy "archived" flag.
func (o *Order) Archived() bool {
	return o.stage == Archived || (o.stage == Deleted && o.deletedFrom == Archived)
}

// Deleted reports the legacy "deleted" flag.
func (o *Order) Deleted() bool {
	return o.stage == Deleted
}

// Complete closes an Open order.
func (o *Order) Complete(now time.Time) error {
	return o.transition(now, Stage.Complete)
}

// Incomplete reopens a Closed order that has not been archived yet.
func (o *Order) Incomplete(now time.Time) error {
	return o.transition(now, Stage.Incomplete)
}

// Archive moves a Closed order to Archived, making it count towards turnover.
func (o *Order) Archive(now time.Time) error {
	return o.transition(now, Stage.Archive)
}

// MarkDeleted soft deletes the order from any stage. It reports whether the
// order changed: deleting an already deleted order is a no-op, not an error.
func (o *Order) MarkDeleted(now time.Time) (bool, error) {
	if o.stage == Deleted {
		return false, nil
	}

	from := o.stage
	if err := o.transition(now, Stage.Delete); err != nil {
		return false, err
	}
	o.deletedFrom = from
	return true, nil
}

// ReplaceLines swaps the lines of an Open order and recomputes the total.
func (o *Order) ReplaceLines(lines []Line, now time.Time) error {
	if o.stage != Open {
		return errs.NewInvalidStateTransitionError("edit lines", o.stage.String())
	}
	if err := o.setLines(lines); err != nil {
		return err
	}
	o.touch(now)
	return nil
}

func (o *Order) transition(now time.Time, next func(Stage) (Stage, error)) error {
	stage, err := next(o.stage)
	if err != nil {
		return err
	}
	o.stage = stage
	o.touch(now)
	return nil
}

// touch moves updatedOn to now, clamped so it never precedes createdOn.
func (o *Order) touch(now time.Time) {
	if now.Before(o.createdOn) {
		now = o.createdOn
	}
	o.updatedOn = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setLines(lines []Line) error {
	merged, err := mergeLines(lines)
	if err != nil {
		return err
	}

	total := kernel.ZeroMoney()
	for _, l := range merged {
		total = total.Add(l.Subtotal())
	}

	o.lines = merged
	o.total = total
	return nil
}

func (o *Order) setCreatedOn(createdOn time.Time) error {
	if createdOn.IsZero() {
		return errs.NewValueIsRequiredError("created on")
	}
	return nil
}
