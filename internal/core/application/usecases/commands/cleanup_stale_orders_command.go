package commands

import (
	"errors"
	"fmt"
	"time"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// DefaultIdleThreshold is how long an Open order may sit untouched before the
// sweep deletes it.
const DefaultIdleThreshold = 7 * 24 * time.Hour

var ErrCleanupStaleOrdersCommandIsNotConstructed = errors.New(
	"CleanupStaleOrdersCommand must be created via NewCleanupStaleOrdersCommand constructor",
)

// CleanupStaleOrdersCommand asks for a sweep of Open orders idle for longer
// than threshold.
type CleanupStaleOrdersCommand struct { //nolint:recvcheck //using for validation
	threshold time.Duration

	guard guard.ConstructorGuard
}

func NewCleanupStaleOrdersCommand(threshold time.Duration) (CleanupStaleOrdersCommand, error) {
	if threshold <= 0 {
		return CleanupStaleOrdersCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"threshold", fmt.Errorf("%s is not greater than 0", threshold),
		)
	}

	return CleanupStaleOrdersCommand{
		threshold: threshold,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c CleanupStaleOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCleanupStaleOrdersCommandIsNotConstructed)
}

func (c CleanupStaleOrdersCommand) Threshold() time.Duration {
	return c.threshold
}
