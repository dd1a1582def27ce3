package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

// DefaultExportBatchSize bounds how many export records one relay run handles.
const DefaultExportBatchSize = 50

var ErrDispatchArchiveExportsCommandIsNotConstructed = errors.New(
	"DispatchArchiveExportsCommand must be created via NewDispatchArchiveExportsCommand constructor",
)

// DispatchArchiveExportsCommand relays due export records to the exporter.
type DispatchArchiveExportsCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewDispatchArchiveExportsCommand(batchSize int) (DispatchArchiveExportsCommand, error) {
	if batchSize <= 0 {
		return DispatchArchiveExportsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"batch size", fmt.Errorf("%d is not greater than 0", batchSize),
		)
	}

	return DispatchArchiveExportsCommand{
		batchSize: batchSize,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c DispatchArchiveExportsCommand) Validate() error {
	return c.guard.Validate(ErrDispatchArchiveExportsCommandIsNotConstructed)
}

func (c DispatchArchiveExportsCommand) BatchSize() int {
	return c.batchSize
}
