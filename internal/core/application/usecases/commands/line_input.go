package commands

import (
	"errors"
	"fmt"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
)

// LineInput is a requested quantity of one catalog item. Prices are never
// taken from the caller; handlers read them from the catalog.
type LineInput struct {
	ItemID   kernel.UUID
	Quantity int
}

// normalizeLines validates the inputs and merges repeated items, keeping the
// order in which items first appear.
func normalizeLines(lines []LineInput) ([]LineInput, error) {
	if len(lines) == 0 {
		return nil, errs.NewValueIsRequiredError("lines")
	}

	var validationErrs []error
	merged := make([]LineInput, 0, len(lines))
	index := make(map[kernel.UUID]int, len(lines))
	for i, l := range lines {
		if err := l.ItemID.Validate(); err != nil {
			validationErrs = append(validationErrs, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		if l.Quantity <= 0 {
			validationErrs = append(validationErrs, fmt.Errorf("line %d: %w", i,
				errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", l.Quantity))))
			continue
		}
		if j, ok := index[l.ItemID]; ok {
			merged[j].Quantity += l.Quantity
			continue
		}
		index[l.ItemID] = len(merged)
		merged = append(merged, l)
	}

	if err := errors.Join(validationErrs...); err != nil {
		return nil, err
	}
	return merged, nil
}
