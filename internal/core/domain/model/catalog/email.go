package catalog

import (
	"fmt"
	"net/mail"
	"strings"

	"warehouse/internal/pkg/errs"
)

// normalizeEmail accepts a bare address and lower-cases it.
func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", errs.NewValueIsRequiredError("email")
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an address", email))
	}
	return strings.ToLower(addr.Address), nil
}
