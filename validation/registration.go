package validation

import (
	"fmt"
	"fresh-connect/domain"
	"fresh-connect/errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// RegisterRequest holds the onboarding fields once trimmed and normalized.
type RegisterRequest struct {
	Name       string `validate:"required,max=100"`
	University string `validate:"required,max=100"`
	Branch     string `validate:"required,max=100"`
}

// ValidateRegistration checks the admission flag first, then the required fields.
// Nothing is persisted by the caller when an error is returned.
func ValidateRegistration(registration domain.Registration) error {
	if !registration.IsNewAdmission {
		return errors.ErrNotNewAdmission
	}

	req := RegisterRequest{
		Name:       strings.TrimSpace(registration.Name),
		University: domain.Normalize(registration.University),
		Branch:     domain.Normalize(registration.Branch),
	}
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidProfile, err)
	}
	return nil
}
