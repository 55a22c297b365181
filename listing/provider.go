//go:generate go run go.uber.org/mock/mockgen -source=provider.go -destination=../mocks/mock_listing_provider.go -package=mocks
package listing

import (
	"context"
	"fresh-connect/domain"
	"fresh-connect/errors"
)

// MaxHostels bounds how many records a provider may contribute for one institution.
const MaxHostels = 5

// Provider fetches organic hostel listings for a free-text institution name.
// Results are not deterministic and errors are expected.
type Provider interface {
	FetchHostels(ctx context.Context, institution string) ([]domain.Hostel, error)
}

// disabledProvider stands in when no listing backend is configured.
type disabledProvider struct{}

func (disabledProvider) FetchHostels(context.Context, string) ([]domain.Hostel, error) {
	return nil, errors.ErrListingsDisabled
}
