package listing

import (
	"context"
	stderrors "errors"
	"fresh-connect/domain"
	"fresh-connect/errors"
	"fresh-connect/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestService(t *testing.T, provider Provider) *Service {
	t.Helper()
	svc, err := NewService(provider, time.Second, time.Hour, nil, logs.GetLoggerFromLevel(slog.LevelDebug))
	require.NoError(t, err)
	t.Cleanup(svc.Close)
	return svc
}

func hostels(n int) []domain.Hostel {
	out := make([]domain.Hostel, n)
	for i := range out {
		out[i] = domain.Hostel{Name: "Hostel", Location: "Campus road", PriceRange: "₹5,000 /mo", Contact: "desk@hostel.in", Description: "Clean rooms"}
	}
	return out
}

func TestService_Hostels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("should return provider listings and cache them per normalized institution", func(t *testing.T) {
		req := require.New(t)
		provider := mocks.NewMockProvider(ctrl)
		svc := newTestService(t, provider)

		provider.EXPECT().
			FetchHostels(gomock.Any(), "IIT Delhi").
			Return(hostels(3), nil).
			Times(1)

		req.Len(svc.Hostels(context.Background(), "IIT Delhi"), 3)
		req.Len(svc.Hostels(context.Background(), "  iit   delhi "), 3)
	})

	t.Run("should degrade to no listings when the provider fails", func(t *testing.T) {
		req := require.New(t)
		provider := mocks.NewMockProvider(ctrl)
		svc := newTestService(t, provider)

		provider.EXPECT().
			FetchHostels(gomock.Any(), "MIT").
			Return(nil, stderrors.New("quota exceeded")).
			Times(2)

		first := svc.Hostels(context.Background(), "MIT")
		req.NotNil(first)
		req.Empty(first)
		// failures are not cached
		req.Empty(svc.Hostels(context.Background(), "MIT"))
	})

	t.Run("should keep at most five listings", func(t *testing.T) {
		req := require.New(t)
		provider := mocks.NewMockProvider(ctrl)
		svc := newTestService(t, provider)

		provider.EXPECT().FetchHostels(gomock.Any(), "BITS").Return(hostels(8), nil)

		req.Len(svc.Hostels(context.Background(), "BITS"), MaxHostels)
	})

	t.Run("should not call the provider for a blank institution", func(t *testing.T) {
		req := require.New(t)
		provider := mocks.NewMockProvider(ctrl)
		svc := newTestService(t, provider)

		provider.EXPECT().FetchHostels(gomock.Any(), gomock.Any()).Times(0)

		req.Empty(svc.Hostels(context.Background(), "   "))
	})

	t.Run("should pass a cancelled context through and degrade", func(t *testing.T) {
		req := require.New(t)
		provider := mocks.NewMockProvider(ctrl)
		svc := newTestService(t, provider)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		provider.EXPECT().
			FetchHostels(gomock.Any(), "MIT").
			DoAndReturn(func(ctx context.Context, _ string) ([]domain.Hostel, error) {
				return nil, ctx.Err()
			})

		req.Empty(svc.Hostels(ctx, "MIT"))
	})
}

func TestService_Without_Provider_Returns_No_Listings(t *testing.T) {
	req := require.New(t)
	svc := newTestService(t, nil)

	req.Empty(svc.Hostels(context.Background(), "MIT"))

	_, err := disabledProvider{}.FetchHostels(context.Background(), "MIT")
	req.ErrorIs(err, errors.ErrListingsDisabled)
}

func TestPartnerAds(t *testing.T) {
	req := require.New(t)

	ads := newTestService(t, nil).Ads("IIT Bombay")

	req.Len(ads, 2)
	req.Equal("0.5km from IIT Bombay", ads[0].Location)
	for _, ad := range ads {
		req.True(ad.IsPromoted)
		req.GreaterOrEqual(ad.Rating, 0)
		req.LessOrEqual(ad.Rating, 5)
		req.NotEmpty(ad.Tagline)
	}
	req.Equal(0, clampRating(-2))
	req.Equal(5, clampRating(9))
}
