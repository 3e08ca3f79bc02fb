package pipeline

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hotelforge/aggregator/internal/domain"
	"github.com/hotelforge/aggregator/internal/platform/idempotency"
	"github.com/hotelforge/aggregator/internal/paymentgateway"
	paymentmocks "github.com/hotelforge/aggregator/internal/paymentgateway/mocks"
	providermocks "github.com/hotelforge/aggregator/internal/provider/mocks"
	memorystore "github.com/hotelforge/aggregator/internal/recordstore/memory"
)

// fakeRedisCache is an in-memory stand-in for *redis.Client so pipeline
// tests don't require a running broker.
type fakeRedisCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeRedisCache() *fakeRedisCache {
	return &fakeRedisCache{data: make(map[string][]byte)}
}

func (f *fakeRedisCache) Get(ctx context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	cmd := redis.NewStringCmd(ctx)
	if v, ok := f.data[key]; ok {
		cmd.SetVal(string(v))
	} else {
		cmd.SetErr(redis.Nil)
	}
	return cmd
}

func (f *fakeRedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	switch v := value.(type) {
	case []byte:
		f.data[key] = v
	case string:
		f.data[key] = []byte(v)
	}
	cmd := redis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func TestGetPaymentStatusStep_ExecutesAndSkipsOnFinal(t *testing.T) {
	ctrl := gomock.NewController(t)
	gateway := paymentmocks.NewMockGateway(ctrl)
	step := &GetPaymentStatusStep{Gateway: gateway}

	event := &domain.ServerSideBookingEvent{OrderID: "ORD-1"}
	skip, err := step.Validate(context.Background(), event)
	require.NoError(t, err)
	assert.False(t, skip)

	gateway.EXPECT().GetTransactionStatus(gomock.Any(), "ORD-1").Return(
		paymentgateway.TransactionStatus{OrderID: "ORD-1", PaymentID: "PAY-1", Status: domain.PaymentStatusPaid},
		nil,
	)

	require.NoError(t, step.Execute(context.Background(), event))
	require.NotNil(t, event.PaymentStatus)
	assert.Equal(t, domain.PaymentStatusPaid, *event.PaymentStatus)

	skip, err = step.Validate(context.Background(), event)
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestMakeBookingStep_SkipsWhenAlreadyBooked(t *testing.T) {
	store := memorystore.New()
	ctx := context.Background()
	require.NoError(t, store.AddBooking(ctx, domain.BookingRecord{AppReference: "ORD-2", Email: "x@example.com"}))
	require.NoError(t, store.UpdateBookRoomDetails(ctx, "ORD-2", domain.BookRoomDetails{ProviderBookingID: "BK-1", Status: "CONFIRMED"}))

	ctrl := gomock.NewController(t)
	hotelProvider := providermocks.NewMockHotelProvider(ctrl)
	manager := idempotency.NewWithCache(newFakeRedisCache())
	step := &MakeBookingStep{Provider: hotelProvider, Store: store, Idempotent: manager}

	skip, err := step.Validate(ctx, &domain.ServerSideBookingEvent{OrderID: "ORD-2"})
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestMakeBookingStep_BooksOnceAndCachesIdempotently(t *testing.T) {
	store := memorystore.New()
	ctx := context.Background()
	require.NoError(t, store.AddBooking(ctx, domain.BookingRecord{AppReference: "ORD-3", Email: "y@example.com"}))

	ctrl := gomock.NewController(t)
	hotelProvider := providermocks.NewMockHotelProvider(ctrl)
	hotelProvider.EXPECT().BookRoom(gomock.Any(), gomock.Any()).Return(
		domain.BookRoomResponse{ProviderBookingID: "BK-99", Status: "CONFIRMED"}, nil,
	).Times(1)

	manager := idempotency.NewWithCache(newFakeRedisCache())
	step := &MakeBookingStep{Provider: hotelProvider, Store: store, Idempotent: manager}

	event := &domain.ServerSideBookingEvent{OrderID: "ORD-3", BlockID: "HOLD-1"}
	skip, err := step.Validate(ctx, event)
	require.NoError(t, err)
	assert.False(t, skip)

	require.NoError(t, step.Execute(ctx, event))
	require.NotNil(t, event.BookRoomResponse)
	assert.Equal(t, "BK-99", event.BookRoomResponse.ProviderBookingID)

	// Re-running Execute for the same order_id must not call BookRoom a
	// second time, since the idempotency cache already has a result.
	event2 := &domain.ServerSideBookingEvent{OrderID: "ORD-3", BlockID: "HOLD-1"}
	require.NoError(t, step.Execute(ctx, event2))
	assert.Equal(t, "BK-99", event2.BookRoomResponse.ProviderBookingID)
}

func TestPersistBookRoomDetailsStep_SkipsWithoutResponse(t *testing.T) {
	store := memorystore.New()
	step := &PersistBookRoomDetailsStep{Store: store}

	skip, err := step.Validate(context.Background(), &domain.ServerSideBookingEvent{})
	require.NoError(t, err)
	assert.True(t, skip)
}

func TestSendEmailStep_SkipsWhenAlreadySent(t *testing.T) {
	store := memorystore.New()
	ctx := context.Background()
	require.NoError(t, store.AddBooking(ctx, domain.BookingRecord{AppReference: "ORD-4", Email: "z@example.com"}))
	require.NoError(t, store.UpdateEmailSent(ctx, "ORD-4", true))

	step := &SendEmailStep{Store: store}
	skip, err := step.Validate(ctx, &domain.ServerSideBookingEvent{OrderID: "ORD-4"})
	require.NoError(t, err)
	assert.True(t, skip)
}
