package order_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/champastudio/champa/internal/platform/apperr"
	"github.com/champastudio/champa/internal/platform/sec"
	"github.com/champastudio/champa/internal/portal/order"
)

const serviceID = "0191e3a0-0000-7000-8000-00000000aaaa"

// fakeRepository is an in-memory Repository with a create counter.
type fakeRepository struct {
	orders      []*order.Order
	createCalls int
}

func (f *fakeRepository) ListAll(_ context.Context) ([]*order.Order, error) {
	return f.orders, nil
}

func (f *fakeRepository) ListByClient(_ context.Context, clientID string) ([]*order.Order, error) {
	var owned []*order.Order
	for _, ord := range f.orders {
		if ord.ClientID != nil && *ord.ClientID == clientID {
			owned = append(owned, ord)
		}
	}
	return owned, nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*order.Order, error) {
	for _, ord := range f.orders {
		if ord.ID == id {
			return ord, nil
		}
	}
	return nil, apperr.NotFound("Order")
}

func (f *fakeRepository) Create(_ context.Context, ord *order.Order) error {
	f.createCalls++
	f.orders = append(f.orders, ord)
	return nil
}

func (f *fakeRepository) UpdateStatus(_ context.Context, id, status string) (*order.Order, error) {
	for _, ord := range f.orders {
		if ord.ID == id {
			ord.Status = status
			return ord, nil
		}
	}
	return nil, apperr.NotFound("Order")
}

// fakeIdempotencyStore mimics the Redis SET NX behaviour in memory.
type fakeIdempotencyStore struct {
	claims map[string]string
	calls  int
}

func newFakeIdempotencyStore() *fakeIdempotencyStore {
	return &fakeIdempotencyStore{claims: map[string]string{}}
}

func (f *fakeIdempotencyStore) Reserve(_ context.Context, key, orderID string, _ time.Duration) (string, error) {
	f.calls++
	if holder, ok := f.claims[key]; ok {
		return holder, nil
	}
	f.claims[key] = orderID
	return "", nil
}

func (f *fakeIdempotencyStore) Release(_ context.Context, key string) error {
	delete(f.claims, key)
	return nil
}

func validInput(key string) order.PlaceOrderInput {
	return order.PlaceOrderInput{
		ServiceID:      serviceID,
		Name:           "Noy Phommachanh",
		Email:          "noy@champa.la",
		Phone:          "+856 20 555 000",
		Note:           "Logo refresh for our riverside cafe",
		IdempotencyKey: key,
	}
}

/*
TestService_PlaceOrder_ValidationBlocksCollaborators proves an invalid form
touches neither the repository nor the idempotency store.
*/
func TestService_PlaceOrder_ValidationBlocksCollaborators(t *testing.T) {
	repo := &fakeRepository{}
	keys := newFakeIdempotencyStore()
	service := order.NewService(repo, keys, slog.Default())

	input := validInput("retry-1")
	input.Email = "not-an-email"

	_, _, err := service.PlaceOrder(context.Background(), nil, input)

	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, "VALIDATION_ERROR", appError.Code)
	assert.Zero(t, repo.createCalls)
	assert.Zero(t, keys.calls)
}

/*
TestService_PlaceOrder_IdempotentRetry returns the original order for a
replayed key and creates exactly one row.
*/
func TestService_PlaceOrder_IdempotentRetry(t *testing.T) {
	repo := &fakeRepository{}
	keys := newFakeIdempotencyStore()
	service := order.NewService(repo, keys, slog.Default())

	first, created, err := service.PlaceOrder(context.Background(), nil, validInput("retry-1"))
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := service.PlaceOrder(context.Background(), nil, validInput("retry-1"))
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, repo.createCalls)
}

/*
TestService_PlaceOrder_GuestAndClient links a signed-in client's order to
their account while guest orders stay unlinked.
*/
func TestService_PlaceOrder_GuestAndClient(t *testing.T) {
	repo := &fakeRepository{}
	service := order.NewService(repo, newFakeIdempotencyStore(), slog.Default())

	guest, _, err := service.PlaceOrder(context.Background(), nil, validInput(""))
	require.NoError(t, err)
	assert.Nil(t, guest.ClientID)
	assert.Equal(t, order.StatusNew, guest.Status)

	claims := &sec.AuthClaims{UserID: "c1", Role: string(sec.RoleClient)}
	linked, _, err := service.PlaceOrder(context.Background(), claims, validInput(""))
	require.NoError(t, err)
	require.NotNil(t, linked.ClientID)
	assert.Equal(t, "c1", *linked.ClientID)

	mine, err := service.ListMyOrders(context.Background(), claims)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, linked.ID, mine[0].ID)
}

/*
TestService_UpdateStatus_RejectsUnknown keeps the triage status inside the
closed set.
*/
func TestService_UpdateStatus_RejectsUnknown(t *testing.T) {
	repo := &fakeRepository{orders: []*order.Order{
		{ID: "o1", ServiceID: serviceID, Status: order.StatusNew},
	}}
	service := order.NewService(repo, newFakeIdempotencyStore(), slog.Default())

	_, err := service.UpdateStatus(context.Background(), "o1", "shipped")
	require.Error(t, err)

	updated, err := service.UpdateStatus(context.Background(), "o1", order.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, order.StatusConfirmed, updated.Status)
}
