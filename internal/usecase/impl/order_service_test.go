package impl

import (
	"context"
	"testing"
	"time"

	ctxutil "whatsorder/internal/delivery/context"
	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"
	mockRepo "whatsorder/internal/mocks/repository"
	mockService "whatsorder/internal/mocks/service"
	"whatsorder/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type orderServiceFixtures struct {
	service      *orderService
	orderRepo    *mockRepo.MockOrderRepository
	businessRepo *mockRepo.MockBusinessRepository
	publisher    *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T, verifyBusiness bool) orderServiceFixtures {
	cfg := newTestConfig()
	cfg.Orders.VerifyBusiness = verifyBusiness

	orderRepo := mockRepo.NewMockOrderRepository(t)
	businessRepo := mockRepo.NewMockBusinessRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	return orderServiceFixtures{
		service: newOrderService(OrderServiceParams{
			OrderRepo:    orderRepo,
			BusinessRepo: businessRepo,
			Publisher:    publisher,
			Config:       cfg,
			Logger:       newDiscardLogger(),
		}),
		orderRepo:    orderRepo,
		businessRepo: businessRepo,
		publisher:    publisher,
	}
}

func TestOrderService_LogOrder_PersistsPendingAndPublishes(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := ctxutil.WithRequestID(context.Background(), "req-1")
	createdAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = 9
			order.CreatedAt = createdAt
		}).
		Return(nil)

	published := make(chan *service.OrderLoggedEvent, 1)
	fx.publisher.EXPECT().
		PublishOrderLogged(mock.Anything, mock.AnythingOfType("*service.OrderLoggedEvent")).
		Run(func(_ context.Context, event *service.OrderLoggedEvent) {
			published <- event
		}).
		Return(nil)

	order, err := fx.service.LogOrder(ctx, &usecase.LogOrderInput{
		BusinessID:   3,
		CustomerNote: stringPtr("  12 Allen Avenue  "),
		TotalPrice:   2150.5,
		ItemsSummary: "• 1x Jollof Rice — ₦2,150.5\nTotal: ₦2,150.5",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPending, order.PaymentStatus)
	require.NotNil(t, order.CustomerNote)
	assert.Equal(t, "12 Allen Avenue", *order.CustomerNote)

	fx.service.inflight.Wait()
	event := <-published
	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, int64(9), event.OrderID)
	assert.Equal(t, int64(3), event.BusinessID)
	assert.Equal(t, "2150.50", event.TotalPrice)
	assert.Equal(t, createdAt, event.CreatedAt)
	assert.NotEmpty(t, event.EventID)
}

func TestOrderService_LogOrder_PublishFailureIsSwallowed(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishOrderLogged(mock.Anything, mock.Anything).Return(errors.New("broker down"))

	_, err := fx.service.LogOrder(ctx, &usecase.LogOrderInput{BusinessID: 1, TotalPrice: 100, ItemsSummary: "• 1x Tea — ₦100"})
	require.NoError(t, err)
	fx.service.inflight.Wait()
}

func TestOrderService_LogOrder_PublishOutlivesRequestContext(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx, cancel := context.WithCancel(context.Background())

	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)

	ctxErr := make(chan error, 1)
	fx.publisher.EXPECT().
		PublishOrderLogged(mock.Anything, mock.Anything).
		Run(func(pubCtx context.Context, _ *service.OrderLoggedEvent) {
			ctxErr <- pubCtx.Err()
		}).
		Return(nil)

	_, err := fx.service.LogOrder(ctx, &usecase.LogOrderInput{BusinessID: 1, TotalPrice: 100, ItemsSummary: "x"})
	require.NoError(t, err)
	cancel()

	fx.service.inflight.Wait()
	assert.NoError(t, <-ctxErr)
}

func TestOrderService_StopWaitsForInflightPublish(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	srv := newOrderService(OrderServiceParams{
		Lc:           lc,
		OrderRepo:    orderRepo,
		BusinessRepo: mockRepo.NewMockBusinessRepository(t),
		Publisher:    publisher,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})
	lc.RequireStart()

	ctx := context.Background()
	release := make(chan struct{})
	orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	publisher.EXPECT().
		PublishOrderLogged(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.OrderLoggedEvent) { <-release }).
		Return(nil)

	_, err := srv.LogOrder(ctx, &usecase.LogOrderInput{BusinessID: 1, TotalPrice: 100, ItemsSummary: "x"})
	require.NoError(t, err)

	stopped := make(chan error, 1)
	go func() { stopped <- lc.Stop(context.Background()) }()

	select {
	case <-stopped:
		t.Fatal("lifecycle stopped while an order event was still publishing")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case err := <-stopped:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("lifecycle did not stop after the publish finished")
	}
}

func TestOrderService_DrainGivesUpAtDeadline(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()
	release := make(chan struct{})
	defer close(release)

	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().
		PublishOrderLogged(mock.Anything, mock.Anything).
		Run(func(context.Context, *service.OrderLoggedEvent) { <-release }).
		Return(nil)

	_, err := fx.service.LogOrder(ctx, &usecase.LogOrderInput{BusinessID: 1, TotalPrice: 100, ItemsSummary: "x"})
	require.NoError(t, err)

	stopCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, fx.service.drain(stopCtx), context.DeadlineExceeded)
}

func TestOrderService_LogOrder_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *usecase.LogOrderInput
	}{
		{name: "missing business", input: &usecase.LogOrderInput{TotalPrice: 10, ItemsSummary: "x"}},
		{name: "negative total", input: &usecase.LogOrderInput{BusinessID: 1, TotalPrice: -1, ItemsSummary: "x"}},
		{name: "blank summary", input: &usecase.LogOrderInput{BusinessID: 1, TotalPrice: 10, ItemsSummary: "  "}},
		{name: "nil input", input: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t, false)

			_, err := fx.service.LogOrder(context.Background(), tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestOrderService_LogOrder_VerifyBusiness(t *testing.T) {
	fx := createTestOrderService(t, true)
	ctx := context.Background()

	fx.businessRepo.EXPECT().FindBusinessByID(ctx, int64(404)).Return(nil, repository.ErrBusinessNotFound)

	_, err := fx.service.LogOrder(ctx, &usecase.LogOrderInput{BusinessID: 404, TotalPrice: 10, ItemsSummary: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrBusinessNotFound)
}

func TestOrderService_ListOwnOrders_NoBusiness(t *testing.T) {
	fx := createTestOrderService(t, false)
	ctx := context.Background()

	fx.businessRepo.EXPECT().FindBusinessByOwner(ctx, "owner-1").Return(nil, repository.ErrBusinessNotFound)

	orders, err := fx.service.ListOwnOrders(ctx, "owner-1")
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
