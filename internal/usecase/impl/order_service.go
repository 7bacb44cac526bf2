package impl

import (
	"context"
	"log/slog"
	"sync"

	"whatsorder/config"
	ctxutil "whatsorder/internal/delivery/context"
	"whatsorder/internal/domain/entity"
	domainerrors "whatsorder/internal/domain/errors"
	"whatsorder/internal/domain/lifecycle"
	"whatsorder/internal/domain/repository"
	"whatsorder/internal/domain/service"
	"whatsorder/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	orderRepo      repository.OrderRepository
	businessRepo   repository.BusinessRepository
	publisher      service.EventPublisher
	verifyBusiness bool
	logger         *slog.Logger

	// inflight tracks event publishes still running.
	inflight sync.WaitGroup
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	Lc           fx.Lifecycle
	OrderRepo    repository.OrderRepository
	BusinessRepo repository.BusinessRepository
	Publisher    service.EventPublisher `optional:"true"`
	Config       *config.Config
	Logger       *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return newOrderService(params)
}

func newOrderService(params OrderServiceParams) *orderService {
	srv := &orderService{
		orderRepo:      params.OrderRepo,
		businessRepo:   params.BusinessRepo,
		publisher:      params.Publisher,
		verifyBusiness: params.Config.Orders.VerifyBusiness,
		logger:         params.Logger,
	}

	// Registered after the publisher, so it stops before the publisher closes.
	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: srv.drain,
		})
	}

	return srv
}

// drain waits for in-flight event publishes or until ctx is done.
func (srv *orderService) drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		srv.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		srv.logger.Warn("Order events still publishing at shutdown", slog.Any("error", ctx.Err()))

		return errors.Wrap(ctx.Err(), "failed to drain order events")
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return ctxutil.GetLoggerOrDefault(ctx, srv.logger)
}

// LogOrder appends a pending order and announces it without waiting.
func (srv *orderService) LogOrder(ctx context.Context, input *usecase.LogOrderInput) (*entity.Order, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order is required")
	}

	order, err := entity.NewOrder(entity.OrderFields{
		BusinessID:   input.BusinessID,
		CustomerNote: input.CustomerNote,
		TotalPrice:   input.TotalPrice,
		ItemsSummary: input.ItemsSummary,
	})
	if err != nil {
		return nil, validationError(err)
	}

	if srv.verifyBusiness {
		if _, err := srv.businessRepo.FindBusinessByID(ctx, order.BusinessID); err != nil {
			if errors.Is(err, repository.ErrBusinessNotFound) {
				return nil, domainerrors.ErrBusinessNotFound
			}

			return nil, errors.Wrap(err, "failed to find business")
		}
	}

	if err := srv.orderRepo.CreateOrder(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to log order")
	}

	srv.log(ctx).Info("Order logged",
		slog.Int64("order_id", order.ID),
		slog.Int64("business_id", order.BusinessID),
		slog.String("total_price", order.TotalPrice.StringFixed(2)),
	)

	srv.publishLogged(ctx, order)

	return order, nil
}

// publishLogged hands the event to the publisher on a detached context.
// Failures are logged and dropped.
func (srv *orderService) publishLogged(ctx context.Context, order *entity.Order) {
	if srv.publisher == nil {
		return
	}

	event := &service.OrderLoggedEvent{
		RequestID:    ctxutil.GetRequestIDFromContext(ctx),
		EventID:      uuid.NewString(),
		OrderID:      order.ID,
		BusinessID:   order.BusinessID,
		TotalPrice:   order.TotalPrice.StringFixed(2),
		ItemsSummary: order.ItemsSummary,
		CreatedAt:    order.CreatedAt,
	}
	logger := srv.log(ctx)
	detached := context.WithoutCancel(ctx)

	srv.inflight.Add(1)
	go func() {
		defer srv.inflight.Done()

		pubCtx, cancel := context.WithTimeout(detached, lifecycle.DefaultTimeout)
		defer cancel()

		if err := srv.publisher.PublishOrderLogged(pubCtx, event); err != nil {
			logger.Warn("Failed to publish order event",
				slog.Int64("order_id", event.OrderID),
				slog.String("event_id", event.EventID),
				slog.Any("error", err),
			)
		}
	}()
}

func (srv *orderService) ListOwnOrders(ctx context.Context, ownerID string) ([]*entity.Order, error) {
	business, ok, err := findOwnerBusinessForList(ctx, srv.businessRepo, ownerID)
	if err != nil || !ok {
		return []*entity.Order{}, err
	}

	orders, err := srv.orderRepo.ListOrders(ctx, business.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}
