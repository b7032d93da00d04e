package impl

import (
	"context"
	"fmt"
	"log/slog"

	"mazza/config"
	deliverycontext "mazza/internal/delivery/context"
	"mazza/internal/domain/availability"
	"mazza/internal/domain/entity"
	domainerrors "mazza/internal/domain/errors"
	"mazza/internal/domain/repository"
	"mazza/internal/domain/service"
	"mazza/internal/usecase"
	"mazza/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager   repository.TransactionManager
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	notifier    service.Notifier
	ratings     service.RatingsService
	qrService   service.QRCodeService
	clock       *availability.Clock
	codeLength  int
	maxAttempts int
	qrSize      int
	logger      *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	StoreRepo   repository.StoreRepository
	ProductRepo repository.ProductRepository
	OrderRepo   repository.OrderRepository
	Notifier    service.Notifier
	Ratings     service.RatingsService
	QRService   service.QRCodeService
	Clock       *availability.Clock
	Config      *config.Config
}

// NewOrderService is the constructor for orderService. It receives all dependencies as interfaces.
func NewOrderService(params OrderServiceParams, logger *slog.Logger) usecase.OrderUsecase {
	srv := &orderService{
		txManager:   params.TxManager,
		storeRepo:   params.StoreRepo,
		productRepo: params.ProductRepo,
		orderRepo:   params.OrderRepo,
		notifier:    params.Notifier,
		ratings:     params.Ratings,
		qrService:   params.QRService,
		clock:       params.Clock,
		logger:      logger,
	}
	if params.Config != nil && params.Config.OrderCode != nil {
		srv.codeLength = params.Config.OrderCode.Length
		srv.maxAttempts = params.Config.OrderCode.MaxAttempts
	}
	if params.Config != nil && params.Config.QRCode != nil {
		srv.qrSize = params.Config.QRCode.Size
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder places a pending order. Stock is checked for a friendly error
// up front but not reserved; the authoritative check is the conditional
// decrement at confirmation time.
func (srv *orderService) CreateOrder(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateOrderInput) (*usecase.OrderOutput, error) {
	if input.Quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	product, err := srv.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	if !availability.ProductVisible(product, srv.clock.Now()) {
		return nil, domainerrors.ErrProductNotAvailable
	}

	store, err := srv.storeRepo.FindStoreByID(ctx, product.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find store for product")
	}
	if !store.IsApproved() {
		return nil, domainerrors.ErrProductNotAvailable.WithDetails("store is not approved")
	}

	if input.Quantity > product.Quantity {
		return nil, domainerrors.ErrQuantityExceedsStock.WithDetails(
			fmt.Sprintf("requested %d, remaining %d", input.Quantity, product.Quantity))
	}

	order, err := srv.persistWithFreshCode(ctx, buyerID, product, input.Quantity)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.ID.String()),
		slog.String("order_code", order.Code),
		slog.String("product_id", product.ID.String()))

	// Notification failures never fail the order.
	if err := srv.notifier.NotifySeller(ctx, store.ID,
		fmt.Sprintf("New order %s: %d x %s", order.Code, order.Quantity, product.Name)); err != nil {
		srv.log(ctx).Warn("Failed to notify seller about new order",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))
	}

	return &usecase.OrderOutput{Order: order, Product: product, Store: store}, nil
}

// persistWithFreshCode inserts the order, retrying with a new pickup code on
// a unique-constraint collision, up to the configured attempt budget.
func (srv *orderService) persistWithFreshCode(ctx context.Context, buyerID uuid.UUID, product *entity.Product, quantity int) (*entity.Order, error) {
	attempts := srv.maxAttempts
	if attempts <= 0 {
		attempts = 5
	}

	for range attempts {
		code, err := util.GenerateCode(srv.resolveCodeLength())
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate pickup code")
		}

		order := &entity.Order{
			ID:         uuid.New(),
			Code:       code,
			BuyerID:    buyerID,
			ProductID:  product.ID,
			Quantity:   quantity,
			TotalPrice: product.Price * float64(quantity),
			Status:     entity.OrderStatusPending,
		}

		err = srv.orderRepo.CreateOrder(ctx, order)
		if err == nil {
			return order, nil
		}
		if errors.Is(err, repository.ErrDuplicateOrderCode) {
			srv.log(ctx).Warn("Pickup code collision, retrying", slog.String("code", code))

			continue
		}

		return nil, errors.Wrap(err, "failed to create order")
	}

	return nil, domainerrors.ErrOrderCodeExhausted
}

func (srv *orderService) resolveCodeLength() int {
	if srv.codeLength > 0 {
		return srv.codeLength
	}

	return 8
}

// ConfirmOrder transitions a pending order to confirmed and decrements stock
// in the same transaction. Either both happen or neither does.
func (srv *orderService) ConfirmOrder(ctx context.Context, sellerID, orderID uuid.UUID) (*usecase.OrderOutput, error) {
	order, product, store, err := srv.loadOrderContext(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if store.SellerID != sellerID {
		return nil, domainerrors.ErrNotStoreOwner
	}
	if order.Status.IsTerminal() {
		return nil, domainerrors.ErrOrderAlreadyFinal
	}

	var remaining int
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()
		productRepo := repoFactory.NewProductRepository()

		if err := orderRepo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusConfirmed); err != nil {
			if errors.Is(err, repository.ErrOrderStateConflict) {
				return domainerrors.ErrOrderAlreadyFinal
			}

			return errors.Wrap(err, "failed to confirm order")
		}

		left, err := productRepo.TryDecrementQuantity(ctx, order.ProductID, order.Quantity)
		if err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				return domainerrors.ErrInsufficientStock
			}

			return errors.Wrap(err, "failed to decrement stock")
		}
		remaining = left

		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusConfirmed
	product.Quantity = remaining
	if remaining == 0 {
		product.IsActive = false
	}

	srv.log(ctx).Info("Order confirmed",
		slog.String("order_id", order.ID.String()),
		slog.Int("remaining_stock", remaining))

	srv.notifyBuyer(ctx, order, fmt.Sprintf("Order %s confirmed. Show this code at pickup.", order.Code))

	if err := srv.ratings.RequestPostPurchaseRating(ctx, order.BuyerID, order.ProductID); err != nil {
		srv.log(ctx).Warn("Failed to request post-purchase rating",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))
	}

	return &usecase.OrderOutput{Order: order, Product: product, Store: store}, nil
}

// RejectOrder transitions a pending order to cancelled. Stock is untouched
// because creation never reserved any.
func (srv *orderService) RejectOrder(ctx context.Context, actorID, orderID uuid.UUID) (*usecase.OrderOutput, error) {
	order, product, store, err := srv.loadOrderContext(ctx, orderID)
	if err != nil {
		return nil, err
	}

	isSeller := store.SellerID == actorID
	isBuyer := order.BuyerID == actorID
	if !isSeller && !isBuyer {
		return nil, domainerrors.ErrNotOrderParticipant
	}
	if order.Status.IsTerminal() {
		return nil, domainerrors.ErrOrderAlreadyFinal
	}

	if err := srv.orderRepo.UpdateOrderStatus(ctx, order.ID, entity.OrderStatusPending, entity.OrderStatusCancelled); err != nil {
		if errors.Is(err, repository.ErrOrderStateConflict) {
			return nil, domainerrors.ErrOrderAlreadyFinal
		}

		return nil, errors.Wrap(err, "failed to cancel order")
	}

	order.Status = entity.OrderStatusCancelled

	srv.log(ctx).Info("Order cancelled",
		slog.String("order_id", order.ID.String()),
		slog.Bool("by_seller", isSeller))

	if isSeller {
		srv.notifyBuyer(ctx, order, fmt.Sprintf("Order %s was declined by the store.", order.Code))
	} else if err := srv.notifier.NotifySeller(ctx, store.ID,
		fmt.Sprintf("Order %s was cancelled by the buyer.", order.Code)); err != nil {
		srv.log(ctx).Warn("Failed to notify seller about cancellation",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))
	}

	return &usecase.OrderOutput{Order: order, Product: product, Store: store}, nil
}

// GetOrder retrieves an order for one of its participants.
func (srv *orderService) GetOrder(ctx context.Context, actorID, orderID uuid.UUID) (*usecase.OrderOutput, error) {
	order, product, store, err := srv.loadOrderContext(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != actorID && store.SellerID != actorID {
		return nil, domainerrors.ErrNotOrderParticipant
	}

	return &usecase.OrderOutput{Order: order, Product: product, Store: store}, nil
}

// ListBuyerOrders retrieves a buyer's order history, newest first.
func (srv *orderService) ListBuyerOrders(ctx context.Context, buyerID uuid.UUID) ([]*entity.Order, error) {
	orders, err := srv.orderRepo.FindOrdersByBuyer(ctx, buyerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list buyer orders")
	}

	return orders, nil
}

// ListStorePendingOrders retrieves the seller's approval queue, oldest first.
func (srv *orderService) ListStorePendingOrders(ctx context.Context, sellerID uuid.UUID) ([]*entity.Order, error) {
	store, err := srv.storeRepo.FindStoreBySeller(ctx, sellerID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find seller store")
	}

	orders, err := srv.orderRepo.FindPendingOrdersByStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending orders")
	}

	return orders, nil
}

// PickupQR renders the order's pickup code as a PNG for a participant.
func (srv *orderService) PickupQR(ctx context.Context, actorID, orderID uuid.UUID) ([]byte, error) {
	output, err := srv.GetOrder(ctx, actorID, orderID)
	if err != nil {
		return nil, err
	}

	size := srv.qrSize
	if size <= 0 {
		size = 256
	}

	png, err := srv.qrService.GeneratePickupQR(output.Order.Code, size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render pickup QR")
	}

	return png, nil
}

// loadOrderContext fetches the order with its product and owning store.
func (srv *orderService) loadOrderContext(ctx context.Context, orderID uuid.UUID) (*entity.Order, *entity.Product, *entity.Store, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, nil, nil, domainerrors.ErrOrderNotFound
		}

		return nil, nil, nil, errors.Wrap(err, "failed to find order")
	}

	product, err := srv.productRepo.FindProductByID(ctx, order.ProductID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to find product for order")
	}

	store, err := srv.storeRepo.FindStoreByID(ctx, product.StoreID)
	if err != nil {
		return nil, nil, nil, errors.Wrap(err, "failed to find store for order")
	}

	return order, product, store, nil
}

func (srv *orderService) notifyBuyer(ctx context.Context, order *entity.Order, message string) {
	if err := srv.notifier.NotifyBuyer(ctx, order.BuyerID, message); err != nil {
		srv.log(ctx).Warn("Failed to notify buyer",
			slog.String("order_id", order.ID.String()),
			slog.Any("error", err))
	}
}
