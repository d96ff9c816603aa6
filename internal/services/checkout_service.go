package services

import (
	"context"
	"errors"
	"time"

	"checkout-service/internal/domain"
	"checkout-service/internal/infra"
	rabbit "checkout-service/internal/infra/rabbitmq"
	"checkout-service/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrCartEmpty         = errors.New("cart is empty")
	ErrTransactionFailed = errors.New("order transaction failed")
)

// CheckoutService converts a user's cart into a committed order. It does not
// serialize concurrent checkouts for the same user; two in-flight calls can
// read the same cart, and the store's isolation level decides the outcome.
type CheckoutService struct {
	carts     repository.CartRepository
	orders    repository.OrderRepository
	users     repository.UserRepository
	notifier  infra.NotifierInterface
	publisher rabbit.PublisherInterface
	logger    *zap.Logger
}

func NewCheckoutService(
	carts repository.CartRepository,
	orders repository.OrderRepository,
	users repository.UserRepository,
	notifier infra.NotifierInterface,
	publisher rabbit.PublisherInterface,
	logger *zap.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		orders:    orders,
		users:     users,
		notifier:  notifier,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceOrder reads the cart, computes the total server-side, and commits the
// order, its items, the stock decrements and the cart clear as one
// transaction. The notification and the order.placed event fire only after
// commit and never affect the returned result.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID uint64) (*domain.OrderSummary, error) {
	cart, err := s.carts.FindByUserID(userID)
	if err != nil {
		return nil, err
	}
	if cart == nil {
		return nil, ErrCartEmpty
	}

	lines, err := s.carts.Detail(cart.ID)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrCartEmpty
	}

	total := decimal.Zero
	items := make([]domain.OrderItem, 0, len(lines))
	for _, line := range lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		items = append(items, domain.OrderItem{
			ProductID:       line.ProductID,
			Quantity:        line.Quantity,
			PriceAtPurchase: line.Price,
		})
	}

	order := &domain.Order{
		UserID:      userID,
		TotalAmount: total,
		Status:      domain.StatusPending,
	}

	if err := s.orders.CreateOrderTransaction(order, items, cart.ID); err != nil {
		s.logger.Error("order transaction failed",
			zap.Uint64("userId", userID),
			zap.Uint64("cartId", cart.ID),
			zap.Error(err))
		return nil, ErrTransactionFailed
	}

	summary := order.Summary()

	go s.notifyBuyer(userID, order)
	go s.publishOrderPlaced(order)

	return &summary, nil
}

// notifyBuyer resolves the buyer's email and makes a single notification
// attempt. Failures are logged and dropped; the order has already committed.
func (s *CheckoutService) notifyBuyer(userID uint64, order *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	email, err := s.users.FindEmailByID(userID)
	if err != nil {
		s.logger.Warn("failed to resolve buyer email, skipping notification",
			zap.Uint64("userId", userID),
			zap.Uint64("orderId", order.ID),
			zap.Error(err))
		return
	}

	if err := s.notifier.Notify(ctx, email, order.ID, order.TotalAmount.StringFixed(2)); err != nil {
		s.logger.Warn("order notification failed",
			zap.Uint64("orderId", order.ID),
			zap.Error(err))
		return
	}
	s.logger.Info("order notification sent", zap.Uint64("orderId", order.ID))
}

func (s *CheckoutService) publishOrderPlaced(order *domain.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt := domain.OrderPlacedEvent{
		OrderID:     order.ID,
		UserID:      order.UserID,
		TotalAmount: order.TotalAmount.StringFixed(2),
		CreatedAt:   order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.placed", evt); err != nil {
		s.logger.Warn("failed to publish order.placed event",
			zap.Uint64("orderId", order.ID),
			zap.Error(err))
	}
}
