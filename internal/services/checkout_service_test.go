package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"checkout-service/internal/domain"
	"checkout-service/internal/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newCheckout(carts *mocks.MockCartRepository, orders *mocks.MockOrderRepository, users *mocks.MockUserRepository, notifier *mocks.MockNotifier, publisher *mocks.MockPublisher) *CheckoutService {
	return NewCheckoutService(carts, orders, users, notifier, publisher, zap.NewNop())
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	twoLines := []domain.CartLine{
		testCartLine(1, 10, "Product A", "10.00", 2),
		testCartLine(2, 11, "Product B", "5.00", 1),
	}

	tests := []struct {
		name          string
		setupMocks    func(*mocks.MockCartRepository, *mocks.MockOrderRepository, *mocks.MockUserRepository, *mocks.MockNotifier, *mocks.MockPublisher)
		expectedError error
		expectedTotal string
		waitAsync     bool
	}{
		{
			name: "two-line cart commits with exact total",
			setupMocks: func(carts *mocks.MockCartRepository, orders *mocks.MockOrderRepository, users *mocks.MockUserRepository, notifier *mocks.MockNotifier, publisher *mocks.MockPublisher) {
				carts.On("FindByUserID", testUserID).Return(&domain.Cart{ID: testCartID, UserID: testUserID}, nil)
				carts.On("Detail", testCartID).Return(twoLines, nil)
				orders.On("CreateOrderTransaction", mock.AnythingOfType("*domain.Order"), mock.AnythingOfType("[]domain.OrderItem"), testCartID).
					Return(nil).
					Run(func(args mock.Arguments) {
						order := args.Get(0).(*domain.Order)
						order.ID = 42
						order.CreatedAt = time.Now()

						items := args.Get(1).([]domain.OrderItem)
						assert.Len(t, items, 2)
						assert.Equal(t, uint64(10), items[0].ProductID)
						assert.Equal(t, 2, items[0].Quantity)
						assert.Equal(t, "10.00", items[0].PriceAtPurchase.StringFixed(2))
						assert.Equal(t, uint64(11), items[1].ProductID)
						assert.Equal(t, 1, items[1].Quantity)
						assert.Equal(t, "5.00", items[1].PriceAtPurchase.StringFixed(2))
					})
				users.On("FindEmailByID", testUserID).Return(testEmail, nil)
				notifier.On("Notify", mock.Anything, testEmail, uint64(42), "25.00").Return(nil)
				publisher.On("Publish", mock.Anything, "order.placed", mock.Anything).Return(nil)
			},
			expectedTotal: "25.00",
			waitAsync:     true,
		},
		{
			name: "no cart yet",
			setupMocks: func(carts *mocks.MockCartRepository, orders *mocks.MockOrderRepository, users *mocks.MockUserRepository, notifier *mocks.MockNotifier, publisher *mocks.MockPublisher) {
				carts.On("FindByUserID", testUserID).Return(nil, nil)
			},
			expectedError: ErrCartEmpty,
		},
		{
			name: "cart exists with zero lines",
			setupMocks: func(carts *mocks.MockCartRepository, orders *mocks.MockOrderRepository, users *mocks.MockUserRepository, notifier *mocks.MockNotifier, publisher *mocks.MockPublisher) {
				carts.On("FindByUserID", testUserID).Return(&domain.Cart{ID: testCartID, UserID: testUserID}, nil)
				carts.On("Detail", testCartID).Return([]domain.CartLine{}, nil)
			},
			expectedError: ErrCartEmpty,
		},
		{
			name: "store error during the transaction rolls back and fails",
			setupMocks: func(carts *mocks.MockCartRepository, orders *mocks.MockOrderRepository, users *mocks.MockUserRepository, notifier *mocks.MockNotifier, publisher *mocks.MockPublisher) {
				carts.On("FindByUserID", testUserID).Return(&domain.Cart{ID: testCartID, UserID: testUserID}, nil)
				carts.On("Detail", testCartID).Return(twoLines, nil)
				orders.On("CreateOrderTransaction", mock.Anything, mock.Anything, testCartID).
					Return(errors.New("stock update failed"))
			},
			expectedError: ErrTransactionFailed,
			waitAsync:     true,
		},
		{
			name: "notification failure does not fail the order",
			setupMocks: func(carts *mocks.MockCartRepository, orders *mocks.MockOrderRepository, users *mocks.MockUserRepository, notifier *mocks.MockNotifier, publisher *mocks.MockPublisher) {
				carts.On("FindByUserID", testUserID).Return(&domain.Cart{ID: testCartID, UserID: testUserID}, nil)
				carts.On("Detail", testCartID).Return(twoLines, nil)
				orders.On("CreateOrderTransaction", mock.Anything, mock.Anything, testCartID).
					Return(nil).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.Order).ID = 43
					})
				users.On("FindEmailByID", testUserID).Return(testEmail, nil)
				notifier.On("Notify", mock.Anything, testEmail, uint64(43), "25.00").
					Return(errors.New("connection refused"))
				publisher.On("Publish", mock.Anything, "order.placed", mock.Anything).Return(nil)
			},
			expectedTotal: "25.00",
			waitAsync:     true,
		},
		{
			name: "unresolvable contact skips notification, order still succeeds",
			setupMocks: func(carts *mocks.MockCartRepository, orders *mocks.MockOrderRepository, users *mocks.MockUserRepository, notifier *mocks.MockNotifier, publisher *mocks.MockPublisher) {
				carts.On("FindByUserID", testUserID).Return(&domain.Cart{ID: testCartID, UserID: testUserID}, nil)
				carts.On("Detail", testCartID).Return(twoLines, nil)
				orders.On("CreateOrderTransaction", mock.Anything, mock.Anything, testCartID).
					Return(nil).
					Run(func(args mock.Arguments) {
						args.Get(0).(*domain.Order).ID = 44
					})
				users.On("FindEmailByID", testUserID).Return("", errors.New("user row missing"))
				publisher.On("Publish", mock.Anything, "order.placed", mock.Anything).Return(nil)
			},
			expectedTotal: "25.00",
			waitAsync:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			carts := new(mocks.MockCartRepository)
			orders := new(mocks.MockOrderRepository)
			users := new(mocks.MockUserRepository)
			notifier := new(mocks.MockNotifier)
			publisher := new(mocks.MockPublisher)

			tt.setupMocks(carts, orders, users, notifier, publisher)

			service := newCheckout(carts, orders, users, notifier, publisher)
			summary, err := service.PlaceOrder(context.Background(), testUserID)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, summary)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, summary)
				assert.Equal(t, tt.expectedTotal, summary.TotalAmount)
				assert.Equal(t, domain.StatusPending, summary.Status)
				assert.NotZero(t, summary.OrderID)
			}

			if tt.waitAsync {
				time.Sleep(200 * time.Millisecond)
			}

			carts.AssertExpectations(t)
			orders.AssertExpectations(t)
			users.AssertExpectations(t)
			notifier.AssertExpectations(t)
			publisher.AssertExpectations(t)
		})
	}
}

func TestCheckoutService_PlaceOrder_TotalIsExactDecimalSum(t *testing.T) {
	// 0.1 + 0.2 style drift would surface here with binary floats.
	lines := []domain.CartLine{
		testCartLine(1, 10, "A", "0.10", 3),
		testCartLine(2, 11, "B", "19.99", 7),
	}

	carts := new(mocks.MockCartRepository)
	orders := new(mocks.MockOrderRepository)
	users := new(mocks.MockUserRepository)
	notifier := new(mocks.MockNotifier)
	publisher := new(mocks.MockPublisher)

	carts.On("FindByUserID", testUserID).Return(&domain.Cart{ID: testCartID, UserID: testUserID}, nil)
	carts.On("Detail", testCartID).Return(lines, nil)
	orders.On("CreateOrderTransaction", mock.Anything, mock.Anything, testCartID).
		Return(nil).
		Run(func(args mock.Arguments) {
			order := args.Get(0).(*domain.Order)
			order.ID = 1
			assert.Equal(t, "140.23", order.TotalAmount.StringFixed(2))
		})
	users.On("FindEmailByID", testUserID).Return(testEmail, nil).Maybe()
	notifier.On("Notify", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	publisher.On("Publish", mock.Anything, "order.placed", mock.Anything).Return(nil).Maybe()

	service := newCheckout(carts, orders, users, notifier, publisher)
	summary, err := service.PlaceOrder(context.Background(), testUserID)

	assert.NoError(t, err)
	assert.Equal(t, "140.23", summary.TotalAmount)

	time.Sleep(100 * time.Millisecond)
	orders.AssertExpectations(t)
}

func TestCheckoutService_PlaceOrder_EventCarriesOrderFields(t *testing.T) {
	carts := new(mocks.MockCartRepository)
	orders := new(mocks.MockOrderRepository)
	users := new(mocks.MockUserRepository)
	notifier := new(mocks.MockNotifier)
	publisher := new(mocks.MockPublisher)

	carts.On("FindByUserID", testUserID).Return(&domain.Cart{ID: testCartID, UserID: testUserID}, nil)
	carts.On("Detail", testCartID).Return([]domain.CartLine{
		testCartLine(1, 10, "A", "12.50", 2),
	}, nil)
	orders.On("CreateOrderTransaction", mock.Anything, mock.Anything, testCartID).
		Return(nil).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 55
		})
	users.On("FindEmailByID", testUserID).Return(testEmail, nil)
	notifier.On("Notify", mock.Anything, testEmail, uint64(55), "25.00").Return(nil)
	publisher.On("Publish", mock.Anything, "order.placed", mock.MatchedBy(func(data any) bool {
		evt, ok := data.(domain.OrderPlacedEvent)
		return ok && evt.OrderID == 55 && evt.UserID == testUserID && evt.TotalAmount == "25.00"
	})).Return(nil)

	service := newCheckout(carts, orders, users, notifier, publisher)
	_, err := service.PlaceOrder(context.Background(), testUserID)
	assert.NoError(t, err)

	time.Sleep(200 * time.Millisecond)
	notifier.AssertExpectations(t)
	publisher.AssertExpectations(t)
}
