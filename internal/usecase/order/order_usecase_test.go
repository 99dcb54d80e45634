package order

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/domain/mocks"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestUseCase(orderRepo domain.OrderRepository, couponRepo domain.CouponRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		couponRepo:    couponRepo,
		db:            nil,
		logger:        logger.NewLogger("test", "debug"),
		freeItemValue: 350,
	}
}

func testItems() []domain.OrderItem {
	return []domain.OrderItem{
		{Name: "Classic Burger", Quantity: 2, Price: 450},
		{Name: "Fries", Quantity: 1, Price: 200},
	}
}

func TestCreateValidatesInput(t *testing.T) {
	tests := []struct {
		name    string
		items   []domain.OrderItem
		total   float64
		address string
	}{
		{"NoItems", nil, 1100, "5 Galle Road"},
		{"ZeroTotal", testItems(), 0, "5 Galle Road"},
		{"NegativeTotal", testItems(), -10, "5 Galle Road"},
		{"NaNTotal", testItems(), math.NaN(), "5 Galle Road"},
		{"InfTotal", testItems(), math.Inf(1), "5 Galle Road"},
		{"MissingAddress", testItems(), 1100, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := newTestUseCase(mocks.NewMockOrderRepository(ctrl), mocks.NewMockCouponRepository(ctrl))

			order, err := uc.Create(42, tt.items, tt.total, tt.address, nil, testNow)
			assert.Nil(t, order)

			var appErr *domain.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, 400, appErr.HTTPStatus)
		})
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uc := newTestUseCase(mocks.NewMockOrderRepository(ctrl), mocks.NewMockCouponRepository(ctrl))

	order, err := uc.UpdateStatus(1, "teleported")
	assert.Nil(t, order)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeInvalidOrderStatus, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestUpdateStatusOrderNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	uc := newTestUseCase(orderRepo, mocks.NewMockCouponRepository(ctrl))

	orderRepo.EXPECT().GetByID(int64(1)).Return(nil, nil)

	order, err := uc.UpdateStatus(1, domain.OrderStatusPreparing)
	assert.Nil(t, order)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeOrderNotFound, appErr.Code)
	assert.Equal(t, 404, appErr.HTTPStatus)
}

func TestUpdateStatusMovesOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	uc := newTestUseCase(orderRepo, mocks.NewMockCouponRepository(ctrl))

	orderRepo.EXPECT().GetByID(int64(1)).Return(&domain.Order{ID: 1, Status: domain.OrderStatusPending}, nil)
	orderRepo.EXPECT().UpdateStatus(int64(1), domain.OrderStatusPreparing).Return(nil)

	order, err := uc.UpdateStatus(1, domain.OrderStatusPreparing)
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPreparing, order.Status)
}

func TestUpdateStatusStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	uc := newTestUseCase(orderRepo, mocks.NewMockCouponRepository(ctrl))

	orderRepo.EXPECT().GetByID(int64(1)).Return(nil, errors.New("connection refused"))

	order, err := uc.UpdateStatus(1, domain.OrderStatusPreparing)
	assert.Nil(t, order)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeStorageUnavailable, appErr.Code)
}

func TestGetUserOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	orderRepo := mocks.NewMockOrderRepository(ctrl)
	uc := newTestUseCase(orderRepo, mocks.NewMockCouponRepository(ctrl))

	orderRepo.EXPECT().GetByUserID(int64(42)).Return([]*domain.Order{{ID: 1}, {ID: 2}}, nil)

	orders, err := uc.GetUserOrders(42)
	assert.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestValidOrderStatus(t *testing.T) {
	assert.True(t, domain.ValidOrderStatus(domain.OrderStatusPending))
	assert.True(t, domain.ValidOrderStatus(domain.OrderStatusPreparing))
	assert.True(t, domain.ValidOrderStatus(domain.OrderStatusOnTheWay))
	assert.True(t, domain.ValidOrderStatus(domain.OrderStatusDelivered))
	assert.False(t, domain.ValidOrderStatus("cancelled"))
}
