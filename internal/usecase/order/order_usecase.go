package order

import (
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
	"github.com/burgerspot/rewards/internal/usecase/coupon"
)

// OrderUseCase implements domain.OrderUseCase
type OrderUseCase struct {
	orderRepo     domain.OrderRepository
	couponRepo    domain.CouponRepository
	db            *gorm.DB
	logger        *logger.Logger
	freeItemValue float64
}

// NewOrderUseCase creates a new order use case
func NewOrderUseCase(
	orderRepo domain.OrderRepository,
	couponRepo domain.CouponRepository,
	db *gorm.DB,
	logger *logger.Logger,
	freeItemValue float64,
) domain.OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		couponRepo:    couponRepo,
		db:            db,
		logger:        logger,
		freeItemValue: freeItemValue,
	}
}

// validateCreateInput validates order creation parameters
func (uc *OrderUseCase) validateCreateInput(items []domain.OrderItem, total float64, address string) error {
	if len(items) == 0 {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Order items are required", 400, nil)
	}
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return domain.NewAppError(domain.ErrCodeInvalidRange, "Order total must be positive", 400, nil)
	}
	if address == "" {
		return domain.NewAppError(domain.ErrCodeRequiredField, "Delivery address is required", 400, nil)
	}
	return nil
}

// Create places an order. When a coupon is attached, re-validating it
// and flipping is_used happens inside the same database transaction
// that writes the order row, so a coupon quoted by two carts can only
// be committed by one of them.
func (uc *OrderUseCase) Create(userID int64, items []domain.OrderItem, total float64, address string, couponID *int64, now time.Time) (*domain.Order, error) {
	if err := uc.validateCreateInput(items, total, address); err != nil {
		return nil, err
	}

	tx := uc.db.Begin()
	if tx.Error != nil {
		return nil, domain.NewStorageError("begin transaction", tx.Error)
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	txOrderRepo := uc.orderRepo.WithTransaction(tx)
	txCouponRepo := uc.couponRepo.WithTransaction(tx)

	var discount float64
	if couponID != nil {
		c, err := txCouponRepo.GetByID(*couponID)
		if err != nil {
			tx.Rollback()
			return nil, domain.NewStorageError("load coupon", err)
		}
		if err := coupon.ValidateForUser(c, userID, now); err != nil {
			tx.Rollback()
			return nil, err
		}

		discount = c.ComputeDiscount(total, uc.freeItemValue)

		claimed, err := txCouponRepo.MarkUsed(c.ID)
		if err != nil {
			tx.Rollback()
			return nil, domain.NewStorageError("mark coupon used", err)
		}
		if !claimed {
			// Lost the race against a concurrent committer.
			tx.Rollback()
			return nil, domain.NewAppError(domain.ErrCodeCouponAlreadyUsed, "Coupon has already been used", 400, nil)
		}
	}

	order := &domain.Order{
		OrderNumber:    uuid.NewString(),
		UserID:         userID,
		Items:          items,
		TotalAmount:    total,
		DiscountAmount: discount,
		PayableAmount:  total - discount,
		CouponID:       couponID,
		Address:        address,
		Status:         domain.OrderStatusPending,
	}

	if err := txOrderRepo.Create(order); err != nil {
		tx.Rollback()
		return nil, domain.NewStorageError("create order", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, domain.NewStorageError("commit transaction", err)
	}

	uc.logger.Info("Order placed",
		zap.Int64("user_id", userID),
		zap.String("order_number", order.OrderNumber),
		zap.Float64("total", total),
		zap.Float64("discount", discount))

	return order, nil
}

// GetUserOrders returns the user's orders, newest first
func (uc *OrderUseCase) GetUserOrders(userID int64) ([]*domain.Order, error) {
	orders, err := uc.orderRepo.GetByUserID(userID)
	if err != nil {
		return nil, domain.NewStorageError("load orders", err)
	}
	return orders, nil
}

// GetAllOrders returns every order, newest first
func (uc *OrderUseCase) GetAllOrders() ([]*domain.Order, error) {
	orders, err := uc.orderRepo.GetAll()
	if err != nil {
		return nil, domain.NewStorageError("load orders", err)
	}
	return orders, nil
}

// UpdateStatus moves an order to a new fulfilment status
func (uc *OrderUseCase) UpdateStatus(orderID int64, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.ValidOrderStatus(status) {
		return nil, domain.NewAppError(domain.ErrCodeInvalidOrderStatus, "Invalid status provided", 400, nil)
	}

	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, domain.NewStorageError("load order", err)
	}
	if order == nil {
		return nil, domain.NewAppError(domain.ErrCodeOrderNotFound, "Order not found", 404, nil)
	}

	if err := uc.orderRepo.UpdateStatus(orderID, status); err != nil {
		return nil, domain.NewStorageError("update order status", err)
	}

	order.Status = status
	return order, nil
}
