package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/burgerspot/rewards/internal/domain"
)

// OrderRepository implements domain.OrderRepository
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domain.OrderRepository {
	return &OrderRepository{db: db}
}

// Create creates a new order
func (r *OrderRepository) Create(order *domain.Order) error {
	order.CreatedAt = time.Now()
	order.UpdatedAt = time.Now()
	return r.db.Create(order).Error
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(id int64) (*domain.Order, error) {
	var order domain.Order
	result := r.db.Where("id = ?", id).First(&order)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &order, nil
}

// GetByUserID retrieves all orders for a user, newest first
func (r *OrderRepository) GetByUserID(userID int64) ([]*domain.Order, error) {
	var orders []*domain.Order
	result := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return orders, nil
}

// GetAll retrieves all orders, newest first
func (r *OrderRepository) GetAll() ([]*domain.Order, error) {
	var orders []*domain.Order
	result := r.db.Order("created_at DESC").Find(&orders)
	if result.Error != nil {
		return nil, result.Error
	}
	return orders, nil
}

// UpdateStatus updates only the status of an order
func (r *OrderRepository) UpdateStatus(id int64, status domain.OrderStatus) error {
	return r.db.Model(&domain.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// WithTransaction returns a repository bound to the given transaction
func (r *OrderRepository) WithTransaction(tx *gorm.DB) domain.OrderRepository {
	return &OrderRepository{db: tx}
}
