package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// OrderStatus represents the fulfilment status of an order
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusOnTheWay  OrderStatus = "on-the-way"
	OrderStatusDelivered OrderStatus = "delivered"
)

// ValidOrderStatus reports whether s is a known order status
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusPending, OrderStatusPreparing, OrderStatusOnTheWay, OrderStatusDelivered:
		return true
	}
	return false
}

// OrderItem is a single line of an order
type OrderItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// OrderItems is stored as a JSONB column so GORM can marshal the line
// items without a separate table.
type OrderItems []OrderItem

// Scan implements the sql.Scanner interface
func (o *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal order items value: %v", value)
	}
	return json.Unmarshal(bytes, o)
}

// Value implements the driver.Valuer interface
func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

// Order represents a placed order. When a coupon is attached the
// coupon is consumed in the same database transaction that creates
// the order row.
type Order struct {
	ID             int64       `json:"order_id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	OrderNumber    string      `json:"order_number" gorm:"uniqueIndex;type:varchar(40);not null"`
	UserID         int64       `json:"user_id" gorm:"index;not null;type:bigint"`
	Items          OrderItems  `json:"items" gorm:"type:jsonb;not null"`
	TotalAmount    float64     `json:"total_amount" gorm:"type:numeric(12,2);not null"`
	DiscountAmount float64     `json:"discount_amount" gorm:"type:numeric(12,2);not null;default:0"`
	PayableAmount  float64     `json:"payable_amount" gorm:"type:numeric(12,2);not null"`
	CouponID       *int64      `json:"coupon_id,omitempty" gorm:"type:bigint"`
	Address        string      `json:"address" gorm:"type:varchar(256);not null"`
	Status         OrderStatus `json:"status" gorm:"type:varchar(16);not null;default:'pending'"`
	CreatedAt      time.Time   `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time   `json:"updated_at" gorm:"not null"`

	User   User    `json:"-" gorm:"foreignKey:UserID"`
	Coupon *Coupon `json:"-" gorm:"foreignKey:CouponID"`
}

// TableName specifies the table name for Order
func (o Order) TableName() string {
	return "orders"
}

// OrderRepository defines the interface for order data
type OrderRepository interface {
	Create(order *Order) error
	GetByID(id int64) (*Order, error)
	GetByUserID(userID int64) ([]*Order, error)
	GetAll() ([]*Order, error)
	UpdateStatus(id int64, status OrderStatus) error
	WithTransaction(tx *gorm.DB) OrderRepository
}

// OrderUseCase defines the interface for order business logic
type OrderUseCase interface {
	Create(userID int64, items []OrderItem, total float64, address string, couponID *int64, now time.Time) (*Order, error)
	GetUserOrders(userID int64) ([]*Order, error)
	GetAllOrders() ([]*Order, error)
	UpdateStatus(orderID int64, status OrderStatus) (*Order, error)
}
