package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// OrderHandler handles HTTP requests for orders and coupon redemption
type OrderHandler struct {
	orderUseCase  domain.OrderUseCase
	couponUseCase domain.CouponUseCase
	logger        *logger.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderUseCase domain.OrderUseCase, couponUseCase domain.CouponUseCase, logger *logger.Logger) *OrderHandler {
	return &OrderHandler{
		orderUseCase:  orderUseCase,
		couponUseCase: couponUseCase,
		logger:        logger,
	}
}

// ApplyCouponRequest represents the apply-coupon request body
type ApplyCouponRequest struct {
	Code      string   `json:"code" binding:"required" example:"5%_OFF-K3XQ"`
	CartTotal *float64 `json:"cartTotal" binding:"required" example:"1450.00"`
}

// ApplyCouponResponse represents the apply-coupon response body
type ApplyCouponResponse struct {
	Success   bool    `json:"success"`
	Discount  float64 `json:"discount"`
	PrizeName string  `json:"prizeName"`
	CouponID  int64   `json:"couponId"`
}

// CreateOrderRequest represents the order creation request body
type CreateOrderRequest struct {
	Items    []domain.OrderItem `json:"items" binding:"required"`
	Total    float64            `json:"total" binding:"required"`
	Address  string             `json:"address" binding:"required"`
	CouponID *int64             `json:"couponId"`
}

// UpdateStatusRequest represents the order status update request body
type UpdateStatusRequest struct {
	NewStatus string `json:"newStatus" binding:"required" example:"preparing"`
}

// ApplyCoupon quotes a coupon against a cart total
// @Summary Apply a coupon
// @Description Validates a coupon and computes the discount for a cart total. Does not consume the coupon.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ApplyCouponRequest true "Coupon code and cart total"
// @Success 200 {object} ApplyCouponResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /orders/apply-coupon [post]
func (h *OrderHandler) ApplyCoupon(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeRequiredField, "Coupon code and cart total are required", 400, err))
		return
	}

	result, err := h.couponUseCase.Apply(userID, req.Code, *req.CartTotal, time.Now())
	if err != nil {
		h.logger.Warn("Apply coupon rejected",
			zap.Int64("user_id", userID),
			zap.String("code", req.Code),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ApplyCouponResponse{
		Success:   true,
		Discount:  result.DiscountAmount,
		PrizeName: result.PrizeName,
		CouponID:  result.CouponID,
	})
}

// Create places a new order
// @Summary Place an order
// @Description Creates an order; when a coupon id is attached the coupon is consumed atomically with the order.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Order details"
// @Success 201 {object} domain.Order
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeRequiredField, "Missing required order fields", 400, err))
		return
	}

	order, err := h.orderUseCase.Create(userID, req.Items, req.Total, req.Address, req.CouponID, time.Now())
	if err != nil {
		h.logger.Warn("Order creation rejected", zap.Int64("user_id", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders returns the authenticated user's orders
// @Summary List own orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Order
// @Failure 401 {object} domain.ErrorResponse
// @Router /orders/my [get]
func (h *OrderHandler) GetMyOrders(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	orders, err := h.orderUseCase.GetUserOrders(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetAll returns every order (admin only)
// @Summary List all orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Order
// @Failure 401 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) GetAll(c *gin.Context) {
	orders, err := h.orderUseCase.GetAllOrders()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

// UpdateStatus moves an order to a new fulfilment status (admin only)
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Order ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /orders/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeInvalidFormat, "Invalid order ID", 400, err))
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, domain.NewAppError(domain.ErrCodeRequiredField, "New status is required", 400, err))
		return
	}

	order, err := h.orderUseCase.UpdateStatus(orderID, domain.OrderStatus(req.NewStatus))
	if err != nil {
		h.logger.Warn("Order status update rejected", zap.Int64("order_id", orderID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}
