package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// RewardHandler handles HTTP requests for the daily reward game
type RewardHandler struct {
	rewardUseCase domain.RewardUseCase
	logger        *logger.Logger
}

// NewRewardHandler creates a new reward handler
func NewRewardHandler(rewardUseCase domain.RewardUseCase, logger *logger.Logger) *RewardHandler {
	return &RewardHandler{
		rewardUseCase: rewardUseCase,
		logger:        logger,
	}
}

// PlayResponse represents the play response body
type PlayResponse struct {
	Success bool              `json:"success"`
	Prize   domain.PlayResult `json:"prize"`
}

// Status reports whether the user can play today
// @Summary Get daily play status
// @Description Reports whether the user can spin today and their last result
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.PlayStatus
// @Failure 401 {object} domain.ErrorResponse
// @Router /rewards/status [get]
func (h *RewardHandler) Status(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	status, err := h.rewardUseCase.Status(userID, time.Now())
	if err != nil {
		h.logger.Error("Status failed", zap.Int64("user_id", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// Play runs the daily reward draw
// @Summary Play the daily reward
// @Description Draws a prize; issues a coupon on a winning draw. One play per calendar day.
// @Tags rewards
// @Produce json
// @Security BearerAuth
// @Success 200 {object} PlayResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /rewards/play [post]
func (h *RewardHandler) Play(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	result, err := h.rewardUseCase.Play(userID, time.Now())
	if err != nil {
		h.logger.Warn("Play rejected", zap.Int64("user_id", userID), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlayResponse{Success: true, Prize: *result})
}
