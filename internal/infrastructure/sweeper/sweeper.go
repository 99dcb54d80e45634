package sweeper

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

// Sweeper implements domain.ExpirySweeper. Expired coupons are never
// deleted (they are kept for audit and rejected at redemption time);
// the sweeper only surfaces how many are lying around.
type Sweeper struct {
	couponRepo domain.CouponRepository
	logger     *logger.Logger
	interval   time.Duration

	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
	mu        sync.RWMutex
	isRunning bool
}

// NewSweeper creates a new expiry sweeper
func NewSweeper(couponRepo domain.CouponRepository, logger *logger.Logger, interval time.Duration) *Sweeper {
	ctx, cancel := context.WithCancel(context.Background())
	return &Sweeper{
		couponRepo: couponRepo,
		logger:     logger,
		interval:   interval,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Sweep takes one census of expired unused coupons
func (s *Sweeper) Sweep() error {
	count, err := s.couponRepo.CountExpiredUnused(time.Now())
	if err != nil {
		s.logger.Error("Failed to count expired coupons", zap.Error(err))
		return err
	}

	if count > 0 {
		s.logger.Info("Expired unused coupons on record", zap.Int64("count", count))
	}
	return nil
}

// StartBackgroundProcessing starts the periodic sweep loop
func (s *Sweeper) StartBackgroundProcessing() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return
	}
	s.isRunning = true

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		s.logger.Info("Expiry sweeper started", zap.Duration("interval", s.interval))
		for {
			select {
			case <-s.ctx.Done():
				s.logger.Info("Expiry sweeper stopped")
				return
			case <-ticker.C:
				if err := s.Sweep(); err != nil {
					s.logger.Error("Sweep failed", zap.Error(err))
				}
			}
		}
	}()
}

// StopBackgroundProcessing stops the sweep loop and waits for it to exit
func (s *Sweeper) StopBackgroundProcessing() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}
	s.cancel()
	s.wg.Wait()
	s.isRunning = false
}
