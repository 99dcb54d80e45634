package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

const (
	acquireTimeout = 5 * time.Second
	pollInterval   = 5 * time.Millisecond
)

// UserLockManager serializes operations per user. The reward engine
// acquires a user's lock around its check-then-write sequence so two
// concurrent plays for the same user behave as if serialized.
type UserLockManager struct {
	locks  sync.Map // map[int64]*sync.Mutex
	logger *logger.Logger
}

// NewUserLockManager creates a new per-user lock manager
func NewUserLockManager(logger *logger.Logger) *UserLockManager {
	return &UserLockManager{logger: logger}
}

// Lock acquires the lock for the given userID with timeout. The
// acquire polls TryLock so a caller that gives up leaves the mutex
// untouched for the next contender.
func (m *UserLockManager) Lock(ctx context.Context, userID int64) error {
	mu := m.getOrCreateMutex(userID)

	timeout := time.NewTimer(acquireTimeout)
	defer timeout.Stop()
	retry := time.NewTicker(pollInterval)
	defer retry.Stop()

	for {
		if mu.TryLock() {
			m.logger.Debug("Acquired user lock", zap.Int64("userID", userID))
			return nil
		}

		select {
		case <-ctx.Done():
			m.logger.Warn("Failed to acquire user lock: context cancelled", zap.Int64("userID", userID), zap.Error(ctx.Err()))
			return fmt.Errorf("failed to acquire lock for user %d: %w", userID, ctx.Err())
		case <-timeout.C:
			m.logger.Warn("Failed to acquire user lock: timeout", zap.Int64("userID", userID))
			return fmt.Errorf("failed to acquire lock for user %d: timeout", userID)
		case <-retry.C:
		}
	}
}

// Unlock releases the lock for the given userID
func (m *UserLockManager) Unlock(userID int64) {
	muInterface, ok := m.locks.Load(userID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("userID", userID))
		return
	}
	muInterface.(*sync.Mutex).Unlock()
}

func (m *UserLockManager) getOrCreateMutex(userID int64) *sync.Mutex {
	if mu, ok := m.locks.Load(userID); ok {
		return mu.(*sync.Mutex)
	}
	actual, _ := m.locks.LoadOrStore(userID, &sync.Mutex{})
	return actual.(*sync.Mutex)
}
