package coupon

import (
	"errors"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/domain/mocks"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func validCoupon() *domain.Coupon {
	return &domain.Coupon{
		ID:               7,
		Code:             "5%_OFF-K3XQ",
		PrizeName:        "5% OFF",
		DiscountKind:     domain.DiscountPercentage,
		DiscountValue:    0.05,
		IsUsed:           false,
		AssignedToUserID: 42,
		ExpiryDate:       testNow.Add(48 * time.Hour),
	}
}

func newTestUseCase(repo domain.CouponRepository) *CouponUseCase {
	return &CouponUseCase{
		couponRepo:    repo,
		logger:        logger.NewLogger("test", "debug"),
		freeItemValue: 350,
	}
}

func TestApplyQuotesWithoutConsuming(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(repo)

	coupon := validCoupon()
	repo.EXPECT().GetByCode(coupon.Code).Return(coupon, nil)
	// No MarkUsed expectation: quoting must not touch the coupon.

	result, err := uc.Apply(42, coupon.Code, 1000, testNow)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, result.DiscountAmount)
	assert.Equal(t, "5% OFF", result.PrizeName)
	assert.Equal(t, int64(7), result.CouponID)
}

func TestApplyValidationOrder(t *testing.T) {
	used := validCoupon()
	used.IsUsed = true

	expired := validCoupon()
	expired.ExpiryDate = testNow.Add(-time.Hour)

	usedAndExpired := validCoupon()
	usedAndExpired.IsUsed = true
	usedAndExpired.ExpiryDate = testNow.Add(-time.Hour)

	notMine := validCoupon()
	notMine.AssignedToUserID = 99
	notMine.IsUsed = true

	tests := []struct {
		name       string
		coupon     *domain.Coupon
		cartTotal  float64
		wantCode   string
		wantStatus int
	}{
		{"NotFound", nil, 1000, domain.ErrCodeCouponNotFound, 404},
		{"NotOwned", notMine, 1000, domain.ErrCodeCouponNotOwned, 403},
		{"AlreadyUsed", used, 1000, domain.ErrCodeCouponAlreadyUsed, 400},
		{"UsedBeatsExpired", usedAndExpired, 1000, domain.ErrCodeCouponAlreadyUsed, 400},
		{"Expired", expired, 1000, domain.ErrCodeCouponExpired, 400},
		{"NegativeCartTotal", validCoupon(), -5, domain.ErrCodeInvalidCartTotal, 400},
		{"NaNCartTotal", validCoupon(), math.NaN(), domain.ErrCodeInvalidCartTotal, 400},
		{"InfCartTotal", validCoupon(), math.Inf(1), domain.ErrCodeInvalidCartTotal, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockCouponRepository(ctrl)
			uc := newTestUseCase(repo)
			repo.EXPECT().GetByCode(gomock.Any()).Return(tt.coupon, nil)

			result, err := uc.Apply(42, "ANY-CODE", tt.cartTotal, testNow)
			assert.Nil(t, result)

			var appErr *domain.AppError
			assert.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantCode, appErr.Code)
			assert.Equal(t, tt.wantStatus, appErr.HTTPStatus)
		})
	}
}

func TestApplyZeroCartTotal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(repo)

	coupon := validCoupon()
	repo.EXPECT().GetByCode(coupon.Code).Return(coupon, nil)

	// Zero is a valid cart total; the discount clamps to it.
	result, err := uc.Apply(42, coupon.Code, 0, testNow)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, result.DiscountAmount)
}

func TestApplyCouponValidUntilEndOfExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(repo)

	coupon := validCoupon()
	coupon.ExpiryDate = testNow

	repo.EXPECT().GetByCode(coupon.Code).Return(coupon, nil)

	// Expiry boundary is inclusive: at the exact expiry instant the
	// coupon still quotes.
	result, err := uc.Apply(42, coupon.Code, 100, testNow)
	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestApplyStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(repo)

	repo.EXPECT().GetByCode(gomock.Any()).Return(nil, errors.New("connection refused"))

	result, err := uc.Apply(42, "ANY-CODE", 100, testNow)
	assert.Nil(t, result)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeStorageUnavailable, appErr.Code)
	assert.Equal(t, 503, appErr.HTTPStatus)
}

func TestCommitClaimsCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(repo)

	repo.EXPECT().MarkUsed(int64(7)).Return(true, nil)

	assert.NoError(t, uc.Commit(7))
}

func TestCommitLosesRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(repo)

	repo.EXPECT().MarkUsed(int64(7)).Return(false, nil)

	err := uc.Commit(7)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeCouponAlreadyUsed, appErr.Code)
}

// racingCouponStore simulates the conditional-update semantics of the
// database: the first MarkUsed claims the row, all later calls lose.
type racingCouponStore struct {
	domain.CouponRepository

	mu   sync.Mutex
	used bool
}

func (r *racingCouponStore) MarkUsed(id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.used {
		return false, nil
	}
	r.used = true
	return true, nil
}

func TestConcurrentCommitSingleWinner(t *testing.T) {
	store := &racingCouponStore{}
	uc := newTestUseCase(store)

	const committers = 10
	results := make(chan error, committers)

	var wg sync.WaitGroup
	for i := 0; i < committers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- uc.Commit(7)
		}()
	}
	wg.Wait()
	close(results)

	var won, lost int
	for err := range results {
		if err == nil {
			won++
			continue
		}
		var appErr *domain.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domain.ErrCodeCouponAlreadyUsed, appErr.Code)
		lost++
	}

	assert.Equal(t, 1, won)
	assert.Equal(t, committers-1, lost)
}
