package reward

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/burgerspot/rewards/internal/config"
	"github.com/burgerspot/rewards/internal/domain"
	"github.com/burgerspot/rewards/internal/domain/mocks"
	"github.com/burgerspot/rewards/internal/infrastructure/lock"
	"github.com/burgerspot/rewards/internal/infrastructure/logger"
	"github.com/burgerspot/rewards/internal/infrastructure/prize"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func winOnlyEntries() []config.PrizeEntry {
	return []config.PrizeEntry{
		{
			Name:        "LKR 100 OFF",
			Outcome:     "win",
			Description: "LKR 100 off your next order",
			Discount:    &config.DiscountEntry{Kind: "flat", Value: 100},
		},
	}
}

func loseOnlyEntries() []config.PrizeEntry {
	return []config.PrizeEntry{
		{
			Name:        "TRY AGAIN",
			Outcome:     "lose",
			Description: "Better luck tomorrow!",
		},
	}
}

func newTestUseCase(t *testing.T, entries []config.PrizeEntry, playRepo domain.RewardPlayRepository, couponRepo domain.CouponRepository) *RewardUseCase {
	t.Helper()

	newLogger := logger.NewLogger("test", "debug")
	table, err := prize.NewTable(entries, rand.New(rand.NewSource(1)))
	assert.NoError(t, err)

	return &RewardUseCase{
		playRepo:       playRepo,
		couponRepo:     couponRepo,
		prizes:         table,
		locks:          lock.NewUserLockManager(newLogger),
		logger:         newLogger,
		location:       time.UTC,
		couponValidity: 7 * 24 * time.Hour,
		codeAttempts:   5,
		rng:            rand.New(rand.NewSource(1)),
	}
}

func TestPlayFirstTimeWinIssuesCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(nil, nil)

	var created *domain.Coupon
	couponRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *domain.Coupon) error {
		created = c
		return nil
	})

	playRepo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(r *domain.PlayRecord) error {
		assert.Equal(t, int64(42), r.UserID)
		assert.Equal(t, "LKR 100 OFF", r.LastPrizeName)
		assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), r.LastPlayedDate)
		return nil
	})

	result, err := uc.Play(42, testNow)
	assert.NoError(t, err)
	assert.Equal(t, domain.OutcomeWin, result.Outcome)
	assert.Equal(t, "LKR 100 OFF", result.PrizeName)
	assert.NotNil(t, result.CouponCode)

	assert.NotNil(t, created)
	assert.Equal(t, *result.CouponCode, created.Code)
	assert.True(t, strings.HasPrefix(created.Code, "LKR_100_-"))
	assert.Equal(t, int64(42), created.AssignedToUserID)
	assert.Equal(t, domain.DiscountFlat, created.DiscountKind)
	assert.Equal(t, 100.0, created.DiscountValue)
	assert.Equal(t, testNow.Add(7*24*time.Hour), created.ExpiryDate)
	assert.False(t, created.IsUsed)
}

func TestPlayFirstTimeLoseIssuesNoCoupon(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, loseOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(nil, nil)
	playRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	result, err := uc.Play(42, testNow)
	assert.NoError(t, err)
	assert.Equal(t, domain.OutcomeLose, result.Outcome)
	assert.Equal(t, "TRY AGAIN", result.PrizeName)
	assert.Nil(t, result.CouponCode)
}

func TestPlayAlreadyPlayedToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(&domain.PlayRecord{
		UserID:         42,
		LastPlayedDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		LastPrizeName:  "TRY AGAIN",
	}, nil)

	result, err := uc.Play(42, testNow)
	assert.Nil(t, result)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeAlreadyPlayedToday, appErr.Code)
	assert.Equal(t, 400, appErr.HTTPStatus)
}

func TestPlayAllowedOnNextCalendarDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, loseOnlyEntries(), playRepo, couponRepo)

	// Played late yesterday evening; a few hours later it is a new
	// calendar day even though fewer than 24 hours have passed.
	playRepo.EXPECT().GetByUserID(int64(42)).Return(&domain.PlayRecord{
		UserID:         42,
		LastPlayedDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		LastPrizeName:  "5% OFF",
	}, nil)
	playRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	earlyMorning := time.Date(2025, 6, 15, 0, 30, 0, 0, time.UTC)
	result, err := uc.Play(42, earlyMorning)
	assert.NoError(t, err)
	assert.NotNil(t, result)
}

func TestPlayLedgerStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(nil, errors.New("connection refused"))

	result, err := uc.Play(42, testNow)
	assert.Nil(t, result)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeStorageUnavailable, appErr.Code)
	assert.Equal(t, 503, appErr.HTTPStatus)
}

func TestIssueCouponRetriesOnCodeCollision(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(nil, nil)
	gomock.InOrder(
		couponRepo.EXPECT().Create(gomock.Any()).Return(domain.ErrCouponCodeTaken),
		couponRepo.EXPECT().Create(gomock.Any()).Return(nil),
	)
	playRepo.EXPECT().Upsert(gomock.Any()).Return(nil)

	result, err := uc.Play(42, testNow)
	assert.NoError(t, err)
	assert.NotNil(t, result.CouponCode)
}

func TestIssueCouponExhaustsAttempts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(nil, nil)
	couponRepo.EXPECT().Create(gomock.Any()).Return(domain.ErrCouponCodeTaken).Times(5)
	// The ledger is never written when issuing fails, so tomorrow's
	// play is not forfeited.

	result, err := uc.Play(42, testNow)
	assert.Nil(t, result)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeCodeGenerationExhausted, appErr.Code)
	assert.Equal(t, 500, appErr.HTTPStatus)
}

func TestIssueCouponStorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(nil, nil)
	couponRepo.EXPECT().Create(gomock.Any()).Return(errors.New("connection refused"))

	result, err := uc.Play(42, testNow)
	assert.Nil(t, result)

	var appErr *domain.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, domain.ErrCodeStorageUnavailable, appErr.Code)
}

func TestStatusNeverPlayed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(nil, nil)

	status, err := uc.Status(42, testNow)
	assert.NoError(t, err)
	assert.True(t, status.CanPlay)
	assert.Nil(t, status.LastResult)
}

func TestStatusPlayedToday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(&domain.PlayRecord{
		UserID:         42,
		LastPlayedDate: time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
		LastPrizeName:  "FREE DRINK",
	}, nil)

	status, err := uc.Status(42, testNow)
	assert.NoError(t, err)
	assert.False(t, status.CanPlay)
	assert.NotNil(t, status.LastResult)
	assert.Equal(t, "FREE DRINK", *status.LastResult)
}

func TestStatusPlayedYesterday(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	playRepo := mocks.NewMockRewardPlayRepository(ctrl)
	couponRepo := mocks.NewMockCouponRepository(ctrl)
	uc := newTestUseCase(t, winOnlyEntries(), playRepo, couponRepo)

	playRepo.EXPECT().GetByUserID(int64(42)).Return(&domain.PlayRecord{
		UserID:         42,
		LastPlayedDate: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		LastPrizeName:  "FREE DRINK",
	}, nil)

	status, err := uc.Status(42, testNow)
	assert.NoError(t, err)
	assert.True(t, status.CanPlay)
	assert.NotNil(t, status.LastResult)
	assert.Equal(t, "FREE DRINK", *status.LastResult)
}

// fakePlayLedger is an in-memory RewardPlayRepository used for
// concurrency tests, where mock expectations cannot express ordering.
type fakePlayLedger struct {
	mu      sync.Mutex
	records map[int64]*domain.PlayRecord
}

func newFakePlayLedger() *fakePlayLedger {
	return &fakePlayLedger{records: make(map[int64]*domain.PlayRecord)}
}

func (f *fakePlayLedger) GetByUserID(userID int64) (*domain.PlayRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.records[userID]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePlayLedger) Upsert(record *domain.PlayRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *record
	f.records[record.UserID] = &cp
	return nil
}

// fakeCouponStore is an in-memory CouponRepository enforcing code
// uniqueness the way the database unique index does.
type fakeCouponStore struct {
	mu     sync.Mutex
	nextID int64
	byCode map[string]*domain.Coupon
}

func newFakeCouponStore() *fakeCouponStore {
	return &fakeCouponStore{byCode: make(map[string]*domain.Coupon)}
}

func (f *fakeCouponStore) Create(coupon *domain.Coupon) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, exists := f.byCode[coupon.Code]; exists {
		return domain.ErrCouponCodeTaken
	}
	f.nextID++
	coupon.ID = f.nextID
	cp := *coupon
	f.byCode[coupon.Code] = &cp
	return nil
}

func (f *fakeCouponStore) GetByID(id int64) (*domain.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byCode {
		if c.ID == id {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeCouponStore) GetByCode(code string) (*domain.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.byCode[code]; ok {
		cp := *c
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCouponStore) GetByUserID(userID int64) ([]*domain.Coupon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*domain.Coupon
	for _, c := range f.byCode {
		if c.AssignedToUserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeCouponStore) MarkUsed(id int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.byCode {
		if c.ID == id && !c.IsUsed {
			c.IsUsed = true
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCouponStore) CountExpiredUnused(now time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, c := range f.byCode {
		if !c.IsUsed && now.After(c.ExpiryDate) {
			n++
		}
	}
	return n, nil
}

func (f *fakeCouponStore) WithTransaction(tx *gorm.DB) domain.CouponRepository {
	return f
}

func (f *fakeCouponStore) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.byCode)
}

func TestConcurrentPlaysOnlyOneSucceeds(t *testing.T) {
	ledger := newFakePlayLedger()
	store := newFakeCouponStore()
	uc := newTestUseCase(t, winOnlyEntries(), ledger, store)

	const attempts = 20
	results := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Play(42, testNow)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		var appErr *domain.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, domain.ErrCodeAlreadyPlayedToday, appErr.Code)
		rejected++
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, rejected)
	assert.Equal(t, 1, store.len())
}

func TestIssuedCodesAreDistinct(t *testing.T) {
	store := newFakeCouponStore()
	uc := newTestUseCase(t, winOnlyEntries(), newFakePlayLedger(), store)

	prizeDef := uc.prizes.Prizes()[0]
	const issued = 10000
	for i := 0; i < issued; i++ {
		_, err := uc.issueCoupon(int64(i), prizeDef, testNow)
		assert.NoError(t, err)
	}

	// The store rejects duplicates, so every surviving coupon has a
	// distinct code by construction; the count proves no issue failed.
	assert.Equal(t, issued, store.len())
}

func TestGenerateCodeShape(t *testing.T) {
	uc := newTestUseCase(t, winOnlyEntries(), nil, nil)

	tests := []struct {
		name      string
		prizeName string
		prefix    string
	}{
		{"LongNameTruncated", "LKR 100 OFF", "LKR_100_"},
		{"ShortNameKept", "5% OFF", "5%_OFF"},
		{"SpacesReplaced", "FREE DRINK", "FREE_DRI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code := uc.generateCode(tt.prizeName)
			parts := strings.SplitN(code, "-", 2)
			assert.Equal(t, tt.prefix, parts[0])
			assert.Len(t, parts[1], 4)
			for _, r := range parts[1] {
				assert.Contains(t, codeAlphabet, fmt.Sprintf("%c", r))
			}
		})
	}
}
