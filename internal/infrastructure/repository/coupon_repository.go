package repository

import (
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/burgerspot/rewards/internal/domain"
)

// CouponRepository implements domain.CouponRepository
type CouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) domain.CouponRepository {
	return &CouponRepository{db: db}
}

// Create inserts a new coupon. A unique index on code backs the
// application-level collision retry: a concurrent issuance that picks
// the same suffix surfaces as domain.ErrCouponCodeTaken here.
func (r *CouponRepository) Create(coupon *domain.Coupon) error {
	coupon.CreatedAt = time.Now()
	coupon.UpdatedAt = time.Now()
	err := r.db.Create(coupon).Error
	if isUniqueViolation(err) {
		return domain.ErrCouponCodeTaken
	}
	return err
}

// GetByID retrieves a coupon by ID
func (r *CouponRepository) GetByID(id int64) (*domain.Coupon, error) {
	var coupon domain.Coupon
	result := r.db.Where("id = ?", id).First(&coupon)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &coupon, nil
}

// GetByCode retrieves a coupon by its code
func (r *CouponRepository) GetByCode(code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	result := r.db.Where("code = ?", code).First(&coupon)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &coupon, nil
}

// GetByUserID retrieves all coupons assigned to a user
func (r *CouponRepository) GetByUserID(userID int64) ([]*domain.Coupon, error) {
	var coupons []*domain.Coupon
	result := r.db.Where("assigned_to_user_id = ?", userID).
		Order("created_at DESC").
		Find(&coupons)
	if result.Error != nil {
		return nil, result.Error
	}
	return coupons, nil
}

// MarkUsed flips is_used from false to true as a single conditional
// update. Zero rows affected means another committer already claimed
// the coupon.
func (r *CouponRepository) MarkUsed(id int64) (bool, error) {
	result := r.db.Model(&domain.Coupon{}).
		Where("id = ? AND is_used = ?", id, false).
		Updates(map[string]interface{}{
			"is_used":    true,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// CountExpiredUnused counts coupons that are past expiry but never redeemed
func (r *CouponRepository) CountExpiredUnused(now time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Coupon{}).
		Where("is_used = ? AND expiry_date < ?", false, now).
		Count(&count).Error
	return count, err
}

// WithTransaction returns a repository bound to the given transaction
func (r *CouponRepository) WithTransaction(tx *gorm.DB) domain.CouponRepository {
	return &CouponRepository{db: tx}
}

// isUniqueViolation reports whether err is a PostgreSQL unique
// constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
