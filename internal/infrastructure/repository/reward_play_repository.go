package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/burgerspot/rewards/internal/domain"
)

// RewardPlayRepository implements domain.RewardPlayRepository
type RewardPlayRepository struct {
	db *gorm.DB
}

// NewRewardPlayRepository creates a new daily play ledger repository
func NewRewardPlayRepository(db *gorm.DB) domain.RewardPlayRepository {
	return &RewardPlayRepository{db: db}
}

// GetByUserID retrieves the ledger row for a user, nil if the user
// has never played
func (r *RewardPlayRepository) GetByUserID(userID int64) (*domain.PlayRecord, error) {
	var record domain.PlayRecord
	result := r.db.Where("user_id = ?", userID).First(&record)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &record, nil
}

// Upsert creates or updates the user's ledger row in one statement.
// The unique index on user_id makes the insert race-safe: a concurrent
// first play lands on the conflict branch instead of a second row.
func (r *RewardPlayRepository) Upsert(record *domain.PlayRecord) error {
	now := time.Now()
	record.CreatedAt = now
	record.UpdatedAt = now
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"last_played_date",
			"last_prize_name",
			"updated_at",
		}),
	}).Create(record).Error
}
