package domain

import "time"

// PlayRecord is the daily play ledger entry for one user. There is at
// most one row per user; the play date is compared by calendar day in
// the service's reference timezone, not by a rolling 24h window.
type PlayRecord struct {
	ID             int64     `json:"-" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	UserID         int64     `json:"user_id" gorm:"uniqueIndex;not null;type:bigint"`
	LastPlayedDate time.Time `json:"last_played_date" gorm:"not null"`
	LastPrizeName  string    `json:"last_prize_name" gorm:"type:varchar(64);not null"`
	CreatedAt      time.Time `json:"created_at" gorm:"not null"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"not null"`

	User User `json:"-" gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for PlayRecord
func (p PlayRecord) TableName() string {
	return "reward_plays"
}

// PlayResult is the outcome of a daily reward draw
type PlayResult struct {
	PrizeName   string       `json:"name"`
	Outcome     PrizeOutcome `json:"type"`
	CouponCode  *string      `json:"code"`
	Description string       `json:"description"`
}

// PlayStatus reports whether a user may play today and their last result
type PlayStatus struct {
	CanPlay    bool    `json:"canPlay"`
	LastResult *string `json:"lastResult"`
}

// RewardPlayRepository defines the interface for the daily play ledger
type RewardPlayRepository interface {
	GetByUserID(userID int64) (*PlayRecord, error)
	// Upsert creates the user's ledger row or updates the existing one.
	// The user_id unique index keeps the ledger at one row per user.
	Upsert(record *PlayRecord) error
}

// RewardUseCase defines the interface for the daily reward engine
type RewardUseCase interface {
	Play(userID int64, now time.Time) (*PlayResult, error)
	Status(userID int64, now time.Time) (*PlayStatus, error)
}
