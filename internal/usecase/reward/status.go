package reward

import (
	"time"

	"github.com/burgerspot/rewards/internal/domain"
)

// Status reports whether the user may play today and their last
// recorded result. Read-only: reproduces the calendar-day comparison
// of Play without mutating anything.
func (uc *RewardUseCase) Status(userID int64, now time.Time) (*domain.PlayStatus, error) {
	record, err := uc.playRepo.GetByUserID(userID)
	if err != nil {
		return nil, domain.NewStorageError("load play ledger", err)
	}

	if record == nil {
		return &domain.PlayStatus{CanPlay: true, LastResult: nil}, nil
	}

	lastResult := record.LastPrizeName
	return &domain.PlayStatus{
		CanPlay:    !uc.sameCalendarDay(record.LastPlayedDate, now),
		LastResult: &lastResult,
	}, nil
}
