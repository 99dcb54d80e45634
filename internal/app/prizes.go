package app

import (
	"math/rand"
	"time"

	"github.com/burgerspot/rewards/internal/infrastructure/prize"
)

// InitRandSource seeds the random source backing prize draws
func (a *application) InitRandSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func (a *application) InitPrizeTable(rng *rand.Rand) (*prize.Table, error) {
	return prize.NewTable(a.config.Reward.Prizes, rng)
}
