package prize

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/burgerspot/rewards/internal/config"
	"github.com/burgerspot/rewards/internal/domain"
)

func testEntries() []config.PrizeEntry {
	return []config.PrizeEntry{
		{Name: "LKR 100 OFF", Outcome: "win", Discount: &config.DiscountEntry{Kind: "flat", Value: 100}},
		{Name: "FREE DRINK", Outcome: "win", Discount: &config.DiscountEntry{Kind: "free_item", Value: 1}},
		{Name: "5% OFF", Outcome: "win", Discount: &config.DiscountEntry{Kind: "percentage", Value: 0.05}},
		{Name: "TRY AGAIN", Outcome: "lose"},
	}
}

func TestNewTableValidatesEntries(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		entries []config.PrizeEntry
	}{
		{"Empty", nil},
		{"WinWithoutDiscount", []config.PrizeEntry{{Name: "BROKEN", Outcome: "win"}}},
		{"LoseWithDiscount", []config.PrizeEntry{{Name: "BROKEN", Outcome: "lose", Discount: &config.DiscountEntry{Kind: "flat", Value: 1}}}},
		{"UnknownDiscountKind", []config.PrizeEntry{{Name: "BROKEN", Outcome: "win", Discount: &config.DiscountEntry{Kind: "bogo", Value: 1}}}},
		{"NegativeDiscountValue", []config.PrizeEntry{{Name: "BROKEN", Outcome: "win", Discount: &config.DiscountEntry{Kind: "flat", Value: -1}}}},
		{"MissingName", []config.PrizeEntry{{Outcome: "lose"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := NewTable(tt.entries, rng)
			assert.Error(t, err)
			assert.Nil(t, table)
		})
	}
}

func TestDrawCoversAllEntriesUniformly(t *testing.T) {
	table, err := NewTable(testEntries(), rand.New(rand.NewSource(1)))
	assert.NoError(t, err)

	counts := make(map[string]int)
	const draws = 40000
	for i := 0; i < draws; i++ {
		counts[table.Draw().Name]++
	}

	assert.Len(t, counts, 4)
	for name, n := range counts {
		// Four equal-weight entries, so each should land near a
		// quarter of the draws. The tolerance is loose enough to
		// never flake with a fixed seed.
		assert.InDelta(t, draws/4, n, draws/20, "prize %s drawn %d times", name, n)
	}
}

func TestDrawRespectsWeights(t *testing.T) {
	entries := []config.PrizeEntry{
		{Name: "COMMON", Outcome: "lose", Weight: 9},
		{Name: "RARE", Outcome: "lose", Weight: 1},
	}
	table, err := NewTable(entries, rand.New(rand.NewSource(1)))
	assert.NoError(t, err)

	counts := make(map[string]int)
	const draws = 20000
	for i := 0; i < draws; i++ {
		counts[table.Draw().Name]++
	}

	assert.Greater(t, counts["COMMON"], counts["RARE"]*5)
}

func TestPrizesReturnsCopy(t *testing.T) {
	table, err := NewTable(testEntries(), rand.New(rand.NewSource(1)))
	assert.NoError(t, err)

	prizes := table.Prizes()
	assert.Len(t, prizes, 4)

	prizes[0].Name = "MUTATED"
	assert.Equal(t, "LKR 100 OFF", table.Prizes()[0].Name)
}

func TestDefaultWeightIsOne(t *testing.T) {
	table, err := NewTable(testEntries(), rand.New(rand.NewSource(1)))
	assert.NoError(t, err)

	for _, p := range table.Prizes() {
		assert.Equal(t, 1, p.Weight)
	}
	assert.Equal(t, domain.OutcomeLose, table.Prizes()[3].Outcome)
}
