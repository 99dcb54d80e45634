package prize

import (
	"errors"
	"math/rand"
	"sync"

	"github.com/mroth/weightedrand/v2"

	"github.com/burgerspot/rewards/internal/config"
	"github.com/burgerspot/rewards/internal/domain"
)

// Table is the immutable prize table. It is built once from
// configuration at startup; draws are safe for concurrent use.
type Table struct {
	prizes  []domain.PrizeDefinition
	chooser *weightedrand.Chooser[domain.PrizeDefinition, int]

	mu  sync.Mutex
	rng *rand.Rand
}

// NewTable validates the configured prize entries and builds the
// weighted chooser. Entries without an explicit weight count as one
// share each, which makes the default draw uniform.
func NewTable(entries []config.PrizeEntry, rng *rand.Rand) (*Table, error) {
	if len(entries) == 0 {
		return nil, errors.New("prize table must contain at least one entry")
	}

	prizes := make([]domain.PrizeDefinition, 0, len(entries))
	choices := make([]weightedrand.Choice[domain.PrizeDefinition, int], 0, len(entries))

	for _, e := range entries {
		p := domain.PrizeDefinition{
			Name:        e.Name,
			Outcome:     domain.PrizeOutcome(e.Outcome),
			Description: e.Description,
			Weight:      e.Weight,
		}
		if e.Discount != nil {
			p.Discount = &domain.Discount{
				Kind:  domain.DiscountKind(e.Discount.Kind),
				Value: e.Discount.Value,
			}
		}
		if p.Weight == 0 {
			p.Weight = 1
		}
		if err := p.Validate(); err != nil {
			return nil, err
		}
		prizes = append(prizes, p)
		choices = append(choices, weightedrand.NewChoice(p, p.Weight))
	}

	chooser, err := weightedrand.NewChooser(choices...)
	if err != nil {
		return nil, err
	}

	return &Table{prizes: prizes, chooser: chooser, rng: rng}, nil
}

// Draw picks one prize from the table
func (t *Table) Draw() domain.PrizeDefinition {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.chooser.PickSource(t.rng)
}

// Prizes returns a copy of the table contents
func (t *Table) Prizes() []domain.PrizeDefinition {
	out := make([]domain.PrizeDefinition, len(t.prizes))
	copy(out, t.prizes)
	return out
}
