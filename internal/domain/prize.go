package domain

import "fmt"

// PrizeOutcome represents the outcome kind of a prize draw
type PrizeOutcome string

const (
	OutcomeWin  PrizeOutcome = "win"
	OutcomeLose PrizeOutcome = "lose"
)

// DiscountKind represents the shape of a coupon discount
type DiscountKind string

const (
	DiscountFlat       DiscountKind = "flat"
	DiscountPercentage DiscountKind = "percentage"
	DiscountFreeItem   DiscountKind = "free_item"
)

// Discount describes the discount attached to a winning prize.
// For percentage discounts the value is a fraction of the cart
// total (0.05 means five percent).
type Discount struct {
	Kind  DiscountKind `json:"kind"`
	Value float64      `json:"value"`
}

// PrizeDefinition is a single entry of the prize table. Loaded once
// from configuration at startup and never mutated afterwards.
type PrizeDefinition struct {
	Name        string       `json:"name"`
	Outcome     PrizeOutcome `json:"outcome"`
	Description string       `json:"description"`
	Discount    *Discount    `json:"discount,omitempty"`
	Weight      int          `json:"weight"`
}

// Validate checks the internal consistency of a prize entry
func (p *PrizeDefinition) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("prize name is required")
	}
	switch p.Outcome {
	case OutcomeWin:
		if p.Discount == nil {
			return fmt.Errorf("prize %q: win entries require a discount", p.Name)
		}
		switch p.Discount.Kind {
		case DiscountFlat, DiscountPercentage, DiscountFreeItem:
		default:
			return fmt.Errorf("prize %q: unknown discount kind %q", p.Name, p.Discount.Kind)
		}
		if p.Discount.Value < 0 {
			return fmt.Errorf("prize %q: discount value must not be negative", p.Name)
		}
	case OutcomeLose:
		if p.Discount != nil {
			return fmt.Errorf("prize %q: lose entries must not carry a discount", p.Name)
		}
	default:
		return fmt.Errorf("prize %q: unknown outcome %q", p.Name, p.Outcome)
	}
	if p.Weight < 0 {
		return fmt.Errorf("prize %q: weight must not be negative", p.Name)
	}
	return nil
}
