package model

import "fmt"

// PriceKind selects how the PPA price is derived from the contract terms.
// Keep these values stable; they appear in configs and API requests.
type PriceKind string

const (
	// PriceFixed is a flat price over the whole tenor.
	PriceFixed PriceKind = "fixed"
	// PriceIndexed tracks the market forecast scaled by an index factor.
	PriceIndexed PriceKind = "indexed"
)

// PriceTerms are the price clauses of the contract.
// Floor and Ceil are sentinel-disabled: a value <= 0 means "no bound",
// not "bound at zero".
type PriceTerms struct {
	Kind  PriceKind
	Fixed float64 // $/MWh, used when Kind == PriceFixed
	Floor float64 // $/MWh minimum, <= 0 disables
	Ceil  float64 // $/MWh maximum, <= 0 disables
	Index float64 // market multiplier, used when Kind == PriceIndexed
}

func (t PriceTerms) Validate() error {
	switch t.Kind {
	case PriceFixed, PriceIndexed:
		return nil
	default:
		return fmt.Errorf("unsupported price kind: %q", t.Kind)
	}
}

// Locations identifies the two sides of the contract. Informational only;
// no computation depends on them.
type Locations struct {
	Project   string
	Corporate string
}
