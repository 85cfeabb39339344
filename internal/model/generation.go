package model

import (
	"errors"
	"time"
)

// GenerationProfile describes the renewable project backing a PPA.
// Units:
// - CapacityMW: nameplate capacity in MW
// - Profile: hourly capacity factors, fraction 0..1
//
// The profile must cover at least the contract tenor; the contract holds a
// reference to this struct, not a copy.
type GenerationProfile struct {
	Technology string
	Location   string
	CapacityMW float64
	Start      time.Time
	End        time.Time
	Profile    Series
}

func (g *GenerationProfile) Validate() error {
	if g == nil {
		return errors.New("generation profile is nil")
	}
	if g.CapacityMW <= 0 {
		return errors.New("CapacityMW must be > 0")
	}
	if g.Profile.Len() == 0 {
		return errors.New("generation profile series is empty")
	}
	return nil
}

// EnergyMWh returns the generated energy for one hour at the given capacity
// factor: cf * CapacityMW * 1h.
func (g *GenerationProfile) EnergyMWh(capacityFactor float64) float64 {
	return capacityFactor * g.CapacityMW
}
