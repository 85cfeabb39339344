package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"ppa-valuation/internal/model"
	"ppa-valuation/internal/timeutil"
	"ppa-valuation/internal/valuation"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML): a list of named
// valuation scenarios, each a self-contained contract + data-source spec.
type Config struct {
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

type ScenarioConfig struct {
	Name                string           `yaml:"name"`
	SettlementFrequency string           `yaml:"settlement_frequency"`
	Contract            ContractConfig   `yaml:"contract"`
	Generation          GenerationConfig `yaml:"generation"`
	MarketCSV           string           `yaml:"market_csv"`
}

type ContractConfig struct {
	ProjectLocation   string      `yaml:"project_location"`
	CorporateLocation string      `yaml:"corporate_location"`
	Start             string      `yaml:"start"` // YYYY-MM-DD
	End               string      `yaml:"end"`   // YYYY-MM-DD
	Discount          float64     `yaml:"discount"`
	Price             PriceConfig `yaml:"price"`
}

type PriceConfig struct {
	Type  string  `yaml:"type"` // "fixed" or "indexed"
	Fixed float64 `yaml:"fixed"`
	Floor float64 `yaml:"floor"`
	Ceil  float64 `yaml:"ceil"`
	Index float64 `yaml:"index"`
}

type GenerationConfig struct {
	Technology string  `yaml:"technology"`
	CapacityMW float64 `yaml:"capacity_mw"`
	ProfileCSV string  `yaml:"profile_csv"`
}

// Load reads, path-resolves and validates a config file. CSV paths are
// interpreted relative to the config file's directory when they don't exist
// relative to the working directory.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	for i := range c.Scenarios {
		s := &c.Scenarios[i]
		s.MarketCSV = resolvePath(path, s.MarketCSV)
		s.Generation.ProfileCSV = resolvePath(path, s.Generation.ProfileCSV)
		if s.SettlementFrequency == "" {
			s.SettlementFrequency = string(timeutil.Hourly)
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if len(c.Scenarios) == 0 {
		return errors.New("at least one scenario is required")
	}
	seen := map[string]bool{}
	for i, s := range c.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d: name is required", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if _, err := timeutil.PeriodsPerYear(timeutil.Frequency(s.SettlementFrequency)); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		if _, err := s.Contract.ToTerms(); err != nil {
			return fmt.Errorf("scenario %q: %w", s.Name, err)
		}
		if s.Generation.CapacityMW <= 0 {
			return fmt.Errorf("scenario %q: generation.capacity_mw must be > 0", s.Name)
		}
		if s.Generation.ProfileCSV == "" {
			return fmt.Errorf("scenario %q: generation.profile_csv is required", s.Name)
		}
		if s.MarketCSV == "" {
			return fmt.Errorf("scenario %q: market_csv is required", s.Name)
		}
	}
	return nil
}

// ToTerms converts the config shape into engine contract terms, parsing and
// validating the dates and price kind.
func (cc ContractConfig) ToTerms() (valuation.ContractTerms, error) {
	start, err := timeutil.ParseDay(cc.Start)
	if err != nil {
		return valuation.ContractTerms{}, fmt.Errorf("contract start: %w", err)
	}
	end, err := timeutil.ParseDay(cc.End)
	if err != nil {
		return valuation.ContractTerms{}, fmt.Errorf("contract end: %w", err)
	}
	terms := valuation.ContractTerms{
		Locations: model.Locations{
			Project:   cc.ProjectLocation,
			Corporate: cc.CorporateLocation,
		},
		Start:    start,
		End:      end,
		Discount: cc.Discount,
		Price: model.PriceTerms{
			Kind:  model.PriceKind(cc.Price.Type),
			Fixed: cc.Price.Fixed,
			Floor: cc.Price.Floor,
			Ceil:  cc.Price.Ceil,
			Index: cc.Price.Index,
		},
	}
	if err := terms.Price.Validate(); err != nil {
		return valuation.ContractTerms{}, err
	}
	return terms, nil
}

func resolvePath(cfgPath, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	if _, err := os.Stat(p); err == nil {
		return p
	}
	cand := filepath.Join(filepath.Dir(cfgPath), p)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return p
}
