// Package coeff loads coefficient plans: TOML files describing a set of
// filter coefficients to encode into CSD and turn into multiplier
// hardware in one pass.
//
// A plan looks like:
//
//	[multiplier]
//	width = 8
//
//	[[coefficient]]
//	name = "b0"
//	value = 28.5
//	places = 2
//
//	[[coefficient]]
//	name = "b1"
//	value = 3.14159
//	nnz = 3
//
// Each coefficient chooses exactly one encoding mode: "places" for a
// fixed fractional width, "nnz" for a non-zero-digit budget.
package coeff

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/csdlab/csdigit/pkg/csd"
)

// Plan is a parsed coefficient plan.
type Plan struct {
	Multiplier   Multiplier     `toml:"multiplier"`
	Coefficients []*Coefficient `toml:"coefficient"`
}

// Multiplier holds the hardware parameters shared by every generated
// module.
type Multiplier struct {
	Width int `toml:"width"` // input bit width
}

// Coefficient is one constant to encode. Places and NNZ are pointers so
// that an absent key can be told apart from an explicit zero.
type Coefficient struct {
	Name   string  `toml:"name"`
	Value  float64 `toml:"value"`
	Places *int    `toml:"places"`
	NNZ    *int    `toml:"nnz"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	var plan Plan
	if _, err := toml.DecodeFile(path, &plan); err != nil {
		return nil, fmt.Errorf("failed to parse plan: %w", err)
	}
	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return &plan, nil
}

// Validate checks the plan for errors before any encoding work starts.
func (p *Plan) Validate() error {
	if p.Multiplier.Width < 2 {
		return fmt.Errorf("multiplier width must be at least 2, got %d", p.Multiplier.Width)
	}
	if len(p.Coefficients) == 0 {
		return fmt.Errorf("plan contains no coefficients")
	}

	seen := make(map[string]bool, len(p.Coefficients))
	for i, c := range p.Coefficients {
		if c.Name == "" {
			return fmt.Errorf("coefficient %d has no name", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("duplicate coefficient name %q", c.Name)
		}
		seen[c.Name] = true

		switch {
		case c.Places == nil && c.NNZ == nil:
			return fmt.Errorf("coefficient %q sets neither places nor nnz", c.Name)
		case c.Places != nil && c.NNZ != nil:
			return fmt.Errorf("coefficient %q sets both places and nnz", c.Name)
		case c.Places != nil && *c.Places < 0:
			return fmt.Errorf("coefficient %q has negative places %d", c.Name, *c.Places)
		case c.NNZ != nil && *c.NNZ < 0:
			return fmt.Errorf("coefficient %q has negative nnz %d", c.Name, *c.NNZ)
		}
	}
	return nil
}

// Encode converts the coefficient value to CSD using the mode the plan
// selected for it.
func (c *Coefficient) Encode() (string, error) {
	if c.Places != nil {
		return csd.Encode(c.Value, *c.Places)
	}
	return csd.EncodeNNZ(c.Value, *c.NNZ)
}
