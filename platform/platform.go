// Package platform loads the board description the clock tree needs:
// where the clock controller's register block lives and what feeds the
// reference oscillator. On real systems this comes from the devicetree;
// here it's a small YAML file so tooling can run against any board or
// captured register image.
package platform

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Reg struct {
	Base uint64 `yaml:"base"`
	Size uint64 `yaml:"size"`
}

type Platform struct {
	Name       string `yaml:"name"`
	Reg        Reg    `yaml:"reg"`
	RefClockHz uint64 `yaml:"refclk-hz"`
}

// DefaultRefClockHz is assumed when the file doesn't give refclk-hz.
const DefaultRefClockHz uint64 = 25_000_000

// Load reads and validates a platform file.
func Load(path string) (*Platform, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't read platform file: %v", err)
	}
	var p Platform
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("couldn't parse %s: %v", path, err)
	}
	if p.RefClockHz == 0 {
		p.RefClockHz = DefaultRefClockHz
	}
	if p.Reg.Base == 0 {
		return nil, fmt.Errorf("%s: reg.base is missing", path)
	}
	if p.Reg.Size == 0 {
		return nil, fmt.Errorf("%s: reg.size is missing", path)
	}
	return &p, nil
}
