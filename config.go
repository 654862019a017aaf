package citygrid

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// CityConfig holds everything needed to generate a city.
// As a yaml file it looks like
//
//	variant: default
//	blocks_x: 2
//	blocks_y: 2
//	block_size: 3
type CityConfig struct {
	// Variant of the layout, see variant.go
	Variant VariantType `json:"variant" yaml:"variant"`

	Layout `yaml:",inline"`
}

// DefaultConfig returns a small 2x2 city of 3x3 blocks.
func DefaultConfig() *CityConfig {
	return &CityConfig{
		Variant: VariantDefault,
		Layout:  Layout{BlocksX: 2, BlocksY: 2, BlockSize: 3},
	}
}

// Validate returns an error if the config can't possibly build a city.
// Note that a valid config may still name a variant that is unsupported.
func (c *CityConfig) Validate() error {
	if _, err := VariantFor(c.Variant); err != nil {
		return err
	}
	return c.Layout.Validate()
}

// LoadConfig reads a yaml config file. Fields not present in the file keep
// their DefaultConfig values.
func LoadConfig(fpath string) (*CityConfig, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrap(err, "reading city config")
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing city config %s", fpath)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "city config %s", fpath)
	}
	return cfg, nil
}
