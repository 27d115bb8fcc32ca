package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

// defaultConfigFile is looked up in the working directory when --config is
// not given; a missing file is not an error.
const defaultConfigFile = "heatpath.toml"

// fileConfig carries the optional TOML defaults. Zero values mean "not set":
// flags beat config, config beats built-in defaults.
//
//	algorithm = "dijkstra"
//	threshold = 100
//	reach = 2
//	axis = "t"
//	out = "out"
//
//	[marker]
//	radius = 4.0
type fileConfig struct {
	Algorithm string `toml:"algorithm"`
	Threshold int64  `toml:"threshold"`
	Reach     int    `toml:"reach"`
	Axis      string `toml:"axis"`
	Out       string `toml:"out"`
	Marker    struct {
		Radius float64 `toml:"radius"`
	} `toml:"marker"`
}

// loadConfig reads and parses the TOML config at path. When path is empty
// the default file is tried and a missing file yields the zero config;
// an explicitly named file must exist.
func loadConfig(path string) (fileConfig, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigFile
	}

	var cfg fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}
