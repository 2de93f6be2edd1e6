package lifesrc

import (
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config file from path and merges it onto
// DefaultConfig, following smilemakc-mbflow's config.go convention of
// loading into a struct that already carries sane zero-value defaults.
// It does not call Validate; callers combine LoadConfig with
// Config.Validate so a caller that only wants defaults can skip the
// file read.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, configErrorf(ErrConfigIO, "reading config %q: %v", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, configErrorf(ErrConfigIO, "parsing config %q: %v", path, err)
	}
	return cfg, nil
}
