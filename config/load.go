package config

import (
	"encoding/json"
	"os"

	"github.com/quantralabs/quantra/logger"
)

// Load reads numeric overrides from a local json file on top of the
// calibrated defaults, so a deployment can retune thresholds without a
// rebuild. Fields absent from the file keep their default values.
func Load(file string) (Numerics, error) {
	cfg := DefaultNumerics()
	f, err := os.Open(file)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, err
	}
	logger.Debugf("loaded numeric overrides from %s\n", file)
	return cfg, nil
}
