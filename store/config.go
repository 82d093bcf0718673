package store

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config is the walker's input configuration.
type Config struct {
	StoreDirectory string `json:"store_directory"`
}

// ParseConfig decodes a JSON configuration document. Anything that is not
// strict JSON is rejected.
func ParseConfig(data []byte) (Config, error) {
	var raw struct {
		StoreDirectory *string `json:"store_directory"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("parsing configuration: %w", err)
	}
	if raw.StoreDirectory == nil || *raw.StoreDirectory == "" {
		return Config{}, ErrMissingStoreDirectory
	}
	return Config{StoreDirectory: *raw.StoreDirectory}, nil
}

// LoadConfig reads and parses the configuration file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
