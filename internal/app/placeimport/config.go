package placeimport

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds place import settings.
type Config struct {
	InputPath     string `yaml:"input_path"     env:"IMPORT_INPUT_PATH"`
	Form          string `yaml:"form"           env:"IMPORT_FORM"`
	DryRun        bool   `yaml:"dry_run"        env:"IMPORT_DRY_RUN"`
	ReuseExisting bool   `yaml:"reuse_existing" env:"IMPORT_REUSE_EXISTING"`
}

// LoadConfig reads import configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("import config: file %s: %w", path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("import config: read %s: %w", path, err)
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("import config: read env: %w", err)
	}

	return &cfg, nil
}
