package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the file-backed configuration for the generate command. Flags
// given on the command line take precedence over values loaded here.
type Config struct {
	Include     []string `yaml:"include" toml:"include" validate:"omitempty,dive,min=1"`
	Exclude     []string `yaml:"exclude" toml:"exclude" validate:"omitempty,dive,min=1"`
	TemplateDir string   `yaml:"template_dir" toml:"template_dir"`
}

// Probe order when no explicit --config path is given.
var configFiles = []string{".docmark.yml", ".docmark.yaml", "docmark.toml"}

// loadConfig reads configuration from path. An empty path probes the working
// directory for the well-known config filenames; finding none is not an
// error. An explicit path that does not exist is.
func loadConfig(path string) (Config, error) {
	var cfg Config

	if path == "" {
		for _, name := range configFiles {
			if _, err := os.Stat(name); err == nil {
				path = name
				break
			}
		}
		if path == "" {
			return cfg, nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if strings.HasSuffix(path, ".toml") {
		err = toml.Unmarshal(data, &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// mergePatterns prefers patterns given on the command line over patterns
// from the config file.
func mergePatterns(flag, file []string) []string {
	if len(flag) > 0 {
		return flag
	}
	if len(file) > 0 {
		return file
	}
	return nil
}
