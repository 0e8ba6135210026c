package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	kYaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix = "HUFF_"

	// FileEnv names the environment variable holding an optional YAML
	// config file path.
	FileEnv = EnvPrefix + "CONFIG"

	KeyLogLevel      = "log.level"
	KeyLogFormat     = "log.format"
	KeyLogTimeFormat = "log.timeformat"
	KeyDumpTable     = "dump.table"
)

var defaults = map[string]any{
	KeyLogLevel:      "info",
	KeyLogFormat:     "console",
	KeyLogTimeFormat: time.RFC3339,
	KeyDumpTable:     false,
}

type Conf struct {
	*koanf.Koanf
}

// Load layers the built-in defaults, the YAML file named by HUFF_CONFIG (if
// set), and HUFF_* environment variables, later sources winning.
// HUFF_LOG_LEVEL maps to log.level.
func Load() (*Conf, error) {
	conf := &Conf{Koanf: koanf.New(".")}

	if err := conf.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path := os.Getenv(FileEnv); path != "" {
		if err := conf.Load(file.Provider(path), kYaml.Parser()); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := conf.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	return conf, nil
}

func (c *Conf) Bool(path string, defaultValues ...bool) bool {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.Bool(path)
}

func (c *Conf) String(path string, defaultValues ...string) string {
	if !c.Koanf.Exists(path) && len(defaultValues) > 0 {
		return defaultValues[0]
	}

	return c.Koanf.String(path)
}
