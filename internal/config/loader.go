package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/akoreman/Monte-Carlo-Ising-Model/internal/errs"
)

// EnvPrefix prefixes every environment variable read as configuration.
const EnvPrefix = "ISINGPLOT_"

// FileNames are searched in the working directory when no config file is given.
var FileNames = []string{"isingplot.yaml", "isingplot.yml"}

// flagKeys maps flag names whose config key is not the snake_case flag name.
var flagKeys = map[string]string{
	"row":  "lattice_row",
	"size": "lattice_size",
}

// findConfigFile returns the explicit path, or the first default file that exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range FileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// envValue turns ISINGPLOT_LATTICE_SIZE=8 into lattice_size=8. Sizes are
// given comma separated.
func envValue(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	if key != "sizes" {
		return key, value
	}
	var sizes []int
	for _, field := range strings.Split(value, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			// Left as text so decoding reports it.
			return key, value
		}
		sizes = append(sizes, n)
	}
	return key, sizes
}

// Load resolves the configuration. Precedence, highest first: flags that were
// explicitly set, environment variables, the config file, defaults.
// flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errs.New(errs.ErrConfig, "config", "", "failed to load defaults", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, errs.New(errs.ErrConfig, "config", used, "error reading config file", err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envValue), nil); err != nil {
		return nil, errs.New(errs.ErrConfig, "config", "", "failed to load env vars", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if mapped, ok := flagKeys[f.Name]; ok {
				key = mapped
			}
			if _, known := defaults()[key]; !known {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, errs.New(errs.ErrConfig, "config", "", "failed to load flags", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errs.New(errs.ErrConfig, "config", used, "unable to decode config", err)
	}
	cfg.File = used
	return &cfg, nil
}
