package cli

import (
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
	"github.com/pkg/errors"
)

// loadYAML is a [kong.ConfigurationLoader] that reads a flat YAML mapping
// of flag names to values.
func loadYAML(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	cfg := make(config, len(m))
	for k, v := range m {
		// Kong parses numbers from strings
		switch n := v.(type) {
		case int:
			cfg[k] = strconv.Itoa(n)
		case int64:
			cfg[k] = strconv.FormatInt(n, 10)
		case uint64:
			cfg[k] = strconv.FormatUint(n, 10)
		case float64:
			cfg[k] = strconv.FormatFloat(n, 'f', -1, 64)
		default:
			cfg[k] = v
		}
	}
	return cfg, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}
