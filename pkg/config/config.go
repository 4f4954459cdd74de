// Package config loads outmux's ambient configuration: fallback paths for
// the file destinations, the chain continuation mode, and the default Host
// color sequence. Sources merge in order: embedded defaults, the user config
// file, then OUTMUX_* environment variables.
package config

import (
	_ "embed"
	goerrors "errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/outmux/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Bindings are the ambient fallback paths used when an invocation does not
// pass one explicitly. Read-only from the dispatch engine's perspective.
type Bindings struct {
	Append  string `koanf:"append"`
	Log     string `koanf:"log"`
	Replace string `koanf:"replace"`
	Xml     string `koanf:"xml"`
}

// Chain holds the chained-log continuation settings.
type Chain struct {
	Mode string `koanf:"mode"`
}

// Host holds screen-rendering defaults.
type Host struct {
	Colors []string `koanf:"colors"`
}

// Config is the merged ambient configuration.
type Config struct {
	Paths Bindings `koanf:"paths"`
	Chain Chain    `koanf:"chain"`
	Host  Host     `koanf:"host"`
}

// Load merges defaults, the config file, and environment overrides.
// configFile may be empty, in which case the XDG config location is tried; a
// missing file is not an error, a malformed one is.
func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	path := configFile
	if path == "" {
		path = filepath.Join(xdg.ConfigHome, "outmux", "outmux.toml")
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to load config from %s", path)
		}
	} else if configFile != "" {
		return nil, errors.Newf(errors.ErrConfigLoad, "config file %s does not exist", configFile)
	}

	// OUTMUX_PATHS_LOG=/var/log/out.log style overrides.
	envProvider := env.Provider("OUTMUX_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "OUTMUX_")), "_", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal config")
	}
	return &cfg, nil
}

// rawBytesProvider implements koanf's provider interface for raw bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}
