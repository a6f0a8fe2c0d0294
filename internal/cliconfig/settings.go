// Package cliconfig loads the operating parameters shared by the CLI and
// the reload service: which collision policy to default to, which file
// to watch, and whether to run in debug mode. Settings come from an
// optional YAML file, with command-line flags overriding file values.
package cliconfig

import (
	"flag"
	"os"

	"dario.cat/mergo"
	"github.com/goccy/go-yaml"
)

// Settings holds the values both cmd/stormcfg and confwatch need to
// start up. Zero values mean "unset" so mergo's default overwrite
// rules only apply flag values that were actually provided.
type Settings struct {
	Policy  string `yaml:"policy"`
	Watch   string `yaml:"watch"`
	Debug   bool   `yaml:"debug"`
	Metrics string `yaml:"metrics_addr"`
}

// Default returns the built-in fallback settings, used when no file and
// no flags override a field.
func Default() Settings {
	return Settings{Policy: "throw", Watch: "", Debug: false, Metrics: ""}
}

// LoadFile decodes a YAML settings file. A missing file is not an error;
// it returns the zero Settings so the caller's defaults stand.
func LoadFile(path string) (Settings, error) {
	var s Settings
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return s, err
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, err
	}
	return s, nil
}

// BindFlags registers fs flags that, when set, override the
// corresponding Settings field once parsed.
func BindFlags(fs *flag.FlagSet, s *Settings) {
	fs.StringVar(&s.Policy, "policy", s.Policy, "collision policy: keep|overwrite|throw")
	fs.StringVar(&s.Watch, "watch", s.Watch, "file to watch for changes")
	fs.BoolVar(&s.Debug, "debug", s.Debug, "enable debug logging")
	fs.StringVar(&s.Metrics, "metrics-addr", s.Metrics, "address to serve Prometheus metrics on")
}

// Resolve merges file-loaded settings as the base and flag-parsed
// settings as the override: any non-zero field in over wins.
func Resolve(base, over Settings) (Settings, error) {
	result := base
	if err := mergo.Merge(&result, over, mergo.WithOverride); err != nil {
		return Settings{}, err
	}
	return result, nil
}
