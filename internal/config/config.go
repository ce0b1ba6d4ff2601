// Package config loads the run configuration for the demo codec CLI.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config describes a single invocation of the demo CLI: where its fixture
// bytes live, an operation name (see RunConfig.Operation), and how to log
// the run.
type Config struct {
	Run     RunConfig `yaml:"run"`
	Logging LogConfig `yaml:"logging"`
}

// RunConfig selects the operation the CLI exercises.
type RunConfig struct {
	// Operation names a protocol operation dictionary entry, e.g.
	// "bindRequest" or "searchResultEntry". It is loaded and kept here
	// only: the decode and roundtrip commands do not read it, and always
	// decode whatever the fixture contains.
	Operation string `yaml:"operation"`
	// Fixture is a path to a file holding hex-encoded BER bytes, one
	// message per line.
	Fixture string `yaml:"fixture"`
}

// LogConfig mirrors logging.Config's fields so the YAML document and the
// logger can be constructed from the same struct tags.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load reads and parses the YAML configuration file at path, applying
// defaults for any field the document omits and validating the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return nil, errors.Wrapf(errs[0], "invalid config %s", path)
	}

	return cfg, nil
}
