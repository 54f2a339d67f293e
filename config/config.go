// Package config loads the galois YAML configuration: resource limits,
// concurrency, output format and logging.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/galois/cyclotomic"
	"github.com/katalvlaran/galois/lattice"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// DefaultYAML documents every key with its default value.
const DefaultYAML = `# galois configuration
limits:
  # largest modulus n accepted (0 = unbounded)
  max_modulus: 20000
  # largest number of subgroups enumerated per lattice (0 = unbounded)
  max_subgroups: 10000

compute:
  # moduli computed at once by "galois report"
  concurrency: 4

output:
  # text | yaml
  format: text

log:
  verbose: false
`

// Limits bounds the computations.
type Limits struct {
	MaxModulus   int `yaml:"max_modulus"`
	MaxSubgroups int `yaml:"max_subgroups"`
}

// Compute tunes ComputeMany.
type Compute struct {
	Concurrency int `yaml:"concurrency"`
}

// Output selects the report renderer.
type Output struct {
	Format string `yaml:"format"`
}

// Log configures the zap logger of the CLI.
type Log struct {
	Verbose bool `yaml:"verbose"`
}

// Config models the configuration file.
type Config struct {
	Limits  Limits  `yaml:"limits"`
	Compute Compute `yaml:"compute"`
	Output  Output  `yaml:"output"`
	Log     Log     `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Limits: Limits{
			MaxModulus:   cyclotomic.DefaultMaxModulus,
			MaxSubgroups: lattice.DefaultMaxSubgroups,
		},
		Compute: Compute{Concurrency: 4},
		Output:  Output{Format: FormatText},
	}
}

// Parse overlays YAML data on the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if len(data) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("config: decode: %v: %w", err, ErrInvalidConfig)
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads path; an empty path yields Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Validate reports every invalid value at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Limits.MaxModulus < 0 {
		result = multierror.Append(result, fmt.Errorf("limits.max_modulus: %d is negative", c.Limits.MaxModulus))
	}
	if c.Limits.MaxSubgroups < 0 {
		result = multierror.Append(result, fmt.Errorf("limits.max_subgroups: %d is negative", c.Limits.MaxSubgroups))
	}
	if c.Compute.Concurrency < 1 {
		result = multierror.Append(result, fmt.Errorf("compute.concurrency: %d < 1", c.Compute.Concurrency))
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		result = multierror.Append(result, fmt.Errorf("output.format: %q is not text or yaml", c.Output.Format))
	}
	if err := result.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Options translates the limits into cyclotomic options.
func (c Config) Options() []cyclotomic.Option {
	return []cyclotomic.Option{
		cyclotomic.WithMaxModulus(c.Limits.MaxModulus),
		cyclotomic.WithMaxSubgroups(c.Limits.MaxSubgroups),
		cyclotomic.WithConcurrency(c.Compute.Concurrency),
	}
}
