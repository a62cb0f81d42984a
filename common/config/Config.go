package config

import "errors"
import "fmt"
import "io/fs"
import "os"

import "github.com/pelletier/go-toml/v2"

import "github.com/sirgallo/mmh3"


//============================================= Config


// DefaultPath is where the command line tool looks for a config file.
const DefaultPath = ".mmh3.toml"

// Config holds the defaults of the command line tool, every field can be overridden by a flag
type Config struct {
	// Variant: algorithm name, see mmh3.ParseVariant
	Variant string `toml:"variant"`
	// Seed: initial lane value, must fit an unsigned 32 bit integer
	Seed int64 `toml:"seed"`
	// Format: digest representation, see mmh3.ParseFormat
	Format string `toml:"format"`
	// Workers: files hashed at once, 0 for GOMAXPROCS
	Workers int `toml:"workers"`
	// Include: doublestar patterns used when a directory is passed to sum
	Include []string `toml:"include"`
}

// Settings is a validated Config
type Settings struct {
	Variant mmh3.Variant
	Seed uint32
	Format mmh3.Format
	Workers int
	Include []string
}


// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Variant: "x64_128",
		Seed: 0,
		Format: "hex",
		Workers: 0,
		Include: []string{ "**/*" },
	}
}

// Load
//	Read a TOML config file over the defaults. A missing file is not an error.
//
// Parameters:
//	path: the config file
//
// Returns:
//	The merged configuration or a decode error naming the file
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, readErr := os.ReadFile(path)
	if errors.Is(readErr, fs.ErrNotExist) { return cfg, nil }
	if readErr != nil { return nil, readErr }

	decodeErr := toml.Unmarshal(data, cfg)
	if decodeErr != nil { return nil, fmt.Errorf("decoding %s: %w", path, decodeErr) }

	return cfg, nil
}

// Encode renders cfg as TOML.
func (cfg *Config) Encode() ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate
//	Resolve names and check the seed range.
//
// Returns:
//	The typed settings, or an error wrapping mmh3.ErrInvalidArgument
func (cfg *Config) Validate() (*Settings, error) {
	variant, variantErr := mmh3.ParseVariant(cfg.Variant)
	if variantErr != nil { return nil, variantErr }

	format, formatErr := mmh3.ParseFormat(cfg.Format)
	if formatErr != nil { return nil, formatErr }

	seed, seedErr := mmh3.ValidateSeed(cfg.Seed)
	if seedErr != nil { return nil, seedErr }

	if cfg.Workers < 0 { return nil, fmt.Errorf("%w: workers %d is negative", mmh3.ErrInvalidArgument, cfg.Workers) }

	return &Settings{
		Variant: variant,
		Seed: seed,
		Format: format,
		Workers: cfg.Workers,
		Include: cfg.Include,
	}, nil
}
