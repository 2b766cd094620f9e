package pulledge

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	// InvalidPointer is the default pointer id used when no pointer is tracked.
	InvalidPointer = -1
	// DefaultResetDuration is the time needed by the drag view to return to its resting position.
	DefaultResetDuration = 300 * time.Millisecond
	// DefaultDampingRatio is applied to the scroll delta while the drag view
	// is pulled further away from its resting position.
	DefaultDampingRatio = 0.5
)

var (
	ErrInvalidDampingRatio = errors.New("damping ratio should be in the (0, 1] range")
	ErrInvalidDuration     = errors.New("reset duration cannot be negative")
	ErrUnknownEasing       = errors.New("unknown easing function")
)

// Duration is a time.Duration which is encoded as a human readable string (ex. "300ms").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds the tunable parameters of the pull edge behavior.
type Config struct {
	DampingRatio   float64  `toml:"damping_ratio"`
	ResetDuration  Duration `toml:"reset_duration"`
	Easing         string   `toml:"easing"`
	InvalidPointer int      `toml:"invalid_pointer"`
}

// DefaultConfig returns the configuration used when nothing else is provided.
func DefaultConfig() *Config {
	return &Config{
		DampingRatio:   DefaultDampingRatio,
		ResetDuration:  Duration{DefaultResetDuration},
		Easing:         EasingAccelerateDecelerate,
		InvalidPointer: InvalidPointer,
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.DampingRatio <= 0 || c.DampingRatio > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidDampingRatio, c.DampingRatio)
	}
	if c.ResetDuration.Duration < 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidDuration, c.ResetDuration)
	}
	if _, err := EasingByName(c.Easing); err != nil {
		return err
	}
	return nil
}

// DecodeConfig reads a TOML configuration. Missing keys keep their default value.
func DecodeConfig(r io.Reader) (*Config, error) {
	conf := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(conf); err != nil {
		return nil, fmt.Errorf("could not decode the config file: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// LoadConfig loads the TOML configuration file found at path.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open the config file: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// Encode writes the configuration in TOML format.
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("could not encode the config: %w", err)
	}
	return nil
}
