package aabb

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/setanarut/aabb/bitset"
	"gopkg.in/yaml.v3"
)

// Default capacities used when a Config field is zero.
const (
	DefaultSlotCount    = 128
	DefaultBucketCount  = 128
	DefaultContactCount = 128
)

// Config sizes a Space. All capacities are fixed for the lifetime of the
// space and are rounded up to a multiple of 32.
type Config struct {
	// SlotCount is the maximum number of live colliders, at most 1024.
	SlotCount int `yaml:"slot_count"`
	// BucketCount is the number of spatial hash buckets. More buckets trade
	// memory for fewer false positives in the broad phase.
	BucketCount int `yaml:"bucket_count"`
	// ContactCount is the maximum number of open trigger contacts, at most 1024.
	ContactCount int `yaml:"contact_count"`
	// Lenient turns capacity violations into logged no-ops instead of panics.
	Lenient bool `yaml:"lenient"`
	// LogLevel is used when Logger is nil: debug, info, warn or error.
	// An empty LogLevel with a nil Logger disables logging.
	LogLevel string `yaml:"log_level"`
	// Logger receives engine records. Not serialized.
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns the default capacities with logging disabled.
func DefaultConfig() Config {
	return Config{
		SlotCount:    DefaultSlotCount,
		BucketCount:  DefaultBucketCount,
		ContactCount: DefaultContactCount,
	}
}

// ParseConfig decodes a YAML config over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("aabb: load %s: %w", filename, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("aabb: unmarshal %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate reports capacities the engine cannot honor.
func (c Config) Validate() error {
	n := c.normalized()
	switch {
	case c.SlotCount < 0, c.BucketCount < 0, c.ContactCount < 0:
		return fmt.Errorf("%w: negative count", ErrInvalidCapacity)
	case n.SlotCount > bitset.MaxCapacity:
		return fmt.Errorf("%w: slot_count %d exceeds %d", ErrInvalidCapacity, c.SlotCount, bitset.MaxCapacity)
	case n.ContactCount > bitset.MaxCapacity:
		return fmt.Errorf("%w: contact_count %d exceeds %d", ErrInvalidCapacity, c.ContactCount, bitset.MaxCapacity)
	}
	return nil
}

// normalized fills defaults and rounds every count up to a multiple of 32.
func (c Config) normalized() Config {
	if c.SlotCount == 0 {
		c.SlotCount = DefaultSlotCount
	}
	if c.BucketCount == 0 {
		c.BucketCount = DefaultBucketCount
	}
	if c.ContactCount == 0 {
		c.ContactCount = DefaultContactCount
	}
	c.SlotCount = bitset.RoundCapacity(c.SlotCount)
	c.BucketCount = bitset.RoundCapacity(c.BucketCount)
	c.ContactCount = bitset.RoundCapacity(c.ContactCount)
	if c.Logger == nil {
		if c.LogLevel == "" {
			c.Logger = NoopLogger()
		} else {
			c.Logger = NewTextLogger(ParseLevel(c.LogLevel))
		}
	}
	return c
}
