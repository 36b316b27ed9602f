/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

package cache

import (
	"fmt"
	"time"

	"github.com/acronis/go-appkit/config"
)

const cfgDefaultKeyPrefix = "cache"

const (
	cfgKeyCacheMaxEntries      = "maxEntries"
	cfgKeyCacheDefaultTTL      = "defaultTTL"
	cfgKeyCacheCleanupInterval = "cleanupInterval"
	cfgKeyCacheMaxKeyLength    = "maxKeyLength"
	cfgKeyCacheMaxValueSize    = "maxValueSize"
)

const (
	defaultCacheMaxEntries      = 1000
	defaultCacheDefaultTTL      = 5 * time.Minute
	defaultCacheCleanupInterval = time.Second
	defaultCacheMaxKeyLength    = 256
	defaultCacheMaxValueSize    = config.ByteSize(1024 * 1024)
)

// Config represents a set of configuration parameters for the cache Store
// and its periodic cleanup. The Store never mutates or re-reads these values
// after construction.
type Config struct {
	// MaxEntries is the maximum number of entries the store can hold.
	MaxEntries int `mapstructure:"maxEntries" yaml:"maxEntries" json:"maxEntries"`

	// DefaultTTL is applied to entries stored without an explicit TTL. 0 means no expiration.
	DefaultTTL config.TimeDuration `mapstructure:"defaultTTL" yaml:"defaultTTL" json:"defaultTTL"`

	// CleanupInterval is the cadence of the background sweep of expired entries.
	CleanupInterval config.TimeDuration `mapstructure:"cleanupInterval" yaml:"cleanupInterval" json:"cleanupInterval"`

	// MaxKeyLength is the maximum allowed key length in bytes.
	MaxKeyLength int `mapstructure:"maxKeyLength" yaml:"maxKeyLength" json:"maxKeyLength"`

	// MaxValueSize is the maximum allowed value size in bytes.
	MaxValueSize config.ByteSize `mapstructure:"maxValueSize" yaml:"maxValueSize" json:"maxValueSize"`

	keyPrefix string
}

var _ config.Config = (*Config)(nil)
var _ config.KeyPrefixProvider = (*Config)(nil)

// ConfigOption is a type for functional options for the NewConfig.
type ConfigOption func(*configOptions)

type configOptions struct {
	keyPrefix string
}

// WithKeyPrefix returns a ConfigOption that sets a key prefix for parsing configuration parameters.
func WithKeyPrefix(keyPrefix string) ConfigOption {
	return func(o *configOptions) {
		o.keyPrefix = keyPrefix
	}
}

// NewConfig creates a new instance of the Config.
func NewConfig(options ...ConfigOption) *Config {
	opts := configOptions{keyPrefix: cfgDefaultKeyPrefix}
	for _, opt := range options {
		opt(&opts)
	}
	return &Config{keyPrefix: opts.keyPrefix}
}

// NewDefaultConfig creates a new instance of the Config with default values.
func NewDefaultConfig(options ...ConfigOption) *Config {
	opts := configOptions{keyPrefix: cfgDefaultKeyPrefix}
	for _, opt := range options {
		opt(&opts)
	}
	return &Config{
		keyPrefix:       opts.keyPrefix,
		MaxEntries:      defaultCacheMaxEntries,
		DefaultTTL:      config.TimeDuration(defaultCacheDefaultTTL),
		CleanupInterval: config.TimeDuration(defaultCacheCleanupInterval),
		MaxKeyLength:    defaultCacheMaxKeyLength,
		MaxValueSize:    defaultCacheMaxValueSize,
	}
}

// KeyPrefix returns a key prefix with which all configuration parameters should be presented.
// Implements config.KeyPrefixProvider interface.
func (c *Config) KeyPrefix() string {
	if c.keyPrefix == "" {
		return cfgDefaultKeyPrefix
	}
	return c.keyPrefix
}

// SetProviderDefaults sets default configuration values for the cache in config.DataProvider.
// Implements config.Config interface.
func (c *Config) SetProviderDefaults(dp config.DataProvider) {
	dp.SetDefault(cfgKeyCacheMaxEntries, defaultCacheMaxEntries)
	dp.SetDefault(cfgKeyCacheDefaultTTL, defaultCacheDefaultTTL)
	dp.SetDefault(cfgKeyCacheCleanupInterval, defaultCacheCleanupInterval)
	dp.SetDefault(cfgKeyCacheMaxKeyLength, defaultCacheMaxKeyLength)
	dp.SetDefault(cfgKeyCacheMaxValueSize, uint64(defaultCacheMaxValueSize))
}

// Set sets cache configuration values from config.DataProvider.
// Implements config.Config interface.
func (c *Config) Set(dp config.DataProvider) error {
	var err error

	if c.MaxEntries, err = dp.GetInt(cfgKeyCacheMaxEntries); err != nil {
		return err
	}
	if c.MaxEntries < 0 {
		return dp.WrapKeyErr(cfgKeyCacheMaxEntries, fmt.Errorf("must be greater or equal to 0"))
	}

	var dur time.Duration
	if dur, err = dp.GetDuration(cfgKeyCacheDefaultTTL); err != nil {
		return err
	}
	if dur < 0 {
		return dp.WrapKeyErr(cfgKeyCacheDefaultTTL, fmt.Errorf("must be greater or equal to 0"))
	}
	c.DefaultTTL = config.TimeDuration(dur)

	if dur, err = dp.GetDuration(cfgKeyCacheCleanupInterval); err != nil {
		return err
	}
	if dur <= 0 {
		return dp.WrapKeyErr(cfgKeyCacheCleanupInterval, fmt.Errorf("must be greater than 0"))
	}
	c.CleanupInterval = config.TimeDuration(dur)

	if c.MaxKeyLength, err = dp.GetInt(cfgKeyCacheMaxKeyLength); err != nil {
		return err
	}
	if c.MaxKeyLength <= 0 {
		return dp.WrapKeyErr(cfgKeyCacheMaxKeyLength, fmt.Errorf("must be greater than 0"))
	}

	var size config.ByteSize
	if size, err = dp.GetSizeInBytes(cfgKeyCacheMaxValueSize); err != nil {
		return err
	}
	if size == 0 {
		return dp.WrapKeyErr(cfgKeyCacheMaxValueSize, fmt.Errorf("must be greater than 0"))
	}
	c.MaxValueSize = size

	return nil
}
