package am

import (
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/teranos/mbti/errors"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Host == "" {
		return errors.New("server.host cannot be empty")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.Newf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}

	// 0 disables rate limiting; a positive rate needs room for at least one request
	if c.Server.RateLimitPerSecond < 0 {
		return errors.Newf("server.rate_limit_per_second must be >= 0, got %f", c.Server.RateLimitPerSecond)
	}
	if c.Server.RateLimitPerSecond > 0 && c.Server.RateLimitBurst < 1 {
		return errors.Newf("server.rate_limit_burst must be >= 1 when rate limiting is enabled, got %d", c.Server.RateLimitBurst)
	}
	if c.Server.ShutdownTimeoutSeconds < 0 {
		return errors.Newf("server.shutdown_timeout_seconds must be >= 0, got %d", c.Server.ShutdownTimeoutSeconds)
	}

	switch c.Display.Format {
	case FormatText, FormatJSON:
	default:
		return errors.WithHint(
			errors.Newf("display.format must be %q or %q, got %q", FormatText, FormatJSON, c.Display.Format),
			"set display.format = \"text\" in am.toml")
	}

	if c.Console.Prompt == "" {
		return errors.New("console.prompt cannot be empty")
	}

	return nil
}

// CheckUnknownKeys decodes a config file strictly and returns keys that do
// not correspond to any Config field, sorted. Viper itself ignores them.
func CheckUnknownKeys(path string) ([]string, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	var unknown []string
	for _, key := range md.Undecoded() {
		unknown = append(unknown, key.String())
	}
	sort.Strings(unknown)
	return unknown, nil
}
