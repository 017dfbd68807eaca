package am

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.host", DefaultServerHost)
	v.SetDefault("server.port", DefaultServerPort)
	v.SetDefault("server.allowed_origins", []string{
		"http://localhost",
		"http://127.0.0.1",
	})
	v.SetDefault("server.rate_limit_per_second", 20.0)
	v.SetDefault("server.rate_limit_burst", 40)
	v.SetDefault("server.shutdown_timeout_seconds", 5)

	v.SetDefault("display.format", FormatText)
	v.SetDefault("display.color", true)

	v.SetDefault("log.json", false)

	v.SetDefault("console.prompt", "mbti> ")
}

// Defaults returns a Config holding only built-in defaults.
func Defaults() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// defaults always decode; a failure here is a programming error
		panic(fmt.Sprintf("am: decoding defaults: %v", err))
	}
	return cfg
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// ShutdownTimeout returns the graceful shutdown window.
func (s ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(s.ShutdownTimeoutSeconds) * time.Second
}

// WantsJSON reports whether CLI output defaults to JSON.
func (c *Config) WantsJSON() bool {
	return c.Display.Format == FormatJSON
}
