package am

// Config represents the mbti configuration ("I am ...")
type Config struct {
	Server  ServerConfig  `mapstructure:"server" toml:"server" json:"server" yaml:"server"`
	Display DisplayConfig `mapstructure:"display" toml:"display" json:"display" yaml:"display"`
	Log     LogConfig     `mapstructure:"log" toml:"log" json:"log" yaml:"log"`
	Console ConsoleConfig `mapstructure:"console" toml:"console" json:"console" yaml:"console"`
}

// ServerConfig configures the HTTP adapter
type ServerConfig struct {
	Host                   string   `mapstructure:"host" toml:"host" json:"host" yaml:"host"`
	Port                   int      `mapstructure:"port" toml:"port" json:"port" yaml:"port"`
	AllowedOrigins         []string `mapstructure:"allowed_origins" toml:"allowed_origins" json:"allowed_origins" yaml:"allowed_origins"`
	RateLimitPerSecond     float64  `mapstructure:"rate_limit_per_second" toml:"rate_limit_per_second" json:"rate_limit_per_second" yaml:"rate_limit_per_second"` // 0 = unlimited
	RateLimitBurst         int      `mapstructure:"rate_limit_burst" toml:"rate_limit_burst" json:"rate_limit_burst" yaml:"rate_limit_burst"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds" json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds"`
}

// DisplayConfig configures CLI output
type DisplayConfig struct {
	Format string `mapstructure:"format" toml:"format" json:"format" yaml:"format"` // text or json
	Color  bool   `mapstructure:"color" toml:"color" json:"color" yaml:"color"`
}

// LogConfig configures the global logger
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json" json:"json" yaml:"json"`
}

// ConsoleConfig configures the interactive prompt
type ConsoleConfig struct {
	Prompt string `mapstructure:"prompt" toml:"prompt" json:"prompt" yaml:"prompt"`
}

// Server defaults
const (
	DefaultServerHost = "127.0.0.1"
	DefaultServerPort = 8716
)

// Display formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Config file locations
const (
	ConfigFileName = "am.toml"
	EnvPrefix      = "MBTI"
	SystemConfig   = "/etc/mbti/am.toml"
	UserConfigDir  = ".mbti"
)
