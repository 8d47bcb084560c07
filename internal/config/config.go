// Package config provides configuration management for the trade journal.
package config

// Config represents the complete application configuration
type Config struct {
	App     AppConfig     `mapstructure:"app" validate:"required"`
	Source  SourceConfig  `mapstructure:"source" validate:"required"`
	HTTP    HTTPConfig    `mapstructure:"http" validate:"required"`
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics" validate:"required"`
	Refresh RefreshConfig `mapstructure:"refresh"`
}

// AppConfig represents application-level configuration
type AppConfig struct {
	Name        string `mapstructure:"name" validate:"required"`
	Environment string `mapstructure:"environment" validate:"required,environment"`
	LogLevel    string `mapstructure:"log_level" validate:"required,loglevel"`
}

// SourceConfig describes where journal exports come from. At least one
// of SummaryPath and SummaryURL must be set; FillsPath is optional.
type SourceConfig struct {
	SummaryPath     string `mapstructure:"summary_path"`
	FillsPath       string `mapstructure:"fills_path"`
	SummaryURL      string `mapstructure:"summary_url" validate:"omitempty,url"`
	Token           string `mapstructure:"token"`
	CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds" validate:"gte=0"`
}

// HTTPConfig represents the remote fetch client configuration
type HTTPConfig struct {
	TimeoutSeconds     int     `mapstructure:"timeout_seconds" validate:"required,gt=0"`
	MaxRetries         int     `mapstructure:"max_retries" validate:"gte=0"`
	RetryWaitMinMillis int     `mapstructure:"retry_wait_min_millis" validate:"required,gt=0"`
	RetryWaitMaxMillis int     `mapstructure:"retry_wait_max_millis" validate:"required,gt=0"`
	RequestsPerSecond  float64 `mapstructure:"requests_per_second" validate:"required,gt=0"`
}

// ServerConfig represents the API server configuration
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"required,min=1,max=65535"`
}

// MetricsConfig represents metrics and monitoring configuration
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required"`
}

// RefreshConfig represents the scheduled refresh configuration
type RefreshConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Cron    string `mapstructure:"cron"`
}

// IsDevelopment checks if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

// IsStaging checks if the application is running in staging mode
func (c *Config) IsStaging() bool {
	return c.App.Environment == "staging"
}

// IsProduction checks if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// HasRemoteSource reports whether a remote export endpoint is
// configured.
func (c *Config) HasRemoteSource() bool {
	return c.Source.SummaryURL != ""
}
