// Package config loads server configuration from defaults, an optional YAML
// file, and COVERA_* environment variables, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. COVERA_ADDR.
const EnvPrefix = "COVERA"

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `mapstructure:"addr"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	StrictMode      bool          `mapstructure:"strict_mode"`
	ReportCacheTTL  time.Duration `mapstructure:"report_cache_ttl"`
	RateLimitRPS    float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	AuditBuffer     int           `mapstructure:"audit_buffer"`
	Risk            Risk          `mapstructure:"risk"`
}

// Risk parameterizes the high-risk report.
type Risk struct {
	WindowDays            int     `mapstructure:"window_days"`
	RecentClaimsThreshold int     `mapstructure:"recent_claims_threshold"`
	AmountRatio           float64 `mapstructure:"amount_ratio"`
}

var defaults = map[string]any{
	"addr":                         ":8080",
	"log_level":                    "info",
	"log_format":                   "json",
	"strict_mode":                  false,
	"report_cache_ttl":             "30s",
	"rate_limit_rps":               50,
	"rate_limit_burst":             100,
	"shutdown_timeout":             "10s",
	"audit_buffer":                 1024,
	"risk.window_days":             365,
	"risk.recent_claims_threshold": 3,
	"risk.amount_ratio":            0.8,
}

// SetDefaults registers every known key on v so AutomaticEnv can resolve it.
func SetDefaults(v *viper.Viper) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
}

// Load resolves configuration through v. An empty path skips the config file.
func Load(v *viper.Viper, path string) (Server, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Server{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return Server{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c Server) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr is required"))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		errs = append(errs, fmt.Errorf("log_format must be json or text, got %q", c.LogFormat))
	}
	if c.ReportCacheTTL < 0 {
		errs = append(errs, errors.New("report_cache_ttl must not be negative"))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, errors.New("rate_limit_burst must be at least 1 when rate limiting is on"))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New("shutdown_timeout must be positive"))
	}
	if c.AuditBuffer < 1 {
		errs = append(errs, errors.New("audit_buffer must be at least 1"))
	}
	if c.Risk.WindowDays < 0 {
		errs = append(errs, errors.New("risk.window_days must not be negative"))
	}
	if c.Risk.RecentClaimsThreshold < 0 {
		errs = append(errs, errors.New("risk.recent_claims_threshold must not be negative"))
	}
	if c.Risk.AmountRatio < 0 {
		errs = append(errs, errors.New("risk.amount_ratio must not be negative"))
	}
	return errors.Join(errs...)
}

// ParseLevel maps debug|info|warn|error onto slog levels.
func ParseLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}
