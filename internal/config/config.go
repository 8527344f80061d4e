// Package config loads and validates harvester configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Headless HeadlessConfig `mapstructure:"headless"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// HTTPConfig configures the plain HTTP fetch path.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// HeadlessConfig configures the headless rendering subsystem.
type HeadlessConfig struct {
	NavTimeoutSeconds  int `mapstructure:"nav_timeout_seconds"`
	SettleDelaySeconds int `mapstructure:"settle_delay_seconds"`
}

// SourcesConfig holds the per-site scraping policy data. Denylists, caps,
// and title-length thresholds are heuristics that drift with the target
// sites; they live here so tuning them never touches harvesting code.
type SourcesConfig struct {
	Arbeitnow         APISourceConfig  `mapstructure:"arbeitnow"`
	BerlinStartupJobs CardSourceConfig `mapstructure:"berlinstartupjobs"`
	Job4Good          ScanSourceConfig `mapstructure:"job4good"`
	Turijobs          ScanSourceConfig `mapstructure:"turijobs"`
}

// APISourceConfig configures a JSON API source.
type APISourceConfig struct {
	URL string `mapstructure:"url"`
}

// CardSourceConfig configures an HTML source with stable card markup.
type CardSourceConfig struct {
	URL               string `mapstructure:"url"`
	ContainerSelector string `mapstructure:"container_selector"`
	TitleSelector     string `mapstructure:"title_selector"`
	Cap               int    `mapstructure:"cap"`
}

// ScanSourceConfig configures an HTML source parsed with the generic
// container scan.
type ScanSourceConfig struct {
	URL         string   `mapstructure:"url"`
	Cap         int      `mapstructure:"cap"`
	MinTitleLen int      `mapstructure:"min_title_len"`
	Denylist    []string `mapstructure:"denylist"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RECRUITSCOUT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("http.timeout_seconds", 30)
	v.SetDefault("http.user_agent", "recruitscout/1.0 (+https://github.com/recruitscout/recruitscout)")
	v.SetDefault("headless.nav_timeout_seconds", 30)
	v.SetDefault("headless.settle_delay_seconds", 3)
	v.SetDefault("logging.development", true)

	v.SetDefault("sources.arbeitnow.url", "https://www.arbeitnow.com/api/job-board-api")
	v.SetDefault("sources.berlinstartupjobs.url", "https://berlinstartupjobs.com/engineering/")
	v.SetDefault("sources.berlinstartupjobs.cap", 50)
	v.SetDefault("sources.job4good.url", "https://www.job4good.it/annunci-di-lavoro/")
	v.SetDefault("sources.job4good.cap", 30)
	v.SetDefault("sources.job4good.min_title_len", 15)
	v.SetDefault("sources.job4good.denylist", []string{
		"chi siamo", "privacy", "menu", "candidati", "aziende", "accedi",
		"home", "info", "servizi", "risorse", "formazione", "contatti",
		"job4good", "annunci",
	})
	v.SetDefault("sources.turijobs.url", "https://www.turijobs.com/ofertas-trabajo")
	v.SetDefault("sources.turijobs.cap", 30)
	v.SetDefault("sources.turijobs.min_title_len", 15)
	v.SetDefault("sources.turijobs.denylist", []string{
		"inicia", "registra", "blog", "empleos", "turijobs", "ofertas", "empresa",
	})
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.HTTP.TimeoutSeconds <= 0 {
		return fmt.Errorf("http.timeout_seconds must be > 0")
	}
	if c.Headless.NavTimeoutSeconds <= 0 {
		return fmt.Errorf("headless.nav_timeout_seconds must be > 0")
	}
	if c.Headless.SettleDelaySeconds < 0 {
		return fmt.Errorf("headless.settle_delay_seconds must be >= 0")
	}
	for name, url := range map[string]string{
		"sources.arbeitnow.url":         c.Sources.Arbeitnow.URL,
		"sources.berlinstartupjobs.url": c.Sources.BerlinStartupJobs.URL,
		"sources.job4good.url":          c.Sources.Job4Good.URL,
		"sources.turijobs.url":          c.Sources.Turijobs.URL,
	} {
		if url == "" {
			return fmt.Errorf("%s must be set", name)
		}
	}
	return nil
}

// HTTPTimeout returns the plain-fetch timeout as a duration.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// NavTimeout returns the headless navigation timeout as a duration.
func (c Config) NavTimeout() time.Duration {
	return time.Duration(c.Headless.NavTimeoutSeconds) * time.Second
}

// SettleDelay returns the post-load settle wait as a duration.
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.Headless.SettleDelaySeconds) * time.Second
}
