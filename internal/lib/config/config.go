package config

import (
	"flag"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env        string     `yaml:"env" env-default:"local"`
	HTTPServer HttpServer `yaml:"http_server" env-required:"true"`
	GitHub     GitHub     `yaml:"github" env-required:"true"`
	Dashboard  Dashboard  `yaml:"dashboard"`
}

type HttpServer struct {
	Address      string        `yaml:"address" env-default:"localhost:8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env-default:"5s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env-default:"10s"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type GitHub struct {
	BaseURL string `yaml:"base_url" env-default:"https://api.github.com"`
	Org     string `yaml:"org" env-required:"true"`
	Viewer  string `yaml:"viewer"`
	Token   string `env:"GITHUB_TOKEN"`
}

type Dashboard struct {
	StaleThresholdDays  int           `yaml:"stale_threshold_days" env-default:"7"`
	PrioritizeMyReviews bool          `yaml:"prioritize_my_reviews" env-default:"true"`
	ShowDrafts          bool          `yaml:"show_drafts" env-default:"false"`
	PinnedFirst         bool          `yaml:"pinned_first" env-default:"true"`
	RefreshInterval     time.Duration `yaml:"refresh_interval" env-default:"5m"`
}

// MustLoad panics if config can not be found.
func MustLoad() *Config {
	configPath := fetchConfigPath()
	if configPath == "" {
		panic("config path is required")
	}

	if _, err := os.Stat(configPath); err != nil {
		panic("config file does not exist:" + configPath)
	}

	var cfg Config
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		panic("failed to read config: " + err.Error())
	}

	// Recognized threshold range is 1-30 days; anything outside falls back
	// to the default.
	if cfg.Dashboard.StaleThresholdDays < 1 || cfg.Dashboard.StaleThresholdDays > 30 {
		cfg.Dashboard.StaleThresholdDays = 7
	}

	return &cfg
}

// fetchConfigPath fetches config path from cmd flag or environment variable.
// flag > env > default.
// default = "".
func fetchConfigPath() string {
	var path string

	flag.StringVar(&path, "config", "", "Path to the configuration file")
	flag.Parse()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}

	return path
}
