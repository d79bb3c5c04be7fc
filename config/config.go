package config

import (
	"fmt"
	"time"

	"github.com/reusedev/newsletter-hub/internal/consts"
	"github.com/reusedev/newsletter-hub/tools"
	"gopkg.in/yaml.v3"
)

var GConfig = Default()

// Init loads data over the defaults. Empty data keeps the defaults.
func Init(data []byte) {
	GConfig = tools.PanicOnError(Load(data))
}

func Load(data []byte) (*Config, error) {
	cfg := Default()
	if len(data) != 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}
	if err := cfg.Verify(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		LogLevel:      "info",
		LogMaxSize:    10,
		LogMaxBackups: 3,
		LogMaxAge:     7,
		Newsletter: Newsletter{
			Name:        consts.DefaultNewsletterName,
			Message:     consts.DefaultMessage,
			Subscribers: consts.DefaultSubscribers(),
			InboxTTL:    consts.DefaultInboxTTL,
		},
	}
}

type Config struct {
	LogLevel      string `yaml:"log_level"`
	LogFile       string `yaml:"log_file"`
	LogMaxSize    int    `yaml:"log_max_size"`
	LogMaxBackups int    `yaml:"log_max_backups"`
	LogMaxAge     int    `yaml:"log_max_age"`
	Newsletter    `yaml:"newsletter"`
}

func (c *Config) Verify() error {
	if c.Newsletter.Message == "" {
		return fmt.Errorf("newsletter.message must not be empty")
	}
	for i, name := range c.Newsletter.Subscribers {
		if name == "" {
			return fmt.Errorf("newsletter.subscribers[%d] must not be empty", i)
		}
	}
	ttl, err := time.ParseDuration(c.Newsletter.InboxTTL)
	if err != nil {
		return fmt.Errorf("newsletter.inbox_ttl: %w", err)
	}
	if ttl <= 0 {
		return fmt.Errorf("newsletter.inbox_ttl must be positive")
	}
	return nil
}

type Newsletter struct {
	Name           string   `yaml:"name"`
	Message        string   `yaml:"message"`
	Subscribers    []string `yaml:"subscribers"`
	FaultIsolation bool     `yaml:"fault_isolation"`
	InboxTTL       string   `yaml:"inbox_ttl"`
}

// InboxTTLDuration is only meaningful after Verify.
func (n Newsletter) InboxTTLDuration() time.Duration {
	d, _ := time.ParseDuration(n.InboxTTL)
	return d
}
