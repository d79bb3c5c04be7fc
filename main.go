package main

import (
	"flag"
	"io"
	"os"

	"github.com/reusedev/newsletter-hub/config"
	"github.com/reusedev/newsletter-hub/internal/modules/cache"
	"github.com/reusedev/newsletter-hub/internal/modules/logs"
	"github.com/reusedev/newsletter-hub/internal/modules/newsletter"
	"github.com/reusedev/newsletter-hub/internal/modules/observer"
	"github.com/reusedev/newsletter-hub/tools"
)

var (
	configPath string
)

func init() {
	flag.StringVar(&configPath, "config", "", "optional config file path")
}

func main() {
	flag.Parse()
	var data []byte
	if configPath != "" {
		data = tools.PanicOnError(tools.ReadFile(configPath))
	}
	config.Init(data)
	logs.InitLogger()
	if err := run(config.GConfig, os.Stdout); err != nil {
		logs.Logger.Error().Err(err).Msg("Newsletter run failed")
		os.Exit(1)
	}
}

// run subscribes the configured users and sends one issue.
func run(cfg *config.Config, out io.Writer) error {
	ttl := cfg.InboxTTLDuration()
	inbox := newsletter.NewInbox(cache.NewManager[string](ttl, ttl), ttl)

	var opts []observer.Option
	if cfg.FaultIsolation {
		opts = append(opts, observer.WithFaultIsolation())
	}
	n := newsletter.NewYoutubeNewsletter(cfg.Newsletter.Name, opts...)
	for _, name := range cfg.Subscribers {
		if err := n.Subscribe(newsletter.NewUser(name, out, inbox)); err != nil {
			return err
		}
	}
	return n.NotifySubscribers(cfg.Message)
}
