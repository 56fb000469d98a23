package config

import (
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	NetAddr       string        `env:"RUN_ADDRESS"`
	VendorAddr    string        `env:"VENDOR_API_ADDRESS"`
	VendorToken   string        `env:"VENDOR_API_TOKEN"`
	AppSecret     string        `env:"APP_SECRET"`
	WebhookURL    string        `env:"WEBHOOK_URL"`
	PollInterval  time.Duration `env:"POLL_INTERVAL"`
	PollPageLimit int           `env:"POLL_PAGE_LIMIT"`
	LogLevel      string        `env:"LOG_LEVEL"`
}

func InitConfig() (config Config) {
	flag.StringVar(&config.NetAddr, "a", "localhost:8080", "net address host:port")
	flag.StringVar(&config.VendorAddr, "v", "", "e-commerce vendor API address")
	flag.StringVar(&config.VendorToken, "t", "", "bearer token for the vendor API")
	flag.StringVar(&config.AppSecret, "s", "", "secret used to verify signed app instance tokens")
	flag.StringVar(&config.WebhookURL, "w", "", "analytics endpoint for lifecycle webhooks")
	flag.DurationVar(&config.PollInterval, "p", 10*time.Second, "new order poll interval")
	flag.IntVar(&config.PollPageLimit, "n", 10, "page size for new order polling")
	flag.StringVar(&config.LogLevel, "l", "info", "log level")
	flag.Parse()

	if err := env.Parse(&config); err != nil {
		panic(fmt.Errorf("error while parsing config: %w", err))
	}

	return
}
