package config

import (
	"log"
	"sync"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"development"`
		Port      int    `env:"APP_PORT" env-default:"8080"`
		SentryUrl string `env:"SENTRY_URL"`
	}
	API struct {
		BaseURL string        `env:"API_BASE_URL" env-default:"https://forkfeed.app"`
		Timeout time.Duration `env:"API_TIMEOUT" env-default:"30s"`
	}
	Credentials struct {
		Path string `env:"CREDENTIALS_PATH" env-default:"./forkfeed-session"`
	}
	Notifications struct {
		RefreshMinutes int `env:"NOTIFICATIONS_REFRESH_MINUTES" env-default:"5"`
	}
}

var (
	once sync.Once
	cfg  *Config
)

func New() (*Config, error) {
	once.Do(func() {
		cfg = &Config{}
		if err := cleanenv.ReadEnv(cfg); err != nil {
			help, _ := cleanenv.GetDescription(cfg, nil)
			log.Fatalf("Failed to read configuration: %v\n%v", err, help)
		}
	})
	return cfg, nil
}
