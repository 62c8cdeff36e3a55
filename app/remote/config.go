package remote

import "time"

type Config struct {
	BaseURL string        `env:"BOSKO_API_URL" validate:"required,url"`
	Timeout time.Duration `env:"BOSKO_API_TIMEOUT" env-default:"15s"`
}

func GetDefaultConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:4000",
		Timeout: 15 * time.Second,
	}
}
