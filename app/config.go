package app

import (
	"time"

	"github.com/joefazee/bosko/app/auth"
	"github.com/joefazee/bosko/app/remote"
	"github.com/joefazee/bosko/internal/cache"
	"github.com/joefazee/bosko/internal/nexus"
)

type Config struct {
	Remote remote.Config
	Cache  cache.Config
	Auth   auth.Config

	AppHost  string `env:"APP_HOST" env-default:"localhost"`
	AppPort  string `env:"APP_PORT" env-default:"8080"`
	Env      string `env:"APP_ENV" env-default:"development" validate:"oneof=development staging production test"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info"`
	Version  string `env:"APP_VERSION" env-default:"1.0.0"`

	// PublicURL is advertised in the API docs outside development.
	PublicURL string `env:"APP_PUBLIC_URL"`

	// EligibilityTTL bounds how long an eligibility answer is reused. Zero keeps it for the life of the cache.
	EligibilityTTL     time.Duration `env:"ELIGIBILITY_TTL" env-default:"0s"`
	DefaultPhoneRegion string        `env:"DEFAULT_PHONE_REGION" env-default:"MX" validate:"len=2"`
	// ManagedIdleTTL evicts a user's managed-services list after this long without requests.
	ManagedIdleTTL time.Duration `env:"MANAGED_IDLE_TTL" env-default:"30m"`
}

// LoadConfig loads the application configuration from environment variables or a config file.
func LoadConfig(opts ...nexus.LoaderOption) (*Config, error) {
	c := &Config{}
	err := nexus.NewLoader(opts...).Load(c)
	return c, err
}
