package deps

import (
	"github.com/joefazee/bosko/internal/cache"
	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/internal/sanitizer"
	"github.com/joefazee/bosko/internal/security"
)

// Container holds all shared dependencies
type Container struct {
	TokenMaker  security.Maker
	Sanitizer   sanitizer.HTMLStripperer
	Logger      logger.Logger
	Eligibility cache.Cache[bool]

	// Store module services as interfaces to avoid imports
	services map[string]interface{}
}

func NewContainer(tokenMaker security.Maker, sanitizer sanitizer.HTMLStripperer, logger logger.Logger, eligibility cache.Cache[bool]) *Container {
	return &Container{
		TokenMaker:  tokenMaker,
		Sanitizer:   sanitizer,
		Logger:      logger,
		Eligibility: eligibility,
		services:    make(map[string]interface{}),
	}
}

// RegisterService stores a service with a key
func (c *Container) RegisterService(key string, service interface{}) {
	c.services[key] = service
}

// GetService retrieves a service by key
func (c *Container) GetService(key string) interface{} {
	return c.services[key]
}

// Close releases resources owned by the container.
func (c *Container) Close() error {
	if c.Eligibility == nil {
		return nil
	}
	return c.Eligibility.Close()
}
