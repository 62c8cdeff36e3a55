package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/bosko/app"
	"github.com/joefazee/bosko/app/api"
	"github.com/joefazee/bosko/app/auth"
	"github.com/joefazee/bosko/app/catalog"
	apiDoc "github.com/joefazee/bosko/app/doc"
	"github.com/joefazee/bosko/app/managed"
	"github.com/joefazee/bosko/app/remote"
	_ "github.com/joefazee/bosko/docs"
	"github.com/joefazee/bosko/internal/cache"
	"github.com/joefazee/bosko/internal/deps"
	"github.com/joefazee/bosko/internal/logger"
	"github.com/joefazee/bosko/internal/router"
	"github.com/joefazee/bosko/internal/sanitizer"
	"github.com/joefazee/bosko/internal/security"
)

const (
	catalogStoreKey    = "catalog.store"
	managedRegistryKey = "managed.registry"
)

// @title Bosko API
// @version 1.0
// @description Backend-for-frontend for the Bosko services marketplace.

// @license.name MIT License
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	log := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{"service": "bosko-api"})

	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal(err, logger.Fields{"stage": "config"})
	}
	log.SetLevel(logger.ParseLevel(cfg.LogLevel))

	eligibilityMemo, err := cache.New[bool](cfg.Cache)
	if err != nil {
		log.Fatal(err, logger.Fields{"stage": "cache"})
	}

	tokenMaker, err := security.NewPasetoMaker(cfg.Auth.SymmetricKey)
	if err != nil {
		log.Fatal(fmt.Errorf("cannot create token maker: %w", err), logger.Fields{"stage": "auth"})
	}

	container := deps.NewContainer(tokenMaker, sanitizer.NewHTMLStripper(), log, eligibilityMemo)
	defer container.Close()

	client := remote.NewClient(&cfg.Remote, log)
	eligibility := catalog.NewEligibilityResolver(client, container.Eligibility, cfg.EligibilityTTL, log)
	container.RegisterService(catalogStoreKey, catalog.NewStore(client, eligibility, container.Sanitizer, log))
	registry := managed.NewRegistry(func(token string) managed.Remote {
		return client.WithToken(token)
	}, cfg.ManagedIdleTTL, container.Sanitizer, log)
	defer registry.Close()
	container.RegisterService(managedRegistryKey, registry)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestID(), api.RequestLogger(log), api.CorsMiddleware())

	mounter := router.NewMounter(container)
	mounter.Public(r).Mount(mountWithoutAuth(cfg))
	mounter.Authenticated(r, auth.Middleware(container.TokenMaker)).Mount(mountWithAuth(cfg))
	apiDoc.Init(r, cfg.Env, cfg.PublicURL)

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("starting Bosko API server", logger.Fields{"addr": srv.Addr, "env": cfg.Env})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err, logger.Fields{"stage": "listen"})
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(err, logger.Fields{"stage": "shutdown"})
	}
	log.Info("server stopped", nil)
}

func mountWithoutAuth(cfg *app.Config) router.MountFunc {
	return func(r *gin.RouterGroup, c *deps.Container) {
		r.GET("/healthz", api.HealthCheck(cfg.Env, cfg.Version))
		catalog.Init(r, catalog.Dependencies{
			Store:       c.GetService(catalogStoreKey).(*catalog.Store),
			PhoneRegion: cfg.DefaultPhoneRegion,
		})
	}
}

func mountWithAuth(cfg *app.Config) router.MountFunc {
	return func(r *gin.RouterGroup, c *deps.Container) {
		catalog.InitWithAuth(r, catalog.Dependencies{
			Store:       c.GetService(catalogStoreKey).(*catalog.Store),
			PhoneRegion: cfg.DefaultPhoneRegion,
		})
		managed.InitWithAuth(r, managed.Dependencies{
			Registry: c.GetService(managedRegistryKey).(*managed.Registry),
		})
	}
}
