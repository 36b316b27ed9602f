/*
Copyright © 2025 Acronis International GmbH.

Released under MIT license.
*/

// kvcache is an in-memory key-value cache server with TTL expiration and LRU eviction.
package main

import (
	"flag"
	"fmt"
	golog "log"
	"time"

	"github.com/acronis/go-appkit/config"
	"github.com/acronis/go-appkit/httpserver"
	"github.com/acronis/go-appkit/log"
	"github.com/acronis/go-appkit/service"

	"github.com/acronis/go-kvcache/internal/api"
	"github.com/acronis/go-kvcache/internal/cache"
)

const serviceErrorDomain = api.ErrorDomain

func main() {
	cfgPath := flag.String("config", "config.yml", "path to the configuration file")
	flag.Parse()

	if err := runApp(*cfgPath); err != nil {
		golog.Fatal(err)
	}
}

func runApp(cfgPath string) error {
	cfg, err := loadAppConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger, loggerClose := log.NewLogger(cfg.Log)
	defer loggerClose()

	cacheMetrics := cache.NewPrometheusMetrics()
	cacheMetrics.MustRegister()
	defer cacheMetrics.Unregister()

	store, err := cache.New(cfg.Cache, cacheMetrics)
	if err != nil {
		return fmt.Errorf("create cache store: %w", err)
	}

	httpServer, err := makeHTTPServer(cfg.Server, store, logger)
	if err != nil {
		return fmt.Errorf("create HTTP server: %w", err)
	}

	cleanupWorker := cache.NewCleanupWorker(store, logger)
	cleanupUnit := service.NewWorkerUnit(service.NewPeriodicWorker(
		cleanupWorker, time.Duration(cfg.Cache.CleanupInterval), logger))

	return service.New(logger, service.NewCompositeUnit(httpServer, cleanupUnit)).Start()
}

func makeHTTPServer(cfg *httpserver.Config, store *cache.Store, logger log.FieldLogger) (*httpserver.HTTPServer, error) {
	opts := httpserver.Opts{
		ServiceNameInURL: "kvcache",
		ErrorDomain:      serviceErrorDomain,
		APIRoutes: map[httpserver.APIVersion]httpserver.APIRoute{
			1: api.Routes(store),
		},
		HealthCheck: func() (httpserver.HealthCheckResult, error) {
			return httpserver.HealthCheckResult{
				"cache": httpserver.HealthCheckStatusOK,
			}, nil
		},
	}
	return httpserver.New(cfg, logger, opts)
}

func loadAppConfig(cfgPath string) (*AppConfig, error) {
	cfgLoader := config.NewDefaultLoader("kvcache")
	cfg := NewAppConfig()
	if err := cfgLoader.LoadFromFile(cfgPath, config.DataTypeYAML, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// AppConfig is the top-level configuration of the service.
type AppConfig struct {
	Server *httpserver.Config
	Log    *log.Config
	Cache  *cache.Config
}

// NewAppConfig creates a new AppConfig with all sections initialized.
func NewAppConfig() *AppConfig {
	return &AppConfig{
		Server: httpserver.NewConfig(),
		Log:    log.NewConfig(),
		Cache:  cache.NewConfig(),
	}
}

// SetProviderDefaults implements config.Config interface.
func (c *AppConfig) SetProviderDefaults(dp config.DataProvider) {
	config.CallSetProviderDefaultsForFields(c, dp)
}

// Set implements config.Config interface.
func (c *AppConfig) Set(dp config.DataProvider) error {
	return config.CallSetForFields(c, dp)
}
