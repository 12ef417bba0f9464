package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"healthcare-portal/internal/config"
	"healthcare-portal/internal/logger"
	"healthcare-portal/internal/metrics"
	"healthcare-portal/internal/notify"
	"healthcare-portal/internal/service"
	"healthcare-portal/internal/store"
)

// app holds the process-wide collaborators shared by every command.
type app struct {
	Config   *config.Config
	Log      *logrus.Logger
	Store    *store.Store
	Services *service.Services
	Registry *prometheus.Registry

	closers []func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	log := logger.New(cfg.LogLevel, cfg.Environment)

	a := &app{Config: cfg, Log: log}
	backend, err := a.openBackend(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}

	a.Registry = prometheus.NewRegistry()
	a.Registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a.Store = store.New(backend, log)
	a.Services = service.New(service.Options{
		Store:   a.Store,
		Logger:  log,
		Metrics: metrics.NewPortalMetrics(a.Registry),
		Mailer: notify.NewSender(notify.SendGridConfig{
			APIKey:    cfg.SendGrid.APIKey,
			FromEmail: cfg.SendGrid.FromEmail,
			FromName:  cfg.SendGrid.FromName,
		}, log),
	})
	return a, nil
}

func (a *app) openBackend(ctx context.Context) (store.Backend, error) {
	switch a.Config.Store.Backend {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     a.Config.Redis.Addr,
			Password: a.Config.Redis.Password,
			DB:       a.Config.Redis.DB,
		})
		a.closers = append(a.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("error connecting to redis: %w", err)
		}
		return store.NewRedisBackend(client, a.Config.Redis.Prefix), nil

	case "mysql", "postgres":
		db, err := store.OpenDB(store.DatabaseConfig{
			Driver: a.Config.Store.Backend,
			DSN:    a.Config.Database.DSN,
			Debug:  a.Config.Environment == "development",
		})
		if err != nil {
			return nil, err
		}
		if sqlDB, err := db.DB(); err == nil {
			a.closers = append(a.closers, sqlDB.Close)
		}
		backend := store.NewGormBackend(db)
		if err := backend.Migrate(); err != nil {
			return nil, fmt.Errorf("error migrating database: %w", err)
		}
		return backend, nil

	default:
		a.Log.Warn("Using in-memory store; records are lost on restart")
		return store.NewMemoryBackend(), nil
	}
}

// Close releases backend connections.
func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.Log.WithFields(logrus.Fields{"Function": "Close", "Error": err}).Warn("Failed to close connection")
		}
	}
}
