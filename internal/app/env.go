package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hrcore/competency/internal/api"
	"github.com/hrcore/competency/internal/bulk"
	"github.com/hrcore/competency/internal/collection"
	"github.com/hrcore/competency/internal/competency"
	"github.com/hrcore/competency/internal/config"
	"github.com/hrcore/competency/internal/logging"
	"github.com/hrcore/competency/internal/store"
)

// Env holds the wired application: one store, one collection cache and one
// API client shared by every command and screen.
type Env struct {
	Config   config.Config
	Logger   *slog.Logger
	Store    *store.Store
	Cache    *collection.Client
	Registry *prometheus.Registry
	API      *api.Client
	Service  *competency.Service

	logFile *os.File
}

// Open builds the application from cfg. Logs go to cfg.LogFile when set,
// otherwise to logOut.
func Open(ctx context.Context, cfg config.Config, logOut io.Writer) (*Env, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	env := &Env{Config: cfg}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if cfg.LogFile != "" {
		if err := store.EnsureDir(cfg.LogFile); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		env.logFile = f
		logOut = f
	}
	if logOut == nil {
		logOut = io.Discard
	}
	env.Logger = logging.New(logOut, level, cfg.LogFormat)

	dbPath := cfg.DBPath
	if dbPath == "" {
		if dbPath, err = store.DefaultDBPath(); err != nil {
			env.Close()
			return nil, fmt.Errorf("resolve DB path: %w", err)
		}
	} else if err := store.EnsureDir(dbPath); err != nil {
		env.Close()
		return nil, fmt.Errorf("create DB dir: %w", err)
	}
	env.Store, err = store.Open(dbPath)
	if err != nil {
		env.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}

	var persister collection.Persister
	if cfg.Cache.Persist {
		repo := env.Store.SnapshotRepo()
		if cfg.Cache.MaxAge > 0 {
			n, err := repo.Prune(ctx, time.Now().Add(-cfg.Cache.MaxAge))
			if err != nil {
				env.Logger.Warn("prune snapshots", "error", err)
			} else if n > 0 {
				env.Logger.Debug("pruned snapshots", "count", n)
			}
		}
		persister = NewPersister(repo)
	}

	env.Registry = prometheus.NewRegistry()
	env.Cache = collection.NewClient(collection.Options{
		Logger:       env.Logger,
		Retention:    cfg.Cache.Retention,
		FetchTimeout: cfg.Cache.FetchTimeout,
		Persister:    persister,
		Metrics:      collection.NewMetrics(env.Registry),
		Observer:     observer(env.Logger),
	})

	env.API, err = api.New(api.Options{
		BaseURL:   cfg.API.BaseURL,
		Token:     cfg.API.Token,
		Timeout:   cfg.API.Timeout,
		Retry:     api.RetryConfig(cfg.API.Retry),
		Version:   cfg.API.Version,
		Transport: api.WithLogging(nil, env.Store.EventRepo(), env.Logger),
		Logger:    env.Logger,
	})
	if err != nil {
		env.Close()
		return nil, err
	}

	env.Service = competency.NewService(env.API, env.Cache, cfg.User, loc, env.Logger)
	return env, nil
}

// Importer returns a bulk importer that creates questions through the
// service and invalidates the shared cache. It fails with
// competency.ErrForbidden when the user may not manage questions.
func (e *Env) Importer() (*bulk.Importer, error) {
	if err := e.Service.CanImport(); err != nil {
		return nil, err
	}
	return bulk.NewImporter(e.Service, e.Cache, e.Config.Import.Concurrency, e.Logger), nil
}

// WriteMetrics writes the collected metrics to path in the text exposition
// format.
func (e *Env) WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, e.Registry); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}

// Close releases everything Open acquired. It is safe on a partly opened
// Env.
func (e *Env) Close() {
	if e.Cache != nil {
		e.Cache.Close()
	}
	if e.Store != nil {
		if err := e.Store.Close(); err != nil && e.Logger != nil {
			e.Logger.Warn("close store", "error", err)
		}
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

func observer(logger *slog.Logger) func(collection.Event) {
	return func(ev collection.Event) {
		switch ev.Kind {
		case collection.EventFetchFailed:
			logger.Warn("collection fetch failed", "key", string(ev.Key), "generation", ev.Generation, "error", ev.Err)
		case collection.EventStaleDiscarded:
			logger.Debug("stale fetch discarded", "key", string(ev.Key), "generation", ev.Generation)
		default:
			logger.Debug("collection event", "kind", string(ev.Kind), "key", string(ev.Key), "generation", ev.Generation)
		}
	}
}
