package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/susround/internal/content"
	"github.com/mcoot/susround/internal/dependencies/clock"
	"github.com/mcoot/susround/internal/dependencies/ids"
	"github.com/mcoot/susround/internal/dependencies/random"
	"github.com/mcoot/susround/internal/services/round"
	"github.com/mcoot/susround/internal/services/session"
	"github.com/mcoot/susround/internal/storage"
	"github.com/mcoot/susround/internal/storage/memory"
	redisstorage "github.com/mcoot/susround/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	IDs    ids.Generator

	// Content
	Banks *content.Banks

	// Services
	Machine           *round.Machine
	SessionController *session.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// ContentPath is a YAML file overriding the built-in task and prompt banks (optional)
	ContentPath string
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	banks := content.Default()
	if cfg.ContentPath != "" {
		loaded, err := content.LoadFile(cfg.ContentPath)
		if err != nil {
			return nil, err
		}
		banks = loaded
		logger.Info("content banks loaded",
			slog.String("path", cfg.ContentPath),
			slog.Int("crew_tasks", len(banks.CrewTasks)),
			slog.Int("prompts", len(banks.Prompts)),
		)
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), ids.New(), banks, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	idGen ids.Generator,
	banks *content.Banks,
	logger *slog.Logger,
) *App {
	machine := round.NewMachine(banks, rnd, clk, idGen)
	sessionController := session.NewController(store, machine, clk, rnd, logger.With(slog.String("component", "session")))

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		IDs:               idGen,
		Banks:             banks,
		Machine:           machine,
		SessionController: sessionController,
	}
}
