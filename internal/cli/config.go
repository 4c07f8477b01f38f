package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/redis/go-redis/v9"

	"github.com/stakemap/stakemap/pkg/store"
)

// Config selects and configures the storage backend. Everything has a
// working default so a missing config file just means local file storage.
type Config struct {
	// Backend is one of "file", "redis", "mongo".
	Backend string `toml:"backend"`

	// DataDir is the file backend's data directory.
	DataDir string `toml:"data_dir"`

	Redis RedisConfig `toml:"redis"`
	Mongo MongoConfig `toml:"mongo"`
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

type MongoConfig struct {
	URI        string `toml:"uri"`
	Database   string `toml:"database"`
	Collection string `toml:"collection"`
}

func defaultConfig() Config {
	return Config{
		Backend: "file",
		Redis:   RedisConfig{Addr: "localhost:6379"},
		Mongo: MongoConfig{
			URI:        "mongodb://localhost:27017",
			Database:   appName,
			Collection: "maps",
		},
	}
}

// configPath resolves the config file location: the --config flag wins,
// then $STAKEMAP_CONFIG, then ~/.config/stakemap/config.toml.
func configPath(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if env := os.Getenv("STAKEMAP_CONFIG"); env != "" {
		return env, nil
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file, applying defaults for anything unset.
// A missing file is not an error; an explicitly requested file that does
// not exist is.
func loadConfig(override string) (Config, error) {
	cfg := defaultConfig()

	path, err := configPath(override)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && override == "" {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// newBackend builds the storage backend the config asks for.
func newBackend(ctx context.Context, cfg Config) (store.Backend, error) {
	switch cfg.Backend {
	case "", "file":
		return store.NewFileBackend(cfg.DataDir)
	case "redis":
		backend := store.NewRedisBackend(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := backend.Ping(ctx); err != nil {
			backend.Close()
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return backend, nil
	case "mongo":
		return store.NewMongoBackend(ctx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.Collection)
	default:
		return nil, fmt.Errorf("unknown backend %q (expected file, redis, or mongo)", cfg.Backend)
	}
}
