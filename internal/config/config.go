package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Store backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreBackend string // "file" (default) or "redis"
	StoreFile    string // path to the config document (file backend)
	SeedFile     string // optional Homepage services.yaml to seed an empty store
	WatchStore   bool   // watch the store file for external writes

	BackupDir      string        // optional, empty = backups disabled
	BackupInterval time.Duration // interval between snapshots (default: 24h)
	BackupKeep     int           // snapshots retained (default: 14)

	// Redis (only used when StoreBackend == "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("TABDECK_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("TABDECK_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("TABDECK_LOG_LEVEL", "info"),
		PrettyLog: mustBool("TABDECK_PRETTY_LOG", true),

		// Store
		StoreBackend: getenv("TABDECK_STORE_BACKEND", BackendFile),
		StoreFile:    getenv("TABDECK_STORE_FILE", defaultStoreFile()),
		SeedFile:     getenv("TABDECK_SEED_FILE", ""), // optional, empty = no seeding
		WatchStore:   mustBool("TABDECK_WATCH_STORE", true),

		// Backups
		BackupDir:      getenv("TABDECK_BACKUP_DIR", ""), // optional, empty = backups disabled
		BackupInterval: mustDuration("TABDECK_BACKUP_INTERVAL", 24*time.Hour),
		BackupKeep:     getenvInt("TABDECK_BACKUP_KEEP", 14),

		// Redis settings
		RedisAddr:           getenv("TABDECK_REDIS_ADDR", "localhost:6379"),
		RedisUser:           getenv("TABDECK_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("TABDECK_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("TABDECK_REDIS_DB", 0),
		RedisDT:             mustDuration("TABDECK_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("TABDECK_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("TABDECK_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("TABDECK_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("TABDECK_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("TABDECK_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("TABDECK_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("TABDECK_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("TABDECK_REDIS_WARN_THRESHOLD", 3),
	}

	if cfg.StoreBackend != BackendFile && cfg.StoreBackend != BackendRedis {
		panic(fmt.Sprintf("❌ FATAL: TABDECK_STORE_BACKEND must be %q or %q, got %q",
			BackendFile, BackendRedis, cfg.StoreBackend))
	}
	if cfg.BackupKeep < 1 {
		panic(fmt.Sprintf("❌ FATAL: TABDECK_BACKUP_KEEP must be >= 1, got %d", cfg.BackupKeep))
	}

	return cfg
}

// defaultStoreFile places the document under the user data dir when
// resolvable, falling back to the working directory.
func defaultStoreFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "chrome-tab-config.json"
	}
	return filepath.Join(home, ".local", "share", "tabdeck", "chrome-tab-config.json")
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
