package config

import (
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config is populated from the environment, with an optional .env file for
// local runs.
type Config struct {
	Addr string `envconfig:"ADDR" default:":8080"`

	// SnapshotBackend selects where the store blob lives: sqlite, postgres,
	// redis or memory (ephemeral).
	SnapshotBackend string `envconfig:"SNAPSHOT_BACKEND" default:"sqlite"`
	SnapshotKey     string `envconfig:"SNAPSHOT_KEY" default:"volt-store"`
	SqlitePath      string `envconfig:"SQLITE_PATH" default:"voltstore.db"`

	DatabaseHost     string `envconfig:"DATABASE_HOST"`
	DatabasePort     string `envconfig:"DATABASE_PORT" default:"5432"`
	DatabaseUser     string `envconfig:"DATABASE_USER"`
	DatabasePassword string `envconfig:"DATABASE_PASSWORD"`
	DatabaseName     string `envconfig:"DATABASE_NAME"`

	RedisHost string `envconfig:"REDIS_HOST"`
	RedisPort string `envconfig:"REDIS_PORT" default:"6379"`

	// SeedDemoData loads the demo catalog and accounts on first run, when
	// no snapshot exists yet.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"true"`
}

func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return c, err
}
