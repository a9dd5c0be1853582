// Package config loads the service configuration from the environment.
package config

import (
	"strings"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DBConfig struct {
	Driver string
	DSN    string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type CacheConfig struct {
	TTL         time.Duration
	Compression string
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type RevisionConfig struct {
	Keep          int
	PruneSchedule string
}

type Config struct {
	Env      string
	GrpcPort string
	HttpPort string
	LogLevel string
	DB       DBConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Kafka    KafkaConfig
	Revision RevisionConfig
}

func defaults(v *viper.Viper) {
	v.SetDefault("ENV", "dev")
	v.SetDefault("GRPC_PORT", "4020")
	v.SetDefault("HTTP_PORT", "4021")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "pagebuilder.db")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CACHE_TTL", "1h")
	v.SetDefault("CACHE_COMPRESSION", "gzip")
	v.SetDefault("KAFKA_BROKERS", "")
	v.SetDefault("KAFKA_TOPIC", "pagebuilder.pages")
	v.SetDefault("REVISION_KEEP", 20)
	v.SetDefault("REVISION_PRUNE_SCHEDULE", "@every 10m")
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first.
func LoadConfig() *Config {
	v := viper.New()
	defaults(v)
	v.AutomaticEnv()

	return &Config{
		Env:      v.GetString("ENV"),
		GrpcPort: v.GetString("GRPC_PORT"),
		HttpPort: v.GetString("HTTP_PORT"),
		LogLevel: v.GetString("LOG_LEVEL"),
		DB: DBConfig{
			Driver: strings.ToLower(v.GetString("DB_DRIVER")),
			DSN:    v.GetString("DB_DSN"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			TTL:         v.GetDuration("CACHE_TTL"),
			Compression: v.GetString("CACHE_COMPRESSION"),
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_TOPIC"),
		},
		Revision: RevisionConfig{
			Keep:          v.GetInt("REVISION_KEEP"),
			PruneSchedule: v.GetString("REVISION_PRUNE_SCHEDULE"),
		},
	}
}

// ConfigureLogging applies the configured log level.
func (c *Config) ConfigureLogging() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("unknown log level %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// GetDb opens the configured database. It exits the process when the
// database cannot be opened.
func GetDb(cfg *Config) *gorm.DB {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.DB.DSN)
	case "sqlite", "":
		dialector = sqlite.Open(cfg.DB.DSN)
	default:
		logrus.Fatalf("unsupported database driver: %s", cfg.DB.Driver)
	}

	gormConfig := &gorm.Config{TranslateError: true}
	if cfg.Env == "prod" {
		gormConfig.Logger = logger.Default.LogMode(logger.Silent)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		logrus.Fatalf("error opening %s database: %v", cfg.DB.Driver, err)
	}

	return db
}

func splitList(s string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
