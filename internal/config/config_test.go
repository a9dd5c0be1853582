package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "4020", cfg.GrpcPort)
	assert.Equal(t, "4021", cfg.HttpPort)
	assert.Equal(t, "sqlite", cfg.DB.Driver)
	assert.Equal(t, time.Hour, cfg.Cache.TTL)
	assert.Equal(t, 20, cfg.Revision.Keep)
	assert.Equal(t, "@every 10m", cfg.Revision.PruneSchedule)
	assert.Empty(t, cfg.Kafka.Brokers)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("DB_DRIVER", "Postgres")
	t.Setenv("DB_DSN", "host=localhost user=cms dbname=cms")
	t.Setenv("GRPC_PORT", "5020")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("CACHE_COMPRESSION", "brotli")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("REVISION_KEEP", "5")

	cfg := LoadConfig()

	assert.Equal(t, "postgres", cfg.DB.Driver)
	assert.Equal(t, "host=localhost user=cms dbname=cms", cfg.DB.DSN)
	assert.Equal(t, "5020", cfg.GrpcPort)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL)
	assert.Equal(t, "brotli", cfg.Cache.Compression)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, 5, cfg.Revision.Keep)
}

func TestConfigureLogging(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	(&Config{LogLevel: "debug"}).ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	(&Config{LogLevel: "loud"}).ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
