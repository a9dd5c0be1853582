package tester

import (
	"fmt"
	"os"

	"github.com/alicebob/miniredis/v2"
	"github.com/emrgen/pagebuilder/internal/model"
	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	db *gorm.DB
)

// Setup opens a fresh in-memory database and migrates it. Every call starts
// from an empty schema.
func Setup() {
	_ = os.Setenv("ENV", "test")

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())

	var err error
	db, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic(err)
	}

	err = model.Migrate(db)
	if err != nil {
		panic(err)
	}
}

func TestDB() *gorm.DB {
	if db == nil {
		Setup()
	}
	return db
}

// Redis starts an in-process redis server and returns a client for it.
func Redis() (*redis.Client, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		panic(err)
	}

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return client, func() {
		_ = client.Close()
		mr.Close()
	}
}
