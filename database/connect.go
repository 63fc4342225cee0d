package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"venue_manager/config"
	"venue_manager/model"
	"venue_manager/utils"
)

var (
	DB    *gorm.DB
	Redis *redis.Client
)

func ConnectDB() {
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	sslMode := config.Config("DB_SSLMODE")
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"), sslMode)

	DB, err = Open(dsn)
	if err != nil {
		panic(fmt.Sprintf("failed to connect database: %v", err))
	}
	utils.Log.Info("connection opened to database", zap.String("host", config.Config("DB_HOST")), zap.Uint64("port", port))

	if err := Migrate(DB); err != nil {
		panic(fmt.Sprintf("failed to migrate database: %v", err))
	}
	utils.Log.Info("database migrated")

	SeedData(DB)
}

func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.ProductImage{},
		&model.Package{},
		&model.Duration{},
		&model.TableNumber{},
		&model.Cart{},
		&model.Order{},
		&model.OrderItem{},
		&model.ProductReview{},
		&model.PackageReview{},
		&model.Comment{},
		&model.Reply{},
		&model.FishingCms{},
		&model.AboutPageContent{},
		&model.Milestone{},
		&model.TeamMember{},
		&model.Gallery{},
	)
}

// ConnectRedis leaves Redis nil when the server is unreachable; cache and feed
// callers treat a nil client as disabled.
func ConnectRedis(addr string) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		utils.Log.Warn("redis unavailable, content cache and order feed disabled", zap.String("addr", addr), zap.Error(err))
		_ = client.Close()
		return
	}

	Redis = client
	utils.Log.Info("connection opened to redis", zap.String("addr", addr))
}
