package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

var loadEnvOnce sync.Once

var ErrMissingJwtSecret = errors.New("load settings: JWT_SECRET must not be empty")

// Config returns the value of an environment variable, loading .env on first use.
func Config(key string) string {
	loadEnvOnce.Do(func() {
		// .env is optional, real env wins
		_ = godotenv.Load()
	})
	return os.Getenv(key)
}

type Settings struct {
	Port             string        `envconfig:"PORT" default:"8002"`
	PublicStorageURL string        `envconfig:"PUBLIC_STORAGE_URL" default:"http://localhost:8002/storage/"`
	PlaceholderImage string        `envconfig:"PLACEHOLDER_IMAGE_URL" default:"https://placehold.co/300x300?text=No+Image"`
	TaxRate          string        `envconfig:"TAX_RATE" default:"0"`
	Timezone         string        `envconfig:"TIMEZONE" default:"Local"`
	WeekStart        string        `envconfig:"WEEK_START" default:"monday"`
	RedisAddr        string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	CorsOrigins      string        `envconfig:"CORS_ORIGINS" default:"http://localhost:5173"`
	JwtSecret        string        `envconfig:"JWT_SECRET" required:"true"`
	LogLevel         string        `envconfig:"LOG_LEVEL" default:"info"`
	ContentCacheTTL  time.Duration `envconfig:"CONTENT_CACHE_TTL" default:"10m"`
}

var (
	App *Settings
	mu  sync.Mutex
)

// Load reads the typed settings from the environment and stores them in App.
func Load() (*Settings, error) {
	Config("PORT")

	var s Settings
	if err := envconfig.Process("", &s); err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	if strings.TrimSpace(s.JwtSecret) == "" {
		return nil, ErrMissingJwtSecret
	}
	if _, err := decimal.NewFromString(s.TaxRate); err != nil {
		return nil, fmt.Errorf("load settings: TAX_RATE %q: %w", s.TaxRate, err)
	}
	if _, err := time.LoadLocation(s.Timezone); err != nil {
		return nil, fmt.Errorf("load settings: TIMEZONE %q: %w", s.Timezone, err)
	}

	mu.Lock()
	App = &s
	mu.Unlock()
	return &s, nil
}

func Current() *Settings {
	mu.Lock()
	s := App
	mu.Unlock()
	if s != nil {
		return s
	}
	s, err := Load()
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Settings) Tax() decimal.Decimal {
	rate, err := decimal.NewFromString(s.TaxRate)
	if err != nil {
		return decimal.Zero
	}
	return rate
}

func (s *Settings) Location() *time.Location {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// WeekStartDay falls back to Monday for unknown names.
func (s *Settings) WeekStartDay() time.Weekday {
	if day, ok := weekdays[strings.ToLower(strings.TrimSpace(s.WeekStart))]; ok {
		return day
	}
	return time.Monday
}

func (s *Settings) AllowedOrigins() string {
	return strings.ReplaceAll(s.CorsOrigins, " ", "")
}
