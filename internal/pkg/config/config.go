package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: values that differ between environments (port, DB connection, secrets)
// - default: values common across all environments (pricing policy, timeouts)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Pricing PricingConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`

	// Catalog snapshot load retry budget.
	LoadRetries int    `envconfig:"DB_CATALOG_LOAD_RETRIES" default:"3"`
	LoadBackoff string `envconfig:"DB_CATALOG_LOAD_BACKOFF" default:"500ms"`
}

type CORSConfig struct {
	AllowOrigins     []string `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool     `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
}

type LogConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

// PricingConfig is the venue's fixed pricing policy. Defaults mirror
// the current house rules; rule tables themselves live in the catalog.
type PricingConfig struct {
	EveningBoundaryHour     int     `envconfig:"PRICING_EVENING_BOUNDARY_HOUR" default:"17"`
	OpeningHour             int     `envconfig:"PRICING_OPENING_HOUR" default:"8"`
	EarlyOpenRateCents      int64   `envconfig:"PRICING_EARLY_OPEN_RATE_CENTS" default:"3500"`
	ParkingLotRoomID        string  `envconfig:"PRICING_PARKING_LOT_ROOM_ID" default:"parking-lot"`
	BartenderCompAttendance int     `envconfig:"PRICING_BARTENDER_COMP_ATTENDANCE" default:"100"`
	AudioTechBaseHours      int     `envconfig:"PRICING_AUDIO_TECH_BASE_HOURS" default:"7"`
	TaxRate                 float64 `envconfig:"PRICING_TAX_RATE" default:"0.0825"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:        "localhost",
			Port:        "15433",
			User:        "test",
			Password:    "test",
			DBName:      "test_db",
			SSLMode:     "disable",
			LoadRetries: 1,
			LoadBackoff: "10ms",
		},
		Log: LogConfig{
			Level: "error",
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		Pricing: PricingConfig{
			EveningBoundaryHour:     17,
			OpeningHour:             8,
			EarlyOpenRateCents:      3500,
			ParkingLotRoomID:        "parking-lot",
			BartenderCompAttendance: 100,
			AudioTechBaseHours:      7,
			TaxRate:                 0.0825,
		},
	}
}
