package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeouts, rate table)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	Cookie    CookieConfig
	Schedule  ScheduleConfig
	Pricing   PricingConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Kafka     KafkaConfig
	Outbox    OutboxConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            string        `envconfig:"PORT" required:"true"`
	ReadTimeout     time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host            string        `envconfig:"DB_HOST" default:"localhost"`
	Port            string        `envconfig:"DB_PORT" default:"5432"`
	User            string        `envconfig:"DB_USER" required:"true"`
	Password        string        `envconfig:"DB_PASSWORD" required:"true"`
	DBName          string        `envconfig:"DB_NAME" required:"true"`
	SSLMode         string        `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone        string        `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns        int32         `envconfig:"DB_MAX_CONNS" default:"20"`
	MinConns        int32         `envconfig:"DB_MIN_CONNS" default:"1"`
	MaxConnLifetime time.Duration `envconfig:"DB_MAX_CONN_LIFETIME" default:"30m"`
	MaxConnIdleTime time.Duration `envconfig:"DB_MAX_CONN_IDLE_TIME" default:"5m"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,Location"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
	// empty disables file output
	FilePath       string `envconfig:"LOG_FILE_PATH"`
	FileMaxSizeMB  int    `envconfig:"LOG_FILE_MAX_SIZE_MB" default:"100"`
	FileMaxBackups int    `envconfig:"LOG_FILE_MAX_BACKUPS" default:"5"`
	FileMaxAgeDays int    `envconfig:"LOG_FILE_MAX_AGE_DAYS" default:"14"`
	FileCompress   bool   `envconfig:"LOG_FILE_COMPRESS" default:"true"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
	Issuer   string `envconfig:"JWT_ISSUER" default:"grooming-booking"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

// Location name uses the IANA database ("Europe/Berlin").
type ScheduleConfig struct {
	TimeZone string `envconfig:"SCHEDULE_TIMEZONE" default:"UTC"`
}

func (c ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.TimeZone)
}

type PricingConfig struct {
	SmallDurationMinutes  int     `envconfig:"PRICING_SMALL_DURATION_MINUTES" default:"30"`
	SmallBasePrice        string  `envconfig:"PRICING_SMALL_BASE_PRICE" default:"100"`
	MediumDurationMinutes int     `envconfig:"PRICING_MEDIUM_DURATION_MINUTES" default:"45"`
	MediumBasePrice       string  `envconfig:"PRICING_MEDIUM_BASE_PRICE" default:"150"`
	LargeDurationMinutes  int     `envconfig:"PRICING_LARGE_DURATION_MINUTES" default:"60"`
	LargeBasePrice        string  `envconfig:"PRICING_LARGE_BASE_PRICE" default:"200"`
	LoyaltyThreshold      int     `envconfig:"PRICING_LOYALTY_THRESHOLD" default:"3"`
	LoyaltyDiscountRate   float64 `envconfig:"PRICING_LOYALTY_DISCOUNT_RATE" default:"0.10"`
}

type RedisConfig struct {
	// empty disables Redis
	Addr         string        `envconfig:"REDIS_ADDR"`
	Username     string        `envconfig:"REDIS_USERNAME"`
	Password     string        `envconfig:"REDIS_PASSWORD"`
	DB           int           `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  time.Duration `envconfig:"REDIS_DIAL_TIMEOUT" default:"3s"`
	ReadTimeout  time.Duration `envconfig:"REDIS_READ_TIMEOUT" default:"2s"`
	WriteTimeout time.Duration `envconfig:"REDIS_WRITE_TIMEOUT" default:"2s"`
}

type RateLimitConfig struct {
	Limit    int           `envconfig:"RATE_LIMIT_WRITES" default:"30"`
	Window   time.Duration `envconfig:"RATE_LIMIT_WINDOW" default:"1m"`
	Prefix   string        `envconfig:"RATE_LIMIT_PREFIX" default:"rl:appointments"`
	FailOpen bool          `envconfig:"RATE_LIMIT_FAIL_OPEN" default:"true"`
}

type KafkaConfig struct {
	// comma separated, empty disables publishing
	Brokers      string        `envconfig:"KAFKA_BROKERS"`
	WriteTimeout time.Duration `envconfig:"KAFKA_WRITE_TIMEOUT" default:"5s"`
}

type OutboxConfig struct {
	PollInterval time.Duration `envconfig:"OUTBOX_POLL_INTERVAL" default:"2s"`
	BatchSize    int32         `envconfig:"OUTBOX_BATCH_SIZE" default:"50"`
	MaxAttempts  int32         `envconfig:"OUTBOX_MAX_ATTEMPTS" default:"5"`
	Topic        string        `envconfig:"OUTBOX_TOPIC" default:"grooming.appointments"`
}

type TelemetryConfig struct {
	Enabled      bool    `envconfig:"OTEL_ENABLED" default:"false"`
	ServiceName  string  `envconfig:"OTEL_SERVICE_NAME" default:"grooming-booking"`
	OTLPEndpoint string  `envconfig:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"localhost:4317"`
	// grpc or http
	Protocol     string  `envconfig:"OTEL_EXPORTER_OTLP_PROTOCOL" default:"grpc"`
	SampleRatio  float64 `envconfig:"OTEL_SAMPLING_RATIO" default:"1"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
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
			Port:            "8889",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
			MinConns: 1,
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret-key-for-grooming-booking",
			Duration: "1h",
			Issuer:   "grooming-booking-test",
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Schedule: ScheduleConfig{
			TimeZone: "UTC",
		},
		Pricing: DefaultPricingConfig(),
		RateLimit: RateLimitConfig{
			Limit:    1000,
			Window:   time.Minute,
			Prefix:   "rl:test",
			FailOpen: true,
		},
		Outbox: OutboxConfig{
			PollInterval: time.Second,
			BatchSize:    10,
			MaxAttempts:  3,
			Topic:        "grooming.appointments.test",
		},
		Telemetry: TelemetryConfig{
			ServiceName: "grooming-booking-test",
		},
	}
}

func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		SmallDurationMinutes:  30,
		SmallBasePrice:        "100",
		MediumDurationMinutes: 45,
		MediumBasePrice:       "150",
		LargeDurationMinutes:  60,
		LargeBasePrice:        "200",
		LoyaltyThreshold:      3,
		LoyaltyDiscountRate:   0.10,
	}
}
