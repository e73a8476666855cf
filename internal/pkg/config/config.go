package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, secrets), security settings
// - default: Values common across all environments (timezone, drop cadence, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server ServerConfig
	DB     DBConfig
	CORS   CORSConfig
	Log    LogConfig
	JWT    JWTConfig
	Admin  AdminConfig
	Drop   DropConfig
	Store  StoreConfig
	Notify NotifyConfig
}

type ServerConfig struct {
	Port              string        `envconfig:"PORT" required:"true"`
	ReadHeaderTimeout time.Duration `envconfig:"SERVER_READ_HEADER_TIMEOUT" default:"5s"`
	ShutdownTimeout   time.Duration `envconfig:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"12h"`
}

type AdminConfig struct {
	Username     string `envconfig:"ADMIN_USERNAME" default:"admin"`
	PasswordHash string `envconfig:"ADMIN_PASSWORD_HASH"`
}

// DropConfig tunes the drop cadence. Intervals are sampled in whole seconds.
type DropConfig struct {
	TickSpec       string        `envconfig:"DROP_TICK_SPEC" default:"@every 15s"`
	ResponseWindow time.Duration `envconfig:"DROP_RESPONSE_WINDOW" default:"30s"`
	QuotaMin       int           `envconfig:"DROP_QUOTA_MIN" default:"2"`
	QuotaMax       int           `envconfig:"DROP_QUOTA_MAX" default:"5"`
	SpawnMin       time.Duration `envconfig:"DROP_SPAWN_MIN" default:"1h"`
	SpawnMax       time.Duration `envconfig:"DROP_SPAWN_MAX" default:"12h"`
	InitialMin     time.Duration `envconfig:"DROP_INITIAL_MIN" default:"1m"`
	InitialMax     time.Duration `envconfig:"DROP_INITIAL_MAX" default:"2m"`
	ForcedMin      time.Duration `envconfig:"DROP_FORCED_MIN" default:"1m"`
	ForcedMax      time.Duration `envconfig:"DROP_FORCED_MAX" default:"2m"`
	CycleLength    time.Duration `envconfig:"DROP_CYCLE_LENGTH" default:"24h"`
	BypassUsers    []string      `envconfig:"DROP_BYPASS_USERS"`
	ClaimBuffer    int           `envconfig:"DROP_CLAIM_BUFFER" default:"256"`
	ClaimRate      float64       `envconfig:"DROP_CLAIM_RATE" default:"5"`
	ClaimBurst     int           `envconfig:"DROP_CLAIM_BURST" default:"10"`
	HistoryPage    int           `envconfig:"DROP_HISTORY_PAGE_SIZE" default:"5"`
}

type StoreConfig struct {
	Driver      string `envconfig:"STORE_DRIVER" default:"file"`
	FilePath    string `envconfig:"STORE_FILE_PATH" default:"deal_data.json"`
	SnapshotKey string `envconfig:"STORE_SNAPSHOT_KEY" default:"default"`
}

type NotifyConfig struct {
	Channel    string        `envconfig:"NOTIFY_CHANNEL" default:"drops"`
	WebhookURL string        `envconfig:"NOTIFY_WEBHOOK_URL"`
	Timeout    time.Duration `envconfig:"NOTIFY_TIMEOUT" default:"5s"`
}

const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func (c *DropConfig) Validate() error {
	if c.ResponseWindow <= 0 {
		return fmt.Errorf("DROP_RESPONSE_WINDOW must be positive, got %s", c.ResponseWindow)
	}
	if c.QuotaMin < 1 || c.QuotaMax < c.QuotaMin {
		return fmt.Errorf("invalid quota range [%d, %d]", c.QuotaMin, c.QuotaMax)
	}
	if c.SpawnMin <= 0 || c.SpawnMax < c.SpawnMin {
		return fmt.Errorf("invalid spawn interval [%s, %s]", c.SpawnMin, c.SpawnMax)
	}
	if c.InitialMin <= 0 || c.InitialMax < c.InitialMin {
		return fmt.Errorf("invalid initial interval [%s, %s]", c.InitialMin, c.InitialMax)
	}
	if c.ForcedMin <= 0 || c.ForcedMax < c.ForcedMin {
		return fmt.Errorf("invalid forced interval [%s, %s]", c.ForcedMin, c.ForcedMax)
	}
	if c.CycleLength <= 0 {
		return fmt.Errorf("DROP_CYCLE_LENGTH must be positive, got %s", c.CycleLength)
	}
	return nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Drop.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid drop config: %w", err)
	}
	switch cfg.Store.Driver {
	case StoreDriverFile, StoreDriverPostgres:
	default:
		return Config{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:              "8889",
			ReadHeaderTimeout: time.Second,
			ShutdownTimeout:   time.Second,
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Admin: AdminConfig{
			Username: "admin",
		},
		Drop: DropConfig{
			TickSpec:       "@every 15s",
			ResponseWindow: 30 * time.Second,
			QuotaMin:       2,
			QuotaMax:       5,
			SpawnMin:       time.Hour,
			SpawnMax:       12 * time.Hour,
			InitialMin:     time.Minute,
			InitialMax:     2 * time.Minute,
			ForcedMin:      time.Minute,
			ForcedMax:      2 * time.Minute,
			CycleLength:    24 * time.Hour,
			ClaimBuffer:    16,
			ClaimRate:      100,
			ClaimBurst:     100,
			HistoryPage:    5,
		},
		Store: StoreConfig{
			Driver:      StoreDriverFile,
			FilePath:    "deal_data.json",
			SnapshotKey: "test",
		},
		Notify: NotifyConfig{
			Channel: "test-drops",
			Timeout: time.Second,
		},
	}
}
