package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "bizgrow"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "BIZGROW_DB_DSN"
	EnvDBHost = "BIZGROW_DB_HOST"
	EnvDBUser = "BIZGROW_DB_USER"
	EnvDBName = "BIZGROW_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Checkout     CheckoutConfig
	Cart         CartConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BIZGROW_APP_ENV" required:"true"`
	Port         string `envconfig:"BIZGROW_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"BIZGROW_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BIZGROW_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"BIZGROW_DB_DSN"`
	Driver string `envconfig:"BIZGROW_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"BIZGROW_DB_HOST"`
	LegacyPort     int    `envconfig:"BIZGROW_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"BIZGROW_DB_USER"`
	LegacyPassword string `envconfig:"BIZGROW_DB_PASSWORD"`
	LegacyName     string `envconfig:"BIZGROW_DB_NAME"`
	LegacySSLMode  string `envconfig:"BIZGROW_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"BIZGROW_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"BIZGROW_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"BIZGROW_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"BIZGROW_DB_CONN_MAX_IDLE_TIME" default:"10m"`

	BootRetryAttempts uint64        `envconfig:"BIZGROW_DB_BOOT_RETRY_ATTEMPTS" default:"5"`
	BootRetryDelay    time.Duration `envconfig:"BIZGROW_DB_BOOT_RETRY_DELAY" default:"2s"`
}

type RedisConfig struct {
	URL          string        `envconfig:"BIZGROW_REDIS_URL" required:"true"`
	Address      string        `envconfig:"BIZGROW_REDIS_ADDR"`
	Password     string        `envconfig:"BIZGROW_REDIS_PASSWORD"`
	DB           int           `envconfig:"BIZGROW_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"BIZGROW_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"BIZGROW_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"BIZGROW_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"BIZGROW_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"BIZGROW_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CheckoutConfig struct {
	IdempotencyTTL time.Duration `envconfig:"BIZGROW_CHECKOUT_IDEMPOTENCY_TTL" default:"168h"`
}

type CartConfig struct {
	TTL time.Duration `envconfig:"BIZGROW_CART_TTL" default:"720h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"BIZGROW_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
