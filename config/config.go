package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Supabase  SupabaseConfig
	Billing   BillingConfig
	Directory DirectoryConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Environment string `validate:"required,oneof=development staging production test"`
	LogLevel    string `validate:"required"`
	LogJSON     bool
}

type ServerConfig struct {
	Port        string   `validate:"required"`
	CORSOrigins []string `validate:"required,min=1"`
}

type DatabaseConfig struct {
	DSN             string `validate:"required"`
	Host            string
	Port            int
	DBName          string
	MaxOpenConns    int `validate:"gte=1"`
	MaxIdleConns    int `validate:"gte=0"`
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type SupabaseConfig struct {
	URL            string `validate:"required,url"`
	ServiceRoleKey string `validate:"required"`
	JWTSecret      string
	RequestTimeout time.Duration `validate:"gt=0"`
	RetryMax       int           `validate:"gte=0"`
}

type BillingConfig struct {
	// clamp or rollover
	DueDatePolicy        string `validate:"required,oneof=clamp rollover"`
	RollbackInstallments bool
}

type DirectoryConfig struct {
	CacheTTL time.Duration `validate:"gt=0"`
}

type AdminConfig struct {
	Emails []string
}

type RateLimitConfig struct {
	RequestsPerMinute int `validate:"gte=1"`
	Burst             int `validate:"gte=1"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Environment: v.GetString("APP_ENV"),
			LogLevel:    v.GetString("LOG_LEVEL"),
			LogJSON:     v.GetBool("LOG_JSON"),
		},
		Server: ServerConfig{
			Port:        v.GetString("PORT"),
			CORSOrigins: splitList(v.GetString("CORS_ORIGINS")),
		},
		Database: DatabaseConfig{
			DSN:             v.GetString("DATABASE_URL"),
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			DBName:          v.GetString("DB_NAME"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
			AutoMigrate:     v.GetBool("DB_AUTO_MIGRATE"),
		},
		Supabase: SupabaseConfig{
			URL:            v.GetString("SUPABASE_URL"),
			ServiceRoleKey: v.GetString("SUPABASE_SERVICE_ROLE_KEY"),
			JWTSecret:      v.GetString("SUPABASE_JWT_SECRET"),
			RequestTimeout: v.GetDuration("SUPABASE_REQUEST_TIMEOUT"),
			RetryMax:       v.GetInt("SUPABASE_RETRY_MAX"),
		},
		Billing: BillingConfig{
			DueDatePolicy:        strings.ToLower(v.GetString("BILLING_DUE_DATE_POLICY")),
			RollbackInstallments: v.GetBool("BILLING_ROLLBACK_INSTALLMENTS"),
		},
		Directory: DirectoryConfig{
			CacheTTL: v.GetDuration("DIRECTORY_CACHE_TTL"),
		},
		Admin: AdminConfig{
			Emails: splitList(strings.ToLower(v.GetString("ADMIN_EMAILS"))),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: v.GetInt("RATE_LIMIT_RPM"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("configuração inválida: %w", err)
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_JSON", false)
	v.SetDefault("PORT", "80")
	v.SetDefault("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000,http://localhost:4173,https://teugestor.com.br,https://www.teugestor.com.br")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("DB_MAX_IDLE_CONNS", 5)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute)
	v.SetDefault("DB_AUTO_MIGRATE", true)
	v.SetDefault("SUPABASE_REQUEST_TIMEOUT", 10*time.Second)
	v.SetDefault("SUPABASE_RETRY_MAX", 3)
	v.SetDefault("BILLING_DUE_DATE_POLICY", "clamp")
	v.SetDefault("BILLING_ROLLBACK_INSTALLMENTS", true)
	v.SetDefault("DIRECTORY_CACHE_TTL", time.Minute)
	v.SetDefault("RATE_LIMIT_RPM", 100)
	v.SetDefault("RATE_LIMIT_BURST", 20)
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
