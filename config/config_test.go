package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/teugestor")
	t.Setenv("SUPABASE_URL", "https://projeto.supabase.co")
	t.Setenv("SUPABASE_SERVICE_ROLE_KEY", "service-role")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "80", cfg.Server.Port)
	assert.Contains(t, cfg.Server.CORSOrigins, "https://teugestor.com.br")
	assert.Equal(t, "clamp", cfg.Billing.DueDatePolicy)
	assert.True(t, cfg.Billing.RollbackInstallments)
	assert.Equal(t, time.Minute, cfg.Directory.CacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Supabase.RequestTimeout)
	assert.Equal(t, 100, cfg.RateLimit.RequestsPerMinute)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("BILLING_DUE_DATE_POLICY", "ROLLOVER")
	t.Setenv("ADMIN_EMAILS", " Admin@TeuGestor.com.br, ,ops@teugestor.com.br")
	t.Setenv("CORS_ORIGINS", "https://app.teugestor.com.br")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "rollover", cfg.Billing.DueDatePolicy)
	assert.Equal(t, []string{"admin@teugestor.com.br", "ops@teugestor.com.br"}, cfg.Admin.Emails)
	assert.Equal(t, []string{"https://app.teugestor.com.br"}, cfg.Server.CORSOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown environment", "APP_ENV", "qa"},
		{"unknown due date policy", "BILLING_DUE_DATE_POLICY", "shift"},
		{"malformed supabase url", "SUPABASE_URL", "nao-e-url"},
		{"zero rate limit", "RATE_LIMIT_RPM", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tt.key, tt.val)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
