package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCodes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "default pair", raw: "ACT,A", want: []string{"ACT", "A"}},
		{name: "trims and upper-cases", raw: " act , a ,", want: []string{"ACT", "A"}},
		{name: "empty", raw: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCodes(tt.raw))
		})
	}
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_HOST", "db.local")
	t.Setenv("JWT_ACCESS_EXPIRY", "30m")
	t.Setenv("AUTH_ACTIVE_ESTADOS", "act")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "db.local", cfg.DB.Host)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiry)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.RefreshExpiry)
	assert.Equal(t, []string{"ACT"}, cfg.Auth.ActiveEstadoCodes)
	assert.Equal(t, "usuario", cfg.Auth.DefaultRole)
	assert.Equal(t, "America/Lima", cfg.DB.TimeZone)
}
