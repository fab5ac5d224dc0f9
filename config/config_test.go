package config

import (
	"testing"

	v "github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T, values map[string]any) {
	t.Helper()

	v.Reset()
	t.Cleanup(v.Reset)

	SetDefaults()
	v.Set("jwt.secret", "secret")

	for k, val := range values {
		v.Set(k, val)
	}
}

func TestValidate_Defaults(t *testing.T) {
	setup(t, nil)

	require.NoError(t, Validate())
	assert.Equal(t, "sqlite", v.GetString("db.driver"))
	assert.Equal(t, "none", v.GetString("storage.type"))
	assert.Equal(t, 10, v.GetInt("security.rate_limit"))
}

func TestValidate_SplitsCORS(t *testing.T) {
	setup(t, map[string]any{"host.cors": "https://a.example.com, https://b.example.com"})

	require.NoError(t, Validate())
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, v.GetStringSlice("host.cors"))
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		values map[string]any
	}{
		{"log level", map[string]any{"app.log_level": "loud"}},
		{"port", map[string]any{"host.port": 0}},
		{"ssl without certificate", map[string]any{"host.ssl.enabled": true}},
		{"driver", map[string]any{"db.driver": "mysql"}},
		{"dsn", map[string]any{"db.dsn": ""}},
		{"session ttl", map[string]any{"session.ttl": "0s"}},
		{"mail without host", map[string]any{"mail.enabled": true}},
		{"turnstile without secret", map[string]any{"cloudflare.turnstile.enabled": true}},
		{"storage type", map[string]any{"storage.type": "local"}},
		{"s3 without keys", map[string]any{"storage.type": "s3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setup(t, tt.values)
			assert.Error(t, Validate())
		})
	}
}
