package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envOf(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv(envOf(nil))
	require.NoError(t, err)

	assert.Equal(t, "tournament.db", cfg.DatabasePath)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, []string{"http://localhost:8080"}, cfg.CORSOrigins)
	assert.True(t, cfg.CORSCredentials())
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
	assert.False(t, cfg.PaymentsEnabled())
	assert.False(t, cfg.MailEnabled())
	assert.False(t, cfg.UploadsEnabled())
}

func TestFromEnv_Values(t *testing.T) {
	cfg, err := FromEnv(envOf(map[string]string{
		"PORT":                  "9000",
		"BASE_URL":              "https://brackets.example.com/",
		"CORS_ORIGINS":          "https://a.example.com, https://b.example.com",
		"STRIPE_SECRET_KEY":     "sk_test_1",
		"STRIPE_WEBHOOK_SECRET": "whsec_1",
		"R2_ACCOUNT_ID":         "acc",
		"R2_ACCESS_KEY_ID":      "key",
		"R2_SECRET_ACCESS_KEY":  "secret",
		"R2_BUCKET":             "bucket",
		"R2_PUBLIC_BASE_URL":    "https://cdn.example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "https://brackets.example.com", cfg.BaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.True(t, cfg.PaymentsEnabled())
	assert.True(t, cfg.UploadsEnabled())
}

func TestFromEnv_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		env  map[string]string
	}{
		{name: "non numeric port", env: map[string]string{"PORT": "abc"}},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}},
		{name: "bad session lifetime", env: map[string]string{"SESSION_LIFETIME": "forever"}},
		{name: "stripe without webhook secret", env: map[string]string{"STRIPE_SECRET_KEY": "sk_test_1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromEnv(envOf(tc.env))
			assert.Error(t, err)
		})
	}
}

func TestFromEnv_CORS(t *testing.T) {
	testCases := []struct {
		name        string
		env         map[string]string
		origins     []string
		credentials bool
	}{
		{"follows base url", map[string]string{"BASE_URL": "https://brackets.example.com/"}, []string{"https://brackets.example.com"}, true},
		{"wildcard", map[string]string{"CORS_ORIGINS": "*"}, []string{"*"}, false},
		{"wildcard in list", map[string]string{"CORS_ORIGINS": "https://a.example.com,*"}, []string{"https://a.example.com", "*"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := FromEnv(envOf(tc.env))
			require.NoError(t, err)

			assert.Equal(t, tc.origins, cfg.CORSOrigins)
			assert.Equal(t, tc.credentials, cfg.CORSCredentials())
		})
	}
}
