package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/minigrep/internal/core/domain"
)

func envOf(vars map[string]string) LookupEnvFunc {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestBuildConfig_Success(t *testing.T) {
	cfg, err := BuildConfig([]string{"prog", "duct", "poem.txt"}, envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, &domain.Config{Query: "duct", Path: "poem.txt", IgnoreCase: false}, cfg)
}

func TestBuildConfig_MissingQuery(t *testing.T) {
	cfg, err := BuildConfig([]string{"prog"}, envOf(nil))

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, domain.ErrMissingQuery)
	assert.ErrorIs(t, err, domain.ErrConfig)
}

func TestBuildConfig_NoArgsAtAll(t *testing.T) {
	_, err := BuildConfig(nil, envOf(nil))

	assert.ErrorIs(t, err, domain.ErrMissingQuery)
}

func TestBuildConfig_MissingPath(t *testing.T) {
	cfg, err := BuildConfig([]string{"prog", "duct"}, envOf(nil))

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, domain.ErrMissingPath)
	assert.NotErrorIs(t, err, domain.ErrMissingQuery)
}

func TestBuildConfig_EmptyQueryIsAccepted(t *testing.T) {
	cfg, err := BuildConfig([]string{"prog", "", "poem.txt"}, envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, "", cfg.Query)
}

func TestBuildConfig_ExtraArgsIgnored(t *testing.T) {
	cfg, err := BuildConfig([]string{"prog", "duct", "poem.txt", "extra"}, envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, "poem.txt", cfg.Path)
}

func TestBuildConfig_IgnoreCasePresenceOnly(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"one", "1"},
		{"zero", "0"},
		{"false", "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := BuildConfig(
				[]string{"prog", "duct", "poem.txt"},
				envOf(map[string]string{"IGNORE_CASE": tt.value}),
			)

			require.NoError(t, err)
			assert.True(t, cfg.IgnoreCase)
		})
	}
}

func TestBuildConfig_PathNotCheckedForExistence(t *testing.T) {
	cfg, err := BuildConfig([]string{"prog", "q", "/definitely/not/here.txt"}, envOf(nil))

	require.NoError(t, err)
	assert.Equal(t, "/definitely/not/here.txt", cfg.Path)
}

func TestConfigBuilder_UsesInjectedEnv(t *testing.T) {
	b := NewConfigBuilder(envOf(map[string]string{"IGNORE_CASE": ""}))

	cfg, err := b.Build([]string{"prog", "duct", "poem.txt"})

	require.NoError(t, err)
	assert.True(t, cfg.IgnoreCase)
}

func TestConfigBuilder_DefaultsToProcessEnv(t *testing.T) {
	t.Setenv("IGNORE_CASE", "")

	cfg, err := NewConfigBuilder(nil).Build([]string{"prog", "duct", "poem.txt"})

	require.NoError(t, err)
	assert.True(t, cfg.IgnoreCase)
}
