package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies that a non-zero field from an earlier
// source is not overwritten by a later one, while zero fields are filled.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "from-env"}},
		&StructuredConfig{App: App{Version: "from-json", LogFile: "/tmp/l.log"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.App.Version)
	assert.Equal(t, "/tmp/l.log", cfg.App.LogFile)
}

func TestBuild_RejectsMaxBelowMin(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Workers: Workers{MinDelay: time.Minute, MaxDelay: time.Second},
	})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidWorkerConfigs)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":     "env-version",
		"ADAPTER_ADDRESS": "https://env.example.com",
	})

	b := newConfigBuilder()
	b.withEnv()

	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "https://env.example.com", b.configs[0].Adapter.HTTPAddress)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_MAX_DELAY": "forever"})

	b := newConfigBuilder()
	b.withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags([]string{"-vault", "/flags/vault"}))

	require.Len(t, b.configs, 1)
	assert.Equal(t, "/flags/vault", b.configs[0].Storage.Vault.Dir)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-bogus"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Storage.Vault.StagingFolder = "json-inbox"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
	assert.Equal(t, "json-inbox", b.configs[1].Storage.Vault.StagingFolder)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		JSONFilePath: "/nonexistent/config.json",
	})
	b.withJSON()

	assert.Error(t, b.err)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "last-wins"
	path := writeTempJSONConfig(t, payload)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: "/nonexistent/first.json"},
		&StructuredConfig{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "last-wins", b.configs[2].App.Version)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsOnlyMissingFields(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Workers: Workers{MinDelay: 5 * time.Second},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.Workers.MinDelay)
	assert.Equal(t, defaultMaxDelay, cfg.Workers.MaxDelay)
	assert.Equal(t, defaultStagingFolder, cfg.Storage.Vault.StagingFolder)
	assert.Equal(t, defaultKeyringService, cfg.Storage.Keyring.ServiceName)
	assert.NotEmpty(t, cfg.Storage.DB.DSN)
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig_DefaultsAreValid(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, defaultAddress, cfg.Adapter.HTTPAddress)
	assert.Equal(t, defaultMinDelay, cfg.Workers.MinDelay)
	assert.Equal(t, defaultVersion, cfg.App.Version)
}

func TestGetClientConfig_FlagsOverrideDefaults(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-vault", "/tmp/vault", "-staging", "Inbox", "-headless"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/vault", cfg.Storage.Vault.Root)
	assert.Equal(t, "/tmp/vault/Inbox", cfg.Storage.Vault.StagingDir())
	assert.True(t, cfg.App.Headless)
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{Version: "1"},
			Adapter: ClientAdapter{HTTPAddress: "https://x", RequestTimeout: time.Second},
			Storage: ClientStorage{
				DB:    ClientDB{DSN: "/tmp/s.db"},
				Vault: ClientVault{Root: "/v", StagingFolder: "In"},
			},
			Workers: ClientWorkers{MinDelay: time.Second, MaxDelay: time.Minute},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *ClientConfig)
		want   error
	}{
		{"valid", func(c *ClientConfig) {}, nil},
		{"memory dsn", func(c *ClientConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"no vault", func(c *ClientConfig) { c.Storage.Vault.Root = "" }, ErrInvalidVaultConfigs},
		{"escaping staging", func(c *ClientConfig) { c.Storage.Vault.StagingFolder = "../out" }, ErrInvalidVaultConfigs},
		{"absolute staging", func(c *ClientConfig) { c.Storage.Vault.StagingFolder = "/abs" }, ErrInvalidVaultConfigs},
		{"no address", func(c *ClientConfig) { c.Adapter.HTTPAddress = "" }, ErrInvalidAdapterConfigs},
		{"zero timeout", func(c *ClientConfig) { c.Adapter.RequestTimeout = 0 }, ErrInvalidAdapterConfigs},
		{"zero min delay", func(c *ClientConfig) { c.Workers.MinDelay = 0 }, ErrInvalidWorkerConfigs},
		{"max below min", func(c *ClientConfig) { c.Workers.MaxDelay = time.Millisecond }, ErrInvalidWorkerConfigs},
		{"no version", func(c *ClientConfig) { c.App.Version = "" }, ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := c.validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
