package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierSourceWins verifies the merge direction: when two sources
// disagree on a field, the source appended first keeps its value, and later
// sources only fill fields still empty.
func TestBuild_EarlierSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{Bot: Bot{Token: "123:abc", Endpoint: "https://first.example.com"}},
		&Config{
			Bot:     Bot{Endpoint: "https://second.example.com", Timeout: 10 * time.Second},
			Polling: Polling{Limit: 50},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "https://first.example.com", cfg.Bot.Endpoint)
	assert.Equal(t, 10*time.Second, cfg.Bot.Timeout)
	assert.Equal(t, 50, cfg.Polling.Limit)
}

// TestBuild_EnvBeatsJSON runs the real env and JSON sources in loading
// order: the endpoint set in both places comes out as the env value, while
// fields only the file sets are filled from it.
func TestBuild_EnvBeatsJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"bot": {"endpoint": "https://json.example.com", "flood_retries": 3},
		"polling": {"limit": 75}
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("BOT_ENDPOINT", "https://env.example.com")
	t.Setenv("CONFIG", path)

	cfg, err := newConfigBuilder().withEnv().withJSON().build()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Bot.Token)
	assert.Equal(t, "https://env.example.com", cfg.Bot.Endpoint)
	assert.Equal(t, 3, cfg.Bot.FloodRetries)
	assert.Equal(t, 75, cfg.Polling.Limit)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &Config{
		JSONFilePath: filepath.Join(t.TempDir(), "nope.json"),
	})
	b.withJSON()

	assert.Error(t, b.err)
}

// TestWithJSON_UsesLastPath verifies that when several sources carry a file
// path, the one loaded last wins.
func TestWithJSON_UsesLastPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"bot": {"token": "123:last"}}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&Config{JSONFilePath: ""},
		&Config{JSONFilePath: path},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "123:last", b.configs[2].Bot.Token)
}
