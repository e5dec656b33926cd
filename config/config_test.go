package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestUnmarshalConfig_SampleFile(t *testing.T) {
	c, err := UnmarshalConfig("config.toml")
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Api.Port)
	assert.Equal(t, 10*time.Second, c.Verification.Timeout)
	assert.Equal(t, 2*time.Second, c.Verification.MinDwell)
	assert.Equal(t, 1500*time.Millisecond, c.Verification.MockDelay)
	assert.False(t, c.Verification.MockMode)
	assert.Equal(t, "127.0.0.1:6379", c.Redis.Addr)
	assert.Equal(t, 720*time.Hour, c.Redis.TTL)
	assert.Equal(t, "burnwin.task.completed", c.NATS.SubjectPrefix)
	assert.Equal(t, time.Hour, c.DB.ConnMaxLifetime)
}

func TestUnmarshalConfig_Defaults(t *testing.T) {
	c, err := UnmarshalConfig(writeConfig(t, "[api]\n"))
	require.NoError(t, err)
	assert.Equal(t, ":9000", c.Api.Port)
	assert.Equal(t, EnvProduction, c.Verification.Env)
	assert.Equal(t, "./config/campaigns.yaml", c.Catalog.Path)
}

func TestUnmarshalConfig_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("BURNWIN_DISCORD_BOT_TOKEN", "bot-secret")
	t.Setenv("BURNWIN_VERIFICATION_TIMEOUT", "3s")

	c, err := UnmarshalConfig(writeConfig(t, "[discord]\nbase_url = \"http://discord.local\"\n"))
	require.NoError(t, err)
	assert.Equal(t, "bot-secret", c.Discord.BotToken)
	assert.Equal(t, 3*time.Second, c.Verification.Timeout)

	pc := c.ProviderConfig()
	tok, ok := pc.Discord.BotToken.Value()
	assert.True(t, ok)
	assert.Equal(t, "bot-secret", tok)
	_, ok = pc.Twitter.BearerToken.Value()
	assert.False(t, ok)
}

func TestUnmarshalConfig_MockModeRejectedInProduction(t *testing.T) {
	_, err := UnmarshalConfig(writeConfig(t, "[verification]\nenv = \"production\"\nmock_mode = true\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mock_mode")

	c, err := UnmarshalConfig(writeConfig(t, "[verification]\nenv = \"development\"\nmock_mode = true\n"))
	require.NoError(t, err)
	assert.True(t, c.OrchestratorOptions(nil).MockMode)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Api:          Api{Port: ":9000"},
			Verification: Verification{Env: "development", Timeout: time.Second},
			Catalog:      Catalog{Path: "campaigns.yaml"},
		}
	}
	require.NoError(t, base().Validate())

	c := base()
	c.Verification.Timeout = 0
	assert.Error(t, c.Validate())

	c = base()
	c.DB.Enabled = true
	assert.Error(t, c.Validate())

	c = base()
	c.NATS.Enabled = true
	assert.Error(t, c.Validate())

	c = base()
	c.Verification.MinDwell = -time.Second
	assert.Error(t, c.Validate())
}
