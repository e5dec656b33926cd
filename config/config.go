package config

import (
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/base/stores/gdb"
	"github.com/locey/BurnWin/engagement"
	"github.com/locey/BurnWin/events"
	"github.com/locey/BurnWin/verification"
	"github.com/locey/BurnWin/verification/provider"
)

const (
	EnvProduction = "production"
	envPrefix     = "BURNWIN"
)

type Config struct {
	Api          Api          `toml:"api" mapstructure:"api"`
	Log          xzap.Conf    `toml:"log" mapstructure:"log"`
	DB           gdb.Config   `toml:"db" mapstructure:"db"`
	Redis        Redis        `toml:"redis" mapstructure:"redis"`
	NATS         NATS         `toml:"nats" mapstructure:"nats"`
	Verification Verification `toml:"verification" mapstructure:"verification"`
	Twitter      Twitter      `toml:"twitter" mapstructure:"twitter"`
	Discord      Discord      `toml:"discord" mapstructure:"discord"`
	Telegram     Telegram     `toml:"telegram" mapstructure:"telegram"`
	Email        Email        `toml:"email" mapstructure:"email"`
	Custom       Custom       `toml:"custom" mapstructure:"custom"`
	Contract     Contract     `toml:"contract" mapstructure:"contract"`
	Catalog      Catalog      `toml:"catalog" mapstructure:"catalog"`
	Backend      Backend      `toml:"backend" mapstructure:"backend"`
}

type Api struct {
	Port        string   `toml:"port" mapstructure:"port"`
	CorsOrigins []string `toml:"cors_origins" mapstructure:"cors_origins"`
}

type Redis struct {
	Enabled                bool `toml:"enabled" mapstructure:"enabled"`
	engagement.RedisConfig `mapstructure:",squash"`
}

type NATS struct {
	Enabled           bool `toml:"enabled" mapstructure:"enabled"`
	events.NATSConfig `mapstructure:",squash"`
}

type Verification struct {
	// Env "production" forbids mock mode.
	Env       string        `toml:"env" mapstructure:"env"`
	MockMode  bool          `toml:"mock_mode" mapstructure:"mock_mode"`
	MockDelay time.Duration `toml:"mock_delay" mapstructure:"mock_delay"`
	Timeout   time.Duration `toml:"timeout" mapstructure:"timeout"`
	MinDwell  time.Duration `toml:"min_dwell" mapstructure:"min_dwell"`
}

type Twitter struct {
	BearerToken string `toml:"bearer_token" mapstructure:"bearer_token"`
	BaseURL     string `toml:"base_url" mapstructure:"base_url"`
}

type Discord struct {
	BotToken string `toml:"bot_token" mapstructure:"bot_token"`
	BaseURL  string `toml:"base_url" mapstructure:"base_url"`
}

type Telegram struct {
	BotToken string `toml:"bot_token" mapstructure:"bot_token"`
	BaseURL  string `toml:"base_url" mapstructure:"base_url"`
}

type Email struct {
	APIKey  string `toml:"api_key" mapstructure:"api_key"`
	BaseURL string `toml:"base_url" mapstructure:"base_url"`
}

type Custom struct {
	SigningKey string `toml:"signing_key" mapstructure:"signing_key"`
}

type Contract struct {
	RPCEndpoint     string `toml:"rpc_endpoint" mapstructure:"rpc_endpoint"`
	BurnPoolAddress string `toml:"burn_pool_address" mapstructure:"burn_pool_address"`
	ABIPath         string `toml:"abi_path" mapstructure:"abi_path"`
}

type Catalog struct {
	Path string `toml:"path" mapstructure:"path"`
}

// Backend is the verify endpoint used by the CLI widget.
type Backend struct {
	BaseURL string `toml:"base_url" mapstructure:"base_url"`
}

// UnmarshalConfig 读取toml配置，环境变量 BURNWIN_<SECTION>_<KEY> 覆盖文件
func UnmarshalConfig(configFilePath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configFilePath)
	v.SetConfigType("toml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "failed on read config")
	}
	c := new(Config)
	if err := v.Unmarshal(c); err != nil {
		return nil, errors.Wrap(err, "failed on unmarshal config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.port", ":9000")
	v.SetDefault("log.level", "info")
	v.SetDefault("verification.env", EnvProduction)
	v.SetDefault("verification.mock_mode", false)
	v.SetDefault("verification.mock_delay", verification.DefaultMockDelay)
	v.SetDefault("verification.timeout", verification.DefaultTimeout)
	v.SetDefault("verification.min_dwell", verification.DefaultMinDwell)
	v.SetDefault("catalog.path", "./config/campaigns.yaml")
	v.SetDefault("backend.base_url", "http://127.0.0.1:9000")
	// secrets usually come from the environment only
	for _, k := range []string{
		"twitter.bearer_token", "discord.bot_token", "telegram.bot_token",
		"email.api_key", "custom.signing_key", "db.dsn", "redis.password",
	} {
		v.SetDefault(k, "")
	}
}

func (c *Config) Validate() error {
	ver := c.Verification
	if ver.MockMode && strings.EqualFold(ver.Env, EnvProduction) {
		return errors.New("verification.mock_mode must not be enabled in production")
	}
	if ver.Timeout <= 0 {
		return errors.New("verification.timeout must be positive")
	}
	if ver.MinDwell < 0 || ver.MockDelay < 0 {
		return errors.New("verification.min_dwell and verification.mock_delay must not be negative")
	}
	if c.Api.Port == "" {
		return errors.New("api.port is empty")
	}
	if c.Catalog.Path == "" {
		return errors.New("catalog.path is empty")
	}
	if c.DB.Enabled && c.DB.DSN == "" {
		return errors.New("db.dsn is empty")
	}
	if c.Redis.Enabled && c.Redis.Addr == "" {
		return errors.New("redis.addr is empty")
	}
	if c.NATS.Enabled && c.NATS.URL == "" {
		return errors.New("nats.url is empty")
	}
	return nil
}

func (c *Config) ProviderConfig() provider.Config {
	return provider.Config{
		Twitter:  provider.TwitterConfig{BearerToken: provider.NewSecret(c.Twitter.BearerToken), BaseURL: c.Twitter.BaseURL},
		Discord:  provider.DiscordConfig{BotToken: provider.NewSecret(c.Discord.BotToken), BaseURL: c.Discord.BaseURL},
		Telegram: provider.TelegramConfig{BotToken: provider.NewSecret(c.Telegram.BotToken), BaseURL: c.Telegram.BaseURL},
		Email:    provider.EmailConfig{APIKey: provider.NewSecret(c.Email.APIKey), BaseURL: c.Email.BaseURL},
		Custom:   provider.CustomConfig{SigningKey: provider.NewSecret(c.Custom.SigningKey)},
	}
}

func (c *Config) OrchestratorOptions(observer verification.Observer) verification.Options {
	return verification.Options{
		Timeout:   c.Verification.Timeout,
		MinDwell:  c.Verification.MinDwell,
		MockMode:  c.Verification.MockMode,
		MockDelay: c.Verification.MockDelay,
		Observer:  observer,
	}
}
