package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	PlatformDiscord = "discord"
	PlatformSlack   = "slack"

	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageRedis  = "redis"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	ChatPlatform string `envconfig:"CHAT_PLATFORM" default:"discord"` // discord|slack

	DiscordToken       string `envconfig:"DISCORD_TOKEN"`
	CommandPrefix      string `envconfig:"COMMAND_PREFIX" default:"!"`
	SlackBotToken      string `envconfig:"SLACK_BOT_TOKEN"`
	SlackSigningSecret string `envconfig:"SLACK_SIGNING_SECRET"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"file"` // file|sqlite|redis
	SnapshotPath  string `envconfig:"SNAPSHOT_PATH" default:"./data/schedules.json"`
	DatabasePath  string `envconfig:"DATABASE_PATH" default:"./data/alarms.db"`
	RedisURL      string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	RedisKey      string `envconfig:"REDIS_KEY" default:"alarmbot:schedules"`

	TickInterval time.Duration `envconfig:"TICK_INTERVAL" default:"10s"`
	SendTimeout  time.Duration `envconfig:"SEND_TIMEOUT" default:"10s"`
	SaveTimeout  time.Duration `envconfig:"SAVE_TIMEOUT" default:"5s"`

	HTTPAddr string `envconfig:"HTTP_ADDR" default:":3000"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"` // debug|info|warn|error
}

// Load reads an optional .env file and then the environment into Config.
func Load() (Config, error) {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.ChatPlatform {
	case PlatformDiscord:
		if c.DiscordToken == "" {
			return errors.New("DISCORD_TOKEN is required for the discord platform")
		}
	case PlatformSlack:
		if c.SlackBotToken == "" || c.SlackSigningSecret == "" {
			return errors.New("SLACK_BOT_TOKEN and SLACK_SIGNING_SECRET are required for the slack platform")
		}
	default:
		return fmt.Errorf("unknown CHAT_PLATFORM %q", c.ChatPlatform)
	}

	if err := c.ValidateStorage(); err != nil {
		return err
	}

	if c.TickInterval <= 0 || c.SendTimeout <= 0 || c.SaveTimeout <= 0 {
		return errors.New("TICK_INTERVAL, SEND_TIMEOUT and SAVE_TIMEOUT must be positive")
	}
	// a slower tick could step over a whole minute and miss its entries
	if c.TickInterval >= time.Minute {
		return errors.New("TICK_INTERVAL must be shorter than a minute")
	}
	return nil
}

// ValidateStorage checks only the storage settings, enough for offline tools.
func (c Config) ValidateStorage() error {
	switch c.StorageDriver {
	case StorageFile, StorageSQLite, StorageRedis:
		return nil
	default:
		return fmt.Errorf("unknown STORAGE_DRIVER %q", c.StorageDriver)
	}
}
