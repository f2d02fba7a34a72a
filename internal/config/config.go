package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// ErrDiscordToken is returned by RequireDiscord when no Discord credential is set.
var ErrDiscordToken = errors.New("DISCORD_TOKEN is not set")

// Config holds all configuration from environment variables.
type Config struct {
	DiscordToken string `envconfig:"DISCORD_TOKEN"`

	CocktailToken   string        `envconfig:"THECOCKTAILDB_TOKEN" required:"true"`
	CocktailBaseURL string        `envconfig:"THECOCKTAILDB_BASE_URL" default:"https://www.thecocktaildb.com/api/json/v1"`
	CocktailTimeout time.Duration `envconfig:"THECOCKTAILDB_TIMEOUT" default:"10s"`

	// Path to an optional dotenv file read before the environment is processed
	EnvFile string `envconfig:"ENV_FILE" default:".env"`

	// Path to config.toml file
	ConfigFile string `envconfig:"CONFIG_FILE" default:"config.toml"`

	// Command and listener settings loaded from config.toml
	Command  Command
	Listener Listener
}

// Command describes the slash command registered with Discord.
type Command struct {
	Name        string `toml:"name"`
	Description string `toml:"description"`
}

// Listener describes the passive message trigger.
type Listener struct {
	Trigger string `toml:"trigger"`
}

// FileConfig represents the structure of config.toml.
type FileConfig struct {
	Command  Command  `toml:"command"`
	Listener Listener `toml:"listener"`
}

// DefaultCommand is used when config.toml is absent or leaves fields empty.
var DefaultCommand = Command{
	Name:        "random",
	Description: "Fetches a random drink",
}

// DefaultListener is used when config.toml is absent or leaves the trigger empty.
var DefaultListener = Listener{
	Trigger: "!drink",
}

// LoadDotEnv reads the dotenv file into the process environment. Variables
// that are already set win over the file.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	return godotenv.Load(path)
}

// LoadEnv loads the configuration from environment variables.
func (c Config) LoadEnv() (Config, error) {
	cfg := c

	if err := envconfig.Process("", &cfg); err != nil {
		return c, err
	}

	return cfg, nil
}

// LoadFile loads command and listener settings from config.toml file.
func (c *Config) LoadFile() error {
	configPath := c.ConfigFile
	if !filepath.IsAbs(configPath) {
		// Try current directory first
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			// Try executable directory
			execPath, err := os.Executable()
			if err == nil {
				configPath = filepath.Join(filepath.Dir(execPath), c.ConfigFile)
			}
		}
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		c.Command = DefaultCommand
		c.Listener = DefaultListener
		return nil
	}

	var fileConfig FileConfig
	if _, err := toml.DecodeFile(configPath, &fileConfig); err != nil {
		return fmt.Errorf("failed to decode %s: %w", configPath, err)
	}

	c.Command = fileConfig.Command
	c.Listener = fileConfig.Listener

	if c.Command.Name == "" {
		c.Command.Name = DefaultCommand.Name
	}
	if c.Command.Description == "" {
		c.Command.Description = DefaultCommand.Description
	}
	if c.Listener.Trigger == "" {
		c.Listener.Trigger = DefaultListener.Trigger
	}

	return nil
}

// RequireDiscord reports whether a Discord credential is configured. Only the
// Discord bindings need it, so it is not enforced by LoadEnv.
func (c *Config) RequireDiscord() error {
	if c.DiscordToken == "" {
		return ErrDiscordToken
	}
	return nil
}

// NewConfig reads the dotenv file, the environment and config.toml, in that
// order. A dotenv file that cannot be read is only a warning.
func NewConfig(log zerolog.Logger) (*Config, error) {
	envFile := os.Getenv("ENV_FILE")
	if err := LoadDotEnv(envFile); err != nil {
		log.Warn().Err(err).Msg("failed to read env file")
	}

	var cfg Config
	loadedCfg, err := cfg.LoadEnv()
	if err != nil {
		return nil, err
	}

	if err := loadedCfg.LoadFile(); err != nil {
		return nil, err
	}

	return &loadedCfg, nil
}

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(
			NewConfig,
		),
	)
}
