package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds tool configuration. The process is one-shot, so the
// config is read once at startup and never reloaded.
type Config struct {
	IgnorePlayers []string `mapstructure:"ignore_players"`
	UI            struct {
		Color     string `mapstructure:"color"`
		MaxLength int    `mapstructure:"max_length"`
	} `mapstructure:"ui"`
}

func initConfig(ignoreFlags []string) Config {
	// Set defaults
	viper.SetDefault("ignore_players", []string{})
	viper.SetDefault("ui.color", "2")
	viper.SetDefault("ui.max_length", 40)

	// Set config file location following XDG standard
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Check XDG_CONFIG_HOME first, fallback to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			configHome = filepath.Join(homeDir, ".config")
		}
	}

	if configHome != "" {
		viper.AddConfigPath(filepath.Join(configHome, "mediaplayerctl"))
	}

	// Environment variable support with MEDIAPLAYERCTL_ prefix
	viper.SetEnvPrefix("MEDIAPLAYERCTL")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file (ignore error if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			log.Printf("warning: error reading config file: %v", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		log.Printf("warning: error parsing config: %v", err)
	}

	// Command-line ignores add to the configured ones
	cfg.IgnorePlayers = append(cfg.IgnorePlayers, ignoreFlags...)
	return cfg
}

// filterIgnored drops players named, by instance name or full bus name,
// in the ignore list.
func filterIgnored(players, ignored []string) []string {
	if len(ignored) == 0 {
		return players
	}
	var kept []string
	for _, player := range players {
		if !isIgnored(player, ignored) {
			kept = append(kept, player)
		}
	}
	return kept
}

func isIgnored(player string, ignored []string) bool {
	instance := strings.TrimPrefix(player, mprisPrefix)
	for _, name := range ignored {
		if name == player || name == instance {
			return true
		}
		// "vlc" also matches "vlc.instance123"
		if rest, ok := strings.CutPrefix(instance, name); ok && strings.HasPrefix(rest, ".") {
			return true
		}
	}
	return false
}
