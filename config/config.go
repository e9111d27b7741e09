package config

import (
	"fmt"
	"log"

	"attendance-bot/model"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads the bootstrap configuration from the environment. A .env file in
// the working directory is applied first when present.
func Load() (*model.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("DATA_DIR", "data")

	cfg := &model.Config{
		BotToken:     v.GetString("BOT_TOKEN"),
		AppID:        v.GetString("APP_ID"),
		GuildID:      v.GetString("GUILD_ID"),
		LogChannelID: v.GetString("LOG_CHANNEL_ID"),
		DataDir:      v.GetString("DATA_DIR"),
	}

	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN environment variable not set")
	}
	if cfg.AppID == "" {
		return nil, fmt.Errorf("APP_ID environment variable not set")
	}
	if cfg.LogChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	return cfg, nil
}
