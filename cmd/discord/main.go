package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/osse101/CropCalc_Go/internal/discord"
	"github.com/osse101/CropCalc_Go/internal/logger"
)

// Default values for optional configuration
const (
	DefaultHealthPort = "8082"
	DefaultAPIURL     = "http://localhost:8080"
	serviceName       = "cropcalc-discord"
)

// CommandFactory creates a Discord command and its handler
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	healthPort := os.Getenv("DISCORD_HEALTH_PORT")
	if healthPort == "" {
		healthPort = DefaultHealthPort
	}

	httpServer := discord.NewHTTPServer(healthPort, bot)
	httpServer.Start()
	defer httpServer.Stop()

	registerCommands(bot, getCommandFactories())

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		// Commands registered on a previous run keep working
		slog.Error("Failed to register commands", "error", err)
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger configures structured logging to stdout
func setupLogger() {
	cfg := logger.DefaultConfig()
	cfg.ServiceName = serviceName
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Level = level
	}
	if format := os.Getenv("LOG_FORMAT"); format != "" {
		cfg.Format = format
	}
	logger.InitLogger(cfg)
}

// loadConfig loads the bot configuration from environment variables
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, requests will only succeed if the API has auth disabled")
	}

	return discord.Config{
		Token:  token,
		AppID:  appID,
		APIURL: apiURL,
		APIKey: apiKey,
	}, nil
}

// getCommandFactories lists every Discord command the bot serves
func getCommandFactories() []CommandFactory {
	return []CommandFactory{
		discord.PingCommand,
		discord.CropsCommand,
		discord.OddsCommand,
		discord.EstimateCommand,
	}
}

// registerCommands adds every factory's command to the bot's registry
func registerCommands(bot *discord.Bot, factories []CommandFactory) {
	for _, factory := range factories {
		cmd, handler := factory()
		bot.Registry.Register(cmd, handler)
	}
	slog.Info("Commands registered", "count", len(factories))
}
