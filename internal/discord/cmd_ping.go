package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

const (
	msgPongOnline  = "Pong! 🏓 Calculator is online."
	msgPongOffline = "Pong! 🏓 The bot is up but the calculator isn't answering."
)

// PingCommand returns the ping command definition and handler
func PingCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "ping",
		Description: "Check if the bot and calculator are alive",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		content := msgPongOffline
		if client != nil && client.Healthy() {
			content = msgPongOnline
		}

		if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: content,
			},
		}); err != nil {
			slog.Error("Failed to respond to ping", "error", err)
		}
	}

	return cmd, handler
}
