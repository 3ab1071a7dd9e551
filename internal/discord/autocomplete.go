package discord

import (
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CropCalc_Go/internal/domain"
)

// maxChoices is Discord's limit on autocomplete suggestions
const maxChoices = 25

// HandleAutocomplete routes autocomplete interactions to the appropriate handler
func HandleAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	data := i.ApplicationCommandData()

	switch data.Name {
	case "estimate":
		handleCropAutocomplete(s, i, client)
	default:
		slog.Warn("Unhandled autocomplete command", "command", data.Name)
	}
}

// handleCropAutocomplete suggests crops of the chosen season whose name contains the typed text
func handleCropAutocomplete(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	opts := getOptions(i)

	var typed string
	for _, opt := range opts {
		if opt.Focused {
			typed = strings.ToLower(strings.TrimSpace(opt.StringValue()))
			break
		}
	}

	// Season may not be filled in yet; an invalid one lists every crop
	season := optionString(opts, optSeason)
	if _, ok := domain.ParseSeason(season); !ok {
		season = ""
	}

	resp, err := client.ListCrops(season)
	if err != nil {
		slog.Error("Failed to fetch crops for autocomplete", "error", err)
		respondChoices(s, i, nil)
		return
	}

	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, maxChoices)
	seen := make(map[string]bool)
	for _, crop := range resp.Crops {
		if len(choices) >= maxChoices {
			break
		}
		if seen[crop.Name] {
			continue
		}
		if typed != "" && !strings.Contains(strings.ToLower(crop.Name), typed) {
			continue
		}
		seen[crop.Name] = true
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  crop.Name,
			Value: crop.Name,
		})
	}

	respondChoices(s, i, choices)
}

func respondChoices(s *discordgo.Session, i *discordgo.InteractionCreate, choices []*discordgo.ApplicationCommandOptionChoice) {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionApplicationCommandAutocompleteResult,
		Data: &discordgo.InteractionResponseData{
			Choices: choices,
		},
	}); err != nil {
		slog.Error("Failed to respond to autocomplete", "error", err)
	}
}
