package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/format"
	"github.com/osse101/CropCalc_Go/internal/handler"
)

// CropsCommand returns the crops command definition and handler
func CropsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "crops",
		Description: "List the crops that grow in a season",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "season",
				Description: "Season to list (default: all)",
				Required:    false,
				Choices:     seasonChoices(),
			},
		},
	}

	handle := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			season := optionString(getOptions(i), "season")
			resp, err := client.ListCrops(season)
			if err != nil {
				return nil, err
			}
			return cropsEmbed(resp), nil
		}, ResponseConfig{Title: TitleAllCrops, Color: ColorInfo})
	}

	return cmd, handle
}

func cropsEmbed(resp *handler.CropListResponse) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{}
	if resp.Season != "" {
		embed.Title = fmt.Sprintf(TitleCrops, format.SeasonTitle(resp.Season))
	}
	if len(resp.Crops) == 0 {
		embed.Description = MsgNoCrops
		return embed
	}

	var sb strings.Builder
	for _, crop := range resp.Crops {
		sb.WriteString(cropLine(crop))
		sb.WriteString("\n")
	}
	embed.Description = sb.String()
	return embed
}

// cropLine renders one crop: name, seed cost, raw prices and the products it supports
func cropLine(crop handler.CropSummary) string {
	harvest := ""
	if crop.IsMulti() {
		harvest = fmt.Sprintf(" ×%g", crop.HarvestsPerSeed)
	}

	products := make([]string, 0, len(crop.Channels))
	for _, ch := range crop.Channels {
		if ch == domain.ChannelSold {
			continue
		}
		products = append(products, format.ChannelTitle(ch))
	}
	productText := "raw only"
	if len(products) > 0 {
		productText = strings.Join(products, ", ")
	}

	return fmt.Sprintf("**%s**%s · seed %s · %s/%s/%s · %s",
		crop.Name,
		harvest,
		format.Currency(crop.SeedCost),
		format.Currency(crop.Prices.Base),
		format.Currency(crop.Prices.Silver),
		format.Currency(crop.Prices.Gold),
		productText,
	)
}
