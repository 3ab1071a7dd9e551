package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/format"
)

const oddsTolerance = 0.01

// OddsCommand returns the quality odds command definition and handler
func OddsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	minLevel := float64(0)
	cmd := &discordgo.ApplicationCommand{
		Name:        "odds",
		Description: "Show the chance of each crop quality at a farming level",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "level",
				Description: "Farming level",
				Required:    true,
				MinValue:    &minLevel,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			level := optionInt(getOptions(i), "level", domain.DefaultSkillLevel)
			row, err := client.GetProbability(level)
			if err != nil {
				return nil, err
			}
			return oddsEmbed(row), nil
		}, ResponseConfig{Color: ColorInfo})
	}

	return cmd, handler
}

func oddsEmbed(row *domain.QualityProbabilityRow) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:  fmt.Sprintf(TitleOdds, row.SkillLevel),
		Fields: make([]*discordgo.MessageEmbedField, 0, len(domain.QualityTiers)),
	}
	for _, tier := range domain.QualityTiers {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   tierTitle(tier),
			Value:  format.Percent(row.Percent(tier)),
			Inline: true,
		})
	}

	if total := row.Total(); total < 100-oddsTolerance || total > 100+oddsTolerance {
		embed.Description = fmt.Sprintf(MsgOddsTotalMismatch, format.Percent(total))
		embed.Color = ColorWarning
	}
	return embed
}

func tierTitle(tier domain.QualityTier) string {
	switch tier {
	case domain.QualitySilver:
		return "⭐ Silver"
	case domain.QualityGold:
		return "🌟 Gold"
	default:
		return "Base"
	}
}
