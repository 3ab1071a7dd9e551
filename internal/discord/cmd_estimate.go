package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/format"
	"github.com/osse101/CropCalc_Go/internal/handler"
	"github.com/osse101/CropCalc_Go/internal/session"
)

// Option names of the estimate command
const (
	optCrop    = "crop"
	optSeason  = "season"
	optSeeds   = "seeds"
	optLevel   = "level"
	optTiller  = "tiller"
	optArtisan = "artisan"
)

// EstimateCommand returns the estimate command definition and handler
func EstimateCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	one := float64(1)
	zero := float64(0)
	maxSeeds := float64(domain.MaxSeedCount)

	options := []*discordgo.ApplicationCommandOption{
		{
			Type:         discordgo.ApplicationCommandOptionString,
			Name:         optCrop,
			Description:  "Crop to plant",
			Required:     true,
			Autocomplete: true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        optSeason,
			Description: "Season the crop grows in",
			Required:    true,
			Choices:     seasonChoices(),
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        optSeeds,
			Description: "Number of seeds",
			Required:    true,
			MinValue:    &one,
			MaxValue:    maxSeeds,
		},
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        optLevel,
			Description: "Farming level (default: 1)",
			MinValue:    &zero,
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        optTiller,
			Description: "You have the Tiller profession",
		},
		{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        optArtisan,
			Description: "You have the Artisan profession",
		},
	}
	for _, ch := range domain.Channels {
		options = append(options, &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        string(ch),
			Description: fmt.Sprintf("Units %s (default: sell the whole harvest)", ch),
			MinValue:    &zero,
		})
	}

	cmd := &discordgo.ApplicationCommand{
		Name:        "estimate",
		Description: "Estimate the profit of planting a crop",
		Options:     options,
	}

	handle := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (*discordgo.MessageEmbed, error) {
			return runEstimate(client, getOptions(i))
		}, ResponseConfig{Color: ColorProfit})
	}

	return cmd, handle
}

// runEstimate resolves the crop through a quote, then prices the allocation.
// With no channel options the whole harvest is sold raw.
func runEstimate(client *APIClient, opts map[string]*discordgo.ApplicationCommandInteractionDataOption) (*discordgo.MessageEmbed, error) {
	q := QuoteRequest{
		Season:  optionString(opts, optSeason),
		Crop:    optionString(opts, optCrop),
		Seeds:   optionInt(opts, optSeeds, 0),
		Level:   optionInt(opts, optLevel, domain.DefaultSkillLevel),
		Tiller:  optionBool(opts, optTiller),
		Artisan: optionBool(opts, optArtisan),
	}

	quote, err := client.QuoteCrop(q)
	if err != nil {
		return nil, err
	}

	row := handler.EstimateRowRequest{
		CropName:  quote.Crop,
		SeedCount: q.Seeds,
		Sold:      optionInt(opts, string(domain.ChannelSold), 0),
		Jarred:    optionInt(opts, string(domain.ChannelJarred), 0),
		Kegged:    optionInt(opts, string(domain.ChannelKegged), 0),
		Aged:      optionInt(opts, string(domain.ChannelAged), 0),
	}
	if !hasChannelOption(opts) {
		row.Sold = quote.HarvestTotal
	}

	report, err := client.Estimate(handler.EstimateRequest{
		SkillLevel: q.Level,
		Season:     q.Season,
		HasTiller:  q.Tiller,
		HasArtisan: q.Artisan,
		Rows:       []handler.EstimateRowRequest{row},
	})
	if err != nil {
		return nil, err
	}
	return estimateEmbed(quote, report), nil
}

func hasChannelOption(opts map[string]*discordgo.ApplicationCommandInteractionDataOption) bool {
	for _, ch := range domain.Channels {
		if _, ok := opts[string(ch)]; ok {
			return true
		}
	}
	return false
}

func estimateEmbed(quote *domain.CropQuote, report *session.Report) *discordgo.MessageEmbed {
	totals := report.Totals
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf(TitleEstimate, quote.Crop, format.SeasonTitle(quote.Season)),
		Description: "```\n" + format.BreakdownTable(totals) + "```",
		Color:       ColorProfit,
		Fields: []*discordgo.MessageEmbedField{
			{Name: FieldHarvest, Value: format.Quantity(quote.HarvestTotal), Inline: true},
			{Name: FieldUnitPrice, Value: format.UnitPrice(quote.UnitPrice), Inline: true},
			{Name: FieldRevenue, Value: format.Currency(totals.TotalRevenue), Inline: true},
			{Name: FieldSeedCost, Value: format.Currency(totals.TotalSeedCost), Inline: true},
			{Name: FieldProfit, Value: format.Currency(totals.TotalProfit), Inline: true},
		},
	}
	if totals.TotalProfit < 0 {
		embed.Color = ColorLoss
	}

	if !report.Valid {
		embed.Color = ColorWarning
		for _, c := range report.Capacity {
			if c.OK {
				continue
			}
			embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
				Name:  FieldOverCapacity,
				Value: fmt.Sprintf(MsgOverCapacity, format.Quantity(c.Allocated), format.Quantity(c.Harvest), format.Quantity(c.Excess)),
			})
		}
	}

	if len(totals.Skipped) > 0 {
		names := make([]string, 0, len(totals.Skipped))
		for _, sk := range totals.Skipped {
			names = append(names, fmt.Sprintf("%s (%s)", sk.CropName, sk.Reason))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  FieldSkipped,
			Value: strings.Join(names, "\n"),
		})
	}
	return embed
}
