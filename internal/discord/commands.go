package discord

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CropCalc_Go/internal/domain"
	"github.com/osse101/CropCalc_Go/internal/format"
	"github.com/osse101/CropCalc_Go/internal/handler"
)

// Embed colors
const (
	ColorInfo    = 0x3498db
	ColorProfit  = 0x2ecc71
	ColorLoss    = 0xe74c3c
	ColorWarning = 0xf1c40f
)

// FooterText is shown under every embed
const FooterText = "CropCalc"

// CommandHandler handles a slash command
type CommandHandler func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient)

// CommandRegistry holds the registered commands
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	Handlers map[string]CommandHandler
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
		Handlers: make(map[string]CommandHandler),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand, handler CommandHandler) {
	r.Commands[cmd.Name] = cmd
	r.Handlers[cmd.Name] = handler
}

// Handle processes an interaction
func (r *CommandRegistry) Handle(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
	if h, ok := r.Handlers[i.ApplicationCommandData().Name]; ok {
		RecordCommand()
		h(s, i, client)
	}
}

// RegisterCommands registers or updates commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(registry *CommandRegistry, forceUpdate bool) error {
	slog.Info("Checking Discord commands...")

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, "")
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	desiredCmds := make([]*discordgo.ApplicationCommand, 0, len(registry.Commands))
	for _, cmd := range registry.Commands {
		desiredCmds = append(desiredCmds, cmd)
	}

	if forceUpdate {
		slog.Info("Force update enabled - replacing all commands", "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info("Commands force updated successfully")
		return nil
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info("Commands unchanged, skipping registration", "count", len(existingCmds))
		return nil
	}

	slog.Info("Commands changed, updating...",
		"existing", len(existingCmds),
		"desired", len(desiredCmds))

	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, "", desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info("Commands updated successfully", "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand)
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok || !commandEqual(have, want) {
			return false
		}
	}
	return true
}

// commandEqual checks if two commands are equivalent
func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

// optionEqual checks if two command options are equivalent
func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description ||
		a.Required != b.Required || a.Autocomplete != b.Autocomplete {
		return false
	}

	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		// Discord returns choice values as JSON, so compare their printed form
		if a.Choices[i].Name != b.Choices[i].Name ||
			fmt.Sprint(a.Choices[i].Value) != fmt.Sprint(b.Choices[i].Value) {
			return false
		}
	}
	return true
}

// seasonChoices is the fixed choice list for season options
func seasonChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(domain.Seasons))
	for _, season := range domain.Seasons {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  format.SeasonTitle(season),
			Value: string(season),
		})
	}
	return choices
}

// respondError sends a plain-text error message
func respondError(s *discordgo.Session, i *discordgo.InteractionCreate, message string) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Content: &message,
	}); err != nil {
		slog.Error("Failed to edit interaction response", "error", err)
	}
}

// ResponseConfig defines the visual properties of a command response embed
type ResponseConfig struct {
	Title string
	Color int
}

// handleEmbedResponse defers the interaction, runs action and sends its embed.
// Title and color from config fill in whatever the action left empty.
func handleEmbedResponse(
	s *discordgo.Session,
	i *discordgo.InteractionCreate,
	action func() (*discordgo.MessageEmbed, error),
	config ResponseConfig,
) {
	if !deferResponse(s, i) {
		return
	}

	embed, err := action()
	if err != nil {
		slog.Error("Action failed", "title", config.Title, "error", err)
		respondFriendlyError(s, i, err)
		return
	}

	if embed.Title == "" {
		embed.Title = config.Title
	}
	if embed.Color == 0 {
		embed.Color = config.Color
	}
	embed.Footer = &discordgo.MessageEmbedFooter{Text: FooterText}

	sendEmbed(s, i, embed)
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed and the handler should stop.
func deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate) bool {
	if err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	}); err != nil {
		slog.Error("Failed to send deferred response", "error", err)
		return false
	}
	return true
}

// getOptions returns the command options keyed by name
func getOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		out[opt.Name] = opt
	}
	return out
}

func optionString(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func optionInt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string, def int) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return def
}

func optionBool(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) bool {
	if opt, ok := opts[name]; ok {
		return opt.BoolValue()
	}
	return false
}

// respondFriendlyError turns an API or transport error into a readable reply
func respondFriendlyError(s *discordgo.Session, i *discordgo.InteractionCreate, err error) {
	respondError(s, i, describeError(err))
}

// describeError formats err for users and lists any name suggestions from the API
func describeError(err error) string {
	if errors.Is(err, ErrMaxRetries) {
		return MsgAPIUnavailable
	}

	msg := formatFriendlyError(err.Error())

	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Suggestions) > 0 {
		msg += fmt.Sprintf("\n%s **%s**", MsgDidYouMean, strings.Join(apiErr.Suggestions, "**, **"))
	}
	return msg
}

// formatFriendlyError cleans up technical error messages
func formatFriendlyError(msg string) string {
	msg = strings.TrimPrefix(msg, apiErrorPrefix)

	switch {
	case strings.Contains(msg, handler.ErrMsgCropNotFoundError):
		return MsgCropNotFound
	case strings.Contains(msg, handler.ErrMsgSkillLevelError):
		return MsgSkillLevelNotFound
	case strings.Contains(msg, handler.ErrMsgInvalidSeasonError):
		return MsgInvalidSeason
	case strings.Contains(msg, handler.ErrMsgUnavailableError):
		return MsgAPIUnavailable
	default:
		return "❌ " + msg
	}
}

// sendEmbed sends an embed as the deferred response
func sendEmbed(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	if _, err := s.InteractionResponseEdit(i.Interaction, &discordgo.WebhookEdit{
		Embeds: &[]*discordgo.MessageEmbed{embed},
	}); err != nil {
		slog.Error("Failed to send response", "error", err)
	}
}
