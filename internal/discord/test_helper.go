package discord

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
)

// MockRoundTripper implements http.RoundTripper for intercepting requests
type MockRoundTripper struct {
	RoundTripFunc func(req *http.Request) (*http.Response, error)
}

func (m *MockRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	return m.RoundTripFunc(req)
}

// TestContext wires a mock CropCalc API, an APIClient pointing at it and a Discord
// session whose HTTP calls are captured instead of sent
type TestContext struct {
	Server       *httptest.Server
	Mux          *http.ServeMux
	APIClient    *APIClient
	Session      *discordgo.Session
	DiscordMocks *MockRoundTripper

	mu        sync.Mutex
	responses []discordgo.InteractionResponse
	edits     []discordgo.WebhookEdit
}

// SetupTestContext builds a TestContext that is torn down with the test
func SetupTestContext(t *testing.T) *TestContext {
	t.Helper()

	mux := http.NewServeMux()
	server := httptest.NewServer(mux)

	client := NewAPIClient(server.URL, "test-api-key")
	client.RetryDelay = time.Millisecond

	session, err := discordgo.New("Bot test-token")
	if err != nil {
		t.Fatalf("Failed to create mock session: %v", err)
	}

	ctx := &TestContext{
		Server:    server,
		Mux:       mux,
		APIClient: client,
		Session:   session,
	}

	// Interaction callbacks are POSTs, response edits are PATCHes
	ctx.DiscordMocks = &MockRoundTripper{
		RoundTripFunc: func(req *http.Request) (*http.Response, error) {
			body, _ := io.ReadAll(req.Body)
			ctx.mu.Lock()
			switch req.Method {
			case http.MethodPost:
				var resp discordgo.InteractionResponse
				if json.Unmarshal(body, &resp) == nil {
					ctx.responses = append(ctx.responses, resp)
				}
			case http.MethodPatch:
				var edit discordgo.WebhookEdit
				if json.Unmarshal(body, &edit) == nil {
					ctx.edits = append(ctx.edits, edit)
				}
			}
			ctx.mu.Unlock()

			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(bytes.NewBufferString("{}")),
				Header:     make(http.Header),
			}, nil
		},
	}
	session.Client = &http.Client{Transport: ctx.DiscordMocks}

	t.Cleanup(server.Close)
	return ctx
}

// Responses returns the interaction callbacks sent to Discord
func (c *TestContext) Responses() []discordgo.InteractionResponse {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]discordgo.InteractionResponse(nil), c.responses...)
}

// LastEmbed returns the first embed of the most recent response edit, or nil
func (c *TestContext) LastEmbed() *discordgo.MessageEmbed {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.edits) == 0 {
		return nil
	}
	edit := c.edits[len(c.edits)-1]
	if edit.Embeds == nil || len(*edit.Embeds) == 0 {
		return nil
	}
	return (*edit.Embeds)[0]
}

// LastContent returns the text content of the most recent response edit
func (c *TestContext) LastContent() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.edits) == 0 || c.edits[len(c.edits)-1].Content == nil {
		return ""
	}
	return *c.edits[len(c.edits)-1].Content
}

// CommandInteraction builds a slash command interaction with the given options
func CommandInteraction(name string, options ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{
		Interaction: &discordgo.Interaction{
			ID:    "interaction-1",
			AppID: "app-1",
			Token: "token-1",
			Type:  discordgo.InteractionApplicationCommand,
			Data: discordgo.ApplicationCommandInteractionData{
				Name:    name,
				Options: options,
			},
			Member: &discordgo.Member{
				User: &discordgo.User{ID: "test-user", Username: "Tester"},
			},
		},
	}
}

// StringOption builds a string command option
func StringOption(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionString,
		Value: value,
	}
}

// IntOption builds an integer command option. Discord sends numbers as JSON floats.
func IntOption(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionInteger,
		Value: float64(value),
	}
}

// BoolOption builds a boolean command option
func BoolOption(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{
		Name:  name,
		Type:  discordgo.ApplicationCommandOptionBoolean,
		Value: value,
	}
}

// WriteJSON writes data as a JSON 200 response
func WriteJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(data)
}

// WriteJSONStatus writes data as a JSON response with status
func WriteJSONStatus(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
