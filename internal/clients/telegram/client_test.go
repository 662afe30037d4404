package telegram_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SnickALt21/juego-pardo/internal/clients/telegram"
	"github.com/SnickALt21/juego-pardo/internal/errors"
)

// recordingTransport captures outgoing Bot API calls and replies with a
// canned response
type recordingTransport struct {
	requests []capturedRequest
	status   int
	body     string
}

type capturedRequest struct {
	url     string
	payload map[string]any
}

func (rt *recordingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	var payload map[string]any
	if req.Body != nil {
		data, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		_ = json.Unmarshal(data, &payload)
	}
	rt.requests = append(rt.requests, capturedRequest{url: req.URL.String(), payload: payload})

	status := rt.status
	if status == 0 {
		status = http.StatusOK
	}
	body := rt.body
	if body == "" {
		body = `{"ok":true}`
	}
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}, nil
}

func newTestClient(t *testing.T, rt *recordingTransport) *telegram.Client {
	t.Helper()
	client, err := telegram.New(&telegram.Config{
		Token:      "123:abc",
		HTTPClient: &http.Client{Transport: rt},
	})
	require.NoError(t, err)
	return client
}

func TestNewRequiresToken(t *testing.T) {
	_, err := telegram.New(&telegram.Config{})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestSendMessage(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(t, rt)

	err := client.SendMessage(context.Background(), 42, "¡Victoria!")
	require.NoError(t, err)

	require.Len(t, rt.requests, 1)
	assert.Contains(t, rt.requests[0].url, "/bot123:abc/sendMessage")
	assert.Equal(t, float64(42), rt.requests[0].payload["chat_id"])
	assert.Equal(t, "¡Victoria!", rt.requests[0].payload["text"])
}

func TestSendGameButtonIncludesWebApp(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(t, rt)

	err := client.SendGameButton(context.Background(), 42, "Bienvenido", "https://example.com/game.html")
	require.NoError(t, err)

	require.Len(t, rt.requests, 1)
	markup, ok := rt.requests[0].payload["reply_markup"].(map[string]any)
	require.True(t, ok, "reply_markup must be present")
	assert.Contains(t, markup, "inline_keyboard")
}

func TestSetWebhookSkipsLocalAddresses(t *testing.T) {
	rt := &recordingTransport{}
	client := newTestClient(t, rt)

	for _, url := range []string{"", "http://localhost:10000/webhook", "http://127.0.0.1:10000/webhook"} {
		require.NoError(t, client.SetWebhook(context.Background(), url))
	}
	assert.Empty(t, rt.requests, "local webhook URLs must not be registered")

	require.NoError(t, client.SetWebhook(context.Background(), "https://bot.example.com/webhook"))
	require.Len(t, rt.requests, 1)
	assert.Equal(t, "https://bot.example.com/webhook", rt.requests[0].payload["url"])
}

func TestAPIErrorSurfacesDescription(t *testing.T) {
	rt := &recordingTransport{
		status: http.StatusBadRequest,
		body:   `{"ok":false,"description":"chat not found"}`,
	}
	client := newTestClient(t, rt)

	err := client.SendMessage(context.Background(), 42, "hola")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}
