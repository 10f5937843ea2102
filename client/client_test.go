package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sgerasimov/go-tgbot/models"
)

const testToken = "123456:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw"

// newTestClient points a Client at an httptest server answering with the
// given handler.
func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	opts = append([]Option{WithEndpoint(srv.URL)}, opts...)
	c, err := New(testToken, opts...)
	require.NoError(t, err)
	return c, srv
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNew_TokenValidation(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		wantErr bool
	}{
		{"valid token", testToken, false},
		{"empty token", "", true},
		{"no colon", "123456AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw", true},
		{"short secret", "123456:short", true},
		{"non-numeric id", "abc:AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidToken)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClient_TokenSecret(t *testing.T) {
	c, err := New(testToken)
	require.NoError(t, err)

	assert.Equal(t, testToken, c.Token())
	assert.Equal(t, "AAHdqTcvCH1vGWJxfSeofSAs0K5PALDsaw", c.TokenSecret())
}

func TestClient_FileURL(t *testing.T) {
	c, err := New(testToken)
	require.NoError(t, err)

	got := c.FileURL(&models.File{FilePath: "documents/file_3.pdf"})
	assert.Equal(t, DefaultEndpoint+"/file/bot"+testToken+"/documents/file_3.pdf", got)
}

// ── envelope handling ────────────────────────────────────────────────────────

func TestClient_GetMe_Success(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/bot"+testToken+"/getMe", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true,"result":{"id":123456,"is_bot":true,"first_name":"echo","username":"my_echo_bot"}}`)
	})

	me, err := c.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(123456), me.ID)
	assert.True(t, me.IsBot)
	assert.Equal(t, "my_echo_bot", me.Username)
}

func TestClient_APIError(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		io.WriteString(w, `{"ok":false,"error_code":404,"description":"Not Found: chat not found"}`)
	})

	_, err := c.GetChat(context.Background(), &models.GetChatParams{ChatID: models.ChatInt(42)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 404, apiErr.Code)
	assert.Equal(t, "getChat", apiErr.Method)
	assert.Contains(t, apiErr.Description, "chat not found")
}

func TestClient_NonJSONErrorPage(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "<html>502 Bad Gateway</html>")
	})

	_, err := c.GetMe(context.Background())
	require.Error(t, err)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.Code)
}

// ── request encoding ─────────────────────────────────────────────────────────

func TestClient_SendMessage_JSONBody(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Contains(t, string(body), `"chat_id":1117431`)
		assert.Contains(t, string(body), `"text":"hello"`)

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true,"result":{"message_id":7,"date":1628700000,"chat":{"id":1117431,"type":"private"}}}`)
	})

	msg, err := c.SendMessage(context.Background(), &models.SendMessageParams{
		ChatID: models.ChatInt(1117431),
		Text:   "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), msg.MessageID)
}

func TestClient_SendDocument_Multipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "1117431", r.FormValue("chat_id"))
		assert.Equal(t, "attach://document", r.FormValue("document"))

		file, header, err := r.FormFile("document")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "report.pdf", header.Filename)
		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "pdf-bytes", string(content))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true,"result":{"message_id":8,"date":1628700000,"chat":{"id":1117431,"type":"private"}}}`)
	})

	_, err := c.SendDocument(context.Background(), &models.SendDocumentParams{
		ChatID:   models.ChatInt(1117431),
		Document: models.FileReader("report.pdf", strings.NewReader("pdf-bytes")),
	})
	require.NoError(t, err)
}

func TestClient_SendDocument_ByFileID_StaysJSON(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true,"result":{"message_id":9,"date":1628700000,"chat":{"id":1117431,"type":"private"}}}`)
	})

	_, err := c.SendDocument(context.Background(), &models.SendDocumentParams{
		ChatID:   models.ChatInt(1117431),
		Document: models.FileID("BQACAgIAAxkDAAIB"),
	})
	require.NoError(t, err)
}

// ── validation short-circuit ─────────────────────────────────────────────────

func TestClient_ValidationFailsBeforeRequest(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := c.SendMessage(context.Background(), &models.SendMessageParams{
		ChatID: models.ChatInt(1117431),
	})
	require.Error(t, err)
	assert.Zero(t, calls.Load())
}

// ── edit methods on inline messages ──────────────────────────────────────────

func TestClient_EditMessageText_InlineReturnsNil(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"ok":true,"result":true}`)
	})

	msg, err := c.EditMessageText(context.Background(), &models.EditMessageTextParams{
		InlineMessageID: "AgAAAP",
		Text:            "edited",
	})
	require.NoError(t, err)
	assert.Nil(t, msg)
}

// ── flood control ────────────────────────────────────────────────────────────

func TestClient_FloodControlRetry(t *testing.T) {
	var calls atomic.Int32
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			io.WriteString(w, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 1","parameters":{"retry_after":1}}`)
			return
		}
		io.WriteString(w, `{"ok":true,"result":{"id":123456,"is_bot":true,"first_name":"echo"}}`)
	}, WithFloodControlRetries(1))

	me, err := c.GetMe(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, int64(123456), me.ID)
}

func TestClient_FloodControlExhausted(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 1","parameters":{"retry_after":1}}`)
	})

	_, err := c.GetMe(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooManyRequests)

	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 1, apiErr.RetryAfter())
}

func TestClient_LongPollExtendsTimeout(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = io.WriteString(w, `{"ok":true,"result":[]}`)
	}, WithTimeout(100*time.Millisecond))

	// The server answers well past the base timeout but inside the poll
	// window, so the extended deadline must let the call finish.
	updates, err := c.GetUpdates(context.Background(), &models.GetUpdatesParams{Timeout: 5})
	require.NoError(t, err)
	assert.Empty(t, updates)

	// A call without a poll window keeps the base deadline.
	_, err = c.GetMe(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_ContextCancelled(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.GetMe(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
