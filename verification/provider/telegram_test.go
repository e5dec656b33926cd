package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/locey/BurnWin/verification"
)

func telegramServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/botTOKEN/getChatMember", r.URL.Path)
		assert.Equal(t, "-100", r.URL.Query().Get("chat_id"))
		assert.Equal(t, "55", r.URL.Query().Get("user_id"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestTelegram_VerifyJoin_Statuses(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"member", true},
		{"administrator", true},
		{"creator", true},
		{"left", false},
		{"kicked", false},
		{"restricted", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			srv := telegramServer(t, http.StatusOK, `{"ok":true,"result":{"status":"`+tt.status+`"}}`)
			tg := NewTelegram(TelegramConfig{BotToken: NewSecret("TOKEN"), BaseURL: srv.URL}, srv.Client())

			out := tg.VerifyJoin(context.Background(), verification.TelegramJoinParams{ChatID: "-100"}, verification.UserIdentity{TelegramUserID: "55"})
			assert.Equal(t, tt.want, out.IsVerified())
			if !tt.want {
				assert.Equal(t, verification.FailureNotFound, out.(verification.Unverified).Kind)
			}
		})
	}
}

func TestTelegram_VerifyJoin_ProviderErrors(t *testing.T) {
	srv := telegramServer(t, http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: user not found"}`)
	tg := NewTelegram(TelegramConfig{BotToken: NewSecret("TOKEN"), BaseURL: srv.URL}, srv.Client())
	out := tg.VerifyJoin(context.Background(), verification.TelegramJoinParams{ChatID: "-100"}, verification.UserIdentity{TelegramUserID: "55"})
	assert.Equal(t, verification.FailureNotFound, out.(verification.Unverified).Kind)

	srv = telegramServer(t, http.StatusBadRequest, `{"ok":false,"error_code":400,"description":"Bad Request: chat not found"}`)
	tg = NewTelegram(TelegramConfig{BotToken: NewSecret("TOKEN"), BaseURL: srv.URL}, srv.Client())
	out = tg.VerifyJoin(context.Background(), verification.TelegramJoinParams{ChatID: "-100"}, verification.UserIdentity{TelegramUserID: "55"})
	u := out.(verification.Unverified)
	assert.Equal(t, verification.FailureTransport, u.Kind)
	assert.Contains(t, u.Reason, "chat not found")
}

func TestTelegram_TokenNeverLeaks(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	tg := NewTelegram(TelegramConfig{BotToken: NewSecret("SUPERSECRET"), BaseURL: base}, nil)
	out := tg.VerifyJoin(context.Background(), verification.TelegramJoinParams{ChatID: "-100"}, verification.UserIdentity{TelegramUserID: "55"})
	u, ok := out.(verification.Unverified)
	require.True(t, ok)
	assert.False(t, strings.Contains(u.Reason, "SUPERSECRET"))
}

func TestTelegram_MissingInputs(t *testing.T) {
	tg := NewTelegram(TelegramConfig{}, nil)
	out := tg.VerifyJoin(context.Background(), verification.TelegramJoinParams{ChatID: "-100"}, verification.UserIdentity{TelegramUserID: "55"})
	assert.Equal(t, verification.FailureConfiguration, out.(verification.Unverified).Kind)

	tg = NewTelegram(TelegramConfig{BotToken: NewSecret("TOKEN")}, nil)
	out = tg.VerifyJoin(context.Background(), verification.TelegramJoinParams{ChatID: "-100"}, verification.UserIdentity{})
	assert.Equal(t, verification.FailureInvalid, out.(verification.Unverified).Kind)
}
