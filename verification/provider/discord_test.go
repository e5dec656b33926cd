package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/locey/BurnWin/verification"
)

func TestDiscord_VerifyJoin(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantOK   bool
		wantKind verification.FailureKind
		wantMsg  string
	}{
		{name: "member", status: http.StatusOK, body: `{"joined_at":"2026-01-01T00:00:00Z","user":{"id":"7"}}`, wantOK: true},
		{name: "not a member", status: http.StatusNotFound, body: `{"message":"Unknown Member","code":10007}`, wantKind: verification.FailureNotFound, wantMsg: "User not found in server"},
		{name: "bad token", status: http.StatusUnauthorized, body: `{"message":"401: Unauthorized"}`, wantKind: verification.FailureConfiguration},
		{name: "server error", status: http.StatusBadGateway, body: ``, wantKind: verification.FailureTransport},
		{name: "malformed", status: http.StatusOK, body: `{not json`, wantKind: verification.FailureTransport},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/guilds/42/members/7", r.URL.Path)
				assert.Equal(t, "Bot secret", r.Header.Get("Authorization"))
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			d := NewDiscord(DiscordConfig{BotToken: NewSecret("secret"), BaseURL: srv.URL}, srv.Client())
			out := d.VerifyJoin(context.Background(), verification.DiscordJoinParams{GuildID: "42"}, verification.UserIdentity{DiscordUserID: "7"})

			assert.Equal(t, tt.wantOK, out.IsVerified())
			if !tt.wantOK {
				u := out.(verification.Unverified)
				assert.Equal(t, tt.wantKind, u.Kind)
				if tt.wantMsg != "" {
					assert.Equal(t, tt.wantMsg, u.Reason)
				}
			}
		})
	}
}

func TestDiscord_NotConfigured(t *testing.T) {
	d := NewDiscord(DiscordConfig{}, nil)
	out := d.VerifyJoin(context.Background(), verification.DiscordJoinParams{GuildID: "42"}, verification.UserIdentity{DiscordUserID: "7"})
	assert.Equal(t, verification.Fail(verification.FailureConfiguration, "Discord credentials not configured"), out)
}

func TestDiscord_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	d := NewDiscord(DiscordConfig{BotToken: NewSecret("secret"), BaseURL: base}, nil)
	out := d.VerifyJoin(context.Background(), verification.DiscordJoinParams{GuildID: "42"}, verification.UserIdentity{DiscordUserID: "7"})
	assert.Equal(t, verification.FailureTransport, out.(verification.Unverified).Kind)
}
