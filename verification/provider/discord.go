package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/locey/BurnWin/verification"
)

const DefaultDiscordBaseURL = "https://discord.com/api/v10"

type DiscordConfig struct {
	BotToken Secret
	BaseURL  string
}

type Discord struct {
	token   Secret
	baseURL string
	hc      *http.Client
	now     func() time.Time
}

func NewDiscord(c DiscordConfig, hc *http.Client) *Discord {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if base == "" {
		base = DefaultDiscordBaseURL
	}
	return &Discord{token: c.BotToken, baseURL: base, hc: defaultClient(hc), now: time.Now}
}

type discordMember struct {
	JoinedAt string `json:"joined_at"`
	User     *struct {
		ID       string `json:"id"`
		Username string `json:"username"`
	} `json:"user"`
}

// VerifyJoin looks the user up in the guild member list. A 404 is a normal negative answer.
func (d *Discord) VerifyJoin(ctx context.Context, p verification.DiscordJoinParams, user verification.UserIdentity) verification.Outcome {
	token, ok := d.token.Value()
	if !ok {
		return verification.Fail(verification.FailureConfiguration, "Discord credentials not configured")
	}
	if user.DiscordUserID == "" {
		return verification.Fail(verification.FailureInvalid, "Discord user id required")
	}

	u := d.baseURL + "/guilds/" + url.PathEscape(p.GuildID) + "/members/" + url.PathEscape(user.DiscordUserID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return transportFailure("Discord", err)
	}
	req.Header.Set("Authorization", "Bot "+token)

	var member discordMember
	status, err := doJSON(d.hc, req, &member, false)
	switch {
	case status == http.StatusNotFound:
		return verification.Fail(verification.FailureNotFound, "User not found in server")
	case err != nil && status != 0:
		return statusFailure("Discord", status)
	case err != nil:
		return transportFailure("Discord", err)
	}

	details := map[string]any{"guildId": p.GuildID}
	if member.JoinedAt != "" {
		details["joinedAt"] = member.JoinedAt
	}
	return verification.Verified{At: d.now(), Message: "Discord membership verified", Details: details}
}
