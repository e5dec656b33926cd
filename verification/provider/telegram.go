package provider

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/locey/BurnWin/verification"
)

const DefaultTelegramBaseURL = "https://api.telegram.org"

type TelegramConfig struct {
	BotToken Secret
	BaseURL  string
}

type Telegram struct {
	token   Secret
	baseURL string
	hc      *http.Client
	now     func() time.Time
}

func NewTelegram(c TelegramConfig, hc *http.Client) *Telegram {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if base == "" {
		base = DefaultTelegramBaseURL
	}
	return &Telegram{token: c.BotToken, baseURL: base, hc: defaultClient(hc), now: time.Now}
}

type telegramChatMemberResp struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
	Result      *struct {
		Status string `json:"status"`
	} `json:"result"`
}

var memberStatuses = map[string]bool{
	"member":        true,
	"administrator": true,
	"creator":       true,
}

// VerifyJoin calls getChatMember. left, kicked and restricted all count as not joined.
func (t *Telegram) VerifyJoin(ctx context.Context, p verification.TelegramJoinParams, user verification.UserIdentity) verification.Outcome {
	token, ok := t.token.Value()
	if !ok {
		return verification.Fail(verification.FailureConfiguration, "Telegram credentials not configured")
	}
	if user.TelegramUserID == "" {
		return verification.Fail(verification.FailureInvalid, "Telegram user id required")
	}

	q := url.Values{}
	q.Set("chat_id", p.ChatID)
	q.Set("user_id", user.TelegramUserID)
	u := t.baseURL + "/bot" + token + "/getChatMember?" + q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return transportFailure("Telegram", err)
	}

	var resp telegramChatMemberResp
	status, err := doJSON(t.hc, req, &resp, true)
	if status == 0 && err != nil {
		return transportFailure("Telegram", err)
	}
	if !resp.OK {
		desc := resp.Description
		if strings.Contains(strings.ToLower(desc), "user not found") {
			return verification.Fail(verification.FailureNotFound, "User not found in chat")
		}
		if desc == "" {
			return statusFailure("Telegram", status)
		}
		return verification.Fail(verification.FailureTransport, "Telegram: "+desc)
	}
	if resp.Result == nil {
		return verification.Fail(verification.FailureTransport, "Telegram: "+errMalformed.Error())
	}
	if !memberStatuses[resp.Result.Status] {
		return verification.Fail(verification.FailureNotFound, "User has not joined the chat (status: "+resp.Result.Status+")")
	}
	return verification.Verified{
		At:      t.now(),
		Message: "Telegram membership verified",
		Details: map[string]any{"status": resp.Result.Status},
	}
}
