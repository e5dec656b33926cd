package provider

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"time"

	"github.com/locey/BurnWin/verification"
)

const SignatureHeader = "X-BurnWin-Signature"

type CustomConfig struct {
	// SigningKey, when set, signs webhook bodies with HMAC-SHA256.
	SigningKey Secret
}

// Custom delegates verification to a webhook owned by the campaign partner.
type Custom struct {
	signingKey Secret
	hc         *http.Client
	now        func() time.Time
}

func NewCustom(c CustomConfig, hc *http.Client) *Custom {
	return &Custom{signingKey: c.SigningKey, hc: defaultClient(hc), now: time.Now}
}

type customRequest struct {
	Address    string `json:"address"`
	CampaignID string `json:"campaignId"`
	TaskID     string `json:"taskId"`
}

type customResponse struct {
	Verified bool   `json:"verified"`
	Message  string `json:"message"`
}

func Sign(key string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(key))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Custom) VerifyCustom(ctx context.Context, task verification.Task, p verification.CustomParams, user verification.UserIdentity) verification.Outcome {
	if p.VerifyURL == "" {
		return verification.Fail(verification.FailureConfiguration, "Custom task has no verification endpoint")
	}

	body, err := json.Marshal(customRequest{Address: user.Address, CampaignID: task.CampaignID, TaskID: task.ID})
	if err != nil {
		return verification.Fail(verification.FailureInvalid, err.Error())
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.VerifyURL, bytes.NewReader(body))
	if err != nil {
		return verification.Fail(verification.FailureConfiguration, "Custom verification endpoint is invalid")
	}
	req.Header.Set("Content-Type", "application/json")
	if key, ok := c.signingKey.Value(); ok {
		req.Header.Set(SignatureHeader, Sign(key, body))
	}

	var resp customResponse
	status, err := doJSON(c.hc, req, &resp, false)
	if err != nil {
		if status != 0 {
			return statusFailure("Custom verifier", status)
		}
		return transportFailure("Custom verifier", err)
	}
	if !resp.Verified {
		msg := resp.Message
		if msg == "" {
			msg = "Task not completed yet"
		}
		return verification.Fail(verification.FailureNotFound, msg)
	}
	return verification.Verified{At: c.now(), Message: resp.Message}
}
