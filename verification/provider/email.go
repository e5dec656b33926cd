package provider

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"net/http"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"github.com/locey/BurnWin/verification"
)

// EmailConfig points at a Mailchimp compatible marketing API, e.g.
// https://us21.api.mailchimp.com/3.0
type EmailConfig struct {
	APIKey  Secret
	BaseURL string
}

// Email checks list membership with the marketing provider. Submitting an address to
// this service is never enough on its own.
type Email struct {
	apiKey  Secret
	baseURL string
	hc      *http.Client
	now     func() time.Time
}

func NewEmail(c EmailConfig, hc *http.Client) *Email {
	return &Email{
		apiKey:  c.APIKey,
		baseURL: strings.TrimSuffix(c.BaseURL, "/"),
		hc:      defaultClient(hc),
		now:     time.Now,
	}
}

type listMemberResp struct {
	Status string `json:"status"`
}

func subscriberHash(email string) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return hex.EncodeToString(sum[:])
}

func (e *Email) VerifySubscribed(ctx context.Context, p verification.EmailSubmitParams, user verification.UserIdentity) verification.Outcome {
	key, ok := e.apiKey.Value()
	if !ok || e.baseURL == "" {
		return verification.Fail(verification.FailureConfiguration, "Email provider credentials not configured")
	}
	addr, err := mail.ParseAddress(user.Email)
	if err != nil {
		return verification.Fail(verification.FailureInvalid, "A valid email address is required")
	}

	// the member id hashes the bare address, never a display name
	u := e.baseURL + "/lists/" + url.PathEscape(p.ListID) + "/members/" + subscriberHash(addr.Address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return transportFailure("Email provider", err)
	}
	req.SetBasicAuth("burnwin", key)

	var member listMemberResp
	status, err := doJSON(e.hc, req, &member, false)
	switch {
	case status == http.StatusNotFound:
		return verification.Fail(verification.FailureNotFound, "Email is not subscribed to the list")
	case err != nil && status != 0:
		return statusFailure("Email provider", status)
	case err != nil:
		return transportFailure("Email provider", err)
	}

	if member.Status != "subscribed" {
		return verification.Fail(verification.FailureNotFound, "Email subscription is "+member.Status)
	}
	return verification.Verified{
		At:      e.now(),
		Message: "Email subscription verified",
		Details: map[string]any{"listId": p.ListID},
	}
}
