// Package provider holds one adapter per external service. Every adapter turns transport
// errors, provider error payloads and missing credentials into Unverified outcomes.
package provider

import (
	"net/http"

	"github.com/locey/BurnWin/engagement"
	"github.com/locey/BurnWin/verification"
)

var (
	_ verification.TwitterVerifier  = (*Twitter)(nil)
	_ verification.DiscordVerifier  = (*Discord)(nil)
	_ verification.TelegramVerifier = (*Telegram)(nil)
	_ verification.EmailVerifier    = (*Email)(nil)
	_ verification.WebsiteVerifier  = (*Website)(nil)
	_ verification.CustomVerifier   = (*Custom)(nil)
)

type Config struct {
	Twitter  TwitterConfig
	Discord  DiscordConfig
	Telegram TelegramConfig
	Email    EmailConfig
	Custom   CustomConfig
}

// NewAdapters wires every adapter. Adapters with missing credentials are still installed
// so that they answer with a configuration failure instead of silently passing.
func NewAdapters(c Config, visits engagement.Store, hc *http.Client) verification.Adapters {
	hc = defaultClient(hc)
	return verification.Adapters{
		Twitter:  NewTwitter(c.Twitter, hc),
		Discord:  NewDiscord(c.Discord, hc),
		Telegram: NewTelegram(c.Telegram, hc),
		Email:    NewEmail(c.Email, hc),
		Website:  NewWebsite(visits),
		Custom:   NewCustom(c.Custom, hc),
	}
}
