package verification

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type TaskType string

const (
	TaskTwitterFollow  TaskType = "twitter_follow"
	TaskTwitterLike    TaskType = "twitter_like"
	TaskTwitterRetweet TaskType = "twitter_retweet"
	TaskTelegramJoin   TaskType = "join_telegram"
	TaskDiscordJoin    TaskType = "discord_join"
	TaskSubmitEmail    TaskType = "submit_email"
	TaskYoutubeSub     TaskType = "youtube_sub"
	TaskVisitWebsite   TaskType = "visit_website"
	TaskCustom         TaskType = "custom"
)

// TaskTypes lists every supported type in display order.
var TaskTypes = []TaskType{
	TaskTwitterFollow,
	TaskTwitterLike,
	TaskTwitterRetweet,
	TaskTelegramJoin,
	TaskDiscordJoin,
	TaskSubmitEmail,
	TaskYoutubeSub,
	TaskVisitWebsite,
	TaskCustom,
}

// Task is a campaign task definition. It is read-only once the campaign is live.
type Task struct {
	ID          string          `json:"id"`
	CampaignID  string          `json:"campaignId"`
	Type        TaskType        `json:"type"`
	Label       string          `json:"label"`
	Description string          `json:"description,omitempty"`
	Required    bool            `json:"required"`
	Reward      decimal.Decimal `json:"reward"`
	Params      Params          `json:"data"`
}

// Params is the provider-specific payload of a task. The set of implementations is closed:
// only the structs in this file satisfy it.
type Params interface {
	TaskType() TaskType
	// TargetURL is the external resource the user must open, empty when there is none.
	TargetURL() string
	params()
}

type TwitterFollowParams struct {
	Username string `json:"username"`
}

type TwitterLikeParams struct {
	TweetID string `json:"tweetId"`
}

type TwitterRetweetParams struct {
	TweetID string `json:"tweetId"`
}

type TelegramJoinParams struct {
	ChatID    string `json:"chatId"`
	InviteURL string `json:"inviteUrl"`
}

type DiscordJoinParams struct {
	GuildID   string `json:"guildId"`
	InviteURL string `json:"inviteUrl"`
}

type EmailSubmitParams struct {
	ListID string `json:"listId"`
}

type YoutubeSubParams struct {
	ChannelID string `json:"channelId"`
}

type WebsiteVisitParams struct {
	URL string `json:"url"`
}

type CustomParams struct {
	VerifyURL    string `json:"verifyUrl"`
	TargetLink   string `json:"targetUrl,omitempty"`
	Instructions string `json:"instructions,omitempty"`
}

func (TwitterFollowParams) TaskType() TaskType  { return TaskTwitterFollow }
func (TwitterLikeParams) TaskType() TaskType    { return TaskTwitterLike }
func (TwitterRetweetParams) TaskType() TaskType { return TaskTwitterRetweet }
func (TelegramJoinParams) TaskType() TaskType   { return TaskTelegramJoin }
func (DiscordJoinParams) TaskType() TaskType    { return TaskDiscordJoin }
func (EmailSubmitParams) TaskType() TaskType    { return TaskSubmitEmail }
func (YoutubeSubParams) TaskType() TaskType     { return TaskYoutubeSub }
func (WebsiteVisitParams) TaskType() TaskType   { return TaskVisitWebsite }
func (CustomParams) TaskType() TaskType         { return TaskCustom }

func (p TwitterFollowParams) TargetURL() string {
	return "https://twitter.com/intent/follow?screen_name=" + p.Username
}
func (p TwitterLikeParams) TargetURL() string {
	return "https://twitter.com/intent/like?tweet_id=" + p.TweetID
}
func (p TwitterRetweetParams) TargetURL() string {
	return "https://twitter.com/intent/retweet?tweet_id=" + p.TweetID
}
func (p TelegramJoinParams) TargetURL() string { return p.InviteURL }
func (p DiscordJoinParams) TargetURL() string  { return p.InviteURL }
func (EmailSubmitParams) TargetURL() string    { return "" }
func (p YoutubeSubParams) TargetURL() string {
	return "https://www.youtube.com/channel/" + p.ChannelID + "?sub_confirmation=1"
}
func (p WebsiteVisitParams) TargetURL() string { return p.URL }
func (p CustomParams) TargetURL() string       { return p.TargetLink }

func (TwitterFollowParams) params()  {}
func (TwitterLikeParams) params()    {}
func (TwitterRetweetParams) params() {}
func (TelegramJoinParams) params()   {}
func (DiscordJoinParams) params()    {}
func (EmailSubmitParams) params()    {}
func (YoutubeSubParams) params()     {}
func (WebsiteVisitParams) params()   {}
func (CustomParams) params()         {}

var ErrUnknownTaskType = errors.New("unknown task type")

// DecodeParams builds the typed params for t from loosely typed catalog data.
func DecodeParams(t TaskType, data map[string]any) (Params, error) {
	get := func(key string) string {
		v, ok := data[key]
		if !ok || v == nil {
			return ""
		}
		return strings.TrimSpace(fmt.Sprint(v))
	}
	need := func(key string) (string, error) {
		v := get(key)
		if v == "" {
			return "", errors.Errorf("%s: missing %q", t, key)
		}
		return v, nil
	}

	switch t {
	case TaskTwitterFollow:
		u, err := need("username")
		if err != nil {
			return nil, err
		}
		if u = strings.TrimPrefix(u, "@"); u == "" {
			return nil, errors.Errorf("%s: missing %q", t, "username")
		}
		return TwitterFollowParams{Username: u}, nil
	case TaskTwitterLike:
		id, err := need("tweetId")
		if err != nil {
			return nil, err
		}
		return TwitterLikeParams{TweetID: id}, nil
	case TaskTwitterRetweet:
		id, err := need("tweetId")
		if err != nil {
			return nil, err
		}
		return TwitterRetweetParams{TweetID: id}, nil
	case TaskTelegramJoin:
		id, err := need("chatId")
		if err != nil {
			return nil, err
		}
		return TelegramJoinParams{ChatID: id, InviteURL: get("inviteUrl")}, nil
	case TaskDiscordJoin:
		id, err := need("guildId")
		if err != nil {
			return nil, err
		}
		return DiscordJoinParams{GuildID: id, InviteURL: get("inviteUrl")}, nil
	case TaskSubmitEmail:
		id, err := need("listId")
		if err != nil {
			return nil, err
		}
		return EmailSubmitParams{ListID: id}, nil
	case TaskYoutubeSub:
		id, err := need("channelId")
		if err != nil {
			return nil, err
		}
		return YoutubeSubParams{ChannelID: id}, nil
	case TaskVisitWebsite:
		u, err := need("url")
		if err != nil {
			return nil, err
		}
		return WebsiteVisitParams{URL: u}, nil
	case TaskCustom:
		return CustomParams{
			VerifyURL:    get("verifyUrl"),
			TargetLink:   get("targetUrl"),
			Instructions: get("instructions"),
		}, nil
	default:
		return nil, errors.Wrapf(ErrUnknownTaskType, "%q", string(t))
	}
}

// UserIdentity is the verified wallet plus the provider handles the user linked to it.
type UserIdentity struct {
	Address         string `json:"address"`
	TwitterUsername string `json:"twitterUsername,omitempty"`
	DiscordUserID   string `json:"discordUserId,omitempty"`
	TelegramUserID  string `json:"telegramUserId,omitempty"`
	Email           string `json:"email,omitempty"`
}
