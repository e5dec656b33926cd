package provider

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/locey/BurnWin/verification"
)

const (
	DefaultTwitterBaseURL = "https://api.twitter.com"
	// Only the first page of the following list is inspected. Users who follow more than
	// this many accounts may be reported as not following.
	maxFollowingPage = 1000
	maxEngagersPage  = 100
)

type TwitterConfig struct {
	BearerToken Secret
	BaseURL     string
}

// Twitter verifies follow, like and retweet tasks against the X API v2.
type Twitter struct {
	bearer  Secret
	baseURL string
	hc      *http.Client
	now     func() time.Time
}

func NewTwitter(c TwitterConfig, hc *http.Client) *Twitter {
	base := strings.TrimSuffix(c.BaseURL, "/")
	if base == "" {
		base = DefaultTwitterBaseURL
	}
	return &Twitter{bearer: c.BearerToken, baseURL: base, hc: defaultClient(hc), now: time.Now}
}

type twitterUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type twitterError struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type twitterUserResp struct {
	Data   *twitterUser   `json:"data"`
	Errors []twitterError `json:"errors"`
}

type twitterUsersResp struct {
	Data   []twitterUser  `json:"data"`
	Errors []twitterError `json:"errors"`
	Meta   struct {
		ResultCount int    `json:"result_count"`
		NextToken   string `json:"next_token"`
	} `json:"meta"`
}

func (t *Twitter) VerifyFollow(ctx context.Context, p verification.TwitterFollowParams, user verification.UserIdentity) verification.Outcome {
	token, fail, ok := t.preflight(user)
	if !ok {
		return fail
	}

	target, fail, ok := t.lookup(ctx, token, p.Username)
	if !ok {
		return fail
	}
	follower, fail, ok := t.lookup(ctx, token, user.TwitterUsername)
	if !ok {
		return fail
	}

	q := url.Values{}
	q.Set("max_results", strconv.Itoa(maxFollowingPage))
	following, fail, ok := t.list(ctx, token, "/2/users/"+url.PathEscape(follower.ID)+"/following", q)
	if !ok {
		return fail
	}
	if !containsUser(following, target.ID) {
		return verification.Fail(verification.FailureNotFound, "@"+follower.Username+" is not following @"+target.Username)
	}
	return verification.Verified{
		At:      t.now(),
		Message: "Follow verified",
		Details: map[string]any{"targetId": target.ID, "userId": follower.ID},
	}
}

func (t *Twitter) VerifyLike(ctx context.Context, p verification.TwitterLikeParams, user verification.UserIdentity) verification.Outcome {
	return t.verifyEngagement(ctx, p.TweetID, "liking_users", "liked", user)
}

func (t *Twitter) VerifyRetweet(ctx context.Context, p verification.TwitterRetweetParams, user verification.UserIdentity) verification.Outcome {
	return t.verifyEngagement(ctx, p.TweetID, "retweeted_by", "retweeted", user)
}

func (t *Twitter) verifyEngagement(ctx context.Context, tweetID, endpoint, verb string, user verification.UserIdentity) verification.Outcome {
	token, fail, ok := t.preflight(user)
	if !ok {
		return fail
	}
	u, fail, ok := t.lookup(ctx, token, user.TwitterUsername)
	if !ok {
		return fail
	}

	q := url.Values{}
	q.Set("max_results", strconv.Itoa(maxEngagersPage))
	users, fail, ok := t.list(ctx, token, "/2/tweets/"+url.PathEscape(tweetID)+"/"+endpoint, q)
	if !ok {
		return fail
	}
	if !containsUser(users, u.ID) {
		return verification.Fail(verification.FailureNotFound, "@"+u.Username+" has not "+verb+" the tweet")
	}
	return verification.Verified{
		At:      t.now(),
		Message: "Tweet " + verb,
		Details: map[string]any{"tweetId": tweetID, "userId": u.ID},
	}
}

func (t *Twitter) preflight(user verification.UserIdentity) (string, verification.Unverified, bool) {
	token, ok := t.bearer.Value()
	if !ok {
		return "", verification.Fail(verification.FailureConfiguration, "Twitter credentials not configured"), false
	}
	if strings.TrimPrefix(user.TwitterUsername, "@") == "" {
		return "", verification.Fail(verification.FailureInvalid, "Twitter username required"), false
	}
	return token, verification.Unverified{}, true
}

func (t *Twitter) lookup(ctx context.Context, token, username string) (twitterUser, verification.Unverified, bool) {
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	req, err := t.newRequest(ctx, token, "/2/users/by/username/"+url.PathEscape(username), nil)
	if err != nil {
		return twitterUser{}, transportFailure("Twitter", err), false
	}

	var resp twitterUserResp
	status, err := doJSON(t.hc, req, &resp, false)
	if err != nil {
		if status != 0 {
			return twitterUser{}, statusFailure("Twitter", status), false
		}
		return twitterUser{}, transportFailure("Twitter", err), false
	}
	// v2 reports unknown users as 200 with an errors array
	if resp.Data == nil || resp.Data.ID == "" {
		return twitterUser{}, verification.Fail(verification.FailureNotFound, "Twitter user @"+username+" not found"), false
	}
	return *resp.Data, verification.Unverified{}, true
}

func (t *Twitter) list(ctx context.Context, token, path string, q url.Values) ([]twitterUser, verification.Unverified, bool) {
	req, err := t.newRequest(ctx, token, path, q)
	if err != nil {
		return nil, transportFailure("Twitter", err), false
	}
	var resp twitterUsersResp
	status, err := doJSON(t.hc, req, &resp, false)
	if err != nil {
		if status != 0 {
			return nil, statusFailure("Twitter", status), false
		}
		return nil, transportFailure("Twitter", err), false
	}
	if len(resp.Data) == 0 && len(resp.Errors) > 0 {
		return nil, verification.Fail(verification.FailureTransport, "Twitter: "+resp.Errors[0].Detail), false
	}
	return resp.Data, verification.Unverified{}, true
}

func (t *Twitter) newRequest(ctx context.Context, token, path string, q url.Values) (*http.Request, error) {
	u := t.baseURL + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req, nil
}

func containsUser(users []twitterUser, id string) bool {
	for _, u := range users {
		if u.ID == id {
			return true
		}
	}
	return false
}
