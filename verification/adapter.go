package verification

import "context"

//go:generate mockgen -source=adapter.go -destination=mock_verification/adapter.go -package=mock_verification

// Adapters never return Go errors: every failure is an Unverified outcome.

type TwitterVerifier interface {
	VerifyFollow(ctx context.Context, p TwitterFollowParams, user UserIdentity) Outcome
	VerifyLike(ctx context.Context, p TwitterLikeParams, user UserIdentity) Outcome
	VerifyRetweet(ctx context.Context, p TwitterRetweetParams, user UserIdentity) Outcome
}

type DiscordVerifier interface {
	VerifyJoin(ctx context.Context, p DiscordJoinParams, user UserIdentity) Outcome
}

type TelegramVerifier interface {
	VerifyJoin(ctx context.Context, p TelegramJoinParams, user UserIdentity) Outcome
}

type EmailVerifier interface {
	VerifySubscribed(ctx context.Context, p EmailSubmitParams, user UserIdentity) Outcome
}

// WebsiteVerifier needs the campaign and task ids because visits are recorded per task.
type WebsiteVerifier interface {
	VerifyVisit(ctx context.Context, task Task, p WebsiteVisitParams, user UserIdentity) Outcome
}

type CustomVerifier interface {
	VerifyCustom(ctx context.Context, task Task, p CustomParams, user UserIdentity) Outcome
}

// Adapters holds one verifier per provider. A nil field means the provider is not wired.
type Adapters struct {
	Twitter  TwitterVerifier
	Discord  DiscordVerifier
	Telegram TelegramVerifier
	Email    EmailVerifier
	Website  WebsiteVerifier
	Custom   CustomVerifier
}
