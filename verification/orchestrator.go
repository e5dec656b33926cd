package verification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/logger/xzap"
)

const (
	DefaultTimeout   = 10 * time.Second
	DefaultMockDelay = 1500 * time.Millisecond
)

// Request is one verification attempt. It is never persisted.
type Request struct {
	Task     Task         `json:"task"`
	User     UserIdentity `json:"user"`
	Evidence Evidence     `json:"evidence"`
}

// Observer receives one call per finished attempt.
type Observer interface {
	ObserveAttempt(t TaskType, outcome string, elapsed time.Duration)
}

type Options struct {
	Timeout  time.Duration
	MinDwell time.Duration
	// MockMode replaces every adapter with a simulated success. It must be set explicitly;
	// missing credentials never turn it on.
	MockMode  bool
	MockDelay time.Duration
	Observer  Observer
	Now       func() time.Time
}

type Orchestrator struct {
	adapters  Adapters
	gate      Gate
	timeout   time.Duration
	mockMode  bool
	mockDelay time.Duration
	observer  Observer
	now       func() time.Time
}

func NewOrchestrator(adapters Adapters, opts Options) *Orchestrator {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MinDwell < 0 {
		opts.MinDwell = 0
	}
	if opts.MockDelay < 0 {
		opts.MockDelay = 0
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Orchestrator{
		adapters:  adapters,
		gate:      Gate{MinDwell: opts.MinDwell, Now: opts.Now},
		timeout:   opts.Timeout,
		mockMode:  opts.MockMode,
		mockDelay: opts.MockDelay,
		observer:  opts.Observer,
		now:       opts.Now,
	}
}

func (o *Orchestrator) MockMode() bool {
	return o.mockMode
}

// VerifyTask runs one attempt and always returns a Result. It does not retry.
func (o *Orchestrator) VerifyTask(ctx context.Context, req Request) Result {
	start := o.now()
	out := o.verify(ctx, req)
	elapsed := o.now().Sub(start)

	label := "verified"
	fields := []zap.Field{
		zap.String("campaign_id", req.Task.CampaignID),
		zap.String("task_id", req.Task.ID),
		zap.String("task_type", string(req.Task.Type)),
		zap.String("wallet", req.User.Address),
		zap.Duration("elapsed", elapsed),
		zap.Bool("mock", o.mockMode),
	}
	if u, ok := out.(Unverified); ok {
		label = string(u.Kind)
		fields = append(fields, zap.String("kind", label), zap.String("reason", u.Reason))
	}
	xzap.WithContext(ctx).Info("task verification finished", fields...)

	if o.observer != nil {
		o.observer.ObserveAttempt(req.Task.Type, label, elapsed)
	}
	return NewResult(out)
}

func (o *Orchestrator) verify(ctx context.Context, req Request) Outcome {
	p := req.Task.Params
	if p == nil {
		return Fail(FailureInvalid, "Task has no verification parameters")
	}
	if req.Task.Type != "" && req.Task.Type != p.TaskType() {
		return Fail(FailureInvalid, fmt.Sprintf("Task type %q does not match its parameters", req.Task.Type))
	}
	if fail, ok := o.gate.Check(p.TaskType(), req.Evidence); !ok {
		return fail
	}

	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	done := make(chan Outcome, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- Fail(FailureTransport, fmt.Sprintf("verification failed: %v", r))
			}
		}()
		if o.mockMode {
			done <- o.simulate(ctx)
			return
		}
		done <- o.dispatch(ctx, req)
	}()

	select {
	case out := <-done:
		return out
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Fail(FailureTimeout, MsgRequestTimeout)
		}
		return Fail(FailureTransport, "Request cancelled")
	}
}

func (o *Orchestrator) simulate(ctx context.Context) Outcome {
	if o.mockDelay > 0 {
		t := time.NewTimer(o.mockDelay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return Fail(FailureTimeout, MsgRequestTimeout)
		}
	}
	return Verified{
		At:      o.now(),
		Message: "Task verified (simulation mode)",
		Details: map[string]any{"mock": true},
	}
}

func notConfigured(provider string) Unverified {
	return Fail(FailureConfiguration, provider+" verification not configured")
}

func (o *Orchestrator) dispatch(ctx context.Context, req Request) Outcome {
	a := o.adapters
	switch p := req.Task.Params.(type) {
	case TwitterFollowParams:
		if a.Twitter == nil {
			return notConfigured("Twitter")
		}
		return a.Twitter.VerifyFollow(ctx, p, req.User)
	case TwitterLikeParams:
		if a.Twitter == nil {
			return notConfigured("Twitter")
		}
		return a.Twitter.VerifyLike(ctx, p, req.User)
	case TwitterRetweetParams:
		if a.Twitter == nil {
			return notConfigured("Twitter")
		}
		return a.Twitter.VerifyRetweet(ctx, p, req.User)
	case DiscordJoinParams:
		if a.Discord == nil {
			return notConfigured("Discord")
		}
		return a.Discord.VerifyJoin(ctx, p, req.User)
	case TelegramJoinParams:
		if a.Telegram == nil {
			return notConfigured("Telegram")
		}
		return a.Telegram.VerifyJoin(ctx, p, req.User)
	case EmailSubmitParams:
		if a.Email == nil {
			return notConfigured("Email")
		}
		return a.Email.VerifySubscribed(ctx, p, req.User)
	case WebsiteVisitParams:
		if a.Website == nil {
			return notConfigured("Website visit")
		}
		return a.Website.VerifyVisit(ctx, req.Task, p, req.User)
	case CustomParams:
		if a.Custom == nil {
			return notConfigured("Custom")
		}
		return a.Custom.VerifyCustom(ctx, req.Task, p, req.User)
	case YoutubeSubParams:
		return Fail(FailureUnsupported, "YouTube subscription verification is not supported")
	default:
		return Fail(FailureUnsupported, fmt.Sprintf("Unsupported task type %q", req.Task.Type))
	}
}
