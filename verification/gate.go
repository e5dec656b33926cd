package verification

import "time"

const DefaultMinDwell = 2 * time.Second

const (
	MsgOpenLinkFirst = "Please click the action button and open the link first"
	MsgDwellTooShort = "Please complete the action on the opened page before verifying"
)

// Evidence is what the client reports about the user's engagement with the task target.
type Evidence struct {
	HasOpenedTarget bool       `json:"hasOpenedTarget"`
	OpenedAt        *time.Time `json:"openedAt,omitempty"`
}

// Gated reports whether t needs engagement evidence before it may be verified.
func Gated(t TaskType) bool {
	switch t {
	case TaskTwitterFollow, TaskTwitterLike, TaskTwitterRetweet,
		TaskTelegramJoin, TaskDiscordJoin, TaskYoutubeSub, TaskVisitWebsite:
		return true
	default:
		return false
	}
}

// Gate enforces the minimum dwell between opening a task target and verifying it.
// It is advisory: it slows down trivial automation, it proves nothing.
type Gate struct {
	MinDwell time.Duration
	Now      func() time.Time
}

func (g Gate) Check(t TaskType, ev Evidence) (Unverified, bool) {
	if !Gated(t) {
		return Unverified{}, true
	}
	if !ev.HasOpenedTarget || ev.OpenedAt == nil {
		return Fail(FailureGate, MsgOpenLinkFirst), false
	}
	now := time.Now
	if g.Now != nil {
		now = g.Now
	}
	if now().Sub(*ev.OpenedAt) < g.MinDwell {
		return Fail(FailureGate, MsgDwellTooShort), false
	}
	return Unverified{}, true
}
