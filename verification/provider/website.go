package provider

import (
	"context"
	"time"

	"github.com/locey/BurnWin/engagement"
	"github.com/locey/BurnWin/verification"
)

// Website verifies visit tasks from visits the server observed through its tracked
// redirect. Client-reported clicks are not enough.
type Website struct {
	store engagement.Store
	now   func() time.Time
}

func NewWebsite(store engagement.Store) *Website {
	return &Website{store: store, now: time.Now}
}

func (w *Website) VerifyVisit(ctx context.Context, task verification.Task, p verification.WebsiteVisitParams, user verification.UserIdentity) verification.Outcome {
	if w.store == nil {
		return verification.Fail(verification.FailureConfiguration, "Website visit tracking not configured")
	}
	key := engagement.Key{Wallet: user.Address, CampaignID: task.CampaignID, TaskID: task.ID}
	at, ok, err := w.store.Get(ctx, key, engagement.KindVisited)
	if err != nil {
		return verification.Fail(verification.FailureTransport, "Visit lookup failed: "+err.Error())
	}
	if !ok {
		return verification.Fail(verification.FailureNotFound, "Website visit not recorded, please open the link from this page")
	}
	return verification.Verified{
		At:      w.now(),
		Message: "Website visit verified",
		Details: map[string]any{"url": p.URL, "visitedAt": at.UnixMilli()},
	}
}
