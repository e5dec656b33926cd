// Package ledger is the authoritative record of completed tasks per (wallet, campaign).
// Aggregates are always derived from the completed set and the campaign task list.
package ledger

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/zeromicro/go-zero/core/syncx"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/events"
	"github.com/locey/BurnWin/verification"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrTaskNotFound     = errors.New("task not found")
)

type Key struct {
	Wallet     string
	CampaignID string
}

func NewKey(wallet, campaignID string) Key {
	return Key{Wallet: strings.ToLower(wallet), CampaignID: campaignID}
}

func (k Key) String() string {
	return k.CampaignID + "/" + k.Wallet
}

type Snapshot struct {
	Wallet               string    `json:"wallet"`
	CampaignID           string    `json:"campaignId"`
	CompletedTaskIDs     []string  `json:"completedTaskIds"`
	CompletedRequired    int       `json:"completedRequiredCount"`
	TotalRequired        int       `json:"totalRequiredCount"`
	CompletedOptional    int       `json:"completedOptionalCount"`
	CompletionPercentage int       `json:"completionPercentage"`
	AllRequiredComplete  bool      `json:"allRequiredComplete"`
	UpdatedAt            time.Time `json:"updatedAt,omitempty"`
}

// TaskSource resolves the immutable task list of a campaign.
type TaskSource interface {
	Tasks(campaignID string) ([]verification.Task, bool)
}

type Ledger struct {
	tasks     TaskSource
	store     Store
	calls     syncx.LockedCalls
	publisher events.Publisher
	now       func() time.Time
}

type Option func(*Ledger)

func WithPublisher(p events.Publisher) Option {
	return func(l *Ledger) { l.publisher = p }
}

func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func New(tasks TaskSource, store Store, opts ...Option) *Ledger {
	l := &Ledger{
		tasks:     tasks,
		store:     store,
		calls:     syncx.NewLockedCalls(),
		publisher: events.NopPublisher{},
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// RecordCompletion adds taskID to the completed set when completed is true. It is
// idempotent, and completed=false never removes anything.
func (l *Ledger) RecordCompletion(ctx context.Context, wallet, campaignID, taskID string, completed bool) (Snapshot, error) {
	tasks, ok := l.tasks.Tasks(campaignID)
	if !ok {
		return Snapshot{}, ErrCampaignNotFound
	}
	if !containsTask(tasks, taskID) {
		return Snapshot{}, errors.Wrapf(ErrTaskNotFound, "%s/%s", campaignID, taskID)
	}
	key := NewKey(wallet, campaignID)
	if !completed {
		return l.snapshot(ctx, key, tasks)
	}

	// writes for one key run one at a time
	v, err := l.calls.Do(key.String(), func() (any, error) {
		at := l.now()
		added, err := l.store.Add(ctx, key, taskID, at)
		if err != nil {
			return nil, err
		}
		snap, err := l.snapshot(ctx, key, tasks)
		if err != nil {
			return nil, err
		}
		if added {
			l.publish(ctx, key, taskID, at, snap)
		}
		return snap, nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return v.(Snapshot), nil
}

func (l *Ledger) Snapshot(ctx context.Context, wallet, campaignID string) (Snapshot, error) {
	tasks, ok := l.tasks.Tasks(campaignID)
	if !ok {
		return Snapshot{}, ErrCampaignNotFound
	}
	return l.snapshot(ctx, NewKey(wallet, campaignID), tasks)
}

// Eligible lists wallets whose required tasks for campaignID are all complete, sorted.
func (l *Ledger) Eligible(ctx context.Context, campaignID string) ([]Snapshot, error) {
	tasks, ok := l.tasks.Tasks(campaignID)
	if !ok {
		return nil, ErrCampaignNotFound
	}
	wallets, err := l.store.Wallets(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	slices.Sort(wallets)

	out := make([]Snapshot, 0, len(wallets))
	for _, w := range wallets {
		snap, err := l.snapshot(ctx, NewKey(w, campaignID), tasks)
		if err != nil {
			return nil, err
		}
		if snap.AllRequiredComplete {
			out = append(out, snap)
		}
	}
	return out, nil
}

// Reset is the administrative correction path. It clears every completion of the key.
func (l *Ledger) Reset(ctx context.Context, wallet, campaignID string) error {
	key := NewKey(wallet, campaignID)
	_, err := l.calls.Do(key.String(), func() (any, error) {
		return nil, l.store.Reset(ctx, key)
	})
	if err == nil {
		xzap.WithContext(ctx).Warn("ledger reset", zap.String("wallet", key.Wallet), zap.String("campaign_id", campaignID))
	}
	return err
}

func (l *Ledger) snapshot(ctx context.Context, key Key, tasks []verification.Task) (Snapshot, error) {
	completed, err := l.store.Completed(ctx, key)
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "failed on load completed tasks")
	}
	return Derive(key, tasks, completed), nil
}

// Derive computes a snapshot. Completed ids that are not in tasks are ignored.
func Derive(key Key, tasks []verification.Task, completed map[string]time.Time) Snapshot {
	snap := Snapshot{Wallet: key.Wallet, CampaignID: key.CampaignID, CompletedTaskIDs: []string{}}
	for _, t := range tasks {
		if t.Required {
			snap.TotalRequired++
		}
		at, done := completed[t.ID]
		if !done {
			continue
		}
		if t.Required {
			snap.CompletedRequired++
		} else {
			snap.CompletedOptional++
		}
		if at.After(snap.UpdatedAt) {
			snap.UpdatedAt = at
		}
	}

	ids := maps.Keys(completed)
	slices.Sort(ids)
	for _, id := range ids {
		if containsTask(tasks, id) {
			snap.CompletedTaskIDs = append(snap.CompletedTaskIDs, id)
		}
	}

	if snap.TotalRequired == 0 {
		snap.CompletionPercentage = 100
	} else {
		snap.CompletionPercentage = int(math.Round(float64(snap.CompletedRequired) / float64(snap.TotalRequired) * 100))
	}
	snap.AllRequiredComplete = snap.CompletedRequired == snap.TotalRequired
	return snap
}

func (l *Ledger) publish(ctx context.Context, key Key, taskID string, at time.Time, snap Snapshot) {
	err := l.publisher.PublishCompletion(ctx, events.CompletionEvent{
		Wallet:               key.Wallet,
		CampaignID:           key.CampaignID,
		TaskID:               taskID,
		CompletedAt:          at,
		CompletionPercentage: snap.CompletionPercentage,
		AllRequiredComplete:  snap.AllRequiredComplete,
	})
	if err != nil {
		xzap.WithContext(ctx).Warn("publish completion failed",
			zap.String("wallet", key.Wallet), zap.String("campaign_id", key.CampaignID),
			zap.String("task_id", taskID), zap.Error(err))
	}
}

func containsTask(tasks []verification.Task, id string) bool {
	for _, t := range tasks {
		if t.ID == id {
			return true
		}
	}
	return false
}
