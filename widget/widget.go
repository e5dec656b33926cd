// Package widget is the client-side state machine behind a task's "open" and "verify" buttons.
// UIs bind to its transitions instead of owning the state.
package widget

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/locey/BurnWin/verification"
)

type Status string

const (
	StatusWaiting     Status = "waiting"
	StatusActionTaken Status = "action-taken"
	StatusVerifying   Status = "verifying"
	StatusSuccess     Status = "success"
	StatusFailed      Status = "failed"
)

var (
	ErrTargetNotOpened = errors.New(verification.MsgOpenLinkFirst)
	ErrVerifying       = errors.New("verification already in progress")
	ErrAlreadyVerified = errors.New("task already verified")
)

type State struct {
	Status          Status     `json:"status"`
	HasOpenedTarget bool       `json:"hasOpenedTarget"`
	OpenedAt        *time.Time `json:"openedAt,omitempty"`
	LastMessage     string     `json:"lastMessage,omitempty"`
	Attempts        int        `json:"attempts"`
}

type VerifyRequest struct {
	CampaignID string                    `json:"campaignId"`
	TaskID     string                    `json:"taskId"`
	User       verification.UserIdentity `json:"identity"`
	Evidence   verification.Evidence     `json:"evidence"`
}

//go:generate mockgen -source=widget.go -destination=mock_widget/widget.go -package=mock_widget

// Verifier submits one attempt. A returned error means the backend could not be reached.
type Verifier interface {
	Verify(ctx context.Context, req VerifyRequest) (verification.Result, error)
}

type Transition func(from, to State)

type Widget struct {
	mu        sync.Mutex
	task      verification.Task
	user      verification.UserIdentity
	verifier  Verifier
	state     State
	observers []Transition
	now       func() time.Time
}

func New(task verification.Task, user verification.UserIdentity, v Verifier) *Widget {
	return &Widget{
		task:     task,
		user:     user,
		verifier: v,
		state:    State{Status: StatusWaiting},
		now:      time.Now,
	}
}

// OnTransition registers fn for every state change. fn runs without the widget lock held.
func (w *Widget) OnTransition(fn Transition) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, fn)
}

func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// CanVerify drives the verify button.
func (w *Widget) CanVerify() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Status == StatusActionTaken || w.state.Status == StatusFailed
}

// OpenTarget records the click on the action button and returns the URL to open.
// The first open time is kept across retries.
func (w *Widget) OpenTarget() (string, error) {
	w.mu.Lock()
	switch w.state.Status {
	case StatusVerifying:
		w.mu.Unlock()
		return "", ErrVerifying
	case StatusSuccess:
		w.mu.Unlock()
		return "", ErrAlreadyVerified
	}
	from := w.state
	if !w.state.HasOpenedTarget {
		at := w.now()
		w.state.HasOpenedTarget = true
		w.state.OpenedAt = &at
	}
	w.state.Status = StatusActionTaken
	to, obs := w.state, w.snapshotObservers()
	w.mu.Unlock()

	notify(obs, from, to)
	if w.task.Params == nil {
		return "", nil
	}
	return w.task.Params.TargetURL(), nil
}

// Verify submits one attempt. Retrying after a failure is always a new call by the user.
func (w *Widget) Verify(ctx context.Context) (verification.Result, error) {
	w.mu.Lock()
	switch w.state.Status {
	case StatusWaiting:
		w.mu.Unlock()
		return verification.Result{}, ErrTargetNotOpened
	case StatusVerifying:
		w.mu.Unlock()
		return verification.Result{}, ErrVerifying
	case StatusSuccess:
		w.mu.Unlock()
		return verification.Result{}, ErrAlreadyVerified
	}
	from := w.state
	w.state.Status = StatusVerifying
	w.state.Attempts++
	req := VerifyRequest{
		CampaignID: w.task.CampaignID,
		TaskID:     w.task.ID,
		User:       w.user,
		Evidence:   verification.Evidence{HasOpenedTarget: w.state.HasOpenedTarget, OpenedAt: w.state.OpenedAt},
	}
	mid, obs := w.state, w.snapshotObservers()
	w.mu.Unlock()
	notify(obs, from, mid)

	res, err := w.verifier.Verify(ctx, req)
	if err != nil {
		res = verification.Result{Success: false, Error: err.Error(), Kind: verification.FailureTransport}
	}

	w.mu.Lock()
	if res.Success {
		w.state.Status = StatusSuccess
	} else {
		w.state.Status = StatusFailed
	}
	w.state.LastMessage = displayMessage(res)
	to, obs := w.state, w.snapshotObservers()
	w.mu.Unlock()
	notify(obs, mid, to)

	return res, nil
}

func displayMessage(res verification.Result) string {
	if res.Error != "" {
		return res.Error
	}
	return res.Message
}

func (w *Widget) snapshotObservers() []Transition {
	return append([]Transition(nil), w.observers...)
}

func notify(obs []Transition, from, to State) {
	for _, fn := range obs {
		fn(from, to)
	}
}
