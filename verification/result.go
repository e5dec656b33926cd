package verification

import "time"

type FailureKind string

const (
	FailureConfiguration FailureKind = "configuration"
	FailureNotFound      FailureKind = "not_found"
	FailureTransport     FailureKind = "transport"
	FailureTimeout       FailureKind = "timeout"
	FailureGate          FailureKind = "gate"
	FailureUnsupported   FailureKind = "unsupported"
	FailureInvalid       FailureKind = "invalid"
)

const MsgRequestTimeout = "Request timeout"

// Outcome is what an adapter decides. Exactly two variants exist: Verified and Unverified.
type Outcome interface {
	IsVerified() bool
	outcome()
}

type Verified struct {
	At      time.Time
	Message string
	Details map[string]any
}

type Unverified struct {
	Kind   FailureKind
	Reason string
}

func (Verified) IsVerified() bool   { return true }
func (Unverified) IsVerified() bool { return false }
func (Verified) outcome()           {}
func (Unverified) outcome()         {}

func Fail(kind FailureKind, reason string) Unverified {
	return Unverified{Kind: kind, Reason: reason}
}

// Result is the wire shape returned to callers.
type Result struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Kind    FailureKind `json:"kind,omitempty"`
	Data    *ResultData `json:"data,omitempty"`
}

type ResultData struct {
	Verified  bool           `json:"verified"`
	Timestamp int64          `json:"timestamp"`
	Details   map[string]any `json:"details,omitempty"`
}

func NewResult(o Outcome) Result {
	switch v := o.(type) {
	case Verified:
		msg := v.Message
		if msg == "" {
			msg = "Task verified"
		}
		return Result{
			Success: true,
			Message: msg,
			Data: &ResultData{
				Verified:  true,
				Timestamp: v.At.UnixMilli(),
				Details:   v.Details,
			},
		}
	case Unverified:
		r := Result{Success: false, Error: v.Reason, Kind: v.Kind}
		// gate violations are instructions for the user, not errors
		if v.Kind == FailureGate {
			r.Message, r.Error = v.Reason, ""
		}
		return r
	default:
		return Result{Success: false, Error: "verification produced no outcome", Kind: FailureTransport}
	}
}
