package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/logger/xzap"
)

const SubjectPrefix = "burnwin.task.completed"

// CompletionEvent is emitted once per newly completed (wallet, campaign, task).
type CompletionEvent struct {
	Wallet               string    `json:"wallet"`
	CampaignID           string    `json:"campaignId"`
	TaskID               string    `json:"taskId"`
	CompletedAt          time.Time `json:"completedAt"`
	CompletionPercentage int       `json:"completionPercentage"`
	AllRequiredComplete  bool      `json:"allRequiredComplete"`
}

type Publisher interface {
	PublishCompletion(ctx context.Context, ev CompletionEvent) error
}

type NopPublisher struct{}

func (NopPublisher) PublishCompletion(context.Context, CompletionEvent) error { return nil }

type NATSConfig struct {
	URL           string `toml:"url" mapstructure:"url"`
	SubjectPrefix string `toml:"subject_prefix" mapstructure:"subject_prefix"`
}

type NATSPublisher struct {
	nc     *nats.Conn
	prefix string
}

func NewNATSPublisher(c NATSConfig) (*NATSPublisher, error) {
	nc, err := nats.Connect(c.URL,
		nats.Name("burnwin-verifier"),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				xzap.L().Warn("nats disconnected", zap.Error(err))
			}
		}),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed on connect nats")
	}
	prefix := c.SubjectPrefix
	if prefix == "" {
		prefix = SubjectPrefix
	}
	return &NATSPublisher{nc: nc, prefix: prefix}, nil
}

func Subject(prefix, campaignID string) string {
	return prefix + "." + campaignID
}

func (p *NATSPublisher) PublishCompletion(_ context.Context, ev CompletionEvent) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.nc.Publish(Subject(p.prefix, ev.CampaignID), data)
}

func (p *NATSPublisher) Close() {
	if p.nc != nil {
		_ = p.nc.Drain()
	}
}
