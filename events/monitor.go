package events

import (
	"context"
	"encoding/json"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/logger/xzap"
)

// Handler receives each decoded completion event.
type Handler func(ev CompletionEvent)

// DecodeCompletion 解析完成事件消息
func DecodeCompletion(data []byte) (CompletionEvent, error) {
	var ev CompletionEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		return ev, errors.Wrap(err, "invalid completion event")
	}
	if ev.Wallet == "" || ev.CampaignID == "" || ev.TaskID == "" {
		return ev, errors.New("completion event misses wallet, campaign or task")
	}
	return ev, nil
}

// Monitor 订阅完成事件直到ctx结束。campaignID为空时订阅所有活动
func Monitor(ctx context.Context, c NATSConfig, campaignID string, h Handler) error {
	nc, err := nats.Connect(c.URL, nats.Name("burnwin-monitor"))
	if err != nil {
		return errors.Wrap(err, "failed on connect nats")
	}

	prefix := c.SubjectPrefix
	if prefix == "" {
		prefix = SubjectPrefix
	}
	subject := Subject(prefix, "*")
	if campaignID != "" {
		subject = Subject(prefix, campaignID)
	}

	msgs := make(chan *nats.Msg, 64)
	if _, err := nc.ChanSubscribe(subject, msgs); err != nil {
		nc.Close()
		return errors.Wrapf(err, "failed on subscribe %s", subject)
	}
	// drain unsubscribes and closes the connection
	defer func() {
		if err := nc.Drain(); err != nil {
			xzap.WithContext(ctx).Warn("failed on drain nats", zap.String("subject", subject), zap.Error(err))
		}
	}()

	xzap.WithContext(ctx).Info("monitoring completion events", zap.String("subject", subject))
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg := <-msgs:
			ev, err := DecodeCompletion(msg.Data)
			if err != nil {
				xzap.WithContext(ctx).Warn("skip completion event", zap.String("subject", msg.Subject), zap.Error(err))
				continue
			}
			h(ev)
		}
	}
}
