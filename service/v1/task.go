package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/errcode"
	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/common"
	"github.com/locey/BurnWin/engagement"
	"github.com/locey/BurnWin/service/svc"
	types "github.com/locey/BurnWin/types/v1"
	"github.com/locey/BurnWin/verification"
)

func lookupTask(s *svc.ServerCtx, campaignID, taskID string) (verification.Task, error) {
	if _, ok := s.Catalog.Campaign(campaignID); !ok {
		return verification.Task{}, errcode.ErrCampaignUnknown
	}
	task, ok := s.Catalog.Task(campaignID, taskID)
	if !ok {
		return verification.Task{}, errcode.ErrTaskUnknown
	}
	return task, nil
}

// VerifyTask 验证任务，成功时写入ledger
func VerifyTask(ctx context.Context, s *svc.ServerCtx, req *types.VerifyTaskRequest) (*types.VerifyTaskResponse, error) {
	addr, err := common.UnifyAddress(req.UserAddress)
	if err != nil {
		return nil, errIllegalAddress
	}
	task, err := lookupTask(s, req.CampaignID, req.TaskID)
	if err != nil {
		return nil, err
	}

	ctx = xzap.NewContext(ctx, zap.String("attempt_id", uuid.NewString()))
	identity := req.Identity
	identity.Address = addr
	evidence := serverEvidence(ctx, s, engagement.Key{Wallet: addr, CampaignID: task.CampaignID, TaskID: task.ID}, req.Evidence)

	res := s.Orchestrator.VerifyTask(ctx, verification.Request{Task: task, User: identity, Evidence: evidence})
	resp := &types.VerifyTaskResponse{Result: res}
	if !res.Success {
		return resp, nil
	}

	snap, err := s.Ledger.RecordCompletion(ctx, addr, task.CampaignID, task.ID, true)
	if err != nil {
		return nil, errors.Wrap(ledgerErr(err), "failed on record completion")
	}
	resp.Snapshot = &snap
	return resp, nil
}

// serverEvidence 服务端记录的点击时间优先于客户端上报
func serverEvidence(ctx context.Context, s *svc.ServerCtx, key engagement.Key, claimed verification.Evidence) verification.Evidence {
	if s.Engagement == nil {
		return claimed
	}
	at, ok, err := s.Engagement.Get(ctx, key, engagement.KindOpened)
	if err != nil {
		xzap.WithContext(ctx).Warn("engagement lookup failed", zap.String("key", key.String()), zap.Error(err))
		return claimed
	}
	if !ok {
		return claimed
	}
	return verification.Evidence{HasOpenedTarget: true, OpenedAt: &at}
}

// OpenTask 记录用户点击任务按钮的时间，重复点击保留第一次
func OpenTask(ctx context.Context, s *svc.ServerCtx, req *types.OpenTaskRequest) (*types.OpenTaskResponse, error) {
	addr, err := common.UnifyAddress(req.UserAddress)
	if err != nil {
		return nil, errIllegalAddress
	}
	task, err := lookupTask(s, req.CampaignID, req.TaskID)
	if err != nil {
		return nil, err
	}
	at, err := s.Engagement.Record(ctx, engagement.Key{Wallet: addr, CampaignID: task.CampaignID, TaskID: task.ID}, engagement.KindOpened, time.Now())
	if err != nil {
		return nil, errors.Wrap(err, "failed on record open")
	}
	return &types.OpenTaskResponse{OpenedAt: at, TargetURL: task.Params.TargetURL()}, nil
}

// TrackVisit 记录经由跳转链接的访问，返回跳转地址
func TrackVisit(ctx context.Context, s *svc.ServerCtx, campaignID, taskID, address string) (string, error) {
	addr, err := common.UnifyAddress(address)
	if err != nil {
		return "", errIllegalAddress
	}
	task, err := lookupTask(s, campaignID, taskID)
	if err != nil {
		return "", err
	}
	target := task.Params.TargetURL()
	if target == "" {
		return "", errcode.NewCustomErr("task has no target link")
	}

	key := engagement.Key{Wallet: addr, CampaignID: task.CampaignID, TaskID: task.ID}
	now := time.Now()
	if _, err := s.Engagement.Record(ctx, key, engagement.KindOpened, now); err != nil {
		return "", errors.Wrap(err, "failed on record open")
	}
	if _, err := s.Engagement.Record(ctx, key, engagement.KindVisited, now); err != nil {
		return "", errors.Wrap(err, "failed on record visit")
	}
	return target, nil
}
