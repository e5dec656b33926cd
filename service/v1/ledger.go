package service

import (
	"context"

	"github.com/locey/BurnWin/base/errcode"
	"github.com/locey/BurnWin/common"
	"github.com/locey/BurnWin/ledger"
	"github.com/locey/BurnWin/service/svc"
	types "github.com/locey/BurnWin/types/v1"
)

// GetCampaignTasks 获取活动任务列表
func GetCampaignTasks(s *svc.ServerCtx, campaignID string) (*types.CampaignTasks, error) {
	camp, ok := s.Catalog.Campaign(campaignID)
	if !ok {
		return nil, errcode.ErrCampaignUnknown
	}
	return &types.CampaignTasks{CampaignID: camp.ID, Name: camp.Name, Tasks: camp.Tasks}, nil
}

// GetProgress 获取钱包在活动下的任务完成度
func GetProgress(ctx context.Context, s *svc.ServerCtx, campaignID, address string) (*ledger.Snapshot, error) {
	addr, err := common.UnifyAddress(address)
	if err != nil {
		return nil, errIllegalAddress
	}
	snap, err := s.Ledger.Snapshot(ctx, addr, campaignID)
	if err != nil {
		return nil, ledgerErr(err)
	}
	return &snap, nil
}

// ResetProgress 管理员纠错，清空钱包在活动下的完成记录
func ResetProgress(ctx context.Context, s *svc.ServerCtx, campaignID, address string) error {
	addr, err := common.UnifyAddress(address)
	if err != nil {
		return errIllegalAddress
	}
	if _, ok := s.Catalog.Campaign(campaignID); !ok {
		return errcode.ErrCampaignUnknown
	}
	return s.Ledger.Reset(ctx, addr, campaignID)
}
