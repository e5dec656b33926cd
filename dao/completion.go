package dao

import (
	"context"
	"time"

	"gorm.io/gorm/clause"

	gdbledger "github.com/locey/BurnWin/base/stores/gdb/ledger"
	"github.com/locey/BurnWin/ledger"
)

var _ ledger.Store = (*Dao)(nil)

// Completed 查询钱包在活动下已完成的任务
func (d *Dao) Completed(c context.Context, key ledger.Key) (map[string]time.Time, error) {
	var rows []gdbledger.TaskCompletion
	err := d.DB.WithContext(c).
		Table(gdbledger.TaskCompletionTableName()).
		Where("wallet = ? and campaign_id = ?", key.Wallet, key.CampaignID).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]time.Time, len(rows))
	for _, r := range rows {
		out[r.TaskID] = r.CompletedAt
	}
	return out, nil
}

// Add 插入完成记录，唯一索引冲突时不做任何事
func (d *Dao) Add(c context.Context, key ledger.Key, taskID string, at time.Time) (bool, error) {
	row := &gdbledger.TaskCompletion{
		Wallet:      key.Wallet,
		CampaignID:  key.CampaignID,
		TaskID:      taskID,
		CompletedAt: at,
	}
	res := d.DB.WithContext(c).Clauses(clause.OnConflict{DoNothing: true}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (d *Dao) Reset(c context.Context, key ledger.Key) error {
	return d.DB.WithContext(c).
		Where("wallet = ? and campaign_id = ?", key.Wallet, key.CampaignID).
		Delete(&gdbledger.TaskCompletion{}).Error
}

// Wallets 活动下有完成记录的钱包
func (d *Dao) Wallets(c context.Context, campaignID string) ([]string, error) {
	var wallets []string
	err := d.DB.WithContext(c).
		Table(gdbledger.TaskCompletionTableName()).
		Where("campaign_id = ?", campaignID).
		Distinct().Pluck("wallet", &wallets).Error
	return wallets, err
}
