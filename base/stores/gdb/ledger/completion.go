package ledger

import "time"

// TaskCompletion 钱包在某个活动下完成的任务，一行一个任务
type TaskCompletion struct {
	ID          int64     `gorm:"primaryKey" json:"id"`
	Wallet      string    `gorm:"size:42;not null;uniqueIndex:uk_wallet_campaign_task" json:"wallet"`
	CampaignID  string    `gorm:"size:64;not null;uniqueIndex:uk_wallet_campaign_task;index" json:"campaign_id"`
	TaskID      string    `gorm:"size:64;not null;uniqueIndex:uk_wallet_campaign_task" json:"task_id"`
	CompletedAt time.Time `gorm:"not null" json:"completed_at"`
	CreatedAt   time.Time `json:"created_at"`
}

func TaskCompletionTableName() string {
	return "task_completion"
}

func (TaskCompletion) TableName() string {
	return TaskCompletionTableName()
}
