package types

import (
	"time"

	"github.com/locey/BurnWin/ledger"
	"github.com/locey/BurnWin/verification"
)

// VerifyTaskRequest 验证任务请求
type VerifyTaskRequest struct {
	CampaignID  string                    `json:"campaignId" validate:"required,max=64"`
	TaskID      string                    `json:"taskId" validate:"required,max=64"`
	UserAddress string                    `json:"userAddress" validate:"required,eth_addr"`
	Identity    verification.UserIdentity `json:"identity"`
	Evidence    verification.Evidence     `json:"evidence"`
}

type VerifyTaskResponse struct {
	Result   verification.Result `json:"result"`
	Snapshot *ledger.Snapshot    `json:"snapshot,omitempty"`
}

// OpenTaskRequest 用户点击了任务按钮
type OpenTaskRequest struct {
	CampaignID  string `json:"campaignId" validate:"required,max=64"`
	TaskID      string `json:"taskId" validate:"required,max=64"`
	UserAddress string `json:"userAddress" validate:"required,eth_addr"`
}

type OpenTaskResponse struct {
	OpenedAt  time.Time `json:"openedAt"`
	TargetURL string    `json:"targetUrl,omitempty"`
}

type CampaignTasks struct {
	CampaignID string              `json:"campaignId"`
	Name       string              `json:"name"`
	Tasks      []verification.Task `json:"tasks"`
}

// EligibilityRoot 活动的merkle根以及每个钱包的proof
type EligibilityRoot struct {
	CampaignID string              `json:"campaignId"`
	Root       string              `json:"root"`
	Proofs     map[string][]string `json:"proofs"`
}

type WalletEligibility struct {
	Snapshot ledger.Snapshot `json:"snapshot"`
	Root     string          `json:"root,omitempty"`
	Proof    []string        `json:"proof,omitempty"`
	// Staked 为nil表示未配置链上查询
	Staked *bool `json:"staked,omitempty"`
	// Paused 为nil表示未配置或查询失败
	Paused *bool `json:"paused,omitempty"`
}
