package service

import (
	"context"
	"encoding/hex"

	gethcommon "github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/txaty/go-merkletree"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/common"
	"github.com/locey/BurnWin/service/svc"
	types "github.com/locey/BurnWin/types/v1"
)

// BuildEligibility 计算活动下已完成全部必选任务的钱包的merkle根和proof
func BuildEligibility(ctx context.Context, s *svc.ServerCtx, campaignID string) (*types.EligibilityRoot, error) {
	snaps, err := s.Ledger.Eligible(ctx, campaignID)
	if err != nil {
		return nil, ledgerErr(err)
	}
	wallets := make([]string, 0, len(snaps))
	for _, snap := range snaps {
		wallets = append(wallets, snap.Wallet)
	}

	root, proofs, err := CalculateProof(campaignID, wallets)
	if err != nil {
		return nil, err
	}
	xzap.WithContext(ctx).Info("eligibility built",
		zap.String("campaign_id", campaignID), zap.Int("wallets", len(wallets)), zap.String("root", root))
	return &types.EligibilityRoot{CampaignID: campaignID, Root: root, Proofs: proofs}, nil
}

// GetWalletEligibility 钱包的完成度、proof以及是否已在链上质押
func GetWalletEligibility(ctx context.Context, s *svc.ServerCtx, campaignID, address string) (*types.WalletEligibility, error) {
	snap, err := GetProgress(ctx, s, campaignID, address)
	if err != nil {
		return nil, err
	}
	out := &types.WalletEligibility{Snapshot: *snap}
	if snap.AllRequiredComplete {
		all, err := BuildEligibility(ctx, s, campaignID)
		if err != nil {
			return nil, err
		}
		out.Root = all.Root
		out.Proof = all.Proofs[snap.Wallet]
	}

	if s.BurnPool != nil {
		staked, err := s.BurnPool.HasStaked(ctx, common.CampaignNumber(campaignID), snap.Wallet)
		if err != nil {
			// 链上查询失败不影响链下结果
			xzap.WithContext(ctx).Warn("burn pool query failed", zap.String("wallet", snap.Wallet), zap.Error(err))
		} else {
			out.Staked = &staked
		}
		paused, err := s.BurnPool.Paused(ctx)
		if err != nil {
			xzap.WithContext(ctx).Warn("burn pool paused query failed", zap.Error(err))
		} else {
			out.Paused = &paused
		}
	}
	return out, nil
}

// CalculateProof 每个钱包一个叶子: keccak256(abi.encodePacked(address, uint256 campaignId))，
// 返回hex编码的root以及每个钱包的proof
func CalculateProof(campaignID string, wallets []string) (string, map[string][]string, error) {
	proofs := make(map[string][]string, len(wallets))
	if len(wallets) == 0 {
		return "", proofs, nil
	}

	campaignNum := common.CampaignNumber(campaignID)
	contents := make([]*MerkleContent, 0, len(wallets))
	leaves := make([]merkletree.DataBlock, 0, len(wallets))
	for _, w := range wallets {
		// address: 20 bytes, uint256: 32 bytes
		var data []byte
		data = append(data, gethcommon.HexToAddress(w).Bytes()...)
		data = append(data, padBytesLeft(campaignNum.Bytes(), 32)...)
		content := &MerkleContent{Data: crypto.Keccak256(data)}
		contents = append(contents, content)
		leaves = append(leaves, content)
	}

	// 只有一个叶子时root就是叶子哈希，proof为空
	if len(leaves) == 1 {
		leaf, _ := keccak256Wrapper(contents[0].Data)
		proofs[wallets[0]] = []string{}
		return toHex(leaf), proofs, nil
	}

	tree, err := merkletree.New(&merkletree.Config{
		HashFunc:         keccak256Wrapper,
		Mode:             merkletree.ModeProofGenAndTreeBuild,
		SortSiblingPairs: true,
	}, leaves)
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to create merkle tree")
	}

	for i, w := range wallets {
		proof, err := tree.Proof(contents[i])
		if err != nil {
			return "", nil, errors.Wrapf(err, "failed on proof for %s", w)
		}
		// 合约需要bytes32[]，Siblings已经是哈希值
		hexStrings := make([]string, len(proof.Siblings))
		for k, sibling := range proof.Siblings {
			hexStrings[k] = toHex(sibling)
		}
		proofs[w] = hexStrings
	}
	return toHex(tree.Root), proofs, nil
}

type MerkleContent struct {
	Data []byte
}

// Serialize 实现 DataBlock 接口的 Serialize 方法
func (m *MerkleContent) Serialize() ([]byte, error) {
	return m.Data, nil
}

// 包装 Keccak256 为 merkletree 所需的 HashFunc 类型
func keccak256Wrapper(data []byte) ([]byte, error) {
	return crypto.Keccak256(data), nil
}

func toHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// 左填充到指定长度
func padBytesLeft(original []byte, targetLength int) []byte {
	if len(original) >= targetLength {
		return original
	}
	padded := make([]byte, targetLength)
	copy(padded[targetLength-len(original):], original)
	return padded
}
