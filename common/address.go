package common

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
)

var ErrIllegalAddress = errors.New("user address is illegal")

// UnifyAddress 校验地址并统一为小写hex
func UnifyAddress(address string) (string, error) {
	address = strings.TrimSpace(address)
	if len(address) <= 2 || !common.IsHexAddress(address) {
		return "", ErrIllegalAddress
	}
	return strings.ToLower(common.HexToAddress(address).Hex()), nil
}

// CampaignNumber 活动id在链上的uint256表示: keccak256(campaignId)
func CampaignNumber(campaignID string) *big.Int {
	return new(big.Int).SetBytes(crypto.Keccak256([]byte(campaignID)))
}
