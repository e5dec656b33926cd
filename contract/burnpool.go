package contract

import (
	"context"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/locey/BurnWin/base/chain"
	"github.com/locey/BurnWin/base/logger/xzap"
	"github.com/locey/BurnWin/common/utils"
)

// 合约ABI（只读，只包含我们需要的方法）
const burnPoolABI = `[
    {
        "inputs": [
            {"internalType": "uint256", "name": "campaignId", "type": "uint256"},
            {"internalType": "address", "name": "account", "type": "address"}
        ],
        "name": "hasStaked",
        "outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
        "stateMutability": "view",
        "type": "function"
    },
    {
        "inputs": [],
        "name": "paused",
        "outputs": [{"internalType": "bool", "name": "", "type": "bool"}],
        "stateMutability": "view",
        "type": "function"
    }
]`

const callTimeout = 10 * time.Second

var burnPoolMethods = []string{"hasStaked", "paused"}

// BurnPool 封装了BurnPool合约的只读调用
type BurnPool struct {
	caller      ethereum.ContractCaller
	contractABI abi.ABI
	address     common.Address
	closer      func()
}

// LoadABI 读取abi文件，路径为空时使用内置ABI
func LoadABI(path string) (abi.ABI, error) {
	if path != "" {
		return utils.ReadABI(path, burnPoolMethods...)
	}
	parsedABI, err := abi.JSON(strings.NewReader(burnPoolABI))
	if err != nil {
		return abi.ABI{}, errors.Wrap(err, "failed to parse burn pool ABI")
	}
	return parsedABI, nil
}

func NewBurnPool(caller ethereum.ContractCaller, address string) (*BurnPool, error) {
	parsedABI, err := LoadABI("")
	if err != nil {
		return nil, err
	}
	return newBurnPool(caller, address, parsedABI)
}

func newBurnPool(caller ethereum.ContractCaller, address string, parsedABI abi.ABI) (*BurnPool, error) {
	if err := utils.RequireMethods(parsedABI, burnPoolMethods...); err != nil {
		return nil, err
	}
	// 验证合约地址
	if !common.IsHexAddress(address) {
		return nil, errors.Errorf("invalid contract address: %s", address)
	}
	return &BurnPool{
		caller:      caller,
		contractABI: parsedABI,
		address:     common.HexToAddress(address),
	}, nil
}

// DialBurnPool 连接以太坊节点并创建合约客户端
func DialBurnPool(ctx context.Context, endpoint, address, abiPath string) (*BurnPool, error) {
	parsedABI, err := LoadABI(abiPath)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	client, err := ethclient.DialContext(ctx, endpoint)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to Ethereum node")
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, errors.Wrap(err, "failed to get chain id")
	}
	name, ok := chain.Name(chainID.Int64())
	if !ok {
		client.Close()
		return nil, errors.Errorf("unsupported chain id %s", chainID)
	}
	p, err := newBurnPool(client, address, parsedABI)
	if err != nil {
		client.Close()
		return nil, err
	}
	xzap.WithContext(ctx).Info("burn pool connected", zap.String("chain", name), zap.String("address", p.address.Hex()))
	p.closer = client.Close
	return p, nil
}

func (p *BurnPool) HasStaked(ctx context.Context, campaignID *big.Int, account string) (bool, error) {
	if !common.IsHexAddress(account) {
		return false, errors.Errorf("invalid account address: %s", account)
	}
	return p.callBool(ctx, "hasStaked", campaignID, common.HexToAddress(account))
}

func (p *BurnPool) Paused(ctx context.Context) (bool, error) {
	return p.callBool(ctx, "paused")
}

func (p *BurnPool) callBool(ctx context.Context, method string, args ...interface{}) (bool, error) {
	data, err := p.contractABI.Pack(method, args...)
	if err != nil {
		return false, errors.Wrapf(err, "failed to pack %s", method)
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()
	result, err := p.caller.CallContract(ctx, ethereum.CallMsg{To: &p.address, Data: data}, nil)
	if err != nil {
		return false, errors.Wrapf(err, "failed to call %s", method)
	}

	out, err := p.contractABI.Unpack(method, result)
	if err != nil {
		return false, errors.Wrapf(err, "failed to unpack %s", method)
	}
	if len(out) != 1 {
		return false, errors.Errorf("%s returned %d values", method, len(out))
	}
	v, ok := out[0].(bool)
	if !ok {
		return false, errors.Errorf("%s returned %T", method, out[0])
	}
	return v, nil
}

// Close 关闭客户端连接
func (p *BurnPool) Close() {
	if p.closer != nil {
		p.closer()
	}
}
