package chain

const (
	Eth      = "eth"
	Optimism = "optimism"
	Sepolia  = "sepolia"
)

const (
	EthChainID      = 1
	OptimismChainID = 10
	SepoliaChainID  = 11155111
)

var names = map[int64]string{
	EthChainID:      Eth,
	OptimismChainID: Optimism,
	SepoliaChainID:  Sepolia,
}

// Name 返回链名称，不支持的链返回false
func Name(chainID int64) (string, bool) {
	n, ok := names[chainID]
	return n, ok
}
