package contract

import (
	"bytes"
	"context"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	pool    *BurnPool
	staked  map[common.Address]bool
	paused  bool
	failAll bool
}

func (f *fakeCaller) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	if f.failAll {
		return nil, errors.New("rpc down")
	}
	a := f.pool.contractABI
	switch {
	case bytes.Equal(msg.Data[:4], a.Methods["paused"].ID):
		return a.Methods["paused"].Outputs.Pack(f.paused)
	case bytes.Equal(msg.Data[:4], a.Methods["hasStaked"].ID):
		args, err := a.Methods["hasStaked"].Inputs.Unpack(msg.Data[4:])
		if err != nil {
			return nil, err
		}
		return a.Methods["hasStaked"].Outputs.Pack(f.staked[args[1].(common.Address)])
	}
	return nil, errors.New("unknown selector")
}

func newFakePool(t *testing.T) (*BurnPool, *fakeCaller) {
	f := &fakeCaller{staked: map[common.Address]bool{}}
	p, err := NewBurnPool(f, "0x00000000000000000000000000000000000000b1")
	require.NoError(t, err)
	f.pool = p
	return p, f
}

func TestBurnPool_HasStaked(t *testing.T) {
	p, f := newFakePool(t)
	staker := "0x00000000000000000000000000000000000000aa"
	f.staked[common.HexToAddress(staker)] = true

	ok, err := p.HasStaked(context.Background(), big.NewInt(7), staker)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.HasStaked(context.Background(), big.NewInt(7), "0x00000000000000000000000000000000000000bb")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = p.HasStaked(context.Background(), big.NewInt(7), "nope")
	assert.Error(t, err)
}

func TestBurnPool_Paused(t *testing.T) {
	p, f := newFakePool(t)
	f.paused = true
	paused, err := p.Paused(context.Background())
	require.NoError(t, err)
	assert.True(t, paused)

	f.failAll = true
	_, err = p.Paused(context.Background())
	assert.ErrorContains(t, err, "rpc down")
}

func TestNewBurnPool_InvalidAddress(t *testing.T) {
	_, err := NewBurnPool(&fakeCaller{}, "0x123")
	assert.Error(t, err)
}

func TestLoadABI_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BurnPool.abi")
	require.NoError(t, os.WriteFile(path, []byte(burnPoolABI), 0o600))

	parsed, err := LoadABI(path)
	require.NoError(t, err)
	assert.Contains(t, parsed.Methods, "hasStaked")

	require.NoError(t, os.WriteFile(path, []byte(`[]`), 0o600))
	_, err = LoadABI(path)
	assert.ErrorContains(t, err, "no hasStaked")

	_, err = LoadABI(filepath.Join(t.TempDir(), "missing.abi"))
	assert.Error(t, err)
}
