// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/subswap-labs/marketvm/consts"
	"github.com/subswap-labs/marketvm/market"
	"github.com/subswap-labs/marketvm/storage"
)

var _ chain.Action = (*MintLiquidity)(nil)

// MintLiquidity deposits [Amount0] of [Token0] and [Amount1] of [Token1] into
// the pair's pool, creating the pool if this is the first deposit, and mints
// pool shares to the actor in return.
type MintLiquidity struct {
	Token0  codec.Address `serialize:"true" json:"token0"`
	Amount0 uint64        `serialize:"true" json:"amount0"`
	Token1  codec.Address `serialize:"true" json:"token1"`
	Amount1 uint64        `serialize:"true" json:"amount1"`
}

// ComputeUnits implements chain.Action.
func (*MintLiquidity) ComputeUnits(chain.Rules) uint64 {
	return MintLiquidityComputeUnits
}

// Execute implements chain.Action.
func (m *MintLiquidity) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, timestamp int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	lpToken, err := storage.LPTokenAddress(m.Token0, m.Token1)
	if err != nil {
		return nil, ErrOutputIdenticalTokens
	}
	if !storage.TokenExists(ctx, mu, m.Token0) || !storage.TokenExists(ctx, mu, m.Token1) {
		return nil, ErrOutputTokenDoesNotExist
	}

	tokenLo, tokenHi := storage.SortAddresses(m.Token0, m.Token1)
	amountLo, amountHi := m.Amount0, m.Amount1
	if tokenLo != m.Token0 {
		amountLo, amountHi = amountHi, amountLo
	}

	if !storage.TokenExists(ctx, mu, lpToken) {
		return m.executeFirstDeposit(ctx, mu, timestamp, actor, lpToken, tokenLo, tokenHi, amountLo, amountHi)
	}

	// Sync the oracle against the reserves as they stood before this deposit.
	if err := updatePriceCumulative(ctx, mu, lpToken, timestamp); err != nil {
		return nil, err
	}

	lpTokenSupply, err := storage.TotalSupply(ctx, mu, lpToken)
	if err != nil {
		return nil, err
	}
	reserveLo, reserveHi, err := storage.GetReserves(ctx, mu, lpToken)
	if err != nil {
		return nil, err
	}
	liquidity, err := market.MintLiquidity(amountLo, amountHi, reserveLo, reserveHi, lpTokenSupply)
	if err != nil {
		return nil, err
	}

	if err := storage.TransferToken(ctx, mu, tokenLo, actor, storage.VaultAddress, amountLo); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, tokenHi, actor, storage.VaultAddress, amountHi); err != nil {
		return nil, err
	}
	if err := storage.MintToken(ctx, mu, lpToken, actor, liquidity); err != nil {
		return nil, err
	}

	newReserveLo, err := smath.Add(reserveLo, amountLo)
	if err != nil {
		return nil, err
	}
	newReserveHi, err := smath.Add(reserveHi, amountHi)
	if err != nil {
		return nil, err
	}
	if err := storage.SetReserves(ctx, mu, tokenLo, tokenHi, newReserveLo, newReserveHi, lpToken); err != nil {
		return nil, err
	}

	return &MintLiquidityResult{
		PoolCreated: false,
		LPToken:     lpToken,
		Liquidity:   liquidity,
	}, nil
}

// executeFirstDeposit bootstraps the pool: it creates the pool-share token,
// registers the pair, and locks [market.MinimumLiquidity] shares forever by
// minting them to the empty address.
func (m *MintLiquidity) executeFirstDeposit(
	ctx context.Context,
	mu state.Mutable,
	timestamp int64,
	actor codec.Address,
	lpToken codec.Address,
	tokenLo codec.Address,
	tokenHi codec.Address,
	amountLo uint64,
	amountHi uint64,
) (codec.Typed, error) {
	liquidity, err := market.FirstMintLiquidity(amountLo, amountHi)
	if err != nil {
		return nil, err
	}

	if err := storage.SetTokenInfo(
		ctx,
		mu,
		lpToken,
		[]byte(storage.LPTokenName),
		[]byte(storage.LPTokenSymbol),
		[]byte(storage.LPTokenMetadata),
		0,
		storage.VaultAddress,
	); err != nil {
		return nil, err
	}

	if err := storage.TransferToken(ctx, mu, tokenLo, actor, storage.VaultAddress, amountLo); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, tokenHi, actor, storage.VaultAddress, amountHi); err != nil {
		return nil, err
	}
	if err := storage.MintToken(ctx, mu, lpToken, actor, liquidity); err != nil {
		return nil, err
	}
	if err := storage.MintToken(ctx, mu, lpToken, codec.EmptyAddress, market.MinimumLiquidity); err != nil {
		return nil, err
	}

	if err := storage.SetReserves(ctx, mu, tokenLo, tokenHi, amountLo, amountHi, lpToken); err != nil {
		return nil, err
	}
	if err := storage.SetPoolTokens(ctx, mu, lpToken, tokenLo, tokenHi); err != nil {
		return nil, err
	}
	if err := storage.SetPair(ctx, mu, tokenLo, tokenHi, lpToken); err != nil {
		return nil, err
	}

	// Start the oracle clock without accumulating; there was no prior price
	// to weight.
	if err := storage.SetLastSync(ctx, mu, lpToken, uint64(timestamp)%market.TimeModulus); err != nil {
		return nil, err
	}

	return &MintLiquidityResult{
		PoolCreated: true,
		LPToken:     lpToken,
		Liquidity:   liquidity,
	}, nil
}

// GetTypeID implements chain.Action.
func (*MintLiquidity) GetTypeID() uint8 {
	return consts.MintLiquidityID
}

// StateKeys implements chain.Action.
func (m *MintLiquidity) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	lpToken, err := storage.LPTokenAddress(m.Token0, m.Token1)
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.TokenInfoKey(m.Token0)):                                 state.Read,
		string(storage.TokenInfoKey(m.Token1)):                                 state.Read,
		string(storage.TokenInfoKey(lpToken)):                                  state.All,
		string(storage.TokenAccountBalanceKey(m.Token0, actor)):                state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(m.Token1, actor)):                state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(m.Token0, storage.VaultAddress)): state.All,
		string(storage.TokenAccountBalanceKey(m.Token1, storage.VaultAddress)): state.All,
		string(storage.TokenAccountBalanceKey(lpToken, actor)):                 state.All,
		string(storage.TokenAccountBalanceKey(lpToken, codec.EmptyAddress)):    state.All,
		string(storage.PairKey(m.Token0, m.Token1)):                            state.All,
		string(storage.PairKey(m.Token1, m.Token0)):                            state.All,
		string(storage.PoolTokensKey(lpToken)):                                 state.All,
		string(storage.ReservesKey(lpToken)):                                   state.All,
		string(storage.PriceCumulativeKey(lpToken)):                            state.All,
		string(storage.LastSyncKey(lpToken)):                                   state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*MintLiquidity) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.TokenInfoChunks,
		storage.TokenInfoChunks,
		storage.TokenInfoChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.PairChunks,
		storage.PairChunks,
		storage.PoolTokensChunks,
		storage.ReservesChunks,
		storage.PriceCumulativeChunks,
		storage.LastSyncChunks,
	}
}

// ValidRange implements chain.Action.
func (*MintLiquidity) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*MintLiquidityResult)(nil)

type MintLiquidityResult struct {
	PoolCreated bool          `serialize:"true" json:"poolCreated"`
	LPToken     codec.Address `serialize:"true" json:"lpToken"`
	Liquidity   uint64        `serialize:"true" json:"liquidity"`
}

func (*MintLiquidityResult) GetTypeID() uint8 {
	return consts.MintLiquidityID
}
