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

var _ chain.Action = (*BurnLiquidity)(nil)

// BurnLiquidity redeems [Amount] pool shares of the ([Token0], [Token1]) pair
// for a pro-rata portion of both reserves.
type BurnLiquidity struct {
	Token0 codec.Address `serialize:"true" json:"token0"`
	Token1 codec.Address `serialize:"true" json:"token1"`
	Amount uint64        `serialize:"true" json:"amount"`
}

// ComputeUnits implements chain.Action.
func (*BurnLiquidity) ComputeUnits(chain.Rules) uint64 {
	return BurnLiquidityComputeUnits
}

// Execute implements chain.Action.
func (b *BurnLiquidity) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, timestamp int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if b.Amount == 0 {
		return nil, ErrOutputInsufficientAmount
	}
	lpToken, err := storage.GetPair(ctx, mu, b.Token0, b.Token1)
	if err != nil {
		return nil, ErrOutputInvalidPair
	}
	tokenLo, tokenHi, err := storage.GetPoolTokens(ctx, mu, lpToken)
	if err != nil {
		return nil, err
	}

	// Sync the oracle against the reserves as they stood before this
	// withdrawal.
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
	outputLo, outputHi, err := market.BurnLiquidity(b.Amount, reserveLo, reserveHi, lpTokenSupply)
	if err != nil {
		return nil, err
	}

	if err := storage.BurnToken(ctx, mu, lpToken, actor, b.Amount); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, tokenLo, storage.VaultAddress, actor, outputLo); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, tokenHi, storage.VaultAddress, actor, outputHi); err != nil {
		return nil, err
	}

	newReserveLo, err := smath.Sub(reserveLo, outputLo)
	if err != nil {
		return nil, err
	}
	newReserveHi, err := smath.Sub(reserveHi, outputHi)
	if err != nil {
		return nil, err
	}
	if err := storage.SetReserves(ctx, mu, tokenLo, tokenHi, newReserveLo, newReserveHi, lpToken); err != nil {
		return nil, err
	}

	return &BurnLiquidityResult{
		Token0:  tokenLo,
		Amount0: outputLo,
		Token1:  tokenHi,
		Amount1: outputHi,
	}, nil
}

// GetTypeID implements chain.Action.
func (*BurnLiquidity) GetTypeID() uint8 {
	return consts.BurnLiquidityID
}

// StateKeys implements chain.Action.
func (b *BurnLiquidity) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	lpToken, err := storage.LPTokenAddress(b.Token0, b.Token1)
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.PairKey(b.Token0, b.Token1)):                            state.Read,
		string(storage.PoolTokensKey(lpToken)):                                 state.Read,
		string(storage.TokenInfoKey(lpToken)):                                  state.Read | state.Write,
		string(storage.TokenInfoKey(b.Token0)):                                 state.Read | state.Write,
		string(storage.TokenInfoKey(b.Token1)):                                 state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(lpToken, actor)):                 state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(b.Token0, actor)):                state.All,
		string(storage.TokenAccountBalanceKey(b.Token1, actor)):                state.All,
		string(storage.TokenAccountBalanceKey(b.Token0, storage.VaultAddress)): state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(b.Token1, storage.VaultAddress)): state.Read | state.Write,
		string(storage.ReservesKey(lpToken)):                                   state.Read | state.Write,
		string(storage.PriceCumulativeKey(lpToken)):                            state.All,
		string(storage.LastSyncKey(lpToken)):                                   state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*BurnLiquidity) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.PairChunks,
		storage.PoolTokensChunks,
		storage.TokenInfoChunks,
		storage.TokenInfoChunks,
		storage.TokenInfoChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
		storage.ReservesChunks,
		storage.PriceCumulativeChunks,
		storage.LastSyncChunks,
	}
}

// ValidRange implements chain.Action.
func (*BurnLiquidity) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*BurnLiquidityResult)(nil)

// BurnLiquidityResult reports the redeemed amounts in canonical token order.
type BurnLiquidityResult struct {
	Token0  codec.Address `serialize:"true" json:"token0"`
	Amount0 uint64        `serialize:"true" json:"amount0"`
	Token1  codec.Address `serialize:"true" json:"token1"`
	Amount1 uint64        `serialize:"true" json:"amount1"`
}

func (*BurnLiquidityResult) GetTypeID() uint8 {
	return consts.BurnLiquidityID
}
