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

var _ chain.Action = (*Swap)(nil)

// Swap trades [AmountIn] of [TokenIn] for as much [TokenOut] as the pair's
// pool will give at the constant-product price.
type Swap struct {
	TokenIn  codec.Address `serialize:"true" json:"tokenIn"`
	AmountIn uint64        `serialize:"true" json:"amountIn"`
	TokenOut codec.Address `serialize:"true" json:"tokenOut"`
}

// ComputeUnits implements chain.Action.
func (*Swap) ComputeUnits(chain.Rules) uint64 {
	return SwapComputeUnits
}

// Execute implements chain.Action.
func (s *Swap) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, timestamp int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if s.AmountIn == 0 {
		return nil, ErrOutputInsufficientAmount
	}
	if storage.CompareAddress(s.TokenIn, s.TokenOut) == storage.Equal {
		return nil, ErrOutputIdenticalTokens
	}
	lpToken, err := storage.GetPair(ctx, mu, s.TokenIn, s.TokenOut)
	if err != nil {
		return nil, ErrOutputInvalidPair
	}

	// Sync the oracle against the reserves as they stood before this trade.
	if err := updatePriceCumulative(ctx, mu, lpToken, timestamp); err != nil {
		return nil, err
	}

	reserveLo, reserveHi, err := storage.GetReserves(ctx, mu, lpToken)
	if err != nil {
		return nil, err
	}
	reserveIn, reserveOut := reserveLo, reserveHi
	if storage.CompareAddress(s.TokenIn, s.TokenOut) == storage.GreaterThan {
		reserveIn, reserveOut = reserveHi, reserveLo
	}

	amountOut, err := market.GetAmountOut(s.AmountIn, reserveIn, reserveOut)
	if err != nil {
		return nil, err
	}

	if err := storage.TransferToken(ctx, mu, s.TokenIn, actor, storage.VaultAddress, s.AmountIn); err != nil {
		return nil, err
	}
	if err := storage.TransferToken(ctx, mu, s.TokenOut, storage.VaultAddress, actor, amountOut); err != nil {
		return nil, err
	}

	newReserveIn, err := smath.Add(reserveIn, s.AmountIn)
	if err != nil {
		return nil, err
	}
	if err := storage.SetReserves(ctx, mu, s.TokenIn, s.TokenOut, newReserveIn, reserveOut-amountOut, lpToken); err != nil {
		return nil, err
	}

	return &SwapResult{
		TokenOut:  s.TokenOut,
		AmountOut: amountOut,
	}, nil
}

// GetTypeID implements chain.Action.
func (*Swap) GetTypeID() uint8 {
	return consts.SwapID
}

// StateKeys implements chain.Action.
func (s *Swap) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	lpToken, err := storage.LPTokenAddress(s.TokenIn, s.TokenOut)
	if err != nil {
		return state.Keys{}
	}
	return state.Keys{
		string(storage.PairKey(s.TokenIn, s.TokenOut)):                           state.Read,
		string(storage.TokenAccountBalanceKey(s.TokenIn, actor)):                 state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(s.TokenOut, actor)):                state.All,
		string(storage.TokenAccountBalanceKey(s.TokenIn, storage.VaultAddress)):  state.All,
		string(storage.TokenAccountBalanceKey(s.TokenOut, storage.VaultAddress)): state.Read | state.Write,
		string(storage.ReservesKey(lpToken)):                                     state.Read | state.Write,
		string(storage.PriceCumulativeKey(lpToken)):                              state.All,
		string(storage.LastSyncKey(lpToken)):                                     state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*Swap) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.PairChunks,
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
func (*Swap) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*SwapResult)(nil)

type SwapResult struct {
	TokenOut  codec.Address `serialize:"true" json:"tokenOut"`
	AmountOut uint64        `serialize:"true" json:"amountOut"`
}

func (*SwapResult) GetTypeID() uint8 {
	return consts.SwapID
}
