// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/subswap-labs/marketvm/consts"
	"github.com/subswap-labs/marketvm/storage"
)

var _ chain.Action = (*BurnToken)(nil)

type BurnToken struct {
	Token codec.Address `serialize:"true" json:"token"`
	Value uint64        `serialize:"true" json:"value"`
}

// ComputeUnits implements chain.Action.
func (*BurnToken) ComputeUnits(chain.Rules) uint64 {
	return BurnTokenComputeUnits
}

// Execute implements chain.Action.
func (b *BurnToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if b.Value == 0 {
		return nil, ErrOutputValueZero
	}
	if !storage.TokenExists(ctx, mu, b.Token) {
		return nil, ErrOutputTokenDoesNotExist
	}
	if err := storage.BurnToken(ctx, mu, b.Token, actor, b.Value); err != nil {
		return nil, err
	}
	return &BurnTokenResult{}, nil
}

// GetTypeID implements chain.Action.
func (*BurnToken) GetTypeID() uint8 {
	return consts.BurnTokenID
}

// StateKeys implements chain.Action.
func (b *BurnToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(b.Token)):                  state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(b.Token, actor)): state.Read | state.Write,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*BurnToken) StateKeysMaxChunks() []uint16 {
	return []uint16{storage.TokenInfoChunks, storage.TokenAccountBalanceChunks}
}

// ValidRange implements chain.Action.
func (*BurnToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*BurnTokenResult)(nil)

type BurnTokenResult struct{}

func (*BurnTokenResult) GetTypeID() uint8 {
	return consts.BurnTokenID
}
