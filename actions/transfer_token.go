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

var _ chain.Action = (*TransferToken)(nil)

type TransferToken struct {
	To    codec.Address `serialize:"true" json:"to"`
	Token codec.Address `serialize:"true" json:"token"`
	Value uint64        `serialize:"true" json:"value"`
}

// ComputeUnits implements chain.Action.
func (*TransferToken) ComputeUnits(chain.Rules) uint64 {
	return TransferTokenComputeUnits
}

// Execute implements chain.Action.
func (t *TransferToken) Execute(ctx context.Context, _ chain.Rules, mu state.Mutable, _ int64, actor codec.Address, _ ids.ID) (codec.Typed, error) {
	if t.Value == 0 {
		return nil, ErrOutputValueZero
	}
	if !storage.TokenExists(ctx, mu, t.Token) {
		return nil, ErrOutputTokenDoesNotExist
	}
	if err := storage.TransferToken(ctx, mu, t.Token, actor, t.To, t.Value); err != nil {
		return nil, err
	}
	return &TransferTokenResult{}, nil
}

// GetTypeID implements chain.Action.
func (*TransferToken) GetTypeID() uint8 {
	return consts.TransferTokenID
}

// StateKeys implements chain.Action.
func (t *TransferToken) StateKeys(actor codec.Address, _ ids.ID) state.Keys {
	return state.Keys{
		string(storage.TokenInfoKey(t.Token)):                  state.Read,
		string(storage.TokenAccountBalanceKey(t.Token, actor)): state.Read | state.Write,
		string(storage.TokenAccountBalanceKey(t.Token, t.To)):  state.All,
	}
}

// StateKeysMaxChunks implements chain.Action.
func (*TransferToken) StateKeysMaxChunks() []uint16 {
	return []uint16{
		storage.TokenInfoChunks,
		storage.TokenAccountBalanceChunks,
		storage.TokenAccountBalanceChunks,
	}
}

// ValidRange implements chain.Action.
func (*TransferToken) ValidRange(chain.Rules) (int64, int64) {
	return -1, -1
}

var _ codec.Typed = (*TransferTokenResult)(nil)

type TransferTokenResult struct{}

func (*TransferTokenResult) GetTypeID() uint8 {
	return consts.TransferTokenID
}
