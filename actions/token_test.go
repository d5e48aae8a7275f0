// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/state"

	"github.com/subswap-labs/marketvm/chaintest"
	"github.com/subswap-labs/marketvm/storage"
)

func TestCreateToken(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	actor := createAddressWithSameDigits(1)

	tests := []chaintest.ActionTest{
		{
			Name: "name cannot be empty",
			Action: &CreateToken{
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenNameEmpty,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "symbol cannot be empty",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenSymbolEmpty,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "metadata cannot be empty",
			Action: &CreateToken{
				Name:   []byte(TokenOneName),
				Symbol: []byte(TokenOneSymbol),
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenMetadataEmpty,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "name cannot be too large",
			Action: &CreateToken{
				Name:     []byte(TooLargeTokenName),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenNameTooLarge,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "symbol cannot be too large",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte(TooLargeTokenSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenSymbolTooLarge,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "metadata cannot be too large",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TooLargeTokenMetadata),
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenMetadataTooLarge,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "valid token is created",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedOutputs: &CreateTokenResult{TokenAddress: tokenOneAddress},
			ExpectedErr:     nil,
			State:           store,
			Actor:           actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				name, symbol, metadata, supply, owner, err := storage.GetTokenInfoNoController(ctx, mu, tokenOneAddress)
				require.NoError(err)
				require.Equal(TokenOneName, string(name))
				require.Equal(TokenOneSymbol, string(symbol))
				require.Equal(TokenOneMetadata, string(metadata))
				require.Zero(supply)
				require.Equal(actor, owner)
			},
		},
		{
			Name: "duplicate tokens are rejected",
			Action: &CreateToken{
				Name:     []byte(TokenOneName),
				Symbol:   []byte(TokenOneSymbol),
				Metadata: []byte(TokenOneMetadata),
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenAlreadyExists,
			State:           store,
			Actor:           actor,
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestMintToken(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	owner := createAddressWithSameDigits(1)
	stranger := createAddressWithSameDigits(2)

	_, err := (&CreateToken{
		Name:     []byte(TokenOneName),
		Symbol:   []byte(TokenOneSymbol),
		Metadata: []byte(TokenOneMetadata),
	}).Execute(ctx, nil, store, 0, owner, ids.Empty)
	require.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "value must be nonzero",
			Action: &MintToken{
				To:    owner,
				Token: tokenOneAddress,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputValueZero,
			State:           store,
			Actor:           owner,
		},
		{
			Name: "token must exist",
			Action: &MintToken{
				To:    owner,
				Value: 1,
				Token: tokenTwoAddress,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenDoesNotExist,
			State:           store,
			Actor:           owner,
		},
		{
			Name: "only the owner can mint",
			Action: &MintToken{
				To:    stranger,
				Value: 1,
				Token: tokenOneAddress,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenNotOwner,
			State:           store,
			Actor:           stranger,
		},
		{
			Name: "owner mints to any account",
			Action: &MintToken{
				To:    stranger,
				Value: 5_000,
				Token: tokenOneAddress,
			},
			ExpectedOutputs: &MintTokenResult{},
			ExpectedErr:     nil,
			State:           store,
			Actor:           owner,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenOneAddress, stranger)
				require.NoError(err)
				require.Equal(uint64(5_000), balance)
				supply, err := storage.TotalSupply(ctx, mu, tokenOneAddress)
				require.NoError(err)
				require.Equal(uint64(5_000), supply)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestBurnToken(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	actor := createAddressWithSameDigits(1)

	_, err := (&CreateToken{
		Name:     []byte(TokenOneName),
		Symbol:   []byte(TokenOneSymbol),
		Metadata: []byte(TokenOneMetadata),
	}).Execute(ctx, nil, store, 0, actor, ids.Empty)
	require.NoError(err)
	_, err = (&MintToken{
		To:    actor,
		Value: 5_000,
		Token: tokenOneAddress,
	}).Execute(ctx, nil, store, 0, actor, ids.Empty)
	require.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "value must be nonzero",
			Action: &BurnToken{
				Token: tokenOneAddress,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputValueZero,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "token must exist",
			Action: &BurnToken{
				Token: tokenTwoAddress,
				Value: 1,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenDoesNotExist,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "burn reduces balance and supply",
			Action: &BurnToken{
				Token: tokenOneAddress,
				Value: 2_000,
			},
			ExpectedOutputs: &BurnTokenResult{},
			ExpectedErr:     nil,
			State:           store,
			Actor:           actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				balance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenOneAddress, actor)
				require.NoError(err)
				require.Equal(uint64(3_000), balance)
				supply, err := storage.TotalSupply(ctx, mu, tokenOneAddress)
				require.NoError(err)
				require.Equal(uint64(3_000), supply)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestTransferToken(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	actor := createAddressWithSameDigits(1)
	recipient := createAddressWithSameDigits(2)

	_, err := (&CreateToken{
		Name:     []byte(TokenOneName),
		Symbol:   []byte(TokenOneSymbol),
		Metadata: []byte(TokenOneMetadata),
	}).Execute(ctx, nil, store, 0, actor, ids.Empty)
	require.NoError(err)
	_, err = (&MintToken{
		To:    actor,
		Value: 5_000,
		Token: tokenOneAddress,
	}).Execute(ctx, nil, store, 0, actor, ids.Empty)
	require.NoError(err)

	tests := []chaintest.ActionTest{
		{
			Name: "value must be nonzero",
			Action: &TransferToken{
				To:    recipient,
				Token: tokenOneAddress,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputValueZero,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "token must exist",
			Action: &TransferToken{
				To:    recipient,
				Token: tokenTwoAddress,
				Value: 1,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenDoesNotExist,
			State:           store,
			Actor:           actor,
		},
		{
			Name: "transfer moves balance",
			Action: &TransferToken{
				To:    recipient,
				Token: tokenOneAddress,
				Value: 2_000,
			},
			ExpectedOutputs: &TransferTokenResult{},
			ExpectedErr:     nil,
			State:           store,
			Actor:           actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				senderBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenOneAddress, actor)
				require.NoError(err)
				require.Equal(uint64(3_000), senderBalance)
				recipientBalance, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenOneAddress, recipient)
				require.NoError(err)
				require.Equal(uint64(2_000), recipientBalance)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
