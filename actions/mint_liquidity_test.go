// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/hypersdk/chain"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/subswap-labs/marketvm/chaintest"
	"github.com/subswap-labs/marketvm/market"
	"github.com/subswap-labs/marketvm/storage"
)

func TestMintLiquidityCreatesPool(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	actor := createAddressWithSameDigits(1)

	tokenLo, tokenHi := storage.SortAddresses(tokenOneAddress, tokenTwoAddress)
	lpToken, err := storage.LPTokenAddress(tokenLo, tokenHi)
	require.NoError(err)

	setupActions := []chain.Action{
		&CreateToken{
			Name:     []byte(TokenOneName),
			Symbol:   []byte(TokenOneSymbol),
			Metadata: []byte(TokenOneMetadata),
		},
		&CreateToken{
			Name:     []byte(TokenTwoName),
			Symbol:   []byte(TokenTwoSymbol),
			Metadata: []byte(TokenTwoMetadata),
		},
		&MintToken{
			To:    actor,
			Value: InitialDepositLo,
			Token: tokenLo,
		},
		&MintToken{
			To:    actor,
			Value: InitialDepositHi,
			Token: tokenHi,
		},
	}
	for _, action := range setupActions {
		_, err := action.Execute(ctx, nil, store, 0, actor, ids.Empty)
		require.NoError(err)
	}

	tests := []chaintest.ActionTest{
		{
			Name: "tokens must differ",
			Action: &MintLiquidity{
				Token0:  tokenLo,
				Amount0: InitialDepositLo,
				Token1:  tokenLo,
				Amount1: InitialDepositHi,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputIdenticalTokens,
			State:           store,
		},
		{
			Name: "tokens must exist",
			Action: &MintLiquidity{
				Token0:  tokenLo,
				Amount0: InitialDepositLo,
				Token1:  storage.CoinAddress,
				Amount1: InitialDepositHi,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     ErrOutputTokenDoesNotExist,
			State:           store,
		},
		{
			Name: "deposit must cover the locked minimum",
			Action: &MintLiquidity{
				Token0:  tokenLo,
				Amount0: 10,
				Token1:  tokenHi,
				Amount1: 10,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     market.ErrInsufficientLiquidityMinted,
			State:           store,
		},
		{
			Name: "first deposit creates the pool",
			Action: &MintLiquidity{
				Token0:  tokenLo,
				Amount0: InitialDepositLo,
				Token1:  tokenHi,
				Amount1: InitialDepositHi,
			},
			ExpectedOutputs: &MintLiquidityResult{
				PoolCreated: true,
				LPToken:     lpToken,
				Liquidity:   1_999_000,
			},
			ExpectedErr: nil,
			State:       store,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				supply, err := storage.TotalSupply(ctx, mu, lpToken)
				require.NoError(err)
				require.Equal(uint64(2_000_000), supply)

				locked, err := storage.GetTokenAccountBalanceNoController(ctx, mu, lpToken, codec.EmptyAddress)
				require.NoError(err)
				require.Equal(market.MinimumLiquidity, locked)

				reserveLo, reserveHi, err := storage.GetReserves(ctx, mu, lpToken)
				require.NoError(err)
				require.Equal(uint64(InitialDepositLo), reserveLo)
				require.Equal(uint64(InitialDepositHi), reserveHi)

				vaultLo, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenLo, storage.VaultAddress)
				require.NoError(err)
				require.Equal(uint64(InitialDepositLo), vaultLo)
				vaultHi, err := storage.GetTokenAccountBalanceNoController(ctx, mu, tokenHi, storage.VaultAddress)
				require.NoError(err)
				require.Equal(uint64(InitialDepositHi), vaultHi)

				pair, err := storage.GetPair(ctx, mu, tokenHi, tokenLo)
				require.NoError(err)
				require.Equal(lpToken, pair)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}

func TestMintLiquidityExistingPool(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	store := chaintest.NewInMemoryStore()

	actor := createAddressWithSameDigits(1)

	tokenLo, tokenHi := storage.SortAddresses(tokenOneAddress, tokenTwoAddress)
	lpToken, err := storage.LPTokenAddress(tokenLo, tokenHi)
	require.NoError(err)

	setupActions := []chain.Action{
		&CreateToken{
			Name:     []byte(TokenOneName),
			Symbol:   []byte(TokenOneSymbol),
			Metadata: []byte(TokenOneMetadata),
		},
		&CreateToken{
			Name:     []byte(TokenTwoName),
			Symbol:   []byte(TokenTwoSymbol),
			Metadata: []byte(TokenTwoMetadata),
		},
		&MintToken{
			To:    actor,
			Value: InitialDepositLo + 500_000,
			Token: tokenLo,
		},
		&MintToken{
			To:    actor,
			Value: InitialDepositHi + 2_000_000,
			Token: tokenHi,
		},
		&MintLiquidity{
			Token0:  tokenLo,
			Amount0: InitialDepositLo,
			Token1:  tokenHi,
			Amount1: InitialDepositHi,
		},
	}
	for _, action := range setupActions {
		_, err := action.Execute(ctx, nil, store, 0, actor, ids.Empty)
		require.NoError(err)
	}

	tests := []chaintest.ActionTest{
		{
			Name: "deposit too small to mint a share",
			Action: &MintLiquidity{
				Token0:  tokenLo,
				Amount0: 1,
				Token1:  tokenHi,
				Amount1: 1,
			},
			ExpectedOutputs: nil,
			ExpectedErr:     market.ErrInsufficientLiquidityMinted,
			State:           store,
		},
		{
			// Passing the tokens in reversed order must not transpose the
			// deposit.
			Name: "second deposit is pro rata",
			Action: &MintLiquidity{
				Token0:  tokenHi,
				Amount0: 2_000_000,
				Token1:  tokenLo,
				Amount1: 500_000,
			},
			ExpectedOutputs: &MintLiquidityResult{
				PoolCreated: false,
				LPToken:     lpToken,
				Liquidity:   1_000_000,
			},
			ExpectedErr: nil,
			State:       store,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				supply, err := storage.TotalSupply(ctx, mu, lpToken)
				require.NoError(err)
				require.Equal(uint64(3_000_000), supply)

				reserveLo, reserveHi, err := storage.GetReserves(ctx, mu, lpToken)
				require.NoError(err)
				require.Equal(uint64(1_500_000), reserveLo)
				require.Equal(uint64(6_000_000), reserveHi)

				actorShares, err := storage.GetTokenAccountBalanceNoController(ctx, mu, lpToken, actor)
				require.NoError(err)
				require.Equal(uint64(2_999_000), actorShares)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
