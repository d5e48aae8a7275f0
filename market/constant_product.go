// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package market implements the constant-product pricing kernel shared by the
// liquidity and swap actions. All functions are pure; persisting the resulting
// reserves and supplies is up to the caller.
package market

import (
	smath "github.com/ava-labs/avalanchego/utils/math"
)

const (
	// MinimumLiquidity is locked forever on pool creation to prevent the
	// pool from ever being fully drained.
	MinimumLiquidity uint64 = 1_000

	// A 0.3% fee is levied on every swap, paid in the input token.
	FeeNumerator   uint64 = 997
	FeeDenominator uint64 = 1_000
)

// FirstMintLiquidity computes the share grant for the deposit that creates a
// pool. The geometric mean of the deposit amounts is split between the actor
// and the permanently locked [MinimumLiquidity].
func FirstMintLiquidity(amountLo uint64, amountHi uint64) (uint64, error) {
	k, err := smath.Mul(amountLo, amountHi)
	if err != nil {
		return 0, err
	}
	liquidity, err := smath.Sub(Sqrt(k), MinimumLiquidity)
	if err != nil {
		return 0, ErrInsufficientLiquidityMinted
	}
	if liquidity == 0 {
		return 0, ErrInsufficientLiquidityMinted
	}
	return liquidity, nil
}

// MintLiquidity computes the share grant for a deposit into an existing pool.
// Taking the minimum of the two pro-rata ratios penalizes unbalanced deposits
// instead of letting them move the price.
func MintLiquidity(
	amountLo uint64,
	amountHi uint64,
	reserveLo uint64,
	reserveHi uint64,
	lpTokenSupply uint64,
) (uint64, error) {
	loChange, err := smath.Mul(amountLo, lpTokenSupply)
	if err != nil {
		return 0, err
	}
	loChange /= reserveLo
	hiChange, err := smath.Mul(amountHi, lpTokenSupply)
	if err != nil {
		return 0, err
	}
	hiChange /= reserveHi
	liquidity := min(loChange, hiChange)
	if liquidity == 0 {
		return 0, ErrInsufficientLiquidityMinted
	}
	return liquidity, nil
}

// BurnLiquidity computes the pro-rata payout for redeeming [tokensToBurn]
// shares against the current reserves.
func BurnLiquidity(
	tokensToBurn uint64,
	reserveLo uint64,
	reserveHi uint64,
	lpTokenSupply uint64,
) (uint64, uint64, error) {
	outputLo, err := smath.Mul(reserveLo, tokensToBurn)
	if err != nil {
		return 0, 0, err
	}
	outputLo /= lpTokenSupply
	outputHi, err := smath.Mul(reserveHi, tokensToBurn)
	if err != nil {
		return 0, 0, err
	}
	outputHi /= lpTokenSupply
	if outputLo == 0 || outputHi == 0 {
		return 0, 0, ErrInsufficientLiquidityBurned
	}
	return outputLo, outputHi, nil
}

// GetAmountOut computes the swap output for [amountIn] against the given
// reserves, with the fee applied to the input side. Division floors, so any
// rounding favors the pool and k never decreases.
func GetAmountOut(amountIn uint64, reserveIn uint64, reserveOut uint64) (uint64, error) {
	if reserveIn == 0 || reserveOut == 0 {
		return 0, ErrInsufficientLiquidity
	}
	amountInWithFee, err := smath.Mul(amountIn, FeeNumerator)
	if err != nil {
		return 0, err
	}
	numerator, err := smath.Mul(amountInWithFee, reserveOut)
	if err != nil {
		return 0, err
	}
	scaledReserveIn, err := smath.Mul(reserveIn, FeeDenominator)
	if err != nil {
		return 0, err
	}
	denominator, err := smath.Add(scaledReserveIn, amountInWithFee)
	if err != nil {
		return 0, err
	}
	amountOut := numerator / denominator
	if amountOut == 0 {
		return 0, ErrInsufficientOutputAmount
	}
	if amountOut >= reserveOut {
		return 0, ErrInsufficientLiquidity
	}
	return amountOut, nil
}
