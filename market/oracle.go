// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package market

import (
	"github.com/holiman/uint256"
)

// TimeModulus wraps block timestamps for oracle bookkeeping. Accumulator
// consumers must observe the accumulators at least once per wrap interval.
const TimeModulus = uint64(1) << 32

// PriceScale is the fixed-point scale of the oracle accumulators.
var PriceScale = uint256.NewInt(1_000_000_000_000_000_000)

// PriceDeltas returns the time-weighted accumulator increments for one oracle
// sync: the marginal price of each pooled token in terms of the other, scaled
// by [PriceScale] and multiplied by [elapsed]. Both reserves must be nonzero.
// All arithmetic saturates rather than overflowing.
func PriceDeltas(reserveLo uint64, reserveHi uint64, elapsed uint64) (*uint256.Int, *uint256.Int) {
	rLo := uint256.NewInt(reserveLo)
	rHi := uint256.NewInt(reserveHi)
	e := uint256.NewInt(elapsed)

	deltaLo := scaledRatio(rHi, rLo)
	deltaHi := scaledRatio(rLo, rHi)
	saturatingMul(deltaLo, deltaLo, e)
	saturatingMul(deltaHi, deltaHi, e)
	return deltaLo, deltaHi
}

// Accumulate adds [delta] into [acc] in place, saturating at the maximum
// uint256 value.
func Accumulate(acc *uint256.Int, delta *uint256.Int) {
	if _, overflow := acc.AddOverflow(acc, delta); overflow {
		acc.SetAllOne()
	}
}

// scaledRatio returns num * PriceScale / denom, saturating.
func scaledRatio(num *uint256.Int, denom *uint256.Int) *uint256.Int {
	z := new(uint256.Int)
	saturatingMul(z, num, PriceScale)
	return z.Div(z, denom)
}

func saturatingMul(z *uint256.Int, x *uint256.Int, y *uint256.Int) {
	if _, overflow := z.MulOverflow(x, y); overflow {
		z.SetAllOne()
	}
}
