// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package market

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestPriceDeltas(t *testing.T) {
	require := require.New(t)

	// One second at a 4:1 price
	deltaLo, deltaHi := PriceDeltas(1_000_000, 4_000_000, 1)
	require.Equal(uint256.MustFromDecimal("4000000000000000000"), deltaLo)
	require.Equal(uint256.MustFromDecimal("250000000000000000"), deltaHi)

	// Deltas scale linearly with elapsed time
	deltaLo, deltaHi = PriceDeltas(1_000_000, 4_000_000, 60)
	require.Equal(uint256.MustFromDecimal("240000000000000000000"), deltaLo)
	require.Equal(uint256.MustFromDecimal("15000000000000000000"), deltaHi)

	// A balanced pool prices both tokens at one
	deltaLo, deltaHi = PriceDeltas(5_000, 5_000, 1)
	require.Equal(PriceScale, deltaLo)
	require.Equal(PriceScale, deltaHi)
}

func TestAccumulate(t *testing.T) {
	require := require.New(t)

	acc := new(uint256.Int)
	Accumulate(acc, uint256.NewInt(100))
	Accumulate(acc, uint256.NewInt(23))
	require.Equal(uint256.NewInt(123), acc)

	// Saturates instead of wrapping
	acc = new(uint256.Int).SetAllOne()
	acc.SubUint64(acc, 1)
	Accumulate(acc, uint256.NewInt(2))
	require.Equal(new(uint256.Int).SetAllOne(), acc)
}
