// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package market

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqrt(t *testing.T) {
	require := require.New(t)

	require.Equal(uint64(0), Sqrt(0))
	require.Equal(uint64(1), Sqrt(1))
	require.Equal(uint64(1), Sqrt(3))
	require.Equal(uint64(2), Sqrt(4))
	require.Equal(uint64(3), Sqrt(10))
	require.Equal(uint64(1_000), Sqrt(1_000_000))
	require.Equal(uint64(2_000_000), Sqrt(4_000_000_000_000))
	// Non-perfect squares floor
	require.Equal(uint64(1_414), Sqrt(2_000_000))
	require.Equal(uint64(4_294_967_295), Sqrt(uint64(18_446_744_073_709_551_615)))
}
