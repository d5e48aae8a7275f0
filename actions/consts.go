// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

const (
	CreateTokenComputeUnits   = 1
	MintTokenComputeUnits     = 1
	BurnTokenComputeUnits     = 1
	TransferTokenComputeUnits = 1

	MintLiquidityComputeUnits = 5
	BurnLiquidityComputeUnits = 5
	SwapComputeUnits          = 5
)
