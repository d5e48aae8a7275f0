// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

// TypeIDs for actions
const (
	// Token-related
	CreateTokenID uint8 = iota
	MintTokenID
	BurnTokenID
	TransferTokenID

	// Market-related
	MintLiquidityID
	BurnLiquidityID
	SwapID
)

// TypeIDs for auth and address generation
const (
	// Required
	ED25519ID uint8 = iota
	SECP256R1ID
	BLSID

	// Relating to MarketVM address generation
	TOKENID
	LPTOKENID
	VAULTID
)

const (
	Name   = "marketvm"
	HRP    = "market"
	Symbol = "MKT"
)

var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
