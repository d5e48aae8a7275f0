// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/utils"

	"github.com/subswap-labs/marketvm/consts"
)

// Key prefixes
const (
	// Required for StateManager
	heightPrefix byte = iota
	timestampPrefix
	feePrefix

	// Required for MarketVM
	tokenInfoPrefix
	tokenAccountBalancePrefix
	pairPrefix
	poolTokensPrefix
	reservesPrefix
	priceCumulativePrefix
	lastSyncPrefix
)

// Chunks
const (
	TokenInfoChunks           uint16 = 2
	TokenAccountBalanceChunks uint16 = 1
	PairChunks                uint16 = 1
	PoolTokensChunks          uint16 = 1
	ReservesChunks            uint16 = 1
	PriceCumulativeChunks     uint16 = 1
	LastSyncChunks            uint16 = 1
)

// Related to token action invariants
const (
	MaxTokenNameSize     = 64
	MaxTokenSymbolSize   = 8
	MaxTokenMetadataSize = 256
)

// All LP tokens share the following data
const (
	LPTokenName     = "Market-Pair" // #nosec G101
	LPTokenSymbol   = "MKTP"
	LPTokenMetadata = "A marketvm liquidity pair"
)

// Data for the MarketVM native coin
const (
	Symbol   = "MKT"
	Metadata = "The marketvm fee coin"
)

var (
	heightKey    = []byte{heightPrefix}
	timestampKey = []byte{timestampPrefix}
	feeKey       = []byte{feePrefix}

	// CoinAddress is the native coin used for transaction fees.
	CoinAddress codec.Address

	// VaultAddress is the system account holding every pool's reserves.
	VaultAddress codec.Address
)

func init() {
	CoinAddress = TokenAddress([]byte(consts.Name), []byte(Symbol), []byte(Metadata))
	VaultAddress = codec.CreateAddress(consts.VAULTID, utils.ToID([]byte(consts.Name+"-vault")))
}

func HeightKey() []byte {
	return heightKey
}

func TimestampKey() []byte {
	return timestampKey
}

func FeeKey() []byte {
	return feeKey
}
