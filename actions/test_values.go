// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/hypersdk/codec"

	"github.com/subswap-labs/marketvm/storage"
)

const (
	TokenOneName     = "LuigiCoin"
	TokenOneSymbol   = "LC"
	TokenOneMetadata = "A coin that represents Luigi" // #nosec G101

	TokenTwoName     = "Martin"
	TokenTwoSymbol   = "MC"
	TokenTwoMetadata = "A coin that represents Martin" // #nosec G101

	TooLargeTokenName     = "Lorem ipsum dolor sit amet, consectetur adipiscing elit pharetra." // #nosec G101
	TooLargeTokenSymbol   = "AAAAAAAAA"
	TooLargeTokenMetadata = "Lorem ipsum dolor sit amet, consectetur adipiscing elit. Etiam gravida mauris vitae tortor vehicula dictum. Maecenas rhoncus magna sed justo euismod, eu cursus nunc dapibus. Nunc vestibulum metus sit amet eros pellentesque blandit non at lacus. Ut at donec." // #nosec G101

	InitialDepositLo = 1_000_000
	InitialDepositHi = 4_000_000
	InitialSwapValue = 1_000
)

var (
	tokenOneAddress = storage.TokenAddress([]byte(TokenOneName), []byte(TokenOneSymbol), []byte(TokenOneMetadata))
	tokenTwoAddress = storage.TokenAddress([]byte(TokenTwoName), []byte(TokenTwoSymbol), []byte(TokenTwoMetadata))
)

func createAddressWithSameDigits(num uint8) codec.Address {
	var addr codec.Address
	for i := range addr {
		addr[i] = num
	}
	return addr
}
