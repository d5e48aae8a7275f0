// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	// Token-related
	ErrOutputTokenNameEmpty        = errors.New("token name is empty")
	ErrOutputTokenSymbolEmpty      = errors.New("token symbol is empty")
	ErrOutputTokenMetadataEmpty    = errors.New("token metadata is empty")
	ErrOutputTokenNameTooLarge     = errors.New("token name is too large")
	ErrOutputTokenSymbolTooLarge   = errors.New("token symbol is too large")
	ErrOutputTokenMetadataTooLarge = errors.New("token metadata is too large")
	ErrOutputTokenAlreadyExists    = errors.New("token already exists")
	ErrOutputTokenDoesNotExist     = errors.New("token does not exist")
	ErrOutputTokenNotOwner         = errors.New("actor is not the token owner")
	ErrOutputValueZero             = errors.New("value is zero")

	// Market-related
	ErrOutputIdenticalTokens    = errors.New("tokens are identical")
	ErrOutputInvalidPair        = errors.New("pair does not exist")
	ErrOutputInsufficientAmount = errors.New("amount is insufficient")
)
