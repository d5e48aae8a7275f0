// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrIdenticalAddresses = errors.New("token addresses are identical")
	ErrInvalidBalance     = errors.New("invalid balance")
)
