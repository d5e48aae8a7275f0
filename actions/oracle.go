// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"

	"github.com/subswap-labs/marketvm/market"
	"github.com/subswap-labs/marketvm/storage"
)

// updatePriceCumulative folds the time elapsed since the pool's last sync into
// its cumulative price accumulators. It must be called with the reserves as
// they stood BEFORE the current action mutates them, so that the accumulators
// weight each marginal price by how long it was in effect.
//
// The sync is a no-op when no time has passed, when the wrapped clock moved
// backwards across the modulus boundary, or when either reserve is zero.
func updatePriceCumulative(
	ctx context.Context,
	mu state.Mutable,
	lpToken codec.Address,
	timestamp int64,
) error {
	now := uint64(timestamp) % market.TimeModulus
	last, err := storage.GetLastSync(ctx, mu, lpToken)
	if err != nil {
		return err
	}
	if now <= last {
		return nil
	}
	reserveLo, reserveHi, err := storage.GetReserves(ctx, mu, lpToken)
	if err != nil {
		return err
	}
	if reserveLo == 0 || reserveHi == 0 {
		return nil
	}
	price0, price1, err := storage.GetPriceCumulative(ctx, mu, lpToken)
	if err != nil {
		return err
	}
	deltaLo, deltaHi := market.PriceDeltas(reserveLo, reserveHi, now-last)
	market.Accumulate(price0, deltaLo)
	market.Accumulate(price1, deltaHi)
	if err := storage.SetPriceCumulative(ctx, mu, lpToken, price0, price1); err != nil {
		return err
	}
	return storage.SetLastSync(ctx, mu, lpToken, now)
}
