// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"

	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"

	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/state"
	"github.com/ava-labs/hypersdk/utils"

	hconsts "github.com/ava-labs/hypersdk/consts"

	"github.com/subswap-labs/marketvm/consts"
)

type ComparisonValue int

const (
	LessThan ComparisonValue = iota - 1
	Equal
	GreaterThan
)

const priceCumulativeLen = 32

func CompareAddress(a codec.Address, b codec.Address) ComparisonValue {
	for i := range a {
		if a[i] < b[i] {
			return LessThan
		} else if a[i] > b[i] {
			return GreaterThan
		}
	}
	return Equal
}

// SortAddresses returns [a] and [b] in canonical (lo, hi) order.
func SortAddresses(a codec.Address, b codec.Address) (codec.Address, codec.Address) {
	if CompareAddress(a, b) == GreaterThan {
		return b, a
	}
	return a, b
}

// LPTokenAddress derives the pool-share token address for a pair. Ordering of
// [tokenX], [tokenY] is handled during address generation, so both argument
// orders yield the same address.
func LPTokenAddress(tokenX codec.Address, tokenY codec.Address) (codec.Address, error) {
	if CompareAddress(tokenX, tokenY) == Equal {
		return codec.EmptyAddress, ErrIdenticalAddresses
	}
	lo, hi := SortAddresses(tokenX, tokenY)
	v := make([]byte, codec.AddressLen+codec.AddressLen)
	copy(v, lo[:])
	copy(v[codec.AddressLen:], hi[:])
	id := utils.ToID(v)
	return codec.CreateAddress(consts.LPTOKENID, id), nil
}

func PairKey(tokenX codec.Address, tokenY codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+codec.AddressLen+hconsts.Uint16Len)
	k[0] = pairPrefix
	copy(k[1:], tokenX[:])
	copy(k[1+codec.AddressLen:], tokenY[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen+codec.AddressLen:], PairChunks)
	return k
}

// SetPair registers [lpToken] under both key orderings so that lookups
// succeed regardless of argument order. Must only be called on pool creation.
func SetPair(
	ctx context.Context,
	mu state.Mutable,
	tokenX codec.Address,
	tokenY codec.Address,
	lpToken codec.Address,
) error {
	if err := mu.Insert(ctx, PairKey(tokenX, tokenY), lpToken[:]); err != nil {
		return err
	}
	return mu.Insert(ctx, PairKey(tokenY, tokenX), lpToken[:])
}

// GetPair returns the pool-share token for (tokenX, tokenY). Returns
// database.ErrNotFound if the pair was never registered.
func GetPair(
	ctx context.Context,
	mu state.Immutable,
	tokenX codec.Address,
	tokenY codec.Address,
) (codec.Address, error) {
	v, err := mu.GetValue(ctx, PairKey(tokenX, tokenY))
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.Address(v), nil
}

// Used to serve RPC queries
func GetPairFromState(
	ctx context.Context,
	f ReadState,
	tokenX codec.Address,
	tokenY codec.Address,
) (codec.Address, error) {
	values, errs := f(ctx, [][]byte{PairKey(tokenX, tokenY)})
	if errs[0] != nil {
		return codec.EmptyAddress, errs[0]
	}
	return codec.Address(values[0]), nil
}

func PoolTokensKey(lpToken codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = poolTokensPrefix
	copy(k[1:], lpToken[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], PoolTokensChunks)
	return k
}

func SetPoolTokens(
	ctx context.Context,
	mu state.Mutable,
	lpToken codec.Address,
	tokenLo codec.Address,
	tokenHi codec.Address,
) error {
	v := make([]byte, codec.AddressLen+codec.AddressLen)
	copy(v, tokenLo[:])
	copy(v[codec.AddressLen:], tokenHi[:])
	return mu.Insert(ctx, PoolTokensKey(lpToken), v)
}

// GetPoolTokens returns the pooled assets of [lpToken] in canonical order.
func GetPoolTokens(
	ctx context.Context,
	mu state.Immutable,
	lpToken codec.Address,
) (codec.Address, codec.Address, error) {
	v, err := mu.GetValue(ctx, PoolTokensKey(lpToken))
	if err != nil {
		return codec.EmptyAddress, codec.EmptyAddress, err
	}
	return codec.Address(v[:codec.AddressLen]), codec.Address(v[codec.AddressLen:]), nil
}

// Used to serve RPC queries
func GetPoolTokensFromState(
	ctx context.Context,
	f ReadState,
	lpToken codec.Address,
) (codec.Address, codec.Address, error) {
	values, errs := f(ctx, [][]byte{PoolTokensKey(lpToken)})
	if errs[0] != nil {
		return codec.EmptyAddress, codec.EmptyAddress, errs[0]
	}
	v := values[0]
	return codec.Address(v[:codec.AddressLen]), codec.Address(v[codec.AddressLen:]), nil
}

func ReservesKey(lpToken codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = reservesPrefix
	copy(k[1:], lpToken[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], ReservesChunks)
	return k
}

// SetReserves persists the reserves of [lpToken]. Amounts are supplied in the
// order corresponding to [tokenX], [tokenY] and are transposed here if
// tokenX > tokenY, so what is persisted is always (reserveLo, reserveHi).
func SetReserves(
	ctx context.Context,
	mu state.Mutable,
	tokenX codec.Address,
	tokenY codec.Address,
	amountX uint64,
	amountY uint64,
	lpToken codec.Address,
) error {
	if CompareAddress(tokenX, tokenY) == GreaterThan {
		amountX, amountY = amountY, amountX
	}
	v := make([]byte, hconsts.Uint64Len+hconsts.Uint64Len)
	binary.BigEndian.PutUint64(v, amountX)
	binary.BigEndian.PutUint64(v[hconsts.Uint64Len:], amountY)
	return mu.Insert(ctx, ReservesKey(lpToken), v)
}

// GetReserves returns the reserves of [lpToken] in canonical (lo, hi) order,
// or (0, 0) if the pool has never been written.
func GetReserves(
	ctx context.Context,
	mu state.Immutable,
	lpToken codec.Address,
) (uint64, uint64, error) {
	v, err := mu.GetValue(ctx, ReservesKey(lpToken))
	if err == database.ErrNotFound {
		return 0, 0, nil
	}
	if err != nil {
		return 0, 0, err
	}
	return binary.BigEndian.Uint64(v), binary.BigEndian.Uint64(v[hconsts.Uint64Len:]), nil
}

// Used to serve RPC queries
func GetReservesFromState(
	ctx context.Context,
	f ReadState,
	lpToken codec.Address,
) (uint64, uint64, error) {
	values, errs := f(ctx, [][]byte{ReservesKey(lpToken)})
	if errs[0] == database.ErrNotFound {
		return 0, 0, nil
	}
	if errs[0] != nil {
		return 0, 0, errs[0]
	}
	v := values[0]
	return binary.BigEndian.Uint64(v), binary.BigEndian.Uint64(v[hconsts.Uint64Len:]), nil
}

func PriceCumulativeKey(lpToken codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = priceCumulativePrefix
	copy(k[1:], lpToken[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], PriceCumulativeChunks)
	return k
}

func SetPriceCumulative(
	ctx context.Context,
	mu state.Mutable,
	lpToken codec.Address,
	price0 *uint256.Int,
	price1 *uint256.Int,
) error {
	v := make([]byte, 2*priceCumulativeLen)
	b0 := price0.Bytes32()
	b1 := price1.Bytes32()
	copy(v, b0[:])
	copy(v[priceCumulativeLen:], b1[:])
	return mu.Insert(ctx, PriceCumulativeKey(lpToken), v)
}

// GetPriceCumulative returns the cumulative price accumulators of [lpToken],
// or zero values if the pool has never been synced.
func GetPriceCumulative(
	ctx context.Context,
	mu state.Immutable,
	lpToken codec.Address,
) (*uint256.Int, *uint256.Int, error) {
	v, err := mu.GetValue(ctx, PriceCumulativeKey(lpToken))
	if err == database.ErrNotFound {
		return new(uint256.Int), new(uint256.Int), nil
	}
	if err != nil {
		return nil, nil, err
	}
	return innerGetPriceCumulative(v)
}

// Used to serve RPC queries
func GetPriceCumulativeFromState(
	ctx context.Context,
	f ReadState,
	lpToken codec.Address,
) (*uint256.Int, *uint256.Int, error) {
	values, errs := f(ctx, [][]byte{PriceCumulativeKey(lpToken)})
	if errs[0] == database.ErrNotFound {
		return new(uint256.Int), new(uint256.Int), nil
	}
	if errs[0] != nil {
		return nil, nil, errs[0]
	}
	return innerGetPriceCumulative(values[0])
}

func innerGetPriceCumulative(v []byte) (*uint256.Int, *uint256.Int, error) {
	price0 := new(uint256.Int).SetBytes(v[:priceCumulativeLen])
	price1 := new(uint256.Int).SetBytes(v[priceCumulativeLen:])
	return price0, price1, nil
}

func LastSyncKey(lpToken codec.Address) []byte {
	k := make([]byte, 1+codec.AddressLen+hconsts.Uint16Len)
	k[0] = lastSyncPrefix
	copy(k[1:], lpToken[:])
	binary.BigEndian.PutUint16(k[1+codec.AddressLen:], LastSyncChunks)
	return k
}

func SetLastSync(
	ctx context.Context,
	mu state.Mutable,
	lpToken codec.Address,
	t uint64,
) error {
	v := make([]byte, hconsts.Uint64Len)
	binary.BigEndian.PutUint64(v, t)
	return mu.Insert(ctx, LastSyncKey(lpToken), v)
}

// GetLastSync returns the wrapped block time of the most recent oracle update
// applied to [lpToken], or 0 if the pool has never been synced.
func GetLastSync(
	ctx context.Context,
	mu state.Immutable,
	lpToken codec.Address,
) (uint64, error) {
	v, err := mu.GetValue(ctx, LastSyncKey(lpToken))
	if err == database.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(v), nil
}

// Used to serve RPC queries
func GetLastSyncFromState(
	ctx context.Context,
	f ReadState,
	lpToken codec.Address,
) (uint64, error) {
	values, errs := f(ctx, [][]byte{LastSyncKey(lpToken)})
	if errs[0] == database.ErrNotFound {
		return 0, nil
	}
	if errs[0] != nil {
		return 0, errs[0]
	}
	return binary.BigEndian.Uint64(values[0]), nil
}

// PairExists reports whether a pool is registered for (tokenX, tokenY).
func PairExists(
	ctx context.Context,
	mu state.Immutable,
	tokenX codec.Address,
	tokenY codec.Address,
) bool {
	v, err := mu.GetValue(ctx, PairKey(tokenX, tokenY))
	return v != nil && err == nil
}
