// Copyright (C) 2024, Subswap Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package vm

import (
	"net/http"

	"github.com/ava-labs/hypersdk/api"
	"github.com/ava-labs/hypersdk/codec"
	"github.com/ava-labs/hypersdk/genesis"

	"github.com/subswap-labs/marketvm/consts"
	"github.com/subswap-labs/marketvm/storage"
)

const JSONRPCEndpoint = "/marketapi"

var _ api.HandlerFactory[api.VM] = (*jsonRPCServerFactory)(nil)

type jsonRPCServerFactory struct{}

func (jsonRPCServerFactory) New(vm api.VM) (api.Handler, error) {
	handler, err := api.NewJSONRPCHandler(consts.Name, NewJSONRPCServer(vm))
	return api.Handler{
		Path:    JSONRPCEndpoint,
		Handler: handler,
	}, err
}

type JSONRPCServer struct {
	vm api.VM
}

func NewJSONRPCServer(vm api.VM) *JSONRPCServer {
	return &JSONRPCServer{vm: vm}
}

type GenesisReply struct {
	Genesis *genesis.DefaultGenesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) (err error) {
	reply.Genesis = j.vm.Genesis().(*genesis.DefaultGenesis)
	return nil
}

type GetTokenInfoArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
}

type GetTokenInfoReply struct {
	Name        string        `json:"name"`
	Symbol      string        `json:"symbol"`
	Metadata    string        `json:"metadata"`
	TotalSupply uint64        `json:"totalSupply"`
	Owner       codec.Address `json:"owner"`
}

func (j *JSONRPCServer) GetTokenInfo(req *http.Request, args *GetTokenInfoArgs, reply *GetTokenInfoReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetTokenInfo")
	defer span.End()

	name, symbol, metadata, totalSupply, owner, err := storage.GetTokenInfoFromState(ctx, j.vm.ReadState, args.TokenAddress)
	if err != nil {
		return err
	}
	reply.Name = string(name)
	reply.Symbol = string(symbol)
	reply.Metadata = string(metadata)
	reply.TotalSupply = totalSupply
	reply.Owner = owner
	return nil
}

type GetBalanceArgs struct {
	TokenAddress codec.Address `json:"tokenAddress"`
	Account      codec.Address `json:"account"`
}

type GetBalanceReply struct {
	Balance uint64 `json:"balance"`
}

func (j *JSONRPCServer) GetBalance(req *http.Request, args *GetBalanceArgs, reply *GetBalanceReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetBalance")
	defer span.End()

	balance, err := storage.GetTokenAccountBalanceFromState(ctx, j.vm.ReadState, args.TokenAddress, args.Account)
	if err != nil {
		return err
	}
	reply.Balance = balance
	return nil
}

type GetPoolArgs struct {
	Token0 codec.Address `json:"token0"`
	Token1 codec.Address `json:"token1"`
}

// GetPoolReply reports the pool of a pair in canonical token order.
type GetPoolReply struct {
	Token0   codec.Address `json:"token0"`
	Token1   codec.Address `json:"token1"`
	Reserve0 uint64        `json:"reserve0"`
	Reserve1 uint64        `json:"reserve1"`
	LPToken  codec.Address `json:"lpToken"`
	Supply   uint64        `json:"supply"`
}

func (j *JSONRPCServer) GetPool(req *http.Request, args *GetPoolArgs, reply *GetPoolReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetPool")
	defer span.End()

	lpToken, err := storage.GetPairFromState(ctx, j.vm.ReadState, args.Token0, args.Token1)
	if err != nil {
		return err
	}
	token0, token1, err := storage.GetPoolTokensFromState(ctx, j.vm.ReadState, lpToken)
	if err != nil {
		return err
	}
	reserve0, reserve1, err := storage.GetReservesFromState(ctx, j.vm.ReadState, lpToken)
	if err != nil {
		return err
	}
	_, _, _, supply, _, err := storage.GetTokenInfoFromState(ctx, j.vm.ReadState, lpToken)
	if err != nil {
		return err
	}

	reply.Token0 = token0
	reply.Token1 = token1
	reply.Reserve0 = reserve0
	reply.Reserve1 = reserve1
	reply.LPToken = lpToken
	reply.Supply = supply
	return nil
}

type GetPriceCumulativeArgs struct {
	Token0 codec.Address `json:"token0"`
	Token1 codec.Address `json:"token1"`
}

// GetPriceCumulativeReply carries the oracle accumulators as decimal strings,
// since they do not fit in 64 bits.
type GetPriceCumulativeReply struct {
	Price0Cumulative string `json:"price0Cumulative"`
	Price1Cumulative string `json:"price1Cumulative"`
	LastSync         uint64 `json:"lastSync"`
}

func (j *JSONRPCServer) GetPriceCumulative(req *http.Request, args *GetPriceCumulativeArgs, reply *GetPriceCumulativeReply) error {
	ctx, span := j.vm.Tracer().Start(req.Context(), "Server.GetPriceCumulative")
	defer span.End()

	lpToken, err := storage.GetPairFromState(ctx, j.vm.ReadState, args.Token0, args.Token1)
	if err != nil {
		return err
	}
	price0, price1, err := storage.GetPriceCumulativeFromState(ctx, j.vm.ReadState, lpToken)
	if err != nil {
		return err
	}
	last, err := storage.GetLastSyncFromState(ctx, j.vm.ReadState, lpToken)
	if err != nil {
		return err
	}

	reply.Price0Cumulative = price0.Dec()
	reply.Price1Cumulative = price1.Dec()
	reply.LastSync = last
	return nil
}
