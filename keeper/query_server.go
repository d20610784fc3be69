// SPDX-License-Identifier: BUSL-1.1
//
// Copyright (C) 2025, NASD Inc. All rights reserved.
// Use of this software is governed by the Business Source License included
// in the LICENSE file of this repository and at www.mariadb.com/bsl11.
//
// ANY USE OF THE LICENSED WORK IN VIOLATION OF THIS LICENSE WILL AUTOMATICALLY
// TERMINATE YOUR RIGHTS UNDER THIS LICENSE FOR THE CURRENT AND ALL OTHER
// VERSIONS OF THE LICENSED WORK.
//
// THIS LICENSE DOES NOT GRANT YOU ANY RIGHT IN ANY TRADEMARK OR LOGO OF
// LICENSOR OR ITS AFFILIATES (PROVIDED THAT YOU MAY USE A TRADEMARK OR LOGO OF
// LICENSOR AS EXPRESSLY REQUIRED BY THIS LICENSE).
//
// TO THE EXTENT PERMITTED BY APPLICABLE LAW, THE LICENSED WORK IS PROVIDED ON
// AN "AS IS" BASIS. LICENSOR HEREBY DISCLAIMS ALL WARRANTIES AND CONDITIONS,
// EXPRESS OR IMPLIED, INCLUDING (WITHOUT LIMITATION) WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE, NON-INFRINGEMENT, AND
// TITLE.

package keeper

import (
	"context"

	"cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/FrankieIsLost/Mortys/types"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

func (q queryServer) Vault(ctx context.Context, req *types.QueryVault) (*types.QueryVaultResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	vault, found, err := q.GetVault(ctx, req.VaultId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", req.VaultId)
	}

	return &types.QueryVaultResponse{Vault: vault}, nil
}

func (q queryServer) Vaults(ctx context.Context, req *types.QueryVaults) (*types.QueryVaultsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	var entries []types.VaultEntry
	err := q.IterateVaults(ctx, func(id uint64, vault types.Vault) (bool, error) {
		entries = append(entries, types.VaultEntry{Id: id, Vault: vault})
		return false, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to iterate vaults")
	}

	return &types.QueryVaultsResponse{Vaults: entries}, nil
}

func (q queryServer) BuyPoolBalance(ctx context.Context, req *types.QueryBuyPoolBalance) (*types.QueryBuyPoolBalanceResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	balance, err := q.GetBuyPoolBalance(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch buy pool balance")
	}

	return &types.QueryBuyPoolBalanceResponse{Balance: balance}, nil
}

func (q queryServer) ClaimSupply(ctx context.Context, req *types.QueryClaimSupply) (*types.QueryClaimSupplyResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	return &types.QueryClaimSupplyResponse{Supply: q.GetClaimSupply(ctx)}, nil
}

func (q queryServer) ClaimBalance(ctx context.Context, req *types.QueryClaimBalance) (*types.QueryClaimBalanceResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	addrBz, err := q.address.StringToBytes(req.Address)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid address: %s", req.Address)
	}

	balance := q.bank.GetBalance(ctx, sdk.AccAddress(addrBz), q.denom)

	return &types.QueryClaimBalanceResponse{Balance: balance.Amount}, nil
}

func (q queryServer) ExchangeRate(ctx context.Context, req *types.QueryExchangeRate) (*types.QueryExchangeRateResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	pool, err := q.GetBuyPoolBalance(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch buy pool balance")
	}

	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch params")
	}

	rate := params.InitialExchangeRate
	if !pool.IsZero() {
		rate = math.LegacyNewDecFromInt(q.GetClaimSupply(ctx)).QuoInt(pool)
	}

	return &types.QueryExchangeRateResponse{Rate: rate}, nil
}

func (q queryServer) IsClassMember(ctx context.Context, req *types.QueryIsClassMember) (*types.QueryIsClassMemberResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	member, err := q.Keeper.IsClassMember(ctx, req.Collection, req.NftId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to check class membership")
	}

	return &types.QueryIsClassMemberResponse{Member: member}, nil
}

func (q queryServer) PendingRequest(ctx context.Context, req *types.QueryPendingRequest) (*types.QueryPendingRequestResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	requestID, found, err := q.GetVaultRequest(ctx, req.VaultId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch pending request")
	}

	return &types.QueryPendingRequestResponse{RequestId: requestID, Pending: found}, nil
}

func (q queryServer) Params(ctx context.Context, req *types.QueryParams) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	params, err := q.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch params")
	}

	return &types.QueryParamsResponse{Params: params}, nil
}

func (q queryServer) Stats(ctx context.Context, req *types.QueryStats) (*types.QueryStatsResponse, error) {
	if req == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "request cannot be nil")
	}

	stats, err := q.GetStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch stats")
	}

	return &types.QueryStatsResponse{Stats: stats}, nil
}
