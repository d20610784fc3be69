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

package types

import (
	"context"

	"cosmossdk.io/math"
)

// QueryServer is the read-only surface of the module.
type QueryServer interface {
	Vault(ctx context.Context, req *QueryVault) (*QueryVaultResponse, error)
	Vaults(ctx context.Context, req *QueryVaults) (*QueryVaultsResponse, error)
	BuyPoolBalance(ctx context.Context, req *QueryBuyPoolBalance) (*QueryBuyPoolBalanceResponse, error)
	ClaimSupply(ctx context.Context, req *QueryClaimSupply) (*QueryClaimSupplyResponse, error)
	ClaimBalance(ctx context.Context, req *QueryClaimBalance) (*QueryClaimBalanceResponse, error)
	ExchangeRate(ctx context.Context, req *QueryExchangeRate) (*QueryExchangeRateResponse, error)
	IsClassMember(ctx context.Context, req *QueryIsClassMember) (*QueryIsClassMemberResponse, error)
	PendingRequest(ctx context.Context, req *QueryPendingRequest) (*QueryPendingRequestResponse, error)
	Params(ctx context.Context, req *QueryParams) (*QueryParamsResponse, error)
	Stats(ctx context.Context, req *QueryStats) (*QueryStatsResponse, error)
}

type QueryVault struct {
	VaultId uint64 `json:"vault_id"`
}

type QueryVaultResponse struct {
	Vault Vault `json:"vault"`
}

type QueryVaults struct{}

// VaultEntry pairs a vault with its identifier for list responses.
type VaultEntry struct {
	Id    uint64 `json:"id"`
	Vault Vault  `json:"vault"`
}

type QueryVaultsResponse struct {
	Vaults []VaultEntry `json:"vaults"`
}

type QueryBuyPoolBalance struct{}

type QueryBuyPoolBalanceResponse struct {
	Balance math.Int `json:"balance"`
}

type QueryClaimSupply struct{}

type QueryClaimSupplyResponse struct {
	Supply math.Int `json:"supply"`
}

type QueryClaimBalance struct {
	Address string `json:"address"`
}

type QueryClaimBalanceResponse struct {
	Balance math.Int `json:"balance"`
}

type QueryExchangeRate struct{}

type QueryExchangeRateResponse struct {
	Rate math.LegacyDec `json:"rate"`
}

type QueryIsClassMember struct {
	Collection string `json:"collection"`
	NftId      string `json:"nft_id"`
}

type QueryIsClassMemberResponse struct {
	Member bool `json:"member"`
}

type QueryPendingRequest struct {
	VaultId uint64 `json:"vault_id"`
}

type QueryPendingRequestResponse struct {
	RequestId string `json:"request_id"`
	Pending   bool   `json:"pending"`
}

type QueryParams struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryStats struct{}

type QueryStatsResponse struct {
	Stats Stats `json:"stats"`
}
