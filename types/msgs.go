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

// MsgServer is the public operation surface of the module.
type MsgServer interface {
	CreateVault(ctx context.Context, msg *MsgCreateVault) (*MsgCreateVaultResponse, error)
	ReplaceCollateral(ctx context.Context, msg *MsgReplaceCollateral) (*MsgReplaceCollateralResponse, error)
	MintShares(ctx context.Context, msg *MsgMintShares) (*MsgMintSharesResponse, error)
	TakeStep(ctx context.Context, msg *MsgTakeStep) (*MsgTakeStepResponse, error)
	RedeemByOwner(ctx context.Context, msg *MsgRedeemByOwner) (*MsgRedeemByOwnerResponse, error)
	RedeemByBuyer(ctx context.Context, msg *MsgRedeemByBuyer) (*MsgRedeemByBuyerResponse, error)
}

type MsgCreateVault struct {
	Creator    string `json:"creator"`
	Collection string `json:"collection"`
	NftId      string `json:"nft_id"`
}

type MsgCreateVaultResponse struct {
	VaultId uint64 `json:"vault_id"`
}

type MsgReplaceCollateral struct {
	Owner      string `json:"owner"`
	VaultId    uint64 `json:"vault_id"`
	Collection string `json:"collection"`
	NftId      string `json:"nft_id"`
}

type MsgReplaceCollateralResponse struct{}

type MsgMintShares struct {
	Owner   string   `json:"owner"`
	VaultId uint64   `json:"vault_id"`
	Amount  math.Int `json:"amount"`
}

type MsgMintSharesResponse struct {
	ClaimTokensMinted math.Int `json:"claim_tokens_minted"`
}

type MsgTakeStep struct {
	Caller  string `json:"caller"`
	VaultId uint64 `json:"vault_id"`
}

type MsgTakeStepResponse struct {
	RequestId string `json:"request_id"`
}

type MsgRedeemByOwner struct {
	Owner   string `json:"owner"`
	VaultId uint64 `json:"vault_id"`
}

type MsgRedeemByOwnerResponse struct{}

type MsgRedeemByBuyer struct {
	Buyer   string `json:"buyer"`
	VaultId uint64 `json:"vault_id"`
}

type MsgRedeemByBuyerResponse struct {
	ClaimTokensBurned math.Int `json:"claim_tokens_burned"`
}
