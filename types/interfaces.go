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

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the fungible token interface backing the claim token denom.
// Transfers are assumed atomic and revert-on-failure.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
	GetSupply(ctx context.Context, denom string) sdk.Coin
	SendCoins(ctx context.Context, from, to sdk.AccAddress, amt sdk.Coins) error
	MintCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

// CollateralKeeper moves unique collateral assets in and out of module
// custody. Transfers are assumed atomic and revert-on-failure.
type CollateralKeeper interface {
	GetOwner(ctx context.Context, collection, nftID string) (sdk.AccAddress, error)
	Transfer(ctx context.Context, collection, nftID string, from, to sdk.AccAddress) error
}

// RandomnessCoordinator is the outbound half of the asynchronous randomness
// protocol. A submitted request is answered later, exactly once, through the
// module's RandomnessHandler.
type RandomnessCoordinator interface {
	RequestRandomness(ctx context.Context, keyHash string, fee sdk.Coin) (requestID string, err error)
}

// ClassChecker decides whether an asset belongs to the accepted collateral
// class. Implementations must be pure for the duration of an operation.
type ClassChecker interface {
	IsClassMember(ctx context.Context, collection, nftID string) (bool, error)
}
