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

package mocks

import (
	"context"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/FrankieIsLost/Mortys/types"
)

var _ types.CollateralKeeper = CollateralKeeper{}

// CollateralKeeper is an in-memory registry of unique assets. Owners are
// keyed by "collection/id".
type CollateralKeeper struct {
	Owners map[string]sdk.AccAddress
}

func NewCollateralKeeper() *CollateralKeeper {
	return &CollateralKeeper{Owners: make(map[string]sdk.AccAddress)}
}

// Register assigns an asset to an owner, creating it if needed.
func (c CollateralKeeper) Register(collection, nftID string, owner sdk.AccAddress) {
	c.Owners[assetKey(collection, nftID)] = owner
}

func (c CollateralKeeper) GetOwner(_ context.Context, collection, nftID string) (sdk.AccAddress, error) {
	owner, ok := c.Owners[assetKey(collection, nftID)]
	if !ok {
		return nil, fmt.Errorf("unknown asset %s", assetKey(collection, nftID))
	}
	return owner, nil
}

func (c CollateralKeeper) Transfer(_ context.Context, collection, nftID string, from, to sdk.AccAddress) error {
	key := assetKey(collection, nftID)

	owner, ok := c.Owners[key]
	if !ok {
		return fmt.Errorf("unknown asset %s", key)
	}
	if !owner.Equals(from) {
		return fmt.Errorf("%s is not held by %s", key, from)
	}

	c.Owners[key] = to
	return nil
}

func assetKey(collection, nftID string) string {
	return collection + "/" + nftID
}
