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

	"github.com/FrankieIsLost/Mortys/types"
)

var _ types.ClassChecker = &AllowlistClass{}

// AllowlistClass is the default collateral class policy: an asset is a member
// iff its (collection, id) pair appears in Params.AllowedCollateral. Alternate
// policies can be installed with Keeper.SetClassChecker without touching vault
// logic.
type AllowlistClass struct {
	keeper *Keeper
}

func NewAllowlistClass(keeper *Keeper) *AllowlistClass {
	return &AllowlistClass{keeper: keeper}
}

func (c *AllowlistClass) IsClassMember(ctx context.Context, collection, nftID string) (bool, error) {
	params, err := c.keeper.GetParams(ctx)
	if err != nil {
		return false, err
	}

	for _, key := range params.AllowedCollateral {
		if key.Collection == collection && key.NftId == nftID {
			return true, nil
		}
	}

	return false, nil
}

// IsClassMember answers the public class membership query through the
// currently installed policy.
func (k *Keeper) IsClassMember(ctx context.Context, collection, nftID string) (bool, error) {
	return k.class.IsClassMember(ctx, collection, nftID)
}
