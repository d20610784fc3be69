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

package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrankieIsLost/Mortys/types"
	"github.com/FrankieIsLost/Mortys/utils"
	"github.com/FrankieIsLost/Mortys/utils/mocks"
)

func TestGenesisRoundTrip(t *testing.T) {
	k, ctx := mocks.MortyKeeper(t)
	bob := utils.TestAccount()

	// ARRANGE: A populated genesis state
	params := types.DefaultParams()
	params.AllowedCollateral = []types.CollateralKey{{Collection: testCollection, NftId: testNftID}}

	genesis := types.GenesisState{
		Params:      params,
		NextVaultId: 3,
		Vaults: []types.GenesisVault{
			{Id: 1, Vault: types.Vault{
				Owner:         bob.Address,
				Collection:    testCollection,
				NftId:         testNftID,
				VMortyBalance: math.NewInt(7),
				State:         types.VaultStateActive,
			}},
			{Id: 2, Vault: types.Vault{
				Owner:         bob.Address,
				Collection:    testCollection,
				NftId:         "2",
				VMortyBalance: math.NewInt(10),
				State:         types.VaultStateInactive,
			}},
		},
		BuyPoolBalance:  math.NewInt(3),
		PendingRequests: []types.GenesisRequest{{RequestId: "req-1", VaultId: 1}},
		Stats:           types.Stats{TotalVaults: 2, TotalStepsRequested: 4, TotalStepsResolved: 3},
	}

	// ACT: Import and re-export
	require.NoError(t, k.InitGenesis(ctx, genesis))
	exported, err := k.ExportGenesis(ctx)

	// ASSERT: The exported state matches the imported one
	require.NoError(t, err)
	assert.Equal(t, genesis, exported)
}

func TestGenesisRejectsInvalidState(t *testing.T) {
	k, ctx := mocks.MortyKeeper(t)

	// ARRANGE: A genesis state whose pending request references no vault
	genesis := types.DefaultGenesisState()
	genesis.PendingRequests = []types.GenesisRequest{{RequestId: "req-1", VaultId: 9}}

	// ACT: Import
	err := k.InitGenesis(ctx, genesis)

	// ASSERT: Error returned
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid genesis state")
}

func TestGenesisResumesIDSequence(t *testing.T) {
	k, ctx := mocks.MortyKeeper(t)

	// ARRANGE: An imported state with the counter at 5
	genesis := types.DefaultGenesisState()
	genesis.NextVaultId = 5
	require.NoError(t, k.InitGenesis(ctx, genesis))

	// ACT: Allocate the next id
	id, err := k.NextVaultIDValue(ctx)

	// ASSERT: Sequence resumes where it left off
	require.NoError(t, err)
	assert.Equal(t, uint64(5), id)
}
