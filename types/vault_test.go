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

package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FrankieIsLost/Mortys/types"
)

func TestVaultStateTransitions(t *testing.T) {
	// Irreversible lifecycle: forward moves only, nothing leaves redeemed.
	assert.True(t, types.VaultStateInactive.CanTransitionTo(types.VaultStateActive))
	assert.True(t, types.VaultStateInactive.CanTransitionTo(types.VaultStateSettledForOwner))
	assert.True(t, types.VaultStateActive.CanTransitionTo(types.VaultStateSettledForOwner))
	assert.True(t, types.VaultStateActive.CanTransitionTo(types.VaultStateSettledAgainstOwner))
	assert.True(t, types.VaultStateSettledForOwner.CanTransitionTo(types.VaultStateRedeemed))
	assert.True(t, types.VaultStateSettledAgainstOwner.CanTransitionTo(types.VaultStateRedeemed))

	assert.False(t, types.VaultStateActive.CanTransitionTo(types.VaultStateInactive))
	assert.False(t, types.VaultStateSettledForOwner.CanTransitionTo(types.VaultStateActive))
	assert.False(t, types.VaultStateSettledForOwner.CanTransitionTo(types.VaultStateSettledAgainstOwner))
	assert.False(t, types.VaultStateRedeemed.CanTransitionTo(types.VaultStateActive))
	assert.False(t, types.VaultStateRedeemed.CanTransitionTo(types.VaultStateRedeemed))
}

func TestVaultStateTerminal(t *testing.T) {
	assert.False(t, types.VaultStateInactive.IsTerminal())
	assert.False(t, types.VaultStateActive.IsTerminal())
	assert.True(t, types.VaultStateSettledForOwner.IsTerminal())
	assert.True(t, types.VaultStateSettledAgainstOwner.IsTerminal())
	assert.True(t, types.VaultStateRedeemed.IsTerminal())
}

func TestGenesisStateValidation(t *testing.T) {
	genesis := types.DefaultGenesisState()
	assert.NoError(t, genesis.Validate())

	// Vault id outside the allocated range.
	invalid := types.DefaultGenesisState()
	invalid.Vaults = []types.GenesisVault{{Id: 1, Vault: types.Vault{VMortyBalance: types.DefaultParams().InitialVMortyBalance}}}
	assert.Error(t, invalid.Validate())

	// Balance above the upper boundary.
	invalid = types.DefaultGenesisState()
	invalid.NextVaultId = 2
	invalid.Vaults = []types.GenesisVault{{Id: 1, Vault: types.Vault{VMortyBalance: types.DefaultParams().InitialVMortyBalance.AddRaw(1)}}}
	assert.Error(t, invalid.Validate())
}
