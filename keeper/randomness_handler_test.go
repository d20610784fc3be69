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
	"time"

	"cosmossdk.io/core/header"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FrankieIsLost/Mortys/keeper"
	"github.com/FrankieIsLost/Mortys/types"
	"github.com/FrankieIsLost/Mortys/utils"
	"github.com/FrankieIsLost/Mortys/utils/mocks"
)

const (
	favorableWord   uint64 = 1
	unfavorableWord uint64 = 2
)

// setupSteppingVault creates a vault that has minted five of its ten virtual
// balance into the pool, ready to walk.
func setupSteppingVault(t *testing.T) (*keeper.Keeper, types.MsgServer, testMocks, sdk.Context, utils.Account, uint64) {
	k, server, m, ctx, bob := setupTest(t)

	res, err := server.CreateVault(ctx, &types.MsgCreateVault{
		Creator:    bob.Address,
		Collection: testCollection,
		NftId:      testNftID,
	})
	require.NoError(t, err)

	_, err = server.MintShares(ctx, &types.MsgMintShares{
		Owner:   bob.Address,
		VaultId: res.VaultId,
		Amount:  math.NewInt(5),
	})
	require.NoError(t, err)

	// The creation cooldown has elapsed, so a step is admissible immediately.
	ctx = ctx.WithHeaderInfo(header.Info{Time: genesisTime.Add(time.Hour)})

	return k, server, m, ctx, bob, res.VaultId
}

// step requests a walk step after advancing past the cooldown and delivers
// the given random word.
func step(t *testing.T, server types.MsgServer, m testMocks, ctx sdk.Context, caller string, vaultID uint64, word uint64) sdk.Context {
	now := sdk.UnwrapSDKContext(ctx).HeaderInfo().Time.Add(time.Hour)
	ctx = ctx.WithHeaderInfo(header.Info{Time: now})

	res, err := server.TakeStep(ctx, &types.MsgTakeStep{Caller: caller, VaultId: vaultID})
	require.NoError(t, err)
	require.NoError(t, m.randomness.CallBackWithRandomness(ctx, res.RequestId, word))

	return ctx
}

func TestStepResolutionFavorable(t *testing.T) {
	k, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ACT: Request a step and deliver an odd word
	res, err := server.TakeStep(ctx, &types.MsgTakeStep{Caller: bob.Address, VaultId: vaultID})
	require.NoError(t, err)
	require.NoError(t, m.randomness.CallBackWithRandomness(ctx, res.RequestId, favorableWord))

	// ASSERT: One unit moved from the pool to the vault
	vault, _, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(6), vault.VMortyBalance)
	assert.Equal(t, types.VaultStateActive, vault.State)

	pool, err := k.GetBuyPoolBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(4), pool)

	stats, err := k.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.TotalStepsResolved)
}

func TestStepResolutionUnfavorable(t *testing.T) {
	k, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ACT: Request a step and deliver an even word
	res, err := server.TakeStep(ctx, &types.MsgTakeStep{Caller: bob.Address, VaultId: vaultID})
	require.NoError(t, err)
	require.NoError(t, m.randomness.CallBackWithRandomness(ctx, res.RequestId, unfavorableWord))

	// ASSERT: One unit moved from the vault to the pool
	vault, _, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(4), vault.VMortyBalance)

	pool, err := k.GetBuyPoolBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(6), pool)
}

func TestStepResolutionReplayIgnored(t *testing.T) {
	k, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ARRANGE: A resolved step
	res, err := server.TakeStep(ctx, &types.MsgTakeStep{Caller: bob.Address, VaultId: vaultID})
	require.NoError(t, err)
	require.NoError(t, m.randomness.CallBackWithRandomness(ctx, res.RequestId, favorableWord))

	// ACT: Deliver the same request id again
	require.NoError(t, m.randomness.CallBackWithRandomness(ctx, res.RequestId, favorableWord))

	// ASSERT: No double application
	vault, _, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(6), vault.VMortyBalance)

	stats, err := k.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), stats.TotalStepsResolved)
}

func TestStepResolutionUnknownRequestIgnored(t *testing.T) {
	k, _, m, ctx, _, vaultID := setupSteppingVault(t)

	// ACT: Deliver a word for a request that was never made
	require.NoError(t, m.randomness.CallBackWithRandomness(ctx, "phony", favorableWord))

	// ASSERT: Nothing moved
	vault, _, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(5), vault.VMortyBalance)
}

func TestStepResolutionSupersededRequestIgnored(t *testing.T) {
	k, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ARRANGE: Two outstanding requests, the second superseding the first
	first, err := server.TakeStep(ctx, &types.MsgTakeStep{Caller: bob.Address, VaultId: vaultID})
	require.NoError(t, err)

	ctx = ctx.WithHeaderInfo(header.Info{Time: genesisTime.Add(2 * time.Hour)})
	second, err := server.TakeStep(ctx, &types.MsgTakeStep{Caller: bob.Address, VaultId: vaultID})
	require.NoError(t, err)

	// ACT: The stale delivery arrives late, then the live one
	require.NoError(t, m.randomness.CallBackWithRandomness(ctx, first.RequestId, favorableWord))
	require.NoError(t, m.randomness.CallBackWithRandomness(ctx, second.RequestId, favorableWord))

	// ASSERT: Only the live request moved the balance
	vault, _, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(6), vault.VMortyBalance)

	stats, err := k.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), stats.TotalStepsRequested)
	assert.Equal(t, uint64(1), stats.TotalStepsResolved)
}

func TestAbsorptionForOwner(t *testing.T) {
	k, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ACT: Walk five favorable steps back to the initial balance
	for i := 0; i < 5; i++ {
		ctx = step(t, server, m, ctx, bob.Address, vaultID, favorableWord)
	}

	// ASSERT: Vault settled for the owner, pool drained
	vault, _, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(10), vault.VMortyBalance)
	assert.Equal(t, types.VaultStateSettledForOwner, vault.State)

	pool, err := k.GetBuyPoolBalance(ctx)
	require.NoError(t, err)
	assert.True(t, pool.IsZero())

	// ACT: Owner redeems the collateral
	_, err = server.RedeemByOwner(ctx, &types.MsgRedeemByOwner{Owner: bob.Address, VaultId: vaultID})

	// ASSERT: Asset back with the owner, vault terminal
	require.NoError(t, err)

	owner, err := m.collateral.GetOwner(ctx, testCollection, testNftID)
	require.NoError(t, err)
	assert.Equal(t, bob.Bytes, owner)

	vault, _, err = k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.Equal(t, types.VaultStateRedeemed, vault.State)

	// ACT: A second redemption attempt
	_, err = server.RedeemByOwner(ctx, &types.MsgRedeemByOwner{Owner: bob.Address, VaultId: vaultID})

	// ASSERT: Error returned
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault has not settled for owner")
}

func TestAbsorptionAgainstOwner(t *testing.T) {
	k, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ACT: Walk five unfavorable steps down to zero
	for i := 0; i < 5; i++ {
		ctx = step(t, server, m, ctx, bob.Address, vaultID, unfavorableWord)
	}

	// ASSERT: Vault settled against the owner
	vault, _, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.True(t, vault.VMortyBalance.IsZero())
	assert.Equal(t, types.VaultStateSettledAgainstOwner, vault.State)

	pool, err := k.GetBuyPoolBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, math.NewInt(10), pool)

	// ACT: Owner attempts to redeem anyway
	_, err = server.RedeemByOwner(ctx, &types.MsgRedeemByOwner{Owner: bob.Address, VaultId: vaultID})

	// ASSERT: Error returned
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault has not settled for owner")
}

func TestRedeemByBuyer(t *testing.T) {
	k, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ARRANGE: A vault settled against the owner and a buyer holding the
	// entire claim supply
	for i := 0; i < 5; i++ {
		ctx = step(t, server, m, ctx, bob.Address, vaultID, unfavorableWord)
	}

	buyer := utils.TestAccount()
	supply := k.GetClaimSupply(ctx)
	coins := sdk.NewCoins(sdk.NewCoin(mocks.ClaimDenom, supply))
	require.NoError(t, m.bank.SendCoins(ctx, bob.Bytes, buyer.Bytes, coins))

	// ACT: Buyer redeems with the full supply
	res, err := server.RedeemByBuyer(ctx, &types.MsgRedeemByBuyer{Buyer: buyer.Address, VaultId: vaultID})

	// ASSERT: Supply burned, collateral with the buyer
	require.NoError(t, err)
	assert.Equal(t, supply, res.ClaimTokensBurned)
	assert.True(t, k.GetClaimSupply(ctx).IsZero())

	owner, err := m.collateral.GetOwner(ctx, testCollection, testNftID)
	require.NoError(t, err)
	assert.Equal(t, buyer.Bytes, owner)

	vault, _, err := k.GetVault(ctx, vaultID)
	require.NoError(t, err)
	assert.Equal(t, types.VaultStateRedeemed, vault.State)
}

func TestRedeemByBuyerPartialHolding(t *testing.T) {
	k, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ARRANGE: A settled vault and a buyer holding only part of the supply
	for i := 0; i < 5; i++ {
		ctx = step(t, server, m, ctx, bob.Address, vaultID, unfavorableWord)
	}

	buyer := utils.TestAccount()
	coins := sdk.NewCoins(sdk.NewCoin(mocks.ClaimDenom, math.NewInt(100)))
	require.NoError(t, m.bank.SendCoins(ctx, bob.Bytes, buyer.Bytes, coins))

	// ACT: Buyer attempts to redeem
	_, err := server.RedeemByBuyer(ctx, &types.MsgRedeemByBuyer{Buyer: buyer.Address, VaultId: vaultID})

	// ASSERT: Error returned, supply untouched
	require.Error(t, err)
	assert.Contains(t, err.Error(), "holding")
	assert.Equal(t, math.NewInt(500), k.GetClaimSupply(ctx))
}

func TestRedeemByBuyerNotSettled(t *testing.T) {
	_, server, _, ctx, bob, vaultID := setupSteppingVault(t)

	// ACT: Attempt a buyer redemption while the walk is still running
	_, err := server.RedeemByBuyer(ctx, &types.MsgRedeemByBuyer{Buyer: bob.Address, VaultId: vaultID})

	// ASSERT: Error returned
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault is")
}

func TestSettledVaultRejectsFurtherActivity(t *testing.T) {
	_, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ARRANGE: A vault settled for the owner
	for i := 0; i < 5; i++ {
		ctx = step(t, server, m, ctx, bob.Address, vaultID, favorableWord)
	}

	// ACT: Attempt to mint against the settled vault
	_, err := server.MintShares(ctx, &types.MsgMintShares{
		Owner:   bob.Address,
		VaultId: vaultID,
		Amount:  math.NewInt(1),
	})

	// ASSERT: Error returned
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault is settled_for_owner")

	// ACT: Attempt another step
	ctx = ctx.WithHeaderInfo(header.Info{Time: sdk.UnwrapSDKContext(ctx).HeaderInfo().Time.Add(time.Hour)})
	_, err = server.TakeStep(ctx, &types.MsgTakeStep{Caller: bob.Address, VaultId: vaultID})

	// ASSERT: Error returned
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vault is settled_for_owner")
}

func TestExchangeRateAfterUnfavorableStep(t *testing.T) {
	_, server, m, ctx, bob, vaultID := setupSteppingVault(t)

	// ARRANGE: One unfavorable step, pool now 6 against a supply of 500
	ctx = step(t, server, m, ctx, bob.Address, vaultID, unfavorableWord)

	// ACT: Mint three more units at the new rate
	mintRes, err := server.MintShares(ctx, &types.MsgMintShares{
		Owner:   bob.Address,
		VaultId: vaultID,
		Amount:  math.NewInt(3),
	})

	// ASSERT: Rate is 500/6, truncated after multiplication
	require.NoError(t, err)
	expected := math.LegacyNewDec(500).QuoInt64(6).MulInt64(3).TruncateInt()
	assert.Equal(t, expected, mintRes.ClaimTokensMinted)
}
