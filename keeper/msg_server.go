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
	"time"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/FrankieIsLost/Mortys/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

func (m msgServer) CreateVault(ctx context.Context, msg *types.MsgCreateVault) (*types.MsgCreateVaultResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	addrBz, err := m.address.StringToBytes(msg.Creator)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid creator address: %s", msg.Creator)
	}
	creator := sdk.AccAddress(addrBz)

	member, err := m.IsClassMember(ctx, msg.Collection, msg.NftId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to check class membership")
	}
	if !member {
		return nil, errors.Wrapf(types.ErrNotClassMember, "%s/%s", msg.Collection, msg.NftId)
	}

	holder, err := m.collateral.GetOwner(ctx, msg.Collection, msg.NftId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to resolve collateral holder")
	}
	if !holder.Equals(creator) {
		return nil, errors.Wrap(types.ErrUnauthorized, "creator does not hold the collateral asset")
	}

	if err := m.collateral.Transfer(ctx, msg.Collection, msg.NftId, creator, types.ModuleAddress); err != nil {
		return nil, errors.Wrap(err, "unable to take collateral into custody")
	}

	params, err := m.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch params")
	}

	id, err := m.NextVaultIDValue(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to allocate vault id")
	}

	// The step cooldown starts at creation: a new vault waits out a full
	// interval before its first step.
	vault := types.Vault{
		Owner:         msg.Creator,
		Collection:    msg.Collection,
		NftId:         msg.NftId,
		VMortyBalance: params.InitialVMortyBalance,
		State:         types.VaultStateInactive,
		LastStepTime:  m.header.GetHeaderInfo(ctx).Time,
	}
	if err := m.SetVault(ctx, id, vault); err != nil {
		return nil, errors.Wrap(err, "unable to store vault")
	}

	if err := m.UpdateStats(ctx, func(stats *types.Stats) {
		stats.TotalVaults++
	}); err != nil {
		return nil, errors.Wrap(err, "unable to update stats")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventVaultCreated{
		VaultId:        id,
		Owner:          msg.Creator,
		Collection:     msg.Collection,
		NftId:          msg.NftId,
		InitialBalance: params.InitialVMortyBalance,
	}); err != nil {
		return nil, errors.Wrap(err, "unable to emit vault created event")
	}

	return &types.MsgCreateVaultResponse{VaultId: id}, nil
}

func (m msgServer) ReplaceCollateral(ctx context.Context, msg *types.MsgReplaceCollateral) (*types.MsgReplaceCollateralResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	addrBz, err := m.address.StringToBytes(msg.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", msg.Owner)
	}
	owner := sdk.AccAddress(addrBz)

	vault, found, err := m.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.VaultId)
	}
	if vault.Owner != msg.Owner {
		return nil, errors.Wrap(types.ErrUnauthorized, "only the vault owner may replace collateral")
	}
	if vault.State.IsTerminal() {
		return nil, errors.Wrapf(types.ErrInvalidVaultState, "vault is %s", vault.State)
	}

	member, err := m.IsClassMember(ctx, msg.Collection, msg.NftId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to check class membership")
	}
	if !member {
		return nil, errors.Wrapf(types.ErrNotClassMember, "%s/%s", msg.Collection, msg.NftId)
	}

	// Swap custody atomically: the old asset goes back to the owner, the new
	// one is taken in. Balance and state are untouched.
	if err := m.collateral.Transfer(ctx, vault.Collection, vault.NftId, types.ModuleAddress, owner); err != nil {
		return nil, errors.Wrap(err, "unable to release old collateral")
	}
	if err := m.collateral.Transfer(ctx, msg.Collection, msg.NftId, owner, types.ModuleAddress); err != nil {
		return nil, errors.Wrap(err, "unable to take new collateral into custody")
	}

	oldCollection, oldNftID := vault.Collection, vault.NftId
	vault.Collection = msg.Collection
	vault.NftId = msg.NftId
	if err := m.SetVault(ctx, msg.VaultId, vault); err != nil {
		return nil, errors.Wrap(err, "unable to store vault")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventCollateralReplaced{
		VaultId:       msg.VaultId,
		OldCollection: oldCollection,
		OldNftId:      oldNftID,
		NewCollection: msg.Collection,
		NewNftId:      msg.NftId,
	}); err != nil {
		return nil, errors.Wrap(err, "unable to emit collateral replaced event")
	}

	return &types.MsgReplaceCollateralResponse{}, nil
}

func (m msgServer) MintShares(ctx context.Context, msg *types.MsgMintShares) (*types.MsgMintSharesResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if msg.Amount.IsNil() || !msg.Amount.IsPositive() {
		return nil, errors.Wrap(types.ErrInvalidRequest, "mint amount must be positive")
	}

	addrBz, err := m.address.StringToBytes(msg.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", msg.Owner)
	}
	owner := sdk.AccAddress(addrBz)

	vault, found, err := m.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.VaultId)
	}
	if vault.Owner != msg.Owner {
		return nil, errors.Wrap(types.ErrUnauthorized, "only the vault owner may mint shares")
	}
	if vault.State.IsTerminal() {
		return nil, errors.Wrapf(types.ErrInvalidVaultState, "vault is %s", vault.State)
	}
	if msg.Amount.GT(vault.VMortyBalance) {
		return nil, errors.Wrapf(types.ErrInsufficientVaultBalance, "amount %s exceeds balance %s", msg.Amount, vault.VMortyBalance)
	}

	// The exchange rate is computed before this mint moves any balance, so a
	// mint in isolation never changes it.
	rate, err := m.currentExchangeRate(ctx)
	if err != nil {
		return nil, err
	}
	minted := rate.MulInt(msg.Amount).TruncateInt()

	vault.VMortyBalance, err = vault.VMortyBalance.SafeSub(msg.Amount)
	if err != nil {
		return nil, errors.Wrap(err, "unable to update vault balance")
	}
	if err := m.SetVault(ctx, msg.VaultId, vault); err != nil {
		return nil, errors.Wrap(err, "unable to store vault")
	}

	if _, err := m.AdjustBuyPoolBalance(ctx, msg.Amount); err != nil {
		return nil, errors.Wrap(err, "unable to credit buy pool")
	}

	coins := sdk.NewCoins(sdk.NewCoin(m.denom, minted))
	if err := m.bank.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return nil, errors.Wrap(err, "unable to mint claim tokens")
	}
	if err := m.bank.SendCoins(ctx, types.ModuleAddress, owner, coins); err != nil {
		return nil, errors.Wrap(err, "unable to transfer claim tokens")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventSharesMinted{
		VaultId:           msg.VaultId,
		Owner:             msg.Owner,
		Amount:            msg.Amount,
		ClaimTokensMinted: minted,
	}); err != nil {
		return nil, errors.Wrap(err, "unable to emit shares minted event")
	}

	return &types.MsgMintSharesResponse{ClaimTokensMinted: minted}, nil
}

func (m msgServer) TakeStep(ctx context.Context, msg *types.MsgTakeStep) (*types.MsgTakeStepResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	if _, err := m.address.StringToBytes(msg.Caller); err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid caller address: %s", msg.Caller)
	}

	vault, found, err := m.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.VaultId)
	}
	if vault.State.IsTerminal() {
		return nil, errors.Wrapf(types.ErrInvalidVaultState, "vault is %s", vault.State)
	}

	params, err := m.GetParams(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch params")
	}

	// A vault whose balance still equals the initial balance has nothing at
	// stake: a favorable outcome would push it past the upper boundary.
	if !vault.VMortyBalance.LT(params.InitialVMortyBalance) {
		return nil, errors.Wrap(types.ErrInvalidVaultState, "vault has no balance at stake")
	}

	now := m.header.GetHeaderInfo(ctx).Time
	interval := time.Duration(params.StepIntervalSeconds) * time.Second
	if vault.LastStepTime.Add(interval).After(now) {
		return nil, errors.Wrapf(types.ErrStepCooldownActive, "next step allowed at %s", vault.LastStepTime.Add(interval))
	}

	// The cooldown starts at request time, not at resolution, so repeated
	// calls cannot queue up requests faster than the interval.
	vault.LastStepTime = now
	if vault.State == types.VaultStateInactive {
		vault.State = types.VaultStateActive
	}
	if err := m.SetVault(ctx, msg.VaultId, vault); err != nil {
		return nil, errors.Wrap(err, "unable to store vault")
	}

	requestID, err := m.randomness.RequestRandomness(ctx, params.RandomnessKeyHash, params.RandomnessFee)
	if err != nil {
		return nil, errors.Wrap(err, "unable to request randomness")
	}

	if err := m.SetPendingRequest(ctx, requestID, msg.VaultId); err != nil {
		return nil, errors.Wrap(err, "unable to record randomness correlation")
	}

	if err := m.UpdateStats(ctx, func(stats *types.Stats) {
		stats.TotalStepsRequested++
	}); err != nil {
		return nil, errors.Wrap(err, "unable to update stats")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventStepRequested{
		VaultId:   msg.VaultId,
		RequestId: requestID,
		Timestamp: now,
	}); err != nil {
		return nil, errors.Wrap(err, "unable to emit step requested event")
	}

	return &types.MsgTakeStepResponse{RequestId: requestID}, nil
}

func (m msgServer) RedeemByOwner(ctx context.Context, msg *types.MsgRedeemByOwner) (*types.MsgRedeemByOwnerResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	addrBz, err := m.address.StringToBytes(msg.Owner)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid owner address: %s", msg.Owner)
	}
	owner := sdk.AccAddress(addrBz)

	vault, found, err := m.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.VaultId)
	}
	if vault.State != types.VaultStateSettledForOwner {
		return nil, errors.Wrapf(types.ErrNotSettledForOwner, "vault is %s", vault.State)
	}
	if vault.Owner != msg.Owner {
		return nil, errors.Wrap(types.ErrUnauthorized, "only the vault owner may redeem")
	}

	if err := m.collateral.Transfer(ctx, vault.Collection, vault.NftId, types.ModuleAddress, owner); err != nil {
		return nil, errors.Wrap(err, "unable to release collateral")
	}

	if err := m.TransitionVault(ctx, msg.VaultId, &vault, types.VaultStateRedeemed); err != nil {
		return nil, errors.Wrap(err, "unable to mark vault redeemed")
	}

	if err := m.UpdateStats(ctx, func(stats *types.Stats) {
		stats.TotalRedemptions++
	}); err != nil {
		return nil, errors.Wrap(err, "unable to update stats")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventVaultRedeemed{
		VaultId:           msg.VaultId,
		Redeemer:          msg.Owner,
		Collection:        vault.Collection,
		NftId:             vault.NftId,
		ClaimTokensBurned: sdkmath.ZeroInt(),
	}); err != nil {
		return nil, errors.Wrap(err, "unable to emit vault redeemed event")
	}

	return &types.MsgRedeemByOwnerResponse{}, nil
}

func (m msgServer) RedeemByBuyer(ctx context.Context, msg *types.MsgRedeemByBuyer) (*types.MsgRedeemByBuyerResponse, error) {
	if msg == nil {
		return nil, errors.Wrap(types.ErrInvalidRequest, "message cannot be nil")
	}

	addrBz, err := m.address.StringToBytes(msg.Buyer)
	if err != nil {
		return nil, errors.Wrapf(types.ErrInvalidRequest, "invalid buyer address: %s", msg.Buyer)
	}
	buyer := sdk.AccAddress(addrBz)

	vault, found, err := m.GetVault(ctx, msg.VaultId)
	if err != nil {
		return nil, errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return nil, errors.Wrapf(types.ErrVaultNotFound, "vault %d", msg.VaultId)
	}
	if vault.State != types.VaultStateSettledAgainstOwner {
		return nil, errors.Wrapf(types.ErrNotSettledAgainstOwner, "vault is %s", vault.State)
	}

	// The pool is shared across vaults, so redeeming a specific vault's asset
	// requires a controlling claim: the entire current supply.
	supply := m.GetClaimSupply(ctx)
	balance := m.bank.GetBalance(ctx, buyer, m.denom).Amount
	if balance.LT(supply) {
		return nil, errors.Wrapf(types.ErrInsufficientClaimBalance, "holding %s of %s total", balance, supply)
	}

	if supply.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(m.denom, supply))
		if err := m.bank.SendCoins(ctx, buyer, types.ModuleAddress, coins); err != nil {
			return nil, errors.Wrap(err, "unable to collect claim tokens")
		}
		if err := m.bank.BurnCoins(ctx, types.ModuleName, coins); err != nil {
			return nil, errors.Wrap(err, "unable to burn claim tokens")
		}
	}

	if err := m.collateral.Transfer(ctx, vault.Collection, vault.NftId, types.ModuleAddress, buyer); err != nil {
		return nil, errors.Wrap(err, "unable to release collateral")
	}

	if err := m.TransitionVault(ctx, msg.VaultId, &vault, types.VaultStateRedeemed); err != nil {
		return nil, errors.Wrap(err, "unable to mark vault redeemed")
	}

	if err := m.UpdateStats(ctx, func(stats *types.Stats) {
		stats.TotalRedemptions++
	}); err != nil {
		return nil, errors.Wrap(err, "unable to update stats")
	}

	if err := m.event.EventManager(ctx).Emit(ctx, &types.EventVaultRedeemed{
		VaultId:           msg.VaultId,
		Redeemer:          msg.Buyer,
		Collection:        vault.Collection,
		NftId:             vault.NftId,
		ClaimTokensBurned: supply,
	}); err != nil {
		return nil, errors.Wrap(err, "unable to emit vault redeemed event")
	}

	return &types.MsgRedeemByBuyerResponse{ClaimTokensBurned: supply}, nil
}

// currentExchangeRate is claim supply over pool balance, or the configured
// initial rate while the pool is empty.
func (m msgServer) currentExchangeRate(ctx context.Context) (sdkmath.LegacyDec, error) {
	pool, err := m.GetBuyPoolBalance(ctx)
	if err != nil {
		return sdkmath.LegacyDec{}, errors.Wrap(err, "unable to fetch buy pool balance")
	}

	params, err := m.GetParams(ctx)
	if err != nil {
		return sdkmath.LegacyDec{}, errors.Wrap(err, "unable to fetch params")
	}

	if pool.IsZero() {
		return params.InitialExchangeRate, nil
	}

	supply := m.GetClaimSupply(ctx)

	return sdkmath.LegacyNewDecFromInt(supply).QuoInt(pool), nil
}
