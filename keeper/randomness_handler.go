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

	"github.com/FrankieIsLost/Mortys/types"
)

// RandomnessHandler resolves pending steps when the randomness coordinator
// delivers a word. Deliveries for unknown or already consumed request ids are
// ignored so that replays and superseded requests never move balances twice.
type RandomnessHandler struct {
	*Keeper
}

func NewRandomnessHandler(keeper *Keeper) *RandomnessHandler {
	return &RandomnessHandler{Keeper: keeper}
}

func (h *RandomnessHandler) Handle(ctx context.Context, requestID string, randomWord uint64) error {
	vaultID, found, err := h.GetPendingRequest(ctx, requestID)
	if err != nil {
		return errors.Wrap(err, "unable to look up randomness correlation")
	}
	if !found {
		// Not a request of ours, or one that has already been resolved.
		h.logger.Debug("ignoring unknown randomness delivery", "request_id", requestID)
		return nil
	}

	if err := h.ConsumePendingRequest(ctx, requestID, vaultID); err != nil {
		return errors.Wrap(err, "unable to consume randomness correlation")
	}

	vault, found, err := h.GetVault(ctx, vaultID)
	if err != nil {
		return errors.Wrap(err, "unable to fetch vault")
	}
	if !found {
		return errors.Wrapf(types.ErrVaultNotFound, "vault %d", vaultID)
	}
	if vault.State != types.VaultStateActive {
		return errors.Wrapf(types.ErrInvalidVaultState, "vault is %s", vault.State)
	}

	params, err := h.GetParams(ctx)
	if err != nil {
		return errors.Wrap(err, "unable to fetch params")
	}

	// Fair coin: odd words step toward the owner, even words toward the pool.
	favorable := randomWord%2 == 1

	one := math.OneInt()
	var pool math.Int
	if favorable {
		vault.VMortyBalance, err = vault.VMortyBalance.SafeAdd(one)
		if err != nil {
			return errors.Wrap(err, "unable to update vault balance")
		}
		pool, err = h.AdjustBuyPoolBalance(ctx, one.Neg())
		if err != nil {
			return errors.Wrap(err, "unable to debit buy pool")
		}
	} else {
		vault.VMortyBalance, err = vault.VMortyBalance.SafeSub(one)
		if err != nil {
			return errors.Wrap(err, "unable to update vault balance")
		}
		if vault.VMortyBalance.IsNegative() {
			return errors.Wrapf(types.ErrInsufficientVaultBalance, "vault %d", vaultID)
		}
		pool, err = h.AdjustBuyPoolBalance(ctx, one)
		if err != nil {
			return errors.Wrap(err, "unable to credit buy pool")
		}
	}

	if err := h.SetVault(ctx, vaultID, vault); err != nil {
		return errors.Wrap(err, "unable to store vault")
	}

	if err := h.UpdateStats(ctx, func(stats *types.Stats) {
		stats.TotalStepsResolved++
	}); err != nil {
		return errors.Wrap(err, "unable to update stats")
	}

	if err := h.event.EventManager(ctx).Emit(ctx, &types.EventStepResolved{
		VaultId:        vaultID,
		RequestId:      requestID,
		InFavorOfOwner: favorable,
		VaultBalance:   vault.VMortyBalance,
		PoolBalance:    pool,
	}); err != nil {
		return errors.Wrap(err, "unable to emit step resolved event")
	}

	return h.settleIfAbsorbed(ctx, vaultID, vault, params)
}

// settleIfAbsorbed moves a vault into a terminal settlement state when its
// balance reaches either absorbing boundary of the walk.
func (h *RandomnessHandler) settleIfAbsorbed(ctx context.Context, vaultID uint64, vault types.Vault, params types.Params) error {
	var next types.VaultState
	switch {
	case vault.VMortyBalance.Equal(params.InitialVMortyBalance):
		next = types.VaultStateSettledForOwner
	case vault.VMortyBalance.IsZero():
		next = types.VaultStateSettledAgainstOwner
	default:
		return nil
	}

	if err := h.TransitionVault(ctx, vaultID, &vault, next); err != nil {
		return errors.Wrap(err, "unable to settle vault")
	}

	if err := h.UpdateStats(ctx, func(stats *types.Stats) {
		if next == types.VaultStateSettledForOwner {
			stats.TotalSettledForOwner++
		} else {
			stats.TotalSettledAgainstOwner++
		}
	}); err != nil {
		return errors.Wrap(err, "unable to update stats")
	}

	return h.event.EventManager(ctx).Emit(ctx, &types.EventVaultSettled{
		VaultId: vaultID,
		State:   next.String(),
	})
}
