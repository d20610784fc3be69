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
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"

	"github.com/FrankieIsLost/Mortys/types"
)

// GetParams returns the configured module parameters. When no parameters have
// been stored yet the zero-value configuration is returned without error.
func (k *Keeper) GetParams(ctx context.Context) (types.Params, error) {
	params, err := k.Params.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Params{}, nil
		}
		return types.Params{}, err
	}

	return params, nil
}

// SetParams persists the supplied params to state.
func (k *Keeper) SetParams(ctx context.Context, params types.Params) error {
	return k.Params.Set(ctx, params)
}

// GetStats fetches the aggregate activity counters, or a zero-value instance
// when they have not been initialised yet.
func (k *Keeper) GetStats(ctx context.Context) (types.Stats, error) {
	stats, err := k.Stats.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Stats{}, nil
		}
		return types.Stats{}, err
	}

	return stats, nil
}

// SetStats stores the provided aggregate counters.
func (k *Keeper) SetStats(ctx context.Context, stats types.Stats) error {
	return k.Stats.Set(ctx, stats)
}

// UpdateStats loads the counters, applies the mutation and stores the result.
func (k *Keeper) UpdateStats(ctx context.Context, mutate func(*types.Stats)) error {
	stats, err := k.GetStats(ctx)
	if err != nil {
		return err
	}

	mutate(&stats)

	return k.SetStats(ctx, stats)
}

// NextVaultIDValue allocates and returns the next vault id. The first vault
// ever created receives id 1.
func (k *Keeper) NextVaultIDValue(ctx context.Context) (uint64, error) {
	id, err := k.NextVaultID.Get(ctx)
	if err != nil {
		if !errors.Is(err, collections.ErrNotFound) {
			return 0, err
		}
		id = types.InitialVaultID
	}

	if err := k.NextVaultID.Set(ctx, id+1); err != nil {
		return 0, err
	}

	return id, nil
}

// GetVault returns the vault for the supplied id. The boolean flag indicates
// whether the vault existed in state.
func (k *Keeper) GetVault(ctx context.Context, id uint64) (types.Vault, bool, error) {
	vault, err := k.Vaults.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Vault{}, false, nil
		}
		return types.Vault{}, false, err
	}

	return vault, true, nil
}

// SetVault writes the provided vault record to state.
func (k *Keeper) SetVault(ctx context.Context, id uint64, vault types.Vault) error {
	return k.Vaults.Set(ctx, id, vault)
}

// IterateVaults walks all vaults in id order. The callback returns true to
// stop iteration early.
func (k *Keeper) IterateVaults(ctx context.Context, fn func(id uint64, vault types.Vault) (stop bool, err error)) error {
	iterator, err := k.Vaults.Iterate(ctx, nil)
	if err != nil {
		return err
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		id, err := iterator.Key()
		if err != nil {
			return err
		}
		vault, err := iterator.Value()
		if err != nil {
			return err
		}

		stop, err := fn(id, vault)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}

	return nil
}

// TransitionVault moves a vault to the next lifecycle state, rejecting any
// move that is not in the transition table.
func (k *Keeper) TransitionVault(ctx context.Context, id uint64, vault *types.Vault, next types.VaultState) error {
	if !vault.State.CanTransitionTo(next) {
		return types.ErrInvalidTransition.Wrapf("%s -> %s", vault.State, next)
	}

	vault.State = next

	return k.SetVault(ctx, id, *vault)
}

// GetBuyPoolBalance returns the aggregate pool virtual balance, zero when the
// pool has never been funded.
func (k *Keeper) GetBuyPoolBalance(ctx context.Context) (math.Int, error) {
	balance, err := k.BuyPoolBalance.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return math.ZeroInt(), nil
		}
		return math.ZeroInt(), err
	}

	return balance, nil
}

// AdjustBuyPoolBalance applies a signed transfer to the pool's virtual
// balance. It is the only mutation entry point for the pool and is called by
// minting and by step resolution; it never touches the claim supply. Driving
// the balance negative is an invariant violation and fails hard.
func (k *Keeper) AdjustBuyPoolBalance(ctx context.Context, delta math.Int) (math.Int, error) {
	balance, err := k.GetBuyPoolBalance(ctx)
	if err != nil {
		return math.ZeroInt(), err
	}

	updated, err := balance.SafeAdd(delta)
	if err != nil {
		return math.ZeroInt(), err
	}
	if updated.IsNegative() {
		return math.ZeroInt(), types.ErrInsufficientVaultBalance.Wrap("buy pool balance cannot be negative")
	}

	if err := k.BuyPoolBalance.Set(ctx, updated); err != nil {
		return math.ZeroInt(), err
	}

	return updated, nil
}

// GetPendingRequest returns the vault correlated to an outstanding randomness
// request id, if any.
func (k *Keeper) GetPendingRequest(ctx context.Context, requestID string) (uint64, bool, error) {
	vaultID, err := k.RequestVaults.Get(ctx, requestID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}

	return vaultID, true, nil
}

// GetVaultRequest returns the outstanding randomness request id for a vault,
// if one exists.
func (k *Keeper) GetVaultRequest(ctx context.Context, vaultID uint64) (string, bool, error) {
	requestID, err := k.VaultRequests.Get(ctx, vaultID)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return "", false, nil
		}
		return "", false, err
	}

	return requestID, true, nil
}

// SetPendingRequest records the correlation for a newly submitted randomness
// request. Any previous outstanding request for the vault is superseded: its
// correlation is removed so a late callback becomes a no-op.
func (k *Keeper) SetPendingRequest(ctx context.Context, requestID string, vaultID uint64) error {
	stale, found, err := k.GetVaultRequest(ctx, vaultID)
	if err != nil {
		return err
	}
	if found {
		if err := k.RequestVaults.Remove(ctx, stale); err != nil {
			return err
		}
		k.logger.Info("superseded stale randomness request", "vault_id", vaultID, "request_id", stale)
	}

	if err := k.RequestVaults.Set(ctx, requestID, vaultID); err != nil {
		return err
	}

	return k.VaultRequests.Set(ctx, vaultID, requestID)
}

// ConsumePendingRequest deletes the correlation for a resolved request,
// enforcing exactly-once semantics.
func (k *Keeper) ConsumePendingRequest(ctx context.Context, requestID string, vaultID uint64) error {
	if err := k.RequestVaults.Remove(ctx, requestID); err != nil {
		return err
	}

	current, found, err := k.GetVaultRequest(ctx, vaultID)
	if err != nil {
		return err
	}
	if found && current == requestID {
		return k.VaultRequests.Remove(ctx, vaultID)
	}

	return nil
}

// IteratePendingRequests walks all open randomness correlations.
func (k *Keeper) IteratePendingRequests(ctx context.Context, fn func(requestID string, vaultID uint64) (stop bool, err error)) error {
	iterator, err := k.RequestVaults.Iterate(ctx, nil)
	if err != nil {
		return err
	}
	defer iterator.Close()

	for ; iterator.Valid(); iterator.Next() {
		requestID, err := iterator.Key()
		if err != nil {
			return err
		}
		vaultID, err := iterator.Value()
		if err != nil {
			return err
		}

		stop, err := fn(requestID, vaultID)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}

	return nil
}

// GetClaimSupply returns the current total claim token supply.
func (k *Keeper) GetClaimSupply(ctx context.Context) math.Int {
	return k.bank.GetSupply(ctx, k.denom).Amount
}
