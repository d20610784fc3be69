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

	"github.com/FrankieIsLost/Mortys/types"
)

func (k *Keeper) InitGenesis(ctx context.Context, genesis types.GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return errors.Wrap(err, "invalid genesis state")
	}

	if err := k.Params.Set(ctx, genesis.Params); err != nil {
		return errors.Wrap(err, "unable to set genesis params")
	}
	if err := k.NextVaultID.Set(ctx, genesis.NextVaultId); err != nil {
		return errors.Wrap(err, "unable to set genesis vault id counter")
	}
	for _, entry := range genesis.Vaults {
		if err := k.Vaults.Set(ctx, entry.Id, entry.Vault); err != nil {
			return errors.Wrapf(err, "unable to set genesis vault %d", entry.Id)
		}
	}
	if err := k.BuyPoolBalance.Set(ctx, genesis.BuyPoolBalance); err != nil {
		return errors.Wrap(err, "unable to set genesis buy pool balance")
	}
	for _, request := range genesis.PendingRequests {
		if err := k.RequestVaults.Set(ctx, request.RequestId, request.VaultId); err != nil {
			return errors.Wrapf(err, "unable to set genesis request %s", request.RequestId)
		}
		if err := k.VaultRequests.Set(ctx, request.VaultId, request.RequestId); err != nil {
			return errors.Wrapf(err, "unable to set genesis request %s", request.RequestId)
		}
	}
	if err := k.Stats.Set(ctx, genesis.Stats); err != nil {
		return errors.Wrap(err, "unable to set genesis stats")
	}

	return nil
}

func (k *Keeper) ExportGenesis(ctx context.Context) (types.GenesisState, error) {
	params, err := k.GetParams(ctx)
	if err != nil {
		return types.GenesisState{}, errors.Wrap(err, "unable to export params")
	}

	nextID, err := k.NextVaultID.Get(ctx)
	if err != nil {
		nextID = types.InitialVaultID
	}

	var vaults []types.GenesisVault
	err = k.IterateVaults(ctx, func(id uint64, vault types.Vault) (bool, error) {
		vaults = append(vaults, types.GenesisVault{Id: id, Vault: vault})
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, errors.Wrap(err, "unable to export vaults")
	}

	pool, err := k.GetBuyPoolBalance(ctx)
	if err != nil {
		return types.GenesisState{}, errors.Wrap(err, "unable to export buy pool balance")
	}

	var requests []types.GenesisRequest
	err = k.IteratePendingRequests(ctx, func(requestID string, vaultID uint64) (bool, error) {
		requests = append(requests, types.GenesisRequest{RequestId: requestID, VaultId: vaultID})
		return false, nil
	})
	if err != nil {
		return types.GenesisState{}, errors.Wrap(err, "unable to export pending requests")
	}

	stats, err := k.GetStats(ctx)
	if err != nil {
		return types.GenesisState{}, errors.Wrap(err, "unable to export stats")
	}

	return types.GenesisState{
		Params:          params,
		NextVaultId:     nextID,
		Vaults:          vaults,
		BuyPoolBalance:  pool,
		PendingRequests: requests,
		Stats:           stats,
	}, nil
}
