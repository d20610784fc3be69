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
	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/FrankieIsLost/Mortys/types"
)

type Keeper struct {
	// denom is the fungible claim token minted against the buy pool.
	denom string

	logger  log.Logger
	header  header.Service
	event   event.Service
	address address.Codec

	bank       types.BankKeeper
	collateral types.CollateralKeeper
	randomness types.RandomnessCoordinator
	class      types.ClassChecker

	Params         collections.Item[types.Params]
	Stats          collections.Item[types.Stats]
	NextVaultID    collections.Item[uint64]
	Vaults         collections.Map[uint64, types.Vault]
	BuyPoolBalance collections.Item[math.Int]

	// RequestVaults correlates an outstanding randomness request to its vault;
	// VaultRequests is the inverse, used to supersede stale requests.
	RequestVaults collections.Map[string, uint64]
	VaultRequests collections.Map[uint64, string]
}

func NewKeeper(
	denom string,
	store store.KVStoreService,
	logger log.Logger,
	header header.Service,
	event event.Service,
	address address.Codec,
	bank types.BankKeeper,
	collateral types.CollateralKeeper,
	randomness types.RandomnessCoordinator,
) *Keeper {
	builder := collections.NewSchemaBuilder(store)

	keeper := &Keeper{
		denom: denom,

		logger:  logger.With("module", types.ModuleName),
		header:  header,
		event:   event,
		address: address,

		bank:       bank,
		collateral: collateral,
		randomness: randomness,

		Params:         collections.NewItem(builder, types.ParamsKey, "params", types.CollJSONValue[types.Params]("params")),
		Stats:          collections.NewItem(builder, types.StatsKey, "stats", types.CollJSONValue[types.Stats]("stats")),
		NextVaultID:    collections.NewItem(builder, types.NextVaultIDKey, "next_vault_id", collections.Uint64Value),
		Vaults:         collections.NewMap(builder, types.VaultPrefix, "vaults", collections.Uint64Key, types.CollJSONValue[types.Vault]("vault")),
		BuyPoolBalance: collections.NewItem(builder, types.BuyPoolBalanceKey, "buy_pool_balance", sdk.IntValue),
		RequestVaults:  collections.NewMap(builder, types.RequestVaultPrefix, "request_vaults", collections.StringKey, collections.Uint64Value),
		VaultRequests:  collections.NewMap(builder, types.VaultRequestPrefix, "vault_requests", collections.Uint64Key, collections.StringValue),
	}
	keeper.class = NewAllowlistClass(keeper)

	_, err := builder.Build()
	if err != nil {
		panic(err)
	}

	return keeper
}

// SetBankKeeper overwrites the bank keeper used in this module.
func (k *Keeper) SetBankKeeper(bank types.BankKeeper) {
	k.bank = bank
}

// SetClassChecker overrides the collateral class membership policy. The
// default policy is the params-backed allow-list.
func (k *Keeper) SetClassChecker(class types.ClassChecker) {
	k.class = class
}

// GetDenom is a utility that returns the configured claim token denomination.
func (k *Keeper) GetDenom() string {
	return k.denom
}
