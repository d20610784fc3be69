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

package types

import (
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
)

const ModuleName = "morty"

// InitialVaultID is the identifier assigned to the first vault ever created.
const InitialVaultID uint64 = 1

// ModuleAddress is the account that custodies collateral assets and backs the
// claim token denom.
var ModuleAddress sdk.AccAddress = authtypes.NewModuleAddress(ModuleName)

var (
	ParamsKey          = []byte("morty/params")
	StatsKey           = []byte("morty/stats")
	NextVaultIDKey     = []byte("morty/next_vault_id")
	VaultPrefix        = []byte("morty/vault/")
	BuyPoolBalanceKey  = []byte("morty/buy_pool_balance")
	RequestVaultPrefix = []byte("morty/request_vault/")
	VaultRequestPrefix = []byte("morty/vault_request/")
)
