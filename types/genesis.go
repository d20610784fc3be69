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
	"fmt"

	"cosmossdk.io/math"
)

// GenesisVault pairs a vault id with its record for import/export.
type GenesisVault struct {
	Id    uint64 `json:"id"`
	Vault Vault  `json:"vault"`
}

// GenesisRequest is an open randomness correlation at export time.
type GenesisRequest struct {
	RequestId string `json:"request_id"`
	VaultId   uint64 `json:"vault_id"`
}

type GenesisState struct {
	Params          Params           `json:"params"`
	NextVaultId     uint64           `json:"next_vault_id"`
	Vaults          []GenesisVault   `json:"vaults"`
	BuyPoolBalance  math.Int         `json:"buy_pool_balance"`
	PendingRequests []GenesisRequest `json:"pending_requests"`
	Stats           Stats            `json:"stats"`
}

func DefaultGenesisState() GenesisState {
	return GenesisState{
		Params:         DefaultParams(),
		NextVaultId:    InitialVaultID,
		BuyPoolBalance: math.ZeroInt(),
	}
}

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	if gs.NextVaultId == 0 {
		return fmt.Errorf("next vault id must be at least 1")
	}
	if gs.BuyPoolBalance.IsNil() || gs.BuyPoolBalance.IsNegative() {
		return fmt.Errorf("buy pool balance cannot be negative")
	}

	seen := make(map[uint64]bool)
	for _, entry := range gs.Vaults {
		if entry.Id == 0 || entry.Id >= gs.NextVaultId {
			return fmt.Errorf("vault id %d outside allocated range", entry.Id)
		}
		if seen[entry.Id] {
			return fmt.Errorf("duplicate vault id %d", entry.Id)
		}
		seen[entry.Id] = true

		balance := entry.Vault.VMortyBalance
		if balance.IsNil() || balance.IsNegative() || balance.GT(gs.Params.InitialVMortyBalance) {
			return fmt.Errorf("vault %d balance outside [0, %s]", entry.Id, gs.Params.InitialVMortyBalance)
		}
	}

	for _, request := range gs.PendingRequests {
		if request.RequestId == "" {
			return fmt.Errorf("pending request id cannot be empty")
		}
		if !seen[request.VaultId] {
			return fmt.Errorf("pending request references unknown vault %d", request.VaultId)
		}
	}

	return nil
}
