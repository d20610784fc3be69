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
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Params is the system configuration, fixed at genesis for the lifetime of
// the deployment.
type Params struct {
	// AllowedCollateral is the accepted collateral class for the default
	// allow-list membership policy.
	AllowedCollateral []CollateralKey `json:"allowed_collateral"`
	// InitialVMortyBalance is the virtual balance assigned to every new vault
	// and the upper absorbing boundary of the walk.
	InitialVMortyBalance math.Int `json:"initial_vmorty_balance"`
	// StepIntervalSeconds is the cooldown between randomness requests on the
	// same vault.
	StepIntervalSeconds int64 `json:"step_interval_seconds"`
	// InitialExchangeRate prices claim tokens while the buy pool is empty.
	InitialExchangeRate math.LegacyDec `json:"initial_exchange_rate"`
	// RandomnessKeyHash routes randomness requests to the coordinator.
	RandomnessKeyHash string `json:"randomness_key_hash"`
	// RandomnessFee is attached to every randomness request.
	RandomnessFee sdk.Coin `json:"randomness_fee"`
}

func DefaultParams() Params {
	return Params{
		InitialVMortyBalance: math.NewInt(10),
		StepIntervalSeconds:  3600,
		InitialExchangeRate:  math.LegacyNewDec(100),
		RandomnessFee:        sdk.NewCoin("ulink", math.NewInt(100000)),
	}
}

func (p Params) Validate() error {
	if p.InitialVMortyBalance.IsNil() || !p.InitialVMortyBalance.IsPositive() {
		return fmt.Errorf("initial vmorty balance must be positive")
	}
	if p.StepIntervalSeconds < 0 {
		return fmt.Errorf("step interval cannot be negative")
	}
	if p.InitialExchangeRate.IsNil() || !p.InitialExchangeRate.IsPositive() {
		return fmt.Errorf("initial exchange rate must be positive")
	}
	for _, key := range p.AllowedCollateral {
		if key.Collection == "" || key.NftId == "" {
			return fmt.Errorf("allowed collateral entries must name a collection and an id")
		}
	}
	return nil
}
