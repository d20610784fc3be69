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
	"time"

	"cosmossdk.io/math"
)

// VaultState is the lifecycle state of a vault. The ordinal values are part of
// the stored representation and must not be reordered.
type VaultState int32

const (
	VaultStateInactive VaultState = iota
	VaultStateActive
	VaultStateSettledForOwner
	VaultStateSettledAgainstOwner
	VaultStateRedeemed
)

func (s VaultState) String() string {
	switch s {
	case VaultStateInactive:
		return "inactive"
	case VaultStateActive:
		return "active"
	case VaultStateSettledForOwner:
		return "settled_for_owner"
	case VaultStateSettledAgainstOwner:
		return "settled_against_owner"
	case VaultStateRedeemed:
		return "redeemed"
	default:
		return "unknown"
	}
}

// validTransitions is the closed set of allowed lifecycle moves. Anything not
// listed here is rejected, which makes every transition irreversible.
var validTransitions = map[VaultState][]VaultState{
	VaultStateInactive:            {VaultStateActive, VaultStateSettledForOwner, VaultStateSettledAgainstOwner},
	VaultStateActive:              {VaultStateSettledForOwner, VaultStateSettledAgainstOwner},
	VaultStateSettledForOwner:     {VaultStateRedeemed},
	VaultStateSettledAgainstOwner: {VaultStateRedeemed},
	VaultStateRedeemed:            {},
}

// CanTransitionTo reports whether the state machine allows moving from s to next.
func (s VaultState) CanTransitionTo(next VaultState) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the vault has settled or been redeemed. Terminal
// vaults accept no further minting, stepping or collateral swaps.
func (s VaultState) IsTerminal() bool {
	switch s {
	case VaultStateSettledForOwner, VaultStateSettledAgainstOwner, VaultStateRedeemed:
		return true
	default:
		return false
	}
}

// Vault pairs one custodied collateral asset with a wager-able virtual balance
// and its lifecycle state. The record persists after redemption as a
// historical artifact.
type Vault struct {
	Owner         string     `json:"owner"`
	Collection    string     `json:"collection"`
	NftId         string     `json:"nft_id"`
	VMortyBalance math.Int   `json:"vmorty_balance"`
	State         VaultState `json:"state"`
	LastStepTime  time.Time  `json:"last_step_time"`
}

// CollateralKey identifies one unique asset instance eligible as collateral.
type CollateralKey struct {
	Collection string `json:"collection"`
	NftId      string `json:"nft_id"`
}
