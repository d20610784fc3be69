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
	"time"

	"cosmossdk.io/math"
)

// The event structs are emitted through the core event service, which accepts
// legacy proto messages. They carry the three legacy methods directly since
// this module defines its types without a codegen step.

type EventVaultCreated struct {
	VaultId        uint64   `json:"vault_id"`
	Owner          string   `json:"owner"`
	Collection     string   `json:"collection"`
	NftId          string   `json:"nft_id"`
	InitialBalance math.Int `json:"initial_balance"`
}

func (e *EventVaultCreated) Reset()         {}
func (e *EventVaultCreated) String() string { return fmt.Sprintf("%+v", *e) }
func (e *EventVaultCreated) ProtoMessage()  {}

type EventCollateralReplaced struct {
	VaultId       uint64 `json:"vault_id"`
	OldCollection string `json:"old_collection"`
	OldNftId      string `json:"old_nft_id"`
	NewCollection string `json:"new_collection"`
	NewNftId      string `json:"new_nft_id"`
}

func (e *EventCollateralReplaced) Reset()         {}
func (e *EventCollateralReplaced) String() string { return fmt.Sprintf("%+v", *e) }
func (e *EventCollateralReplaced) ProtoMessage()  {}

type EventSharesMinted struct {
	VaultId           uint64   `json:"vault_id"`
	Owner             string   `json:"owner"`
	Amount            math.Int `json:"amount"`
	ClaimTokensMinted math.Int `json:"claim_tokens_minted"`
}

func (e *EventSharesMinted) Reset()         {}
func (e *EventSharesMinted) String() string { return fmt.Sprintf("%+v", *e) }
func (e *EventSharesMinted) ProtoMessage()  {}

type EventStepRequested struct {
	VaultId   uint64    `json:"vault_id"`
	RequestId string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

func (e *EventStepRequested) Reset()         {}
func (e *EventStepRequested) String() string { return fmt.Sprintf("%+v", *e) }
func (e *EventStepRequested) ProtoMessage()  {}

type EventStepResolved struct {
	VaultId        uint64   `json:"vault_id"`
	RequestId      string   `json:"request_id"`
	InFavorOfOwner bool     `json:"in_favor_of_owner"`
	VaultBalance   math.Int `json:"vault_balance"`
	PoolBalance    math.Int `json:"pool_balance"`
}

func (e *EventStepResolved) Reset()         {}
func (e *EventStepResolved) String() string { return fmt.Sprintf("%+v", *e) }
func (e *EventStepResolved) ProtoMessage()  {}

type EventVaultSettled struct {
	VaultId uint64 `json:"vault_id"`
	State   string `json:"state"`
}

func (e *EventVaultSettled) Reset()         {}
func (e *EventVaultSettled) String() string { return fmt.Sprintf("%+v", *e) }
func (e *EventVaultSettled) ProtoMessage()  {}

type EventVaultRedeemed struct {
	VaultId           uint64   `json:"vault_id"`
	Redeemer          string   `json:"redeemer"`
	Collection        string   `json:"collection"`
	NftId             string   `json:"nft_id"`
	ClaimTokensBurned math.Int `json:"claim_tokens_burned"`
}

func (e *EventVaultRedeemed) Reset()         {}
func (e *EventVaultRedeemed) String() string { return fmt.Sprintf("%+v", *e) }
func (e *EventVaultRedeemed) ProtoMessage()  {}
