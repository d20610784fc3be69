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

package mocks

import (
	"context"
	"testing"

	"cosmossdk.io/core/event"
	"cosmossdk.io/core/header"
	"cosmossdk.io/log"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/protobuf/runtime/protoiface"

	"github.com/FrankieIsLost/Mortys/keeper"
	"github.com/FrankieIsLost/Mortys/types"
	"github.com/FrankieIsLost/Mortys/utils"
)

// ClaimDenom is the claim token denom used across the test suite.
const ClaimDenom = "umrt"

// HeaderService reads header info out of the sdk context, so tests can shift
// time with WithHeaderInfo.
type HeaderService struct{}

func (HeaderService) GetHeaderInfo(ctx context.Context) header.Info {
	return sdk.UnwrapSDKContext(ctx).HeaderInfo()
}

// EventService records every emitted event for assertions.
type EventService struct {
	Emitted []protoiface.MessageV1
}

func (e *EventService) EventManager(context.Context) event.Manager { return e }

func (e *EventService) Emit(_ context.Context, ev protoiface.MessageV1) error {
	e.Emitted = append(e.Emitted, ev)
	return nil
}

func (e *EventService) EmitKV(_ context.Context, _ string, _ ...event.Attribute) error {
	return nil
}

func (e *EventService) EmitNonConsensus(_ context.Context, ev protoiface.MessageV1) error {
	e.Emitted = append(e.Emitted, ev)
	return nil
}

// MortyKeeper creates a keeper with fresh in-memory dependencies.
func MortyKeeper(t *testing.T) (*keeper.Keeper, sdk.Context) {
	t.Helper()

	k, _, ctx := MortyKeeperWithKeepers(t, NewBankKeeper(), NewCollateralKeeper(), NewRandomnessCoordinator())
	return k, ctx
}

// MortyKeeperWithKeepers creates a keeper wired to the given dependency mocks
// and returns the recording event service alongside it.
func MortyKeeperWithKeepers(
	t *testing.T,
	bank types.BankKeeper,
	collateral types.CollateralKeeper,
	randomness types.RandomnessCoordinator,
) (*keeper.Keeper, *EventService, sdk.Context) {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.ModuleName)
	testCtx := testutil.DefaultContextWithDB(t, key, storetypes.NewTransientStoreKey("transient_"+types.ModuleName))

	events := &EventService{}

	k := keeper.NewKeeper(
		ClaimDenom,
		runtime.NewKVStoreService(key),
		log.NewNopLogger(),
		HeaderService{},
		events,
		address.NewBech32Codec(utils.Bech32Prefix),
		bank,
		collateral,
		randomness,
	)

	return k, events, testCtx.Ctx
}
