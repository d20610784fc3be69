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
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/bech32"

	"github.com/FrankieIsLost/Mortys/types"
	"github.com/FrankieIsLost/Mortys/utils"
)

var _ types.BankKeeper = BankKeeper{}

// BankKeeper is an in-memory bank. Balances are keyed by bech32 address so
// tests can assert on them directly.
type BankKeeper struct {
	Balances map[string]sdk.Coins
	Supplies map[string]sdk.Coin
}

func NewBankKeeper() *BankKeeper {
	return &BankKeeper{
		Balances: make(map[string]sdk.Coins),
		Supplies: make(map[string]sdk.Coin),
	}
}

func (b BankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.Balances[encode(addr)].AmountOf(denom))
}

func (b BankKeeper) GetSupply(_ context.Context, denom string) sdk.Coin {
	supply, ok := b.Supplies[denom]
	if !ok {
		return sdk.NewCoin(denom, math.ZeroInt())
	}
	return supply
}

func (b BankKeeper) SendCoins(_ context.Context, from, to sdk.AccAddress, amt sdk.Coins) error {
	fromKey, toKey := encode(from), encode(to)

	balance, negative := b.Balances[fromKey].SafeSub(amt...)
	if negative {
		return fmt.Errorf("%s has insufficient balance to send %s", fromKey, amt)
	}

	b.Balances[fromKey] = balance
	b.Balances[toKey] = b.Balances[toKey].Add(amt...)

	return nil
}

func (b BankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	moduleKey := encode(types.ModuleAddress)
	if moduleName != types.ModuleName {
		return fmt.Errorf("unknown module %s", moduleName)
	}

	b.Balances[moduleKey] = b.Balances[moduleKey].Add(amt...)
	for _, coin := range amt {
		b.Supplies[coin.Denom] = b.GetSupply(context.Background(), coin.Denom).Add(coin)
	}

	return nil
}

func (b BankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	moduleKey := encode(types.ModuleAddress)
	if moduleName != types.ModuleName {
		return fmt.Errorf("unknown module %s", moduleName)
	}

	balance, negative := b.Balances[moduleKey].SafeSub(amt...)
	if negative {
		return fmt.Errorf("module has insufficient balance to burn %s", amt)
	}

	b.Balances[moduleKey] = balance
	for _, coin := range amt {
		supply := b.GetSupply(context.Background(), coin.Denom).Sub(coin)
		b.Supplies[coin.Denom] = supply
	}

	return nil
}

func encode(addr sdk.AccAddress) string {
	encoded, err := bech32.ConvertAndEncode(utils.Bech32Prefix, addr)
	if err != nil {
		panic(err)
	}
	return encoded
}
