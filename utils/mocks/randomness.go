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

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/google/uuid"

	"github.com/FrankieIsLost/Mortys/types"
)

var _ types.RandomnessCoordinator = &RandomnessCoordinator{}

// RandomnessDelivery is the inbound half of the asynchronous randomness
// protocol, satisfied by the module's handler.
type RandomnessDelivery interface {
	Handle(ctx context.Context, requestID string, randomWord uint64) error
}

// RandomnessCoordinator simulates an external verifiable randomness service.
// Requests are assigned fresh ids and answered only when the test calls
// CallBackWithRandomness, mirroring the asynchronous production flow.
type RandomnessCoordinator struct {
	Handler RandomnessDelivery

	Requests []string
	Fees     sdk.Coins
}

func NewRandomnessCoordinator() *RandomnessCoordinator {
	return &RandomnessCoordinator{}
}

func (c *RandomnessCoordinator) RequestRandomness(_ context.Context, _ string, fee sdk.Coin) (string, error) {
	requestID := uuid.NewString()
	c.Requests = append(c.Requests, requestID)
	c.Fees = c.Fees.Add(fee)
	return requestID, nil
}

// CallBackWithRandomness delivers a random word for a previous request.
func (c *RandomnessCoordinator) CallBackWithRandomness(ctx context.Context, requestID string, randomWord uint64) error {
	if c.Handler == nil {
		return fmt.Errorf("no randomness handler installed")
	}
	return c.Handler.Handle(ctx, requestID, randomWord)
}

// LastRequestID returns the id of the most recent request.
func (c *RandomnessCoordinator) LastRequestID() string {
	if len(c.Requests) == 0 {
		return ""
	}
	return c.Requests[len(c.Requests)-1]
}
