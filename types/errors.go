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

import "cosmossdk.io/errors"

var (
	ErrInvalidRequest           = errors.Register(ModuleName, 2, "invalid request")
	ErrNotClassMember           = errors.Register(ModuleName, 3, "not a class member")
	ErrVaultNotFound            = errors.Register(ModuleName, 4, "vault not found")
	ErrUnauthorized             = errors.Register(ModuleName, 5, "caller is not authorized")
	ErrInvalidVaultState        = errors.Register(ModuleName, 6, "invalid vault state")
	ErrInsufficientVaultBalance = errors.Register(ModuleName, 7, "vault balance cannot be negative")
	ErrStepCooldownActive       = errors.Register(ModuleName, 8, "can't take another step yet")
	ErrNotSettledForOwner       = errors.Register(ModuleName, 9, "vault has not settled for owner")
	ErrNotSettledAgainstOwner   = errors.Register(ModuleName, 10, "vault has not settled against owner")
	ErrInsufficientClaimBalance = errors.Register(ModuleName, 11, "insufficient claim token balance")
	ErrInvalidTransition        = errors.Register(ModuleName, 12, "vault state transition not allowed")
)
