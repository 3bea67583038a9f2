// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package vm

// ConstError is an error type for constant error messages that can be
// declared on package level as constants. This addresses the issue
// described in https://dave.cheney.net/2016/04/07/constant-errors
type ConstError string

func (e ConstError) Error() string {
	return string(e)
}

// Halt reasons recorded on an operation result when a frame terminates
// exceptionally. Soft failures never carry a halt reason; they are signaled
// exclusively through an all-zero stack result.
const (
	ErrCodeTooLarge           = ConstError("code too large")
	ErrInsufficientGas        = ConstError("insufficient gas")
	ErrStaticContextViolation = ConstError("static context violation")
)
