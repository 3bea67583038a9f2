// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package interpreter

import "github.com/lineuve/besu/vm"

// Execution violations terminating the current frame. They travel through the
// generic exceptional-halt channel; only the halt reasons declared in the vm
// package are part of the public result surface.
const (
	errStackOverflow  = vm.ConstError("stack overflow")
	errStackUnderflow = vm.ConstError("stack underflow")
	errInvalidJump    = vm.ConstError("invalid jump destination")
	errInvalidOpCode  = vm.ConstError("invalid instruction")
	errOverflow       = vm.ConstError("operand overflows uint64")
)
