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

// staticGasPrices holds the revision-independent base fee of every supported
// instruction. Creation costs are deliberately absent here; they are obtained
// from the injected gas calculator.
var staticGasPrices = [256]vm.Gas{}

func init() {
	for i := 0; i < 256; i++ {
		staticGasPrices[i] = getStaticGasPriceInternal(OpCode(i))
	}
}

func getStaticGasPriceInternal(op OpCode) vm.Gas {
	if PUSH1 <= op && op <= PUSH32 {
		return 3
	}
	if DUP1 <= op && op <= DUP16 {
		return 3
	}
	if SWAP1 <= op && op <= SWAP16 {
		return 3
	}
	if LOG0 <= op && op <= LOG4 {
		// plus the per-byte data fee charged by the instruction itself
		return 375 * vm.Gas(int(op)-int(LOG0)+1)
	}

	switch op {
	case JUMPDEST:
		return 1
	case PUSH0, ADDRESS, CALLER, CALLVALUE, PC, MSIZE, GAS, POP:
		return 2
	case ADD, SUB, LT, GT, EQ, ISZERO, AND, OR, XOR, NOT, SHL, SHR,
		MLOAD, MSTORE, MSTORE8:
		return 3
	case MUL, DIV, MOD:
		return 5
	case JUMP:
		return 8
	case JUMPI:
		return 10
	}
	// STOP, RETURN, REVERT, CREATE, CREATE2, INVALID
	return 0
}
