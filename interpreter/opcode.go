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

import "fmt"

// OpCode is a single instruction of the executed byte code. The values match
// the wire encoding of the instruction stream.
type OpCode byte

const (
	STOP OpCode = 0x00
	ADD  OpCode = 0x01
	MUL  OpCode = 0x02
	SUB  OpCode = 0x03
	DIV  OpCode = 0x04
	MOD  OpCode = 0x06

	LT     OpCode = 0x10
	GT     OpCode = 0x11
	EQ     OpCode = 0x14
	ISZERO OpCode = 0x15
	AND    OpCode = 0x16
	OR     OpCode = 0x17
	XOR    OpCode = 0x18
	NOT    OpCode = 0x19
	SHL    OpCode = 0x1B
	SHR    OpCode = 0x1C

	ADDRESS   OpCode = 0x30
	CALLER    OpCode = 0x33
	CALLVALUE OpCode = 0x34

	POP      OpCode = 0x50
	MLOAD    OpCode = 0x51
	MSTORE   OpCode = 0x52
	MSTORE8  OpCode = 0x53
	JUMP     OpCode = 0x56
	JUMPI    OpCode = 0x57
	PC       OpCode = 0x58
	MSIZE    OpCode = 0x59
	GAS      OpCode = 0x5A
	JUMPDEST OpCode = 0x5B

	PUSH0  OpCode = 0x5F
	PUSH1  OpCode = 0x60
	PUSH2  OpCode = 0x61
	PUSH32 OpCode = 0x7F

	DUP1  OpCode = 0x80
	DUP16 OpCode = 0x8F

	SWAP1  OpCode = 0x90
	SWAP16 OpCode = 0x9F

	LOG0 OpCode = 0xA0
	LOG4 OpCode = 0xA4

	CREATE  OpCode = 0xF0
	RETURN  OpCode = 0xF3
	CREATE2 OpCode = 0xF5
	REVERT  OpCode = 0xFD
	INVALID OpCode = 0xFE
)

var opCodeNames = map[OpCode]string{
	STOP:      "STOP",
	ADD:       "ADD",
	MUL:       "MUL",
	SUB:       "SUB",
	DIV:       "DIV",
	MOD:       "MOD",
	LT:        "LT",
	GT:        "GT",
	EQ:        "EQ",
	ISZERO:    "ISZERO",
	AND:       "AND",
	OR:        "OR",
	XOR:       "XOR",
	NOT:       "NOT",
	SHL:       "SHL",
	SHR:       "SHR",
	ADDRESS:   "ADDRESS",
	CALLER:    "CALLER",
	CALLVALUE: "CALLVALUE",
	POP:       "POP",
	MLOAD:     "MLOAD",
	MSTORE:    "MSTORE",
	MSTORE8:   "MSTORE8",
	JUMP:      "JUMP",
	JUMPI:     "JUMPI",
	PC:        "PC",
	MSIZE:     "MSIZE",
	GAS:       "GAS",
	JUMPDEST:  "JUMPDEST",
	PUSH0:     "PUSH0",
	CREATE:    "CREATE",
	RETURN:    "RETURN",
	CREATE2:   "CREATE2",
	REVERT:    "REVERT",
	INVALID:   "INVALID",
}

func (op OpCode) String() string {
	if name, found := opCodeNames[op]; found {
		return name
	}
	switch {
	case PUSH1 <= op && op <= PUSH32:
		return fmt.Sprintf("PUSH%d", op-PUSH1+1)
	case DUP1 <= op && op <= DUP16:
		return fmt.Sprintf("DUP%d", op-DUP1+1)
	case SWAP1 <= op && op <= SWAP16:
		return fmt.Sprintf("SWAP%d", op-SWAP1+1)
	case LOG0 <= op && op <= LOG4:
		return fmt.Sprintf("LOG%d", op-LOG0)
	}
	return fmt.Sprintf("op(0x%02X)", byte(op))
}
