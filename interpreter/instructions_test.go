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

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/lineuve/besu/code"
	"github.com/lineuve/besu/gas"
	"github.com/lineuve/besu/state"
	"github.com/lineuve/besu/vm"
)

// runCode executes the given byte sequence as the code of a plain call frame
// under the Shanghai revision and returns the frame for inspection.
func runCode(t *testing.T, program []byte, gasSupply vm.Gas) *Frame {
	t.Helper()
	return runCodeAt(t, vm.R12_Shanghai, program, gasSupply)
}

func runCodeAt(t *testing.T, revision vm.Revision, program []byte, gasSupply vm.Gas) *Frame {
	t.Helper()
	e := &execution{
		revision:   revision,
		calculator: gas.NewCalculator(revision),
		policy:     code.NewPolicy(revision),
		frames:     NewCallStack(),
	}
	f := newFrame(
		KindCall,
		senderAddress,
		vm.Address{0x99},
		vm.Value{},
		gasSupply,
		0,
		false,
		code.NewLegacy(program),
		state.NewWorld().Updater(),
		e.calculator,
	)
	e.steps(f)
	return f
}

func TestSteps_ArithmeticTakesTheTopOperandFirst(t *testing.T) {
	tests := map[string]struct {
		op   OpCode
		a, b uint64
		want uint64
	}{
		"add":           {ADD, 3, 4, 7},
		"sub":           {SUB, 10, 4, 6},
		"mul":           {MUL, 3, 4, 12},
		"div":           {DIV, 12, 4, 3},
		"div by zero":   {DIV, 12, 0, 0},
		"mod":           {MOD, 10, 3, 1},
		"lt true":       {LT, 3, 4, 1},
		"lt false":      {LT, 4, 3, 0},
		"gt true":       {GT, 4, 3, 1},
		"eq false":      {EQ, 4, 3, 0},
		"and":           {AND, 0b1100, 0b1010, 0b1000},
		"or":            {OR, 0b1100, 0b1010, 0b1110},
		"xor":           {XOR, 0b1100, 0b1010, 0b0110},
		"shl":           {SHL, 2, 0b0011, 0b1100},
		"shr":           {SHR, 2, 0b1100, 0b0011},
		"shl saturated": {SHL, 256, 1, 0},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			// The first operand is pushed last so it ends up on top.
			program := []byte{
				byte(PUSH2), byte(test.b >> 8), byte(test.b),
				byte(PUSH2), byte(test.a >> 8), byte(test.a),
				byte(test.op),
				byte(STOP),
			}
			f := runCode(t, program, 100)
			defer f.release()

			if f.state != StateCompletedNormal {
				t.Fatalf("execution ended in state %v, reason %v", f.state, f.haltReason)
			}
			if want, got := 1, f.stack.len(); want != got {
				t.Fatalf("stack size is %d, want %d", got, want)
			}
			if want, got := uint256.NewInt(test.want), f.stack.peek(); want.Cmp(got) != 0 {
				t.Errorf("result is %v, want %v", got, want)
			}
		})
	}
}

func TestSteps_TruncatedPushIsZeroPadded(t *testing.T) {
	f := runCode(t, []byte{byte(PUSH2), 0x01}, 100)
	defer f.release()

	if f.state != StateCompletedNormal {
		t.Fatalf("execution ended in state %v, reason %v", f.state, f.haltReason)
	}
	if want, got := uint256.NewInt(0x0100), f.stack.peek(); want.Cmp(got) != 0 {
		t.Errorf("pushed value is %v, want %v", got, want)
	}
}

func TestSteps_JumpTargetsMustBeJumpdests(t *testing.T) {
	tests := map[string]struct {
		program []byte
		state   FrameState
		reason  error
	}{
		"valid jumpdest": {
			[]byte{byte(PUSH1), 3, byte(JUMP), byte(JUMPDEST), byte(STOP)},
			StateCompletedNormal, nil,
		},
		"jump into push data": {
			// The 0x5B at position 4 is a PUSH1 immediate, not a JUMPDEST.
			[]byte{byte(PUSH1), 4, byte(JUMP), byte(PUSH1), 0x5B, byte(STOP)},
			StateCompletedFailed, errInvalidJump,
		},
		"jump past the code end": {
			[]byte{byte(PUSH1), 200, byte(JUMP)},
			StateCompletedFailed, errInvalidJump,
		},
		"conditional jump not taken": {
			// The destination is popped first, so it is pushed last.
			[]byte{byte(PUSH1), 0, byte(PUSH1), 200, byte(JUMPI), byte(STOP)},
			StateCompletedNormal, nil,
		},
		"conditional jump taken": {
			[]byte{byte(PUSH1), 1, byte(PUSH1), 6, byte(JUMPI), byte(INVALID), byte(JUMPDEST), byte(STOP)},
			StateCompletedNormal, nil,
		},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			f := runCode(t, test.program, 100)
			defer f.release()

			if f.state != test.state {
				t.Fatalf("execution ended in state %v, want %v", f.state, test.state)
			}
			if f.haltReason != test.reason {
				t.Errorf("halt reason is %v, want %v", f.haltReason, test.reason)
			}
		})
	}
}

func TestSteps_StaticCostsAreCharged(t *testing.T) {
	// PUSH1 costs 3, POP costs 2, STOP is free.
	f := runCode(t, []byte{byte(PUSH1), 0, byte(POP), byte(STOP)}, 100)
	defer f.release()

	if f.state != StateCompletedNormal {
		t.Fatalf("execution ended in state %v, reason %v", f.state, f.haltReason)
	}
	if want, got := vm.Gas(95), f.gas; want != got {
		t.Errorf("remaining gas is %d, want %d", got, want)
	}
}

func TestSteps_RunningOutOfGasIsAnExceptionalHalt(t *testing.T) {
	f := runCode(t, []byte{byte(PUSH1), 0, byte(PUSH1), 0, byte(STOP)}, 5)
	defer f.release()

	if f.state != StateCompletedFailed {
		t.Fatalf("execution ended in state %v, want a failure", f.state)
	}
	if want, got := vm.ErrInsufficientGas, f.haltReason; want != got {
		t.Errorf("halt reason is %v, want %v", got, want)
	}
	if f.gas != 2 {
		t.Errorf("a rejected charge changed the gas level to %d", f.gas)
	}
}

func TestSteps_Push0RequiresShanghai(t *testing.T) {
	program := []byte{byte(PUSH0), byte(POP), byte(STOP)}

	f := runCodeAt(t, vm.R12_Shanghai, program, 100)
	if f.state != StateCompletedNormal {
		t.Errorf("execution under Shanghai ended in state %v, reason %v", f.state, f.haltReason)
	}
	f.release()

	f = runCodeAt(t, vm.R10_London, program, 100)
	if f.state != StateCompletedFailed {
		t.Errorf("execution under London ended in state %v, want a failure", f.state)
	}
	if want, got := errInvalidOpCode, f.haltReason; want != got {
		t.Errorf("halt reason is %v, want %v", got, want)
	}
	f.release()
}

func TestSteps_UndefinedInstructionsFail(t *testing.T) {
	for _, op := range []OpCode{INVALID, OpCode(0x0C), OpCode(0xEF)} {
		f := runCode(t, []byte{byte(op)}, 100)
		if f.state != StateCompletedFailed {
			t.Errorf("opcode %v ended in state %v, want a failure", op, f.state)
		}
		if want, got := errInvalidOpCode, f.haltReason; want != got {
			t.Errorf("opcode %v halt reason is %v, want %v", op, got, want)
		}
		f.release()
	}
}

func TestSteps_MemoryWordRoundTrip(t *testing.T) {
	program := []byte{
		byte(PUSH1), 0x42,
		byte(PUSH1), 10,
		byte(MSTORE),
		byte(PUSH1), 10,
		byte(MLOAD),
		byte(MSIZE),
	}
	f := runCode(t, program, 100)
	defer f.release()

	if f.state != StateCompletedNormal {
		t.Fatalf("execution ended in state %v, reason %v", f.state, f.haltReason)
	}
	if want, got := uint256.NewInt(64), f.stack.pop(); want.Cmp(got) != 0 {
		t.Errorf("memory size is %v, want %v", got, want)
	}
	if want, got := uint256.NewInt(0x42), f.stack.pop(); want.Cmp(got) != 0 {
		t.Errorf("loaded word is %v, want %v", got, want)
	}
}

func TestSteps_EnvironmentInstructions(t *testing.T) {
	f := runCode(t, []byte{byte(CALLER), byte(ADDRESS), byte(CALLVALUE), byte(PC)}, 100)
	defer f.release()

	if f.state != StateCompletedNormal {
		t.Fatalf("execution ended in state %v, reason %v", f.state, f.haltReason)
	}
	if want, got := uint256.NewInt(3), f.stack.pop(); want.Cmp(got) != 0 {
		t.Errorf("program counter is %v, want %v", got, want)
	}
	if want, got := uint256.NewInt(0), f.stack.pop(); want.Cmp(got) != 0 {
		t.Errorf("call value is %v, want %v", got, want)
	}
	if want, got := new(uint256.Int).SetBytes20(f.recipient[:]), f.stack.pop(); want.Cmp(got) != 0 {
		t.Errorf("own address is %v, want %v", got, want)
	}
	if want, got := new(uint256.Int).SetBytes20(f.sender[:]), f.stack.pop(); want.Cmp(got) != 0 {
		t.Errorf("caller is %v, want %v", got, want)
	}
}

func TestSteps_LogsInStaticContextAreRejected(t *testing.T) {
	e := &execution{
		revision:   vm.R12_Shanghai,
		calculator: gas.NewCalculator(vm.R12_Shanghai),
		policy:     code.NewPolicy(vm.R12_Shanghai),
		frames:     NewCallStack(),
	}
	f := newFrame(
		KindCall,
		senderAddress,
		vm.Address{0x99},
		vm.Value{},
		1000,
		0,
		true, // static
		code.NewLegacy([]byte{byte(PUSH1), 0, byte(PUSH1), 0, byte(LOG0)}),
		state.NewWorld().Updater(),
		e.calculator,
	)
	defer f.release()
	e.steps(f)

	if f.state != StateCompletedFailed {
		t.Fatalf("execution ended in state %v, want a failure", f.state)
	}
	if want, got := vm.ErrStaticContextViolation, f.haltReason; want != got {
		t.Errorf("halt reason is %v, want %v", got, want)
	}
}
