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
	"github.com/lineuve/besu/code"
	"github.com/lineuve/besu/vm"
)

// FrameKind distinguishes ordinary message calls from contract creations.
type FrameKind byte

const (
	KindCall FrameKind = iota
	KindContractCreation
)

// FrameState is the lifecycle state of a message frame.
type FrameState byte

const (
	// StateInProgress marks the frame currently executed by the instruction
	// loop, or ready to be.
	StateInProgress FrameState = iota

	// StateSuspended marks a frame waiting for a spawned child frame to
	// complete.
	StateSuspended

	// StateCodeSuspended marks a frame whose pending or accepted creation
	// involves versioned-container code; after acceptance involving a
	// versioned-container creator the frame is handed back to the caller in
	// this state instead of being resumed.
	StateCodeSuspended

	// StateCompletedNormal marks a frame that ran to completion, with the
	// produced output attached.
	StateCompletedNormal

	// StateCompletedRevert marks a frame terminated by an explicit revert.
	StateCompletedRevert

	// StateCompletedFailed marks a frame terminated by an exceptional halt,
	// with the halt reason attached.
	StateCompletedFailed
)

func (s FrameState) String() string {
	switch s {
	case StateInProgress:
		return "in-progress"
	case StateSuspended:
		return "suspended"
	case StateCodeSuspended:
		return "code-suspended"
	case StateCompletedNormal:
		return "completed-normal"
	case StateCompletedRevert:
		return "completed-revert"
	case StateCompletedFailed:
		return "completed-failed"
	}
	return "unknown"
}

// Frame is one execution context of a call or contract creation. Frames are
// created by a parent frame (or by the top-level entry for depth 0), pushed
// onto the shared call stack, and mutated only by the instruction loop while
// they are the top of that stack.
type Frame struct {
	kind      FrameKind
	sender    vm.Address
	recipient vm.Address
	value     vm.Value
	gas       vm.Gas
	depth     int
	static    bool

	code      *code.Code
	exec      []byte // the executable byte sequence of code
	jumpDests []bool // positions of valid JUMPDEST instructions in exec

	stack  *stack
	memory *Memory
	pc     int

	updater    vm.WorldUpdater
	calculator vm.GasCalculator

	logs  []vm.Log
	state FrameState

	// Terminal outcome: the produced output (deployment bytes for creation
	// frames) and the halt reason of an exceptional termination.
	output     vm.Data
	haltReason error
}

func newFrame(
	kind FrameKind,
	sender, recipient vm.Address,
	value vm.Value,
	gas vm.Gas,
	depth int,
	static bool,
	executed *code.Code,
	updater vm.WorldUpdater,
	calculator vm.GasCalculator,
) *Frame {
	exec := executed.Executable()
	return &Frame{
		kind:       kind,
		sender:     sender,
		recipient:  recipient,
		value:      value,
		gas:        gas,
		depth:      depth,
		static:     static,
		code:       executed,
		exec:       exec,
		jumpDests:  collectJumpDests(exec),
		stack:      NewStack(),
		memory:     NewMemory(),
		updater:    updater,
		calculator: calculator,
	}
}

// useGas reduces the frame's gas level by the given amount. An amount the
// frame cannot afford leaves the gas level unchanged and reports an
// insufficient-gas halt to be raised by the caller.
func (f *Frame) useGas(amount vm.Gas) error {
	if f.gas < 0 || amount < 0 || f.gas < amount {
		return vm.ErrInsufficientGas
	}
	f.gas -= amount
	return nil
}

// fail terminates the frame exceptionally, recording the halt reason.
func (f *Frame) fail(reason error) {
	f.haltReason = reason
	f.state = StateCompletedFailed
}

// release hands the frame's pooled resources back once the frame has been
// popped and its result consumed.
func (f *Frame) release() {
	ReturnStack(f.stack)
	f.stack = nil
}

// collectJumpDests scans the executable code for JUMPDEST positions, skipping
// the immediate data of PUSH instructions.
func collectJumpDests(exec []byte) []bool {
	dests := make([]bool, len(exec))
	for i := 0; i < len(exec); i++ {
		op := OpCode(exec[i])
		if op == JUMPDEST {
			dests[i] = true
		} else if PUSH1 <= op && op <= PUSH32 {
			i += int(op) - int(PUSH1) + 1
		}
	}
	return dests
}
