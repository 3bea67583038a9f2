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
	"fmt"
	"strings"
	"sync"

	"github.com/holiman/uint256"
)

const maxStackSize = 1024 // Maximum size of a frame's word stack.

// stack is the 1024-element 256-bit word-wide stack of a message frame. It is
// a fixed-size stack to prevent memory reallocation during execution. Bounds
// are not checked by the accessors; the instruction loop verifies the stack
// limits of every instruction before dispatching it.
//
// Each stack consumes 1024 * 32 bytes = 32KB of memory, so instances are
// recycled through a pool. Obtain an empty stack with NewStack() and hand it
// back with ReturnStack(s) once the owning frame has been discarded.
type stack struct {
	data         [maxStackSize]uint256.Int
	stackPointer int
}

// push adds a copy of the given value to the top of the stack.
func (s *stack) push(d *uint256.Int) {
	s.data[s.stackPointer] = *d
	s.stackPointer++
}

// pushUndefined adds a value with an undefined content to the top of the
// stack and returns a pointer to this element, to be initialized by the
// caller.
func (s *stack) pushUndefined() *uint256.Int {
	s.stackPointer++
	return &s.data[s.stackPointer-1]
}

// pop removes the top element from the stack and returns a pointer to it. The
// obtained pointer is only valid until the next push operation.
func (s *stack) pop() *uint256.Int {
	s.stackPointer--
	return &s.data[s.stackPointer]
}

// peek returns a pointer to the top element of the stack without removing it.
func (s *stack) peek() *uint256.Int {
	return &s.data[s.len()-1]
}

// len returns the number of elements on the stack.
func (s *stack) len() int {
	return s.stackPointer
}

// swap exchanges the top element with the n-th element from the top. The top
// element is at index 0, making swap(0) a no-op.
func (s *stack) swap(n int) {
	s.data[s.len()-n-1], s.data[s.len()-1] = s.data[s.len()-1], s.data[s.len()-n-1]
}

// dup duplicates the n-th element from the top and pushes it to the top of
// the stack. The top element is at index 0.
func (s *stack) dup(n int) {
	s.data[s.stackPointer] = s.data[s.stackPointer-n-1]
	s.stackPointer++
}

func (s *stack) String() string {
	b := strings.Builder{}
	for i := 0; i < s.len(); i++ {
		b.WriteString(fmt.Sprintf("    [%4d] %v\n", s.len()-i-1, s.data[s.len()-i-1].Hex()))
	}
	return b.String()
}

var stackPool = sync.Pool{
	New: func() interface{} {
		return &stack{}
	},
}

// NewStack returns an empty stack instance from the reuse pool. This function
// is thread-safe.
func NewStack() *stack {
	return stackPool.Get().(*stack)
}

// ReturnStack returns the stack to the reuse pool. Any stack may only be
// returned once to avoid concurrent re-use. This is not checked internally.
// This function is thread-safe.
func ReturnStack(s *stack) {
	s.stackPointer = 0
	stackPool.Put(s)
}

// ------------------ Stack Boundary ------------------

// instructionStack captures the stack usage of a single instruction: the
// minimum stack size it requires and the maximum stack size allowed before
// running it without overflowing.
type instructionStack struct {
	stackMin int
	stackMax int
}

var staticStackBoundary = [256]instructionStack{}

func init() {
	for i := 0; i < 256; i++ {
		staticStackBoundary[i] = getStaticStackInternal(OpCode(i))
	}
}

// min is the number of popped elements, grows is the net stack growth.
func newInstructionStack(min, grows int) instructionStack {
	return instructionStack{
		stackMin: min,
		stackMax: maxStackSize - grows,
	}
}

func getStaticStackInternal(op OpCode) instructionStack {
	if PUSH1 <= op && op <= PUSH32 {
		return newInstructionStack(0, 1)
	}
	if DUP1 <= op && op <= DUP16 {
		return newInstructionStack(int(op)-int(DUP1)+1, 1)
	}
	if SWAP1 <= op && op <= SWAP16 {
		return newInstructionStack(int(op)-int(SWAP1)+2, 0)
	}
	if LOG0 <= op && op <= LOG4 {
		return newInstructionStack(int(op)-int(LOG0)+2, 0)
	}

	switch op {
	case ADD, MUL, SUB, DIV, MOD, LT, GT, EQ, AND, OR, XOR, SHL, SHR:
		return newInstructionStack(2, 0)
	case ISZERO, NOT, MLOAD:
		return newInstructionStack(1, 0)
	case PUSH0, ADDRESS, CALLER, CALLVALUE, PC, MSIZE, GAS:
		return newInstructionStack(0, 1)
	case POP, JUMP:
		return newInstructionStack(1, 0)
	case MSTORE, MSTORE8, JUMPI, RETURN, REVERT:
		return newInstructionStack(2, 0)
	case CREATE:
		return newInstructionStack(3, 0)
	case CREATE2:
		return newInstructionStack(4, 0)
	}
	return newInstructionStack(0, 0)
}

// checkStackLimits checks that the instruction will not make an out-of-bounds
// access with the current stack size.
func checkStackLimits(stackLen int, op OpCode) error {
	boundary := staticStackBoundary[op]
	if stackLen < boundary.stackMin {
		return errStackUnderflow
	}
	if stackLen > boundary.stackMax {
		return errStackOverflow
	}
	return nil
}
