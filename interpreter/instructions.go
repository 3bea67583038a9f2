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
	"bytes"

	"github.com/holiman/uint256"
	"github.com/lineuve/besu/vm"
)

func opStop(f *Frame) {
	f.state = StateCompletedNormal
}

// opEndWithResult terminates the frame with the addressed memory range as its
// output. The bytes are copied out of the memory at the moment of the read;
// for creation frames they are the candidate deployment code.
func opEndWithResult(f *Frame, terminal FrameState) error {
	offset := f.stack.pop()
	size := f.stack.pop()
	if !offset.IsUint64() || !size.IsUint64() {
		return errOverflow
	}
	data, err := f.memory.getSlice(offset.Uint64(), size.Uint64(), f)
	if err != nil {
		return err
	}
	f.output = bytes.Clone(data)
	f.state = terminal
	return nil
}

func opPop(f *Frame) {
	f.stack.pop()
}

func opPush0(f *Frame) {
	f.stack.pushUndefined().Clear()
}

// opPush reads the n-byte immediate following the instruction, zero-padded if
// the code ends early, and advances the program counter past it.
func opPush(f *Frame, n int) {
	z := f.stack.pushUndefined()
	start := f.pc + 1
	end := start + n
	if end <= len(f.exec) {
		z.SetBytes(f.exec[start:end])
	} else {
		var value [32]byte
		copy(value[:n], f.exec[min(start, len(f.exec)):])
		z.SetBytes(value[:n])
	}
	f.pc += n
}

func opDup(f *Frame, pos int) {
	f.stack.dup(pos - 1)
}

func opSwap(f *Frame, pos int) {
	f.stack.swap(pos)
}

func opJump(f *Frame) error {
	destination := f.stack.pop()
	if !destination.IsUint64() {
		return errInvalidJump
	}
	return f.jumpTo(destination.Uint64())
}

func opJumpi(f *Frame) error {
	destination := f.stack.pop()
	condition := f.stack.pop()
	if condition.IsZero() {
		return nil
	}
	if !destination.IsUint64() {
		return errInvalidJump
	}
	return f.jumpTo(destination.Uint64())
}

// jumpTo moves the program counter to the instruction before the destination;
// the instruction loop advances it onto the JUMPDEST afterwards.
func (f *Frame) jumpTo(destination uint64) error {
	if destination >= uint64(len(f.exec)) || !f.jumpDests[destination] {
		return errInvalidJump
	}
	f.pc = int(destination) - 1
	return nil
}

func opPc(f *Frame) {
	f.stack.pushUndefined().SetUint64(uint64(f.pc))
}

func opMsize(f *Frame) {
	f.stack.pushUndefined().SetUint64(f.memory.length())
}

func opGas(f *Frame) {
	f.stack.pushUndefined().SetUint64(uint64(f.gas))
}

func opAddress(f *Frame) {
	f.stack.pushUndefined().SetBytes20(f.recipient[:])
}

func opCaller(f *Frame) {
	f.stack.pushUndefined().SetBytes20(f.sender[:])
}

func opCallvalue(f *Frame) {
	f.stack.pushUndefined().SetBytes(f.value[:])
}

func opMload(f *Frame) error {
	top := f.stack.peek()
	offset, overflow := top.Uint64WithOverflow()
	if overflow {
		return errOverflow
	}
	return f.memory.readWord(offset, top, f)
}

func opMstore(f *Frame) error {
	addr := f.stack.pop()
	value := f.stack.pop()
	offset, overflow := addr.Uint64WithOverflow()
	if overflow {
		return errOverflow
	}
	data := value.Bytes32()
	return f.memory.set(offset, data[:], f)
}

func opMstore8(f *Frame) error {
	addr := f.stack.pop()
	value := f.stack.pop()
	offset, overflow := addr.Uint64WithOverflow()
	if overflow {
		return errOverflow
	}
	return f.memory.set(offset, []byte{byte(value.Uint64())}, f)
}

func opAdd(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	b.Add(a, b)
}

func opMul(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	b.Mul(a, b)
}

func opSub(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	b.Sub(a, b)
}

func opDiv(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	b.Div(a, b)
}

func opMod(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	b.Mod(a, b)
}

func opLt(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	setBool(b, a.Lt(b))
}

func opGt(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	setBool(b, a.Gt(b))
}

func opEq(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	setBool(b, a.Eq(b))
}

func opIszero(f *Frame) {
	top := f.stack.peek()
	setBool(top, top.IsZero())
}

func opAnd(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	b.And(a, b)
}

func opOr(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	b.Or(a, b)
}

func opXor(f *Frame) {
	a := f.stack.pop()
	b := f.stack.peek()
	b.Xor(a, b)
}

func opNot(f *Frame) {
	top := f.stack.peek()
	top.Not(top)
}

func opShl(f *Frame) {
	shift := f.stack.pop()
	value := f.stack.peek()
	if shift.LtUint64(256) {
		value.Lsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
}

func opShr(f *Frame) {
	shift := f.stack.pop()
	value := f.stack.peek()
	if shift.LtUint64(256) {
		value.Rsh(value, uint(shift.Uint64()))
	} else {
		value.Clear()
	}
}

func setBool(trg *uint256.Int, value bool) {
	if value {
		trg.SetOne()
	} else {
		trg.Clear()
	}
}

const logDataGasPerByte = 8

// opLog emits a log record with size topics. The log data is cloned out of
// the memory at the moment of the read, so later mutations of the source
// range cannot alter the emitted record.
func opLog(f *Frame, size int) error {
	if f.static {
		return vm.ErrStaticContextViolation
	}

	topics := make([]vm.Hash, size)
	mStart, mSize := f.stack.pop(), f.stack.pop()
	if !mStart.IsUint64() || !mSize.IsUint64() {
		return errOverflow
	}
	for i := 0; i < size; i++ {
		topics[i] = f.stack.pop().Bytes32()
	}

	logSize := mSize.Uint64()
	if err := f.useGas(vm.Gas(logDataGasPerByte * logSize)); err != nil {
		return err
	}
	data, err := f.memory.getSlice(mStart.Uint64(), logSize, f)
	if err != nil {
		return err
	}

	f.logs = append(f.logs, vm.Log{
		Address: f.recipient,
		Topics:  topics,
		Data:    bytes.Clone(data),
	})
	return nil
}
