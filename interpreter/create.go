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
	"math"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/lineuve/besu/code"
	"github.com/lineuve/besu/vm"
)

// genericCreate handles the CREATE-family instructions on the current frame.
// Precondition violations split into two disjoint channels: soft failures
// push an all-zero word and let the frame continue, exceptional conditions
// are returned as errors and terminate the frame. When all preconditions
// pass, the current frame is marked suspended and a creation frame is pushed
// onto the call stack; the result word reaches the current frame's stack only
// once the child has completed.
func (e *execution) genericCreate(f *Frame, salted bool) error {
	value := f.stack.pop()
	offset := f.stack.pop()
	size := f.stack.pop()
	var salt vm.Hash
	if salted {
		salt = f.stack.pop().Bytes32()
	}
	if !offset.IsUint64() || !size.IsUint64() {
		return errOverflow
	}
	sizeU64 := size.Uint64()

	// The static operation cost must be affordable before anything else.
	if err := f.useGas(e.calculator.CreateOperationCost(salted, sizeU64)); err != nil {
		return err
	}

	// Creation mutates the world; a static context cannot request it.
	if f.static {
		return vm.ErrStaticContextViolation
	}

	// The init code is copied out of the memory at the moment of the read;
	// the source range is free to be overwritten afterwards.
	data, err := f.memory.getSlice(offset.Uint64(), sizeU64, f)
	if err != nil {
		return err
	}
	initCode := bytes.Clone(data)

	// One more frame must fit on the call stack.
	if f.depth+1 >= MaxCallDepth || !e.frames.canPush() {
		return e.softFail(f)
	}

	creator := f.updater.GetOrCreate(f.recipient)

	// The creator's nonce must have room for the increment.
	nonce := creator.Nonce()
	if nonce == math.MaxUint64 {
		return e.softFail(f)
	}

	// The creator must be able to endow the new account.
	endowment := vm.ValueFromUint256(value)
	if creator.Balance().Cmp(endowment) < 0 {
		return e.softFail(f)
	}

	// The init code must fit under the fork's ceiling, and its per-word
	// processing fee must be affordable.
	if limit, limited := e.calculator.MaxInitcodeSize(); limited && len(initCode) > limit {
		return vm.ErrCodeTooLarge
	}
	if err := f.useGas(e.calculator.InitcodeCost(sizeU64)); err != nil {
		return err
	}

	// The creator's code version must permit creating from this init code.
	if !e.policy.CanCreate(f.code.Version(), initCode) {
		return e.softFail(f)
	}

	createdAddress := deriveAddress(salted, f.recipient, nonce, salt, initCode)
	creator.SetNonce(nonce + 1)

	// An occupied target address aborts the creation; the nonce increment
	// above is deliberately not undone.
	if occupied := f.updater.Get(createdAddress); occupied != nil &&
		(occupied.Nonce() != 0 || len(occupied.Code()) != 0) {
		return e.softFail(f)
	}

	childGas := e.calculator.GasAvailableForChildCreate(f.gas)
	f.gas -= childGas

	// The endowment moves inside the child's scope, so a failed creation
	// rewinds it together with everything the init code did.
	childUpdater := f.updater.Updater()
	transferValue(childUpdater, endowment, f.recipient, createdAddress)
	childUpdater.GetOrCreate(createdAddress).SetNonce(1)

	child := newFrame(
		KindContractCreation,
		f.recipient,
		createdAddress,
		endowment,
		childGas,
		f.depth+1,
		false,
		e.codes.Get(initCode),
		childUpdater,
		e.calculator,
	)
	e.frames.push(child)

	if code.HasContainerPrefix(initCode) {
		f.state = StateCodeSuspended
	} else {
		f.state = StateSuspended
	}
	return nil
}

// softFail pushes the all-zero result of a failed creation precondition; the
// frame keeps running.
func (e *execution) softFail(f *Frame) error {
	f.stack.pushUndefined().Clear()
	return nil
}

// deriveAddress computes the address of the created contract: from creator
// address and pre-increment nonce for plain creation, from creator address,
// salt, and init-code hash for salted creation.
func deriveAddress(salted bool, creator vm.Address, nonce uint64, salt vm.Hash, initCode []byte) vm.Address {
	if !salted {
		return vm.Address(crypto.CreateAddress(common.Address(creator), nonce))
	}
	initHash := code.Keccak256(initCode)
	return vm.Address(crypto.CreateAddress2(common.Address(creator), common.Hash(salt), initHash[:]))
}

// transferValue moves the given value between the two accounts within the
// given scope. Must only be called after the sender's balance has been
// checked.
func transferValue(updater vm.WorldUpdater, value vm.Value, sender, recipient vm.Address) {
	if value == (vm.Value{}) || sender == recipient {
		return
	}
	from := updater.GetOrCreate(sender)
	to := updater.GetOrCreate(recipient)
	from.SetBalance(vm.Sub(from.Balance(), value))
	to.SetBalance(vm.Add(to.Balance(), value))
}
