// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gas

import (
	"math"

	"github.com/lineuve/besu/vm"
)

const (
	createGas             vm.Gas = 32000 // Base cost of a CREATE-family instruction.
	keccakWordGas         vm.Gas = 6     // Per-word cost of hashing the init code for salted creation.
	initcodeWordGas       vm.Gas = 2     // Per-word init-code charge since Shanghai (EIP-3860).
	codeDepositGasPerByte vm.Gas = 200   // Per-byte cost of storing deployed code.

	maxCodeSize     = 24576           // Deployed-code size ceiling (EIP-170).
	maxInitcodeSize = 2 * maxCodeSize // Init-code size ceiling since Shanghai (EIP-3860).

	// Maximum memory size for which expansion costs can be computed without
	// overflowing the cost arithmetic; larger requests price as infinite.
	maxMemoryExpansionSize = 0x1FFFFFFFE0
)

// NewCalculator returns the cost schedule of the given revision. Schedules
// are stateless values; one instance may serve any number of executions.
func NewCalculator(revision vm.Revision) vm.GasCalculator {
	if revision >= vm.R12_Shanghai {
		return shanghaiGasCalculator{}
	}
	return istanbulGasCalculator{}
}

// istanbulGasCalculator covers the Istanbul through Paris revisions; the
// creation cost schedule did not change in between.
type istanbulGasCalculator struct{}

func (istanbulGasCalculator) MemoryExpansionCost(currentSize, offset, length uint64) vm.Gas {
	if length == 0 {
		return 0
	}
	needed := offset + length
	if needed < offset { // overflow
		return vm.Gas(math.MaxInt64)
	}
	if needed <= currentSize {
		return 0
	}
	if needed > maxMemoryExpansionSize {
		return vm.Gas(math.MaxInt64)
	}
	return memoryCost(needed) - memoryCost(currentSize)
}

// memoryCost is the total cost of a memory of the given size, rounded up to
// full words.
func memoryCost(size uint64) vm.Gas {
	words := vm.SizeInWords(size)
	return vm.Gas((words*words)/512 + 3*words)
}

func (istanbulGasCalculator) CreateOperationCost(salted bool, initCodeLength uint64) vm.Gas {
	cost := createGas
	if salted {
		cost += keccakWordGas * vm.Gas(vm.SizeInWords(initCodeLength))
	}
	return cost
}

func (istanbulGasCalculator) InitcodeCost(uint64) vm.Gas {
	return 0
}

func (istanbulGasCalculator) CodeDepositCost(codeLength int) vm.Gas {
	return codeDepositGasPerByte * vm.Gas(codeLength)
}

func (istanbulGasCalculator) MaxInitcodeSize() (int, bool) {
	return 0, false
}

func (istanbulGasCalculator) MaxCodeSize() int {
	return maxCodeSize
}

// GasAvailableForChildCreate implements the all-but-one-64th rule of EIP-150.
func (istanbulGasCalculator) GasAvailableForChildCreate(remaining vm.Gas) vm.Gas {
	return remaining - remaining/64
}

// shanghaiGasCalculator adds the init-code metering and ceiling of EIP-3860.
// It also covers Cancun and Prague; those forks changed the container rules,
// not the creation costs.
type shanghaiGasCalculator struct {
	istanbulGasCalculator
}

func (shanghaiGasCalculator) InitcodeCost(initCodeLength uint64) vm.Gas {
	return initcodeWordGas * vm.Gas(vm.SizeInWords(initCodeLength))
}

func (shanghaiGasCalculator) MaxInitcodeSize() (int, bool) {
	return maxInitcodeSize, true
}
