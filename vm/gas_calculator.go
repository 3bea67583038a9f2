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

//go:generate mockgen -source gas_calculator.go -destination gas_calculator_mock.go -package vm

// GasCalculator is the fork-versioned cost schedule consumed by the
// contract-creation machinery. Implementations are pure functions over
// their arguments; all fork-dependent create costs and limits must be
// obtained through this interface rather than embedded as constants.
type GasCalculator interface {
	// MemoryExpansionCost returns the fee for growing a memory of
	// currentSize bytes such that the range [offset, offset+length)
	// becomes addressable. The result is zero if the memory is already
	// large enough.
	MemoryExpansionCost(currentSize, offset, length uint64) Gas

	// CreateOperationCost returns the static cost of a CREATE-family
	// instruction, including the per-word hashing cost of the salted
	// variant, for an init code of the given length.
	CreateOperationCost(salted bool, initCodeLength uint64) Gas

	// InitcodeCost returns the per-word charge for processing an init
	// code of the given length. Zero before the fork that introduced it.
	InitcodeCost(initCodeLength uint64) Gas

	// CodeDepositCost returns the fee for storing deployed code of the
	// given length.
	CodeDepositCost(codeLength int) Gas

	// MaxInitcodeSize returns the init-code size ceiling. The second
	// result is false when the fork imposes no limit.
	MaxInitcodeSize() (int, bool)

	// MaxCodeSize returns the deployed-code size ceiling.
	MaxCodeSize() int

	// GasAvailableForChildCreate returns the portion of the remaining gas
	// that is forwarded to a spawned creation frame; the retained
	// fraction is fork-defined.
	GasAvailableForChildCreate(remaining Gas) Gas
}
