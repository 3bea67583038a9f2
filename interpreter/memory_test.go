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
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/lineuve/besu/gas"
	"github.com/lineuve/besu/vm"
)

func newMemoryTestFrame(calculator vm.GasCalculator, gasSupply vm.Gas) *Frame {
	return &Frame{gas: gasSupply, calculator: calculator}
}

func TestMemory_ExpandChargesTheCalculatedFee(t *testing.T) {
	ctrl := gomock.NewController(t)
	calculator := vm.NewMockGasCalculator(ctrl)
	calculator.EXPECT().MemoryExpansionCost(uint64(0), uint64(0), uint64(64)).Return(vm.Gas(6))

	f := newMemoryTestFrame(calculator, 100)
	m := NewMemory()
	if err := m.expand(0, 64, f); err != nil {
		t.Fatalf("expansion failed: %v", err)
	}
	if want, got := vm.Gas(94), f.gas; want != got {
		t.Errorf("remaining gas is %d, want %d", got, want)
	}
	if want, got := uint64(64), m.length(); want != got {
		t.Errorf("memory size is %d, want %d", got, want)
	}
}

func TestMemory_ExpandGrowsInFullWords(t *testing.T) {
	f := newMemoryTestFrame(gas.NewCalculator(vm.R12_Shanghai), 1000)
	m := NewMemory()
	if err := m.expand(0, 1, f); err != nil {
		t.Fatalf("expansion failed: %v", err)
	}
	if want, got := uint64(32), m.length(); want != got {
		t.Errorf("memory size is %d, want %d", got, want)
	}
}

func TestMemory_ZeroSizeAccessNeverExpands(t *testing.T) {
	f := newMemoryTestFrame(gas.NewCalculator(vm.R12_Shanghai), 10)
	m := NewMemory()
	if err := m.expand(1 << 40, 0, f); err != nil {
		t.Fatalf("zero-size access failed: %v", err)
	}
	if got := m.length(); got != 0 {
		t.Errorf("memory grew to %d on a zero-size access", got)
	}
	if want, got := vm.Gas(10), f.gas; want != got {
		t.Errorf("gas was charged, remaining %d, want %d", got, want)
	}
}

func TestMemory_ExpandFailsOnUnaffordableFee(t *testing.T) {
	f := newMemoryTestFrame(gas.NewCalculator(vm.R12_Shanghai), 2)
	m := NewMemory()
	if err := m.expand(0, 32, f); err != vm.ErrInsufficientGas {
		t.Fatalf("unaffordable expansion produced %v, want %v", err, vm.ErrInsufficientGas)
	}
	if got := m.length(); got != 0 {
		t.Errorf("memory grew to %d despite the failed charge", got)
	}
}

func TestMemory_ExpandDetectsRangeOverflow(t *testing.T) {
	f := newMemoryTestFrame(gas.NewCalculator(vm.R12_Shanghai), 1000)
	m := NewMemory()
	if err := m.expand(^uint64(0), 2, f); err != errOverflow {
		t.Fatalf("overflowing range produced %v, want %v", err, errOverflow)
	}
}

func TestMemory_SetAndGetSliceRoundTrip(t *testing.T) {
	f := newMemoryTestFrame(gas.NewCalculator(vm.R12_Shanghai), 1000)
	m := NewMemory()
	data := []byte{1, 2, 3, 4}
	if err := m.set(10, data, f); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	got, err := m.getSlice(10, 4, f)
	if err != nil {
		t.Fatalf("getSlice failed: %v", err)
	}
	if !bytes.Equal(data, got) {
		t.Errorf("read %x, want %x", got, data)
	}
}

func TestMemory_GetSliceIsBackedByTheMemory(t *testing.T) {
	f := newMemoryTestFrame(gas.NewCalculator(vm.R12_Shanghai), 1000)
	m := NewMemory()
	if err := m.set(0, []byte{1}, f); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	slice, err := m.getSlice(0, 1, f)
	if err != nil {
		t.Fatalf("getSlice failed: %v", err)
	}
	m.store[0] = 42
	if slice[0] != 42 {
		t.Errorf("slice is not backed by the memory store")
	}
}
