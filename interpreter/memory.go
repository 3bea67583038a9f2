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

	"github.com/holiman/uint256"
	"github.com/lineuve/besu/vm"
)

// Memory is the byte-addressable memory of a message frame. It grows in
// 32-byte words; the expansion fee is obtained from the frame's gas
// calculator and charged against the frame's gas balance.
type Memory struct {
	store []byte
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) length() uint64 {
	return uint64(len(m.store))
}

// expand grows the memory such that the range [offset, offset+size) becomes
// addressable, charging the expansion fee to the given frame. A zero size
// never expands, independently of the offset.
func (m *Memory) expand(offset, size uint64, f *Frame) error {
	if size == 0 {
		return nil
	}
	needed := offset + size
	if needed < offset { // overflow
		return errOverflow
	}
	if m.length() >= needed {
		return nil
	}
	fee := f.calculator.MemoryExpansionCost(m.length(), offset, size)
	if err := f.useGas(fee); err != nil {
		return err
	}
	needed = vm.SizeInWords(needed) * 32
	m.store = append(m.store, make([]byte, needed-m.length())...)
	return nil
}

// set writes the given data to memory at the given offset, expanding and
// charging as needed.
func (m *Memory) set(offset uint64, data []byte, f *Frame) error {
	if len(data) == 0 {
		return nil
	}
	if err := m.expand(offset, uint64(len(data)), f); err != nil {
		return err
	}
	if m.length() < offset+uint64(len(data)) {
		return fmt.Errorf("memory too small, size %d, attempted to write %d bytes at %d", m.length(), len(data), offset)
	}
	copy(m.store[offset:], data)
	return nil
}

// getSlice obtains a slice of size bytes from the memory at the given offset,
// expanding and charging as needed. The returned slice is backed by the
// memory's internal data; updates to the slice affect the memory state, and
// the connection is invalidated by any subsequent operation that may grow the
// memory. Callers extracting code or log data must clone the result.
func (m *Memory) getSlice(offset, size uint64, f *Frame) ([]byte, error) {
	if err := m.expand(offset, size, f); err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	return m.store[offset : offset+size], nil
}

// readWord reads a 32-byte word from the memory at the given offset into the
// provided target, expanding and charging as needed.
func (m *Memory) readWord(offset uint64, target *uint256.Int, f *Frame) error {
	data, err := m.getSlice(offset, 32, f)
	if err != nil {
		return err
	}
	target.SetBytes32(data)
	return nil
}
