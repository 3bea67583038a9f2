// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package state

import (
	"bytes"
	"testing"

	"github.com/lineuve/besu/vm"
)

func TestUpdater_MutationsAreInvisibleToTheWorldUntilCommit(t *testing.T) {
	world := NewWorld()
	addr := vm.Address{1}

	updater := world.Updater()
	account := updater.GetOrCreate(addr)
	account.SetBalance(vm.NewValue(42))
	account.SetNonce(7)

	if got := world.Balance(addr); got != (vm.Value{}) {
		t.Errorf("uncommitted balance leaked into the world: %v", got)
	}

	updater.Commit()

	if got, want := world.Balance(addr), vm.NewValue(42); got != want {
		t.Errorf("unexpected balance after commit, wanted %v, got %v", want, got)
	}
	if got, want := world.Nonce(addr), uint64(7); got != want {
		t.Errorf("unexpected nonce after commit, wanted %d, got %d", want, got)
	}
}

func TestUpdater_NestedMutationsAreInvisibleToTheParentUntilCommit(t *testing.T) {
	world := NewWorld()
	world.SetBalance(vm.Address{1}, vm.NewValue(100))

	parent := world.Updater()
	child := parent.Updater()

	child.GetOrCreate(vm.Address{1}).SetBalance(vm.NewValue(50))

	if got, want := parent.Get(vm.Address{1}).Balance(), vm.NewValue(100); got != want {
		t.Errorf("child mutation visible in parent, wanted %v, got %v", want, got)
	}

	child.Commit()

	if got, want := parent.Get(vm.Address{1}).Balance(), vm.NewValue(50); got != want {
		t.Errorf("committed child mutation missing in parent, wanted %v, got %v", want, got)
	}
}

func TestUpdater_RevertLeavesTheParentViewUnchanged(t *testing.T) {
	world := NewWorld()
	addr := vm.Address{1}
	world.SetBalance(addr, vm.NewValue(100))
	world.SetNonce(addr, 3)
	world.SetCode(addr, []byte{0x60, 0x00})

	parent := world.Updater()
	child := parent.Updater()

	account := child.GetOrCreate(addr)
	account.SetBalance(vm.NewValue(1))
	account.SetNonce(99)
	account.SetCode([]byte{0xFE})
	child.GetOrCreate(vm.Address{2}).SetBalance(vm.NewValue(5))

	child.Revert()

	got := parent.Get(addr)
	if got.Balance() != vm.NewValue(100) {
		t.Errorf("balance changed by reverted scope: %v", got.Balance())
	}
	if got.Nonce() != 3 {
		t.Errorf("nonce changed by reverted scope: %d", got.Nonce())
	}
	if !bytes.Equal(got.Code(), []byte{0x60, 0x00}) {
		t.Errorf("code changed by reverted scope: %x", got.Code())
	}
	if parent.Get(vm.Address{2}) != nil {
		t.Errorf("account created in reverted scope is visible in parent")
	}
}

func TestUpdater_SiblingScopesAreIsolated(t *testing.T) {
	world := NewWorld()
	parent := world.Updater()

	first := parent.Updater()
	second := parent.Updater()

	first.GetOrCreate(vm.Address{1}).SetBalance(vm.NewValue(11))

	if second.Get(vm.Address{1}) != nil {
		t.Errorf("sibling scope observes uncommitted mutation")
	}

	first.Commit()

	if second.Get(vm.Address{1}) == nil {
		t.Errorf("sibling scope misses committed mutation of shared parent")
	}
}

func TestUpdater_GetReturnsNilForUnknownAccounts(t *testing.T) {
	world := NewWorld()
	updater := world.Updater()
	if updater.Get(vm.Address{0xAA}) != nil {
		t.Errorf("expected nil for an unknown account")
	}
}

func TestUpdater_HandlesObserveCommitsThroughTheScopeChain(t *testing.T) {
	world := NewWorld()
	parent := world.Updater()
	account := parent.GetOrCreate(vm.Address{1})

	child := parent.Updater()
	child.GetOrCreate(vm.Address{1}).SetBalance(vm.NewValue(77))
	child.Commit()

	// The handle obtained before the nested commit resolves the new state.
	if got, want := account.Balance(), vm.NewValue(77); got != want {
		t.Errorf("stale handle, wanted %v, got %v", want, got)
	}
}

func TestUpdater_SetCodeCopiesItsInput(t *testing.T) {
	world := NewWorld()
	updater := world.Updater()

	code := []byte{0x60, 0x01}
	account := updater.GetOrCreate(vm.Address{1})
	account.SetCode(code)
	code[0] = 0xFF

	if !bytes.Equal(account.Code(), []byte{0x60, 0x01}) {
		t.Errorf("stored code aliases the caller's slice: %x", account.Code())
	}
}
