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

	"golang.org/x/exp/maps"

	"github.com/lineuve/besu/vm"
)

// updater is one transactional scope over the world state. Each scope keeps
// copy-on-write duplicates of the accounts it touched; reads fall through the
// parent chain down to the world. Mutations stay invisible to the parent and
// to sibling scopes until Commit moves them one level down.
type updater struct {
	world   *World
	parent  *updater // nil for root scopes
	touched map[vm.Address]*account
}

func (u *updater) Get(addr vm.Address) vm.Account {
	if _, ok := u.lookup(addr); !ok {
		return nil
	}
	return handle{u, addr}
}

func (u *updater) GetOrCreate(addr vm.Address) vm.Account {
	u.mutable(addr)
	return handle{u, addr}
}

func (u *updater) Updater() vm.WorldUpdater {
	return &updater{world: u.world, parent: u, touched: map[vm.Address]*account{}}
}

func (u *updater) Commit() {
	if u.parent != nil {
		// The copies were derived from the parent's view, so moving them
		// over is sufficient; the child scope is spent afterwards.
		maps.Copy(u.parent.touched, u.touched)
	} else {
		for addr, a := range u.touched {
			u.world.accounts[addr] = a
		}
	}
	u.touched = map[vm.Address]*account{}
}

func (u *updater) Revert() {
	u.touched = map[vm.Address]*account{}
}

// lookup resolves the nearest visible copy of the given account, walking the
// scope chain from this updater down to the world. The result must not be
// mutated; use mutable for writes.
func (u *updater) lookup(addr vm.Address) (*account, bool) {
	for cur := u; cur != nil; cur = cur.parent {
		if a, ok := cur.touched[addr]; ok {
			return a, true
		}
	}
	a, ok := u.world.accounts[addr]
	return a, ok
}

// mutable returns this scope's own copy of the given account, creating the
// copy (or a fresh empty account) on first access.
func (u *updater) mutable(addr vm.Address) *account {
	if a, ok := u.touched[addr]; ok {
		return a
	}
	var a *account
	if existing, ok := u.lookup(addr); ok {
		a = existing.clone()
	} else {
		a = &account{}
	}
	u.touched[addr] = a
	return a
}

// handle is the vm.Account view handed out by an updater. It holds no
// account data itself; every access re-resolves through the scope chain so
// that commits and reverts can never leave a handle observing stale state.
type handle struct {
	updater *updater
	address vm.Address
}

func (h handle) Address() vm.Address {
	return h.address
}

func (h handle) Balance() vm.Value {
	if a, ok := h.updater.lookup(h.address); ok {
		return a.balance
	}
	return vm.Value{}
}

func (h handle) SetBalance(balance vm.Value) {
	h.updater.mutable(h.address).balance = balance
}

func (h handle) Nonce() uint64 {
	if a, ok := h.updater.lookup(h.address); ok {
		return a.nonce
	}
	return 0
}

func (h handle) SetNonce(nonce uint64) {
	h.updater.mutable(h.address).nonce = nonce
}

func (h handle) Code() []byte {
	if a, ok := h.updater.lookup(h.address); ok {
		return a.code
	}
	return nil
}

func (h handle) SetCode(code []byte) {
	h.updater.mutable(h.address).code = bytes.Clone(code)
}
