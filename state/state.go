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

	"github.com/lineuve/besu/vm"
)

// account is the internal representation of a single account. Each updater
// scope holds its own copies; the world holds the committed versions.
type account struct {
	balance vm.Value
	nonce   uint64
	code    []byte
}

func (a *account) clone() *account {
	cpy := *a
	return &cpy
}

// World is an in-memory world state. It holds the committed accounts and
// serves as the final destination of a chain of updater scopes. A World is
// owned by a single execution thread; concurrent transactions get their own
// World instance.
type World struct {
	accounts map[vm.Address]*account
}

func NewWorld() *World {
	return &World{accounts: map[vm.Address]*account{}}
}

// Updater opens a root transactional scope on this world.
func (w *World) Updater() vm.WorldUpdater {
	return &updater{world: w, touched: map[vm.Address]*account{}}
}

// Balance returns the committed balance of the given account.
func (w *World) Balance(addr vm.Address) vm.Value {
	if a, ok := w.accounts[addr]; ok {
		return a.balance
	}
	return vm.Value{}
}

// Nonce returns the committed nonce of the given account.
func (w *World) Nonce(addr vm.Address) uint64 {
	if a, ok := w.accounts[addr]; ok {
		return a.nonce
	}
	return 0
}

// Code returns the committed code of the given account.
func (w *World) Code(addr vm.Address) []byte {
	if a, ok := w.accounts[addr]; ok {
		return a.code
	}
	return nil
}

// SetBalance installs a committed balance, bypassing any updater scope. It
// is intended for setting up initial states.
func (w *World) SetBalance(addr vm.Address, balance vm.Value) {
	w.getOrCreate(addr).balance = balance
}

// SetNonce installs a committed nonce, bypassing any updater scope.
func (w *World) SetNonce(addr vm.Address, nonce uint64) {
	w.getOrCreate(addr).nonce = nonce
}

// SetCode installs committed code, bypassing any updater scope.
func (w *World) SetCode(addr vm.Address, code []byte) {
	w.getOrCreate(addr).code = bytes.Clone(code)
}

func (w *World) getOrCreate(addr vm.Address) *account {
	if a, ok := w.accounts[addr]; ok {
		return a
	}
	a := &account{}
	w.accounts[addr] = a
	return a
}
