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

//go:generate mockgen -source world_state.go -destination world_state_mock.go -package vm

// Account is a mutable view on a single account of the world state. Accounts
// are owned by the updater that produced them; mutations are buffered in that
// updater's scope until it is committed.
type Account interface {
	Address() Address

	Balance() Value
	SetBalance(Value)

	// Nonce is a monotonically increasing 64-bit counter. Reaching its
	// maximum value is an error condition handled by callers, never a
	// wraparound.
	Nonce() uint64
	SetNonce(uint64)

	Code() []byte
	SetCode([]byte)
}

// WorldUpdater is a transactional view on the world state. All modifications
// performed through accounts obtained from an updater are buffered in the
// updater's scope. A nested scope created through Updater() buffers its
// mutations independently; they become visible to the parent only on Commit,
// and a Revert leaves the parent's view unchanged.
type WorldUpdater interface {
	// Get returns the account with the given address, or nil if no such
	// account is visible in this scope.
	Get(Address) Account

	// GetOrCreate returns the account with the given address, creating an
	// empty account in this scope if none exists.
	GetOrCreate(Address) Account

	// Updater creates a nested scope for speculative mutations.
	Updater() WorldUpdater

	// Commit makes all mutations of this scope visible to the parent scope.
	Commit()

	// Revert discards all mutations of this scope.
	Revert()
}
