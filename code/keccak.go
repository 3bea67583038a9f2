// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package code

import (
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/lineuve/besu/vm"
)

var keccakHasherPool = sync.Pool{New: func() any { return sha3.NewLegacyKeccak256() }}

type keccakHasher interface {
	Reset()
	Write(in []byte) (int, error)
	Read(out []byte) (int, error)
}

// Keccak256 computes the keccak hash of the given data using a pooled hasher
// to avoid per-call allocations.
func Keccak256(data []byte) vm.Hash {
	hasher := keccakHasherPool.Get().(keccakHasher)
	hasher.Reset()
	hasher.Write(data)
	var res vm.Hash
	hasher.Read(res[:])
	keccakHasherPool.Put(hasher)
	return res
}
