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
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/lineuve/besu/vm"
)

// maxCachedCodeLength is the maximum length of a code in bytes retained in
// the cache. Longer codes are analyzed on every request to keep the memory
// footprint bounded; the limit matches the largest init code accepted since
// the Shanghai fork.
const maxCachedCodeLength = 2 * 24_576

// Cache is a fixed-capacity cache of analyzed code instances keyed by the
// keccak hash of the raw code. Factory contracts re-create the same init
// code many times; caching skips the repeated container analysis.
type Cache struct {
	cache *lru.Cache[vm.Hash, *Code]
}

// NewCache creates a cache holding up to capacity analyzed codes.
func NewCache(capacity int) (*Cache, error) {
	cache, err := lru.New[vm.Hash, *Code](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{cache: cache}, nil
}

// Get returns the analyzed form of the given raw code, parsing and caching
// it on a miss.
func (c *Cache) Get(raw []byte) *Code {
	if len(raw) > maxCachedCodeLength {
		return Parse(raw)
	}
	key := Keccak256(raw)
	if res, exists := c.cache.Get(key); exists {
		return res
	}
	res := Parse(raw)
	c.cache.Add(key, res)
	return res
}
