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

import "github.com/lineuve/besu/vm"

// Policy is the creation-compatibility rule set between a creator's code
// version and candidate code. The exact rules are fork-gated and injected
// into the creation machinery; they are deliberately not hardcoded in the
// operation or the processor.
type Policy interface {
	// CanCreate reports whether code of the given version may act as the
	// creator of a contract described by the candidate bytes. The candidate
	// may be init code (checked before spawning a creation frame) or
	// produced deployment code (checked when deciding how the parent frame
	// resumes).
	CanCreate(creatorVersion int, candidate []byte) bool
}

// NewPolicy returns the compatibility rules active for the given revision.
func NewPolicy(revision vm.Revision) Policy {
	return forkPolicy{containerAware: revision >= vm.R13_Cancun}
}

type forkPolicy struct {
	// containerAware is set for revisions that recognize the versioned
	// container format at all; before that, every creator is legacy and
	// unrestricted.
	containerAware bool
}

func (p forkPolicy) CanCreate(creatorVersion int, candidate []byte) bool {
	if creatorVersion == 0 {
		// Legacy creators are unrestricted; container init code merely
		// changes how the spawned frame reports back.
		return true
	}
	if !p.containerAware {
		return false
	}
	// Container creators must stay within the container world: deploying
	// legacy code from a versioned creator is forbidden, and the candidate
	// container may not exceed the creator's own version.
	if !HasContainerPrefix(candidate) {
		return false
	}
	parsed := Parse(candidate)
	return parsed.IsValid() && parsed.Version() <= creatorVersion
}
