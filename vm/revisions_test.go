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

import "testing"

func TestRevision_StringAndNameRoundTrip(t *testing.T) {
	for r := Revision(0); int(r) < numRevisions; r++ {
		name := r.String()
		got, err := RevisionFromName(name)
		if err != nil {
			t.Fatalf("failed to resolve revision %q: %v", name, err)
		}
		if got != r {
			t.Errorf("round trip of %q produced %v, wanted %v", name, got, r)
		}
	}
}

func TestRevisionFromName_RejectsUnknownNames(t *testing.T) {
	if _, err := RevisionFromName("NotAFork"); err == nil {
		t.Errorf("expected an error for an unknown revision name")
	}
}
