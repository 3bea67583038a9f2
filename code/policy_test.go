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
	"testing"

	"github.com/lineuve/besu/vm"
)

func TestPolicy_LegacyCreatorsAreUnrestricted(t *testing.T) {
	policy := NewPolicy(vm.R13_Cancun)
	legacy := []byte{0x60, 0x00}
	container := mustDecode(t, validContainerHex)

	if !policy.CanCreate(0, legacy) {
		t.Errorf("legacy creator may not create legacy code")
	}
	if !policy.CanCreate(0, container) {
		t.Errorf("legacy creator may not create container code")
	}
}

func TestPolicy_ContainerCreatorsCannotCreateLegacy(t *testing.T) {
	policy := NewPolicy(vm.R13_Cancun)
	if policy.CanCreate(1, []byte{0x60, 0x00}) {
		t.Errorf("container creator may create legacy code")
	}
}

func TestPolicy_ContainerCreatorsAreBoundToTheirVersion(t *testing.T) {
	policy := NewPolicy(vm.R13_Cancun)
	container := mustDecode(t, validContainerHex)

	if !policy.CanCreate(1, container) {
		t.Errorf("container creator may not create a same-version container")
	}
	if policy.CanCreate(1, append([]byte{0xEF, 0x00, 0x02}, container[3:]...)) {
		t.Errorf("container creator may create a newer-version container")
	}
}

func TestPolicy_ContainerCreatorsRejectDefectiveCandidates(t *testing.T) {
	policy := NewPolicy(vm.R13_Cancun)
	if policy.CanCreate(1, []byte{0xEF, 0x00, 0x01}) {
		t.Errorf("container creator may deploy a structurally invalid container")
	}
}

func TestPolicy_PreContainerRevisionsRestrictVersionedCreators(t *testing.T) {
	policy := NewPolicy(vm.R12_Shanghai)
	if policy.CanCreate(1, mustDecode(t, validContainerHex)) {
		t.Errorf("container creation allowed before the container fork")
	}
	if !policy.CanCreate(0, []byte{0x60, 0x00}) {
		t.Errorf("legacy creation restricted before the container fork")
	}
}
