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
	"github.com/lineuve/besu/code"
	"github.com/lineuve/besu/vm"
)

// completeCreation applies the accept/reject decision to a creation frame
// that reached a terminal state. It reports whether the deployment was
// accepted. On acceptance the frame's scope is committed with the deployment
// bytes installed as the new account's code and the deposit fee deducted. On
// every rejection path the scope is reverted in full, undoing the endowment
// and everything the init code changed; exceptional rejections additionally
// consume the frame's remaining gas and record their halt reason, while
// reverts and soft rejections leave the remaining gas to be refunded.
func (e *execution) completeCreation(f *Frame) bool {
	switch f.state {
	case StateCompletedFailed:
		f.updater.Revert()
		f.gas = 0
		return false
	case StateCompletedRevert:
		f.updater.Revert()
		return false
	}

	deployed := f.output

	// The deployed code must fit under the fork's size ceiling.
	if len(deployed) > e.calculator.MaxCodeSize() {
		f.fail(vm.ErrCodeTooLarge)
		f.updater.Revert()
		f.gas = 0
		return false
	}

	// Bytes carrying the container magic must form a structurally valid
	// container; a defective one rejects the deployment without a halt.
	if code.HasContainerPrefix(deployed) && !code.Parse(deployed).IsValid() {
		f.updater.Revert()
		return false
	}

	// Storing the code costs a per-byte fee, paid from the frame's
	// remaining gas.
	if err := f.useGas(e.calculator.CodeDepositCost(len(deployed))); err != nil {
		f.fail(err)
		f.updater.Revert()
		f.gas = 0
		return false
	}

	f.updater.GetOrCreate(f.recipient).SetCode(deployed)
	f.updater.Commit()
	return true
}

// finishCreation consumes a terminal creation frame on behalf of its parent:
// the parent's stack receives the created address or the all-zero failure
// word, the child's unused gas flows back, and accepted logs are absorbed.
// The parent ordinarily resumes; when a versioned-container creator deployed
// a compatible container, the parent instead remains code-suspended and is
// handed back to the caller of the run.
func (e *execution) finishCreation(child, parent *Frame) {
	accepted := e.completeCreation(child)

	result := parent.stack.pushUndefined()
	if accepted {
		result.SetBytes20(child.recipient[:])
		parent.logs = append(parent.logs, child.logs...)
	} else {
		result.Clear()
	}
	parent.gas += child.gas

	if accepted && parent.code.Version() > 0 &&
		e.policy.CanCreate(parent.code.Version(), child.output) {
		parent.state = StateCodeSuspended
	} else {
		parent.state = StateInProgress
	}

	child.release()
}
