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
	"fmt"
	"math"

	"github.com/lineuve/besu/code"
	"github.com/lineuve/besu/vm"
)

// codeCacheCapacity bounds the number of analyzed codes kept across runs.
const codeCacheCapacity = 4096

// Interpreter executes message calls and contract creations against a world
// state. Instances are safe for sequential reuse; every Run owns its own call
// stack, so independent transactions may use separate instances concurrently.
type Interpreter struct {
	revision   vm.Revision
	calculator vm.GasCalculator
	policy     code.Policy
	codes      *code.Cache
}

// NewInterpreter creates an interpreter with an injected cost schedule and
// creation-compatibility policy for the given revision.
func NewInterpreter(revision vm.Revision, calculator vm.GasCalculator, policy code.Policy) (*Interpreter, error) {
	codes, err := code.NewCache(codeCacheCapacity)
	if err != nil {
		return nil, fmt.Errorf("failed to create code cache: %w", err)
	}
	return &Interpreter{
		revision:   revision,
		calculator: calculator,
		policy:     policy,
		codes:      codes,
	}, nil
}

// Parameters describe one top-level execution request.
type Parameters struct {
	Kind      FrameKind
	Sender    vm.Address
	Recipient vm.Address // the executed account for calls, ignored for creations
	Code      []byte     // the executed code for calls, the init code for creations
	Salted    bool
	Salt      vm.Hash
	Value     vm.Value
	Gas       vm.Gas
	Static    bool
	Updater   vm.WorldUpdater
}

// Result is the outcome of a top-level execution. HaltReason is set only for
// exceptional termination; soft creation failures leave it nil and report
// through Success alone.
type Result struct {
	Success        bool
	Output         vm.Data
	CreatedAddress vm.Address
	GasLeft        vm.Gas
	Logs           []vm.Log
	HaltReason     error

	// CodeSuspended is set when the run was handed back with its top frame
	// in the code-suspended state after an accepted container deployment by
	// a versioned-container creator.
	CodeSuspended bool
}

// execution is the per-run environment: the configuration of the interpreter
// plus the call stack owned by this run.
type execution struct {
	revision   vm.Revision
	calculator vm.GasCalculator
	policy     code.Policy
	codes      *code.Cache
	frames     *CallStack
}

// Run executes the given request to completion and reports the outcome.
// Exceptional halts of nested frames are absorbed by their parents; the
// returned error is reserved for invalid requests, not for execution
// failures.
func (in *Interpreter) Run(params Parameters) (Result, error) {
	if params.Gas < 0 {
		return Result{}, fmt.Errorf("invalid gas supply: %d", params.Gas)
	}
	if params.Updater == nil {
		return Result{}, fmt.Errorf("missing world updater")
	}

	e := &execution{
		revision:   in.revision,
		calculator: in.calculator,
		policy:     in.policy,
		codes:      in.codes,
		frames:     NewCallStack(),
	}

	if params.Kind == KindContractCreation {
		if result, spawned := e.spawnRootCreation(params); !spawned {
			return result, nil
		}
	} else {
		e.frames.push(newFrame(
			KindCall,
			params.Sender,
			params.Recipient,
			params.Value,
			params.Gas,
			0,
			params.Static,
			in.codes.Get(params.Code),
			params.Updater,
			in.calculator,
		))
	}

	for {
		top := e.frames.top()
		switch top.state {
		case StateInProgress:
			e.steps(top)
		case StateCodeSuspended:
			// An accepted container deployment by a container creator hands
			// the frame back instead of resuming it.
			return e.handBack(top), nil
		default:
			e.frames.pop()
			if e.frames.depth() == 0 {
				return e.finalize(top), nil
			}
			e.finishCreation(top, e.frames.top())
		}
	}
}

// spawnRootCreation checks the top-level creation preconditions and pushes
// the depth-0 creation frame. A request failing a precondition produces the
// final result directly and reports spawned=false.
func (e *execution) spawnRootCreation(params Parameters) (result Result, spawned bool) {
	updater := params.Updater
	creator := updater.GetOrCreate(params.Sender)
	gas := params.Gas

	nonce := creator.Nonce()
	if nonce == math.MaxUint64 {
		return Result{GasLeft: gas}, false
	}
	if creator.Balance().Cmp(params.Value) < 0 {
		return Result{GasLeft: gas}, false
	}
	if limit, limited := e.calculator.MaxInitcodeSize(); limited && len(params.Code) > limit {
		return Result{HaltReason: vm.ErrCodeTooLarge}, false
	}
	initcodeCost := e.calculator.InitcodeCost(uint64(len(params.Code)))
	if gas < initcodeCost {
		return Result{HaltReason: vm.ErrInsufficientGas}, false
	}
	gas -= initcodeCost

	createdAddress := deriveAddress(params.Salted, params.Sender, nonce, params.Salt, params.Code)
	creator.SetNonce(nonce + 1)

	if occupied := updater.Get(createdAddress); occupied != nil &&
		(occupied.Nonce() != 0 || len(occupied.Code()) != 0) {
		return Result{GasLeft: gas}, false
	}

	scope := updater.Updater()
	transferValue(scope, params.Value, params.Sender, createdAddress)
	scope.GetOrCreate(createdAddress).SetNonce(1)

	e.frames.push(newFrame(
		KindContractCreation,
		params.Sender,
		createdAddress,
		params.Value,
		gas,
		0,
		false,
		e.codes.Get(params.Code),
		scope,
		e.calculator,
	))
	return Result{}, true
}

// finalize turns the popped root frame into the run's result.
func (e *execution) finalize(root *Frame) Result {
	defer root.release()

	if root.kind == KindContractCreation {
		accepted := e.completeCreation(root)
		result := Result{
			Success:    accepted,
			GasLeft:    root.gas,
			HaltReason: root.haltReason,
		}
		if accepted {
			result.CreatedAddress = root.recipient
			result.Output = root.output
			result.Logs = root.logs
		} else if root.state == StateCompletedRevert {
			result.Output = root.output
		}
		return result
	}

	result := Result{
		Success:    root.state == StateCompletedNormal,
		Output:     root.output,
		GasLeft:    root.gas,
		HaltReason: root.haltReason,
	}
	if root.state == StateCompletedNormal {
		result.Logs = root.logs
	}
	if root.state == StateCompletedFailed {
		result.GasLeft = 0
	}
	return result
}

// handBack produces the result of a run whose top frame remained
// code-suspended. The created address is the word the acceptance pushed onto
// the frame's stack.
func (e *execution) handBack(f *Frame) Result {
	created := f.stack.peek().Bytes20()
	result := Result{
		Success:        true,
		CreatedAddress: vm.Address(created),
		GasLeft:        f.gas,
		Logs:           f.logs,
		CodeSuspended:  true,
	}
	f.release()
	return result
}

// steps executes instructions on the given frame until it leaves the
// in-progress state: by suspending on a spawned child, terminating normally,
// reverting, or halting exceptionally.
func (e *execution) steps(f *Frame) {
	// A structurally invalid container has no executable section; running it
	// halts on its first byte like any other undefined instruction.
	if !f.code.IsValid() {
		f.fail(errInvalidOpCode)
		return
	}
	for f.state == StateInProgress {
		if f.pc >= len(f.exec) {
			f.state = StateCompletedNormal
			return
		}
		op := OpCode(f.exec[f.pc])

		if err := checkStackLimits(f.stack.len(), op); err != nil {
			f.fail(err)
			return
		}
		if err := f.useGas(staticGasPrices[op]); err != nil {
			f.fail(err)
			return
		}

		var err error
		switch {
		case PUSH1 <= op && op <= PUSH32:
			opPush(f, int(op)-int(PUSH1)+1)
		case DUP1 <= op && op <= DUP16:
			opDup(f, int(op)-int(DUP1)+1)
		case SWAP1 <= op && op <= SWAP16:
			opSwap(f, int(op)-int(SWAP1)+1)
		case LOG0 <= op && op <= LOG4:
			err = opLog(f, int(op)-int(LOG0))
		default:
			switch op {
			case STOP:
				opStop(f)
			case ADD:
				opAdd(f)
			case MUL:
				opMul(f)
			case SUB:
				opSub(f)
			case DIV:
				opDiv(f)
			case MOD:
				opMod(f)
			case LT:
				opLt(f)
			case GT:
				opGt(f)
			case EQ:
				opEq(f)
			case ISZERO:
				opIszero(f)
			case AND:
				opAnd(f)
			case OR:
				opOr(f)
			case XOR:
				opXor(f)
			case NOT:
				opNot(f)
			case SHL:
				opShl(f)
			case SHR:
				opShr(f)
			case ADDRESS:
				opAddress(f)
			case CALLER:
				opCaller(f)
			case CALLVALUE:
				opCallvalue(f)
			case POP:
				opPop(f)
			case MLOAD:
				err = opMload(f)
			case MSTORE:
				err = opMstore(f)
			case MSTORE8:
				err = opMstore8(f)
			case JUMP:
				err = opJump(f)
			case JUMPI:
				err = opJumpi(f)
			case PC:
				opPc(f)
			case MSIZE:
				opMsize(f)
			case GAS:
				opGas(f)
			case JUMPDEST:
				// nothing
			case PUSH0:
				// Introduced with Shanghai; undefined before.
				if e.revision < vm.R12_Shanghai {
					err = errInvalidOpCode
				} else {
					opPush0(f)
				}
			case CREATE:
				err = e.genericCreate(f, false)
			case CREATE2:
				err = e.genericCreate(f, true)
			case RETURN:
				err = opEndWithResult(f, StateCompletedNormal)
			case REVERT:
				err = opEndWithResult(f, StateCompletedRevert)
			default:
				err = errInvalidOpCode
			}
		}

		if err != nil {
			f.fail(err)
			return
		}
		f.pc++
	}
}
