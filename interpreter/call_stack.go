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

// MaxCallDepth is the number of frames a single call stack can hold. Frames
// occupy depths 0 to MaxCallDepth-1 inclusive; a request to spawn a frame
// beyond that bound is a precondition failure signaled to the caller, never a
// crash.
const MaxCallDepth = 1024

// CallStack is the shared last-in-first-out sequence of message frames of one
// transaction execution. Exactly one frame, the top, is current at any
// instant. The stack is owned by a single execution; no synchronization is
// performed.
type CallStack struct {
	frames []*Frame
}

func NewCallStack() *CallStack {
	return &CallStack{frames: make([]*Frame, 0, 16)}
}

// canPush reports whether one more frame fits under the depth bound. The
// check must precede any state mutation of a spawn attempt, so a rejected
// spawn is a no-op apart from its failure signal.
func (s *CallStack) canPush() bool {
	return len(s.frames) < MaxCallDepth
}

// push adds the given frame as the new current frame. It reports false,
// leaving the stack unchanged, if the depth bound is exceeded.
func (s *CallStack) push(f *Frame) bool {
	if !s.canPush() {
		return false
	}
	s.frames = append(s.frames, f)
	return true
}

// pop removes and returns the current frame, or nil on an empty stack.
func (s *CallStack) pop() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	f := s.frames[len(s.frames)-1]
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	return f
}

// top returns the current frame without removing it, or nil on an empty
// stack.
func (s *CallStack) top() *Frame {
	if len(s.frames) == 0 {
		return nil
	}
	return s.frames[len(s.frames)-1]
}

func (s *CallStack) depth() int {
	return len(s.frames)
}
