// Copyright 2024 Ahmad Sameh(asmsh)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"runtime"
	"sync/atomic"
)

var (
	cas  = atomic.CompareAndSwapUint32
	load = atomic.LoadUint32
	swap = atomic.SwapUint32
)

// FutureStatus holds the value that defines and represents the lifecycle of
// the shared state of a promise/future pair.
// It's read and written/updated atomically.
type FutureStatus uint32

// the lock's related values and constants, using 4 bits(the [1st : 4th] bits)
const (
	// lockAcquired is the value of the status when some update call is
	// running(one of the Set methods).
	lockAcquired uint32 = 1 << iota
	_                   // reserved
	_                   // reserved
	_                   // reserved
)

// the state's related values and constants, using 2 bits(the [5th : 6th] bits)
const (
	// starting with a shift amount of 4, which is the number of bits used by
	// previous sections.

	// state modes, using 2 bits
	statePending  uint32 = iota << 4
	stateHasValue uint32 = iota << 4
	stateHasError uint32 = iota << 4
	_                    = iota << 4 // reserved

	// stateBitsSetMask and stateBitsClrMask are &-ed with the status to get
	// the state value and clear the state value, respectively.
	stateBitsSetMask uint32 = 3 << 4
	stateBitsClrMask        = ^stateBitsSetMask
)

// the fate's related values and constants, using 2 bits(the [7th : 8th] bits)
const (
	// starting with a shift amount of 6, which is the number of bits used by
	// previous sections.

	// fate modes, using 2 bits
	fateUnresolved uint32 = iota << 6
	fateResolving  uint32 = iota << 6
	fateResolved   uint32 = iota << 6
	_                     = iota << 6 // reserved

	// fateBitsSetMask and fateBitsClrMask are &-ed with the status to get
	// the fate value and clear the fate value, respectively.
	fateBitsSetMask uint32 = 3 << 6
	fateBitsClrMask        = ^fateBitsSetMask
)

// the flags' related values and constants, using 4 bits(the [9th : 12th] bits)
const (
	// starting with a shift amount of 8, which is the number of bits used by
	// previous sections.

	// FlagsRetrieved tells that a future has been handed out for this
	// shared state.
	FlagsRetrieved uint32 = 1 << (iota + 8)

	// FlagsCallbackSet tells that a continuation callback has been attached
	// to this shared state.
	FlagsCallbackSet uint32 = 1 << (iota + 8)
	_                       = 1 << (iota + 8) // reserved
	_                       = 1 << (iota + 8) // reserved
)

func (s *FutureStatus) readAndAcquireLock() (currentStatus uint32) {
	// read the current status value, and acquire the update lock,
	// by checking if there's any other, previous, update call is
	// still processing, and wait for it to finish.
	cs := swap((*uint32)(s), lockAcquired)
	for cs == lockAcquired {
		// don't actively wait for concurrent update calls, instead,
		// tell the go scheduler to run other goroutines(including the
		// one which has the lock) instead of the current(waiting) one.
		runtime.Gosched()
		cs = swap((*uint32)(s), lockAcquired)
	}
	// at this point, the value of the current status, cs, here is
	// only available to this method and its caller.
	return cs
}

func (s *FutureStatus) saveAndReleaseLock(newStatus uint32) {
	// save the new status value, and release the update lock
	if !cas((*uint32)(s), lockAcquired, newStatus) {
		// panic if the status value has been changed unexpectedly
		panic("future: internal: unexpected status change")
	}
}

// Load returns the current status value, if it's not being updated right now,
// and if it's, it waits until it's updated then return the value.
func (s *FutureStatus) Load() (currentStatus uint32) {
	// read the current status value, and return it, as long as the
	// read value is not the locked status, otherwise, wait until the
	// read value becomes different than the locked status.
	cs := load((*uint32)(s))
	for cs == lockAcquired {
		cs = load((*uint32)(s))
	}
	return cs
}

// SetResolving claims the one-time right to resolve this shared state.
// Only the caller that gets set = true may store the payload and follow up
// with SetValueResolved or SetErrorResolved.
// Any caller that gets set = false lost the race to an earlier write, or to
// the breaking of the state.
func (s *FutureStatus) SetResolving() (set bool, status uint32) {
	// read the current status value, and acquire the update lock
	cs := s.readAndAcquireLock()
	// create a new status value from the current one
	ns := cs

	// set the fate to resolving, only if the fate is unresolved
	if ns&fateBitsSetMask == fateUnresolved {
		ns &= fateBitsClrMask // clear the fate section
		ns |= fateResolving   // set the fate to resolving
		set = true            // this is the first set to resolving
	}

	// save the new status value, and release the update lock
	s.saveAndReleaseLock(ns)
	return set, ns
}

// SetValueResolved sets the state to HasValue and the fate to Resolved.
// It must be called only by the caller that claimed the fate through a
// previous SetResolving call, after the value payload has been stored.
func (s *FutureStatus) SetValueResolved() (status uint32) {
	return s.setResolved(stateHasValue)
}

// SetErrorResolved sets the state to HasError and the fate to Resolved.
// It must be called only by the caller that claimed the fate through a
// previous SetResolving call, after the error payload has been stored.
func (s *FutureStatus) SetErrorResolved() (status uint32) {
	return s.setResolved(stateHasError)
}

func (s *FutureStatus) setResolved(state uint32) (status uint32) {
	// read the current status value, and acquire the update lock
	cs := s.readAndAcquireLock()
	// create a new status value from the current one
	ns := cs

	// panic if the fate is not 'resolving', as that means the caller didn't
	// claim the fate through a SetResolving call first.
	if ns&fateBitsSetMask != fateResolving {
		// release the lock, so if the panic is recovered, the status is unlocked
		s.saveAndReleaseLock(ns)
		panic("future: internal: unexpected call to setResolved")
	}

	ns &= stateBitsClrMask // clear the state section
	ns &= fateBitsClrMask  // clear the fate section
	ns |= state            // set the state to the requested terminal state
	ns |= fateResolved     // set the fate to resolved

	// save the new status value, and release the update lock
	s.saveAndReleaseLock(ns)
	return ns
}

// SetRetrieved declares that a future has been handed out for this shared
// state.
// The first call returns first = true, any later call returns first = false.
func (s *FutureStatus) SetRetrieved() (first bool, status uint32) {
	return s.setFlag(FlagsRetrieved)
}

// SetCallback declares that a continuation callback has been attached to
// this shared state.
// The first call returns first = true, any later call returns first = false.
func (s *FutureStatus) SetCallback() (first bool, status uint32) {
	return s.setFlag(FlagsCallbackSet)
}

func (s *FutureStatus) setFlag(flag uint32) (first bool, status uint32) {
	// read the current status value, and acquire the update lock
	cs := s.readAndAcquireLock()
	// create a new status value from the current one
	ns := cs

	// set the flag, only if it hasn't been set before
	if ns&flag == 0 {
		ns |= flag
		first = true
	}

	// save the new status value, and release the update lock
	s.saveAndReleaseLock(ns)
	return first, ns
}
