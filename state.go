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

package future

import (
	"sync"

	"github.com/asmsh/future/internal/status"
)

// sharedState is the object jointly referenced by a Promise and its Future.
// It holds the eventual result, the status word that discriminates it, and
// the synchronization needed between the resolving goroutine and the
// observing one.
type sharedState[T any] struct {
	// holds the state, fate, and flags of this shared state.
	// refer to the docs of the FutureStatus type for more info.
	status status.FutureStatus

	// closed exactly once, by the resolving call, after the payload and the
	// status are committed.
	// receiving from it is the blocking half of wait; the close is the only
	// wake-up signal there is, as there's no cancellation and no timeouts.
	done chan struct{}

	// the payload storage.
	// the active field is the one matching the state section of the status
	// word; both fields stay zero while the state is pending.
	//
	// don't read either field unless the fate is known to be resolved.
	val T
	err error

	// cbMu guards the callback slot only, never the payload nor the status.
	cbMu     sync.Mutex
	callback func(*sharedState[T])
}

func newState[T any]() *sharedState[T] {
	return &sharedState[T]{done: make(chan struct{})}
}

// setValue commits val and resolves the shared state to HasValue.
// It fails with ErrPromiseAlreadySatisfied if some other call resolved, or
// is currently resolving, the shared state.
func (s *sharedState[T]) setValue(val T) error {
	if set, _ := s.status.SetResolving(); !set {
		return ErrPromiseAlreadySatisfied
	}

	// the claim succeeded, so from here on this goroutine is the only one
	// that may touch the payload.
	s.val = val
	s.status.SetValueResolved()
	close(s.done)

	s.runCallback()
	return nil
}

// setError commits err and resolves the shared state to HasError.
// It fails with ErrPromiseAlreadySatisfied if some other call resolved, or
// is currently resolving, the shared state.
func (s *sharedState[T]) setError(err error) error {
	if set, _ := s.status.SetResolving(); !set {
		return ErrPromiseAlreadySatisfied
	}

	s.err = err
	s.status.SetErrorResolved()
	close(s.done)

	s.runCallback()
	return nil
}

// runCallback invokes the attached continuation, if any, exactly once.
// It must run after the done chan is closed, holding no locks across the
// invocation, so the continuation may freely call back into this shared
// state, or chain new states, before returning.
func (s *sharedState[T]) runCallback() {
	s.cbMu.Lock()
	cb := s.callback
	s.callback = nil
	s.cbMu.Unlock()

	if cb != nil {
		cb(s)
	}
}

// wait blocks the calling goroutine until the shared state is resolved, and
// returns the up-to-date status value.
// It returns immediately if the shared state is already resolved.
func (s *sharedState[T]) wait() (st uint32) {
	st = s.status.Load()

	// if the fate is 'Resolved', don't wait, as it's guaranteed to be set
	// after the payload is stored, and before the done chan is closed.
	if status.IsFateResolved(st) {
		return st
	}

	// the chan will always be closed by the resolving call, after setting
	// the payload and status fields as expected.
	<-s.done

	return s.status.Load()
}

// ready reports whether the shared state is resolved, without blocking.
func (s *sharedState[T]) ready() bool {
	return status.IsFateResolved(s.status.Load())
}

// result returns the committed payload, according to the state section of
// the passed status value.
// The caller must have already observed a resolved fate, normally through
// wait.
func (s *sharedState[T]) result(st uint32) (T, error) {
	if status.IsStateHasError(st) {
		var zero T
		return zero, s.err
	}
	return s.val, nil
}

// markRetrieved flips the retrieved flag.
// The first call succeeds, any following call fails with
// ErrFutureAlreadyRetrieved.
func (s *sharedState[T]) markRetrieved() error {
	if first, _ := s.status.SetRetrieved(); !first {
		return ErrFutureAlreadyRetrieved
	}
	return nil
}

// addCallback attaches fn, to be invoked exactly once with this shared state
// after it's resolved.
// If the shared state is already resolved, fn is invoked inline, before
// addCallback returns. Otherwise fn is invoked inline on whichever goroutine
// performs the resolving write.
// At most one callback may ever be attached per shared state; chaining
// attaches to newly created states, never re-attaches to the same one.
func (s *sharedState[T]) addCallback(fn func(*sharedState[T])) {
	if first, _ := s.status.SetCallback(); !first {
		panic("future: internal: callback already attached")
	}

	s.cbMu.Lock()
	// the fate check must happen under cbMu: a resolving call sets the fate
	// before taking cbMu to collect the callback, so either it will observe
	// this store, or this check observes its resolution.
	if status.IsFateResolved(s.status.Load()) {
		s.cbMu.Unlock()
		fn(s)
		return
	}
	s.callback = fn
	s.cbMu.Unlock()
}

// breakState resolves a still-pending shared state with ErrBrokenPromise,
// releasing any waiter.
// Already-resolved states are left untouched.
func (s *sharedState[T]) breakState() {
	_ = s.setError(ErrBrokenPromise)
}
