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

// Future is the read side of a promise/future pair.
//
// A Future is obtained from Promise.GetFuture, from Then, from Unwrap, or
// from Async, and hands its result over exactly once, through Get.
//
// The zero value references no shared state, and all of its operations fail
// with ErrNoState.
type Future[T any] struct {
	state *sharedState[T]
}

// Valid reports whether this handle currently references a shared state.
// It returns false for zero value handles, and for handles consumed by a
// previous Get, Then, Unwrap, or Share call.
func (f *Future[T]) Valid() bool {
	return f != nil && f.state != nil
}

// Wait blocks the calling goroutine until the shared state is resolved.
// It returns immediately if the shared state is already resolved.
// It fails with ErrNoState if the handle is invalid.
func (f *Future[T]) Wait() error {
	if f == nil || f.state == nil {
		return ErrNoState
	}
	f.state.wait()
	return nil
}

// Ready reports whether the shared state is resolved, without blocking.
// It fails with ErrNoState if the handle is invalid.
func (f *Future[T]) Ready() (bool, error) {
	if f == nil || f.state == nil {
		return false, ErrNoState
	}
	return f.state.ready(), nil
}

// Get waits until the shared state is resolved, then returns the committed
// value, or the committed error verbatim.
//
// Get consumes the handle: after it returns, Valid reports false, and any
// following Get or Wait call fails with ErrNoState.
func (f *Future[T]) Get() (T, error) {
	if f == nil || f.state == nil {
		var zero T
		return zero, ErrNoState
	}

	s := f.state
	f.state = nil
	return s.result(s.wait())
}

// Then attaches cont as the continuation of f, and returns a new Future for
// cont's own result.
//
// cont runs inline on whichever goroutine resolves f's shared state, or
// inline on the calling goroutine if the shared state is already resolved.
// It receives a fresh, ready Future over the original result, so its first
// action is typically a Get call on it.
// A non-nil error returned by cont, or a panic raised inside it, is captured
// into the returned Future's shared state, never propagated to the resolving
// goroutine; a captured panic surfaces as a *PanicError.
//
// Then consumes the handle f, and fails with ErrNoState if f is invalid.
// Then panics if cont is nil.
func Then[T, R any](f *Future[T], cont func(*Future[T]) (R, error)) (*Future[R], error) {
	if cont == nil {
		panic(nilContinuationPanicMsg)
	}
	if f == nil || f.state == nil {
		return nil, ErrNoState
	}

	prev := f.state
	f.state = nil

	next := newState[R]()
	prev.addCallback(func(s *sharedState[T]) {
		runContinuation(next, &Future[T]{state: s}, cont)
	})
	return &Future[R]{state: next}, nil
}

// runContinuation runs cont against the resolved source future, and commits
// its outcome into next.
func runContinuation[T, R any](
	next *sharedState[R],
	src *Future[T],
	cont func(*Future[T]) (R, error),
) {
	// capture any panic from cont into next, instead of letting it escape
	// to the resolving goroutine's caller.
	defer func() {
		if v := recover(); v != nil {
			_ = next.setError(newPanicError(v))
		}
	}()

	val, err := cont(src)
	commit(next, val, err)
}

// commit resolves s with err if it's non-nil, or with val otherwise.
// The resolve result is discarded: every commit call site targets a state
// that only this callback chain may resolve.
func commit[T any](s *sharedState[T], val T, err error) {
	if err != nil {
		_ = s.setError(err)
		return
	}
	_ = s.setValue(val)
}

// Unwrap flattens a Future of a Future into a single Future, which resolves
// only once both the outer and the nested inner future are resolved.
//
// If the outer future resolves to an error, that error propagates to the
// returned Future. If it resolves to an invalid(or nil) inner future, the
// returned Future resolves to ErrBrokenPromise. Otherwise the inner future
// is consumed, and its eventual value or error is forwarded.
//
// Unwrap consumes the handle outer, and fails with ErrNoState if outer is
// already invalid at the time of the call.
func Unwrap[T any](outer *Future[*Future[T]]) (*Future[T], error) {
	if outer == nil || outer.state == nil {
		return nil, ErrNoState
	}

	prev := outer.state
	outer.state = nil

	next := newState[T]()
	prev.addCallback(func(s *sharedState[*Future[T]]) {
		inner, err := s.result(s.status.Load())
		if err != nil {
			_ = next.setError(err)
			return
		}
		if !inner.Valid() {
			_ = next.setError(ErrBrokenPromise)
			return
		}

		// consume the inner future, and forward its eventual result.
		in := inner.state
		inner.state = nil
		in.addCallback(func(is *sharedState[T]) {
			val, err := is.result(is.status.Load())
			commit(next, val, err)
		})
	})
	return &Future[T]{state: next}, nil
}
