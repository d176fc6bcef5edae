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

// Promise is the write side of a promise/future pair.
//
// A Promise hands out exactly one Future, through GetFuture, and accepts
// exactly one value or error, through SetValue or SetError.
//
// The zero value references no shared state, and all of its operations fail
// with ErrNoState.
type Promise[T any] struct {
	state *sharedState[T]
}

// NewPromise returns a Promise referencing a fresh, pending shared state.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{state: newState[T]()}
}

// GetFuture returns the Future paired with this Promise.
// The first call succeeds, any following call fails with
// ErrFutureAlreadyRetrieved.
func (p *Promise[T]) GetFuture() (*Future[T], error) {
	if p == nil || p.state == nil {
		return nil, ErrNoState
	}
	if err := p.state.markRetrieved(); err != nil {
		return nil, err
	}
	return &Future[T]{state: p.state}, nil
}

// SetValue resolves the shared state with val, wakes any goroutine blocked
// in Wait or Get, and runs the attached continuation, if any, before
// returning.
// It fails with ErrPromiseAlreadySatisfied if the shared state was already
// resolved, including by a previous Close.
func (p *Promise[T]) SetValue(val T) error {
	if p == nil || p.state == nil {
		return ErrNoState
	}
	return p.state.setValue(val)
}

// SetError resolves the shared state with err, wakes any goroutine blocked
// in Wait or Get, and runs the attached continuation, if any, before
// returning.
// The error is stored and later surfaced by Get verbatim.
// It fails with ErrPromiseAlreadySatisfied if the shared state was already
// resolved, including by a previous Close.
//
// SetError panics if err is nil.
func (p *Promise[T]) SetError(err error) error {
	if err == nil {
		panic(nilErrorPanicMsg)
	}
	if p == nil || p.state == nil {
		return ErrNoState
	}
	return p.state.setError(err)
}

// Close releases the Promise's reference to its shared state.
// If the shared state is still pending, it's resolved with ErrBrokenPromise,
// and any waiter on the paired Future is released.
// If the shared state was already satisfied, Close has no observable effect.
//
// Close is idempotent, and safe to defer right after NewPromise. After it
// returns, all operations on the Promise fail with ErrNoState.
func (p *Promise[T]) Close() {
	if p == nil || p.state == nil {
		return
	}
	p.state.breakState()
	p.state = nil
}
