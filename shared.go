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

// SharedFuture is a repeatable, copyable view over a shared state.
//
// Unlike Future, its Get call doesn't consume the handle: it returns a copy
// of the committed value, as many times as needed, from as many goroutines
// as needed, concurrently.
// Copying the SharedFuture value shares the referenced state.
//
// The zero value references no shared state, and all of its operations fail
// with ErrNoState.
type SharedFuture[T any] struct {
	state *sharedState[T]
}

// Share converts the Future into a SharedFuture over the same shared state.
// It consumes the handle f, and fails with ErrNoState if f is invalid.
func (f *Future[T]) Share() (*SharedFuture[T], error) {
	if f == nil || f.state == nil {
		return nil, ErrNoState
	}

	s := f.state
	f.state = nil
	return &SharedFuture[T]{state: s}, nil
}

// Valid reports whether this handle references a shared state.
func (f *SharedFuture[T]) Valid() bool {
	return f != nil && f.state != nil
}

// Wait blocks the calling goroutine until the shared state is resolved.
// It fails with ErrNoState if the handle is invalid.
func (f *SharedFuture[T]) Wait() error {
	if f == nil || f.state == nil {
		return ErrNoState
	}
	f.state.wait()
	return nil
}

// Ready reports whether the shared state is resolved, without blocking.
// It fails with ErrNoState if the handle is invalid.
func (f *SharedFuture[T]) Ready() (bool, error) {
	if f == nil || f.state == nil {
		return false, ErrNoState
	}
	return f.state.ready(), nil
}

// Get waits until the shared state is resolved, then returns a copy of the
// committed value, or the committed error verbatim.
// Unlike Future.Get, it doesn't consume the handle, and may be called any
// number of times, concurrently.
func (f *SharedFuture[T]) Get() (T, error) {
	if f == nil || f.state == nil {
		var zero T
		return zero, ErrNoState
	}
	return f.state.result(f.state.wait())
}
