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
	"errors"
	"fmt"

	goerrors "github.com/go-errors/errors"
)

var (
	// ErrNoState will be returned when an operation is attempted on a handle
	// that references no shared state, which is the case for zero value
	// handles, handles consumed by a previous Get, Then, Unwrap, or Share
	// call, and promises after a Close call.
	ErrNoState = errors.New("no associated shared state")

	// ErrFutureAlreadyRetrieved will be returned when a second future is
	// requested from the same promise.
	ErrFutureAlreadyRetrieved = errors.New("future already retrieved")

	// ErrPromiseAlreadySatisfied will be returned when a second write is
	// attempted on an already resolved(or already broken) shared state.
	ErrPromiseAlreadySatisfied = errors.New("promise already satisfied")

	// ErrBrokenPromise will be returned from a future whose promise was
	// closed without ever being satisfied, and from an unwrapped future
	// whose inner future was invalid.
	ErrBrokenPromise = errors.New("broken promise")
)

// panic messages
const (
	nilContinuationPanicMsg = "future: the provided continuation is nil"
	nilErrorPanicMsg        = "future: the provided error is nil"
	nilTaskPanicMsg         = "future: the provided task function is nil"
)

// PanicError wraps a panic that happened inside a continuation or an Async
// task, carrying the panic value and the stack of the panicking goroutine.
type PanicError struct {
	v     any
	stack []byte
}

func newPanicError(v any) *PanicError {
	// skip the recover site and the runtime's panic frames, so the stack
	// starts at the panicking call.
	return &PanicError{v: v, stack: goerrors.Wrap(v, 3).Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic in the future chain: %v", e.v)
}

// V returns the value that the panic happened with.
func (e *PanicError) V() any {
	return e.v
}

// Stack returns the formatted stack trace of the goroutine that panicked,
// captured at recovery time.
func (e *PanicError) Stack() []byte {
	return e.stack
}

func (e *PanicError) Unwrap() error {
	if err, ok := e.v.(error); ok {
		return err
	}
	return nil
}
