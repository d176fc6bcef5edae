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

// Package future provides a single-producer, single-consumer result channel,
// in the shape of a Promise/Future pair sharing a one-shot state.
//
// A Promise is the write side: it hands out exactly one Future, and accepts
// exactly one value or error. A Future is the read side: it blocks or polls
// on the shared state, and hands the result over exactly once.
//
// A shared state has three states, and it can be in only one of them, at any
// time:
// Pending: no result has been committed yet.
// HasValue: a value has been committed, through Promise.SetValue.
// HasError: an error has been committed, through Promise.SetError, through
// breaking the promise, or through a panicking continuation.
//
// The state transitions at most once, from Pending to either terminal state,
// and never reverts.
//
// General Notes:-
//
// * Once the shared state is resolved, its result will not change.
//
// * At most one Future is ever handed out per Promise, a second GetFuture
// call fails with ErrFutureAlreadyRetrieved.
//
// * At most one write ever succeeds per Promise, a second SetValue or
// SetError call fails with ErrPromiseAlreadySatisfied.
//
// * Future.Get consumes the handle, a second Get call fails with ErrNoState.
//
// * A zero value Promise or Future references no shared state, and all of
// its operations fail with ErrNoState.
//
// * Closing a Promise that was never satisfied breaks its shared state, and
// releases any waiter with ErrBrokenPromise.
//
// Continuation Notes:-
//
// * Then attaches a continuation to a Future and returns a new Future for
// the continuation's own result. The original Future handle is consumed.
//
// * Continuations run inline, either on the goroutine that resolves the
// shared state, or, if the state is already resolved, on the goroutine that
// calls Then. There is no worker pool and no executor abstraction.
//
// * An error returned by a continuation, or a panic raised inside one, is
// captured into the continuation's own shared state, never propagated to the
// resolving goroutine. A captured panic surfaces as a *PanicError.
//
// * Unwrap flattens a Future of a Future into a single Future that resolves
// only once both layers resolve.
//
// There is no cancellation and there are no timeouts: a blocked Wait or Get
// call returns only when the shared state is resolved or its Promise is
// closed.
package future
