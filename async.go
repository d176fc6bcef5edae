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

// Async runs fn on a new goroutine, and returns a Future for its result.
//
// A non-nil error returned by fn resolves the Future to that error, and a
// panic raised inside fn resolves it to a *PanicError, so the panic never
// crashes the process through the spawned goroutine.
//
// Async panics if fn is nil.
func Async[T any](fn func() (T, error)) *Future[T] {
	if fn == nil {
		panic(nilTaskPanicMsg)
	}

	s := newState[T]()
	go func() {
		defer func() {
			if v := recover(); v != nil {
				_ = s.setError(newPanicError(v))
			}
		}()

		val, err := fn()
		commit(s, val, err)
	}()
	return &Future[T]{state: s}
}
