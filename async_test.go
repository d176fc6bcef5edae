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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAsyncBasic(t *testing.T) {
	f := Async(func() (int, error) {
		return 42, nil
	})

	v, err := f.Get()
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

func TestAsyncError(t *testing.T) {
	wantErr := newStrError()

	f := Async(func() (int, error) {
		return 0, wantErr
	})

	_, err := f.Get()
	require.ErrorIs(t, err, wantErr)
}

func TestAsyncPanic(t *testing.T) {
	panicValue := "test_panic"

	f := Async(func() (int, error) {
		panic(panicValue)
	})

	_, err := f.Get()
	var panicErr *PanicError
	require.ErrorAs(t, err, &panicErr)
	require.Equal(t, panicValue, panicErr.V())
	require.NotEmpty(t, panicErr.Stack())
}

func TestAsyncPanicWithError(t *testing.T) {
	wantErr := newPtrError()

	f := Async(func() (int, error) {
		panic(wantErr)
	})

	_, err := f.Get()
	require.ErrorIs(t, err, wantErr)
}

func TestAsyncNilTask(t *testing.T) {
	require.PanicsWithValue(t, nilTaskPanicMsg, func() {
		_ = Async[int](nil)
	})
}

func TestAsyncThen(t *testing.T) {
	f := Async(func() (int, error) {
		return 10, nil
	})

	thened, err := Then(f, func(f *Future[int]) (int, error) {
		v, err := f.Get()
		return v * 5, err
	})
	require.NoError(t, err)

	v, err := thened.Get()
	require.NoError(t, err)
	require.Equal(t, 50, v)
}

func TestAsyncShare(t *testing.T) {
	f := Async(func() (int, error) {
		return 3, nil
	})

	sf, err := f.Share()
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		v, err := sf.Get()
		require.NoError(t, err)
		require.Equal(t, 3, v)
	}
}
