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
	"sync"
	"sync/atomic"
	"testing"
)

func TestFutureStatus_ZeroValue(t *testing.T) {
	s := FutureStatus(0)
	cs := s.Load()

	if !IsStatePending(cs) {
		t.Errorf("IsStatePending(%b) = false, want: true", cs)
	}
	if !IsFateUnresolved(cs) {
		t.Errorf("IsFateUnresolved(%b) = false, want: true", cs)
	}
	if IsFlagsRetrieved(cs) {
		t.Errorf("IsFlagsRetrieved(%b) = true, want: false", cs)
	}
	if IsFlagsCallbackSet(cs) {
		t.Errorf("IsFlagsCallbackSet(%b) = true, want: false", cs)
	}
}

func TestFutureStatus_SetResolving(t *testing.T) {
	s := FutureStatus(0)

	set, cs := s.SetResolving()
	if !set {
		t.Fatal("SetResolving() = false, want: true")
	}
	if !IsFateResolving(cs) {
		t.Errorf("IsFateResolving(%b) = false, want: true", cs)
	}
	if !IsStatePending(cs) {
		t.Errorf("IsStatePending(%b) = false, want: true", cs)
	}

	// any following claim must fail
	set, _ = s.SetResolving()
	if set {
		t.Error("second SetResolving() = true, want: false")
	}
}

func TestFutureStatus_SetValueResolved(t *testing.T) {
	s := FutureStatus(0)
	s.SetResolving()

	cs := s.SetValueResolved()
	if !IsStateHasValue(cs) {
		t.Errorf("IsStateHasValue(%b) = false, want: true", cs)
	}
	if !IsFateResolved(cs) {
		t.Errorf("IsFateResolved(%b) = false, want: true", cs)
	}

	// the fate is terminal, no new claim may succeed
	if set, _ := s.SetResolving(); set {
		t.Error("SetResolving() after resolution = true, want: false")
	}
}

func TestFutureStatus_SetErrorResolved(t *testing.T) {
	s := FutureStatus(0)
	s.SetResolving()

	cs := s.SetErrorResolved()
	if !IsStateHasError(cs) {
		t.Errorf("IsStateHasError(%b) = false, want: true", cs)
	}
	if !IsFateResolved(cs) {
		t.Errorf("IsFateResolved(%b) = false, want: true", cs)
	}
}

func TestFutureStatus_SetResolvedWithoutClaim(t *testing.T) {
	defer func() {
		if v := recover(); v == nil {
			t.Fatal("expected a panic, but none happened")
		}
	}()

	s := FutureStatus(0)
	s.SetValueResolved()
}

func TestFutureStatus_SetRetrieved(t *testing.T) {
	s := FutureStatus(0)

	first, cs := s.SetRetrieved()
	if !first {
		t.Fatal("SetRetrieved() = false, want: true")
	}
	if !IsFlagsRetrieved(cs) {
		t.Errorf("IsFlagsRetrieved(%b) = false, want: true", cs)
	}

	first, _ = s.SetRetrieved()
	if first {
		t.Error("second SetRetrieved() = true, want: false")
	}
}

func TestFutureStatus_SetCallback(t *testing.T) {
	s := FutureStatus(0)

	first, cs := s.SetCallback()
	if !first {
		t.Fatal("SetCallback() = false, want: true")
	}
	if !IsFlagsCallbackSet(cs) {
		t.Errorf("IsFlagsCallbackSet(%b) = false, want: true", cs)
	}

	first, _ = s.SetCallback()
	if first {
		t.Error("second SetCallback() = true, want: false")
	}
}

func TestFutureStatus_FlagsSurviveResolution(t *testing.T) {
	s := FutureStatus(0)
	s.SetRetrieved()
	s.SetCallback()
	s.SetResolving()
	cs := s.SetValueResolved()

	if !IsFlagsRetrieved(cs) {
		t.Errorf("IsFlagsRetrieved(%b) = false, want: true", cs)
	}
	if !IsFlagsCallbackSet(cs) {
		t.Errorf("IsFlagsCallbackSet(%b) = false, want: true", cs)
	}
}

func TestFutureStatus_ConcurrentResolving(t *testing.T) {
	const n = 100

	s := FutureStatus(0)
	winners := int32(0)
	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if set, _ := s.SetResolving(); set {
				atomic.AddInt32(&winners, 1)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&winners); got != 1 {
		t.Errorf("got %d SetResolving winners, want: 1", got)
	}
}

func TestFutureStatus_ConcurrentRetrieved(t *testing.T) {
	const n = 100

	s := FutureStatus(0)
	firsts := int32(0)
	wg := sync.WaitGroup{}
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			if first, _ := s.SetRetrieved(); first {
				atomic.AddInt32(&firsts, 1)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&firsts); got != 1 {
		t.Errorf("got %d SetRetrieved firsts, want: 1", got)
	}
}

// the benchmarks call the SetRetrieved method, as all methods use the same
// technique, but only set different variables.

func BenchmarkFutureStatus_Setters(b *testing.B) {
	s := FutureStatus(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.SetRetrieved()
	}
}

func BenchmarkFutureStatus_Setters_Parallel(b *testing.B) {
	b.Run("normal", func(b *testing.B) {
		s := FutureStatus(0)
		b.ReportAllocs()
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				s.SetRetrieved()
			}
		})
	})
	b.Run("stressed", func(b *testing.B) {
		s := FutureStatus(0)
		b.ReportAllocs()
		b.SetParallelism(100)
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				s.SetRetrieved()
			}
		})
	})
}

func BenchmarkFutureStatus_Load(b *testing.B) {
	s := FutureStatus(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Load()
	}
}
