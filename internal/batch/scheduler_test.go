package batch

import (
	"sync"
	"testing"
	"time"
)

func TestImmediateSlicesInOrder(t *testing.T) {
	var bounds [][2]int
	doneCalls := 0
	Immediate{}.Schedule(25, 10, func(start, end int) {
		bounds = append(bounds, [2]int{start, end})
	}, func() { doneCalls++ })

	want := [][2]int{{0, 10}, {10, 20}, {20, 25}}
	if len(bounds) != len(want) {
		t.Fatalf("got %d batches, want %d", len(bounds), len(want))
	}
	for i := range want {
		if bounds[i] != want[i] {
			t.Errorf("batch %d = %v, want %v", i, bounds[i], want[i])
		}
	}
	if doneCalls != 1 {
		t.Fatalf("onDone ran %d times", doneCalls)
	}
}

func TestImmediateEmptyInputStillCompletes(t *testing.T) {
	doneCalls := 0
	Immediate{}.Schedule(0, 10, func(start, end int) {
		t.Fatalf("unexpected batch %d..%d", start, end)
	}, func() { doneCalls++ })
	if doneCalls != 1 {
		t.Fatalf("onDone ran %d times", doneCalls)
	}
}

func TestImmediateCorrectsNonPositiveBatchSize(t *testing.T) {
	count := 0
	Immediate{}.Schedule(3, 0, func(start, end int) {
		if end-start != 1 {
			t.Fatalf("batch %d..%d, want single item", start, end)
		}
		count++
	}, nil)
	if count != 3 {
		t.Fatalf("ran %d batches, want 3", count)
	}
}

func TestRunPassesSlices(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	var seen []string
	Run(Immediate{}, items, 2, func(chunk []string) {
		seen = append(seen, chunk...)
	}, nil)
	if len(seen) != len(items) {
		t.Fatalf("saw %d items, want %d", len(seen), len(items))
	}
	for i := range items {
		if seen[i] != items[i] {
			t.Fatalf("item %d = %q, want %q", i, seen[i], items[i])
		}
	}
}

func TestSerialPreservesOrderAndCompletes(t *testing.T) {
	s := NewSerial()
	defer s.Close()

	var mu sync.Mutex
	var order []int
	done := make(chan struct{})

	s.Schedule(7, 3, func(start, end int) {
		mu.Lock()
		for i := start; i < end; i++ {
			order = append(order, i)
		}
		mu.Unlock()
	}, func() { close(done) })

	<-done
	mu.Lock()
	defer mu.Unlock()
	if len(order) != 7 {
		t.Fatalf("processed %d items, want 7", len(order))
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order[%d] = %d, items must be processed in order", i, v)
		}
	}
}

func TestSerialRunsSchedulesSequentially(t *testing.T) {
	s := NewSerial()
	defer s.Close()

	var mu sync.Mutex
	totals := make(map[string]int)
	var wg sync.WaitGroup
	wg.Add(2)

	record := func(label string, n int) {
		s.Schedule(n, 2, func(start, end int) {
			mu.Lock()
			totals[label] += end - start
			mu.Unlock()
		}, wg.Done)
	}
	record("first", 5)
	record("second", 4)
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if totals["first"] != 5 || totals["second"] != 4 {
		t.Fatalf("totals = %v", totals)
	}
}

func TestSerialCompletesWithSaturatedQueue(t *testing.T) {
	s := NewSerial()
	defer s.Close()

	gate := make(chan struct{})
	entered := make(chan struct{})
	done := make(chan struct{})

	s.Schedule(2, 1, func(start, end int) {
		if start == 0 {
			close(entered)
			<-gate
		}
	}, func() { close(done) })

	// Fill the queue while the executor is parked inside the first batch,
	// so its continuation cannot be re-queued.
	<-entered
	for i := 0; i < cap(s.queue); i++ {
		s.Schedule(1, 1, func(int, int) {}, nil)
	}
	close(gate)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("onDone never fired; executor wedged on its own continuation")
	}
}

func TestSerialCloseIsIdempotent(t *testing.T) {
	s := NewSerial()
	s.Close()
	s.Close()
	// Scheduling after close must not block.
	s.Schedule(3, 1, func(int, int) {}, nil)
}
