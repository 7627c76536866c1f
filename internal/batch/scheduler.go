// Package batch time-slices large units of work into fixed-size batches so
// a full-page activation never freezes interaction. The scheduler
// abstraction is decoupled from any concrete event-loop primitive: the same
// flow runs under the serial executor in the server and synchronously in
// tests.
package batch

import "sync"

// Scheduler runs onBatch over [0, total) in slices of batchSize, then calls
// onDone exactly once. Suspension happens only at batch boundaries; no
// batch is split mid-item. There is no cancellation primitive: callers that
// stop caring simply ignore the output, and batch callbacks must tolerate
// the world having moved on underneath them.
type Scheduler interface {
	Schedule(total, batchSize int, onBatch func(start, end int), onDone func())
}

// Run schedules fn over items in batches of size using s.
func Run[T any](s Scheduler, items []T, size int, fn func([]T), done func()) {
	s.Schedule(len(items), size, func(start, end int) {
		fn(items[start:end])
	}, done)
}

// Immediate runs every batch synchronously on the calling goroutine.
type Immediate struct{}

func (Immediate) Schedule(total, batchSize int, onBatch func(start, end int), onDone func()) {
	if batchSize <= 0 {
		batchSize = 1
	}
	for start := 0; start < total; start += batchSize {
		end := start + batchSize
		if end > total {
			end = total
		}
		onBatch(start, end)
	}
	if onDone != nil {
		onDone()
	}
}

// Serial yields between batches by re-queueing the continuation on a single
// executor goroutine, the moral equivalent of a zero-delay deferred
// callback: other queued work interleaves at batch boundaries.
type Serial struct {
	queue chan func()

	closeOnce sync.Once
	closed    chan struct{}
}

// NewSerial starts the executor goroutine.
func NewSerial() *Serial {
	s := &Serial{
		queue:  make(chan func(), 128),
		closed: make(chan struct{}),
	}
	go s.loop()
	return s
}

func (s *Serial) loop() {
	for {
		select {
		case fn := <-s.queue:
			fn()
		case <-s.closed:
			return
		}
	}
}

// Close stops the executor. Already-queued batches are dropped; per the
// no-cancellation policy nothing consumes their output anyway.
func (s *Serial) Close() {
	s.closeOnce.Do(func() { close(s.closed) })
}

func (s *Serial) Schedule(total, batchSize int, onBatch func(start, end int), onDone func()) {
	if batchSize <= 0 {
		batchSize = 1
	}
	var step func(start int)
	step = func(start int) {
		if start >= total {
			if onDone != nil {
				onDone()
			}
			return
		}
		end := start + batchSize
		if end > total {
			end = total
		}
		onBatch(start, end)
		s.yield(func() { step(end) })
	}
	s.enqueue(func() { step(0) })
}

func (s *Serial) enqueue(fn func()) {
	select {
	case s.queue <- fn:
	case <-s.closed:
	}
}

// yield re-queues a continuation from the executor goroutine itself. The
// executor is the queue's only consumer, so a blocking send here would
// wedge every queued schedule; when the queue is full the continuation runs
// inline instead, trading one yield point for liveness.
func (s *Serial) yield(fn func()) {
	select {
	case s.queue <- fn:
	case <-s.closed:
	default:
		fn()
	}
}
