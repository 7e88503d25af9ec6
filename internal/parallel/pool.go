// Package parallel runs the row bands of large triangles on a fixed set of
// worker goroutines.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a fixed set of worker goroutines.
//
// Thread safety: Run may be called from several goroutines at once; each
// call waits only for its own work.
type Pool struct {
	workers int
	queue   chan func()
	wg      sync.WaitGroup
	closed  atomic.Bool
	once    sync.Once
}

// New starts a pool with the given number of workers. If workers is 0 or
// negative, GOMAXPROCS is used.
func New(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		workers: workers,
		queue:   make(chan func(), workers*4),
	}
	p.wg.Add(workers)
	for range workers {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for fn := range p.queue {
		fn()
	}
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Run calls fn(0) through fn(n-1) on the workers and returns when all calls
// have finished. After Close, or for a nil pool, the calls run on the
// calling goroutine.
func (p *Pool) Run(n int, fn func(i int)) {
	if n <= 0 {
		return
	}
	if p == nil || p.closed.Load() || n == 1 {
		for i := range n {
			fn(i)
		}
		return
	}

	var done sync.WaitGroup
	done.Add(n)
	for i := range n {
		p.queue <- func() {
			defer done.Done()
			fn(i)
		}
	}
	done.Wait()
}

// Close stops the workers once queued work has drained. It is safe to
// call more than once. Run must not be in progress.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.queue)
		p.wg.Wait()
	})
}
