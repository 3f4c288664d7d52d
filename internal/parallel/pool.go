// Package parallel runs independent rendering jobs on a fixed set of
// goroutines.
package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
)

// Job is a unit of work, typically rendering and saving one image.
type Job func() error

// Pool is a fixed set of workers with one queue each. An idle worker steals
// from the other queues before blocking on its own, so a slow job does not
// hold back the rest of a batch.
//
// Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	own := p.queues[id]

	for {
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
			continue
		default:
		}

		if fn := p.steal(id); fn != nil {
			fn()
			continue
		}
		select {
		case <-p.done:
			drain(own)
			return
		case fn := <-own:
			fn()
		}
	}
}

func drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

// steal takes one queued function from another worker, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// ErrClosed is returned for jobs submitted after Close.
var ErrClosed = errors.New("parallel: pool closed")

// Run executes jobs round-robin across the workers and waits for all of
// them. The result holds one error per job, in job order, nil for jobs that
// succeeded.
func (p *Pool) Run(jobs []Job) []error {
	errs := make([]error, len(jobs))
	if !p.running.Load() {
		for i := range errs {
			errs[i] = ErrClosed
		}
		return errs
	}

	var wg sync.WaitGroup
	wg.Add(len(jobs))
	for i, job := range jobs {
		fn := func() {
			defer wg.Done()
			errs[i] = job()
		}
		select {
		case p.queues[i%p.workers] <- fn:
		case <-p.done:
			errs[i] = ErrClosed
			wg.Done()
		}
	}
	wg.Wait()
	return errs
}

// Close stops the pool after running everything already queued.
// It is safe to call more than once.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
