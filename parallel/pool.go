// Package parallel runs independent jobs on a fixed number of goroutines.
package parallel

import (
	"runtime"
	"sync"
)

// Pool dispatches jobs to its workers. With a single worker jobs run inline
// in the caller of Do. A Pool runs one batch: once Close or Wait has been
// called, Do must not be called again.
type Pool struct {
	wg      sync.WaitGroup
	work    chan func()
	stop    func()
	workers int
}

// Start launches numWorkers workers. Values below 1 use GOMAXPROCS.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		workers: numWorkers,
		stop:    func() {},
	}
	if numWorkers == 1 {
		return pool
	}

	pool.work = make(chan func(), numWorkers)
	for range numWorkers {
		pool.wg.Go(func() {
			for f := range pool.work {
				f()
			}
		})
	}
	pool.stop = sync.OnceFunc(func() { close(pool.work) })

	return pool
}

// Workers is the number of goroutines running jobs.
func (p *Pool) Workers() int {
	return p.workers
}

// Do runs f on a worker, blocking while all workers are busy. Do must not
// be called after Close.
func (p *Pool) Do(f func()) {
	if p.work == nil {
		f()
		return
	}
	p.work <- f
}

// Close stops accepting jobs. It is safe to call more than once.
func (p *Pool) Close() {
	p.stop()
}

// Wait closes the pool and blocks until every submitted job has finished.
func (p *Pool) Wait() {
	p.Close()
	p.wg.Wait()
}
