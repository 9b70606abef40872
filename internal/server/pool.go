package server

import "sync"

// Pool is a fixed-size worker pool over an unbounded FIFO task queue.
// Workers block on a condition variable until a task arrives or the
// pool stops. Stop lets queued tasks drain: nothing already submitted
// is dropped, but no new task is accepted once stopping.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	tasks   []func()
	stopped bool
	wg      sync.WaitGroup
}

// NewPool starts a pool with the given number of workers.
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	p := &Pool{}
	p.cond = sync.NewCond(&p.mu)
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

// Submit enqueues a task. Returns false when the pool has stopped and
// the task was not accepted.
func (p *Pool) Submit(task func()) bool {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return false
	}
	p.tasks = append(p.tasks, task)
	p.mu.Unlock()
	p.cond.Signal()
	return true
}

// Stop marks the pool stopped, wakes every worker and waits for them
// to finish the remaining queue.
func (p *Pool) Stop() {
	p.mu.Lock()
	p.stopped = true
	p.mu.Unlock()
	p.cond.Broadcast()
	p.wg.Wait()
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for {
		p.mu.Lock()
		for len(p.tasks) == 0 && !p.stopped {
			p.cond.Wait()
		}
		if len(p.tasks) == 0 && p.stopped {
			p.mu.Unlock()
			return
		}
		task := p.tasks[0]
		p.tasks = p.tasks[1:]
		p.mu.Unlock()

		// Run outside the lock so one long task never blocks the queue.
		task()
	}
}
