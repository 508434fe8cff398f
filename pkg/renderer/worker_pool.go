package renderer

import (
	"math/rand"
	"runtime"
	"sync"
)

// columnTask represents one image column to render
type columnTask struct {
	X int
}

// WorkerPool renders image columns in parallel. Workers share the
// scene by read-only reference; each worker carries its own random
// generator so dispersion jitter stays deterministic per worker.
type WorkerPool struct {
	taskQueue  chan columnTask
	numWorkers int
	wg         sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(width, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:  make(chan columnTask, width),
		numWorkers: numWorkers,
	}
}

// Start begins all workers. Each worker pulls columns off the queue and
// hands them to renderColumn together with its private generator.
func (wp *WorkerPool) Start(seed int64, renderColumn func(x int, random *rand.Rand)) {
	for i := 0; i < wp.numWorkers; i++ {
		random := rand.New(rand.NewSource(seed + int64(i)))

		wp.wg.Add(1)
		go func(random *rand.Rand) {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				renderColumn(task.X, random)
			}
		}(random)
	}
}

// Submit queues a column for rendering
func (wp *WorkerPool) Submit(x int) {
	wp.taskQueue <- columnTask{X: x}
}

// Stop closes the queue and waits for all workers to finish
func (wp *WorkerPool) Stop() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
