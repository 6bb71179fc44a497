package renderer

import (
	"context"
	"runtime"
	"sync"
)

// tileTask represents one tile of pixels for the worker pool
type tileTask struct {
	tile Tile
	fb   *Framebuffer
}

// tileResult is the completion record for a rendered tile
type tileResult struct {
	pixelsDrawn int
}

// workerPool fans tile tasks out across a fixed set of goroutines.
// Both queues are buffered for a whole frame, so submitting tasks and
// reporting results never blocks a worker.
type workerPool struct {
	taskQueue   chan tileTask
	resultQueue chan tileResult
	numWorkers  int
	wg          sync.WaitGroup
}

// newWorkerPool creates a pool with the specified number of workers
func newWorkerPool(numWorkers, queueSize int) *workerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &workerPool{
		taskQueue:   make(chan tileTask, queueSize),
		resultQueue: make(chan tileResult, queueSize),
		numWorkers:  numWorkers,
	}
}

// start launches the workers. Each worker runs render once per task and
// exits when the task queue is closed or the context is cancelled.
func (wp *workerPool) start(ctx context.Context, render func(tileTask) tileResult) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task, ok := <-wp.taskQueue:
					if !ok {
						return
					}
					wp.resultQueue <- render(task)
				}
			}
		}()
	}
}

// submit queues a tile task. The queue is sized for the whole frame, so
// this never blocks.
func (wp *workerPool) submit(task tileTask) {
	wp.taskQueue <- task
}

// wait blocks until every worker has exited
func (wp *workerPool) wait() {
	close(wp.taskQueue)
	wp.wg.Wait()
}
