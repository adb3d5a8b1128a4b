package concurrent

import (
	"sync"
)

type JobFunc[T any, G any] func(job T) G

// WorkerPool runs JobFunc over queued jobs on a fixed number of goroutines. Results arrive in
// completion order; jobs that need their position back must carry it.
type WorkerPool[T any, G any] struct {
	numWorkers int
	jobQueue   chan T
	results    chan G
	wg         sync.WaitGroup
}

func NewWorkerPool[T any, G any](numWorkers, jobQueueSize int) *WorkerPool[T, G] {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &WorkerPool[T, G]{
		numWorkers: numWorkers,
		jobQueue:   make(chan T, jobQueueSize),
		results:    make(chan G, jobQueueSize),
	}
}

func (wp *WorkerPool[T, G]) worker(jobFunc JobFunc[T, G]) {
	defer wp.wg.Done()
	for job := range wp.jobQueue {
		wp.results <- jobFunc(job)
	}
}

func (wp *WorkerPool[T, G]) Start(jobFunc JobFunc[T, G]) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(jobFunc)
	}
}

// Wait blocks until every worker exits, then closes the result channel. Call Close first.
func (wp *WorkerPool[T, G]) Wait() {
	wp.wg.Wait()
	close(wp.results)
}

func (wp *WorkerPool[T, G]) AddJob(job T) {
	wp.jobQueue <- job
}

func (wp *WorkerPool[T, G]) CollectResults() <-chan G {
	return wp.results
}

// Close stops accepting jobs, queued jobs still run.
func (wp *WorkerPool[T, G]) Close() {
	close(wp.jobQueue)
}

// Indexed tags a value with its position in the input.
type Indexed[T any] struct {
	Index int
	Value T
}

// Map applies fn to every job on numWorkers goroutines and returns the outputs in input order.
func Map[T any, G any](numWorkers int, jobs []T, fn func(job T) G) []G {
	wp := NewWorkerPool[Indexed[T], Indexed[G]](numWorkers, len(jobs))
	wp.Start(func(job Indexed[T]) Indexed[G] {
		return Indexed[G]{Index: job.Index, Value: fn(job.Value)}
	})

	for i, job := range jobs {
		wp.AddJob(Indexed[T]{Index: i, Value: job})
	}
	wp.Close()
	wp.Wait()

	out := make([]G, len(jobs))
	for res := range wp.CollectResults() {
		out[res.Index] = res.Value
	}
	return out
}
