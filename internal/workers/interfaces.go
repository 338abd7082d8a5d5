// Package workers runs the background jobs of the replica on cron
// schedules.
// It defines the Worker interface and a Workers scheduler that registers
// workers under their names and runs them until its context is done.
package workers

// Worker is the interface that must be implemented by any background worker.
// Run performs one unit of work and returns; the scheduler decides when it
// fires. Name identifies the worker in logs and must be unique per
// scheduler.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Name() string { return "my-worker" }
//
//	func (w *MyWorker) Run() {
//	    // one pass of background processing
//	}
type Worker interface {
	Run()
	Name() string
}
