// Package task runs background work for the job tracker.
//
// A TaskFactoryEventHandler turns job_lifecycle events into JobLifecycleTasks
// and hands them to a TaskRunner, which executes each one on its own goroutine
// detached from the request that created the job. The lifecycle task drives a
// stored job through processing and analyzing, asks a generation.Generator for
// the reply, and finalizes the job as completed, or as failed with
// ApologyMessage when any step goes wrong.
package task
