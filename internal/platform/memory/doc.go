// Package memory provides a process-local implementation of store.JobStore.
// Nothing is persisted; all jobs and results are lost when the process exits.
package memory
