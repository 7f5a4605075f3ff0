// Package service contains the job tracker's use cases.
//
// JobService validates client input, stores new jobs, starts their lifecycle
// through an events.EventEmitter, and builds the read views returned by the
// API. It depends on the store.JobStore interface and never on a concrete
// storage implementation.
package service
