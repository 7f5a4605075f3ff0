// Package store defines interfaces for job storage operations.
// These interfaces abstract the underlying storage mechanism from
// the application's core logic, allowing the lifecycle pipeline, the
// service layer, and the eviction sweeper to share one store handle.
package store
