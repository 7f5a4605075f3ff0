// Package domain contains the core business entities of the job tracker:
// jobs, their lifecycle statuses, and the results generated for them.
// It is independent of any storage, transport, or scheduling mechanism.
package domain
