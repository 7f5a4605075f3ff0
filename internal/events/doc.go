// Package events decouples job creation from job processing.
//
// The job service emits a TaskRequestEvent after storing a job; handlers
// registered on an EventEmitter turn the event into background work. Neither
// side imports the other.
package events
