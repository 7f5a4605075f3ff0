// Package generation defines the boundary between the job lifecycle and
// whatever produces reply text for a job message. The pipeline depends only on
// the Generator interface; concrete responders live under internal/platform.
package generation
