// Package api handles incoming HTTP requests, request validation, and
// response formatting for the job endpoints and the health check. It acts
// as an adapter between external clients and the job service, translating
// HTTP concerns to business operations and service errors back to status
// codes with client-safe messages.
package api
