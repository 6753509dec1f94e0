// Package api provides the HTTP transport layer: handlers, request and
// response models, and the mapping from internal failures to the fixed
// response envelope.
package api
