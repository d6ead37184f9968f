// Package api implements the HTTP boundary: request/response models,
// handlers for each resource and the mapping from internal errors to
// status codes.
package api
