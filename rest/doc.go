// Package rest contains the signed-request plumbing shared by every Skyvault
// API operation.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic execution contract (see the Executor interface):
//     given an immutable Request, deliver exactly one Result carrying either
//     a Response envelope or an error.
//  2. A concrete implementation (see HTTPExecutor) that validates the
//     process-wide Config, computes the HMAC-SHA256 request signature, and
//     dispatches one net/http call per invocation through a swappable Doer.
//  3. The Result type used as the uniform outcome of every asynchronous
//     operation, and the Response envelope that normalizes status, headers
//     and body.
//
// # Error Handling
//
// Local preconditions and connectivity failures are exposed as sentinel
// errors matched with errors.Is: ErrNotInitialized, ErrConnection. Server
// error payloads are never converted to failures at this layer; a received
// response is always a success Result, and the caller decodes the body via
// Response.APIError once the status code says so.
//
// Concurrency & Contexts
//
// Executor implementations must be safe for concurrent use. Each Do call is
// independent: no queueing, no retry, no ordering guarantee between calls.
// The completion callback fires exactly once, on the executor's goroutine.
package rest
