// Package astro is a client for the "people in space" API
// (GET {baseURL}/astros.json).
//
// # Overview
//
// The client offers two decode modes and two invocation styles:
//  1. GetRaw returns the unparsed body.
//  2. GetAstroResponse decodes the body into models.AstroResponse and blocks
//     until the response arrives or the underlying http.Client times out.
//  3. GetAstroResponseAsync starts the same request on its own goroutine and
//     returns a Pending handle at once. Pending.Wait bounds the wait; when the
//     bound elapses the in-flight request is cancelled and abandoned.
//
// # Error Handling
//
// Failures are reported with the sentinels from package common, matched with
// errors.Is: ErrTransport (network failure, non-2xx status), ErrDecode (body
// is not the expected JSON shape) and ErrTimeout (Pending.Wait bound elapsed).
//
// # Concurrency
//
// A Client is immutable after construction and safe for concurrent use.
package astro
