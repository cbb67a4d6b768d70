// Package common contains shared constants and sentinel errors used across
// the officer store and the astronaut client.
package common

// RequestIDHeaderName is the HTTP header used to tag outbound requests so
// that client-side log lines can be correlated with a single call.
const RequestIDHeaderName = "X-Request-ID"
