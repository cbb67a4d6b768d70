package common

import "errors"

var (
	// Store errors. Constraint violations and connectivity failures both
	// surface as ErrStorage.
	ErrStorage = errors.New("db error")

	// Remote API errors.
	ErrTransport = errors.New("transport error")
	ErrTimeout   = errors.New("timeout")
	ErrDecode    = errors.New("decode error")

	// Configuration / input errors.
	ErrInvalidRank   = errors.New("invalid rank")
	ErrUnknownDriver = errors.New("unknown database driver")
)
