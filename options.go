package aez

import "github.com/go-aez/aez/internal/core"

// Option configures a Context at Setup time.
type Option func(*options)

type options struct {
	backend core.Backend
}

// WithConstantTime selects the bitsliced, constant-time AES4/AES10 round
// function instead of the (faster, but not constant-time) default scalar
// implementation. Use this whenever inputs might be attacker-influenced
// and timing side channels are a concern.
func WithConstantTime() Option {
	return func(o *options) { o.backend = core.BackendConstantTime }
}

// WithVartime selects the default scalar round function explicitly. It is
// only useful to override a prior WithConstantTime in a composed option
// list.
func WithVartime() Option {
	return func(o *options) { o.backend = core.BackendVartime }
}
