package htmltok

import (
	"errors"
	"fmt"
)

// Sentinel misuse errors, reported via onerror rather than returned from
// the parse loop proper: a tokenizer never throws out of the middle of
// a chunk, it only ever tells the callback sink about it.
var ErrAlreadyEnded = errors.New("htmltok: write or end called after end")

// UnknownStateError is reported via onerror when the driver loop's
// dispatch table is asked for a state outside its known range. This
// should never happen in practice; it exists so that misuse of the
// internal state field fails loudly instead of panicking or looping
// forever.
type UnknownStateError struct {
	State state
}

func (e UnknownStateError) Error() string {
	return fmt.Sprintf("htmltok: unknown internal state %d (%s)", int(e.State), e.State)
}
