package output

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err is a broken/closed pipe, as seen
// when a downstream consumer (like `head`) closes early.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe))
}
