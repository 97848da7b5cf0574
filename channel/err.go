package channel

import (
	"errors"

	"github.com/ezrec/chario/translate"
)

var f = translate.From

var (
	// Construction errors
	ErrConfigInvalid = errors.New(f("configuration invalid"))
)

// ErrBufferSize reports a stream buffer size below the minimum.
type ErrBufferSize int

func (eb ErrBufferSize) Error() string {
	return f("buffer size %d below minimum %d", int(eb), STREAM_BUFFER_MINIMUM)
}

func (eb ErrBufferSize) Is(err error) (ok bool) {
	ok = err == ErrConfigInvalid
	return
}
