package reader

import (
	"errors"

	"github.com/ezrec/chario/channel"
	"github.com/ezrec/chario/translate"
)

var f = translate.From

var (
	// Iteration errors
	ErrEndOfInput = errors.New(f("end of input"))

	// Configuration errors
	ErrEncodingUnsupported = errors.New(f("encoding unsupported"))
)

type ErrEncodingName string

func (err ErrEncodingName) Error() string {
	return f("'%v' is not a supported encoding", string(err))
}

func (err ErrEncodingName) Is(target error) (ok bool) {
	ok = target == ErrEncodingUnsupported
	return
}

type ErrStrategyName string

func (err ErrStrategyName) Error() string {
	return f("'%v' is not a channel strategy", string(err))
}

func (err ErrStrategyName) Is(target error) (ok bool) {
	ok = target == channel.ErrConfigInvalid
	return
}
