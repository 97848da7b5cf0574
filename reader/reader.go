// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package reader

import (
	"errors"
	"iter"
	"os"
	"strings"

	"github.com/ezrec/chario/channel"
)

// Reader decodes characters from a channel, one per call, tracking the
// exact byte position of the next undecoded byte.
type Reader struct {
	ch  channel.Channel
	enc Encoding
}

// Options selects the channel strategy and decoder for New. The zero
// value reads UTF-8 through a buffered channel of default size.
type Options struct {
	Encoding   Encoding
	Strategy   Strategy
	BufferSize int // buffered strategy only; zero selects the default
}

// New returns a reader over file using the given options. The handle is
// borrowed: the reader never moves its offset, and Close leaves it open.
func New(file *os.File, opt Options) (rd *Reader, err error) {
	var ch channel.Channel

	switch opt.Strategy {
	case STRATEGY_STREAM:
		var info os.FileInfo
		info, err = file.Stat()
		if err != nil {
			return
		}
		ch, err = channel.NewStream(file, info.Size(), opt.BufferSize)
	case STRATEGY_MAPPED:
		ch, err = channel.NewMapped(file)
	default:
		err = ErrStrategyName(opt.Strategy.String())
	}
	if err != nil {
		return
	}

	rd, err = NewWith(ch, opt.Encoding)
	if err != nil {
		ch.Close()
	}
	return
}

// NewWith returns a reader decoding enc from an existing channel.
func NewWith(ch channel.Channel, enc Encoding) (rd *Reader, err error) {
	switch enc {
	case ENCODING_UTF8, ENCODING_ISO8859_1:
	default:
		err = ErrEncodingName(enc.String())
		return
	}

	rd = &Reader{ch: ch, enc: enc}
	return
}

// Encoding returns the decoder the reader was built with.
func (rd *Reader) Encoding() Encoding {
	return rd.enc
}

// More reports whether at least one character remains. It never touches
// the underlying input.
func (rd *Reader) More() bool {
	return rd.ch.More()
}

// Position returns the absolute byte offset of the next character.
func (rd *Reader) Position() int64 {
	return rd.ch.Position()
}

// SeekTo repositions the reader to the character starting at byte offset
// pos. The offset is trusted; seeking into the middle of a multi-byte
// sequence decodes garbage, not an error.
func (rd *Reader) SeekTo(pos int64) error {
	return rd.ch.SeekTo(pos)
}

// Size returns the total byte length of the input.
func (rd *Reader) Size() int64 {
	return rd.ch.Size()
}

// ensure refills the channel until the window holds want bytes. A window
// that stops growing short of want means the input is exhausted.
func (rd *Reader) ensure(want int) (err error) {
	for len(rd.ch.Window()) < want {
		have := len(rd.ch.Window())
		var ok bool
		ok, err = rd.ch.Refill()
		if err != nil || !ok {
			return
		}
		if len(rd.ch.Window()) <= have {
			return
		}
	}
	return
}

// discard consumes up to n bytes, refilling as needed and stopping
// quietly at the end of input.
func (rd *Reader) discard(n int) (err error) {
	for n > 0 {
		win := rd.ch.Window()
		if len(win) == 0 {
			var ok bool
			ok, err = rd.ch.Refill()
			if err != nil || !ok {
				return
			}
			continue
		}
		step := min(n, len(win))
		rd.ch.Skip(step)
		n -= step
	}
	return
}

// Next decodes and consumes one character, advancing the position by the
// bytes it occupied. At the end of input it returns ErrEndOfInput.
func (rd *Reader) Next() (ch rune, err error) {
	want := 1
	if rd.enc == ENCODING_UTF8 {
		want = utf8Lookahead
	}
	err = rd.ensure(want)
	if err != nil {
		return
	}

	win := rd.ch.Window()
	if len(win) == 0 {
		err = ErrEndOfInput
		return
	}

	switch rd.enc {
	case ENCODING_ISO8859_1:
		ch = rune(win[0])
		rd.ch.Skip(1)
	default:
		var size, extra int
		ch, size, extra = decodeUTF8(win)
		rd.ch.Skip(size)
		if extra > 0 {
			err = rd.discard(extra)
		}
	}
	return
}

// ReadAll decodes every character from the current position to the end
// of input into one string. The reader is left at the end; SeekTo
// rewinds it.
func (rd *Reader) ReadAll() (s string, err error) {
	var sb strings.Builder
	for {
		var ch rune
		ch, err = rd.Next()
		if err != nil {
			if errors.Is(err, ErrEndOfInput) {
				err = nil
			}
			break
		}
		sb.WriteRune(ch)
	}
	s = sb.String()
	return
}

// Runes iterates the remaining characters. The end of input stops the
// sequence without a yield; any other failure is yielded once with a
// zero character and then stops the sequence.
func (rd *Reader) Runes() iter.Seq2[rune, error] {
	return func(yield func(ch rune, err error) bool) {
		for {
			ch, err := rd.Next()
			if err != nil {
				if !errors.Is(err, ErrEndOfInput) {
					yield(0, err)
				}
				return
			}
			if !yield(ch, nil) {
				return
			}
		}
	}
}

// Lines iterates the remaining lines. The end of input stops the
// sequence without a yield; any other failure is yielded once with an
// empty line and then stops the sequence.
func (rd *Reader) Lines() iter.Seq2[string, error] {
	return func(yield func(line string, err error) bool) {
		for {
			line, err := rd.NextLine()
			if err != nil {
				if !errors.Is(err, ErrEndOfInput) {
					yield("", err)
				}
				return
			}
			if !yield(line, nil) {
				return
			}
		}
	}
}

// Close releases the channel's view of the input. The file handle given
// to New stays open.
func (rd *Reader) Close() error {
	return rd.ch.Close()
}
