package channel

import (
	"io"
)

const (
	// STREAM_BUFFER_MINIMUM is the smallest usable window: a worst-case
	// partial multi-byte sequence must fit ahead of a refill.
	STREAM_BUFFER_MINIMUM = 3
	// STREAM_BUFFER_DEFAULT is the scratch buffer capacity when none is given.
	STREAM_BUFFER_DEFAULT = 8192
)

// Stream is the buffered strategy: sequential reads refill a reused scratch
// buffer. Reads go through ReadAt at a running offset, so the borrowed
// source's own cursor is never moved.
type Stream struct {
	source    io.ReaderAt
	size      int64
	buf       []byte // scratch window; cap is the configured buffer size
	cursor    int    // read cursor within buf
	base      int64  // input offset of buf[0]
	exhausted bool   // the source reported end-of-input
}

var _ Channel = (*Stream)(nil)

// NewStream returns a buffered channel over the first size bytes of source.
// A zero bufferSize selects STREAM_BUFFER_DEFAULT; sizes below
// STREAM_BUFFER_MINIMUM are rejected.
func NewStream(source io.ReaderAt, size int64, bufferSize int) (st *Stream, err error) {
	if bufferSize == 0 {
		bufferSize = STREAM_BUFFER_DEFAULT
	}
	if bufferSize < STREAM_BUFFER_MINIMUM {
		err = ErrBufferSize(bufferSize)
		return
	}

	st = &Stream{
		source: source,
		size:   size,
		buf:    make([]byte, 0, bufferSize),
	}
	return
}

func (st *Stream) More() bool {
	return st.cursor < len(st.buf) ||
		(!st.exhausted && st.base+int64(len(st.buf)) < st.size)
}

// Refill compacts the unconsumed bytes to the front of the window and tops
// the window up from the source at the running offset. Short final reads
// mark the stream exhausted; read failures are reported with whatever bytes
// arrived still available.
func (st *Stream) Refill() (ok bool, err error) {
	if st.cursor > 0 {
		n := copy(st.buf, st.buf[st.cursor:])
		st.base += int64(st.cursor)
		st.buf = st.buf[:n]
		st.cursor = 0
	}

	if !st.exhausted && len(st.buf) < cap(st.buf) {
		spare := st.buf[len(st.buf):cap(st.buf)]
		n, rerr := st.source.ReadAt(spare, st.base+int64(len(st.buf)))
		st.buf = st.buf[:len(st.buf)+n]
		if rerr == io.EOF {
			st.exhausted = true
		} else if rerr != nil {
			err = rerr
		}
	}

	ok = st.cursor < len(st.buf)
	return
}

func (st *Stream) Window() []byte {
	return st.buf[st.cursor:]
}

func (st *Stream) Skip(n int) {
	st.cursor += n
}

func (st *Stream) Position() int64 {
	return st.base + int64(st.cursor)
}

// SeekTo discards the window and restarts reading at pos. Seeking past the
// end of the input is legal and simply yields no further bytes.
func (st *Stream) SeekTo(pos int64) (err error) {
	if pos < 0 {
		pos = 0
	}
	st.base = pos
	st.buf = st.buf[:0]
	st.cursor = 0
	st.exhausted = false
	return
}

func (st *Stream) Size() int64 {
	return st.size
}

func (st *Stream) Close() (err error) {
	return
}
