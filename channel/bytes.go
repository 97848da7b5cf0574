package channel

// Bytes is an in-memory channel: the whole input is one permanent
// window. It backs decoding of content already held in memory.
type Bytes struct {
	data   []byte
	cursor int
}

var _ Channel = (*Bytes)(nil)

// NewBytes returns a channel over data. The slice is not copied.
func NewBytes(data []byte) *Bytes {
	return &Bytes{data: data}
}

func (by *Bytes) More() bool {
	return by.cursor < len(by.data)
}

func (by *Bytes) Refill() (ok bool, err error) {
	ok = by.cursor < len(by.data)
	return
}

func (by *Bytes) Window() []byte {
	return by.data[by.cursor:]
}

func (by *Bytes) Skip(n int) {
	by.cursor += n
}

func (by *Bytes) Position() int64 {
	return int64(by.cursor)
}

func (by *Bytes) SeekTo(pos int64) (err error) {
	if pos < 0 {
		pos = 0
	}
	if pos > int64(len(by.data)) {
		pos = int64(len(by.data))
	}
	by.cursor = int(pos)
	return
}

func (by *Bytes) Size() int64 {
	return int64(len(by.data))
}

func (by *Bytes) Close() (err error) {
	return
}
