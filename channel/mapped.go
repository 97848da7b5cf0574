package channel

import (
	"os"

	"github.com/edsrzf/mmap-go"
)

// WINDOW_LIMIT bounds a mapped window to one gigabyte of the input.
const WINDOW_LIMIT = int64(1) << 30

// Mapped is the memory-mapped strategy: the window is a read-only mapped
// view of at most WINDOW_LIMIT bytes of the file, remapped when the cursor
// leaves or outruns it. Repositioning inside the window only moves the
// cursor.
type Mapped struct {
	file   *os.File
	size   int64
	win    mmap.MMap // current view; nil while nothing is mapped
	base   int64     // file offset of win[0]
	cursor int       // read cursor within win

	// Limit caps the window size. It defaults to WINDOW_LIMIT and exists so
	// tests can exercise remapping on small inputs; a remap advances the
	// window only when Limit spans at least two pages.
	Limit int64
	// Remaps counts map operations since construction.
	Remaps int
}

var _ Channel = (*Mapped)(nil)

// NewMapped returns a memory-mapped channel over file, with an initial
// window at offset zero. The handle stays owned by the caller; Close only
// releases the mapped view.
func NewMapped(file *os.File) (mp *Mapped, err error) {
	info, err := file.Stat()
	if err != nil {
		return
	}

	mp = &Mapped{
		file:  file,
		size:  info.Size(),
		Limit: WINDOW_LIMIT,
	}
	err = mp.remap(0)
	if err != nil {
		mp = nil
	}
	return
}

// remap replaces the view with one starting at pos, aligned down to the page
// size and bounded by Limit. pos must already be clamped to [0, size]; at
// the very end of the input no view is created.
func (mp *Mapped) remap(pos int64) (err error) {
	if mp.win != nil {
		err = mp.win.Unmap()
		mp.win = nil
		if err != nil {
			return
		}
	}

	if pos >= mp.size {
		mp.base = pos
		mp.cursor = 0
		return
	}

	page := int64(os.Getpagesize())
	base := pos - pos%page
	length := mp.size - base
	if limit := min(mp.Limit, WINDOW_LIMIT); length > limit {
		length = limit
	}

	mp.win, err = mmap.MapRegion(mp.file, int(length), mmap.RDONLY, 0, base)
	if err != nil {
		return
	}
	mp.base = base
	mp.cursor = int(pos - base)
	mp.Remaps++
	return
}

func (mp *Mapped) More() bool {
	return mp.Position() < mp.size
}

// Refill remaps at the current position when the window's end precedes the
// end of the file; otherwise the window already holds everything left.
func (mp *Mapped) Refill() (ok bool, err error) {
	if mp.base+int64(len(mp.win)) < mp.size {
		err = mp.remap(mp.Position())
		if err != nil {
			return
		}
	}
	ok = mp.cursor < len(mp.win)
	return
}

func (mp *Mapped) Window() []byte {
	return mp.win[mp.cursor:]
}

func (mp *Mapped) Skip(n int) {
	mp.cursor += n
}

func (mp *Mapped) Position() int64 {
	return mp.base + int64(mp.cursor)
}

// SeekTo clamps pos to the input and moves the cursor, remapping only when
// pos lies outside the current window.
func (mp *Mapped) SeekTo(pos int64) (err error) {
	if pos < 0 {
		pos = 0
	}
	if pos > mp.size {
		pos = mp.size
	}
	if mp.win != nil && pos >= mp.base && pos <= mp.base+int64(len(mp.win)) {
		mp.cursor = int(pos - mp.base)
		return
	}
	return mp.remap(pos)
}

func (mp *Mapped) Size() int64 {
	return mp.size
}

// Close releases the mapped view. The file handle is untouched.
func (mp *Mapped) Close() (err error) {
	if mp.win != nil {
		err = mp.win.Unmap()
		mp.win = nil
	}
	return
}
