// Package channel provides the byte-window strategies a character reader
// decodes from. A Channel owns an in-memory window over a finite,
// byte-addressable input and refills or remaps it on demand, keeping an
// exact byte position that survives seeks.
package channel

// Channel defines the window contract shared by all input strategies.
// A channel is not safe for concurrent use: every operation may mutate the
// window, the cursor, or both.
type Channel interface {
	// More reports whether unconsumed bytes remain, now or after a refill.
	More() bool
	// Refill brings more bytes into the window and reports whether any
	// unconsumed bytes are available afterwards.
	Refill() (ok bool, err error)
	// Window returns the unconsumed bytes of the current window without
	// copying. The slice is valid until the next Refill, SeekTo or Close.
	Window() []byte
	// Skip consumes n bytes from the window; n must not exceed len(Window()).
	Skip(n int)
	// Position returns the absolute byte offset of the next unconsumed byte.
	Position() int64
	// SeekTo repositions the channel so the next byte consumed is the one at
	// offset pos. Negative positions clamp to zero.
	SeekTo(pos int64) error
	// Size returns the total length of the underlying input.
	Size() int64
	// Close releases any view owned by the channel. The underlying handle
	// stays open; its lifecycle belongs to the caller.
	Close() error
}
