// Package reader implements seekable, position-tracked, encoding-aware
// character iteration over a byte-addressable input.
//
// A Reader decodes UTF-8 or ISO-8859-1 characters from a window channel
// (buffered sequential reads, or a memory-mapped view for large inputs with
// scattered seeks), tracking an exact byte position that can be queried and
// re-seeked at any time, even when a character's bytes straddle a window
// refill. Character and line iteration share one window, so interleaving
// them consumes a single cumulative cursor.
//
// The single-step UTF-8 decoder deliberately keeps a legacy policy: code
// points above the 16-bit range are not decoded; the sequence is consumed
// and the replacement character U+FFFD is produced instead. Continuation
// bytes are not validated. Whole-line decoding uses a full-run decoder and
// is exempt from the policy.
//
// A Reader is not safe for concurrent use, and it never closes, seeks, or
// otherwise disturbs the handle it was built over.
package reader
