package reader

// Replacement is the character emitted for input the decoder cannot
// represent.
const Replacement = rune(0xfffd)

// utf8Lookahead is the longest byte run a single decode step inspects.
const utf8Lookahead = 3

// decodeUTF8 decodes one character from the head of win, which must
// hold at least one byte. It returns the character, the count of window
// bytes consumed, and the count of following bytes to discard without
// decoding.
//
// Sequences of one to three bytes are assembled without validating the
// continuation bytes. Longer sequences are not representable: their
// lead byte decodes to Replacement and their continuation bytes are
// discarded. Any other lead byte decodes to Replacement on its own. A
// sequence truncated by the end of input consumes what remains.
func decodeUTF8(win []byte) (ch rune, size int, extra int) {
	lead := win[0]

	switch {
	case lead < 0x80:
		ch = rune(lead)
		size = 1
	case (lead & 0xe0) == 0xc0:
		if len(win) < 2 {
			ch = Replacement
			size = len(win)
			return
		}
		ch = rune(lead&0x1f)<<6 | rune(win[1]&0x3f)
		size = 2
	case (lead & 0xf0) == 0xe0:
		if len(win) < 3 {
			ch = Replacement
			size = len(win)
			return
		}
		ch = rune(lead&0x0f)<<12 | rune(win[1]&0x3f)<<6 | rune(win[2]&0x3f)
		size = 3
	case (lead & 0xf8) == 0xf0:
		ch = Replacement
		size = 1
		extra = 3
	case (lead & 0xfc) == 0xf8:
		ch = Replacement
		size = 1
		extra = 4
	case (lead & 0xfe) == 0xfc:
		ch = Replacement
		size = 1
		extra = 5
	default:
		ch = Replacement
		size = 1
	}

	return
}
