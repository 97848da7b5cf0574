package reader

import (
	"bytes"
)

// NextLine consumes and decodes the characters up to the next line feed
// or the end of input, whichever comes first. The line feed is consumed
// but not returned; a carriage return is an ordinary character and stays
// in the line. At the end of input NextLine returns ErrEndOfInput.
//
// The raw bytes are accumulated first and decoded as one run, so a line
// may contain characters the single-step decoder would have replaced.
func (rd *Reader) NextLine() (line string, err error) {
	err = rd.ensure(1)
	if err != nil {
		return
	}
	if len(rd.ch.Window()) == 0 {
		err = ErrEndOfInput
		return
	}

	var raw []byte
	for {
		win := rd.ch.Window()
		if len(win) == 0 {
			var ok bool
			ok, err = rd.ch.Refill()
			if err != nil {
				return
			}
			if !ok {
				break
			}
			continue
		}
		if i := bytes.IndexByte(win, '\n'); i >= 0 {
			raw = append(raw, win[:i]...)
			rd.ch.Skip(i + 1)
			break
		}
		raw = append(raw, win...)
		rd.ch.Skip(len(win))
	}

	line, err = rd.decodeRun(raw)
	return
}

// decodeRun decodes an accumulated byte run in a single pass.
func (rd *Reader) decodeRun(raw []byte) (line string, err error) {
	if len(raw) == 0 {
		return
	}
	out, err := rd.enc.textEncoding().NewDecoder().Bytes(raw)
	if err != nil {
		return
	}
	line = string(out)
	return
}
