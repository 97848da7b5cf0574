package reader

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Encoding selects the character encoding a Reader decodes.
type Encoding uint8

//go:generate go tool stringer -linecomment -type=Encoding
const (
	ENCODING_UTF8      = Encoding(0) // utf-8
	ENCODING_ISO8859_1 = Encoding(1) // iso-8859-1
)

// UnmarshalText selects an encoding from its common names.
func (enc *Encoding) UnmarshalText(text []byte) (err error) {
	switch strings.ToLower(string(text)) {
	case "utf-8", "utf8":
		*enc = ENCODING_UTF8
	case "iso-8859-1", "iso8859-1", "latin-1", "latin1":
		*enc = ENCODING_ISO8859_1
	default:
		err = ErrEncodingName(text)
	}
	return
}

// MarshalText reports the canonical encoding name.
func (enc Encoding) MarshalText() (text []byte, err error) {
	text = []byte(enc.String())
	return
}

// textEncoding returns the full-run decoder source used for whole-line
// decodes. Unlike the single-step decoder, these decode any well-formed
// sequence and substitute the replacement character for malformed bytes.
func (enc Encoding) textEncoding() encoding.Encoding {
	switch enc {
	case ENCODING_ISO8859_1:
		return charmap.ISO8859_1
	default:
		return unicode.UTF8
	}
}

// Strategy selects the I/O mechanism a Reader works through.
type Strategy uint8

//go:generate go tool stringer -linecomment -type=Strategy
const (
	STRATEGY_STREAM = Strategy(0) // stream
	STRATEGY_MAPPED = Strategy(1) // mapped
)

// UnmarshalText selects a strategy from its common names.
func (s *Strategy) UnmarshalText(text []byte) (err error) {
	switch strings.ToLower(string(text)) {
	case "stream", "buffered":
		*s = STRATEGY_STREAM
	case "mapped", "mmap":
		*s = STRATEGY_MAPPED
	default:
		err = ErrStrategyName(text)
	}
	return
}

// MarshalText reports the canonical strategy name.
func (s Strategy) MarshalText() (text []byte, err error) {
	text = []byte(s.String())
	return
}
