// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package reader

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/ezrec/chario/channel"
	"github.com/stretchr/testify/assert"
)

func tempInput(t *testing.T, data []byte) (file *os.File) {
	t.Helper()

	name := filepath.Join(t.TempDir(), "input")
	err := os.WriteFile(name, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}

	file, err = os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { file.Close() })
	return
}

func streamOver(t *testing.T, data []byte, bufferSize int, enc Encoding) (rd *Reader) {
	t.Helper()

	cn, err := channel.NewStream(bytes.NewReader(data), int64(len(data)), bufferSize)
	if err != nil {
		t.Fatal(err)
	}
	rd, err = NewWith(cn, enc)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestReader_Next(t *testing.T) {
	assert := assert.New(t)

	file := tempInput(t, []byte("füü"))

	for _, strategy := range []Strategy{STRATEGY_STREAM, STRATEGY_MAPPED} {
		rd, err := New(file, Options{Strategy: strategy})
		assert.NoError(err, strategy)

		steps := [](struct {
			ch  rune
			pos int64
		}){
			{'f', 1},
			{'ü', 3},
			{'ü', 5},
		}

		assert.Equal(int64(0), rd.Position(), strategy)
		for _, expect := range steps {
			assert.True(rd.More(), strategy)
			ch, err := rd.Next()
			assert.NoError(err, strategy)
			assert.Equal(expect.ch, ch, strategy)
			assert.Equal(expect.pos, rd.Position(), strategy)
		}

		assert.False(rd.More(), strategy)
		_, err = rd.Next()
		assert.Equal(ErrEndOfInput, err, strategy)
		assert.NoError(rd.Close(), strategy)
	}
}

func TestReader_Next_Latin1(t *testing.T) {
	assert := assert.New(t)

	rd := streamOver(t, []byte{0xb5, 'x', 0xff}, 0, ENCODING_ISO8859_1)

	for n, expect := range []rune{'µ', 'x', 'ÿ'} {
		ch, err := rd.Next()
		assert.NoError(err)
		assert.Equal(expect, ch)
		assert.Equal(int64(n+1), rd.Position())
	}

	_, err := rd.Next()
	assert.Equal(ErrEndOfInput, err)
}

func TestReader_Next_Legacy(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		data  []byte
		chars []rune
		ends  []int64
	}){
		{"ascii", []byte("ab"), []rune{'a', 'b'}, []int64{1, 2}},
		{"two_byte", []byte{0xc3, 0xbc}, []rune{'ü'}, []int64{2}},
		{"three_byte", []byte("€!"), []rune{'€', '!'}, []int64{3, 4}},
		{"four_byte", []byte("\U0001f4a9"), []rune{Replacement}, []int64{4}},
		{"four_byte_then_ascii", []byte("\U0001f4a9z"), []rune{Replacement, 'z'}, []int64{4, 5}},
		{"five_byte", []byte{0xf8, 0x88, 0x80, 0x80, 0x80}, []rune{Replacement}, []int64{5}},
		{"six_byte", []byte{0xfc, 0x84, 0x80, 0x80, 0x80, 0x80}, []rune{Replacement}, []int64{6}},
		{"stray_continuation", []byte{0x80, 'a'}, []rune{Replacement, 'a'}, []int64{1, 2}},
		{"invalid_lead", []byte{0xfe, 0xff}, []rune{Replacement, Replacement}, []int64{1, 2}},
		{"truncated_two_byte", []byte{0xc3}, []rune{Replacement}, []int64{1}},
		{"truncated_three_byte", []byte{0xe2, 0x82}, []rune{Replacement}, []int64{2}},
		{"truncated_four_byte", []byte{0xf0, 0x9f}, []rune{Replacement}, []int64{2}},
		{"unvalidated_continuation", []byte{0xc3, 0x2f}, []rune{'ï'}, []int64{2}},
	}

	for _, entry := range table {
		for _, size := range []int{0, 3, 4, 5} {
			name := fmt.Sprintf("%v buffer %v", entry.name, size)
			rd := streamOver(t, entry.data, size, ENCODING_UTF8)

			for n, expect := range entry.chars {
				ch, err := rd.Next()
				assert.NoError(err, name)
				assert.Equal(expect, ch, name)
				assert.Equal(entry.ends[n], rd.Position(), name)
			}

			_, err := rd.Next()
			assert.Equal(ErrEndOfInput, err, name)
		}
	}
}

func TestReader_SeekTo(t *testing.T) {
	assert := assert.New(t)

	rd := streamOver(t, []byte("füü"), 0, ENCODING_UTF8)

	ch, err := rd.Next()
	assert.NoError(err)
	assert.Equal('f', ch)
	mark := rd.Position()

	_, err = rd.Next()
	assert.NoError(err)
	assert.Equal(int64(3), rd.Position())

	// Rewind to the mark and decode the same character again.
	assert.NoError(rd.SeekTo(mark))
	ch, err = rd.Next()
	assert.NoError(err)
	assert.Equal('ü', ch)
	assert.Equal(int64(3), rd.Position())
}

func TestReader_ReadAll(t *testing.T) {
	assert := assert.New(t)

	data := append([]byte("f"), []byte("\U0001f4a9")...)
	data = append(data, []byte("ü\n")...)

	rd := streamOver(t, data, 0, ENCODING_UTF8)

	s, err := rd.ReadAll()
	assert.NoError(err)
	assert.Equal("f�ü\n", s)
	assert.Equal(rd.Size(), rd.Position())
	assert.False(rd.More())

	// A rewind makes the content readable again.
	assert.NoError(rd.SeekTo(0))
	again, err := rd.ReadAll()
	assert.NoError(err)
	assert.Equal(s, again)
}

func TestReader_Runes(t *testing.T) {
	assert := assert.New(t)

	rd := streamOver(t, []byte("füü"), 0, ENCODING_UTF8)

	var got []rune
	for ch, err := range rd.Runes() {
		assert.NoError(err)
		got = append(got, ch)
	}
	assert.Equal([]rune{'f', 'ü', 'ü'}, got)
	assert.False(rd.More())
}

func TestReader_Runes_Break(t *testing.T) {
	assert := assert.New(t)

	rd := streamOver(t, []byte("abcdef"), 0, ENCODING_UTF8)

	for ch, err := range rd.Runes() {
		assert.NoError(err)
		if ch == 'c' {
			break
		}
	}

	// The shared cursor stays where iteration stopped.
	assert.Equal(int64(3), rd.Position())
	ch, err := rd.Next()
	assert.NoError(err)
	assert.Equal('d', ch)
}

func TestReader_Parity(t *testing.T) {
	assert := assert.New(t)

	data := append([]byte("mixed µ € text\r\n"), 0xf0, 0x9f, 0x92, 0xa9, 0x80, 0xfe, '\n')
	data = append(data, []byte("end")...)
	file := tempInput(t, data)

	var out [2][]rune
	var ends [2][]int64
	for n, strategy := range []Strategy{STRATEGY_STREAM, STRATEGY_MAPPED} {
		rd, err := New(file, Options{Strategy: strategy, BufferSize: 3})
		assert.NoError(err, strategy)

		for {
			ch, err := rd.Next()
			if err != nil {
				assert.Equal(ErrEndOfInput, err, strategy)
				break
			}
			out[n] = append(out[n], ch)
			ends[n] = append(ends[n], rd.Position())
		}
		assert.NoError(rd.Close(), strategy)
	}

	assert.Equal(out[0], out[1])
	assert.Equal(ends[0], ends[1])
}

func TestReader_New_Validation(t *testing.T) {
	assert := assert.New(t)

	file := tempInput(t, []byte("data"))

	_, err := New(file, Options{Strategy: Strategy(9)})
	assert.True(errors.Is(err, channel.ErrConfigInvalid))

	_, err = New(file, Options{BufferSize: 2})
	assert.True(errors.Is(err, channel.ErrConfigInvalid))

	_, err = NewWith(nil, Encoding(9))
	assert.True(errors.Is(err, ErrEncodingUnsupported))
}

func TestReader_Encoding(t *testing.T) {
	assert := assert.New(t)

	rd := streamOver(t, nil, 0, ENCODING_ISO8859_1)
	assert.Equal(ENCODING_ISO8859_1, rd.Encoding())

	assert.False(rd.More())
	_, err := rd.Next()
	assert.Equal(ErrEndOfInput, err)
}

func referenceDecode(data []byte) (chars []rune, ends []int64) {
	pos := 0
	for pos < len(data) {
		lead := data[pos]
		var ch rune
		var n int
		switch {
		case lead < 0x80:
			ch, n = rune(lead), 1
		case (lead & 0xe0) == 0xc0:
			if pos+2 <= len(data) {
				ch, n = rune(lead&0x1f)<<6|rune(data[pos+1]&0x3f), 2
			} else {
				ch, n = Replacement, len(data)-pos
			}
		case (lead & 0xf0) == 0xe0:
			if pos+3 <= len(data) {
				ch, n = rune(lead&0x0f)<<12|rune(data[pos+1]&0x3f)<<6|rune(data[pos+2]&0x3f), 3
			} else {
				ch, n = Replacement, len(data)-pos
			}
		case (lead & 0xf8) == 0xf0:
			ch, n = Replacement, min(4, len(data)-pos)
		case (lead & 0xfc) == 0xf8:
			ch, n = Replacement, min(5, len(data)-pos)
		case (lead & 0xfe) == 0xfc:
			ch, n = Replacement, min(6, len(data)-pos)
		default:
			ch, n = Replacement, 1
		}
		pos += n
		chars = append(chars, ch)
		ends = append(ends, int64(pos))
	}
	return
}

func FuzzReader(f *testing.F) {
	f.Add([]byte("plain text"))
	f.Add([]byte("f\xc3\xbc\xc3\xbc"))
	f.Add([]byte("\U0001f4a9z"))
	f.Add([]byte{0xe2, 0x82})
	f.Add([]byte{0x80, 0xfe, 0xff, 0xc3})
	f.Add([]byte{0xfc, 0x84, 0x80, 0x80, 0x80, 0x80})

	f.Fuzz(func(t *testing.T, data []byte) {
		assert := assert.New(t)

		wantChars, wantEnds := referenceDecode(data)

		decodeAll := func(rd *Reader) (chars []rune, ends []int64) {
			for {
				ch, err := rd.Next()
				if err != nil {
					assert.Equal(ErrEndOfInput, err)
					return
				}
				chars = append(chars, ch)
				ends = append(ends, rd.Position())
			}
		}

		for _, size := range []int{3, 7, 64} {
			rd := streamOver(t, data, size, ENCODING_UTF8)
			chars, ends := decodeAll(rd)
			assert.Equal(wantChars, chars, size)
			assert.Equal(wantEnds, ends, size)
		}

		rd, err := NewWith(channel.NewBytes(data), ENCODING_UTF8)
		assert.NoError(err)
		chars, ends := decodeAll(rd)
		assert.Equal(wantChars, chars)
		assert.Equal(wantEnds, ends)
	})
}
