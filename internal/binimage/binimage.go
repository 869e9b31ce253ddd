// Package binimage reads and writes TAM program images: a file format
// carrying nothing but a sequence of big-endian 32-bit code words, one
// per instruction, per the encoding in the opcode-dispatch table of the
// core engine.
//
// This is not a complete file-format library; it supports exactly the
// one record shape the emulator's loader consumes.
package binimage

import (
	"encoding/binary"
	"io"

	"github.com/trianglelang/tam/internal/tam"
)

// ErrTruncated is the IoError reported when a file's length is not a
// multiple of the 4-byte word size.
var ErrTruncated = tam.FaultIO("program file contained incomplete instruction")

// ReadProgram reads a whole program image from r. A length that is not a
// multiple of 4 bytes is reported via ErrTruncated.
func ReadProgram(r io.Reader) ([]tam.CodeWord, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, tam.FaultIOf("%s", err)
	}

	if len(raw)%4 != 0 {
		return nil, ErrTruncated
	}

	words := make([]tam.CodeWord, len(raw)/4)

	for i := range words {
		words[i] = tam.CodeWord(binary.BigEndian.Uint32(raw[i*4:]))
	}

	return words, nil
}

// WriteProgram writes words to w as a sequence of big-endian 32-bit
// words. It is the inverse of ReadProgram, useful for tests and tools
// that assemble programs in memory.
func WriteProgram(w io.Writer, words []tam.CodeWord) error {
	raw := make([]byte, len(words)*4)

	for i, word := range words {
		binary.BigEndian.PutUint32(raw[i*4:], uint32(word))
	}

	_, err := w.Write(raw)

	return err
}
