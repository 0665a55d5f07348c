// seehuhn.de/go/fontembed - embed font files in C and C++ sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package carray converts binary data to and from the body of a C array
// initializer.
//
// Every byte is written as a literal like 0x7F, using upper case hex
// digits.  Literals are separated by ", " and a fixed number of literals
// is placed on each line.  Lines are indented by four spaces.  The last
// literal is not followed by a comma, but by a single newline.
package carray

import (
	"bufio"
	"io"
)

// DefaultPerLine is the number of byte literals placed on each line, if
// no other value is given.
const DefaultPerLine = 16

const (
	indent    = "    "
	hexDigits = "0123456789ABCDEF"
)

// Encode returns a new WriteCloser which writes the array body for all
// data written to it into w.  Each output line holds perLine literals;
// values less than 1 are replaced by DefaultPerLine.
//
// Close must be called to write the final line break.  This also closes w.
func Encode(w io.WriteCloser, perLine int) io.WriteCloser {
	if perLine < 1 {
		perLine = DefaultPerLine
	}
	return &writer{
		w:       bufio.NewWriter(w),
		c:       w,
		perLine: perLine,
	}
}

type writer struct {
	w       *bufio.Writer
	c       io.Closer
	perLine int
	count   int
	err     error
}

// Write implements the io.Writer interface.
func (w *writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}

	// The separator in front of a literal is only written once the literal
	// is known to exist.  This way the last literal never gets a comma.
	var tmp [2 + 1 + len(indent) + 4]byte
	for n < len(p) {
		buf := tmp[:0]
		col := w.count % w.perLine
		if w.count > 0 {
			buf = append(buf, ',', ' ')
			if col == 0 {
				buf = append(buf, '\n')
			}
		}
		if col == 0 {
			buf = append(buf, indent...)
		}
		b := p[n]
		buf = append(buf, '0', 'x', hexDigits[b>>4], hexDigits[b&15])

		_, err = w.w.Write(buf)
		if err != nil {
			w.err = err
			return n, err
		}
		w.count++
		n++
	}
	return n, nil
}

// Close terminates the last line, flushes all buffered output and
// closes the underlying writer.
func (w *writer) Close() error {
	if w.err != nil {
		return w.err
	}
	if w.count > 0 {
		err := w.w.WriteByte('\n')
		if err != nil {
			return err
		}
	}
	err := w.w.Flush()
	if err != nil {
		return err
	}
	return w.c.Close()
}
