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

package carray

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// Decode returns a reader for the bytes listed in an array body.
//
// Literals may be separated by any combination of commas and white space,
// and hex digits may use either case.  Decoding stops at a closing brace
// or at the end of r.
func Decode(r io.Reader) io.ReadCloser {
	return &reader{r: bufio.NewReader(r)}
}

var errMissingDigits = errors.New("missing hex digits after 0x")

type reader struct {
	r   *bufio.Reader
	err error
}

func (r *reader) Read(p []byte) (n int, err error) {
	if r.err != nil {
		return 0, r.err
	}

	for n < len(p) {
		b, err := r.readLiteral()
		if err != nil {
			r.err = err
			break
		}
		p[n] = b
		n++
	}

	return n, r.err
}

func (r *reader) Close() error {
	if r.err == nil || r.err == io.EOF {
		return nil
	}
	return r.err
}

// readLiteral reads one "0x.." literal, skipping the separators in
// front of it.  At the end of the array, io.EOF is returned.
func (r *reader) readLiteral() (byte, error) {
	var c byte
	var err error
skipLoop:
	for {
		c, err = r.r.ReadByte()
		if err != nil {
			return 0, err
		}
		switch c {
		case ',', ' ', '\t', '\n', '\r', '\f', '\v':
			continue skipLoop
		case '}':
			return 0, io.EOF
		default:
			break skipLoop
		}
	}

	if c != '0' {
		return 0, fmt.Errorf("invalid character in array: %q", c)
	}
	c, err = r.r.ReadByte()
	if err == io.EOF {
		return 0, io.ErrUnexpectedEOF
	} else if err != nil {
		return 0, err
	}
	if c != 'x' && c != 'X' {
		return 0, fmt.Errorf("invalid character in array: %q", c)
	}

	var val byte
	digits := 0
digitLoop:
	for {
		c, err = r.r.ReadByte()
		if err == io.EOF {
			break
		} else if err != nil {
			return 0, err
		}

		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		default:
			r.r.UnreadByte()
			break digitLoop
		}

		if digits == 2 {
			return 0, fmt.Errorf("byte literal 0x%02X%c... out of range", val, c)
		}
		val = val<<4 | d
		digits++
	}
	if digits == 0 {
		return 0, errMissingDigits
	}

	return val, nil
}
