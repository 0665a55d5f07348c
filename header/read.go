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

package header

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"seehuhn.de/go/fontembed/carray"
)

// File is the content of a header, as returned by Read.
type File struct {
	Names Names
	Data  []byte
}

// MalformedHeaderError is returned by Read, if the input does not have
// the layout produced by Write.
type MalformedHeaderError struct {
	Err error
}

func (err *MalformedHeaderError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	return "not a valid font data header" + middle
}

func (err *MalformedHeaderError) Unwrap() error {
	return err.Err
}

var (
	openRegexp  = regexp.MustCompile(`^#ifndef (\w+)\n#define (\w+)\n\nconst unsigned char (\w+)\[\] = \{\n`)
	closeRegexp = regexp.MustCompile(`^\};\n\nconst unsigned int (\w+) = (\d+);\n\n#endif // (\w+)\n$`)
)

// Read parses a header which was written by Write.
// The declared size must match the number of bytes in the array.
func Read(r io.Reader) (*File, error) {
	text, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	m := openRegexp.FindSubmatch(text)
	if m == nil {
		return nil, &MalformedHeaderError{Err: errors.New("missing array declaration")}
	}
	guard := string(m[1])
	if string(m[2]) != guard {
		return nil, &MalformedHeaderError{
			Err: fmt.Errorf("#define %s does not match #ifndef %s", m[2], guard),
		}
	}
	res := &File{}
	res.Names.Guard = guard
	res.Names.Data = string(m[3])

	rest := text[len(m[0]):]
	end := bytes.IndexByte(rest, '}')
	if end < 0 {
		return nil, &MalformedHeaderError{Err: errors.New("unterminated array")}
	}
	res.Data, err = io.ReadAll(carray.Decode(bytes.NewReader(rest[:end])))
	if err != nil {
		return nil, &MalformedHeaderError{Err: err}
	}

	m = closeRegexp.FindSubmatch(rest[end:])
	if m == nil {
		return nil, &MalformedHeaderError{Err: errors.New("missing size declaration")}
	}
	res.Names.Size = string(m[1])
	if string(m[3]) != guard {
		return nil, &MalformedHeaderError{
			Err: fmt.Errorf("#endif comment %s does not match #ifndef %s", m[3], guard),
		}
	}
	size, err := strconv.ParseUint(string(m[2]), 10, 32)
	if err != nil {
		return nil, &MalformedHeaderError{Err: err}
	}
	if size != uint64(len(res.Data)) {
		return nil, &MalformedHeaderError{
			Err: fmt.Errorf("%s = %d, but array has %d bytes", res.Names.Size, size, len(res.Data)),
		}
	}

	return res, nil
}
