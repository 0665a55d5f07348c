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

// Package header writes and reads C header files which embed binary data.
//
// A header written by this package has the following form:
//
//	#ifndef MESLO_FONT_DATA_H
//	#define MESLO_FONT_DATA_H
//
//	const unsigned char MESLO_FONT_DATA[] = {
//	    0x00, 0x01, 0x00, 0x00, 0x00, 0x10, 0x01, 0x00, ...
//	    ...
//	};
//
//	const unsigned int MESLO_FONT_SIZE = 1234;
//
//	#endif // MESLO_FONT_DATA_H
//
// The array body uses the format of package [carray].
package header

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"

	"seehuhn.de/go/fontembed/carray"
	"seehuhn.de/go/fontembed/cident"
)

// Names holds the C identifiers used in a header.
type Names struct {
	Guard string // include guard token
	Data  string // name of the byte array
	Size  string // name of the length constant
}

// Meslo are the names used for the Meslo LG L font.
var Meslo = Names{
	Guard: "MESLO_FONT_DATA_H",
	Data:  "MESLO_FONT_DATA",
	Size:  "MESLO_FONT_SIZE",
}

// NamesFor derives a set of names from a free-form prefix.
// For example, the prefix "Go Mono" gives GO_MONO_FONT_DATA_H,
// GO_MONO_FONT_DATA and GO_MONO_FONT_SIZE.
func NamesFor(prefix string) (Names, error) {
	p, err := cident.FromName(prefix)
	if err != nil {
		return Names{}, err
	}
	return Names{
		Guard: p + "_FONT_DATA_H",
		Data:  p + "_FONT_DATA",
		Size:  p + "_FONT_SIZE",
	}, nil
}

// Check returns an error if one of the names is not a valid C identifier.
func (n Names) Check() error {
	for _, id := range []string{n.Guard, n.Data, n.Size} {
		if !cident.Valid(id) {
			return fmt.Errorf("invalid C identifier %q", id)
		}
	}
	return nil
}

// Options control the layout of a generated header.
type Options struct {
	// Names gives the identifiers for the header.  If this is the zero
	// value, Meslo is used.
	Names Names

	// PerLine is the number of byte literals per line.  If this is zero,
	// carray.DefaultPerLine is used.
	PerLine int
}

func (opt *Options) names() Names {
	if opt == nil || opt.Names == (Names{}) {
		return Meslo
	}
	return opt.Names
}

func (opt *Options) perLine() int {
	if opt == nil || opt.PerLine == 0 {
		return carray.DefaultPerLine
	}
	return opt.PerLine
}

var errTooLarge = errors.New("data too large for unsigned int size constant")

// Write writes a header which embeds data to w.
// If opt is nil, default options are used.
func Write(w io.Writer, data []byte, opt *Options) error {
	names := opt.names()
	err := names.Check()
	if err != nil {
		return err
	}
	perLine := opt.perLine()
	if perLine < 1 {
		return fmt.Errorf("invalid number of bytes per line: %d", perLine)
	}
	if int64(len(data)) > math.MaxUint32 {
		return errTooLarge
	}

	out := bufio.NewWriter(w)

	fmt.Fprintf(out, "#ifndef %s\n", names.Guard)
	fmt.Fprintf(out, "#define %s\n\n", names.Guard)
	fmt.Fprintf(out, "const unsigned char %s[] = {\n", names.Data)

	body := carray.Encode(withDummyClose{out}, perLine)
	_, err = body.Write(data)
	if err != nil {
		return err
	}
	err = body.Close()
	if err != nil {
		return err
	}

	fmt.Fprint(out, "};\n\n")
	fmt.Fprintf(out, "const unsigned int %s = %d;\n\n", names.Size, len(data))
	fmt.Fprintf(out, "#endif // %s\n", names.Guard)

	return out.Flush()
}

// withDummyClose turns an io.Writer into an io.WriteCloser.
type withDummyClose struct {
	io.Writer
}

func (w withDummyClose) Close() error {
	return nil
}
