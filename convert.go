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

package fontembed

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"seehuhn.de/go/fontembed/header"
)

// Default file names, used by the font2header tool when no names are given.
const (
	DefaultInput  = "MesloLGL-Regular.ttf"
	DefaultOutput = "meslo_font_data.h"
)

// Result describes a successful conversion.
type Result struct {
	Output string // name of the generated file
	Size   int    // number of bytes embedded
}

func (r *Result) String() string {
	return fmt.Sprintf("Generated %s with %d bytes", r.Output, r.Size)
}

// Convert reads the file inputPath and writes a header embedding its
// contents to outputPath.  Any existing file at outputPath is replaced.
// If opt is nil, the default names and layout are used.
//
// If inputPath does not exist, a *MissingInputError is returned and
// outputPath is left untouched.  All other I/O errors are returned as
// they occur.  The output path "-" is rejected; use [Generate] to write
// a header to standard output.
func Convert(inputPath, outputPath string, opt *header.Options) (*Result, error) {
	if outputPath == "-" {
		return nil, errStdoutPath
	}

	data, err := ReadInput(inputPath)
	if err != nil {
		return nil, err
	}

	out, err := Generate(data, opt)
	if err != nil {
		return nil, err
	}

	err = os.WriteFile(outputPath, out, 0o644)
	if err != nil {
		return nil, err
	}

	return &Result{Output: outputPath, Size: len(data)}, nil
}

// ReadInput returns the contents of the file inputPath.
// If the file does not exist, a *MissingInputError is returned.
func ReadInput(inputPath string) ([]byte, error) {
	_, err := os.Stat(inputPath)
	if err == nil {
		var data []byte
		data, err = os.ReadFile(inputPath)
		if err == nil {
			return data, nil
		}
	}

	// The file may also disappear between Stat and ReadFile.
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &MissingInputError{Path: inputPath}
	}
	return nil, err
}

// Generate returns the text of a header embedding data.
func Generate(data []byte, opt *header.Options) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.Grow(len(data)*6 + 256)
	err := header.Write(buf, data, opt)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Check reports whether the file outputPath is identical to the header
// which Convert would generate for inputPath.  A missing output file is
// not up to date.
func Check(inputPath, outputPath string, opt *header.Options) (bool, error) {
	data, err := ReadInput(inputPath)
	if err != nil {
		return false, err
	}
	want, err := Generate(data, opt)
	if err != nil {
		return false, err
	}

	have, err := os.ReadFile(outputPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	return bytes.Equal(want, have), nil
}
