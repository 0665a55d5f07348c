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
	"errors"
	"io/fs"
)

// MissingInputError is returned when the input file does not exist.
// In this case no output is written.
type MissingInputError struct {
	Path string
}

func (err *MissingInputError) Error() string {
	return err.Path + " not found"
}

// Unwrap allows to test for this error using errors.Is(err, fs.ErrNotExist).
func (err *MissingInputError) Unwrap() error {
	return fs.ErrNotExist
}

var errStdoutPath = errors.New(`output path "-" is not a file`)
