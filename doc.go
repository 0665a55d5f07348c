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

// Package fontembed converts font files into C header files, so that the
// font can be compiled directly into a program.
//
// The generated header declares the font data as a constant byte array,
// together with a constant holding its length:
//
//	res, err := fontembed.Convert("MesloLGL-Regular.ttf", "meslo_font_data.h", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res)
//
// The font file is copied byte for byte; its structure is not checked.
// See package [header] for the exact layout of the generated file.
//
// Every call regenerates the output file from scratch.  Running two
// conversions with the same output file at the same time is not
// supported; the two writes race and the result is undefined.
package fontembed
