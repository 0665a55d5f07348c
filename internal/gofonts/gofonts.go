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

// Package gofonts gives access to the TrueType files of the Go font family.
// The fonts serve as realistic input data for tests.
package gofonts

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomediumitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Font identifies individual fonts in the Go font family.
type Font int

// Constants for the available fonts in the Go font family.
const (
	Regular         Font = iota // Go Regular
	Bold                        // Go Bold
	BoldItalic                  // Go Bold Italic
	Italic                      // Go Italic
	Medium                      // Go Medium
	MediumItalic                // Go Medium Italic
	Smallcaps                   // Go Smallcaps
	SmallcapsItalic             // Go Smallcaps Italic
	Mono                        // Go Mono
	MonoBold                    // Go Mono Bold
	MonoBoldItalic              // Go Mono Bold Italic
	MonoItalic                  // Go Mono Italic
)

// All lists every font of the family.
var All = []Font{
	Regular,
	Bold,
	BoldItalic,
	Italic,
	Medium,
	MediumItalic,
	Smallcaps,
	SmallcapsItalic,
	Mono,
	MonoBold,
	MonoBoldItalic,
	MonoItalic,
}

var fonts = map[Font]struct {
	name string
	ttf  []byte
}{
	Regular:         {"Go Regular", goregular.TTF},
	Bold:            {"Go Bold", gobold.TTF},
	BoldItalic:      {"Go Bold Italic", gobolditalic.TTF},
	Italic:          {"Go Italic", goitalic.TTF},
	Medium:          {"Go Medium", gomedium.TTF},
	MediumItalic:    {"Go Medium Italic", gomediumitalic.TTF},
	Smallcaps:       {"Go Smallcaps", gosmallcaps.TTF},
	SmallcapsItalic: {"Go Smallcaps Italic", gosmallcapsitalic.TTF},
	Mono:            {"Go Mono", gomono.TTF},
	MonoBold:        {"Go Mono Bold", gomonobold.TTF},
	MonoBoldItalic:  {"Go Mono Bold Italic", gomonobolditalic.TTF},
	MonoItalic:      {"Go Mono Italic", gomonoitalic.TTF},
}

// TTF returns the contents of the TrueType file for f.
// The returned slice must not be modified.
func (f Font) TTF() []byte {
	return fonts[f].ttf
}

func (f Font) String() string {
	if e, ok := fonts[f]; ok {
		return e.name
	}
	return "gofonts.Font(?)"
}
