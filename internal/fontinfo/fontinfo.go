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

// Package fontinfo summarises the contents of a font file.
//
// The summary is informational only.  Data which cannot be parsed as a
// TrueType or OpenType font can still be embedded.
package fontinfo

import (
	"bytes"
	"fmt"

	"seehuhn.de/go/sfnt"
)

// Summary describes a font.
type Summary struct {
	FamilyName     string
	PostScriptName string
	NumGlyphs      int
	Outlines       string // "glyf", "CFF" or "unknown"
}

// Describe parses data as an sfnt font and returns a summary.
func Describe(data []byte) (*Summary, error) {
	info, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontinfo: %w", err)
	}

	s := &Summary{
		FamilyName:     info.FamilyName,
		PostScriptName: info.PostScriptName(),
	}
	switch {
	case info.IsGlyf():
		s.Outlines = "glyf"
		s.NumGlyphs = info.NumGlyphs()
	case info.IsCFF():
		s.Outlines = "CFF"
		s.NumGlyphs = info.NumGlyphs()
	default:
		s.Outlines = "unknown"
	}
	return s, nil
}

func (s *Summary) String() string {
	return fmt.Sprintf("%s (%s), %d glyphs, %s outlines",
		s.FamilyName, s.PostScriptName, s.NumGlyphs, s.Outlines)
}
