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

// Package cident constructs identifiers for use in C source code.
package cident

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ErrEmpty is returned by FromName, if the name contains no letters or
// digits which can be represented in ASCII.
var ErrEmpty = errors.New("no usable characters")

// FromName converts a free-form name into an upper case C identifier.
//
// Accents are removed (so that "Über" becomes "UBER"), and every run of
// characters other than ASCII letters and digits is replaced by a single
// underscore.  If the result would start with a digit, an underscore is
// prepended.
func FromName(name string) (string, error) {
	fold := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	folded, _, err := transform.String(fold, name)
	if err != nil {
		return "", fmt.Errorf("identifier from %q: %w", name, err)
	}

	var b strings.Builder
	gap := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z':
			r += 'A' - 'a'
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			// pass through
		default:
			gap = true
			continue
		}
		if gap && b.Len() > 0 {
			b.WriteByte('_')
		}
		gap = false
		b.WriteRune(r)
	}

	id := b.String()
	if id == "" {
		return "", fmt.Errorf("identifier from %q: %w", name, ErrEmpty)
	}
	if id[0] >= '0' && id[0] <= '9' {
		id = "_" + id
	}
	return id, nil
}

// Valid reports whether s can be used as an identifier in C.
// Keywords are not checked.
func Valid(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
