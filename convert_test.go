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
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontembed/header"
	"seehuhn.de/go/fontembed/internal/gofonts"
)

func writeFile(t *testing.T, name string, data []byte) {
	t.Helper()
	err := os.WriteFile(name, data, 0o644)
	if err != nil {
		t.Fatal(err)
	}
}

func TestConvert(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, DefaultInput)
	out := filepath.Join(dir, DefaultOutput)
	writeFile(t, in, []byte{0x00, 0xFF, 0x10})

	res, err := Convert(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != 3 || res.Output != out {
		t.Errorf("unexpected result %v", res)
	}
	if want := "Generated " + out + " with 3 bytes"; res.String() != want {
		t.Errorf("got %q, want %q", res.String(), want)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	want := `#ifndef MESLO_FONT_DATA_H
#define MESLO_FONT_DATA_H

const unsigned char MESLO_FONT_DATA[] = {
    0x00, 0xFF, 0x10
};

const unsigned int MESLO_FONT_SIZE = 3;

#endif // MESLO_FONT_DATA_H
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertEmpty(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.ttf")
	out := filepath.Join(dir, "empty.h")
	writeFile(t, in, nil)

	res, err := Convert(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Size != 0 {
		t.Errorf("size = %d, want 0", res.Size)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(got), "MESLO_FONT_DATA[] = {\n};\n") {
		t.Errorf("array body not empty:\n%s", got)
	}
	if !strings.Contains(string(got), "MESLO_FONT_SIZE = 0;") {
		t.Errorf("wrong size constant:\n%s", got)
	}
}

func TestConvertOverwrites(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ttf")
	out := filepath.Join(dir, "out.h")
	writeFile(t, in, []byte{1})
	writeFile(t, out, bytes.Repeat([]byte("old contents\n"), 100))

	_, err := Convert(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(got, []byte("old contents")) {
		t.Error("old contents survived")
	}
}

func TestConvertMissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, DefaultInput)
	out := filepath.Join(dir, DefaultOutput)

	_, err := Convert(in, out, nil)
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingInputError", err)
	}
	if missing.Path != in {
		t.Errorf("path = %q, want %q", missing.Path, in)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Error("error does not match fs.ErrNotExist")
	}
	if err.Error() != in+" not found" {
		t.Errorf("unexpected message %q", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output file was created: %v", err)
	}

	// an existing output file must not be modified
	old := []byte("keep me\n")
	writeFile(t, out, old)
	_, err = Convert(in, out, nil)
	if !errors.As(err, &missing) {
		t.Fatalf("got %v, want MissingInputError", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, old) {
		t.Error("output file was modified")
	}
}

func TestConvertIOErrors(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ttf")
	writeFile(t, in, []byte{1, 2, 3})

	// a directory is not a missing file, but still cannot be read
	_, err := Convert(dir, filepath.Join(dir, "a.h"), nil)
	var missing *MissingInputError
	if err == nil || errors.As(err, &missing) {
		t.Errorf("directory as input: got %v", err)
	}

	// the output directory does not exist
	_, err = Convert(in, filepath.Join(dir, "no", "such", "dir", "a.h"), nil)
	if err == nil || errors.As(err, &missing) {
		t.Errorf("missing output directory: got %v", err)
	}
}

func TestConvertStdoutPath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ttf")
	writeFile(t, in, []byte{1, 2, 3})
	t.Chdir(dir)

	_, err := Convert(in, "-", nil)
	if !errors.Is(err, errStdoutPath) {
		t.Errorf("got %v, want %v", err, errStdoutPath)
	}
	if _, err := os.Stat(filepath.Join(dir, "-")); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("file \"-\" was created: %v", err)
	}
}

func TestConvertInvalidOptions(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ttf")
	out := filepath.Join(dir, "out.h")
	writeFile(t, in, []byte{1, 2, 3})

	_, err := Convert(in, out, &header.Options{PerLine: -5})
	if err == nil {
		t.Fatal("missing error")
	}
	if _, err := os.Stat(out); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("output file was created: %v", err)
	}
}

func TestConvertRoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, f := range gofonts.All {
		t.Run(f.String(), func(t *testing.T) {
			in := filepath.Join(dir, "in.ttf")
			out := filepath.Join(dir, "out.h")
			data := f.TTF()
			writeFile(t, in, data)

			names, err := header.NamesFor(f.String())
			if err != nil {
				t.Fatal(err)
			}
			opt := &header.Options{Names: names}
			res, err := Convert(in, out, opt)
			if err != nil {
				t.Fatal(err)
			}
			if res.Size != len(data) {
				t.Errorf("size = %d, want %d", res.Size, len(data))
			}

			fd, err := os.Open(out)
			if err != nil {
				t.Fatal(err)
			}
			defer fd.Close()
			file, err := header.Read(fd)
			if err != nil {
				t.Fatal(err)
			}
			if file.Names != names {
				t.Errorf("names = %v, want %v", file.Names, names)
			}
			if !bytes.Equal(file.Data, data) {
				t.Error("round trip failed")
			}
		})
	}
}

func TestIdempotent(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ttf")
	out := filepath.Join(dir, "out.h")
	writeFile(t, in, gofonts.Regular.TTF())

	_, err := Convert(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	first, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	_, err = Convert(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("second run changed the output")
	}
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.ttf")
	out := filepath.Join(dir, "out.h")
	writeFile(t, in, []byte("font data"))

	ok, err := Check(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("missing output reported as up to date")
	}

	_, err = Convert(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	ok, err = Check(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("fresh output reported as out of date")
	}

	// different layout options give a different file
	ok, err = Check(in, out, &header.Options{PerLine: 4})
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("output with different layout reported as up to date")
	}

	writeFile(t, in, []byte("new font data"))
	ok, err = Check(in, out, nil)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("stale output reported as up to date")
	}

	_, err = Check(filepath.Join(dir, "missing.ttf"), out, nil)
	var missing *MissingInputError
	if !errors.As(err, &missing) {
		t.Errorf("got %v, want MissingInputError", err)
	}
}
