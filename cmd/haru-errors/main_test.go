// seehuhn.de/go/haru - Go bindings for the libharu PDF library
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
package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRunCodes(t *testing.T) {
	buf := &bytes.Buffer{}
	err := run(buf, "", []string{"0x1058", "4117"})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"StreamEOF", "MemoryAllocationFailed", "0x1015"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestRunNameColumn(t *testing.T) {
	buf := &bytes.Buffer{}
	err := run(buf, "", []string{"0x1039"})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got:\n%s", buf.String())
	}
	fields := strings.Fields(lines[1])
	if len(fields) < 3 || fields[0] != "0x1039" || fields[1] != "InvalidParameter" || fields[2] != "input" {
		t.Errorf("unexpected row %q", lines[1])
	}
}

func TestRunDefaultWidth(t *testing.T) {
	// output which is not a terminal is formatted for 80 columns
	buf := &bytes.Buffer{}
	err := run(buf, "", []string{"0x1020"})
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	row := lines[len(lines)-1]
	if !strings.HasSuffix(row, "...") {
		t.Errorf("long message not shortened: %q", row)
	}
	if strings.Contains(row, "present color-space.") {
		t.Errorf("full message printed: %q", row)
	}
}

func TestRunClass(t *testing.T) {
	buf := &bytes.Buffer{}
	err := run(buf, "format", nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "FileOpen") {
		t.Error("resource error listed for class format")
	}
	if !strings.Contains(buf.String(), "TTFInvalidFormat") {
		t.Error("TTFInvalidFormat missing")
	}
}

func TestRunBadCode(t *testing.T) {
	err := run(&bytes.Buffer{}, "", []string{"not-a-number"})
	if err == nil {
		t.Error("invalid code accepted")
	}
}
