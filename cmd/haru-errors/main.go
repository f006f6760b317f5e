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
// Haru-errors lists the error codes of the libharu engine.
//
// Usage:
//
//	haru-errors [-class name] [code ...]
//
// Without arguments, all known codes are listed.  Codes can be given in
// decimal or, with a 0x prefix, in hexadecimal.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"text/tabwriter"

	"golang.org/x/term"

	"seehuhn.de/go/haru"
)

func main() {
	class := flag.String("class", "", "only list errors of the given class")
	flag.Parse()

	err := run(os.Stdout, *class, flag.Args())
	if err != nil {
		log.Fatal(err)
	}
}

func run(w io.Writer, class string, args []string) error {
	var kinds []*haru.Error
	if len(args) == 0 {
		for _, k := range haru.ErrorKinds() {
			if k.Code() == 0 {
				continue
			}
			kinds = append(kinds, haru.Classify(k.Code(), 0))
		}
	} else {
		for _, arg := range args {
			code, err := strconv.ParseUint(arg, 0, 32)
			if err != nil {
				return fmt.Errorf("invalid error code %q", arg)
			}
			kinds = append(kinds, haru.Classify(uint32(code), 0))
		}
	}

	width := 80
	if f, ok := w.(*os.File); ok && f == os.Stdout {
		if fd := int(f.Fd()); term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				width = cols
			}
		}
	}

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "CODE\tNAME\tCLASS\tMESSAGE")
	found := false
	for _, e := range kinds {
		c := e.Kind.Class().String()
		if class != "" && c != class {
			continue
		}
		found = true
		msg := e.Kind.Error()
		if avail := width - 48; avail > 10 && len(msg) > avail {
			msg = msg[:avail-3] + "..."
		}
		fmt.Fprintf(tw, "0x%04X\t%s\t%s\t%s\n", e.Code, e.Kind.String(), c, msg)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if !found {
		return errors.New("no matching error codes")
	}
	return nil
}

func init() {
	log.SetFlags(0)
	log.SetPrefix("haru-errors: ")
}
