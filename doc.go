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
// Package haru provides Go bindings for the libharu PDF library.
//
// The package wraps the flat C interface of libharu, which is described by
// [engine.Engine], in a set of Go types.  A [Document] owns one engine
// document handle.  Pages, fonts, images and the other objects obtained
// from a document are only valid until the document is closed or its
// resources are freed.
//
// The cgo binding to the C library lives in package
// seehuhn.de/go/haru/engine/libharu and is only compiled with the build
// tag "libharu":
//
//	eng, err := libharu.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	doc, err := haru.Open(eng, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer doc.Close()
//
//	page, err := doc.AddPage()
//	if err != nil {
//		log.Fatal(err)
//	}
//	font, err := doc.GetFont("Helvetica", haru.WinAnsiEncoding)
//	if err != nil {
//		log.Fatal(err)
//	}
//	page.SetFontAndSize(font, 24)
//	page.WriteText(72, 720, "Hello, World!")
//	if page.Err != nil {
//		log.Fatal(page.Err)
//	}
//	err = doc.SaveToFile("hello.pdf")
//
// # Errors
//
// All errors reported by the engine are returned as [*Error] values.
// The Kind field can be compared against the ErrXXX constants using
// [errors.Is], and [ErrorKind.Class] groups the kinds into broad classes.
//
// Drawing operators on a [Page] do not return errors.  The first error is
// stored in [Page.Err], and later operators are skipped until
// [Page.ClearErr] is called.
//
// # Text
//
// Go strings are UTF-8.  Before text is passed to the engine, it is
// converted to the encoding of the font selected with
// [Page.SetFontAndSize].  Set [Options.RawText] to pass strings through
// unchanged.
//
// # Concurrency
//
// A Document and all objects derived from it must not be used
// concurrently.  Different documents are independent.
package haru
