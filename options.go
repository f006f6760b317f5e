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

package haru

// Options allows to influence the way a document is set up by [Open].
// A nil *Options is equivalent to the zero value, which leaves all engine
// defaults in place.
type Options struct {
	// AutoImportEncodings, if set, makes the document load the tables for
	// a CJK encoding family the first time an encoding of that family is
	// requested.  Otherwise the tables must be loaded explicitly, using
	// methods like [Document.UseJPEncodings].
	AutoImportEncodings bool

	// Compression selects which streams the engine compresses.
	Compression CompressionMode

	// PagesPerPages, if non-zero, limits the number of pages in one node
	// of the page tree.  This is needed for documents with more than 8191
	// pages.
	PagesPerPages uint32

	// Layout and Mode are the initial viewer settings.
	// They are only applied if SetViewer is true.
	Layout    PageLayout
	Mode      PageMode
	SetViewer bool

	// ViewerPreferences is a set of flags for the viewer window.
	ViewerPreferences ViewerPreferences

	// Info contains initial values for the document information
	// dictionary.  Empty values are skipped.
	Info *Info

	// RawText disables conversion of text arguments from UTF-8 to the
	// encoding of the current font.  If set, strings are passed to the
	// engine unchanged.
	RawText bool
}

var defaultOptions = &Options{}
