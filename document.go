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

import (
	"errors"
	"io"

	"seehuhn.de/go/haru/engine"
)

// Document is a PDF document held by the engine.
//
// A Document and the objects obtained from it must not be used
// concurrently from different goroutines.
type Document struct {
	eng engine.Engine
	h   engine.Handle

	imports importFlags
	rawText bool

	pages map[engine.Handle]*Page
}

// importFlags records which encoding families have been loaded into the
// engine for a document.
type importFlags struct {
	auto   bool
	loaded [numFamilies]bool
}

// Open allocates a new engine document.
//
// The returned document must be closed with [Document.Close] to release
// the engine resources.
func Open(eng engine.Engine, opt *Options) (*Document, error) {
	if opt == nil {
		opt = defaultOptions
	}

	h := eng.New()
	if h == 0 {
		return nil, &Error{
			Kind: ErrMemoryAllocationFailed,
			Code: ErrMemoryAllocationFailed.Code(),
			Op:   "Open",
		}
	}
	d := &Document{
		eng:     eng,
		h:       h,
		rawText: opt.RawText,
	}
	d.imports.auto = opt.AutoImportEncodings

	err := d.applyOptions(opt)
	if err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Document) applyOptions(opt *Options) error {
	if opt.Compression != CompressNone {
		err := d.SetCompressionMode(opt.Compression)
		if err != nil {
			return err
		}
	}
	if opt.PagesPerPages != 0 {
		err := d.SetPagesConfiguration(opt.PagesPerPages)
		if err != nil {
			return err
		}
	}
	if opt.SetViewer {
		err := d.SetPageLayout(opt.Layout)
		if err != nil {
			return err
		}
		err = d.SetPageMode(opt.Mode)
		if err != nil {
			return err
		}
	}
	if opt.ViewerPreferences != 0 {
		err := d.SetViewerPreferences(opt.ViewerPreferences)
		if err != nil {
			return err
		}
	}
	if opt.Info != nil {
		err := d.SetInfo(opt.Info)
		if err != nil {
			return err
		}
	}
	return nil
}

// Close releases the engine document.
//
// Close can be called more than once; calls after the first have no
// effect.  The returned error is always nil.
func (d *Document) Close() error {
	if d.h != 0 {
		d.eng.Free(d.h)
		d.h = 0
		d.pages = nil
	}
	return nil
}

// IsOpen reports whether the document still holds an engine handle.
func (d *Document) IsOpen() bool {
	return d.h != 0
}

// check converts the error state of the engine into a Go error.
// It must be called after every engine call which can fail.  The error
// state is reset, so that the document remains usable.
func (d *Document) check(op string) error {
	code := d.eng.GetError(d.h)
	if code == 0 {
		return nil
	}
	detail := d.eng.GetErrorDetail(d.h)
	d.eng.ResetError(d.h)

	err := Classify(code, detail)
	err.Op = op
	return err
}

// ready returns an error if the document has been closed.
func (d *Document) ready(op string) error {
	if d.h == 0 {
		return newError(op, ErrInvalidDocument)
	}
	return nil
}

// NewDocument discards the current document contents and starts a new,
// empty document.
func (d *Document) NewDocument() error {
	if err := d.ready("NewDocument"); err != nil {
		return err
	}
	d.eng.NewDoc(d.h)
	d.pages = nil
	return d.check("NewDocument")
}

// HasDocument reports whether the engine currently holds document
// contents.
func (d *Document) HasDocument() bool {
	if d.h == 0 {
		return false
	}
	return d.eng.HasDoc(d.h)
}

// FreeResources discards the document contents.
// Loaded fonts and encodings are kept.
func (d *Document) FreeResources() error {
	if err := d.ready("FreeResources"); err != nil {
		return err
	}
	d.eng.FreeDoc(d.h)
	d.pages = nil
	return d.check("FreeResources")
}

// FreeAllResources discards the document contents, together with all
// loaded fonts and encodings.
//
// After this call, the CJK encoding families need to be loaded again.  The
// auto-import setting and the state of the UTF encodings are kept.
func (d *Document) FreeAllResources() error {
	if err := d.ready("FreeAllResources"); err != nil {
		return err
	}
	d.eng.FreeDocAll(d.h)
	d.pages = nil
	for _, f := range []EncodingFamily{FamilyCNS, FamilyCNT, FamilyJP, FamilyKR} {
		d.imports.loaded[f] = false
	}
	return d.check("FreeAllResources")
}

// SaveToFile writes the document to the named file.
func (d *Document) SaveToFile(fileName string) error {
	if err := d.ready("SaveToFile"); err != nil {
		return err
	}
	d.eng.SaveToFile(d.h, fileName)
	return d.check("SaveToFile")
}

// SaveToStream renders the document into the engine's temporary stream.
// Use [Document.ReadFromStream] or [Document.StreamReader] to retrieve the
// data.
func (d *Document) SaveToStream() error {
	if err := d.ready("SaveToStream"); err != nil {
		return err
	}
	d.eng.SaveToStream(d.h)
	return d.check("SaveToStream")
}

// StreamSize returns the number of bytes in the temporary stream.
// The result is 0 if the document is closed.
func (d *Document) StreamSize() uint32 {
	if d.h == 0 {
		return 0
	}
	return d.eng.GetStreamSize(d.h)
}

// RewindStream moves the read position of the temporary stream back to
// the start.  Nothing happens if the stream is empty.
func (d *Document) RewindStream() error {
	if d.StreamSize() == 0 {
		return nil
	}
	d.eng.ResetStream(d.h)
	return d.check("RewindStream")
}

// ReadFromStream reads at most n bytes from the temporary stream.
// An empty slice is returned if the stream is empty or if the end of the
// stream has been reached.
func (d *Document) ReadFromStream(n uint32) ([]byte, error) {
	if d.StreamSize() == 0 {
		return []byte{}, nil
	}
	return d.readBuffer("ReadFromStream", d.eng.ReadFromStream, n)
}

// Content renders the document and returns the complete PDF file.
func (d *Document) Content() ([]byte, error) {
	if err := d.SaveToStream(); err != nil {
		return nil, err
	}
	return d.ContentN(d.StreamSize())
}

// ContentN renders the document and returns at most n bytes of the PDF
// file.
func (d *Document) ContentN(n uint32) ([]byte, error) {
	return d.readBuffer("Content", d.eng.GetContents, n)
}

// fillFunc is the shape of the engine calls which copy data into a caller
// supplied buffer.  On entry, *size is the capacity of buf; on return it
// is the number of bytes produced.
type fillFunc func(doc engine.Handle, buf []byte, size *uint32)

// readBuffer retrieves up to capacity bytes using fill.
//
// No engine call is made if capacity is zero or if the document is closed;
// in this case an empty slice is returned.  Sizes reported by the engine
// which exceed the capacity are clamped.
func (d *Document) readBuffer(op string, fill fillFunc, capacity uint32) ([]byte, error) {
	if capacity == 0 || d.h == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, capacity)
	n, _, err := d.fill(op, fill, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// fill runs fill on buf and reports the number of bytes produced, and
// whether the engine signalled the end of the data.
func (d *Document) fill(op string, fill fillFunc, buf []byte) (int, bool, error) {
	capacity := uint32(len(buf))
	n := capacity
	fill(d.h, buf, &n)
	n = min(n, capacity)

	err := d.check(op)
	if errors.Is(err, ErrStreamEOF) {
		return int(n), true, nil
	} else if err != nil {
		return 0, false, err
	}
	return int(n), false, nil
}

// StreamReader returns a reader for the temporary stream, starting at the
// current read position.  Call [Document.SaveToStream] first.
func (d *Document) StreamReader() io.Reader {
	return &streamReader{d: d}
}

type streamReader struct {
	d    *Document
	done bool
}

func (r *streamReader) Read(p []byte) (int, error) {
	if r.done {
		return 0, io.EOF
	}
	if len(p) == 0 {
		return 0, nil
	}
	if err := r.d.ready("Read"); err != nil {
		return 0, err
	}
	if r.d.StreamSize() == 0 {
		r.done = true
		return 0, io.EOF
	}

	n, eof, err := r.d.fill("Read", r.d.eng.ReadFromStream, p)
	if err != nil {
		return n, err
	}
	if eof || n == 0 {
		r.done = true
		return n, io.EOF
	}
	return n, nil
}

// WriteTo renders the document and writes the PDF file to w.
// This implements the [io.WriterTo] interface.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	if err := d.SaveToStream(); err != nil {
		return 0, err
	}
	if err := d.RewindStream(); err != nil {
		return 0, err
	}
	return io.Copy(w, d.StreamReader())
}
