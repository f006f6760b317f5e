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
// Package fakeengine provides an in-memory implementation of
// [engine.Engine] for tests.
//
// The fake records every call, keeps enough state to answer the query
// functions, and can be told to fail selected calls with a given error
// code.  It does not produce valid PDF output.
package fakeengine

import (
	"fmt"

	"seehuhn.de/go/haru/engine"
)

// Error codes used by the fake.  These match the values used by libharu.
const (
	CodeInvalidDocument         = 0x1025
	CodeInvalidFontName         = 0x102F
	CodeInvalidPage             = 0x1037
	CodePageCannotRestoreGState = 0x104C
	CodeStreamEOF               = 0x1058
	CodeInvalidPageIndex        = 0x1067
	CodeInvalidFont             = 0x1075
)

// Call describes one call into the engine.
type Call struct {
	Name   string
	Handle engine.Handle
	Text   string // the text argument, if any
}

func (c Call) String() string {
	if c.Text != "" {
		return fmt.Sprintf("%s(%d, %q)", c.Name, c.Handle, c.Text)
	}
	return fmt.Sprintf("%s(%d)", c.Name, c.Handle)
}

type fault struct {
	code, detail uint32
}

// Engine is a fake PDF engine.  The zero value is not usable, use [New].
type Engine struct {
	// Calls lists all calls in order.
	Calls []Call

	// FailNew makes New return the zero handle.
	FailNew bool

	// Output is the data produced by SaveToStream.
	Output []byte

	// ReportSize, if non-zero, is the size reported by ReadFromStream and
	// GetContents, regardless of the buffer capacity.
	ReportSize uint32

	faults map[string]fault
	next   engine.Handle

	docs  map[engine.Handle]*document
	owner map[engine.Handle]engine.Handle

	pages    map[engine.Handle]*pageState
	fonts    map[engine.Handle]*fontState
	encoders map[engine.Handle]string
	images   map[engine.Handle]*imageState
	objects  map[engine.Handle]string
}

type document struct {
	err, detail uint32

	hasDoc  bool
	freed   bool
	stream  []byte
	pos     int
	saved   bool
	pages   []engine.Handle
	current engine.Handle

	layout, mode int
	viewerPref   uint32
	compression  uint32
	openAction   engine.Handle
	info         map[int]string
	encoder      string
	loadedFonts  []string
	password     []byte
	permission   uint32
}

// New returns a new fake engine.
func New() *Engine {
	return &Engine{
		faults:   make(map[string]fault),
		docs:     make(map[engine.Handle]*document),
		owner:    make(map[engine.Handle]engine.Handle),
		pages:    make(map[engine.Handle]*pageState),
		fonts:    make(map[engine.Handle]*fontState),
		encoders: make(map[engine.Handle]string),
		images:   make(map[engine.Handle]*imageState),
		objects:  make(map[engine.Handle]string),
	}
}

var _ engine.Engine = (*Engine)(nil)

// Fail makes all future calls of the named method record the given error
// in the document.  Use [Engine.Clear] to remove the fault.
func (e *Engine) Fail(name string, code, detail uint32) {
	e.faults[name] = fault{code: code, detail: detail}
}

// Clear removes a fault installed by [Engine.Fail].
func (e *Engine) Clear(name string) {
	delete(e.faults, name)
}

// Count returns the number of calls of the named method.
func (e *Engine) Count(name string) int {
	n := 0
	for _, c := range e.Calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call of the named method.
func (e *Engine) Last(name string) (Call, bool) {
	for i := len(e.Calls) - 1; i >= 0; i-- {
		if e.Calls[i].Name == name {
			return e.Calls[i], true
		}
	}
	return Call{}, false
}

// Reset forgets the recorded calls.
func (e *Engine) Reset() {
	e.Calls = e.Calls[:0]
}

// Freed reports whether Free has been called for the document.
func (e *Engine) Freed(doc engine.Handle) bool {
	d, ok := e.docs[doc]
	return ok && d.freed
}

// LoadedFonts returns the font names made available for the document.
func (e *Engine) LoadedFonts(doc engine.Handle) []string {
	if d := e.docs[doc]; d != nil {
		return d.loadedFonts
	}
	return nil
}

// Password returns the owner and user passwords set for the document,
// and the permission flags.
func (e *Engine) Password(doc engine.Handle) ([]byte, uint32) {
	if d := e.docs[doc]; d != nil {
		return d.password, d.permission
	}
	return nil, 0
}

func (e *Engine) alloc(owner engine.Handle) engine.Handle {
	e.next++
	h := e.next
	e.owner[h] = owner
	return h
}

// call records a call on h, which is either a document handle or the
// handle of an object owned by a document.  It returns the document state,
// or nil if the handle is unknown.
func (e *Engine) call(name string, h engine.Handle, text string) *document {
	e.Calls = append(e.Calls, Call{Name: name, Handle: h, Text: text})

	docH := h
	if owner, ok := e.owner[h]; ok {
		docH = owner
	}
	d := e.docs[docH]
	if d == nil {
		return nil
	}
	if f, ok := e.faults[name]; ok && d.err == 0 {
		d.err = f.code
		d.detail = f.detail
	}
	return d
}

// ok reports whether the call can proceed, i.e. whether the document
// exists and has no pending error.
func ok(d *document) bool {
	return d != nil && d.err == 0
}

func (d *document) fail(code uint32) {
	if d.err == 0 {
		d.err = code
	}
}

func (e *Engine) New() engine.Handle {
	e.Calls = append(e.Calls, Call{Name: "New"})
	if e.FailNew {
		return 0
	}
	e.next++
	h := e.next
	e.docs[h] = &document{
		hasDoc: true,
		info:   make(map[int]string),
	}
	return h
}

func (e *Engine) Free(doc engine.Handle) {
	d := e.call("Free", doc, "")
	if d != nil {
		d.freed = true
	}
}

func (e *Engine) GetError(doc engine.Handle) uint32 {
	if d := e.docs[doc]; d != nil {
		return d.err
	}
	return CodeInvalidDocument
}

func (e *Engine) GetErrorDetail(doc engine.Handle) uint32 {
	if d := e.docs[doc]; d != nil {
		return d.detail
	}
	return 0
}

func (e *Engine) ResetError(doc engine.Handle) {
	d := e.call("ResetError", doc, "")
	if d != nil {
		d.err = 0
		d.detail = 0
	}
}

func (e *Engine) NewDoc(doc engine.Handle) {
	if d := e.call("NewDoc", doc, ""); ok(d) {
		e.clearDoc(d)
		d.hasDoc = true
	}
}

func (e *Engine) FreeDoc(doc engine.Handle) {
	if d := e.call("FreeDoc", doc, ""); ok(d) {
		e.clearDoc(d)
	}
}

func (e *Engine) FreeDocAll(doc engine.Handle) {
	if d := e.call("FreeDocAll", doc, ""); ok(d) {
		e.clearDoc(d)
		d.loadedFonts = nil
	}
}

func (e *Engine) clearDoc(d *document) {
	d.hasDoc = false
	d.pages = nil
	d.current = 0
	d.stream = nil
	d.pos = 0
	d.saved = false
	d.info = make(map[int]string)
	d.encoder = ""
}

func (e *Engine) HasDoc(doc engine.Handle) bool {
	d := e.call("HasDoc", doc, "")
	return d != nil && d.hasDoc
}

func (e *Engine) SaveToFile(doc engine.Handle, fileName string) {
	e.call("SaveToFile", doc, fileName)
}

func (e *Engine) SaveToStream(doc engine.Handle) {
	if d := e.call("SaveToStream", doc, ""); ok(d) {
		d.stream = append([]byte(nil), e.Output...)
		d.pos = 0
		d.saved = true
	}
}

func (e *Engine) GetStreamSize(doc engine.Handle) uint32 {
	d := e.call("GetStreamSize", doc, "")
	if d == nil {
		return 0
	}
	return uint32(len(d.stream))
}

func (e *Engine) ResetStream(doc engine.Handle) {
	if d := e.call("ResetStream", doc, ""); ok(d) {
		d.pos = 0
	}
}

// ReadFromStream copies data from the current read position.  If less
// than *size bytes remain, the remaining bytes are returned together
// with a StreamEOF error, like libharu does.
func (e *Engine) ReadFromStream(doc engine.Handle, buf []byte, size *uint32) {
	d := e.call("ReadFromStream", doc, "")
	if !ok(d) {
		*size = 0
		return
	}
	want := min(int(*size), len(buf))
	n := copy(buf[:want], d.stream[d.pos:])
	d.pos += n
	*size = uint32(n)
	if n < want {
		d.fail(CodeStreamEOF)
	}
	if e.ReportSize != 0 {
		*size = e.ReportSize
	}
}

func (e *Engine) GetContents(doc engine.Handle, buf []byte, size *uint32) {
	d := e.call("GetContents", doc, "")
	if !ok(d) {
		*size = 0
		return
	}
	want := min(int(*size), len(buf))
	n := copy(buf[:want], d.stream)
	*size = uint32(n)
	if e.ReportSize != 0 {
		*size = e.ReportSize
	}
}

func (e *Engine) SetPagesConfiguration(doc engine.Handle, pagePerPages uint32) {
	e.call("SetPagesConfiguration", doc, "")
}

func (e *Engine) GetPageByIndex(doc engine.Handle, index uint32) engine.Handle {
	d := e.call("GetPageByIndex", doc, "")
	if !ok(d) {
		return 0
	}
	if int(index) >= len(d.pages) {
		d.fail(CodeInvalidPageIndex)
		return 0
	}
	return d.pages[index]
}

func (e *Engine) SetPageLayout(doc engine.Handle, layout int) {
	if d := e.call("SetPageLayout", doc, ""); ok(d) {
		d.layout = layout
	}
}

func (e *Engine) GetPageLayout(doc engine.Handle) int {
	if d := e.call("GetPageLayout", doc, ""); d != nil {
		return d.layout
	}
	return 0
}

func (e *Engine) SetPageMode(doc engine.Handle, mode int) {
	if d := e.call("SetPageMode", doc, ""); ok(d) {
		d.mode = mode
	}
}

func (e *Engine) GetPageMode(doc engine.Handle) int {
	if d := e.call("GetPageMode", doc, ""); d != nil {
		return d.mode
	}
	return 0
}

func (e *Engine) SetViewerPreference(doc engine.Handle, value uint32) {
	if d := e.call("SetViewerPreference", doc, ""); ok(d) {
		d.viewerPref = value
	}
}

func (e *Engine) GetViewerPreference(doc engine.Handle) uint32 {
	if d := e.call("GetViewerPreference", doc, ""); d != nil {
		return d.viewerPref
	}
	return 0
}

func (e *Engine) SetOpenAction(doc engine.Handle, dst engine.Handle) {
	if d := e.call("SetOpenAction", doc, ""); ok(d) {
		d.openAction = dst
	}
}

func (e *Engine) GetCurrentPage(doc engine.Handle) engine.Handle {
	if d := e.call("GetCurrentPage", doc, ""); d != nil {
		return d.current
	}
	return 0
}

func (e *Engine) AddPage(doc engine.Handle) engine.Handle {
	d := e.call("AddPage", doc, "")
	if !ok(d) {
		return 0
	}
	h := e.newPage(doc)
	d.pages = append(d.pages, h)
	d.current = h
	return h
}

func (e *Engine) InsertPage(doc engine.Handle, target engine.Handle) engine.Handle {
	d := e.call("InsertPage", doc, "")
	if !ok(d) {
		return 0
	}
	for i, p := range d.pages {
		if p == target {
			h := e.newPage(doc)
			d.pages = append(d.pages[:i], append([]engine.Handle{h}, d.pages[i:]...)...)
			d.current = h
			return h
		}
	}
	d.fail(CodeInvalidPage)
	return 0
}

func (e *Engine) AddPageLabel(doc engine.Handle, pageNum uint32, style int, firstPage uint32, prefix string) {
	e.call("AddPageLabel", doc, prefix)
}

func (e *Engine) SetInfoAttr(doc engine.Handle, infoType int, value string) {
	if d := e.call("SetInfoAttr", doc, value); ok(d) {
		d.info[infoType] = value
	}
}

func (e *Engine) GetInfoAttr(doc engine.Handle, infoType int) (string, bool) {
	d := e.call("GetInfoAttr", doc, "")
	if d == nil {
		return "", false
	}
	v, ok := d.info[infoType]
	return v, ok
}

// SetInfoDateAttr stores the date in the format used in PDF files.
func (e *Engine) SetInfoDateAttr(doc engine.Handle, infoType int, value engine.Date) {
	d := e.call("SetInfoDateAttr", doc, "")
	if !ok(d) {
		return
	}
	s := fmt.Sprintf("D:%04d%02d%02d%02d%02d%02d",
		value.Year, value.Month, value.Day, value.Hour, value.Minutes, value.Seconds)
	switch value.Ind {
	case '+', '-':
		s += fmt.Sprintf("%c%02d'%02d'", value.Ind, value.OffHour, value.OffMinutes)
	case 'Z':
		s += "Z"
	}
	d.info[infoType] = s
}

func (e *Engine) SetPassword(doc engine.Handle, owner, user []byte) {
	if d := e.call("SetPassword", doc, string(owner)); ok(d) {
		d.password = append(append([]byte(nil), owner...), user...)
	}
}

func (e *Engine) SetPermission(doc engine.Handle, permission uint32) {
	if d := e.call("SetPermission", doc, ""); ok(d) {
		d.permission = permission
	}
}

func (e *Engine) SetEncryptionMode(doc engine.Handle, mode int, keyLen uint32) {
	e.call("SetEncryptionMode", doc, "")
}

func (e *Engine) SetCompressionMode(doc engine.Handle, mode uint32) {
	if d := e.call("SetCompressionMode", doc, ""); ok(d) {
		d.compression = mode
	}
}
