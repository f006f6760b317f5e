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

import "seehuhn.de/go/haru/engine"

// SetPagesConfiguration limits the number of pages per node of the page
// tree.
func (d *Document) SetPagesConfiguration(pagesPerPages uint32) error {
	if err := d.ready("SetPagesConfiguration"); err != nil {
		return err
	}
	d.eng.SetPagesConfiguration(d.h, pagesPerPages)
	return d.check("SetPagesConfiguration")
}

// AddPage appends a new page to the document.
func (d *Document) AddPage() (*Page, error) {
	if err := d.ready("AddPage"); err != nil {
		return nil, err
	}
	h := d.eng.AddPage(d.h)
	return d.page("AddPage", h)
}

// InsertPage inserts a new page immediately before the given page.
func (d *Document) InsertPage(before *Page) (*Page, error) {
	if err := d.ready("InsertPage"); err != nil {
		return nil, err
	}
	if before == nil || before.doc != d {
		return nil, newError("InsertPage", ErrInvalidPage)
	}
	h := d.eng.InsertPage(d.h, before.h)
	return d.page("InsertPage", h)
}

// Page returns the page with the given index.  The first page has index
// 0.
func (d *Document) Page(index uint32) (*Page, error) {
	if err := d.ready("Page"); err != nil {
		return nil, err
	}
	h := d.eng.GetPageByIndex(d.h, index)
	return d.page("Page", h)
}

// CurrentPage returns the page which was most recently added or inserted.
func (d *Document) CurrentPage() (*Page, error) {
	if err := d.ready("CurrentPage"); err != nil {
		return nil, err
	}
	h := d.eng.GetCurrentPage(d.h)
	return d.page("CurrentPage", h)
}

// page returns the wrapper for the engine page h.  The same *Page is
// returned for repeated lookups of one engine page, so that the error
// state of the page is shared.
func (d *Document) page(op string, h engine.Handle) (*Page, error) {
	if err := d.check(op); err != nil {
		return nil, err
	}
	if h == 0 {
		return nil, newError(op, ErrInvalidPage)
	}
	if p, ok := d.pages[h]; ok {
		return p, nil
	}
	if d.pages == nil {
		d.pages = make(map[engine.Handle]*Page)
	}
	p := &Page{doc: d, h: h}
	d.pages[h] = p
	return p, nil
}

// AddPageLabel sets the numbering style for the pages starting at
// pageNum.  Page labels start at firstPage and are preceded by prefix,
// which may be empty.
func (d *Document) AddPageLabel(pageNum uint32, style PageNumberStyle, firstPage uint32, prefix string) error {
	code, ok := encodeEnum(style, pageNumberStyleCodes)
	if !ok {
		return newError("AddPageLabel", ErrPageNumStyleOutOfRange)
	}
	if err := d.ready("AddPageLabel"); err != nil {
		return err
	}
	d.eng.AddPageLabel(d.h, pageNum, code, firstPage, prefix)
	return d.check("AddPageLabel")
}

// SetPageLayout sets the page layout used when the document is opened.
func (d *Document) SetPageLayout(layout PageLayout) error {
	code, ok := encodeEnum(layout, pageLayoutCodes)
	if !ok {
		return newError("SetPageLayout", ErrPageLayoutOutOfRange)
	}
	if err := d.ready("SetPageLayout"); err != nil {
		return err
	}
	d.eng.SetPageLayout(d.h, code)
	return d.check("SetPageLayout")
}

// PageLayout returns the page layout used when the document is opened.
// Values not known to this package are reported as [PageLayoutEOF].
func (d *Document) PageLayout() PageLayout {
	if d.h == 0 {
		return PageLayoutEOF
	}
	return decodeEnum(d.eng.GetPageLayout(d.h), pageLayoutCodes, PageLayoutEOF)
}

// SetPageMode sets the page mode used when the document is opened.
func (d *Document) SetPageMode(mode PageMode) error {
	code, ok := encodeEnum(mode, pageModeCodes)
	if !ok {
		return newError("SetPageMode", ErrPageModeOutOfRange)
	}
	if err := d.ready("SetPageMode"); err != nil {
		return err
	}
	d.eng.SetPageMode(d.h, code)
	return d.check("SetPageMode")
}

// PageMode returns the page mode used when the document is opened.
// Values not known to this package are reported as [PageModeEOF].
func (d *Document) PageMode() PageMode {
	if d.h == 0 {
		return PageModeEOF
	}
	return decodeEnum(d.eng.GetPageMode(d.h), pageModeCodes, PageModeEOF)
}

// SetViewerPreferences sets the flags for the viewer window.
func (d *Document) SetViewerPreferences(pref ViewerPreferences) error {
	if err := d.ready("SetViewerPreferences"); err != nil {
		return err
	}
	d.eng.SetViewerPreference(d.h, uint32(pref))
	return d.check("SetViewerPreferences")
}

// ViewerPreferences returns the flags for the viewer window.
func (d *Document) ViewerPreferences() ViewerPreferences {
	if d.h == 0 {
		return 0
	}
	return ViewerPreferences(d.eng.GetViewerPreference(d.h))
}

// SetOpenAction sets the destination which is shown when the document is
// opened.
func (d *Document) SetOpenAction(dst *Destination) error {
	if err := d.ready("SetOpenAction"); err != nil {
		return err
	}
	if dst == nil || dst.doc != d {
		return newError("SetOpenAction", ErrInvalidDestination)
	}
	d.eng.SetOpenAction(d.h, dst.h)
	return d.check("SetOpenAction")
}
