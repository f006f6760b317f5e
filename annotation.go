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
	"net/url"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/haru/engine"
)

// AnnotationIcon is the icon used to display a text annotation.
type AnnotationIcon uint8

// Possible values for AnnotationIcon.
const (
	IconComment AnnotationIcon = iota
	IconKey
	IconNote
	IconHelp
	IconNewParagraph
	IconParagraph
	IconInsert
)

var annotationIconCodes = []int{
	IconComment:      engine.AnnotIconComment,
	IconKey:          engine.AnnotIconKey,
	IconNote:         engine.AnnotIconNote,
	IconHelp:         engine.AnnotIconHelp,
	IconNewParagraph: engine.AnnotIconNewParagraph,
	IconParagraph:    engine.AnnotIconParagraph,
	IconInsert:       engine.AnnotIconInsert,
}

// BorderStyle is the style of an annotation border.
type BorderStyle uint8

// Possible values for BorderStyle.
const (
	BorderSolid BorderStyle = iota
	BorderDashed
	BorderBeveled
	BorderInset
	BorderUnderlined
)

var borderStyleCodes = []int{
	BorderSolid:      engine.BSSolid,
	BorderDashed:     engine.BSDashed,
	BorderBeveled:    engine.BSBeveled,
	BorderInset:      engine.BSInset,
	BorderUnderlined: engine.BSUnderlined,
}

// HighlightMode describes how a link annotation reacts to mouse clicks.
type HighlightMode uint8

// Possible values for HighlightMode.
const (
	HighlightNone HighlightMode = iota
	HighlightInvertBox
	HighlightInvertBorder
	HighlightDownAppearance
)

var highlightModeCodes = []int{
	HighlightNone:           engine.AnnotNoHighlight,
	HighlightInvertBox:      engine.AnnotInvertBox,
	HighlightInvertBorder:   engine.AnnotInvertBorder,
	HighlightDownAppearance: engine.AnnotDownAppearance,
}

// Annotation is an annotation on a page.
type Annotation struct {
	doc *Document
	h   engine.Handle
}

func (p *Page) annotation(op string, h engine.Handle) (Annotation, error) {
	if err := p.doc.check(op); err != nil {
		return Annotation{}, err
	}
	if h == 0 {
		return Annotation{}, newError(op, ErrInvalidAnnotation)
	}
	return Annotation{doc: p.doc, h: h}, nil
}

// SetBorder sets the border of the annotation.  The dash lengths are only
// used for [BorderDashed].
func (a *Annotation) SetBorder(style BorderStyle, width float64, dashOn, dashOff, dashPhase uint16) error {
	const op = "Annotation.SetBorder"
	code, ok := encodeEnum(style, borderStyleCodes)
	if !ok {
		return newError(op, ErrAnnotationInvalidBorderStyle)
	}
	if err := a.doc.ready(op); err != nil {
		return err
	}
	a.doc.eng.AnnotationSetBorderStyle(a.h, code, width, dashOn, dashOff, dashPhase)
	return a.doc.check(op)
}

// TextAnnotation is a "sticky note" attached to a point on a page.
type TextAnnotation struct {
	Annotation
}

// CreateTextAnnotation adds a text annotation to the page.  The text is
// encoded using enc, or using PDFDocEncoding if enc is nil.
func (p *Page) CreateTextAnnotation(box rect.Rect, text string, enc *Encoder) (*TextAnnotation, error) {
	const op = "CreateTextAnnotation"
	if err := p.doc.ready(op); err != nil {
		return nil, err
	}
	var encH engine.Handle
	if enc != nil {
		if enc.doc != p.doc {
			return nil, newError(op, ErrInvalidEncoder)
		}
		encH = enc.h
		if !p.doc.rawText {
			s, err := enc.encode(text)
			if err != nil {
				return nil, err
			}
			text = s
		}
	}
	h := p.doc.eng.PageCreateTextAnnot(p.h, rectToEngine(box), text, encH)
	a, err := p.annotation(op, h)
	if err != nil {
		return nil, err
	}
	return &TextAnnotation{a}, nil
}

// SetIcon sets the icon used to display the annotation.
func (a *TextAnnotation) SetIcon(icon AnnotationIcon) error {
	const op = "TextAnnotation.SetIcon"
	code, ok := encodeEnum(icon, annotationIconCodes)
	if !ok {
		return newError(op, ErrAnnotationInvalidIcon)
	}
	if err := a.doc.ready(op); err != nil {
		return err
	}
	a.doc.eng.TextAnnotSetIcon(a.h, code)
	return a.doc.check(op)
}

// SetOpened controls whether the annotation is initially shown open.
func (a *TextAnnotation) SetOpened(opened bool) error {
	if err := a.doc.ready("TextAnnotation.SetOpened"); err != nil {
		return err
	}
	a.doc.eng.TextAnnotSetOpened(a.h, opened)
	return a.doc.check("TextAnnotation.SetOpened")
}

// LinkAnnotation is a clickable area on a page.
type LinkAnnotation struct {
	Annotation
}

// CreateLinkAnnotation adds a link to a destination within the document.
func (p *Page) CreateLinkAnnotation(box rect.Rect, dst *Destination) (*LinkAnnotation, error) {
	const op = "CreateLinkAnnotation"
	if err := p.doc.ready(op); err != nil {
		return nil, err
	}
	if dst == nil || dst.doc != p.doc {
		return nil, newError(op, ErrInvalidDestination)
	}
	h := p.doc.eng.PageCreateLinkAnnot(p.h, rectToEngine(box), dst.h)
	a, err := p.annotation(op, h)
	if err != nil {
		return nil, err
	}
	return &LinkAnnotation{a}, nil
}

// CreateURILinkAnnotation adds a link to an external resource.  The URI
// must be absolute.
func (p *Page) CreateURILinkAnnotation(box rect.Rect, uri string) (*LinkAnnotation, error) {
	const op = "CreateURILinkAnnotation"
	if err := p.doc.ready(op); err != nil {
		return nil, err
	}
	if u, err := url.Parse(uri); err != nil || !u.IsAbs() {
		return nil, newError(op, ErrInvalidURI)
	}
	h := p.doc.eng.PageCreateURILinkAnnot(p.h, rectToEngine(box), uri)
	a, err := p.annotation(op, h)
	if err != nil {
		return nil, err
	}
	return &LinkAnnotation{a}, nil
}

// SetHighlightMode sets the visual effect shown while the link is clicked.
func (a *LinkAnnotation) SetHighlightMode(mode HighlightMode) error {
	const op = "LinkAnnotation.SetHighlightMode"
	code, ok := encodeEnum(mode, highlightModeCodes)
	if !ok {
		return newError(op, ErrInvalidParameter)
	}
	if err := a.doc.ready(op); err != nil {
		return err
	}
	a.doc.eng.LinkAnnotSetHighlightMode(a.h, code)
	return a.doc.check(op)
}

// SetBorderStyle sets the width and dash pattern of the link border.
// A width of 0 hides the border.
func (a *LinkAnnotation) SetBorderStyle(width float64, dashOn, dashOff uint16) error {
	const op = "LinkAnnotation.SetBorderStyle"
	if width < 0 {
		return newError(op, ErrInvalidParameter)
	}
	if err := a.doc.ready(op); err != nil {
		return err
	}
	a.doc.eng.LinkAnnotSetBorderStyle(a.h, width, dashOn, dashOff)
	return a.doc.check(op)
}
