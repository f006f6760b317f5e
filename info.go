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
	"fmt"
	"io"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/haru/engine"
)

// InfoKey selects a text entry of the document information dictionary.
type InfoKey uint8

// The text entries of the document information dictionary.
// See section 14.3.3 of ISO 32000-2:2020.
const (
	InfoAuthor InfoKey = iota
	InfoCreator
	InfoProducer
	InfoTitle
	InfoSubject
	InfoKeywords
	InfoTrapped
	InfoGTSPDFX
)

var infoKeyCodes = []int{
	InfoAuthor:   engine.InfoAuthor,
	InfoCreator:  engine.InfoCreator,
	InfoProducer: engine.InfoProducer,
	InfoTitle:    engine.InfoTitle,
	InfoSubject:  engine.InfoSubject,
	InfoKeywords: engine.InfoKeywords,
	InfoTrapped:  engine.InfoTrapped,
	InfoGTSPDFX:  engine.InfoGTSPDFX,
}

func (k InfoKey) String() string {
	switch k {
	case InfoAuthor:
		return "Author"
	case InfoCreator:
		return "Creator"
	case InfoProducer:
		return "Producer"
	case InfoTitle:
		return "Title"
	case InfoSubject:
		return "Subject"
	case InfoKeywords:
		return "Keywords"
	case InfoTrapped:
		return "Trapped"
	case InfoGTSPDFX:
		return "GTS_PDFXVersion"
	default:
		return fmt.Sprintf("InfoKey(%d)", k)
	}
}

// DateKey selects a date entry of the document information dictionary.
type DateKey uint8

// The date entries of the document information dictionary.
const (
	CreationDate DateKey = iota
	ModDate
)

var dateKeyCodes = []int{
	CreationDate: engine.InfoCreationDate,
	ModDate:      engine.InfoModDate,
}

// SetInfoAttr sets a text entry of the document information dictionary.
func (d *Document) SetInfoAttr(key InfoKey, value string) error {
	const op = "SetInfoAttr"
	code, ok := encodeEnum(key, infoKeyCodes)
	if !ok {
		return newError(op, ErrInvalidParameter)
	}
	if err := d.ready(op); err != nil {
		return err
	}
	d.eng.SetInfoAttr(d.h, code, value)
	return d.check(op)
}

// InfoAttr returns a text entry of the document information dictionary.
// The second return value is false if the entry is not set.
func (d *Document) InfoAttr(key InfoKey) (string, bool, error) {
	const op = "InfoAttr"
	code, ok := encodeEnum(key, infoKeyCodes)
	if !ok {
		return "", false, newError(op, ErrInvalidParameter)
	}
	return d.infoAttr(op, code)
}

func (d *Document) infoAttr(op string, code int) (string, bool, error) {
	if err := d.ready(op); err != nil {
		return "", false, err
	}
	value, ok := d.eng.GetInfoAttr(d.h, code)
	if err := d.check(op); err != nil {
		return "", false, err
	}
	return value, ok, nil
}

// SetInfoDate sets a date entry of the document information dictionary.
func (d *Document) SetInfoDate(key DateKey, value DateTime) error {
	const op = "SetInfoDate"
	code, ok := encodeEnum(key, dateKeyCodes)
	if !ok {
		return newError(op, ErrInvalidParameter)
	}
	if err := d.ready(op); err != nil {
		return err
	}
	d.eng.SetInfoDateAttr(d.h, code, value.toEngine())
	return d.check(op)
}

// InfoDateString returns a date entry of the document information
// dictionary, in the format stored in the file.
// The second return value is false if the entry is not set.
func (d *Document) InfoDateString(key DateKey) (string, bool, error) {
	const op = "InfoDateString"
	code, ok := encodeEnum(key, dateKeyCodes)
	if !ok {
		return "", false, newError(op, ErrInvalidParameter)
	}
	return d.infoAttr(op, code)
}

// InfoDate returns a date entry of the document information dictionary.
// The second return value is false if the entry is not set.
func (d *Document) InfoDate(key DateKey) (DateTime, bool, error) {
	raw, ok, err := d.InfoDateString(key)
	if err != nil || !ok {
		return DateTime{}, false, err
	}
	dt, err := ParseDateTime(raw)
	if err != nil {
		return DateTime{}, true, err
	}
	return dt, true, nil
}

// Info collects the entries of the document information dictionary.
type Info struct {
	Title    string
	Author   string
	Subject  string
	Keywords string
	Creator  string
	Producer string

	CreationDate time.Time
	ModDate      time.Time
}

// SetInfo sets all non-empty fields of info in the document information
// dictionary.
func (d *Document) SetInfo(info *Info) error {
	text := []struct {
		key   InfoKey
		value string
	}{
		{InfoTitle, info.Title},
		{InfoAuthor, info.Author},
		{InfoSubject, info.Subject},
		{InfoKeywords, info.Keywords},
		{InfoCreator, info.Creator},
		{InfoProducer, info.Producer},
	}
	for _, e := range text {
		if e.value == "" {
			continue
		}
		if err := d.SetInfoAttr(e.key, e.value); err != nil {
			return err
		}
	}

	dates := []struct {
		key   DateKey
		value time.Time
	}{
		{CreationDate, info.CreationDate},
		{ModDate, info.ModDate},
	}
	for _, e := range dates {
		if e.value.IsZero() {
			continue
		}
		if err := d.SetInfoDate(e.key, DateTimeOf(e.value)); err != nil {
			return err
		}
	}
	return nil
}

// Info reads the document information dictionary.
func (d *Document) Info() (*Info, error) {
	info := &Info{}
	text := []struct {
		key InfoKey
		dst *string
	}{
		{InfoTitle, &info.Title},
		{InfoAuthor, &info.Author},
		{InfoSubject, &info.Subject},
		{InfoKeywords, &info.Keywords},
		{InfoCreator, &info.Creator},
		{InfoProducer, &info.Producer},
	}
	for _, e := range text {
		value, _, err := d.InfoAttr(e.key)
		if err != nil {
			return nil, err
		}
		*e.dst = value
	}

	if dt, ok, err := d.InfoDate(CreationDate); err != nil {
		return nil, err
	} else if ok {
		info.CreationDate = dt.Time()
	}
	if dt, ok, err := d.InfoDate(ModDate); err != nil {
		return nil, err
	} else if ok {
		info.ModDate = dt.Time()
	}
	return info, nil
}

// xmpBasic is the XMP basic namespace.
type xmpBasic struct {
	_           xmp.Namespace `xmp:"http://ns.adobe.com/xap/1.0/"`
	_           xmp.Prefix    `xmp:"xmp"`
	CreatorTool xmp.AgentName
	CreateDate  xmp.Date
	ModifyDate  xmp.Date
}

// xmpPDF is the XMP namespace for PDF metadata.
type xmpPDF struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Keywords xmp.Text
	Producer xmp.AgentName
}

// WriteXMP writes the document information dictionary as an XMP
// metadata packet.
func (d *Document) WriteXMP(w io.Writer) error {
	info, err := d.Info()
	if err != nil {
		return err
	}

	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(language.Und, info.Title)
	}
	if info.Subject != "" {
		dc.Description.Set(language.Und, info.Subject)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}

	basic := &xmpBasic{}
	if info.Creator != "" {
		basic.CreatorTool = xmp.NewAgentName(info.Creator)
	}
	if !info.CreationDate.IsZero() {
		basic.CreateDate = xmp.NewDate(info.CreationDate)
	}
	if !info.ModDate.IsZero() {
		basic.ModifyDate = xmp.NewDate(info.ModDate)
	}

	pdfInfo := &xmpPDF{}
	if info.Keywords != "" {
		pdfInfo.Keywords = xmp.NewText(info.Keywords)
	}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	err = packet.Set(dc, basic, pdfInfo)
	if err != nil {
		return err
	}
	return packet.Write(w, &xmp.PacketOptions{Pretty: true})
}
