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

package engine

// The numeric constants below have the values used in hpdf_types.h and
// hpdf_consts.h.

// Color spaces (HPDF_ColorSpace).
const (
	CSDeviceGray = iota
	CSDeviceRGB
	CSDeviceCMYK
	CSCalGray
	CSCalRGB
	CSLab
	CSICCBased
	CSSeparation
	CSDeviceN
	CSIndexed
	CSPattern
	CSEOF
)

// Line cap styles (HPDF_LineCap).
const (
	ButtEnd = iota
	RoundEnd
	ProjectingSquareEnd
	LineCapEOF
)

// Line join styles (HPDF_LineJoin).
const (
	MiterJoin = iota
	RoundJoin
	BevelJoin
	LineJoinEOF
)

// Text rendering modes (HPDF_TextRenderingMode).
const (
	Fill = iota
	Stroke
	FillThenStroke
	Invisible
	FillClipping
	StrokeClipping
	FillStrokeClipping
	Clipping
	RenderingModeEOF
)

// Page layouts (HPDF_PageLayout).
const (
	PageLayoutSingle = iota
	PageLayoutOneColumn
	PageLayoutTwoColumnLeft
	PageLayoutTwoColumnRight
	PageLayoutTwoPageLeft
	PageLayoutTwoPageRight
	PageLayoutEOF
)

// Page modes (HPDF_PageMode).
const (
	PageModeUseNone = iota
	PageModeUseOutline
	PageModeUseThumbs
	PageModeFullScreen
	PageModeEOF
)

// Page sizes (HPDF_PageSizes).
const (
	PageSizeLetter = iota
	PageSizeLegal
	PageSizeA3
	PageSizeA4
	PageSizeA5
	PageSizeB4
	PageSizeB5
	PageSizeExecutive
	PageSizeUS4x6
	PageSizeUS4x8
	PageSizeUS5x7
	PageSizeComm10
	PageSizeEOF
)

// Page directions (HPDF_PageDirection).
const (
	PagePortrait = iota
	PageLandscape
)

// Page number styles (HPDF_PageNumStyle).
const (
	PageNumStyleDecimal = iota
	PageNumStyleUpperRoman
	PageNumStyleLowerRoman
	PageNumStyleUpperLetters
	PageNumStyleLowerLetters
	PageNumStyleEOF
)

// Transition styles (HPDF_TransitionStyle).
const (
	TSWipeRight = iota
	TSWipeUp
	TSWipeLeft
	TSWipeDown
	TSBarnDoorsHorizontalOut
	TSBarnDoorsHorizontalIn
	TSBarnDoorsVerticalOut
	TSBarnDoorsVerticalIn
	TSBoxOut
	TSBoxIn
	TSBlindsHorizontal
	TSBlindsVertical
	TSDissolve
	TSGlitterRight
	TSGlitterDown
	TSGlitterTopLeftToBottomRight
	TSReplace
	TSEOF
)

// Text alignments (HPDF_TextAlignment).
const (
	TalignLeft = iota
	TalignRight
	TalignCenter
	TalignJustify
)

// Info dictionary entries (HPDF_InfoType).
const (
	InfoCreationDate = iota
	InfoModDate
	InfoAuthor
	InfoCreator
	InfoProducer
	InfoTitle
	InfoSubject
	InfoKeywords
	InfoTrapped
	InfoGTSPDFX
	InfoEOF
)

// Text annotation icons (HPDF_AnnotIcon).
const (
	AnnotIconComment = iota
	AnnotIconKey
	AnnotIconNote
	AnnotIconHelp
	AnnotIconNewParagraph
	AnnotIconParagraph
	AnnotIconInsert
	AnnotIconEOF
)

// Border style subtypes (HPDF_BSSubtype).
const (
	BSSolid = iota
	BSDashed
	BSBeveled
	BSInset
	BSUnderlined
)

// Link annotation highlight modes (HPDF_AnnotHighlightMode).
const (
	AnnotNoHighlight = iota
	AnnotInvertBox
	AnnotInvertBorder
	AnnotDownAppearance
	AnnotHighlightModeEOF
)

// Blend modes (HPDF_BlendMode).
const (
	BMNormal = iota
	BMMultiply
	BMScreen
	BMOverlay
	BMDarken
	BMLighten
	BMColorDodge
	BMColorBum
	BMHardLight
	BMSoftLight
	BMDifference
	BMExclusion
	BMEOF
)

// Encoder types (HPDF_EncoderType).
const (
	EncoderTypeSingleByte = iota
	EncoderTypeDoubleByte
	EncoderTypeUninitialized
	EncoderUnknown
)

// Writing modes (HPDF_WritingMode).
const (
	WModeHorizontal = iota
	WModeVertical
	WModeEOF
)

// Encryption modes (HPDF_EncryptMode).
const (
	EncryptR2 = 2
	EncryptR3 = 3
)

// Compression flags (HPDF_COMP_*).
const (
	CompNone     = 0x00
	CompText     = 0x01
	CompImage    = 0x02
	CompMetadata = 0x04
	CompAll      = 0x0F
)

// Permission flags (HPDF_ENABLE_*).
const (
	EnableRead    = 0
	EnablePrint   = 4
	EnableEditAll = 8
	EnableCopy    = 16
	EnableEdit    = 32
)

// Viewer preference flags.
const (
	HideToolbar      = 1
	HideMenubar      = 2
	HideWindowUI     = 4
	FitWindow        = 8
	CenterWindow     = 16
	PrintScalingNone = 32
)

// Graphics modes (HPDF_GMODE_*).
const (
	GModePageDescription = 0x0001
	GModePathObject      = 0x0002
	GModeTextObject      = 0x0004
	GModeClippingPath    = 0x0008
	GModeShading         = 0x0010
	GModeInlineImage     = 0x0020
	GModeExternalObject  = 0x0040
)

