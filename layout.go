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

	"seehuhn.de/go/haru/engine"
)

// PageLayout specifies how a viewer arranges pages when the document is
// opened.
type PageLayout uint8

// Possible values for PageLayout.
// See table 29 of ISO 32000-2:2020.
const (
	LayoutSinglePage PageLayout = iota
	LayoutOneColumn
	LayoutTwoColumnLeft
	LayoutTwoColumnRight
	LayoutTwoPageLeft
	LayoutTwoPageRight

	// PageLayoutEOF is used for engine values not known to this package.
	PageLayoutEOF
)

var pageLayoutCodes = []int{
	LayoutSinglePage:     engine.PageLayoutSingle,
	LayoutOneColumn:      engine.PageLayoutOneColumn,
	LayoutTwoColumnLeft:  engine.PageLayoutTwoColumnLeft,
	LayoutTwoColumnRight: engine.PageLayoutTwoColumnRight,
	LayoutTwoPageLeft:    engine.PageLayoutTwoPageLeft,
	LayoutTwoPageRight:   engine.PageLayoutTwoPageRight,
}

func (l PageLayout) String() string {
	switch l {
	case LayoutSinglePage:
		return "SinglePage"
	case LayoutOneColumn:
		return "OneColumn"
	case LayoutTwoColumnLeft:
		return "TwoColumnLeft"
	case LayoutTwoColumnRight:
		return "TwoColumnRight"
	case LayoutTwoPageLeft:
		return "TwoPageLeft"
	case LayoutTwoPageRight:
		return "TwoPageRight"
	default:
		return fmt.Sprintf("PageLayout(%d)", l)
	}
}

// PageMode specifies which panels a viewer shows when the document is
// opened.
type PageMode uint8

// Possible values for PageMode.
const (
	ModeUseNone PageMode = iota
	ModeUseOutlines
	ModeUseThumbs
	ModeFullScreen

	// PageModeEOF is used for engine values not known to this package.
	PageModeEOF
)

var pageModeCodes = []int{
	ModeUseNone:     engine.PageModeUseNone,
	ModeUseOutlines: engine.PageModeUseOutline,
	ModeUseThumbs:   engine.PageModeUseThumbs,
	ModeFullScreen:  engine.PageModeFullScreen,
}

func (m PageMode) String() string {
	switch m {
	case ModeUseNone:
		return "UseNone"
	case ModeUseOutlines:
		return "UseOutlines"
	case ModeUseThumbs:
		return "UseThumbs"
	case ModeFullScreen:
		return "FullScreen"
	default:
		return fmt.Sprintf("PageMode(%d)", m)
	}
}

// PageSize is one of the predefined paper sizes.
type PageSize uint8

// The predefined paper sizes.
const (
	SizeLetter PageSize = iota
	SizeLegal
	SizeA3
	SizeA4
	SizeA5
	SizeB4
	SizeB5
	SizeExecutive
	SizeUS4x6
	SizeUS4x8
	SizeUS5x7
	SizeComm10
)

var pageSizeCodes = []int{
	SizeLetter:    engine.PageSizeLetter,
	SizeLegal:     engine.PageSizeLegal,
	SizeA3:        engine.PageSizeA3,
	SizeA4:        engine.PageSizeA4,
	SizeA5:        engine.PageSizeA5,
	SizeB4:        engine.PageSizeB4,
	SizeB5:        engine.PageSizeB5,
	SizeExecutive: engine.PageSizeExecutive,
	SizeUS4x6:     engine.PageSizeUS4x6,
	SizeUS4x8:     engine.PageSizeUS4x8,
	SizeUS5x7:     engine.PageSizeUS5x7,
	SizeComm10:    engine.PageSizeComm10,
}

// PageDirection is the orientation of a predefined paper size.
type PageDirection uint8

// Possible values for PageDirection.
const (
	Portrait PageDirection = iota
	Landscape
)

var pageDirectionCodes = []int{
	Portrait:  engine.PagePortrait,
	Landscape: engine.PageLandscape,
}

// PageNumberStyle is the numbering style of a page label range.
type PageNumberStyle uint8

// Possible values for PageNumberStyle.
const (
	NumDecimal PageNumberStyle = iota
	NumUpperRoman
	NumLowerRoman
	NumUpperLetters
	NumLowerLetters
)

var pageNumberStyleCodes = []int{
	NumDecimal:      engine.PageNumStyleDecimal,
	NumUpperRoman:   engine.PageNumStyleUpperRoman,
	NumLowerRoman:   engine.PageNumStyleLowerRoman,
	NumUpperLetters: engine.PageNumStyleUpperLetters,
	NumLowerLetters: engine.PageNumStyleLowerLetters,
}

// TransitionStyle is the visual effect used when a page is shown in a
// presentation.
type TransitionStyle uint8

// Possible values for TransitionStyle.
const (
	WipeRight TransitionStyle = iota
	WipeUp
	WipeLeft
	WipeDown
	BarnDoorsHorizontalOut
	BarnDoorsHorizontalIn
	BarnDoorsVerticalOut
	BarnDoorsVerticalIn
	BoxOut
	BoxIn
	BlindsHorizontal
	BlindsVertical
	Dissolve
	GlitterRight
	GlitterDown
	GlitterTopLeftToBottomRight
	Replace
)

var transitionStyleCodes = []int{
	WipeRight:                   engine.TSWipeRight,
	WipeUp:                      engine.TSWipeUp,
	WipeLeft:                    engine.TSWipeLeft,
	WipeDown:                    engine.TSWipeDown,
	BarnDoorsHorizontalOut:      engine.TSBarnDoorsHorizontalOut,
	BarnDoorsHorizontalIn:       engine.TSBarnDoorsHorizontalIn,
	BarnDoorsVerticalOut:        engine.TSBarnDoorsVerticalOut,
	BarnDoorsVerticalIn:         engine.TSBarnDoorsVerticalIn,
	BoxOut:                      engine.TSBoxOut,
	BoxIn:                       engine.TSBoxIn,
	BlindsHorizontal:            engine.TSBlindsHorizontal,
	BlindsVertical:              engine.TSBlindsVertical,
	Dissolve:                    engine.TSDissolve,
	GlitterRight:                engine.TSGlitterRight,
	GlitterDown:                 engine.TSGlitterDown,
	GlitterTopLeftToBottomRight: engine.TSGlitterTopLeftToBottomRight,
	Replace:                     engine.TSReplace,
}

// ViewerPreferences is a set of flags controlling the viewer window.
type ViewerPreferences uint32

// The viewer preference flags.
const (
	HideToolbar      ViewerPreferences = engine.HideToolbar
	HideMenubar      ViewerPreferences = engine.HideMenubar
	HideWindowUI     ViewerPreferences = engine.HideWindowUI
	FitWindow        ViewerPreferences = engine.FitWindow
	CenterWindow     ViewerPreferences = engine.CenterWindow
	PrintScalingNone ViewerPreferences = engine.PrintScalingNone
)
