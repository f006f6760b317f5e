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
	"strconv"
	"syscall"
)

// Error is a failure reported by the PDF engine.
//
// Code and Detail are the raw values from the engine's error state.  The
// detail code is carried for diagnostics only; it never influences Kind.
type Error struct {
	Kind   ErrorKind
	Code   uint32
	Detail uint32

	// Op is the name of the method which observed the failure.
	Op string
}

func (err *Error) Error() string {
	msg := err.Kind.Error()
	if err.Op != "" {
		msg = err.Op + ": " + msg
	}
	return "haru: " + msg + " (error 0x" + strconv.FormatUint(uint64(err.Code), 16) +
		", detail " + strconv.FormatUint(uint64(err.Detail), 10) + ")"
}

// Unwrap returns the kind of the error.  For file errors with a non-zero
// detail code, the operating system error number is returned as well, so
// that errors.Is(err, fs.ErrNotExist) works as expected.
func (err *Error) Unwrap() []error {
	res := []error{err.Kind}
	if (err.Kind == ErrFileIO || err.Kind == ErrFileOpen) && err.Detail != 0 {
		res = append(res, syscall.Errno(err.Detail))
	}
	return res
}

// Classify maps an engine error code to an [Error].
//
// Every code is accepted.  Codes which the engine reserves but never emits
// give [ErrUndefined], all other unknown codes give [ErrInvalid].
func Classify(code, detail uint32) *Error {
	kind, ok := codeKinds[code]
	if !ok {
		kind = ErrInvalid
	}
	return &Error{Kind: kind, Code: code, Detail: detail}
}

// newError creates an error which was detected by the wrapper itself,
// before any engine call was made.
func newError(op string, kind ErrorKind) *Error {
	return &Error{Kind: kind, Code: kind.Code(), Op: op}
}

// ErrorKind identifies the type of an engine error.
//
// ErrorKind implements the error interface.  Use [errors.Is] to test
// whether an error returned by this package is of a given kind.
type ErrorKind uint8

func (k ErrorKind) Error() string {
	if int(k) < len(kindTable) {
		return kindTable[k].msg
	}
	return kindTable[ErrInvalid].msg
}

func (k ErrorKind) String() string {
	if int(k) < len(kindTable) {
		return kindTable[k].name
	}
	return fmt.Sprintf("ErrorKind(%d)", k)
}

// Code returns the engine error code corresponding to k.
// The fallback kinds [ErrUndefined] and [ErrInvalid] have code 0.
func (k ErrorKind) Code() uint32 {
	if int(k) < len(kindTable) {
		return kindTable[k].code
	}
	return 0
}

// Class returns the broad category of k.
func (k ErrorKind) Class() Class {
	if int(k) < len(kindTable) {
		return kindTable[k].class
	}
	return ClassUnknown
}

// ErrorKinds returns all error kinds, in order of their engine codes.
func ErrorKinds() []ErrorKind {
	res := make([]ErrorKind, numErrorKinds)
	for i := range res {
		res[i] = ErrorKind(i)
	}
	return res
}

// Class groups error kinds by who is responsible for them.
type Class uint8

// These are the possible values of [Class].
const (
	// ClassUnknown is used for codes the wrapper does not know.
	ClassUnknown Class = iota

	// ClassInternal indicates a bug in the engine or in this package.
	ClassInternal

	// ClassResource indicates a failure of memory allocation or file I/O.
	ClassResource

	// ClassInput indicates an invalid argument from the caller.
	ClassInput

	// ClassFormat indicates malformed or unsupported font or image data.
	ClassFormat
)

func (c Class) String() string {
	switch c {
	case ClassUnknown:
		return "unknown"
	case ClassInternal:
		return "internal"
	case ClassResource:
		return "resource"
	case ClassInput:
		return "input"
	case ClassFormat:
		return "format"
	default:
		return fmt.Sprintf("Class(%d)", c)
	}
}

// The error kinds.
const (
	ErrInvalid ErrorKind = iota
	ErrUndefined
	ErrArrayCount
	ErrArrayItemNotFound
	ErrArrayItemUnexpectedType
	ErrBinaryLength
	ErrCannotGetPNGImagePallet
	ErrDictCount
	ErrDictItemNotFound
	ErrDictItemUnexpectedType
	ErrDictStreamLengthNotFound
	ErrEncryptionNotSet
	ErrDocInvalidObject
	ErrFontDuplicateRegistration
	ErrExceededJWWCodeNumLimit
	ErrInvalidPassword
	ErrUnknownClass
	ErrGStateLimitExceeded
	ErrMemoryAllocationFailed
	ErrFileIO
	ErrFileOpen
	ErrFontExists
	ErrFontInvalidWidthTable
	ErrInvalidAFMHeader
	ErrInvalidAnnotation
	ErrInvalidBitPerComponent
	ErrInvalidCharMatricsData
	ErrInvalidColorSpace
	ErrInvalidCompressionMode
	ErrInvalidDateTime
	ErrInvalidDestination
	ErrInvalidDocument
	ErrInvalidDocumentState
	ErrInvalidEncoder
	ErrInvalidEncoderType
	ErrInvalidEncoderName
	ErrInvalidEncryptionKeyLength
	ErrInvalidFontDefData
	ErrInvalidFontDefType
	ErrInvalidFontName
	ErrInvalidImage
	ErrInvalidJPEGData
	ErrInvalidNData
	ErrInvalidObject
	ErrInvalidObjectID
	ErrInvalidImageOperation
	ErrInvalidOutline
	ErrInvalidPage
	ErrInvalidInternalPages
	ErrInvalidParameter
	ErrInvalidPNGImage
	ErrInvalidStream
	ErrMissingFileNameEntry
	ErrInvalidTTCFile
	ErrInvalidTTCIndex
	ErrInvalidWXData
	ErrItemNotFound
	ErrLibPNG
	ErrNameInvalidValue
	ErrNameOutOfRange
	ErrPagesMissingKidsEntry
	ErrPageCannotFindObject
	ErrPageCannotGetRootPages
	ErrPageCannotRestoreGState
	ErrPageCannotSetParent
	ErrPageFontNotFound
	ErrPageInvalidFont
	ErrPageInvalidFontSize
	ErrPageInvalidGMode
	ErrPageInvalidIndex
	ErrPageInvalidRotateValue
	ErrPageInvalidSize
	ErrPageInvalidXObject
	ErrPageOutOfRange
	ErrFloatOutOfRange
	ErrStreamEOF
	ErrStreamReadLnContinue
	ErrStringOutOfRange
	ErrFunctionSkipped
	ErrTTFCannotEmbedFont
	ErrTTFInvalidCMAP
	ErrTTFInvalidFormat
	ErrTTFMissingTable
	ErrUnsupportedFontType
	ErrUnsupportedFunction
	ErrUnsupportedJPEGFormat
	ErrUnsupportedType1Font
	ErrXRefCount
	ErrZLIB
	ErrInvalidPageIndex
	ErrInvalidURI
	ErrPageLayoutOutOfRange
	ErrPageModeOutOfRange
	ErrPageNumStyleOutOfRange
	ErrAnnotationInvalidIcon
	ErrAnnotationInvalidBorderStyle
	ErrInvalidPageDirection
	ErrInvalidFont

	numErrorKinds
)

type kindInfo struct {
	code  uint32
	name  string
	msg   string
	class Class
}

const (
	msgInternal = "Internal error. Data consistency was lost."
	msgRange    = "The specified value is out of range."
)

var kindTable = [numErrorKinds]kindInfo{
	ErrInvalid:   {0, "Invalid", "Error code is not valid.", ClassUnknown},
	ErrUndefined: {0, "Undefined", "Error code is not defined.", ClassUnknown},

	ErrArrayCount:                   {0x1001, "ArrayCount", msgInternal, ClassInternal},
	ErrArrayItemNotFound:            {0x1002, "ArrayItemNotFound", msgInternal, ClassInternal},
	ErrArrayItemUnexpectedType:      {0x1003, "ArrayItemUnexpectedType", msgInternal, ClassInternal},
	ErrBinaryLength:                 {0x1004, "BinaryLength", "Data length exceeded (> MAX_STRING_LEN).", ClassInput},
	ErrCannotGetPNGImagePallet:      {0x1005, "CannotGetPNGImagePallet", "Cannot get pallet data from PNG image.", ClassFormat},
	ErrDictCount:                    {0x1007, "DictCount", "Dictionary elements > MAX_DICT_ELEMENT", ClassInput},
	ErrDictItemNotFound:             {0x1008, "DictItemNotFound", msgInternal, ClassInternal},
	ErrDictItemUnexpectedType:       {0x1009, "DictItemUnexpectedType", msgInternal, ClassInternal},
	ErrDictStreamLengthNotFound:     {0x100A, "DictStreamLengthNotFound", msgInternal, ClassInternal},
	ErrEncryptionNotSet:             {0x100B, "EncryptionNotSet", "setR2EncryptMode, setR3EncryptMode or setPermission called before calling setPassword.", ClassInput},
	ErrDocInvalidObject:             {0x100C, "DocInvalidObject", msgInternal, ClassInternal},
	ErrFontDuplicateRegistration:    {0x100E, "FontDuplicateRegistration", "Tried to re-register a registered font.", ClassInput},
	ErrExceededJWWCodeNumLimit:      {0x100F, "ExceededJWWCodeNumLimit", "Cannot register a character to the Japanese word wrap characters list.", ClassInput},
	ErrInvalidPassword:              {0x1011, "InvalidPassword", "Tried to set the owner password to NULL, or owner and user password are the same.", ClassInput},
	ErrUnknownClass:                 {0x1013, "UnknownClass", msgInternal, ClassInternal},
	ErrGStateLimitExceeded:          {0x1014, "GStateLimitExceeded", "Stack depth > MAX_GSTATE.", ClassInput},
	ErrMemoryAllocationFailed:       {0x1015, "MemoryAllocationFailed", "Memory allocation failed.", ClassResource},
	ErrFileIO:                       {0x1016, "FileIO", "File processing failed. (Detailed code is set.)", ClassResource},
	ErrFileOpen:                     {0x1017, "FileOpen", "Cannot open a file. (Detailed code is set.)", ClassResource},
	ErrFontExists:                   {0x1019, "FontExists", "Tried to load a font that has been registered.", ClassInput},
	ErrFontInvalidWidthTable:        {0x101A, "FontInvalidWidthTable", "Font-file format is invalid or Internal error. Data consistency was lost.", ClassFormat},
	ErrInvalidAFMHeader:             {0x101B, "InvalidAFMHeader", "Cannot recognize header of afm file.", ClassFormat},
	ErrInvalidAnnotation:            {0x101C, "InvalidAnnotation", "Specified annotation handle is invalid.", ClassInput},
	ErrInvalidBitPerComponent:       {0x101E, "InvalidBitPerComponent", "Bit-per-component of a image which was set as mask-image is invalid.", ClassInput},
	ErrInvalidCharMatricsData:       {0x101F, "InvalidCharMatricsData", "Cannot recognize char-matrics-data of afm file.", ClassFormat},
	ErrInvalidColorSpace:            {0x1020, "InvalidColorSpace", "Invalid colorSpace parameter of loadRawImage, or color-space of a image which was set as mask-image is invalid or invoked function invalid in present color-space.", ClassInput},
	ErrInvalidCompressionMode:       {0x1021, "InvalidCompressionMode", "Invalid value set when invoking setCommpressionMode.", ClassInput},
	ErrInvalidDateTime:              {0x1022, "InvalidDateTime", "An invalid date-time value was set.", ClassInput},
	ErrInvalidDestination:           {0x1023, "InvalidDestination", "An invalid destination handle was set.", ClassInput},
	ErrInvalidDocument:              {0x1025, "InvalidDocument", "An invalid document handle was set.", ClassInput},
	ErrInvalidDocumentState:         {0x1026, "InvalidDocumentState", "Function invalid in the present state was invoked.", ClassInput},
	ErrInvalidEncoder:               {0x1027, "InvalidEncoder", "An invalid encoder handle was set.", ClassInput},
	ErrInvalidEncoderType:           {0x1028, "InvalidEncoderType", "Combination between font and encoder is wrong.", ClassInput},
	ErrInvalidEncoderName:           {0x102B, "InvalidEncoderName", "An invalid encoding name is specified.", ClassInput},
	ErrInvalidEncryptionKeyLength:   {0x102C, "InvalidEncryptionKeyLength", "Encryption key length is invalid.", ClassInput},
	ErrInvalidFontDefData:           {0x102D, "InvalidFontDefData", "An invalid font handle was set or unsupported font format.", ClassFormat},
	ErrInvalidFontDefType:           {0x102E, "InvalidFontDefType", msgInternal, ClassInternal},
	ErrInvalidFontName:              {0x102F, "InvalidFontName", "Font with the specified name is not found.", ClassInput},
	ErrInvalidImage:                 {0x1030, "InvalidImage", "Unsupported image format.", ClassFormat},
	ErrInvalidJPEGData:              {0x1031, "InvalidJPEGData", "Unsupported image format.", ClassFormat},
	ErrInvalidNData:                 {0x1032, "InvalidNData", "Cannot read a postscript-name from an afm file.", ClassFormat},
	ErrInvalidObject:                {0x1033, "InvalidObject", "An invalid object is set or internal error. Data consistency was lost.", ClassInput},
	ErrInvalidObjectID:              {0x1034, "InvalidObjectID", msgInternal, ClassInternal},
	ErrInvalidImageOperation:        {0x1035, "InvalidImageOperation", "Invoked setColorMask() against the image-object which was set a mask-image.", ClassInput},
	ErrInvalidOutline:               {0x1036, "InvalidOutline", "An invalid outline-handle was specified.", ClassInput},
	ErrInvalidPage:                  {0x1037, "InvalidPage", "An invalid page-handle was specified.", ClassInput},
	ErrInvalidInternalPages:         {0x1038, "InvalidInternalPages", "An invalid pages-handle was specified. (internal error)", ClassInternal},
	ErrInvalidParameter:             {0x1039, "InvalidParameter", "An invalid value is set.", ClassInput},
	ErrInvalidPNGImage:              {0x103B, "InvalidPNGImage", "Invalid PNG image format.", ClassFormat},
	ErrInvalidStream:                {0x103C, "InvalidStream", msgInternal, ClassInternal},
	ErrMissingFileNameEntry:         {0x103D, "MissingFileNameEntry", "Internal error. '_FILE_NAME' entry for delayed loading is missing.", ClassInternal},
	ErrInvalidTTCFile:               {0x103F, "InvalidTTCFile", "Invalid .TTC file format.", ClassFormat},
	ErrInvalidTTCIndex:              {0x1040, "InvalidTTCIndex", "Index parameter > number of included fonts.", ClassInput},
	ErrInvalidWXData:                {0x1041, "InvalidWXData", "Cannot read a width-data from an afm file.", ClassFormat},
	ErrItemNotFound:                 {0x1042, "ItemNotFound", msgInternal, ClassInternal},
	ErrLibPNG:                       {0x1043, "LibPNG", "Error returned from PNGLIB while loading image.", ClassFormat},
	ErrNameInvalidValue:             {0x1044, "NameInvalidValue", msgInternal, ClassInternal},
	ErrNameOutOfRange:               {0x1045, "NameOutOfRange", msgInternal, ClassInternal},
	ErrPagesMissingKidsEntry:        {0x1049, "PagesMissingKidsEntry", msgInternal, ClassInternal},
	ErrPageCannotFindObject:         {0x104A, "PageCannotFindObject", msgInternal, ClassInternal},
	ErrPageCannotGetRootPages:       {0x104B, "PageCannotGetRootPages", msgInternal, ClassInternal},
	ErrPageCannotRestoreGState:      {0x104C, "PageCannotRestoreGState", "There are no graphics-states to be restored.", ClassInput},
	ErrPageCannotSetParent:          {0x104D, "PageCannotSetParent", msgInternal, ClassInternal},
	ErrPageFontNotFound:             {0x104E, "PageFontNotFound", "The current font is not set.", ClassInput},
	ErrPageInvalidFont:              {0x104F, "PageInvalidFont", "An invalid font-handle was specified.", ClassInput},
	ErrPageInvalidFontSize:          {0x1050, "PageInvalidFontSize", "An invalid font-size was set.", ClassInput},
	ErrPageInvalidGMode:             {0x1051, "PageInvalidGMode", "See Graphics mode.", ClassInput},
	ErrPageInvalidIndex:             {0x1052, "PageInvalidIndex", msgInternal, ClassInternal},
	ErrPageInvalidRotateValue:       {0x1053, "PageInvalidRotateValue", "Specified value is not multiple of 90.", ClassInput},
	ErrPageInvalidSize:              {0x1054, "PageInvalidSize", "An invalid page-size was set.", ClassInput},
	ErrPageInvalidXObject:           {0x1055, "PageInvalidXObject", "An invalid image-handle was set.", ClassInput},
	ErrPageOutOfRange:               {0x1056, "PageOutOfRange", msgRange, ClassInput},
	ErrFloatOutOfRange:              {0x1057, "FloatOutOfRange", msgRange, ClassInput},
	ErrStreamEOF:                    {0x1058, "StreamEOF", "Unexpected EOF marker was detected.", ClassResource},
	ErrStreamReadLnContinue:         {0x1059, "StreamReadLnContinue", msgInternal, ClassInternal},
	ErrStringOutOfRange:             {0x105B, "StringOutOfRange", "The length of the text is too long.", ClassInput},
	ErrFunctionSkipped:              {0x105C, "FunctionSkipped", "Function not executed because of other errors.", ClassInput},
	ErrTTFCannotEmbedFont:           {0x105D, "TTFCannotEmbedFont", "Font cannot be embedded. (license restriction)", ClassFormat},
	ErrTTFInvalidCMAP:               {0x105E, "TTFInvalidCMAP", "Unsupported ttf format. (cannot find unicode cmap)", ClassFormat},
	ErrTTFInvalidFormat:             {0x105F, "TTFInvalidFormat", "Unsupported ttf format.", ClassFormat},
	ErrTTFMissingTable:              {0x1060, "TTFMissingTable", "Unsupported ttf format. (cannot find a necessary table)", ClassFormat},
	ErrUnsupportedFontType:          {0x1061, "UnsupportedFontType", msgInternal, ClassInternal},
	ErrUnsupportedFunction:          {0x1062, "UnsupportedFunction", "Library not configured to use PNGLIB or Internal error. Data consistency was lost.", ClassFormat},
	ErrUnsupportedJPEGFormat:        {0x1063, "UnsupportedJPEGFormat", "Unsupported JPEG format.", ClassFormat},
	ErrUnsupportedType1Font:         {0x1064, "UnsupportedType1Font", "Failed to parse .PFB file.", ClassFormat},
	ErrXRefCount:                    {0x1065, "XRefCount", msgInternal, ClassInternal},
	ErrZLIB:                         {0x1066, "ZLIB", "Error while executing ZLIB function.", ClassResource},
	ErrInvalidPageIndex:             {0x1067, "InvalidPageIndex", "An invalid page index was passed.", ClassInput},
	ErrInvalidURI:                   {0x1068, "InvalidURI", "An invalid URI was set.", ClassInput},
	ErrPageLayoutOutOfRange:         {0x1069, "PageLayoutOutOfRange", "An invalid page-layout was set.", ClassInput},
	ErrPageModeOutOfRange:           {0x1070, "PageModeOutOfRange", "An invalid page-mode was set.", ClassInput},
	ErrPageNumStyleOutOfRange:       {0x1071, "PageNumStyleOutOfRange", "An invalid page-num-style was set.", ClassInput},
	ErrAnnotationInvalidIcon:        {0x1072, "AnnotationInvalidIcon", "An invalid icon was set.", ClassInput},
	ErrAnnotationInvalidBorderStyle: {0x1073, "AnnotationInvalidBorderStyle", "An invalid border-style was set.", ClassInput},
	ErrInvalidPageDirection:         {0x1074, "InvalidPageDirection", "An invalid page-direction was set.", ClassInput},
	ErrInvalidFont:                  {0x1075, "InvalidFont", "An invalid font-handle was specified.", ClassInput},
}

// reservedCodes lists codes which the engine defines but never emits.
var reservedCodes = []uint32{
	0x1006, 0x100D, 0x1010, 0x1012,
	0x1018, 0x101D, 0x1024, 0x1029,
	0x102A, 0x103A, 0x103E, 0x1046,
	0x1047, 0x1048, 0x105A, 0x106A,
	0x106B, 0x106C, 0x106D, 0x106E,
	0x106F,
}

var codeKinds = func() map[uint32]ErrorKind {
	m := make(map[uint32]ErrorKind, len(kindTable)+len(reservedCodes))
	for k, info := range kindTable {
		if info.code != 0 {
			m[info.code] = ErrorKind(k)
		}
	}
	for _, code := range reservedCodes {
		m[code] = ErrUndefined
	}
	return m
}()
