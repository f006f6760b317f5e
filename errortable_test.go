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

import "testing"

// documentedErrors lists every error code of the engine together with
// the expected kind name and message.
var documentedErrors = []struct {
	code uint32
	name string
	msg  string
}{
	{0x1001, "ArrayCount", "Internal error. Data consistency was lost."},
	{0x1002, "ArrayItemNotFound", "Internal error. Data consistency was lost."},
	{0x1003, "ArrayItemUnexpectedType", "Internal error. Data consistency was lost."},
	{0x1004, "BinaryLength", "Data length exceeded (> MAX_STRING_LEN)."},
	{0x1005, "CannotGetPNGImagePallet", "Cannot get pallet data from PNG image."},
	{0x1007, "DictCount", "Dictionary elements > MAX_DICT_ELEMENT"},
	{0x1008, "DictItemNotFound", "Internal error. Data consistency was lost."},
	{0x1009, "DictItemUnexpectedType", "Internal error. Data consistency was lost."},
	{0x100A, "DictStreamLengthNotFound", "Internal error. Data consistency was lost."},
	{0x100B, "EncryptionNotSet", "setR2EncryptMode, setR3EncryptMode or setPermission called before calling setPassword."},
	{0x100C, "DocInvalidObject", "Internal error. Data consistency was lost."},
	{0x100E, "FontDuplicateRegistration", "Tried to re-register a registered font."},
	{0x100F, "ExceededJWWCodeNumLimit", "Cannot register a character to the Japanese word wrap characters list."},
	{0x1011, "InvalidPassword", "Tried to set the owner password to NULL, or owner and user password are the same."},
	{0x1013, "UnknownClass", "Internal error. Data consistency was lost."},
	{0x1014, "GStateLimitExceeded", "Stack depth > MAX_GSTATE."},
	{0x1015, "MemoryAllocationFailed", "Memory allocation failed."},
	{0x1016, "FileIO", "File processing failed. (Detailed code is set.)"},
	{0x1017, "FileOpen", "Cannot open a file. (Detailed code is set.)"},
	{0x1019, "FontExists", "Tried to load a font that has been registered."},
	{0x101A, "FontInvalidWidthTable", "Font-file format is invalid or Internal error. Data consistency was lost."},
	{0x101B, "InvalidAFMHeader", "Cannot recognize header of afm file."},
	{0x101C, "InvalidAnnotation", "Specified annotation handle is invalid."},
	{0x101E, "InvalidBitPerComponent", "Bit-per-component of a image which was set as mask-image is invalid."},
	{0x101F, "InvalidCharMatricsData", "Cannot recognize char-matrics-data of afm file."},
	{0x1020, "InvalidColorSpace", "Invalid colorSpace parameter of loadRawImage, or color-space of a image which was set as mask-image is invalid or invoked function invalid in present color-space."},
	{0x1021, "InvalidCompressionMode", "Invalid value set when invoking setCommpressionMode."},
	{0x1022, "InvalidDateTime", "An invalid date-time value was set."},
	{0x1023, "InvalidDestination", "An invalid destination handle was set."},
	{0x1025, "InvalidDocument", "An invalid document handle was set."},
	{0x1026, "InvalidDocumentState", "Function invalid in the present state was invoked."},
	{0x1027, "InvalidEncoder", "An invalid encoder handle was set."},
	{0x1028, "InvalidEncoderType", "Combination between font and encoder is wrong."},
	{0x102B, "InvalidEncoderName", "An invalid encoding name is specified."},
	{0x102C, "InvalidEncryptionKeyLength", "Encryption key length is invalid."},
	{0x102D, "InvalidFontDefData", "An invalid font handle was set or unsupported font format."},
	{0x102E, "InvalidFontDefType", "Internal error. Data consistency was lost."},
	{0x102F, "InvalidFontName", "Font with the specified name is not found."},
	{0x1030, "InvalidImage", "Unsupported image format."},
	{0x1031, "InvalidJPEGData", "Unsupported image format."},
	{0x1032, "InvalidNData", "Cannot read a postscript-name from an afm file."},
	{0x1033, "InvalidObject", "An invalid object is set or internal error. Data consistency was lost."},
	{0x1034, "InvalidObjectID", "Internal error. Data consistency was lost."},
	{0x1035, "InvalidImageOperation", "Invoked setColorMask() against the image-object which was set a mask-image."},
	{0x1036, "InvalidOutline", "An invalid outline-handle was specified."},
	{0x1037, "InvalidPage", "An invalid page-handle was specified."},
	{0x1038, "InvalidInternalPages", "An invalid pages-handle was specified. (internal error)"},
	{0x1039, "InvalidParameter", "An invalid value is set."},
	{0x103B, "InvalidPNGImage", "Invalid PNG image format."},
	{0x103C, "InvalidStream", "Internal error. Data consistency was lost."},
	{0x103D, "MissingFileNameEntry", "Internal error. '_FILE_NAME' entry for delayed loading is missing."},
	{0x103F, "InvalidTTCFile", "Invalid .TTC file format."},
	{0x1040, "InvalidTTCIndex", "Index parameter > number of included fonts."},
	{0x1041, "InvalidWXData", "Cannot read a width-data from an afm file."},
	{0x1042, "ItemNotFound", "Internal error. Data consistency was lost."},
	{0x1043, "LibPNG", "Error returned from PNGLIB while loading image."},
	{0x1044, "NameInvalidValue", "Internal error. Data consistency was lost."},
	{0x1045, "NameOutOfRange", "Internal error. Data consistency was lost."},
	{0x1049, "PagesMissingKidsEntry", "Internal error. Data consistency was lost."},
	{0x104A, "PageCannotFindObject", "Internal error. Data consistency was lost."},
	{0x104B, "PageCannotGetRootPages", "Internal error. Data consistency was lost."},
	{0x104C, "PageCannotRestoreGState", "There are no graphics-states to be restored."},
	{0x104D, "PageCannotSetParent", "Internal error. Data consistency was lost."},
	{0x104E, "PageFontNotFound", "The current font is not set."},
	{0x104F, "PageInvalidFont", "An invalid font-handle was specified."},
	{0x1050, "PageInvalidFontSize", "An invalid font-size was set."},
	{0x1051, "PageInvalidGMode", "See Graphics mode."},
	{0x1052, "PageInvalidIndex", "Internal error. Data consistency was lost."},
	{0x1053, "PageInvalidRotateValue", "Specified value is not multiple of 90."},
	{0x1054, "PageInvalidSize", "An invalid page-size was set."},
	{0x1055, "PageInvalidXObject", "An invalid image-handle was set."},
	{0x1056, "PageOutOfRange", "The specified value is out of range."},
	{0x1057, "FloatOutOfRange", "The specified value is out of range."},
	{0x1058, "StreamEOF", "Unexpected EOF marker was detected."},
	{0x1059, "StreamReadLnContinue", "Internal error. Data consistency was lost."},
	{0x105B, "StringOutOfRange", "The length of the text is too long."},
	{0x105C, "FunctionSkipped", "Function not executed because of other errors."},
	{0x105D, "TTFCannotEmbedFont", "Font cannot be embedded. (license restriction)"},
	{0x105E, "TTFInvalidCMAP", "Unsupported ttf format. (cannot find unicode cmap)"},
	{0x105F, "TTFInvalidFormat", "Unsupported ttf format."},
	{0x1060, "TTFMissingTable", "Unsupported ttf format. (cannot find a necessary table)"},
	{0x1061, "UnsupportedFontType", "Internal error. Data consistency was lost."},
	{0x1062, "UnsupportedFunction", "Library not configured to use PNGLIB or Internal error. Data consistency was lost."},
	{0x1063, "UnsupportedJPEGFormat", "Unsupported JPEG format."},
	{0x1064, "UnsupportedType1Font", "Failed to parse .PFB file."},
	{0x1065, "XRefCount", "Internal error. Data consistency was lost."},
	{0x1066, "ZLIB", "Error while executing ZLIB function."},
	{0x1067, "InvalidPageIndex", "An invalid page index was passed."},
	{0x1068, "InvalidURI", "An invalid URI was set."},
	{0x1069, "PageLayoutOutOfRange", "An invalid page-layout was set."},
	{0x1070, "PageModeOutOfRange", "An invalid page-mode was set."},
	{0x1071, "PageNumStyleOutOfRange", "An invalid page-num-style was set."},
	{0x1072, "AnnotationInvalidIcon", "An invalid icon was set."},
	{0x1073, "AnnotationInvalidBorderStyle", "An invalid border-style was set."},
	{0x1074, "InvalidPageDirection", "An invalid page-direction was set."},
	{0x1075, "InvalidFont", "An invalid font-handle was specified."},
}

func TestClassifyDocumentedCodes(t *testing.T) {
	if len(documentedErrors) != 96 {
		t.Fatalf("table has %d entries", len(documentedErrors))
	}
	for _, detail := range []uint32{0, 1, 0xFFFFFFFF} {
		for _, want := range documentedErrors {
			err := Classify(want.code, detail)
			if err.Kind.String() != want.name {
				t.Errorf("Classify(0x%04X, %d).Kind = %s, want %s",
					want.code, detail, err.Kind.String(), want.name)
			}
			if err.Kind.Error() != want.msg {
				t.Errorf("0x%04X: message %q, want %q", want.code, err.Kind.Error(), want.msg)
			}
			if err.Kind.Code() != want.code {
				t.Errorf("%s.Code() = 0x%04X, want 0x%04X", want.name, err.Kind.Code(), want.code)
			}
			if err.Code != want.code || err.Detail != detail {
				t.Errorf("0x%04X: got code 0x%04X, detail %d", want.code, err.Code, err.Detail)
			}
		}
	}
}

func TestClassifyReservedCodes(t *testing.T) {
	reserved := []uint32{
		0x1006, 0x100D, 0x1010, 0x1012,
		0x1018, 0x101D, 0x1024, 0x1029,
		0x102A, 0x103A, 0x103E,
		0x1046, 0x1047, 0x1048,
		0x105A,
		0x106A, 0x106B, 0x106C, 0x106D, 0x106E, 0x106F,
	}
	for _, detail := range []uint32{0, 1, 0xFFFFFFFF} {
		for _, code := range reserved {
			err := Classify(code, detail)
			if err.Kind != ErrUndefined {
				t.Errorf("Classify(0x%04X, %d).Kind = %s", code, detail, err.Kind.String())
			}
			if err.Kind.Error() != "Error code is not defined." {
				t.Errorf("0x%04X: message %q", code, err.Kind.Error())
			}
		}
	}

	for _, code := range []uint32{0, 0x1000, 0x1076, 0x2000, 0xFFFFFFFF} {
		err := Classify(code, 1)
		if err.Kind != ErrInvalid || err.Kind.Error() != "Error code is not valid." {
			t.Errorf("Classify(0x%04X) = %s, %q", code, err.Kind.String(), err.Kind.Error())
		}
	}
}
