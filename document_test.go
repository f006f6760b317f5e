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
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/haru/internal/fakeengine"
)

func openTest(t *testing.T, opt *Options) (*Document, *fakeengine.Engine) {
	t.Helper()
	eng := fakeengine.New()
	doc, err := Open(eng, opt)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { doc.Close() })
	return doc, eng
}

func TestOpenFailure(t *testing.T) {
	eng := fakeengine.New()
	eng.FailNew = true

	doc, err := Open(eng, nil)
	if doc != nil {
		t.Error("document returned on failure")
	}
	if !errors.Is(err, ErrMemoryAllocationFailed) {
		t.Fatalf("got %v", err)
	}
	var e *Error
	if !errors.As(err, &e) || e.Code != 0x1015 {
		t.Errorf("wrong error code: %v", err)
	}
}

func TestOpenOptions(t *testing.T) {
	doc, eng := openTest(t, &Options{
		Compression: CompressAll,
		Info:        &Info{Title: "Test", Author: "Someone"},
		SetViewer:   true,
		Layout:      LayoutTwoColumnLeft,
		Mode:        ModeUseOutlines,
	})

	if n := eng.Count("SetCompressionMode"); n != 1 {
		t.Errorf("SetCompressionMode called %d times", n)
	}
	if title, _, err := doc.InfoAttr(InfoTitle); err != nil || title != "Test" {
		t.Errorf("title = %q", title)
	}
	if got := doc.PageLayout(); got != LayoutTwoColumnLeft {
		t.Errorf("layout = %v", got)
	}
	if got := doc.PageMode(); got != ModeUseOutlines {
		t.Errorf("mode = %v", got)
	}
}

func TestOpenOptionsFailure(t *testing.T) {
	eng := fakeengine.New()
	eng.Fail("SetCompressionMode", ErrInvalidCompressionMode.Code(), 0)

	_, err := Open(eng, &Options{Compression: CompressText})
	if !errors.Is(err, ErrInvalidCompressionMode) {
		t.Errorf("got %v", err)
	}
	if n := eng.Count("Free"); n != 1 {
		t.Errorf("Free called %d times", n)
	}
}

func TestCloseTwice(t *testing.T) {
	eng := fakeengine.New()
	doc, err := Open(eng, nil)
	if err != nil {
		t.Fatal(err)
	}
	h := doc.h

	for range 2 {
		if err := doc.Close(); err != nil {
			t.Fatal(err)
		}
	}
	if n := eng.Count("Free"); n != 1 {
		t.Errorf("Free called %d times", n)
	}
	if !eng.Freed(h) {
		t.Error("document not freed")
	}
	if doc.IsOpen() {
		t.Error("document still open")
	}
}

func TestUseAfterClose(t *testing.T) {
	eng := fakeengine.New()
	doc, err := Open(eng, nil)
	if err != nil {
		t.Fatal(err)
	}
	doc.Close()
	eng.Reset()

	_, err = doc.AddPage()
	if !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("AddPage: got %v", err)
	}
	if err := doc.SaveToStream(); !errors.Is(err, ErrInvalidDocument) {
		t.Errorf("SaveToStream: got %v", err)
	}
	data, err := doc.ContentN(10)
	if err != nil || len(data) != 0 {
		t.Errorf("ContentN: %q, %v", data, err)
	}
	if len(eng.Calls) != 0 {
		t.Errorf("unexpected engine calls: %v", eng.Calls)
	}
}

func TestEngineErrorIsReset(t *testing.T) {
	doc, eng := openTest(t, nil)

	eng.Fail("AddPage", 0x1015, 0)
	_, err := doc.AddPage()
	var e *Error
	if !errors.As(err, &e) {
		t.Fatalf("got %v", err)
	}
	if e.Kind != ErrMemoryAllocationFailed || e.Op != "AddPage" {
		t.Errorf("wrong error: %#v", e)
	}
	if eng.Count("ResetError") == 0 {
		t.Error("engine error not reset")
	}

	eng.Clear("AddPage")
	if _, err := doc.AddPage(); err != nil {
		t.Errorf("stale error: %v", err)
	}
}

func TestPageIdentity(t *testing.T) {
	doc, _ := openTest(t, nil)

	p1, err := doc.AddPage()
	if err != nil {
		t.Fatal(err)
	}
	p2, err := doc.Page(0)
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 {
		t.Error("different wrappers for the same page")
	}
	cur, err := doc.CurrentPage()
	if err != nil || cur != p1 {
		t.Errorf("CurrentPage: %v, %v", cur, err)
	}

	_, err = doc.Page(1)
	if !errors.Is(err, ErrInvalidPageIndex) {
		t.Errorf("Page(1): got %v", err)
	}
}

func TestIndependentDocuments(t *testing.T) {
	eng := fakeengine.New()
	doc1, err := Open(eng, nil)
	if err != nil {
		t.Fatal(err)
	}
	doc2, err := Open(eng, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer doc2.Close()

	if _, err := doc1.AddPage(); err != nil {
		t.Fatal(err)
	}
	if _, err := doc2.Page(0); !errors.Is(err, ErrInvalidPageIndex) {
		t.Errorf("doc2.Page(0): got %v", err)
	}
	if _, err := doc1.Page(0); err != nil {
		t.Errorf("doc1.Page(0): %v", err)
	}

	doc1.Close()
	if !doc2.IsOpen() {
		t.Error("closing doc1 closed doc2")
	}
	if _, err := doc2.AddPage(); err != nil {
		t.Error(err)
	}
}

func TestAutoImport(t *testing.T) {
	doc, eng := openTest(t, &Options{AutoImportEncodings: true})

	for _, enc := range []MultiByteEncoding{NINETYms_RKSJ_H, EUC_H, NINETYms_RKSJ_V} {
		if _, err := doc.GetEncoder(enc); err != nil {
			t.Fatal(err)
		}
	}
	if n := eng.Count("UseJPEncodings"); n != 1 {
		t.Errorf("UseJPEncodings called %d times", n)
	}
	if !doc.FamilyLoaded(FamilyJP) {
		t.Error("JP family not marked as loaded")
	}

	if _, err := doc.GetEncoder(UTF8); err != nil {
		t.Fatal(err)
	}
	if n := eng.Count("UseUTFEncodings"); n != 0 {
		t.Errorf("UTF encodings imported automatically")
	}
}

func TestNoAutoImport(t *testing.T) {
	doc, eng := openTest(t, nil)

	if doc.AutoEncodingImports() {
		t.Error("auto-import enabled by default")
	}
	if _, err := doc.GetEncoder(KSC_EUC_H); err != nil {
		t.Fatal(err)
	}
	if n := eng.Count("UseKREncodings"); n != 0 {
		t.Errorf("UseKREncodings called %d times", n)
	}

	doc.SetAutoEncodingImports(true)
	if _, err := doc.GetFont("Helvetica", KSC_EUC_H); err != nil {
		t.Fatal(err)
	}
	if n := eng.Count("UseKREncodings"); n != 1 {
		t.Errorf("UseKREncodings called %d times", n)
	}
}

func TestInvalidEncoding(t *testing.T) {
	doc, eng := openTest(t, &Options{AutoImportEncodings: true})
	eng.Reset()

	_, err := doc.GetEncoder(SingleByteEncodingEOF)
	if !errors.Is(err, ErrInvalidEncoderName) {
		t.Errorf("GetEncoder: got %v", err)
	}
	_, err = doc.GetFont("Helvetica", MultiByteEncodingEOF)
	if !errors.Is(err, ErrInvalidEncoderName) {
		t.Errorf("GetFont: got %v", err)
	}
	if err := doc.SetCurrentEncoder(nil); !errors.Is(err, ErrInvalidEncoderName) {
		t.Errorf("SetCurrentEncoder: got %v", err)
	}
	if len(eng.Calls) != 0 {
		t.Errorf("unexpected engine calls: %v", eng.Calls)
	}
}

func TestFreeAllResources(t *testing.T) {
	doc, _ := openTest(t, nil)

	for _, use := range []func() error{
		doc.UseCNSEncodings, doc.UseCNTEncodings, doc.UseJPEncodings,
		doc.UseKREncodings, doc.UseUTFEncodings,
	} {
		if err := use(); err != nil {
			t.Fatal(err)
		}
	}
	if err := doc.FreeAllResources(); err != nil {
		t.Fatal(err)
	}

	want := map[EncodingFamily]bool{
		FamilyCNS: false,
		FamilyCNT: false,
		FamilyJP:  false,
		FamilyKR:  false,
		FamilyUTF: true,
	}
	got := make(map[EncodingFamily]bool)
	for f := range want {
		got[f] = doc.FamilyLoaded(f)
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("loaded families (-want +got):\n%s", d)
	}
}

func TestFreeResourcesKeepsFamilies(t *testing.T) {
	doc, _ := openTest(t, nil)

	if err := doc.UseJPEncodings(); err != nil {
		t.Fatal(err)
	}
	if err := doc.FreeResources(); err != nil {
		t.Fatal(err)
	}
	if !doc.FamilyLoaded(FamilyJP) {
		t.Error("FreeResources cleared the JP family")
	}
	if doc.HasDocument() {
		t.Error("document contents still present")
	}
	if err := doc.NewDocument(); err != nil {
		t.Fatal(err)
	}
	if !doc.HasDocument() {
		t.Error("NewDocument did not create contents")
	}
}

func testOutput(n int) []byte {
	out := make([]byte, n)
	for i := range out {
		out[i] = byte(i * 7)
	}
	return out
}

func TestReadFromStream(t *testing.T) {
	doc, eng := openTest(t, nil)

	data, err := doc.ReadFromStream(100)
	if err != nil || len(data) != 0 {
		t.Errorf("empty stream: %q, %v", data, err)
	}
	if n := eng.Count("ReadFromStream"); n != 0 {
		t.Errorf("ReadFromStream called %d times on an empty stream", n)
	}

	eng.Output = testOutput(1000)
	if err := doc.SaveToStream(); err != nil {
		t.Fatal(err)
	}
	if size := doc.StreamSize(); size != 1000 {
		t.Errorf("StreamSize() = %d", size)
	}

	var got []byte
	for _, want := range []int{400, 400, 200, 0} {
		data, err := doc.ReadFromStream(400)
		if err != nil {
			t.Fatal(err)
		}
		if len(data) != want {
			t.Errorf("read %d bytes, want %d", len(data), want)
		}
		got = append(got, data...)
	}
	if !bytes.Equal(got, eng.Output) {
		t.Error("stream contents differ")
	}

	if err := doc.RewindStream(); err != nil {
		t.Fatal(err)
	}
	data, err = doc.ReadFromStream(10)
	if err != nil || !bytes.Equal(data, eng.Output[:10]) {
		t.Errorf("after rewind: %v, %v", data, err)
	}
}

func TestReadBufferZeroCapacity(t *testing.T) {
	doc, eng := openTest(t, nil)
	eng.Output = testOutput(10)

	data, err := doc.ContentN(0)
	if err != nil || len(data) != 0 {
		t.Errorf("ContentN(0) = %q, %v", data, err)
	}
	if n := eng.Count("GetContents"); n != 0 {
		t.Errorf("GetContents called %d times", n)
	}
}

func TestContentClampsSize(t *testing.T) {
	doc, eng := openTest(t, nil)
	eng.Output = testOutput(300)
	eng.ReportSize = 150

	if err := doc.SaveToStream(); err != nil {
		t.Fatal(err)
	}
	data, err := doc.ContentN(100)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, eng.Output[:100]) {
		t.Errorf("got %d bytes", len(data))
	}
}

func TestContent(t *testing.T) {
	doc, eng := openTest(t, nil)
	eng.Output = testOutput(1234)

	data, err := doc.Content()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, eng.Output) {
		t.Errorf("got %d bytes, want %d", len(data), len(eng.Output))
	}
}

func TestWriteTo(t *testing.T) {
	doc, eng := openTest(t, nil)
	eng.Output = testOutput(5000)

	buf := &bytes.Buffer{}
	n, err := doc.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != int64(len(eng.Output)) || !bytes.Equal(buf.Bytes(), eng.Output) {
		t.Errorf("wrote %d bytes, want %d", n, len(eng.Output))
	}
}

func TestWriteToError(t *testing.T) {
	doc, eng := openTest(t, nil)
	eng.Fail("SaveToStream", ErrZLIB.Code(), 0)

	_, err := doc.WriteTo(&bytes.Buffer{})
	if !errors.Is(err, ErrZLIB) {
		t.Errorf("got %v", err)
	}
}
