package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/jung-kurt/gofpdf"
)

func TestTextFromBytes_PlainText(t *testing.T) {
	text, err := TextFromBytes(context.Background(), []byte("Go engineer, 5 years"), "text/plain", "resume.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "Go engineer, 5 years" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromBytes_ExtensionFallback(t *testing.T) {
	// Browsers commonly send octet-stream; the extension decides.
	text, err := TextFromBytes(context.Background(), []byte("hello"), "application/octet-stream", "resume.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestTextFromBytes_PDFRoundTrip(t *testing.T) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()
	doc.SetFont("Helvetica", "", 12)
	doc.Cell(40, 10, "Senior Gopher")
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		t.Fatalf("build pdf: %v", err)
	}

	text, err := TextFromBytes(context.Background(), buf.Bytes(), "application/pdf", "resume.pdf")
	if err != nil {
		t.Fatalf("extract pdf: %v", err)
	}
	if !strings.Contains(text, "Senior Gopher") {
		t.Fatalf("expected pdf text to contain name, got %q", text)
	}
}

func TestTextFromBytes_DOCX(t *testing.T) {
	data := buildDocx(t, "<w:document><w:body><w:p><w:r><w:t>Hello Resume</w:t></w:r></w:p></w:body></w:document>")

	text, err := TextFromBytes(context.Background(), data, "application/vnd.openxmlformats-officedocument.wordprocessingml.document", "resume.docx")
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if !strings.Contains(text, "Hello Resume") {
		t.Fatalf("expected docx text, got %q", text)
	}
}

func TestTextFromBytes_UnsupportedMime(t *testing.T) {
	_, err := TextFromBytes(context.Background(), []byte{0x1}, "image/png", "photo.png")
	if err == nil || !strings.Contains(err.Error(), "unsupported mime type") {
		t.Fatalf("expected unsupported mime error, got %v", err)
	}
}

func TestTextFromBytes_EmptyInputs(t *testing.T) {
	if _, err := TextFromBytes(context.Background(), nil, "text/plain", "resume.txt"); err == nil {
		t.Fatal("expected error for empty document")
	}
	if _, err := TextFromBytes(context.Background(), []byte("   \n "), "text/plain", "resume.txt"); err != ErrNoText {
		t.Fatalf("expected ErrNoText, got %v", err)
	}
}

func TestStripDocxTags(t *testing.T) {
	got := stripDocxTags("<w:p><w:r><w:t>line one</w:t></w:r></w:p><w:p><w:r><w:t>line two</w:t></w:r></w:p>")
	if !strings.Contains(got, "line one\n") || !strings.Contains(got, "line two") {
		t.Fatalf("unexpected strip result: %q", got)
	}
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	files := map[string]string{
		"[Content_Types].xml":          `<?xml version="1.0"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Default Extension="xml" ContentType="application/xml"/></Types>`,
		"_rels/.rels":                  `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/_rels/document.xml.rels": `<?xml version="1.0"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`,
		"word/document.xml":            documentXML,
	}
	for name, content := range files {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create zip entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}
