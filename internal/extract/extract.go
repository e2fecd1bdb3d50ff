// Package extract pulls plain text out of uploaded resume documents. PDF,
// DOCX, HTML, and plain text are supported; everything else is rejected
// with a typed error the API layer maps to a client failure.
package extract

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// MIME types accepted by Text.
const (
	TypePlain = "text/plain"
	TypePDF   = "application/pdf"
	TypeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	TypeHTML  = "text/html"
)

// UnsupportedTypeError indicates the uploaded document's content type has no
// registered extractor.
type UnsupportedTypeError struct {
	ContentType string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported file type: %s", e.ContentType)
}

// Text extracts plain text from data according to its content type. Any
// charset parameters on the type are ignored.
func Text(contentType string, data []byte) (string, error) {
	mime := contentType
	if idx := strings.Index(mime, ";"); idx >= 0 {
		mime = mime[:idx]
	}
	mime = strings.TrimSpace(strings.ToLower(mime))

	switch mime {
	case TypePlain:
		return string(data), nil
	case TypePDF:
		return pdfText(data)
	case TypeDocx:
		return docxText(data)
	case TypeHTML:
		return htmlText(data)
	default:
		return "", &UnsupportedTypeError{ContentType: contentType}
	}
}

// ByExtension extracts text from a file's contents using its name to pick
// the content type. Unknown extensions are treated as plain text, matching
// how resumes are usually submitted from the CLI.
func ByExtension(name string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return Text(TypePDF, data)
	case ".docx":
		return Text(TypeDocx, data)
	case ".html", ".htm":
		return Text(TypeHTML, data)
	default:
		return Text(TypePlain, data)
	}
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	doc.Find("script, style").Remove()
	return strings.TrimSpace(doc.Text()), nil
}
