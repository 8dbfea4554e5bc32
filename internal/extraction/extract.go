// Package extraction converts uploaded resume documents into plain text.
// It is the text-extraction collaborator of the analysis core: it either
// returns normalized text or fails with *Error before any analysis runs.
package extraction

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Supported document kinds, expressed as MIME types.
const (
	KindPDF  = "application/pdf"
	KindDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	KindText = "text/plain"
)

// KindForFilename maps a file extension to a document kind. Returns the empty
// string for unsupported extensions.
func KindForFilename(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return KindPDF
	case ".docx":
		return KindDocx
	case ".txt":
		return KindText
	}
	return ""
}

// ExtractText converts raw document bytes of the given kind into plain text
// with normalized line endings. Failures are reported as *Error and are not
// retried.
func ExtractText(kind string, data []byte) (string, error) {
	switch kind {
	case KindText:
		return normalize(string(data)), nil
	case KindPDF:
		return extractPDFText(data)
	case KindDocx:
		return extractDocxText(data)
	default:
		return "", &Error{Message: fmt.Sprintf("unsupported document type: %q", kind)}
	}
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Message: "failed to read pdf", Cause: err}
	}

	var textBuilder strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		textBuilder.WriteString(text)
	}
	return normalize(textBuilder.String()), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", &Error{Message: "failed to parse docx", Cause: err}
	}
	defer doc.Close()

	return normalize(doc.Editable().GetContent()), nil
}

// normalize converts CRLF and bare CR line endings to LF.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}
