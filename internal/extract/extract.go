package extract

import (
	"bytes"
	"errors"
	"io"

	"github.com/ledongthuc/pdf"

	"autoshop-backend/internal/shared/telemetry"
)

// PDFText extracts plain text from a PDF payload using github.com/ledongthuc/pdf.
// It never fails: a malformed document, an unsupported encoding, or a panic
// inside the PDF reader all degrade to an empty string, which downstream field
// extraction treats as "no matches".
func PDFText(data []byte) string {
	text, err := pdfText(data)
	if err != nil {
		telemetry.Error("extract.pdf_failed", map[string]any{
			"size_bytes": len(data),
			"error":      err.Error(),
		})
		return ""
	}
	return text
}

func pdfText(data []byte) (text string, err error) {
	// The PDF reader panics on some malformed cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = errors.New("pdf reader panic")
		}
	}()

	if len(data) == 0 {
		return "", errors.New("empty pdf data")
	}

	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := pdfReader.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
