// Package extract pulls plain text out of uploaded resume binaries.
// Supported formats: PDF and DOCX.
package extract

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"resumepulse/internal/domain"
	"resumepulse/internal/domain/ports/adapter"
)

var _ adapter.Extractor = (*Extractor)(nil)

type Extractor struct{}

func New() *Extractor { return &Extractor{} }

func (e *Extractor) Extract(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractPDF(data)
	case ".docx":
		return extractDocx(data)
	default:
		return "", domain.ErrUnsupportedFile
	}
}

func extractPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	total := r.NumPage()
	for i := 1; i <= total; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			continue
		}
		for _, row := range rows {
			for _, word := range row.Content {
				buf.WriteString(word.S)
				buf.WriteByte(' ')
			}
			buf.WriteByte('\n')
		}
	}
	if buf.Len() == 0 {
		// Fall back to the plain-text stream for PDFs without row layout.
		rs, err := r.GetPlainText()
		if err != nil {
			return "", err
		}
		if _, err := io.Copy(&buf, rs); err != nil {
			return "", err
		}
	}
	return collapseWhitespace(buf.String()), nil
}

func extractDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", err
			}
			docXML, err = io.ReadAll(rc)
			rc.Close()
			if err != nil {
				return "", err
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// Paragraph boundaries become newlines before tags are stripped.
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := tagPattern.ReplaceAllString(xml, " ")
	return collapseWhitespace(txt), nil
}

var (
	tagPattern     = regexp.MustCompile(`<[^>]+>`)
	blankRun       = regexp.MustCompile(`[ \t\r\f\v]+`)
	newlineRun     = regexp.MustCompile(`[ \t]*\n[ \t\n]*`)
	nonBreakingSpc = " "
)

func collapseWhitespace(s string) string {
	s = strings.ReplaceAll(s, nonBreakingSpc, " ")
	s = blankRun.ReplaceAllString(s, " ")
	s = newlineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
