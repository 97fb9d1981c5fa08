package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html"
	"regexp"
	"skillmatch/pkg/logger"
	"strings"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
)

var (
	errUnsupported = errors.New("unsupported document format")

	docxParagraphEnd = regexp.MustCompile(`</w:p>|<w:br/>|<w:tab/>`)
	xmlTag           = regexp.MustCompile(`<[^>]+>`)
)

// FileExtractor reads PDF, DOCX, HTML and plain-text documents.
type FileExtractor struct{}

var _ Extractor = (*FileExtractor)(nil)

// New returns a FileExtractor.
func New() *FileExtractor {
	return &FileExtractor{}
}

// Text implements Extractor. Failures are logged at warn level and reported
// as "".
func (e *FileExtractor) Text(ctx context.Context, name string, data []byte) string {
	format := Detect(name, data)

	text, err := e.Extract(format, data)
	if err != nil {
		logger.Warn(ctx, "could not extract document text",
			zap.String("name", name),
			zap.String("format", string(format)),
			zap.Int("size", len(data)),
			zap.Error(err),
		)

		return ""
	}

	return text
}

// Extract returns the text of data read as format.
func (e *FileExtractor) Extract(format Format, data []byte) (string, error) {
	switch format {
	case FormatPDF:
		return pdfText(data)
	case FormatDOCX:
		return docxText(data)
	case FormatHTML:
		return HTMLText(bytes.NewReader(data))
	case FormatText:
		return plainText(data)
	default:
		return "", fmt.Errorf("%w: %s", errUnsupported, mimetype.Detect(data).String())
	}
}

// pdfText concatenates the plain text of every page, pages separated by a
// single space. Pages that fail to decode are skipped. The decoder panics on
// some malformed inputs, which is reported as an error.
func pdfText(data []byte) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("pdf decoder panicked: %v", p)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("could not open pdf: %w", err)
	}

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, pageErr := page.GetPlainText(nil)
		if pageErr != nil {
			continue
		}
		pages = append(pages, pageText)
	}

	return strings.Join(pages, " "), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("could not open docx: %w", err)
	}
	defer func() { _ = doc.Close() }()

	content := doc.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = xmlTag.ReplaceAllString(content, "")

	return html.UnescapeString(content), nil
}

var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM) //nolint: gochecknoglobals

func plainText(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}), bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		decoded, err := utf16Decoder.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("could not decode utf-16 text: %w", err)
		}
		data = decoded
	case bytes.HasPrefix(data, []byte{0xEF, 0xBB, 0xBF}):
		data = data[3:]
	}

	if utf8.Valid(data) {
		return string(data), nil
	}

	return strings.ToValidUTF8(string(data), " "), nil
}
