package document

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// Format is a document format the extractor knows how to read.
type Format string

const (
	FormatUnknown Format = ""
	FormatPDF     Format = "pdf"
	FormatDOCX    Format = "docx"
	FormatHTML    Format = "html"
	FormatText    Format = "text"
)

const (
	mimePDF  = "application/pdf"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeHTML = "text/html"
	mimeText = "text/plain"
)

// Detect sniffs the format of data. When sniffing only finds a generic type
// (plain text, zip, octet-stream) the extension of name decides.
func Detect(name string, data []byte) Format {
	sniffed := sniff(data)
	if sniffed == FormatPDF || sniffed == FormatDOCX || sniffed == FormatHTML {
		return sniffed
	}

	if byExt := fromExtension(name); byExt != FormatUnknown {
		return byExt
	}

	return sniffed
}

func sniff(data []byte) Format {
	mt := mimetype.Detect(data)
	switch {
	case mt.Is(mimePDF):
		return FormatPDF
	case mt.Is(mimeDOCX):
		return FormatDOCX
	case mt.Is(mimeHTML):
		return FormatHTML
	}

	for m := mt; m != nil; m = m.Parent() {
		if m.Is(mimeText) {
			return FormatText
		}
	}

	return FormatUnknown
}

func fromExtension(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".pdf":
		return FormatPDF
	case ".docx":
		return FormatDOCX
	case ".html", ".htm":
		return FormatHTML
	case ".txt", ".text", ".md":
		return FormatText
	default:
		return FormatUnknown
	}
}
