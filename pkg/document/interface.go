// Package document turns uploaded résumé files into plain text.
package document

import "context"

// Extractor returns the plain text of a document. It never fails: an
// unreadable or unsupported document yields "".
//
//go:generate mockgen -package mockdocument -source=interface.go -destination=mock/mockdocument.go *
type Extractor interface {
	Text(ctx context.Context, name string, data []byte) string
}
