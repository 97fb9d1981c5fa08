// Package similarity defines the fuzzy string similarity capability the
// skill extractor falls back to when a skill does not appear verbatim.
package similarity

// Scorer rates how well needle aligns with some part of haystack.
// Implementations must be symmetric in the sense that the shorter of the two
// strings is aligned against the longer one, and must return a value in
// [0, 100] where 100 means a perfect alignment.
//
//go:generate mockgen -package mocksimilarity -source=interface.go -destination=mock/mocksimilarity.go *
type Scorer interface {
	Similarity(needle, haystack string) int
}
