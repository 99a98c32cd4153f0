package models

import (
	"path/filepath"
	"strings"
)

// MatchRecord describes one candidate accepted as a duplicate of the
// reference image.
type MatchRecord struct {
	Path      string `json:"path"`
	Filename  string `json:"filename"`
	ProductID string `json:"product_id"`
	AssetID   string `json:"asset_id"`
	Distance  int    `json:"distance"`
}

// Failure describes a candidate that could not be scanned. Failures are
// excluded from both match and non-match counts.
type Failure struct {
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Report holds the outcome of one reference-vs-directory run. Matches keep
// the traversal order in which candidates were scanned.
type Report struct {
	ReferencePath string        `json:"reference_path"`
	Scanned       int           `json:"scanned"`
	Matches       []MatchRecord `json:"matches"`
	Failures      []Failure     `json:"failures"`
}

// NewMatchRecord derives the identifier fields from the candidate's filename.
func NewMatchRecord(path string, distance int) MatchRecord {
	filename := filepath.Base(path)
	return MatchRecord{
		Path:      path,
		Filename:  filename,
		ProductID: ProductID(filename),
		AssetID:   AssetID(filename),
		Distance:  distance,
	}
}

// AssetID returns the filename without its extension.
func AssetID(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// ProductID returns the leading underscore-delimited token of the filename's
// stem, falling back to the whole stem when there is no delimiter.
func ProductID(filename string) string {
	stem := AssetID(filename)
	if i := strings.Index(stem, "_"); i > 0 {
		return stem[:i]
	}
	return stem
}
