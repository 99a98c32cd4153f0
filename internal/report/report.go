// Package report renders a finished duplicate search to its output formats.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/samber/lo"

	"assetdedup/internal/models"
)

// Formatter renders a report to an output stream. Every formatter must
// produce a well-formed artifact even when the report contains no matches.
type Formatter interface {
	Format(w io.Writer, rep *models.Report) error
	// DefaultFilename is the output name used when the caller does not
	// provide one.
	DefaultFilename() string
}

// CSV emits one row per match with derived product and asset identifiers.
// An empty report produces a header-only file.
type CSV struct{}

func (CSV) DefaultFilename() string { return "duplicate-images.csv" }

func (CSV) Format(w io.Writer, rep *models.Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Product ID", "Asset ID", "Filename"}); err != nil {
		return err
	}
	rows := lo.Map(rep.Matches, func(m models.MatchRecord, _ int) []string {
		return []string{m.ProductID, m.AssetID, m.Filename}
	})
	return cw.WriteAll(rows)
}

// Text emits one matched filename per line, without identifiers. An empty
// report produces a zero-byte file.
type Text struct{}

func (Text) DefaultFilename() string { return "duplicate-images.txt" }

func (Text) Format(w io.Writer, rep *models.Report) error {
	for _, name := range lo.Map(rep.Matches, func(m models.MatchRecord, _ int) string { return m.Filename }) {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

// JSON emits the full report, including the per-candidate failure list, so
// tooling can tell "no duplicates" apart from "some files were unscannable".
type JSON struct{}

func (JSON) DefaultFilename() string { return "duplicate-images.json" }

func (JSON) Format(w io.Writer, rep *models.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

// ByName returns the formatter for a format flag value.
func ByName(name string) (Formatter, error) {
	switch name {
	case "csv":
		return CSV{}, nil
	case "text", "txt":
		return Text{}, nil
	case "json":
		return JSON{}, nil
	default:
		return nil, fmt.Errorf("unknown output format: %q", name)
	}
}

// WriteFile renders the report to path. The file is created even when there
// are no matches.
func WriteFile(path string, f Formatter, rep *models.Report) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := f.Format(out, rep); err != nil {
		out.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return out.Close()
}
