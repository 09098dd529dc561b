// Package export writes reconciled vote tables and partisan summaries to
// local files and optionally to cloud object storage.
package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"rollcall/internal"
	"rollcall/internal/summary"
)

var columns = []string{"identifier", "last_name", "first_name", "party", "region", "sub_region", "choice"}

func WriteCSV(rows []internal.OutputRow, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(columns); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.Identifier, row.LastName, row.FirstName, row.Party, row.Region, row.SubRegion, row.Choice}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// WritePartisanCSV writes the per-choice, per-party breakdown. The prevailing
// choice label carries a trailing check mark, matching the historical file
// format.
func WritePartisanCSV(s internal.Summary, path string) error {
	f, err := createFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	parties := summary.SortedParties(s)
	header := []string{"choice"}
	for _, p := range parties {
		header = append(header, partyLabel(p))
	}
	header = append(header, "total")

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, row := range s.Partisan {
		label := choiceLabel(row.Choice)
		if row.Choice == s.Prevailing && s.Prevailing != internal.ChoiceUnknown {
			label += " ✓"
		}
		record := []string{label}
		for _, p := range parties {
			record = append(record, strconv.Itoa(row.Counts[p]))
		}
		record = append(record, strconv.Itoa(row.Total))
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func createFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

func partyLabel(p internal.Party) string {
	switch p {
	case internal.PartyDemocratic:
		return "Democratic"
	case internal.PartyRepublican:
		return "Republican"
	case internal.PartyIndependent:
		return "Independent"
	}
	return "Unknown"
}

func choiceLabel(c internal.Choice) string {
	if c == internal.ChoiceUnknown {
		return "Unknown"
	}
	return string(c)
}
