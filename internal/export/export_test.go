package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rollcall/internal"
	"rollcall/internal/summary"
)

func sampleRows() []internal.OutputRow {
	return []internal.OutputRow{
		{Identifier: "B001230", LastName: "Baldwin", FirstName: "Tammy", Party: "D", Region: "WI", Choice: "Yea"},
		{Identifier: "A000055", LastName: "Aderholt", FirstName: "Robert B.", Party: "R", Region: "AL", SubRegion: "4th", Choice: "Nay"},
	}
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "senate_119_1_vote_00015.csv")
	if err := WriteCSV(sampleRows(), path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 3 {
		t.Fatalf("rows=%d", len(records))
	}
	if strings.Join(records[0], ",") != "identifier,last_name,first_name,party,region,sub_region,choice" {
		t.Fatalf("header: %v", records[0])
	}
	if records[2][0] != "A000055" || records[2][5] != "4th" || records[2][6] != "Nay" {
		t.Fatalf("row: %v", records[2])
	}
}

func TestWritePartisanCSV(t *testing.T) {
	records := []internal.ReconciledRecord{
		{Vote: internal.VoteRecord{RawName: "a", Choice: internal.ChoiceYea}, Member: &internal.Member{ID: "S1", Party: internal.PartyDemocratic}, Matched: true},
		{Vote: internal.VoteRecord{RawName: "b", Choice: internal.ChoiceYea}, Member: &internal.Member{ID: "S2", Party: internal.PartyIndependent}, Matched: true},
		{Vote: internal.VoteRecord{RawName: "c", Choice: internal.ChoiceNay}, Member: &internal.Member{ID: "S3", Party: internal.PartyRepublican}, Matched: true},
	}
	s := summary.Summarize(records, 3)

	path := filepath.Join(t.TempDir(), "partisan.csv")
	if err := WritePartisanCSV(s, path); err != nil {
		t.Fatal(err)
	}

	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(blob)
	if !strings.HasPrefix(out, "choice,Democratic,Republican,Independent,total") {
		t.Fatalf("header: %q", out)
	}
	if !strings.Contains(out, "Yea ✓,1,0,1,2") {
		t.Fatalf("prevailing row missing check mark: %q", out)
	}
	if !strings.Contains(out, "Nay,0,1,0,1") {
		t.Fatalf("nay row: %q", out)
	}
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.json")
	if err := WriteJSON(sampleRows(), path); err != nil {
		t.Fatal(err)
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(blob), `"identifier": "B001230"`) {
		t.Fatalf("json: %s", blob)
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.xlsx")
	if err := WriteXLSX(sampleRows(), path); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}
