package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"rollcall/internal"
	"rollcall/internal/config"
	"rollcall/internal/congress"
)

type fakeSource struct {
	members []internal.Member
	votes   []internal.VoteRecord
	voteErr error
}

func (f *fakeSource) Chamber() internal.Chamber { return internal.ChamberSenate }

func (f *fakeSource) FetchRoster(ctx context.Context) ([]internal.Member, error) {
	return f.members, nil
}

func (f *fakeSource) FetchVote(ctx context.Context, ref congress.VoteRef) ([]internal.VoteRecord, error) {
	return f.votes, f.voteErr
}

func (f *fakeSource) ExpectedMemberCount() int { return len(f.members) }

func (f *fakeSource) BaseName(ref congress.VoteRef) string { return "senate_119_1_vote_00015" }

type captureUploader struct {
	objects []string
}

func (c *captureUploader) Upload(ctx context.Context, localPath, objectName string) error {
	c.objects = append(c.objects, objectName)
	return nil
}

func testSource() *fakeSource {
	return &fakeSource{
		members: []internal.Member{
			{ID: "B001230", FullName: "Baldwin, Tammy (D-WI)", LastName: "Baldwin", FirstName: "Tammy", Party: internal.PartyDemocratic, State: "WI"},
			{ID: "B001261", FullName: "Barrasso, John (R-WY)", LastName: "Barrasso", FirstName: "John", Party: internal.PartyRepublican, State: "WY"},
		},
		votes: []internal.VoteRecord{
			{RawName: "Baldwin (D-WI)", RawChoice: "Yea", Choice: internal.ChoiceYea},
			{RawName: "Barrasso (R-WY)", RawChoice: "Nay", Choice: internal.ChoiceNay},
		},
	}
}

func TestRunEndToEnd(t *testing.T) {
	cfg := config.Config{OutputDir: t.TempDir()}
	uploader := &captureUploader{}
	runner := NewRunner(testSource(), cfg, zap.NewNop(), uploader)

	result, err := runner.Run(context.Background(), congress.VoteRef{Congress: 119, Session: 1, Number: 15}, []string{"csv", "json"})
	if err != nil {
		t.Fatal(err)
	}

	if result.Summary.Total != 2 || result.Summary.ChoiceCounts[internal.ChoiceYea] != 1 {
		t.Fatalf("summary: %+v", result.Summary)
	}
	if len(result.Warnings) != 0 {
		t.Fatalf("warnings: %+v", result.Warnings)
	}

	wantFiles := []string{
		"senate_119_1_vote_00015.csv",
		"senate_119_1_vote_00015.json",
		"senate_119_1_vote_00015_partisan_summary.csv",
	}
	if len(result.Paths) != len(wantFiles) {
		t.Fatalf("paths: %v", result.Paths)
	}
	for i, name := range wantFiles {
		want := filepath.Join(cfg.OutputDir, "senate", name)
		if result.Paths[i] != want {
			t.Fatalf("path %d: got %q want %q", i, result.Paths[i], want)
		}
		if _, err := os.Stat(want); err != nil {
			t.Fatal(err)
		}
	}
	if len(uploader.objects) != 3 || uploader.objects[0] != "senate_119_1_vote_00015.csv" {
		t.Fatalf("uploads: %v", uploader.objects)
	}
}

func TestRunVoteUnavailable(t *testing.T) {
	src := testSource()
	src.voteErr = congress.ErrVoteUnavailable
	runner := NewRunner(src, config.Config{OutputDir: t.TempDir()}, zap.NewNop(), nil)

	_, err := runner.Run(context.Background(), congress.VoteRef{}, nil)
	if !errors.Is(err, congress.ErrVoteUnavailable) {
		t.Fatalf("err = %v", err)
	}
}

func TestRunRejectsUnknownFormat(t *testing.T) {
	runner := NewRunner(testSource(), config.Config{OutputDir: t.TempDir()}, zap.NewNop(), nil)
	if _, err := runner.Run(context.Background(), congress.VoteRef{}, []string{"parquet"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestRunSurfacesUnmatchedWarnings(t *testing.T) {
	src := testSource()
	src.votes = append(src.votes, internal.VoteRecord{RawName: "Nobody Known", RawChoice: "Yea", Choice: internal.ChoiceYea})
	runner := NewRunner(src, config.Config{OutputDir: t.TempDir()}, zap.NewNop(), nil)

	result, err := runner.Run(context.Background(), congress.VoteRef{}, nil)
	if err != nil {
		t.Fatal(err)
	}

	found := false
	for _, w := range result.Warnings {
		if w.Kind == internal.WarnUnmatchedRecord && w.RawName == "Nobody Known" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected unmatched warning, got %+v", result.Warnings)
	}
	// The unmatched record still appears in the output, choice intact.
	if len(result.Rows) != 3 || result.Rows[2].Choice != "Yea" || result.Rows[2].Identifier != "" {
		t.Fatalf("rows: %+v", result.Rows)
	}
}
