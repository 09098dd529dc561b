// Package pipeline orchestrates one vote run: fetch, reconcile, summarize,
// persist, upload.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"rollcall/internal"
	"rollcall/internal/config"
	"rollcall/internal/congress"
	"rollcall/internal/export"
	"rollcall/internal/reconcile"
	"rollcall/internal/roster"
	"rollcall/internal/summary"
)

type Runner struct {
	source   congress.VoteSource
	cfg      config.Config
	log      *zap.Logger
	uploader export.Uploader
}

// NewRunner wires a chamber source into the run orchestration. uploader may
// be nil for local-only output.
func NewRunner(source congress.VoteSource, cfg config.Config, log *zap.Logger, uploader export.Uploader) *Runner {
	return &Runner{source: source, cfg: cfg, log: log, uploader: uploader}
}

type Result struct {
	BaseName string
	Paths    []string
	Records  []internal.ReconciledRecord
	Rows     []internal.OutputRow
	Summary  internal.Summary
	Warnings []internal.Warning
}

// Run fetches the roster and the vote page concurrently, reconciles them,
// and persists the reconciled table plus the partisan summary. Formats is
// any of csv/xlsx/json; the partisan summary is always CSV.
//
// congress.ErrVoteUnavailable propagates unchanged so callers can exit the
// run cleanly. Reconciliation and dedup faults never abort the run; they are
// logged and attached to the result.
func (r *Runner) Run(ctx context.Context, ref congress.VoteRef, formats []string) (*Result, error) {
	if len(formats) == 0 {
		formats = []string{"csv"}
	}
	for _, format := range formats {
		switch format {
		case "csv", "xlsx", "json":
		default:
			return nil, fmt.Errorf("unsupported output format: %s", format)
		}
	}

	var (
		wg        sync.WaitGroup
		members   []internal.Member
		votes     []internal.VoteRecord
		rosterErr error
		voteErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		members, rosterErr = r.source.FetchRoster(ctx)
	}()
	go func() {
		defer wg.Done()
		votes, voteErr = r.source.FetchVote(ctx, ref)
	}()
	wg.Wait()

	if rosterErr != nil {
		return nil, fmt.Errorf("fetch %s roster: %w", r.source.Chamber(), rosterErr)
	}
	if voteErr != nil {
		// ErrVoteUnavailable passes through untouched: it is an empty
		// result, not a failure.
		return nil, voteErr
	}

	r.log.Info("fetched inputs",
		zap.String("chamber", string(r.source.Chamber())),
		zap.Int("roster", len(members)),
		zap.Int("votes", len(votes)))

	records, warnings := reconcile.Reconcile(votes, roster.BuildIndex(members))
	s := summary.Summarize(records, r.source.ExpectedMemberCount())
	warnings = append(warnings, s.Warnings...)
	for _, w := range warnings {
		r.log.Warn(string(w.Kind), zap.String("raw_name", w.RawName), zap.String("detail", w.Message))
	}

	rows := reconcile.FormatRows(records)

	base := r.source.BaseName(ref)
	dir := filepath.Join(r.cfg.OutputDir, string(r.source.Chamber()))
	result := &Result{
		BaseName: base,
		Records:  records,
		Rows:     rows,
		Summary:  s,
		Warnings: warnings,
	}

	for _, format := range formats {
		path := filepath.Join(dir, base+"."+format)
		var err error
		switch format {
		case "csv":
			err = export.WriteCSV(rows, path)
		case "xlsx":
			err = export.WriteXLSX(rows, path)
		case "json":
			err = export.WriteJSON(rows, path)
		}
		if err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		result.Paths = append(result.Paths, path)
	}

	summaryPath := filepath.Join(dir, base+"_partisan_summary.csv")
	if err := export.WritePartisanCSV(s, summaryPath); err != nil {
		return nil, fmt.Errorf("write %s: %w", summaryPath, err)
	}
	result.Paths = append(result.Paths, summaryPath)

	if r.uploader != nil {
		for _, path := range result.Paths {
			if err := r.uploader.Upload(ctx, path, filepath.Base(path)); err != nil {
				// Upload failure never loses the local artifact.
				r.log.Error("upload failed", zap.String("path", path), zap.Error(err))
			}
		}
	}

	return result, nil
}
