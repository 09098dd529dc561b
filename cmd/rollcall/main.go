package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"rollcall/internal"
	"rollcall/internal/config"
	"rollcall/internal/congress"
	"rollcall/internal/export"
	"rollcall/internal/logging"
	"rollcall/internal/pipeline"
	"rollcall/internal/summary"
)

func main() {
	cfg, err := config.Load()
	must(err)

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	must(err)
	defer log.Sync()

	cmd := os.Args[1]
	switch cmd {
	case "senate":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		congressNum := fs.Int("congress", 0, "congress number (e.g. 119)")
		session := fs.Int("session", 0, "session number (e.g. 1)")
		vote := fs.Int("vote", 0, "roll call vote number")
		bucket := fs.String("bucket", cfg.GCSBucket, "GCS bucket for upload (optional)")
		formats := fs.String("formats", "csv", "comma-separated: csv,xlsx,json")
		_ = fs.Parse(os.Args[2:])
		if *congressNum == 0 || *session == 0 || *vote == 0 {
			must(fmt.Errorf("--congress, --session and --vote are required"))
		}
		ref := congress.VoteRef{Congress: *congressNum, Session: *session, Number: *vote}
		run(cfg, log, internal.ChamberSenate, ref, *bucket, *formats)
	case "house":
		fs := flag.NewFlagSet(cmd, flag.ExitOnError)
		year := fs.Int("year", 0, "year of the vote (e.g. 2025)")
		vote := fs.Int("vote", 0, "roll call vote number")
		bucket := fs.String("bucket", cfg.GCSBucket, "GCS bucket for upload (optional)")
		formats := fs.String("formats", "csv", "comma-separated: csv,xlsx,json")
		_ = fs.Parse(os.Args[2:])
		if *year == 0 || *vote == 0 {
			must(fmt.Errorf("--year and --vote are required"))
		}
		ref := congress.VoteRef{Year: *year, Number: *vote}
		run(cfg, log, internal.ChamberHouse, ref, *bucket, *formats)
	default:
		usage()
		os.Exit(1)
	}
}

func run(cfg config.Config, log *zap.Logger, chamber internal.Chamber, ref congress.VoteRef, bucket, formats string) {
	ctx := context.Background()

	client := congress.NewClient(cfg)
	source, err := congress.New(chamber, client, cfg)
	must(err)

	var uploader export.Uploader
	if strings.TrimSpace(bucket) != "" {
		up, err := export.NewGCSUploader(ctx, bucket)
		must(err)
		uploader = up
	}

	fmt.Printf("Fetching %s roster and roll call vote...\n", chamber)
	runner := pipeline.NewRunner(source, cfg, log, uploader)
	result, err := runner.Run(ctx, ref, splitFormats(formats))
	if errors.Is(err, congress.ErrVoteUnavailable) {
		fmt.Println("Roll call vote data is currently unavailable. Exiting.")
		return
	}
	must(err)

	fmt.Print(summary.RenderText(result.Summary))
	for _, path := range result.Paths {
		fmt.Printf("Saved %s\n", path)
	}
	if len(result.Warnings) > 0 {
		fmt.Printf("%d warnings, see log output\n", len(result.Warnings))
	}
}

func splitFormats(formats string) []string {
	out := make([]string, 0, 3)
	for _, f := range strings.Split(formats, ",") {
		f = strings.ToLower(strings.TrimSpace(f))
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

func usage() {
	fmt.Println("usage: rollcall <command>")
	fmt.Println("commands:")
	fmt.Println("  senate --congress=119 --session=1 --vote=15 [--bucket=...] [--formats=csv,xlsx,json]")
	fmt.Println("  house --year=2025 --vote=17 [--bucket=...] [--formats=csv,xlsx,json]")
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
